// Package trigger models the OS-level notification scheduling boundary.
// The engine only computes what to register; delivery, sound playback, and
// permission prompts belong to the host platform behind the Scheduler
// interface.
package trigger

import (
	"context"
	"time"
)

// Kind tags a registration's payload so each engine feature can find and
// bulk-cancel its own triggers without touching registrations owned by other
// features.
type Kind string

const (
	// KindReminder marks daily hydration reminders.
	KindReminder Kind = "reminder"
	// KindBreak marks focus-session break reminders.
	KindBreak Kind = "break"
	// KindContextual marks immediate one-shot sends.
	KindContextual Kind = "contextual"
)

// SpecType selects between the two trigger shapes the boundary supports.
type SpecType string

const (
	// SpecDaily repeats every day at a wall-clock time.
	SpecDaily SpecType = "daily"
	// SpecAfter fires once after a relative delay. A zero delay means
	// "deliver now".
	SpecAfter SpecType = "after"
)

// Spec describes when a trigger fires.
type Spec struct {
	Type   SpecType      `json:"type"`
	Hour   int           `json:"hour,omitempty"`
	Minute int           `json:"minute,omitempty"`
	After  time.Duration `json:"after,omitempty"`
}

// Daily builds a daily-repeating wall-clock spec.
func Daily(hour, minute int) Spec {
	return Spec{Type: SpecDaily, Hour: hour, Minute: minute}
}

// After builds a relative one-shot spec.
func After(d time.Duration) Spec {
	return Spec{Type: SpecAfter, After: d}
}

// Immediate builds a deliver-now one-shot spec.
func Immediate() Spec {
	return Spec{Type: SpecAfter}
}

// Payload is the content attached to a registration. The engine treats
// Sound/Vibration as opaque flags forwarded to delivery.
type Payload struct {
	Kind      Kind              `json:"kind"`
	Category  string            `json:"category,omitempty"`
	Title     string            `json:"title"`
	Body      string            `json:"body"`
	Sound     bool              `json:"sound"`
	Vibration bool              `json:"vibration"`
	Meta      map[string]string `json:"meta,omitempty"`
}

// Registration is a scheduled trigger as reported by List.
type Registration struct {
	ID      string  `json:"id"`
	Spec    Spec    `json:"spec"`
	Payload Payload `json:"payload"`
}

// Scheduler is the trigger-registration capability injected into the engine.
// Cancel is best-effort and idempotent: cancelling an already-fired or
// unknown ID is a no-op, not an error.
type Scheduler interface {
	Schedule(ctx context.Context, spec Spec, payload Payload) (string, error)
	Cancel(ctx context.Context, id string) error
	List(ctx context.Context) ([]Registration, error)
}

// CancelKind cancels every registration whose payload carries the given kind
// marker. Registrations from other features are never touched.
func CancelKind(ctx context.Context, s Scheduler, kind Kind) error {
	regs, err := s.List(ctx)
	if err != nil {
		return err
	}
	for _, reg := range regs {
		if reg.Payload.Kind != kind {
			continue
		}
		if err := s.Cancel(ctx, reg.ID); err != nil {
			return err
		}
	}
	return nil
}
