package trigger

import (
	"context"
	"sync"

	"github.com/lithammer/shortuuid/v4"
)

// MemoryScheduler is an in-memory Scheduler. Tests use it to observe what the
// engine registers and cancels; the CLI uses it to preview registrations
// without a real notification subsystem.
type MemoryScheduler struct {
	mu    sync.Mutex
	order []string
	regs  map[string]Registration

	// ScheduleErr, when set, is returned by every Schedule call. Tests use it
	// to exercise partial-registration behavior.
	ScheduleErr error

	// Cancelled records every Cancel call, including repeats and unknown IDs.
	Cancelled []string
}

// NewMemoryScheduler creates an empty in-memory scheduler.
func NewMemoryScheduler() *MemoryScheduler {
	return &MemoryScheduler{
		regs: make(map[string]Registration),
	}
}

func (m *MemoryScheduler) Schedule(_ context.Context, spec Spec, payload Payload) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.ScheduleErr != nil {
		return "", m.ScheduleErr
	}

	id := shortuuid.New()
	m.regs[id] = Registration{ID: id, Spec: spec, Payload: payload}
	m.order = append(m.order, id)
	return id, nil
}

func (m *MemoryScheduler) Cancel(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Cancelled = append(m.Cancelled, id)
	if _, ok := m.regs[id]; !ok {
		return nil // idempotent
	}
	delete(m.regs, id)
	for i, existing := range m.order {
		if existing == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

func (m *MemoryScheduler) List(_ context.Context) ([]Registration, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	regs := make([]Registration, 0, len(m.order))
	for _, id := range m.order {
		regs = append(regs, m.regs[id])
	}
	return regs, nil
}

// Len reports the number of live registrations.
func (m *MemoryScheduler) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.regs)
}
