package breaks

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"time"

	"github.com/pkg/errors"

	"github.com/hrygo/hydromate/content"
	"github.com/hrygo/hydromate/metrics"
	"github.com/hrygo/hydromate/trigger"
)

const (
	settingsKey = "break_reminder_settings"
	historyKey  = "break_history"
)

// Engine ties break settings, history, content selection, and trigger
// registration together for one app instance.
type Engine struct {
	kv       KV
	triggers trigger.Scheduler
	selector *content.Selector
	history  *HistoryStore
	exporter *metrics.Exporter
	now      func() time.Time
}

// NewEngine builds a break engine. exporter may be nil.
func NewEngine(kv KV, triggers trigger.Scheduler, selector *content.Selector, exporter *metrics.Exporter) *Engine {
	return &Engine{
		kv:       kv,
		triggers: triggers,
		selector: selector,
		history:  NewHistoryStore(kv, historyKey),
		exporter: exporter,
		now:      time.Now,
	}
}

// History exposes the engine's break history store.
func (e *Engine) History() *HistoryStore {
	return e.history
}

// Settings loads the persisted break settings merged over the defaults.
// Absent or corrupt data falls back to the defaults with a warning; callers
// always receive a fully populated record.
func (e *Engine) Settings(ctx context.Context) Settings {
	raw, err := e.kv.Get(ctx, settingsKey)
	if err != nil {
		return DefaultSettings()
	}
	merged, err := MergeSettings(raw, DefaultSettings())
	if err != nil {
		slog.Warn("break settings corrupt, using defaults", "err", err)
		return DefaultSettings()
	}
	return merged
}

// SaveSettings applies a partial update over the current settings and
// persists the result.
func (e *Engine) SaveSettings(ctx context.Context, patch SettingsPatch) (Settings, error) {
	updated := patch.Apply(e.Settings(ctx))
	if err := updated.Validate(); err != nil {
		return Settings{}, err
	}
	raw, err := json.Marshal(updated)
	if err != nil {
		return Settings{}, errors.Wrap(err, "failed to marshal break settings")
	}
	if err := e.kv.Set(ctx, settingsKey, raw); err != nil {
		return Settings{}, err
	}
	return updated, nil
}

// ScheduleSession registers one break trigger per enabled category at offsets
// interval, 2*interval, ... strictly inside the session duration. Any
// previously registered break triggers are cancelled first, so a second start
// never leaves orphans from the first. A registration the delivery mechanism
// rejects is logged and skipped; the rest of the batch still registers.
func (e *Engine) ScheduleSession(ctx context.Context, durationMinutes int, lang content.Language) ([]string, error) {
	if durationMinutes <= 0 {
		return nil, errors.Errorf("session duration must be positive, got %d", durationMinutes)
	}

	settings := e.Settings(ctx)
	if !settings.Enabled {
		return nil, nil
	}

	if err := trigger.CancelKind(ctx, e.triggers, trigger.KindBreak); err != nil {
		return nil, errors.Wrap(err, "failed to cancel existing break triggers")
	}

	var ids []string
	for _, category := range settings.EnabledCategories {
		interval := settings.Interval(category)
		if interval <= 0 {
			continue
		}
		for offset := interval; offset < durationMinutes; offset += interval {
			msg := e.selector.PickBreak(category, lang)
			id, err := e.triggers.Schedule(ctx, trigger.After(time.Duration(offset)*time.Minute), trigger.Payload{
				Kind:      trigger.KindBreak,
				Category:  string(category),
				Title:     msg.Title,
				Body:      msg.Body,
				Sound:     settings.Sound,
				Vibration: settings.Vibration,
				Meta:      map[string]string{"suggestedDuration": strconv.Itoa(msg.DurationSeconds)},
			})
			if err != nil {
				slog.Warn("failed to register break trigger, skipping",
					"category", category, "offsetMinutes", offset, "err", err)
				e.exporter.RecordRegistrationFailure()
				continue
			}
			ids = append(ids, id)
			e.exporter.RecordBreakScheduled(string(category))
		}
	}
	return ids, nil
}

// CancelAll cancels every registered break trigger.
func (e *Engine) CancelAll(ctx context.Context) error {
	return trigger.CancelKind(ctx, e.triggers, trigger.KindBreak)
}

// Send delivers a break reminder now and records it in the history.
// Returns the trigger ID, or empty when break reminders are disabled.
func (e *Engine) Send(ctx context.Context, category content.BreakCategory, lang content.Language, duringFocus bool) (string, error) {
	settings := e.Settings(ctx)
	if !settings.Enabled {
		return "", nil
	}

	msg := e.selector.PickBreak(category, lang)
	id, err := e.triggers.Schedule(ctx, trigger.Immediate(), trigger.Payload{
		Kind:      trigger.KindBreak,
		Category:  string(category),
		Title:     msg.Title,
		Body:      msg.Body,
		Sound:     settings.Sound,
		Vibration: settings.Vibration,
		Meta:      map[string]string{"suggestedDuration": strconv.Itoa(msg.DurationSeconds)},
	})
	if err != nil {
		return "", errors.Wrapf(err, "failed to send %s break reminder", category)
	}

	if _, err := e.history.Append(ctx, category, duringFocus); err != nil {
		slog.Warn("failed to record break in history", "category", category, "err", err)
	}
	return id, nil
}

// SuggestedBreak evaluates the suggestion rules against the current settings
// and recent history. Returns nil when break reminders are disabled or no
// rule matches.
func (e *Engine) SuggestedBreak(ctx context.Context, minutesSinceLastBreak int, lang content.Language) *Suggestion {
	settings := e.Settings(ctx)
	if !settings.Enabled {
		return nil
	}
	suggestion := SuggestBreak(settings, minutesSinceLastBreak, e.history.History(ctx), e.now(), lang)
	if suggestion != nil {
		e.exporter.RecordBreakSuggestion(string(suggestion.Category))
	}
	return suggestion
}

// CompleteBreak marks a history entry as acted upon.
func (e *Engine) CompleteBreak(ctx context.Context, id string, waterLogged int) error {
	entry, err := e.history.Complete(ctx, id, waterLogged)
	if err != nil {
		return err
	}
	if entry.ID != "" {
		e.exporter.RecordBreakCompleted(string(entry.Category))
	}
	return nil
}

// TodayStats aggregates today's break activity.
func (e *Engine) TodayStats(ctx context.Context) TodayStats {
	return e.history.Today(ctx)
}
