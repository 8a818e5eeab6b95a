package reminder

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"time"

	"github.com/pkg/errors"

	"github.com/hrygo/hydromate/content"
	"github.com/hrygo/hydromate/metrics"
	"github.com/hrygo/hydromate/trigger"
)

const userProfileKey = "user_profile"

// DefaultMaxDailyReminders caps how many base reminders register per day.
// Longer plans are thinned by even sampling rather than truncation so
// coverage stays spread across the waking day.
const DefaultMaxDailyReminders = 12

// DefaultPatternWindowDays is how much history the adaptive path analyzes.
const DefaultPatternWindowDays = 7

// HistoryReader supplies the per-hour intake aggregate the pattern analyzer
// consumes. Satisfied by *store.Store.
type HistoryReader interface {
	LastNDays(ctx context.Context, n int) ([]HistoricalDay, error)
}

// userProfile is the slice of the persisted profile the engine cares about.
type userProfile struct {
	Name     string `json:"name"`
	Language string `json:"language"`
}

// Engine computes and registers the daily reminder plan and serves the
// pattern, explanation, and contextual-send queries built on it.
type Engine struct {
	settings *SettingsStore
	history  HistoryReader
	kv       KV
	triggers trigger.Scheduler
	selector *content.Selector
	exporter *metrics.Exporter

	maxDaily   int
	windowDays int
	analyzer   AnalyzerConfig
	now        func() time.Time
}

// EngineConfig wires an Engine's collaborators. Exporter may be nil.
type EngineConfig struct {
	KV       KV
	History  HistoryReader
	Triggers trigger.Scheduler
	Selector *content.Selector
	Exporter *metrics.Exporter

	// MaxDailyReminders overrides DefaultMaxDailyReminders when positive.
	MaxDailyReminders int

	// PatternWindowDays overrides DefaultPatternWindowDays when positive.
	PatternWindowDays int

	Analyzer AnalyzerConfig
}

// NewEngine builds a reminder engine.
func NewEngine(cfg EngineConfig) *Engine {
	maxDaily := cfg.MaxDailyReminders
	if maxDaily <= 0 {
		maxDaily = DefaultMaxDailyReminders
	}
	windowDays := cfg.PatternWindowDays
	if windowDays <= 0 {
		windowDays = DefaultPatternWindowDays
	}
	return &Engine{
		settings:   NewSettingsStore(cfg.KV),
		history:    cfg.History,
		kv:         cfg.KV,
		triggers:   cfg.Triggers,
		selector:   cfg.Selector,
		exporter:   cfg.Exporter,
		maxDaily:   maxDaily,
		windowDays: windowDays,
		analyzer:   cfg.Analyzer,
		now:        time.Now,
	}
}

// Settings exposes the engine's settings store.
func (e *Engine) Settings() *SettingsStore {
	return e.settings
}

// plan is one computed reminder schedule: the thinned base entries plus the
// adaptive extras selected against them. Apply, Preview, and the adaptive
// explanation all read the same plan, so they can never diverge.
type plan struct {
	base   []ScheduleEntry
	extras []ScheduleEntry
}

func (p plan) entries() []ScheduleEntry {
	all := append(append([]ScheduleEntry{}, p.base...), p.extras...)
	sort.Slice(all, func(i, j int) bool { return all[i].Time < all[j].Time })
	return all
}

func (e *Engine) buildPlan(ctx context.Context, settings Settings) (plan, error) {
	times, err := GenerateSchedule(settings.IntervalMinutes, settings.QuietHours.Window())
	if err != nil {
		return plan{}, err
	}
	times = thin(times, e.maxDaily)

	base := make([]ScheduleEntry, len(times))
	for i, t := range times {
		base[i] = ScheduleEntry{Time: t, Category: CategoryBase}
	}

	p := plan{base: base}
	if !settings.Adaptive {
		return p, nil
	}

	history, err := e.history.LastNDays(ctx, e.windowDays)
	if err != nil {
		slog.Warn("intake history unavailable, skipping adaptive reminders", "err", err)
		return p, nil
	}
	pattern := Analyze(history, e.windowDays, e.analyzer)
	p.extras = SelectExtraReminders(settings, pattern, times)
	return p, nil
}

// thin evenly samples times down to at most max entries.
func thin(times []TimeOfDay, max int) []TimeOfDay {
	if len(times) <= max {
		return times
	}
	step := int(math.Ceil(float64(len(times)) / float64(max)))
	var sampled []TimeOfDay
	for i := 0; i < len(times) && len(sampled) < max; i += step {
		sampled = append(sampled, times[i])
	}
	return sampled
}

// Preview computes the times Apply would register for the given settings
// without touching the trigger boundary. Settings UIs call this before
// committing a change.
func (e *Engine) Preview(ctx context.Context, settings Settings) ([]TimeOfDay, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	p, err := e.buildPlan(ctx, settings)
	if err != nil {
		return nil, err
	}
	entries := p.entries()
	times := make([]TimeOfDay, len(entries))
	for i, entry := range entries {
		times[i] = entry.Time
	}
	return times, nil
}

// Apply recomputes the reminder plan from the persisted settings and
// re-registers it. All previously registered reminder triggers are cancelled
// first; a registration the delivery mechanism rejects is logged and skipped
// without aborting the rest of the batch.
func (e *Engine) Apply(ctx context.Context) error {
	if err := trigger.CancelKind(ctx, e.triggers, trigger.KindReminder); err != nil {
		return errors.Wrap(err, "failed to cancel existing reminder triggers")
	}

	settings := e.settings.Load(ctx)
	if !settings.Enabled {
		slog.Info("reminders disabled, nothing scheduled")
		return nil
	}

	p, err := e.buildPlan(ctx, settings)
	if err != nil {
		return err
	}

	name, lang := e.userProfile(ctx)
	scheduled := 0
	for _, entry := range p.entries() {
		msg := e.reminderMessage(settings, entry, lang, name)
		_, err := e.triggers.Schedule(ctx, trigger.Daily(entry.Time.Hour(), entry.Time.Minute()), trigger.Payload{
			Kind:      trigger.KindReminder,
			Category:  string(entry.Category),
			Title:     msg.Title,
			Body:      msg.Body,
			Sound:     settings.Sound,
			Vibration: settings.Vibration,
		})
		if err != nil {
			slog.Warn("failed to register reminder trigger, skipping",
				"time", entry.Time.String(), "category", entry.Category, "err", err)
			e.exporter.RecordRegistrationFailure()
			continue
		}
		scheduled++
		e.exporter.RecordReminderScheduled(string(entry.Category))
	}

	slog.Info("daily reminders scheduled",
		"count", scheduled,
		"intervalMinutes", settings.IntervalMinutes,
		"adaptiveExtras", len(p.extras))
	return nil
}

func (e *Engine) reminderMessage(settings Settings, entry ScheduleEntry, lang content.Language, name string) content.Message {
	if settings.Motivational {
		return e.selector.TimeBased(entry.Time.Hour(), lang, name)
	}
	if lang == content.LangBurmese {
		return content.Message{Title: "💧 ရေသောက်ရန် သတိပေးချက်", Body: "ရေသောက်ဖို့ အချိန်ရောက်ပြီ!"}
	}
	return content.Message{Title: "💧 Water Reminder", Body: "Time to drink some water!"}
}

// DetailedPatterns analyzes recent intake history.
func (e *Engine) DetailedPatterns(ctx context.Context, windowDays int) (PatternSummary, error) {
	if windowDays <= 0 {
		windowDays = e.windowDays
	}
	history, err := e.history.LastNDays(ctx, windowDays)
	if err != nil {
		return PatternSummary{}, errors.Wrap(err, "failed to read intake history")
	}
	return Analyze(history, windowDays, e.analyzer), nil
}

// AdaptiveExplanation renders the adaptive selection the current plan would
// schedule. It reads the same plan Apply registers.
func (e *Engine) AdaptiveExplanation(ctx context.Context) (AdaptiveExplanation, error) {
	settings := e.settings.Load(ctx)
	p, err := e.buildPlan(ctx, settings)
	if err != nil {
		return AdaptiveExplanation{}, err
	}
	return ExplainExtraReminders(settings, p.extras), nil
}

// QuietHoursInfo is the display snapshot of the quiet-hours configuration.
type QuietHoursInfo struct {
	Enabled          bool      `json:"enabled"`
	Start            TimeOfDay `json:"start"`
	End              TimeOfDay `json:"end"`
	IsCurrentlyQuiet bool      `json:"isCurrentlyQuiet"`
}

// QuietHours returns the quiet-hours snapshot for settings UIs.
func (e *Engine) QuietHours(ctx context.Context) QuietHoursInfo {
	settings := e.settings.Load(ctx)
	return QuietHoursInfo{
		Enabled:          settings.QuietHours.Enabled,
		Start:            settings.QuietHours.Start,
		End:              settings.QuietHours.End,
		IsCurrentlyQuiet: e.isQuietNow(settings),
	}
}

// SyncQuietHours aligns the quiet window with a sleep schedule: quiet starts
// at bedtime and ends at wake-up.
func (e *Engine) SyncQuietHours(ctx context.Context, sleep, wake TimeOfDay) error {
	current := e.settings.Load(ctx)
	quiet := current.QuietHours
	quiet.Start = sleep
	quiet.End = wake
	if _, err := e.settings.Save(ctx, SettingsPatch{QuietHours: &quiet}); err != nil {
		return err
	}
	slog.Info("quiet hours synced with sleep schedule", "start", sleep.String(), "end", wake.String())
	return nil
}

func (e *Engine) isQuietNow(settings Settings) bool {
	w := settings.QuietHours.Window()
	if w == nil {
		return false
	}
	now := e.now()
	return w.Contains(TimeOfDayFromClock(now.Hour(), now.Minute()))
}

// SendContextual delivers an immediate progress-aware reminder. Suppressed
// while reminders are disabled or quiet hours are active.
func (e *Engine) SendContextual(ctx context.Context, currentIntake, dailyGoal float64, lang content.Language, name string) error {
	settings := e.settings.Load(ctx)
	if !settings.Enabled || e.isQuietNow(settings) {
		return nil
	}
	if dailyGoal <= 0 {
		return errors.Errorf("daily goal must be positive, got %v", dailyGoal)
	}

	progress := currentIntake / dailyGoal
	var msg content.Message
	if progress >= 0.25 {
		remaining := int(math.Round((1 - progress) * dailyGoal))
		percent := int(math.Round(progress * 100))
		msg = e.selector.Progress(progress, remaining, percent, lang)
	} else {
		msg = e.selector.TimeBased(e.now().Hour(), lang, name)
	}
	return e.sendNow(ctx, settings, msg, "contextual")
}

// SendPersonalized delivers an immediate reminder from the personalized pool.
// Suppressed while reminders are disabled or quiet hours are active.
func (e *Engine) SendPersonalized(ctx context.Context, name string, lang content.Language) error {
	settings := e.settings.Load(ctx)
	if !settings.Enabled || e.isQuietNow(settings) {
		return nil
	}
	return e.sendNow(ctx, settings, e.selector.PickPersonalized(name, lang), "personalized")
}

// SendGoalAchieved celebrates reaching the daily goal. Celebrations are
// user-triggered, so quiet hours do not suppress them.
func (e *Engine) SendGoalAchieved(ctx context.Context, lang content.Language) error {
	settings := e.settings.Load(ctx)
	return e.sendNow(ctx, settings, e.selector.Pick(content.PeriodAchievement, lang), "achievement")
}

// SendStreak celebrates a streak milestone, substituting the day count.
func (e *Engine) SendStreak(ctx context.Context, days int, lang content.Language) error {
	settings := e.settings.Load(ctx)
	return e.sendNow(ctx, settings, e.selector.Streak(days, lang), "streak")
}

func (e *Engine) sendNow(ctx context.Context, settings Settings, msg content.Message, kind string) error {
	_, err := e.triggers.Schedule(ctx, trigger.Immediate(), trigger.Payload{
		Kind:      trigger.KindContextual,
		Category:  kind,
		Title:     msg.Title,
		Body:      msg.Body,
		Sound:     settings.Sound,
		Vibration: settings.Vibration,
	})
	if err != nil {
		return errors.Wrapf(err, "failed to send %s notification", kind)
	}
	e.exporter.RecordContextualSend(kind)
	return nil
}

// ScheduledSummary is the display view of the registered reminder plan.
type ScheduledSummary struct {
	Count int      `json:"count"`
	Times []string `json:"times"`
	Next  string   `json:"next,omitempty"`
}

// Summary lists the registered daily reminder times and the next upcoming
// fire time, derived from the trigger boundary's list operation.
func (e *Engine) Summary(ctx context.Context) (ScheduledSummary, error) {
	regs, err := e.triggers.List(ctx)
	if err != nil {
		return ScheduledSummary{}, errors.Wrap(err, "failed to list scheduled triggers")
	}

	var times []string
	for _, reg := range regs {
		if reg.Payload.Kind != trigger.KindReminder || reg.Spec.Type != trigger.SpecDaily {
			continue
		}
		times = append(times, fmt.Sprintf("%02d:%02d", reg.Spec.Hour, reg.Spec.Minute))
	}
	sort.Strings(times)

	summary := ScheduledSummary{Count: len(times), Times: times}
	now := e.now()
	current := fmt.Sprintf("%02d:%02d", now.Hour(), now.Minute())
	for _, t := range times {
		if t > current {
			summary.Next = t
			break
		}
	}
	if summary.Next == "" && len(times) > 0 {
		summary.Next = times[0] + " (tomorrow)"
	}
	return summary, nil
}

func (e *Engine) userProfile(ctx context.Context) (string, content.Language) {
	raw, err := e.kv.Get(ctx, userProfileKey)
	if err != nil {
		return "", content.LangEnglish
	}
	var p userProfile
	if err := json.Unmarshal(raw, &p); err != nil {
		slog.Warn("user profile corrupt, using defaults", "err", err)
		return "", content.LangEnglish
	}
	lang := content.Language(p.Language)
	if lang != content.LangBurmese {
		lang = content.LangEnglish
	}
	return p.Name, lang
}
