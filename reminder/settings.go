package reminder

import "encoding/json"

// QuietHours is the daily window during which no base reminders fire.
type QuietHours struct {
	Enabled bool      `json:"enabled"`
	Start   TimeOfDay `json:"start"`
	End     TimeOfDay `json:"end"`
}

// Window returns the quiet-hours window, or nil when quiet hours are
// disabled.
func (q QuietHours) Window() *Window {
	if !q.Enabled {
		return nil
	}
	return &Window{Start: q.Start, End: q.End}
}

// Settings is the fully populated reminder configuration. Values loaded from
// storage are always merged over DefaultSettings, so downstream logic never
// sees a missing interval or time.
type Settings struct {
	Enabled         bool       `json:"enabled"`
	QuietHours      QuietHours `json:"quietHours"`
	IntervalMinutes int        `json:"intervalMinutes"`
	Adaptive        bool       `json:"adaptive"`
	Motivational    bool       `json:"motivational"`

	// Sound and Vibration are forwarded opaquely to the delivery payload.
	Sound     bool `json:"sound"`
	Vibration bool `json:"vibration"`
}

// DefaultSettings returns the immutable default reminder configuration.
func DefaultSettings() Settings {
	return Settings{
		Enabled: true,
		QuietHours: QuietHours{
			Enabled: true,
			Start:   MustTimeOfDay("22:00"),
			End:     MustTimeOfDay("07:00"),
		},
		IntervalMinutes: 60,
		Adaptive:        true,
		Motivational:    true,
		Sound:           true,
		Vibration:       true,
	}
}

// Validate rejects configurations the schedule generator cannot honor.
func (s Settings) Validate() error {
	if s.IntervalMinutes <= 0 {
		return ErrInvalidInterval
	}
	return nil
}

// MergeSettings overlays a raw persisted settings document over the defaults,
// field by field, one level deep. A partial document keeps default values for
// the fields it omits. The error reports an unparseable document; the caller
// decides whether to fall back to defaults.
func MergeSettings(raw []byte, defaults Settings) (Settings, error) {
	merged := defaults
	if len(raw) == 0 {
		return merged, nil
	}
	if err := json.Unmarshal(raw, &merged); err != nil {
		return defaults, err
	}
	return merged, nil
}

// SettingsPatch is a partial settings update. Nil fields keep their current
// value; shallow field overwrite is sufficient because settings nest at most
// one level.
type SettingsPatch struct {
	Enabled         *bool       `json:"enabled,omitempty"`
	QuietHours      *QuietHours `json:"quietHours,omitempty"`
	IntervalMinutes *int        `json:"intervalMinutes,omitempty"`
	Adaptive        *bool       `json:"adaptive,omitempty"`
	Motivational    *bool       `json:"motivational,omitempty"`
	Sound           *bool       `json:"sound,omitempty"`
	Vibration       *bool       `json:"vibration,omitempty"`
}

// Apply returns a copy of current with the patch's non-nil fields overwritten.
func (p SettingsPatch) Apply(current Settings) Settings {
	next := current
	if p.Enabled != nil {
		next.Enabled = *p.Enabled
	}
	if p.QuietHours != nil {
		next.QuietHours = *p.QuietHours
	}
	if p.IntervalMinutes != nil {
		next.IntervalMinutes = *p.IntervalMinutes
	}
	if p.Adaptive != nil {
		next.Adaptive = *p.Adaptive
	}
	if p.Motivational != nil {
		next.Motivational = *p.Motivational
	}
	if p.Sound != nil {
		next.Sound = *p.Sound
	}
	if p.Vibration != nil {
		next.Vibration = *p.Vibration
	}
	return next
}
