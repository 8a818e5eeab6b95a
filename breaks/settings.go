// Package breaks implements the focus-session break engine: per-category
// repeating break triggers for a bounded session, a priority-ordered "next
// break" suggestion, a capped break history, and a foreground countdown
// session.
package breaks

import (
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/hrygo/hydromate/content"
)

// Settings configures the break engine. Always fully populated after load;
// partial persisted records are merged over DefaultSettings field by field.
type Settings struct {
	Enabled         bool `json:"enabled"`
	DuringFocusOnly bool `json:"duringFocusOnly"`

	// IntervalMinutes holds one repeat interval per break category.
	IntervalMinutes map[content.BreakCategory]int `json:"intervalMinutes"`

	EnabledCategories []content.BreakCategory `json:"enabledCategories"`

	// Water-reminder integration. Opaque to the scheduler itself.
	IntegrateWithWater bool `json:"integrateWithWater"`
	AutoLogWater       bool `json:"autoLogWater"`
	WaterAmountML      int  `json:"waterAmountMl"`

	Sound          bool `json:"sound"`
	Vibration      bool `json:"vibration"`
	ShowMotivation bool `json:"showMotivation"`
}

// DefaultSettings returns the immutable default break configuration.
func DefaultSettings() Settings {
	return Settings{
		Enabled:         true,
		DuringFocusOnly: true,
		IntervalMinutes: map[content.BreakCategory]int{
			content.BreakWater:   30,
			content.BreakStretch: 45,
			content.BreakEyes:    20,
			content.BreakWalk:    60,
			content.BreakBreathe: 30,
		},
		EnabledCategories:  []content.BreakCategory{content.BreakWater, content.BreakStretch, content.BreakEyes},
		IntegrateWithWater: true,
		AutoLogWater:       false,
		WaterAmountML:      150,
		Sound:              true,
		Vibration:          true,
		ShowMotivation:     true,
	}
}

// CategoryEnabled reports whether the category appears in EnabledCategories.
func (s Settings) CategoryEnabled(category content.BreakCategory) bool {
	for _, c := range s.EnabledCategories {
		if c == category {
			return true
		}
	}
	return false
}

// Interval returns the configured repeat interval for a category, or 0 when
// none is configured.
func (s Settings) Interval(category content.BreakCategory) int {
	return s.IntervalMinutes[category]
}

// Validate rejects configurations that would break trigger computation.
func (s Settings) Validate() error {
	for category, interval := range s.IntervalMinutes {
		if interval <= 0 {
			return errors.Errorf("interval for %s must be positive, got %d", category, interval)
		}
	}
	return nil
}

// MergeSettings overlays a raw persisted record onto the defaults. Fields
// absent from raw keep their default value; a nil raw returns the defaults
// unchanged.
func MergeSettings(raw []byte, defaults Settings) (Settings, error) {
	merged := defaults
	// Unmarshalling into the defaults' map would mutate it in place.
	merged.IntervalMinutes = make(map[content.BreakCategory]int, len(defaults.IntervalMinutes))
	for category, interval := range defaults.IntervalMinutes {
		merged.IntervalMinutes[category] = interval
	}
	if len(raw) == 0 {
		return merged, nil
	}
	if err := json.Unmarshal(raw, &merged); err != nil {
		return defaults, errors.Wrap(err, "failed to unmarshal break settings")
	}
	return merged, nil
}

// SettingsPatch is a partial settings update. Nil fields keep the current
// value.
type SettingsPatch struct {
	Enabled            *bool                         `json:"enabled,omitempty"`
	DuringFocusOnly    *bool                         `json:"duringFocusOnly,omitempty"`
	IntervalMinutes    map[content.BreakCategory]int `json:"intervalMinutes,omitempty"`
	EnabledCategories  []content.BreakCategory       `json:"enabledCategories,omitempty"`
	IntegrateWithWater *bool                         `json:"integrateWithWater,omitempty"`
	AutoLogWater       *bool                         `json:"autoLogWater,omitempty"`
	WaterAmountML      *int                          `json:"waterAmountMl,omitempty"`
	Sound              *bool                         `json:"sound,omitempty"`
	Vibration          *bool                         `json:"vibration,omitempty"`
	ShowMotivation     *bool                         `json:"showMotivation,omitempty"`
}

// Apply overlays the patch onto settings, one level deep.
func (p SettingsPatch) Apply(s Settings) Settings {
	if p.Enabled != nil {
		s.Enabled = *p.Enabled
	}
	if p.DuringFocusOnly != nil {
		s.DuringFocusOnly = *p.DuringFocusOnly
	}
	if p.IntervalMinutes != nil {
		s.IntervalMinutes = p.IntervalMinutes
	}
	if p.EnabledCategories != nil {
		s.EnabledCategories = p.EnabledCategories
	}
	if p.IntegrateWithWater != nil {
		s.IntegrateWithWater = *p.IntegrateWithWater
	}
	if p.AutoLogWater != nil {
		s.AutoLogWater = *p.AutoLogWater
	}
	if p.WaterAmountML != nil {
		s.WaterAmountML = *p.WaterAmountML
	}
	if p.Sound != nil {
		s.Sound = *p.Sound
	}
	if p.Vibration != nil {
		s.Vibration = *p.Vibration
	}
	if p.ShowMotivation != nil {
		s.ShowMotivation = *p.ShowMotivation
	}
	return s
}
