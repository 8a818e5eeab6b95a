package reminder

import (
	"fmt"
	"strings"
)

// AdaptiveToleranceMinutes is the window around a base entry within which an
// adaptive reminder would double up and is therefore suppressed.
const AdaptiveToleranceMinutes = 15

// SelectExtraReminders emits one adaptive schedule entry per low-intake hour,
// skipping hours already covered by a base entry within the tolerance window.
// Returns nil when adaptive reminders are disabled.
func SelectExtraReminders(settings Settings, pattern PatternSummary, base []TimeOfDay) []ScheduleEntry {
	if !settings.Adaptive {
		return nil
	}

	var extras []ScheduleEntry
	for _, hour := range pattern.LowHours {
		candidate := TimeOfDayFromClock(hour, 0)
		if coveredBy(candidate, base) {
			continue
		}
		extras = append(extras, ScheduleEntry{Time: candidate, Category: CategoryAdaptive})
	}
	return extras
}

func coveredBy(t TimeOfDay, base []TimeOfDay) bool {
	for _, b := range base {
		delta := int(t) - int(b)
		if delta < 0 {
			delta = -delta
		}
		// Distance wraps at midnight like the schedule itself does.
		if wrapped := MinutesPerDay - delta; wrapped < delta {
			delta = wrapped
		}
		if delta <= AdaptiveToleranceMinutes {
			return true
		}
	}
	return false
}

// AdaptiveExplanation is the UI-facing view of adaptive reminder selection.
// It is a pure read of the same selection the engine schedules, so the
// explanation and the scheduled set cannot diverge.
type AdaptiveExplanation struct {
	IsEnabled      bool   `json:"isEnabled"`
	ExtraReminders []int  `json:"extraReminders"`
	Explanation    string `json:"explanation"`
}

// ExplainExtraReminders renders the adaptive selection for display.
func ExplainExtraReminders(settings Settings, extras []ScheduleEntry) AdaptiveExplanation {
	if !settings.Adaptive {
		return AdaptiveExplanation{
			Explanation: "Adaptive reminders are disabled. Enable them to get smart reminders based on your drinking patterns.",
		}
	}

	if len(extras) == 0 {
		return AdaptiveExplanation{
			IsEnabled:   true,
			Explanation: "No low-activity hours detected. You have consistent hydration throughout the day!",
		}
	}

	hours := make([]int, len(extras))
	parts := make([]string, len(extras))
	for i, e := range extras {
		hours[i] = e.Time.Hour()
		parts[i] = fmt.Sprintf("%d:00", e.Time.Hour())
	}
	return AdaptiveExplanation{
		IsEnabled:      true,
		ExtraReminders: hours,
		Explanation: fmt.Sprintf("Extra reminders will be sent at: %s because you tend to forget to drink during these hours.",
			strings.Join(parts, ", ")),
	}
}
