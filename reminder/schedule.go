package reminder

import "sort"

// EntryCategory distinguishes base interval reminders from adaptive extras.
type EntryCategory string

const (
	CategoryBase     EntryCategory = "base"
	CategoryAdaptive EntryCategory = "adaptive"
)

// ScheduleEntry is one reminder fire-time in a generated daily schedule.
type ScheduleEntry struct {
	Time     TimeOfDay     `json:"time"`
	Category EntryCategory `json:"category"`
}

// GenerateSchedule produces the base daily fire-times for a repeating
// reminder: starting at the quiet window's end (midnight when quiet is nil),
// it steps forward by intervalMinutes, wrapping at 24:00, for exactly one
// full day, and drops any step that lands inside the quiet window.
//
// Consecutive entries are exactly intervalMinutes apart modulo skipped
// quiet-hour gaps, and the result is sorted ascending with no duplicates.
func GenerateSchedule(intervalMinutes int, quiet *Window) ([]TimeOfDay, error) {
	if intervalMinutes <= 0 {
		return nil, ErrInvalidInterval
	}

	start := TimeOfDay(0)
	if quiet != nil {
		start = quiet.End
	}

	var times []TimeOfDay
	// Walk one full day from the starting point; movement by offset rather
	// than by wrapped time keeps the loop finite for every interval.
	for offset := 0; offset < MinutesPerDay; offset += intervalMinutes {
		t := TimeOfDay((int(start) + offset) % MinutesPerDay)
		if quiet != nil && quiet.Contains(t) {
			continue
		}
		times = append(times, t)
	}

	sort.Slice(times, func(i, j int) bool { return times[i] < times[j] })
	return times, nil
}
