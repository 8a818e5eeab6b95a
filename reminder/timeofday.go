// Package reminder implements the hydration reminder engine: quiet-hour
// aware schedule generation, intake pattern analysis, adaptive reminder
// selection, and trigger registration against an injected scheduling boundary.
package reminder

import (
	"fmt"

	"github.com/pkg/errors"
)

// MinutesPerDay is the number of minutes in one wall-clock day.
const MinutesPerDay = 24 * 60

// TimeOfDay is a wall-clock time expressed as minutes from midnight,
// in the range [0, MinutesPerDay).
type TimeOfDay int

// ParseTimeOfDay parses an "HH:MM" string.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	var hour, minute int
	if _, err := fmt.Sscanf(s, "%d:%d", &hour, &minute); err != nil {
		return 0, errors.Wrapf(ErrInvalidTime, "%q", s)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, errors.Wrapf(ErrInvalidTime, "%q", s)
	}
	return TimeOfDay(hour*60 + minute), nil
}

// MustTimeOfDay parses an "HH:MM" string and panics on failure. Intended for
// constants and tests.
func MustTimeOfDay(s string) TimeOfDay {
	t, err := ParseTimeOfDay(s)
	if err != nil {
		panic(err)
	}
	return t
}

// TimeOfDayFromClock builds a TimeOfDay from an hour and minute, wrapping
// into the valid range.
func TimeOfDayFromClock(hour, minute int) TimeOfDay {
	m := (hour*60 + minute) % MinutesPerDay
	if m < 0 {
		m += MinutesPerDay
	}
	return TimeOfDay(m)
}

func (t TimeOfDay) Hour() int {
	return int(t) / 60
}

func (t TimeOfDay) Minute() int {
	return int(t) % 60
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// MarshalJSON encodes the time as an "HH:MM" string, the format persisted
// settings use.
func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return errors.Wrapf(ErrInvalidTime, "%s", s)
	}
	parsed, err := ParseTimeOfDay(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Window is a daily time window. Start > End denotes a window that crosses
// midnight (e.g. 22:00-07:00). Start == End is a zero-width window that
// contains nothing; a full-day window cannot be expressed, matching the
// arithmetic the mobile app shipped with.
type Window struct {
	Start TimeOfDay `json:"start"`
	End   TimeOfDay `json:"end"`
}

// Contains reports whether t falls inside the window. The start bound is
// inclusive and the end bound exclusive, so back-to-back windows never
// overlap. Total over all minute-of-day values.
func (w Window) Contains(t TimeOfDay) bool {
	switch {
	case w.Start == w.End:
		return false
	case w.Start < w.End:
		return t >= w.Start && t < w.End
	default: // crosses midnight
		return t >= w.Start || t < w.End
	}
}
