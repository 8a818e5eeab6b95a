package store

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/pkg/errors"

	"github.com/hrygo/hydromate/reminder"
)

// LastNDays returns up to n most recent historical days, oldest first. The
// intake record format itself belongs to the tracking feature; the engine
// only consumes this per-hour aggregate. Absent or corrupt history reads as
// empty rather than failing the scheduling computation.
func (s *Store) LastNDays(ctx context.Context, n int) ([]reminder.HistoricalDay, error) {
	raw, err := s.Get(ctx, KeyWaterHistory)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "failed to read water history")
	}

	var days []reminder.HistoricalDay
	if err := json.Unmarshal(raw, &days); err != nil {
		slog.Warn("corrupt water history, treating as empty", "error", err)
		return nil, nil
	}

	if len(days) > n {
		days = days[len(days)-n:]
	}
	return days, nil
}

// AppendIntake records logged volume against an hour of a calendar day. The
// day record is created on first log and only ever appended to within the
// same day.
func (s *Store) AppendIntake(ctx context.Context, date string, hour int, volume float64) error {
	if hour < 0 || hour > 23 {
		return errors.Errorf("hour out of range: %d", hour)
	}

	days, err := s.LastNDays(ctx, 365)
	if err != nil {
		return err
	}

	if len(days) == 0 || days[len(days)-1].Date != date {
		days = append(days, reminder.HistoricalDay{
			Date:         date,
			HourlyTotals: make(map[int]float64),
		})
	}
	today := &days[len(days)-1]
	if today.HourlyTotals == nil {
		today.HourlyTotals = make(map[int]float64)
	}
	today.HourlyTotals[hour] += volume

	raw, err := json.Marshal(days)
	if err != nil {
		return errors.Wrap(err, "failed to serialize water history")
	}
	return s.Set(ctx, KeyWaterHistory, raw)
}
