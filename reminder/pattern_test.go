package reminder

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// day builds one historical day with the given per-hour volumes.
func day(date string, volumes map[int]float64) HistoricalDay {
	return HistoricalDay{Date: date, HourlyTotals: volumes}
}

// week repeats the same per-hour volumes across seven days.
func week(volumes map[int]float64) []HistoricalDay {
	days := make([]HistoricalDay, 7)
	for i := range days {
		days[i] = day(fmt.Sprintf("2026-08-%02d", 20+i), volumes)
	}
	return days
}

func TestAnalyze_EmptyHistory(t *testing.T) {
	summary := Analyze(nil, 7, AnalyzerConfig{})

	assert.Empty(t, summary.PeakHours)
	assert.Empty(t, summary.LowHours)
	assert.Equal(t, 0, summary.TotalDaysAnalyzed)
	assert.Equal(t, "Start logging your water intake to get personalized insights!", summary.Recommendation)
}

func TestAnalyze_PeakHoursDescendingWithTieBreak(t *testing.T) {
	summary := Analyze(week(map[int]float64{
		9:  300,
		15: 300, // ties 9 on average, later hour loses
		12: 500,
		18: 100,
		20: 50,
		8:  25,
	}), 7, AnalyzerConfig{})

	require.Len(t, summary.PeakHours, 5)
	hours := make([]int, len(summary.PeakHours))
	for i, peak := range summary.PeakHours {
		hours[i] = peak.Hour
	}
	assert.Equal(t, []int{12, 9, 15, 18, 20}, hours)
}

func TestAnalyze_LowHoursRestrictedToWakingRange(t *testing.T) {
	// Strong intake at 12:00 only: every other hour averages zero, but only
	// waking hours may be flagged as low.
	summary := Analyze(week(map[int]float64{12: 1000}), 7, AnalyzerConfig{})

	require.NotEmpty(t, summary.LowHours)
	for _, hour := range summary.LowHours {
		assert.GreaterOrEqual(t, hour, DefaultWakingStartHour)
		assert.LessOrEqual(t, hour, DefaultWakingEndHour)
	}
	assert.NotContains(t, summary.LowHours, 3)
	assert.NotContains(t, summary.LowHours, 12)
}

func TestAnalyze_WakingRangeOverride(t *testing.T) {
	summary := Analyze(week(map[int]float64{12: 1000}), 7, AnalyzerConfig{WakingStart: 10, WakingEnd: 14})

	assert.Equal(t, []int{10, 11, 13, 14}, summary.LowHours)
}

func TestAnalyze_MissingDaysContributeZero(t *testing.T) {
	// One logged day in a seven-day window: the mean divides by the window,
	// not by days present.
	summary := Analyze([]HistoricalDay{day("2026-08-28", map[int]float64{10: 700})}, 7, AnalyzerConfig{})

	require.Len(t, summary.PeakHours, 1)
	assert.Equal(t, 10, summary.PeakHours[0].Hour)
	assert.InDelta(t, 100, summary.PeakHours[0].Average, 0.001)
}

func TestAnalyze_WindowTrimsOlderDays(t *testing.T) {
	days := week(map[int]float64{9: 100})
	days = append([]HistoricalDay{day("2026-08-01", map[int]float64{22: 9000})}, days...)

	summary := Analyze(days, 7, AnalyzerConfig{})

	assert.Equal(t, 7, summary.TotalDaysAnalyzed)
	for _, peak := range summary.PeakHours {
		assert.NotEqual(t, 22, peak.Hour, "trimmed day leaked into analysis")
	}
}

func TestAnalyze_RecommendationRules(t *testing.T) {
	t.Run("many low hours lists the first three", func(t *testing.T) {
		summary := Analyze(week(map[int]float64{12: 1000}), 7, AnalyzerConfig{})
		require.Greater(t, len(summary.LowHours), 3)
		assert.Contains(t, summary.Recommendation, "You tend to skip water during")
		assert.Contains(t, summary.Recommendation, "8:00, 9:00, 10:00")
	})

	t.Run("consistent intake praises the peak", func(t *testing.T) {
		volumes := make(map[int]float64)
		for hour := 8; hour <= 20; hour++ {
			volumes[hour] = 200
		}
		volumes[9] = 400
		summary := Analyze(week(volumes), 7, AnalyzerConfig{})

		assert.Empty(t, summary.LowHours)
		assert.Contains(t, summary.Recommendation, "Great job!")
		assert.Contains(t, summary.Recommendation, "9:00")
	})
}
