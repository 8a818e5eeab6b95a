package reminder

import (
	"fmt"
	"sort"
	"strings"
)

// Waking-hours bound for low-intake detection. Hours outside this range are
// never flagged as "low" so that sleeping hours don't read as missed intake.
// Overridable via AnalyzerConfig.
const (
	DefaultWakingStartHour = 8
	DefaultWakingEndHour   = 20
)

// lowHourFraction is the fraction of the overall hourly mean below which a
// waking hour counts as a low-intake hour.
const lowHourFraction = 0.4

// peakHourLimit bounds how many peak hours a summary reports.
const peakHourLimit = 5

// HistoricalDay is the read aggregate of one calendar day of intake history:
// total logged volume per hour of day.
type HistoricalDay struct {
	Date         string          `json:"date"` // YYYY-MM-DD
	HourlyTotals map[int]float64 `json:"hourlyTotals"`
}

// HourAverage pairs an hour of day with its mean intake volume.
type HourAverage struct {
	Hour    int     `json:"hour"`
	Average float64 `json:"average"`
}

// PatternSummary is the result of analyzing recent intake history. It is
// recomputed on each query, never stored.
type PatternSummary struct {
	PeakHours         []HourAverage `json:"peakHours"`
	LowHours          []int         `json:"lowHours"`
	HourlyData        []HourAverage `json:"hourlyData"`
	TotalDaysAnalyzed int           `json:"totalDaysAnalyzed"`
	Recommendation    string        `json:"recommendation"`
}

// AnalyzerConfig tunes pattern analysis. The zero value selects the
// documented defaults.
type AnalyzerConfig struct {
	// WakingStart and WakingEnd bound the hours eligible for low-intake
	// detection (inclusive).
	WakingStart int
	WakingEnd   int
}

func (c AnalyzerConfig) withDefaults() AnalyzerConfig {
	if c.WakingStart == 0 && c.WakingEnd == 0 {
		c.WakingStart = DefaultWakingStartHour
		c.WakingEnd = DefaultWakingEndHour
	}
	return c
}

// Analyze computes per-hour mean intake across the last windowDays days and
// derives peak hours, low hours, and a recommendation. Days missing from
// history contribute zero volume, so sparse history biases toward "low".
// Empty history yields empty peak/low sets and a generic recommendation,
// never an error.
func Analyze(history []HistoricalDay, windowDays int, cfg AnalyzerConfig) PatternSummary {
	cfg = cfg.withDefaults()

	summary := PatternSummary{}
	if windowDays <= 0 {
		windowDays = 7
	}
	if len(history) > windowDays {
		history = history[len(history)-windowDays:]
	}
	summary.TotalDaysAnalyzed = len(history)

	if len(history) == 0 {
		summary.Recommendation = "Start logging your water intake to get personalized insights!"
		return summary
	}

	var totals [24]float64
	for _, day := range history {
		for hour, volume := range day.HourlyTotals {
			if hour < 0 || hour > 23 {
				continue
			}
			totals[hour] += volume
		}
	}

	// Means are taken over the full window, not over days present, so a
	// missing day drags every hour down rather than disappearing.
	var overall float64
	for hour := 0; hour < 24; hour++ {
		avg := totals[hour] / float64(windowDays)
		summary.HourlyData = append(summary.HourlyData, HourAverage{Hour: hour, Average: avg})
		overall += avg
	}
	overall /= 24

	peaks := make([]HourAverage, 0, 24)
	for _, h := range summary.HourlyData {
		if h.Average > 0 {
			peaks = append(peaks, h)
		}
	}
	// Descending by average, earlier hour wins ties.
	sort.SliceStable(peaks, func(i, j int) bool {
		if peaks[i].Average != peaks[j].Average {
			return peaks[i].Average > peaks[j].Average
		}
		return peaks[i].Hour < peaks[j].Hour
	})
	if len(peaks) > peakHourLimit {
		peaks = peaks[:peakHourLimit]
	}
	summary.PeakHours = peaks

	if overall > 0 {
		for _, h := range summary.HourlyData {
			if h.Hour < cfg.WakingStart || h.Hour > cfg.WakingEnd {
				continue
			}
			if h.Average < lowHourFraction*overall {
				summary.LowHours = append(summary.LowHours, h.Hour)
			}
		}
	}

	summary.Recommendation = recommend(summary)
	return summary
}

// recommend picks a deterministic recommendation from a small rule table
// keyed on where the peaks cluster and whether low hours exist.
func recommend(summary PatternSummary) string {
	if len(summary.LowHours) > 3 {
		shown := summary.LowHours
		if len(shown) > 3 {
			shown = shown[:3]
		}
		parts := make([]string, len(shown))
		for i, h := range shown {
			parts[i] = fmt.Sprintf("%d:00", h)
		}
		return fmt.Sprintf("You tend to skip water during %s. We'll remind you more during these times.", strings.Join(parts, ", "))
	}

	if len(summary.PeakHours) > 0 {
		top := summary.PeakHours[0]
		cluster := "in the evening"
		switch {
		case top.Hour < 12:
			cluster = "in the morning"
		case top.Hour < 17:
			cluster = "around midday"
		}
		if len(summary.LowHours) > 0 {
			return fmt.Sprintf("You drink most water %s (around %d:00). A few extra reminders will cover the quieter hours.", cluster, top.Hour)
		}
		return fmt.Sprintf("Great job! You drink most water %s (around %d:00, avg %.0fml).", cluster, top.Hour, top.Average)
	}

	return "Start logging your water intake to get personalized insights!"
}
