// Package insights is the aggregation engine: pure functions that transform
// a user's fetched focus, journal and challenge records into derived
// metrics. Nothing here touches the database or holds state, so every
// function is safe to call concurrently for different users or windows.
// Degenerate input (empty slices, missing optional fields) always degrades
// to zero/neutral output, never an error.
package insights

import (
	"fmt"
	"math"
	"time"

	"github.com/shahriar7ahmed/aura-pastel-insight-nexus/internal/models"
)

type FocusInsights struct {
	TotalMinutes         int          `json:"total_minutes"`
	TotalHours           string       `json:"total_hours"`
	TotalSessions        int          `json:"total_sessions"`
	AverageSessionLength int          `json:"average_session_length"` // minutes
	Last7Days            []DailyFocus `json:"last_7_days"`
}

// DailyFocus is one calendar day's accumulated focus time.
type DailyFocus struct {
	Date  string `json:"date"` // ISO date (YYYY-MM-DD)
	Hours string `json:"hours"`
}

// ProductivityPattern captures when a user's focused minutes accumulate.
type ProductivityPattern struct {
	PeakHour           int         `json:"peak_productivity_hour"` // 0-23
	PeakDay            int         `json:"peak_productivity_day"`  // 0=Sunday .. 6=Saturday
	HourlyDistribution map[int]int `json:"hourly_distribution"`    // hour -> minutes
}

// ComputeFocusInsights rolls up completed sessions into totals and a
// 7-point last-7-days series ending at now, oldest day first.
func ComputeFocusInsights(sessions []models.FocusSession, now time.Time) FocusInsights {
	totalMinutes := 0
	for _, s := range sessions {
		totalMinutes += s.DurationMinutes()
	}

	avg := 0
	if len(sessions) > 0 {
		avg = int(math.Round(float64(totalMinutes) / float64(len(sessions))))
	}

	return FocusInsights{
		TotalMinutes:         totalMinutes,
		TotalHours:           fmt.Sprintf("%.1f", float64(totalMinutes)/60),
		TotalSessions:        len(sessions),
		AverageSessionLength: avg,
		Last7Days:            last7DaysFocus(sessions, now),
	}
}

func last7DaysFocus(sessions []models.FocusSession, now time.Time) []DailyFocus {
	days := make([]DailyFocus, 0, 7)
	for i := 6; i >= 0; i-- {
		dateStr := now.AddDate(0, 0, -i).Format("2006-01-02")

		dayTotal := 0
		for _, s := range sessions {
			// Match on the session's local start date.
			if s.StartTime.Format("2006-01-02") == dateStr {
				dayTotal += s.DurationMinutes()
			}
		}

		days = append(days, DailyFocus{
			Date:  dateStr,
			Hours: fmt.Sprintf("%.1f", float64(dayTotal)/60),
		})
	}
	return days
}

// ComputeProductivityPatterns buckets session minutes by start hour and by
// weekday and reports the peaks. Ties keep the first (lowest-index) bucket;
// the scan uses strict greater-than so that behavior is deterministic.
func ComputeProductivityPatterns(sessions []models.FocusSession) ProductivityPattern {
	byHour := make(map[int]int)
	byDay := make(map[int]int)
	for _, s := range sessions {
		byHour[s.StartTime.Hour()] += s.DurationMinutes()
		byDay[int(s.StartTime.Weekday())] += s.DurationMinutes()
	}

	peakHour, best := 0, 0
	for h := 0; h < 24; h++ {
		if byHour[h] > best {
			best = byHour[h]
			peakHour = h
		}
	}

	peakDay, bestDay := 0, 0
	for d := 0; d < 7; d++ {
		if byDay[d] > bestDay {
			bestDay = byDay[d]
			peakDay = d
		}
	}

	return ProductivityPattern{
		PeakHour:           peakHour,
		PeakDay:            peakDay,
		HourlyDistribution: byHour,
	}
}
