package compliance

import (
	"math"
	"time"

	"complyhub/models"
)

// periodDays approximates each frequency as a day count for counting
// expected occurrences inside a window. Daily and the yearly
// frequencies are exact per the scoring rules; a window shorter than
// the period expects zero occurrences. Monthly is fixed at 30 days, so
// a 28-day February window is due zero monthly checks and the scorer
// treats that month as fully compliant for those logbooks.
var periodDays = map[models.Frequency]int{
	models.FreqDaily:       1,
	models.FreqWeekly:      7,
	models.FreqMonthly:     30,
	models.FreqQuarterly:   91,
	models.FreqSixMonthly:  182,
	models.FreqAnnually:    365,
	models.FreqTwoYearly:   730,
	models.FreqThreeYearly: 1095,
	models.FreqFiveYearly:  1825,
}

// ExpectedOccurrences returns how many checks a logbook of the given
// frequency should have produced in [start, end).
func ExpectedOccurrences(freq models.Frequency, start, end time.Time) int {
	if !end.After(start) {
		return 0
	}
	pd, ok := periodDays[freq]
	if !ok {
		return 0
	}
	days := int(end.Sub(start).Hours() / 24)
	return days / pd
}

// LogbookActivity pairs a logbook with its entries for scoring.
type LogbookActivity struct {
	Logbook models.Logbook
	Entries []models.LogbookEntry
}

// PeriodScore is the expected-vs-completed tally for one window.
// A window with nothing due scores a perfect 100.
type PeriodScore struct {
	Due       int `json:"due"`
	Completed int `json:"completed"`
	Score     int `json:"score"`
}

// MonthComparison reports the current month-to-date score against the
// whole of the previous month. Improved is true only when the score
// actually rose; holding level counts as no improvement.
type MonthComparison struct {
	Current       PeriodScore `json:"current"`
	Previous      PeriodScore `json:"previous"`
	PointsDelta   int         `json:"points_delta"`
	PercentChange float64     `json:"percent_change"`
	Improved      bool        `json:"improved"`
}

// ScoreWindow tallies every logbook's expected and completed entry
// counts over [start, end). Completions are capped at the expected
// count so over-completion cannot inflate the score.
func ScoreWindow(activities []LogbookActivity, start, end time.Time) PeriodScore {
	var totalDue, totalCompleted int
	for _, a := range activities {
		due := ExpectedOccurrences(a.Logbook.Frequency, start, end)
		if due == 0 {
			continue
		}
		completed := 0
		for _, e := range a.Entries {
			if !e.PerformedAt.Before(start) && e.PerformedAt.Before(end) {
				completed++
			}
		}
		if completed > due {
			completed = due
		}
		totalDue += due
		totalCompleted += completed
	}
	score := 100
	if totalDue > 0 {
		score = int(math.Round(100 * float64(totalCompleted) / float64(totalDue)))
	}
	return PeriodScore{Due: totalDue, Completed: totalCompleted, Score: score}
}

// CompareMonths scores the current month-to-date window against the
// entirety of the previous calendar month.
func CompareMonths(activities []LogbookActivity, now time.Time) MonthComparison {
	curStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	prevStart := curStart.AddDate(0, -1, 0)

	current := ScoreWindow(activities, curStart, now)
	previous := ScoreWindow(activities, prevStart, curStart)

	delta := current.Score - previous.Score
	var pct float64
	if previous.Score != 0 {
		pct = 100 * float64(delta) / float64(previous.Score)
	}
	return MonthComparison{
		Current:       current,
		Previous:      previous,
		PointsDelta:   delta,
		PercentChange: pct,
		Improved:      delta > 0,
	}
}

// AverageComplianceScore averages the stored per-property scores,
// rounded to the nearest integer. No properties means score 0.
func AverageComplianceScore(properties []models.Property) int {
	if len(properties) == 0 {
		return 0
	}
	total := 0
	for _, p := range properties {
		total += p.ComplianceScore
	}
	return int(math.Round(float64(total) / float64(len(properties))))
}
