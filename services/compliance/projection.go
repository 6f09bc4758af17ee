package compliance

import (
	"time"

	"complyhub/models"
)

// Assessment validity window and the "due soon" horizon.
const (
	ValidityYears  = 1
	DueSoonHorizon = 30 * 24 * time.Hour
)

// Status classifications for assessments and logbook projections.
const (
	StatusOverdue  = "overdue"
	StatusDueSoon  = "due soon"
	StatusComplete = "complete"
	StatusNoEntry  = "No entries yet"
)

// addCalendar adds years and months with true calendar arithmetic,
// clamping to the last day of the target month. Adding one month to
// Jan 31 yields Feb 28 (or 29), never Mar 2.
func addCalendar(t time.Time, years, months int) time.Time {
	firstOfTarget := time.Date(t.Year()+years, t.Month()+time.Month(months), 1,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	day := t.Day()
	if last := daysInMonth(firstOfTarget); day > last {
		day = last
	}
	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), day,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func daysInMonth(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
}

// NextDue returns when a check performed at last is next due under the
// given frequency.
func NextDue(last time.Time, freq models.Frequency) time.Time {
	switch freq {
	case models.FreqDaily:
		return last.AddDate(0, 0, 1)
	case models.FreqWeekly:
		return last.AddDate(0, 0, 7)
	case models.FreqMonthly:
		return addCalendar(last, 0, 1)
	case models.FreqQuarterly:
		return addCalendar(last, 0, 3)
	case models.FreqSixMonthly:
		return addCalendar(last, 0, 6)
	case models.FreqAnnually:
		return addCalendar(last, 1, 0)
	case models.FreqTwoYearly:
		return addCalendar(last, 2, 0)
	case models.FreqThreeYearly:
		return addCalendar(last, 3, 0)
	case models.FreqFiveYearly:
		return addCalendar(last, 5, 0)
	}
	return last
}

// ClassifyAssessment classifies a booking-style record with a one-year
// validity window. A record that was never completed keeps its stored
// status, defaulting to pending.
func ClassifyAssessment(completedAt *time.Time, stored models.BookingStatus, now time.Time) string {
	if completedAt == nil {
		if stored == "" {
			stored = models.BookingPending
		}
		return string(stored)
	}
	expiry := addCalendar(*completedAt, ValidityYears, 0)
	if expiry.Before(now) {
		return StatusOverdue
	}
	if !expiry.After(now.Add(DueSoonHorizon)) {
		return StatusDueSoon
	}
	return StatusComplete
}

// LogbookProjection is the derived due state of one logbook.
type LogbookProjection struct {
	LogbookID string     `json:"logbook_id"`
	Name      string     `json:"name"`
	Frequency string     `json:"frequency"`
	NextDue   *time.Time `json:"next_due,omitempty"`
	Overdue   bool       `json:"overdue"`
	Status    string     `json:"status"`
}

// ProjectLogbook derives the next-due date and status for a logbook
// from its most recent entry. A logbook with no entries is always due.
func ProjectLogbook(lb models.Logbook, entries []models.LogbookEntry, now time.Time) LogbookProjection {
	proj := LogbookProjection{
		LogbookID: lb.ID,
		Name:      lb.Name,
		Frequency: string(lb.Frequency),
	}
	latest := latestPerformedAt(entries)
	if latest == nil {
		proj.Overdue = true
		proj.Status = StatusNoEntry
		return proj
	}
	due := NextDue(*latest, lb.Frequency)
	proj.NextDue = &due
	switch {
	case due.Before(now):
		proj.Overdue = true
		proj.Status = StatusOverdue
	case !due.After(now.Add(DueSoonHorizon)):
		proj.Status = StatusDueSoon
	default:
		proj.Status = StatusComplete
	}
	return proj
}

// latestPerformedAt scans for the most recent entry. Entries usually
// arrive most-recent-first but ordering is not assumed.
func latestPerformedAt(entries []models.LogbookEntry) *time.Time {
	var latest *time.Time
	for i := range entries {
		at := entries[i].PerformedAt
		if latest == nil || at.After(*latest) {
			latest = &at
		}
	}
	return latest
}
