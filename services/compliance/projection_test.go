package compliance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"complyhub/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNextDue(t *testing.T) {
	tests := []struct {
		name     string
		last     time.Time
		freq     models.Frequency
		expected time.Time
	}{
		{name: "daily", last: date(2026, time.March, 14), freq: models.FreqDaily, expected: date(2026, time.March, 15)},
		{name: "weekly", last: date(2026, time.March, 14), freq: models.FreqWeekly, expected: date(2026, time.March, 21)},
		{name: "monthly", last: date(2026, time.March, 14), freq: models.FreqMonthly, expected: date(2026, time.April, 14)},
		{name: "monthly clamps Jan 31 to Feb 28", last: date(2026, time.January, 31), freq: models.FreqMonthly, expected: date(2026, time.February, 28)},
		{name: "monthly clamps to Feb 29 in leap year", last: date(2024, time.January, 31), freq: models.FreqMonthly, expected: date(2024, time.February, 29)},
		{name: "quarterly", last: date(2026, time.January, 15), freq: models.FreqQuarterly, expected: date(2026, time.April, 15)},
		{name: "quarterly clamps Nov 30 from Aug 31", last: date(2026, time.August, 31), freq: models.FreqQuarterly, expected: date(2026, time.November, 30)},
		{name: "six monthly", last: date(2026, time.February, 10), freq: models.FreqSixMonthly, expected: date(2026, time.August, 10)},
		{name: "annually", last: date(2026, time.May, 2), freq: models.FreqAnnually, expected: date(2027, time.May, 2)},
		{name: "annually clamps leap day", last: date(2024, time.February, 29), freq: models.FreqAnnually, expected: date(2025, time.February, 28)},
		{name: "every 2 years", last: date(2026, time.May, 2), freq: models.FreqTwoYearly, expected: date(2028, time.May, 2)},
		{name: "every 3 years", last: date(2026, time.May, 2), freq: models.FreqThreeYearly, expected: date(2029, time.May, 2)},
		{name: "every 5 years", last: date(2026, time.May, 2), freq: models.FreqFiveYearly, expected: date(2031, time.May, 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NextDue(tt.last, tt.freq))
		})
	}
}

func TestNextDueDecemberRollsYear(t *testing.T) {
	got := NextDue(date(2026, time.December, 15), models.FreqMonthly)
	assert.Equal(t, date(2027, time.January, 15), got)
}

func TestClassifyAssessment(t *testing.T) {
	now := date(2026, time.September, 1)

	t.Run("no completion keeps stored status", func(t *testing.T) {
		assert.Equal(t, "pending", ClassifyAssessment(nil, models.BookingPending, now))
		assert.Equal(t, "pending", ClassifyAssessment(nil, "", now))
		assert.Equal(t, "assigned", ClassifyAssessment(nil, models.BookingAssigned, now))
	})

	t.Run("expired window is overdue", func(t *testing.T) {
		completed := now.AddDate(0, 0, -400)
		assert.Equal(t, StatusOverdue, ClassifyAssessment(&completed, models.BookingCompleted, now))
	})

	t.Run("expiring within 30 days is due soon", func(t *testing.T) {
		completed := now.AddDate(0, 0, -340)
		assert.Equal(t, StatusDueSoon, ClassifyAssessment(&completed, models.BookingCompleted, now))
	})

	t.Run("recent completion is complete", func(t *testing.T) {
		completed := now.AddDate(0, 0, -10)
		assert.Equal(t, StatusComplete, ClassifyAssessment(&completed, models.BookingCompleted, now))
	})
}

func TestProjectLogbook(t *testing.T) {
	now := date(2026, time.September, 1)
	lb := models.Logbook{ID: "lb1", Name: "Fire Alarm Test", Frequency: models.FreqWeekly, Active: true}

	t.Run("no entries is always due", func(t *testing.T) {
		proj := ProjectLogbook(lb, nil, now)
		assert.True(t, proj.Overdue)
		assert.Equal(t, StatusNoEntry, proj.Status)
		assert.Nil(t, proj.NextDue)
	})

	t.Run("recent entry projects next due", func(t *testing.T) {
		entries := []models.LogbookEntry{
			{LogbookID: "lb1", Status: models.EntryWorking, PerformedAt: date(2026, time.August, 30)},
			{LogbookID: "lb1", Status: models.EntryWorking, PerformedAt: date(2026, time.August, 23)},
		}
		proj := ProjectLogbook(lb, entries, now)
		require.NotNil(t, proj.NextDue)
		assert.Equal(t, date(2026, time.September, 6), *proj.NextDue)
		assert.False(t, proj.Overdue)
		assert.Equal(t, StatusDueSoon, proj.Status)
	})

	t.Run("stale entry is overdue", func(t *testing.T) {
		entries := []models.LogbookEntry{
			{LogbookID: "lb1", Status: models.EntryWorking, PerformedAt: date(2026, time.July, 1)},
		}
		proj := ProjectLogbook(lb, entries, now)
		assert.True(t, proj.Overdue)
		assert.Equal(t, StatusOverdue, proj.Status)
	})

	t.Run("unsorted entries use the latest", func(t *testing.T) {
		annual := models.Logbook{ID: "lb2", Frequency: models.FreqAnnually}
		entries := []models.LogbookEntry{
			{PerformedAt: date(2025, time.January, 5)},
			{PerformedAt: date(2026, time.June, 1)},
			{PerformedAt: date(2024, time.March, 9)},
		}
		proj := ProjectLogbook(annual, entries, now)
		require.NotNil(t, proj.NextDue)
		assert.Equal(t, date(2027, time.June, 1), *proj.NextDue)
		assert.Equal(t, StatusComplete, proj.Status)
	})
}
