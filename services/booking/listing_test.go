package booking

import (
	"testing"
	"time"

	"complyhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listFixture() []models.Booking {
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	later := base.Add(48 * time.Hour)
	return []models.Booking{
		{ID: "b1", Status: models.BookingPending, CreatedAt: base},
		{ID: "b2", Status: models.BookingApproved, CreatedAt: base.Add(time.Hour), AssessmentTime: &later},
		{ID: "b3", Status: models.BookingPending, CreatedAt: base.Add(2 * time.Hour), AssessmentTime: &base},
		{ID: "b4", Status: models.BookingCompleted, CreatedAt: base.Add(3 * time.Hour)},
	}
}

func TestApplyListOptionsStatusFilter(t *testing.T) {
	result := applyListOptions(listFixture(), ListOptions{Status: models.BookingPending})
	require.Len(t, result.Bookings, 2)
	assert.Equal(t, 2, result.Total)
	assert.Equal(t, "b1", result.Bookings[0].ID)
	assert.Equal(t, "b3", result.Bookings[1].ID)
}

func TestApplyListOptionsSortByCreatedDesc(t *testing.T) {
	result := applyListOptions(listFixture(), ListOptions{Desc: true})
	require.Len(t, result.Bookings, 4)
	assert.Equal(t, "b4", result.Bookings[0].ID)
	assert.Equal(t, "b1", result.Bookings[3].ID)
}

func TestApplyListOptionsSortByAssessmentTime(t *testing.T) {
	// Bookings without an assessment time sort last.
	result := applyListOptions(listFixture(), ListOptions{SortBy: "assessment_time"})
	require.Len(t, result.Bookings, 4)
	assert.Equal(t, "b3", result.Bookings[0].ID)
	assert.Equal(t, "b2", result.Bookings[1].ID)
}

func TestApplyListOptionsPagination(t *testing.T) {
	result := applyListOptions(listFixture(), ListOptions{Page: 2, PerPage: 3})
	assert.Equal(t, 4, result.Total)
	require.Len(t, result.Bookings, 1)
	assert.Equal(t, "b4", result.Bookings[0].ID)

	// A page past the end is empty, not an error.
	result = applyListOptions(listFixture(), ListOptions{Page: 5, PerPage: 3})
	assert.Empty(t, result.Bookings)
	assert.Equal(t, 4, result.Total)
}
