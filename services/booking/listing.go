package booking

import (
	"context"
	"sort"

	"complyhub/models"
)

// ListOptions filters, sorts and paginates an already-fetched booking
// slice in memory. The boundary is shaped so a server-side path could
// replace it without touching the lifecycle rules.
type ListOptions struct {
	Status  models.BookingStatus `json:"status,omitempty"`
	SortBy  string               `json:"sort_by,omitempty"` // "created_at" (default) or "assessment_time"
	Desc    bool                 `json:"desc,omitempty"`
	Page    int                  `json:"page,omitempty"`     // 1-based
	PerPage int                  `json:"per_page,omitempty"` // 0 = no pagination
}

// ListResult is one page of bookings plus the unpaginated total.
type ListResult struct {
	Bookings []models.Booking `json:"bookings"`
	Total    int              `json:"total"`
	Page     int              `json:"page"`
	PerPage  int              `json:"per_page"`
}

// ListByProperty returns the bookings for one property.
func (svc *DefaultBookingService) ListByProperty(ctx context.Context, actor *models.User, propertyID string, opts ListOptions) (*ListResult, error) {
	bookings, err := svc.Repo.GetByPropertyID(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	return applyListOptions(bookings, opts), nil
}

// ListByUser returns the actor's own bookings.
func (svc *DefaultBookingService) ListByUser(ctx context.Context, actor *models.User, opts ListOptions) (*ListResult, error) {
	bookings, err := svc.Repo.GetByUserID(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	return applyListOptions(bookings, opts), nil
}

func applyListOptions(bookings []models.Booking, opts ListOptions) *ListResult {
	filtered := bookings
	if opts.Status != "" {
		filtered = make([]models.Booking, 0, len(bookings))
		for _, b := range bookings {
			if b.Status == opts.Status {
				filtered = append(filtered, b)
			}
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		var before bool
		switch opts.SortBy {
		case "assessment_time":
			ti, tj := filtered[i].AssessmentTime, filtered[j].AssessmentTime
			switch {
			case ti == nil:
				before = false
			case tj == nil:
				before = true
			default:
				before = ti.Before(*tj)
			}
		default:
			before = filtered[i].CreatedAt.Before(filtered[j].CreatedAt)
		}
		if opts.Desc {
			return !before
		}
		return before
	})

	total := len(filtered)
	page, perPage := opts.Page, opts.PerPage
	if perPage > 0 {
		if page < 1 {
			page = 1
		}
		start := (page - 1) * perPage
		if start > total {
			start = total
		}
		end := start + perPage
		if end > total {
			end = total
		}
		filtered = filtered[start:end]
	}

	return &ListResult{Bookings: filtered, Total: total, Page: page, PerPage: perPage}
}
