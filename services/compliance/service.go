package compliance

import (
	"context"
	"errors"
	"time"

	bookingRepo "complyhub/database/repository/booking"
	logbookRepo "complyhub/database/repository/logbook"
	propertyRepo "complyhub/database/repository/property"
	"complyhub/models"

	"go.uber.org/zap"
)

// AssessmentStatus is the classified state of one booking within a
// property summary.
type AssessmentStatus struct {
	BookingID   string `json:"booking_id"`
	ServiceType string `json:"service_type"`
	Status      string `json:"status"`
}

// PropertySummary is the per-property compliance view.
type PropertySummary struct {
	PropertyID  string              `json:"property_id"`
	Score       int                 `json:"score"` // stored compliance_score
	Monthly     MonthComparison     `json:"monthly"`
	Logbooks    []LogbookProjection `json:"logbooks"`
	Assessments []AssessmentStatus  `json:"assessments"`
}

// Dashboard aggregates across the caller's portfolio.
type Dashboard struct {
	Properties   int             `json:"properties"`
	AverageScore int             `json:"average_score"`
	Monthly      MonthComparison `json:"monthly"`
	OverdueCount int             `json:"overdue_count"`
}

// ComplianceService derives due-date and score projections over the
// stored data. All derivation is done by the pure functions in this
// package; the service only assembles their inputs.
type ComplianceService interface {
	PropertySummary(ctx context.Context, actor *models.User, propertyID string) (*PropertySummary, error)
	Dashboard(ctx context.Context, actor *models.User) (*Dashboard, error)
	RecomputeScores(ctx context.Context) error
}

// DefaultComplianceService is the production implementation.
type DefaultComplianceService struct {
	PropertyRepo propertyRepo.PropertyRepository
	LogbookRepo  logbookRepo.LogbookRepository
	BookingRepo  bookingRepo.BookingRepository
	Logger       *zap.Logger
}

// activityFor loads the active logbooks of a property with their
// entries, the input shape the scoring functions consume.
func (svc *DefaultComplianceService) activityFor(ctx context.Context, propertyID string) ([]LogbookActivity, error) {
	logbooks, err := svc.LogbookRepo.GetByPropertyID(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	activities := make([]LogbookActivity, 0, len(logbooks))
	for _, lb := range logbooks {
		if !lb.Active {
			continue
		}
		entries, err := svc.LogbookRepo.GetEntries(ctx, lb.ID)
		if err != nil {
			return nil, err
		}
		activities = append(activities, LogbookActivity{Logbook: lb, Entries: entries})
	}
	return activities, nil
}

// PropertySummary assembles the compliance view for one property.
func (svc *DefaultComplianceService) PropertySummary(ctx context.Context, actor *models.User, propertyID string) (*PropertySummary, error) {
	property, err := svc.PropertyRepo.GetByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if property.UserID != actor.ID {
		return nil, errors.New("property not found")
	}

	now := time.Now()
	activities, err := svc.activityFor(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	summary := &PropertySummary{
		PropertyID: propertyID,
		Score:      property.ComplianceScore,
		Monthly:    CompareMonths(activities, now),
	}
	for _, a := range activities {
		summary.Logbooks = append(summary.Logbooks, ProjectLogbook(a.Logbook, a.Entries, now))
	}

	bookings, err := svc.BookingRepo.GetByPropertyID(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	for _, b := range bookings {
		summary.Assessments = append(summary.Assessments, AssessmentStatus{
			BookingID:   b.ID,
			ServiceType: b.ServiceType,
			Status:      ClassifyAssessment(b.CompletedAt, b.Status, now),
		})
	}
	return summary, nil
}

// Dashboard aggregates the caller's whole portfolio: the averaged
// stored scores, a portfolio-wide month comparison, and how many
// logbooks are currently overdue.
func (svc *DefaultComplianceService) Dashboard(ctx context.Context, actor *models.User) (*Dashboard, error) {
	properties, err := svc.PropertyRepo.GetByUserID(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	var all []LogbookActivity
	overdue := 0
	for _, p := range properties {
		activities, err := svc.activityFor(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		for _, a := range activities {
			if ProjectLogbook(a.Logbook, a.Entries, now).Overdue {
				overdue++
			}
		}
		all = append(all, activities...)
	}

	return &Dashboard{
		Properties:   len(properties),
		AverageScore: AverageComplianceScore(properties),
		Monthly:      CompareMonths(all, now),
		OverdueCount: overdue,
	}, nil
}

// RecomputeScores refreshes every property's stored compliance score
// from its current month-to-date window. Run nightly by the worker.
func (svc *DefaultComplianceService) RecomputeScores(ctx context.Context) error {
	properties, err := svc.PropertyRepo.GetAll(ctx)
	if err != nil {
		return err
	}

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	for _, p := range properties {
		activities, err := svc.activityFor(ctx, p.ID)
		if err != nil {
			svc.Logger.Error("score recompute: failed to load logbooks",
				zap.String("propertyID", p.ID), zap.Error(err))
			continue
		}
		score := ScoreWindow(activities, monthStart, now).Score
		if score == p.ComplianceScore {
			continue
		}
		if err := svc.PropertyRepo.UpdateComplianceScore(ctx, p.ID, score); err != nil {
			svc.Logger.Error("score recompute: failed to store score",
				zap.String("propertyID", p.ID), zap.Error(err))
		}
	}
	return nil
}
