package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"complyhub/models"
	"complyhub/services/pricing"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const sessionKeyPrefix = "booking_session:"

// InitiateSession starts the wizard: it verifies property ownership,
// resolves a price for each requested service, and caches the session.
func (s *DefaultSessionService) InitiateSession(ctx context.Context, actor *models.User, propertyID string, requests []models.ServiceRequest) (*models.BookingSession, error) {
	property, err := s.PropertyRepo.GetByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if property.UserID != actor.ID {
		return nil, &LifecycleError{
			Code:    CodePropertyNotOwned,
			Message: "property does not belong to the current user",
		}
	}
	if len(requests) == 0 {
		return nil, fmt.Errorf("at least one service must be selected")
	}

	selections := make([]models.ServiceSelection, 0, len(requests))
	for _, req := range requests {
		sel, err := pricing.Resolve(req, property.BuildingType)
		if err != nil {
			return nil, err
		}
		selections = append(selections, sel)
	}

	session := models.BookingSession{
		ID:         uuid.New().String(),
		UserID:     actor.ID,
		PropertyID: propertyID,
		Services:   selections,
		CreatedAt:  time.Now(),
	}
	if err := s.save(ctx, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// UpdateSession records the assignee step. The assessment time is
// validated against the clock here, at input time; it is not
// re-validated on final submission.
func (s *DefaultSessionService) UpdateSession(ctx context.Context, actor *models.User, sessionID string, details AssigneeDetails) (*models.BookingSession, error) {
	session, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.UserID != actor.ID {
		return nil, &LifecycleError{Code: CodeSessionNotFound, Message: "booking session not found or expired"}
	}

	if details.AssessmentTime != nil && details.AssessmentTime.Before(time.Now()) {
		return nil, &LifecycleError{
			Code:    CodeAssessmentTimePast,
			Message: "Assessment time cannot be in the past",
		}
	}

	if details.AssigneeName != "" {
		session.AssigneeName = details.AssigneeName
	}
	if details.AssigneeContact != "" {
		session.AssigneeContact = SanitizeContact(details.AssigneeContact)
	}
	if details.AssigneeEmail != "" {
		session.AssigneeEmail = details.AssigneeEmail
	}
	if details.AssessmentTime != nil {
		session.AssessmentTime = details.AssessmentTime
	}

	if err := s.save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// ConfirmSession turns the wizard state into a persisted booking and
// drops the session. Owners may approve directly; contractors always
// submit as pending. A selection still flagged contact-sales cannot be
// confirmed.
func (s *DefaultSessionService) ConfirmSession(ctx context.Context, actor *models.User, sessionID string, approveDirectly bool) (*models.BookingTransitionResult, error) {
	session, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.UserID != actor.ID {
		return nil, &LifecycleError{Code: CodeSessionNotFound, Message: "booking session not found or expired"}
	}

	for _, sel := range session.Services {
		if sel.ContactSales {
			return nil, &LifecycleError{
				Code:    CodeContactSalesPending,
				Message: fmt.Sprintf("%s requires a quote from our team before booking", sel.Name),
			}
		}
	}

	status := models.BookingPending
	if approveDirectly && actor.Role == models.RoleOwner {
		status = models.BookingApproved
	}

	names := make([]string, 0, len(session.Services))
	for _, sel := range session.Services {
		names = append(names, sel.Name)
	}

	booking := models.Booking{
		PropertyID:      session.PropertyID,
		ServiceType:     strings.Join(names, ", "),
		Services:        session.Services,
		Status:          status,
		AssigneeName:    session.AssigneeName,
		AssigneeContact: session.AssigneeContact,
		AssigneeEmail:   session.AssigneeEmail,
		AssessmentTime:  session.AssessmentTime,
	}
	result, err := s.Bookings.Create(ctx, actor, booking)
	if err != nil {
		return nil, err
	}

	if err := s.Cache.Del(ctx, sessionKeyPrefix+sessionID).Err(); err != nil {
		s.Logger.Warn("failed to drop confirmed booking session",
			zap.String("sessionID", sessionID), zap.Error(err))
	}
	return result, nil
}

// CancelSession drops the wizard state.
func (s *DefaultSessionService) CancelSession(ctx context.Context, sessionID string) error {
	if err := s.Cache.Del(ctx, sessionKeyPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("failed to cancel booking session: %w", err)
	}
	return nil
}

func (s *DefaultSessionService) save(ctx context.Context, session *models.BookingSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal booking session: %w", err)
	}
	ttl := s.TTL
	if ttl == 0 {
		ttl = 30 * time.Minute
	}
	if err := s.Cache.Set(ctx, sessionKeyPrefix+session.ID, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache booking session: %w", err)
	}
	return nil
}

func (s *DefaultSessionService) load(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	data, err := s.Cache.Get(ctx, sessionKeyPrefix+sessionID).Result()
	if err != nil {
		return nil, &LifecycleError{Code: CodeSessionNotFound, Message: "booking session not found or expired"}
	}
	var session models.BookingSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse booking session: %w", err)
	}
	return &session, nil
}
