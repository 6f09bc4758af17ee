package booking

import (
	"context"
	"errors"

	"complyhub/models"

	"go.uber.org/zap"
)

// validTransitions is the booking state machine. Rejected, completed
// and cancelled are terminal.
var validTransitions = map[models.BookingStatus][]models.BookingStatus{
	models.BookingPending:  {models.BookingApproved, models.BookingRejected},
	models.BookingApproved: {models.BookingAssigned, models.BookingCancelled},
	models.BookingAssigned: {models.BookingCompleted, models.BookingCancelled},
}

func transitionAllowed(from, to models.BookingStatus) bool {
	for _, s := range validTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Create persists a new booking. Owners may create directly as
// approved, which queues invoice creation the same way a
// pending-to-approved transition would; anything else starts pending.
func (svc *DefaultBookingService) Create(ctx context.Context, actor *models.User, booking models.Booking) (*models.BookingTransitionResult, error) {
	if booking.Status == "" {
		booking.Status = models.BookingPending
	}
	if booking.Status != models.BookingPending && booking.Status != models.BookingApproved {
		return nil, &LifecycleError{
			Code:    CodeInvalidStatus,
			Message: "a booking can only be created as pending or approved",
		}
	}
	booking.UserID = actor.ID
	booking.AssigneeContact = SanitizeContact(booking.AssigneeContact)

	id, err := svc.Repo.Create(ctx, booking)
	if err != nil {
		svc.Logger.Error("failed to create booking", zap.Error(err))
		return nil, NewPersistFailedError()
	}
	created, err := svc.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, NewPersistFailedError()
	}

	result := &models.BookingTransitionResult{Booking: created}
	if created.Status == models.BookingApproved {
		result.InvoiceQueued = svc.enqueueInvoice(ctx, created.ID)
	}
	return result, nil
}

// Transition validates and applies a status change. Validation order:
// the completed-documents gate first, then assignee field completeness,
// then transition legality, then persistence. Approved and cancelled
// clear the assignee group; completed stamps CompletedAt.
func (svc *DefaultBookingService) Transition(ctx context.Context, actor *models.User, bookingID string, req models.BookingTransitionRequest) (*models.BookingTransitionResult, error) {
	if !req.Status.Valid() {
		return nil, &LifecycleError{Code: CodeInvalidStatus, Message: "unknown booking status"}
	}

	current, err := svc.Repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if actor.Role != models.RoleContractor && current.UserID != actor.ID {
		return nil, errors.New("booking not found")
	}

	merged := *current
	if req.AssigneeName != "" {
		merged.AssigneeName = req.AssigneeName
	}
	if req.AssigneeContact != "" {
		merged.AssigneeContact = SanitizeContact(req.AssigneeContact)
	}
	if req.AssigneeEmail != "" {
		merged.AssigneeEmail = req.AssigneeEmail
	}
	if req.AssessmentTime != nil {
		merged.AssessmentTime = req.AssessmentTime
	}

	// (a) completing requires a document uploaded in this interaction.
	if req.Status == models.BookingCompleted && len(req.DocumentIDs) == 0 {
		return nil, NewDocumentsRequiredError()
	}

	// (b) every target except approved/cancelled requires the full
	// assignee group.
	if req.Status != models.BookingApproved && req.Status != models.BookingCancelled {
		if missing := missingAssigneeFields(&merged); len(missing) > 0 {
			return nil, NewAssigneeIncompleteError(missing)
		}
	}

	if !transitionAllowed(current.Status, req.Status) {
		return nil, NewInvalidTransitionError(string(current.Status), string(req.Status))
	}

	merged.Status = req.Status
	switch req.Status {
	case models.BookingApproved, models.BookingCancelled:
		// No assessor to track in these states.
		merged.AssigneeName = ""
		merged.AssigneeContact = ""
		merged.AssigneeEmail = ""
		merged.AssessmentTime = nil
	case models.BookingCompleted:
		completedAt := svc.now()
		merged.CompletedAt = &completedAt
	}

	if err := svc.Repo.Update(ctx, &merged); err != nil {
		svc.Logger.Error("failed to update booking",
			zap.String("bookingID", bookingID), zap.Error(err))
		return nil, NewPersistFailedError()
	}

	result := &models.BookingTransitionResult{Booking: &merged}
	if req.Status == models.BookingApproved {
		result.InvoiceQueued = svc.enqueueInvoice(ctx, merged.ID)
	}
	return result, nil
}

// enqueueInvoice queues invoice creation for an approved booking.
// The status change is already persisted: a queue failure is logged
// and surfaced but never rolls the approval back.
func (svc *DefaultBookingService) enqueueInvoice(ctx context.Context, bookingID string) bool {
	if svc.Enqueuer == nil {
		return false
	}
	if err := svc.Enqueuer.EnqueueInvoiceCreate(ctx, []string{bookingID}); err != nil {
		svc.Logger.Error("failed to queue invoice creation",
			zap.String("bookingID", bookingID), zap.Error(err))
		return false
	}
	return true
}

func missingAssigneeFields(b *models.Booking) []string {
	var missing []string
	if b.AssigneeName == "" {
		missing = append(missing, "assignee name")
	}
	if b.AssigneeContact == "" {
		missing = append(missing, "assignee contact")
	}
	if b.AssigneeEmail == "" {
		missing = append(missing, "assignee email")
	}
	if b.AssessmentTime == nil {
		missing = append(missing, "assessment time")
	}
	return missing
}

// GetByID fetches a booking the actor may see.
func (svc *DefaultBookingService) GetByID(ctx context.Context, actor *models.User, bookingID string) (*models.Booking, error) {
	booking, err := svc.Repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if actor.Role != models.RoleContractor && booking.UserID != actor.ID {
		return nil, errors.New("booking not found")
	}
	return booking, nil
}
