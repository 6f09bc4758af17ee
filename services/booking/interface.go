package booking

import (
	"context"
	"time"

	bookingRepo "complyhub/database/repository/booking"
	propertyRepo "complyhub/database/repository/property"
	"complyhub/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// InvoiceEnqueuer queues the best-effort invoice-creation job that
// follows an approval. Failures are reported, never rolled back into
// the booking status.
type InvoiceEnqueuer interface {
	EnqueueInvoiceCreate(ctx context.Context, bookingIDs []string) error
}

// BookingService owns the booking lifecycle: creation, status
// transitions with their gates, and listing.
type BookingService interface {
	Create(ctx context.Context, actor *models.User, booking models.Booking) (*models.BookingTransitionResult, error)
	Transition(ctx context.Context, actor *models.User, bookingID string, req models.BookingTransitionRequest) (*models.BookingTransitionResult, error)
	GetByID(ctx context.Context, actor *models.User, bookingID string) (*models.Booking, error)
	ListByProperty(ctx context.Context, actor *models.User, propertyID string, opts ListOptions) (*ListResult, error)
	ListByUser(ctx context.Context, actor *models.User, opts ListOptions) (*ListResult, error)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo     bookingRepo.BookingRepository
	Enqueuer InvoiceEnqueuer
	Logger   *zap.Logger

	// Now is swappable in tests; defaults to time.Now.
	Now func() time.Time
}

func (svc *DefaultBookingService) now() time.Time {
	if svc.Now != nil {
		return svc.Now()
	}
	return time.Now()
}

// SessionService drives the multi-step booking wizard. Session state
// lives in the cache until confirmed; nothing is persisted earlier.
type SessionService interface {
	InitiateSession(ctx context.Context, actor *models.User, propertyID string, requests []models.ServiceRequest) (*models.BookingSession, error)
	UpdateSession(ctx context.Context, actor *models.User, sessionID string, details AssigneeDetails) (*models.BookingSession, error)
	ConfirmSession(ctx context.Context, actor *models.User, sessionID string, approveDirectly bool) (*models.BookingTransitionResult, error)
	CancelSession(ctx context.Context, sessionID string) error
}

// AssigneeDetails is the wizard step that captures who will carry out
// the assessment and when.
type AssigneeDetails struct {
	AssigneeName    string     `json:"assignee_name"`
	AssigneeContact string     `json:"assignee_contact"`
	AssigneeEmail   string     `json:"assignee_email"`
	AssessmentTime  *time.Time `json:"assessment_time"`
}

// DefaultSessionService is the production implementation.
type DefaultSessionService struct {
	Cache        *redis.Client
	PropertyRepo propertyRepo.PropertyRepository
	Bookings     BookingService
	TTL          time.Duration
	Logger       *zap.Logger
}
