package invoice

import (
	"context"

	bookingRepo "complyhub/database/repository/booking"
	invoiceRepo "complyhub/database/repository/invoice"
	userRepo "complyhub/database/repository/user"
	"complyhub/models"

	"go.uber.org/zap"
)

// InvoiceService creates invoices for approved bookings and serves
// read-only listings. Creation runs from the background worker.
type InvoiceService interface {
	CreateForBookings(ctx context.Context, bookingIDs []string) error
	ListByUser(ctx context.Context, actor *models.User) ([]models.Invoice, error)
	GetByBookingID(ctx context.Context, actor *models.User, bookingID string) (*models.Invoice, error)
}

// DefaultInvoiceService is the production implementation, billing
// through Stripe.
type DefaultInvoiceService struct {
	Repo        invoiceRepo.InvoiceRepository
	BookingRepo bookingRepo.BookingRepository
	UserRepo    userRepo.UserRepository
	Logger      *zap.Logger
}
