package invoice

import (
	"context"
	"errors"
	"math"
	"time"

	"complyhub/models"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/customer"
	stripeinvoice "github.com/stripe/stripe-go/v76/invoice"
	"github.com/stripe/stripe-go/v76/invoiceitem"
	"go.uber.org/zap"
)

const invoiceCurrency = "gbp"

// CreateForBookings creates one invoice per booking. Each booking is
// processed independently: a Stripe failure is logged and skipped so
// the rest of the batch still gets billed. The caller never retries a
// business failure; the approval that triggered this stands.
func (svc *DefaultInvoiceService) CreateForBookings(ctx context.Context, bookingIDs []string) error {
	for _, bookingID := range bookingIDs {
		if err := svc.createForBooking(ctx, bookingID); err != nil {
			svc.Logger.Error("invoice creation failed",
				zap.String("bookingID", bookingID), zap.Error(err))
		}
	}
	return nil
}

func (svc *DefaultInvoiceService) createForBooking(ctx context.Context, bookingID string) error {
	if _, err := svc.Repo.GetByBookingID(ctx, bookingID); err == nil {
		// Already invoiced; approval events are not deduplicated upstream.
		return nil
	}

	booking, err := svc.BookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return err
	}
	user, err := svc.UserRepo.GetByID(ctx, booking.UserID)
	if err != nil {
		return err
	}

	amount := bookingAmount(booking)
	if amount <= 0 {
		return errors.New("booking has no billable amount")
	}

	cust, err := customer.New(&stripe.CustomerParams{
		Email: stripe.String(user.Email),
		Name:  stripe.String(user.Name),
	})
	if err != nil {
		return err
	}

	_, err = invoiceitem.New(&stripe.InvoiceItemParams{
		Customer:    stripe.String(cust.ID),
		Amount:      stripe.Int64(amountPence(amount)),
		Currency:    stripe.String(invoiceCurrency),
		Description: stripe.String(booking.ServiceType),
	})
	if err != nil {
		return err
	}

	stripeInv, err := stripeinvoice.New(&stripe.InvoiceParams{
		Customer:                    stripe.String(cust.ID),
		CollectionMethod:            stripe.String(string(stripe.InvoiceCollectionMethodSendInvoice)),
		DaysUntilDue:                stripe.Int64(30),
		PendingInvoiceItemsBehavior: stripe.String("include"),
	})
	if err != nil {
		return err
	}

	inv := models.Invoice{
		StripeInvoiceID: stripeInv.ID,
		UserID:          user.ID,
		Amount:          amount,
		Currency:        invoiceCurrency,
		Status:          mapStripeStatus(stripeInv.Status),
	}
	if stripeInv.DueDate > 0 {
		due := time.Unix(stripeInv.DueDate, 0)
		inv.DueDate = &due
	}

	invoiceID, err := svc.Repo.Create(ctx, inv)
	if err != nil {
		return err
	}
	if err := svc.Repo.LinkBooking(ctx, invoiceID, bookingID); err != nil {
		return err
	}

	svc.Logger.Info("invoice created",
		zap.String("invoiceID", invoiceID),
		zap.String("bookingID", bookingID),
		zap.Float64("amount", amount))
	return nil
}

// bookingAmount sums the booking's resolved service prices.
// Contact-sales selections carry no price and contribute nothing.
func bookingAmount(booking *models.Booking) float64 {
	total := 0.0
	for _, sel := range booking.Services {
		total += sel.Price
	}
	return total
}

// amountPence converts a pound amount to integer pence. Rounding, not
// truncation: many per-unit prices (0.89, 15.00) produce float sums a
// hair under the exact pence value.
func amountPence(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

func mapStripeStatus(status stripe.InvoiceStatus) models.InvoiceStatus {
	switch status {
	case stripe.InvoiceStatusDraft:
		return models.InvoiceDraft
	case stripe.InvoiceStatusOpen:
		return models.InvoiceOpen
	case stripe.InvoiceStatusPaid:
		return models.InvoicePaid
	case stripe.InvoiceStatusVoid:
		return models.InvoiceVoid
	}
	return models.InvoiceDraft
}

// ListByUser returns the caller's invoices.
func (svc *DefaultInvoiceService) ListByUser(ctx context.Context, actor *models.User) ([]models.Invoice, error) {
	return svc.Repo.GetByUserID(ctx, actor.ID)
}

// GetByBookingID resolves the invoice for one of the caller's bookings.
func (svc *DefaultInvoiceService) GetByBookingID(ctx context.Context, actor *models.User, bookingID string) (*models.Invoice, error) {
	booking, err := svc.BookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.UserID != actor.ID {
		return nil, errors.New("booking not found")
	}
	return svc.Repo.GetByBookingID(ctx, bookingID)
}
