package invoiceRepo

import (
	"context"
	"errors"
	"time"

	"complyhub/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Create inserts a new invoice and returns its ID.
func (r *mongoInvoiceRepo) Create(ctx context.Context, invoice models.Invoice) (string, error) {
	if invoice.ID == "" {
		invoice.ID = uuid.New().String()
	}
	invoice.CreatedAt = time.Now()
	invoice.UpdatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, invoice)
	if err != nil {
		return "", err
	}
	return invoice.ID, nil
}

// GetByID returns an invoice by its ID.
func (r *mongoInvoiceRepo) GetByID(ctx context.Context, id string) (*models.Invoice, error) {
	var invoice models.Invoice
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&invoice)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errors.New("invoice not found")
		}
		return nil, err
	}
	return &invoice, nil
}

// GetByUserID fetches all invoices billed to a user.
func (r *mongoInvoiceRepo) GetByUserID(ctx context.Context, userID string) ([]models.Invoice, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var invoices []models.Invoice
	if err := cursor.All(ctx, &invoices); err != nil {
		return nil, err
	}
	return invoices, nil
}

// LinkBooking records the invoice-to-booking association.
func (r *mongoInvoiceRepo) LinkBooking(ctx context.Context, invoiceID, bookingID string) error {
	_, err := r.links.InsertOne(ctx, models.InvoiceBooking{
		InvoiceID: invoiceID,
		BookingID: bookingID,
	})
	return err
}

// GetByBookingID resolves the invoice linked to a booking, if any.
func (r *mongoInvoiceRepo) GetByBookingID(ctx context.Context, bookingID string) (*models.Invoice, error) {
	var link models.InvoiceBooking
	err := r.links.FindOne(ctx, bson.M{"booking_id": bookingID}).Decode(&link)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, errors.New("no invoice for booking")
		}
		return nil, err
	}
	return r.GetByID(ctx, link.InvoiceID)
}
