package invoiceRepo

import (
	"context"

	"complyhub/database"
	"complyhub/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type InvoiceRepository interface {
	Create(ctx context.Context, invoice models.Invoice) (string, error)
	GetByID(ctx context.Context, id string) (*models.Invoice, error)
	GetByUserID(ctx context.Context, userID string) ([]models.Invoice, error)
	LinkBooking(ctx context.Context, invoiceID, bookingID string) error
	GetByBookingID(ctx context.Context, bookingID string) (*models.Invoice, error)
}

type mongoInvoiceRepo struct {
	coll  *mongo.Collection
	links *mongo.Collection
}

// NewMongoInvoiceRepo returns an InvoiceRepository backed by MongoDB.
func NewMongoInvoiceRepo() InvoiceRepository {
	db := database.DB()
	return &mongoInvoiceRepo{
		coll:  db.Collection("invoices"),
		links: db.Collection("invoice_bookings"),
	}
}
