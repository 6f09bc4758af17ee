package models

import "time"

// InvoiceStatus mirrors the billing provider's invoice states.
type InvoiceStatus string

const (
	InvoiceDraft InvoiceStatus = "draft"
	InvoiceOpen  InvoiceStatus = "open"
	InvoicePaid  InvoiceStatus = "paid"
	InvoiceVoid  InvoiceStatus = "void"
)

// Invoice is generated after a booking is approved. The UI treats
// invoices as read-only.
type Invoice struct {
	ID              string        `bson:"id" json:"id"`
	StripeInvoiceID string        `bson:"stripe_invoice_id,omitempty" json:"stripe_invoice_id,omitempty"`
	UserID          string        `bson:"user_id" json:"user_id"`
	Amount          float64       `bson:"amount" json:"amount"`
	Currency        string        `bson:"currency" json:"currency"`
	Status          InvoiceStatus `bson:"status" json:"status"`
	DueDate         *time.Time    `bson:"due_date,omitempty" json:"due_date,omitempty"`
	CreatedAt       time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time     `bson:"updated_at" json:"updated_at"`
}

// InvoiceBooking links an invoice to the booking it bills.
type InvoiceBooking struct {
	InvoiceID string `bson:"invoice_id" json:"invoice_id"`
	BookingID string `bson:"booking_id" json:"booking_id"`
}
