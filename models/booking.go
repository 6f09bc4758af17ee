package models

import "time"

// BookingStatus enumerates the lifecycle states of a booking.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingApproved  BookingStatus = "approved"
	BookingRejected  BookingStatus = "rejected"
	BookingAssigned  BookingStatus = "assigned"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

// Valid reports whether s is one of the defined booking statuses.
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingApproved, BookingRejected,
		BookingAssigned, BookingCompleted, BookingCancelled:
		return true
	}
	return false
}

// Terminal reports whether no further transitions are allowed out of s.
func (s BookingStatus) Terminal() bool {
	return s == BookingRejected || s == BookingCompleted || s == BookingCancelled
}

// Booking represents a request for a property assessment.
type Booking struct {
	ID          string             `bson:"id" json:"id"`
	PropertyID  string             `bson:"property_id" json:"property_id"`
	UserID      string             `bson:"user_id" json:"user_id"` // Owner who requested the assessment
	ServiceType string             `bson:"service_type" json:"service_type"`
	Services    []ServiceSelection `bson:"services,omitempty" json:"services,omitempty"`
	Status      BookingStatus      `bson:"status" json:"status"`

	// Assignee group: all present or all absent once status is "assigned"
	// or later; cleared on "approved" and "cancelled".
	AssigneeName    string     `bson:"assignee_name,omitempty" json:"assignee_name,omitempty"`
	AssigneeContact string     `bson:"assignee_contact,omitempty" json:"assignee_contact,omitempty"`
	AssigneeEmail   string     `bson:"assignee_email,omitempty" json:"assignee_email,omitempty"`
	AssessmentTime  *time.Time `bson:"assessment_time,omitempty" json:"assessment_time,omitempty"`

	CompletedAt *time.Time `bson:"completed_at,omitempty" json:"completed_at,omitempty"`
	CreatedAt   time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `bson:"updated_at" json:"updated_at"`
}

// HasFullAssigneeGroup reports whether every assignee field and the
// assessment time are populated.
func (b *Booking) HasFullAssigneeGroup() bool {
	return b.AssigneeName != "" && b.AssigneeContact != "" &&
		b.AssigneeEmail != "" && b.AssessmentTime != nil
}

// BookingTransitionRequest carries a requested status change plus the
// assignee details entered alongside it.
type BookingTransitionRequest struct {
	Status          BookingStatus `json:"status"`
	AssigneeName    string        `json:"assignee_name"`
	AssigneeContact string        `json:"assignee_contact"`
	AssigneeEmail   string        `json:"assignee_email"`
	AssessmentTime  *time.Time    `json:"assessment_time"`

	// Documents uploaded in the same interaction; required non-empty for
	// the transition to "completed".
	DocumentIDs []string `json:"document_ids"`
}

// BookingTransitionResult reports the persisted booking and whether the
// follow-up invoice job was queued (approval only).
type BookingTransitionResult struct {
	Booking       *Booking `json:"booking"`
	InvoiceQueued bool     `json:"invoice_queued"`
}
