package models

import "time"

// BookingSession holds the in-progress state of the multi-step booking
// wizard. Sessions live in the cache with a TTL; nothing is persisted
// until the session is confirmed.
type BookingSession struct {
	ID         string             `json:"id"`
	UserID     string             `json:"user_id"`
	PropertyID string             `json:"property_id"`
	Services   []ServiceSelection `json:"services"`

	AssigneeName    string     `json:"assignee_name,omitempty"`
	AssigneeContact string     `json:"assignee_contact,omitempty"`
	AssigneeEmail   string     `json:"assignee_email,omitempty"`
	AssessmentTime  *time.Time `json:"assessment_time,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// ServiceRequest is the wizard input for one service: a quantity for
// the marginal-priced services, or a tier label / numeric size for
// table-priced ones.
type ServiceRequest struct {
	Name      string `json:"name"`
	Quantity  int    `json:"quantity,omitempty"`
	TierLabel string `json:"tier_label,omitempty"`
}
