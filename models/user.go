package models

import "time"

// User is a property owner or contractor account.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	TokenHash    string    `bson:"token_hash,omitempty" json:"-"` // sha256 of the active auth token
	Role         string    `bson:"role" json:"role"`              // "owner" or "contractor"
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
}

const (
	RoleOwner      = "owner"
	RoleContractor = "contractor"
)
