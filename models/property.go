package models

import "time"

// Property is a building tracked for compliance.
type Property struct {
	ID              string    `bson:"id" json:"id"`
	UserID          string    `bson:"user_id" json:"user_id"` // Owner
	Name            string    `bson:"name" json:"name"`
	Address         string    `bson:"address" json:"address"`
	Postcode        string    `bson:"postcode" json:"postcode"`
	BuildingType    string    `bson:"building_type,omitempty" json:"building_type,omitempty"`
	ComplianceScore int       `bson:"compliance_score" json:"compliance_score"` // 0-100, recomputed nightly
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time `bson:"updated_at" json:"updated_at"`
}
