package models

// Service is a bookable assessment type from the catalogue.
type Service struct {
	ID   string `bson:"id" json:"id"`
	Name string `bson:"name" json:"name"`
	Icon string `bson:"icon,omitempty" json:"icon,omitempty"`
}

// Well-known service names with dedicated pricing rules.
const (
	ServicePATTesting         = "PAT Testing"
	ServiceFireDoorInspection = "Fire Door Inspection"
	ServiceFireRiskAssessment = "Fire Risk Assessment"
)

// ServiceSelection is one service chosen during the booking wizard,
// with its resolved price. ContactSales selections carry no price.
type ServiceSelection struct {
	ServiceID    string  `bson:"service_id" json:"service_id"`
	Name         string  `bson:"name" json:"name"`
	Quantity     int     `bson:"quantity,omitempty" json:"quantity,omitempty"`
	TierLabel    string  `bson:"tier_label,omitempty" json:"tier_label,omitempty"`
	Price        float64 `bson:"price" json:"price"`
	ContactSales bool    `bson:"contact_sales,omitempty" json:"contact_sales,omitempty"`
}
