package pricing

import "fmt"

// RiskTier is one row of the fire-risk assessment lookup table.
// Max == 0 means the tier is unbounded above Min. POA tiers never
// resolve to a numeric price; selecting one routes to contact-sales.
type RiskTier struct {
	Label string
	Min   int
	Max   int
	Price float64
	POA   bool
}

// fireRiskTables keys an ordered tier list by building type. Sizes are
// in residential units (or workstations for offices).
var fireRiskTables = map[string][]RiskTier{
	"Residential Block": {
		{Label: "Up to 10 units", Min: 1, Max: 10, Price: 295},
		{Label: "11-25 units", Min: 11, Max: 25, Price: 425},
		{Label: "26-50 units", Min: 26, Max: 50, Price: 595},
		{Label: "51+ units", Min: 51, POA: true},
	},
	"HMO": {
		{Label: "Up to 6 bedrooms", Min: 1, Max: 6, Price: 245},
		{Label: "7-15 bedrooms", Min: 7, Max: 15, Price: 345},
		{Label: "16+ bedrooms", Min: 16, POA: true},
	},
	"Commercial Office": {
		{Label: "Up to 20 staff", Min: 1, Max: 20, Price: 325},
		{Label: "21-50 staff", Min: 21, Max: 50, Price: 495},
		{Label: "51-100 staff", Min: 51, Max: 100, Price: 745},
		{Label: "101+ staff", Min: 101, POA: true},
	},
}

// BuildingTypes lists the building types with a fire-risk table.
func BuildingTypes() []string {
	return []string{"Residential Block", "HMO", "Commercial Office"}
}

// Tiers returns the tier list for a building type.
func Tiers(buildingType string) ([]RiskTier, error) {
	tiers, ok := fireRiskTables[buildingType]
	if !ok {
		return nil, fmt.Errorf("no fire risk table for building type %q", buildingType)
	}
	return tiers, nil
}

// TierForSize matches a numeric size to the first tier whose range
// contains it.
func TierForSize(buildingType string, size int) (*RiskTier, error) {
	tiers, err := Tiers(buildingType)
	if err != nil {
		return nil, err
	}
	if size < 1 {
		return nil, fmt.Errorf("size must be at least 1, got %d", size)
	}
	for i := range tiers {
		t := &tiers[i]
		if size >= t.Min && (t.Max == 0 || size <= t.Max) {
			return t, nil
		}
	}
	return nil, fmt.Errorf("no tier for building type %q at size %d", buildingType, size)
}

// TierByLabel resolves a directly picked tier.
func TierByLabel(buildingType, label string) (*RiskTier, error) {
	tiers, err := Tiers(buildingType)
	if err != nil {
		return nil, err
	}
	for i := range tiers {
		if tiers[i].Label == label {
			return &tiers[i], nil
		}
	}
	return nil, fmt.Errorf("unknown tier %q for building type %q", label, buildingType)
}
