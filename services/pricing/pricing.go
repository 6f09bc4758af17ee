package pricing

import (
	"fmt"

	"complyhub/models"
)

// Marginal pricing constants. Each service has a flat base covering up
// to the included unit count, plus a per-unit rate above it.
const (
	PATBasePrice     = 99.00
	PATIncludedUnits = 100
	PATUnitRate      = 0.89

	FireDoorBasePrice     = 180.00
	FireDoorIncludedUnits = 10
	FireDoorUnitRate      = 15.00
)

// ClampPATQuantity raises devices to the PAT quantity floor.
func ClampPATQuantity(devices int) int {
	if devices < PATIncludedUnits {
		return PATIncludedUnits
	}
	return devices
}

// ClampFireDoorQuantity raises doors to the fire-door quantity floor.
func ClampFireDoorQuantity(doors int) int {
	if doors < FireDoorIncludedUnits {
		return FireDoorIncludedUnits
	}
	return doors
}

// PATTestingPrice returns the price for testing the given number of
// devices. Quantities below the floor are clamped, matching the input
// control which disallows decreasing below 100.
func PATTestingPrice(devices int) float64 {
	devices = ClampPATQuantity(devices)
	return PATBasePrice + float64(devices-PATIncludedUnits)*PATUnitRate
}

// FireDoorPrice returns the price for inspecting the given number of doors.
func FireDoorPrice(doors int) float64 {
	doors = ClampFireDoorQuantity(doors)
	return FireDoorBasePrice + float64(doors-FireDoorIncludedUnits)*FireDoorUnitRate
}

// Resolve turns a wizard service request into a priced selection.
// Fire-risk requests resolve through the tier table; a POA tier yields
// a ContactSales selection with no numeric price.
func Resolve(req models.ServiceRequest, buildingType string) (models.ServiceSelection, error) {
	switch req.Name {
	case models.ServicePATTesting:
		qty := ClampPATQuantity(req.Quantity)
		return models.ServiceSelection{
			Name:     req.Name,
			Quantity: qty,
			Price:    PATTestingPrice(qty),
		}, nil
	case models.ServiceFireDoorInspection:
		qty := ClampFireDoorQuantity(req.Quantity)
		return models.ServiceSelection{
			Name:     req.Name,
			Quantity: qty,
			Price:    FireDoorPrice(qty),
		}, nil
	case models.ServiceFireRiskAssessment:
		var tier *RiskTier
		var err error
		if req.TierLabel != "" {
			tier, err = TierByLabel(buildingType, req.TierLabel)
		} else {
			tier, err = TierForSize(buildingType, req.Quantity)
		}
		if err != nil {
			return models.ServiceSelection{}, err
		}
		sel := models.ServiceSelection{
			Name:      req.Name,
			Quantity:  req.Quantity,
			TierLabel: tier.Label,
		}
		if tier.POA {
			sel.ContactSales = true
		} else {
			sel.Price = tier.Price
		}
		return sel, nil
	default:
		return models.ServiceSelection{}, fmt.Errorf("no pricing rule for service %q", req.Name)
	}
}
