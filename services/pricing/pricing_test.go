package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"complyhub/models"
)

func TestPATTestingPrice(t *testing.T) {
	tests := []struct {
		name     string
		devices  int
		expected float64
	}{
		{name: "at included units", devices: 100, expected: 99.00},
		{name: "below floor clamps to base", devices: 99, expected: 99.00},
		{name: "zero clamps to base", devices: 0, expected: 99.00},
		{name: "50 over", devices: 150, expected: 99.00 + 50*0.89},
		{name: "one over", devices: 101, expected: 99.89},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, PATTestingPrice(tt.devices), 0.001)
		})
	}
}

func TestFireDoorPrice(t *testing.T) {
	tests := []struct {
		name     string
		doors    int
		expected float64
	}{
		{name: "at included units", doors: 10, expected: 180.00},
		{name: "below floor clamps", doors: 3, expected: 180.00},
		{name: "two over", doors: 12, expected: 210.00},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, FireDoorPrice(tt.doors), 0.001)
		})
	}
}

func TestClampQuantities(t *testing.T) {
	assert.Equal(t, 100, ClampPATQuantity(99))
	assert.Equal(t, 100, ClampPATQuantity(100))
	assert.Equal(t, 250, ClampPATQuantity(250))
	assert.Equal(t, 10, ClampFireDoorQuantity(-1))
	assert.Equal(t, 11, ClampFireDoorQuantity(11))
}

func TestTierForSize(t *testing.T) {
	tier, err := TierForSize("Residential Block", 10)
	require.NoError(t, err)
	assert.Equal(t, "Up to 10 units", tier.Label)
	assert.InDelta(t, 295.0, tier.Price, 0.001)

	tier, err = TierForSize("Residential Block", 11)
	require.NoError(t, err)
	assert.Equal(t, "11-25 units", tier.Label)

	// Unbounded top tier is POA.
	tier, err = TierForSize("Residential Block", 500)
	require.NoError(t, err)
	assert.True(t, tier.POA)
	assert.Zero(t, tier.Price)

	_, err = TierForSize("Residential Block", 0)
	assert.Error(t, err)

	_, err = TierForSize("Castle", 5)
	assert.Error(t, err)
}

func TestTierByLabel(t *testing.T) {
	tier, err := TierByLabel("HMO", "7-15 bedrooms")
	require.NoError(t, err)
	assert.InDelta(t, 345.0, tier.Price, 0.001)

	_, err = TierByLabel("HMO", "nonsense")
	assert.Error(t, err)
}

func TestResolve(t *testing.T) {
	sel, err := Resolve(models.ServiceRequest{Name: models.ServicePATTesting, Quantity: 150}, "")
	require.NoError(t, err)
	assert.InDelta(t, 143.50, sel.Price, 0.001)
	assert.Equal(t, 150, sel.Quantity)

	sel, err = Resolve(models.ServiceRequest{Name: models.ServiceFireDoorInspection, Quantity: 2}, "")
	require.NoError(t, err)
	assert.Equal(t, 10, sel.Quantity, "quantity should clamp to the floor")
	assert.InDelta(t, 180.00, sel.Price, 0.001)

	sel, err = Resolve(models.ServiceRequest{Name: models.ServiceFireRiskAssessment, Quantity: 30}, "Residential Block")
	require.NoError(t, err)
	assert.Equal(t, "26-50 units", sel.TierLabel)
	assert.False(t, sel.ContactSales)

	// POA tier must not yield a numeric price.
	sel, err = Resolve(models.ServiceRequest{Name: models.ServiceFireRiskAssessment, TierLabel: "51+ units"}, "Residential Block")
	require.NoError(t, err)
	assert.True(t, sel.ContactSales)
	assert.Zero(t, sel.Price)

	_, err = Resolve(models.ServiceRequest{Name: "Window Cleaning"}, "")
	assert.Error(t, err)
}
