package invoice

import (
	"testing"

	"complyhub/models"
	"complyhub/services/pricing"

	"github.com/stretchr/testify/assert"
)

func TestAmountPenceRoundsInsteadOfTruncating(t *testing.T) {
	// 147 PAT devices price out at 99 + 47*0.89 = 140.83, which the
	// float sum represents as 140.82999... Truncation loses a penny.
	amount := pricing.PATTestingPrice(147)
	assert.InDelta(t, 140.83, amount, 0.001)
	assert.Equal(t, int64(14083), amountPence(amount))
}

func TestAmountPenceAcrossPATRange(t *testing.T) {
	for devices := 101; devices <= 500; devices++ {
		amount := pricing.PATTestingPrice(devices)
		wantPence := int64(9900 + (devices-100)*89)
		assert.Equal(t, wantPence, amountPence(amount), "devices=%d amount=%v", devices, amount)
	}
}

func TestBookingAmountSkipsContactSales(t *testing.T) {
	booking := &models.Booking{
		Services: []models.ServiceSelection{
			{Name: models.ServicePATTesting, Price: 99.00},
			{Name: models.ServiceFireRiskAssessment, ContactSales: true},
			{Name: models.ServiceFireDoorInspection, Price: 180.00},
		},
	}
	assert.Equal(t, 279.00, bookingAmount(booking))
}
