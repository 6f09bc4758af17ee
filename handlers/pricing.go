package handlers

import (
	"net/http"

	"complyhub/models"
	"complyhub/services/pricing"

	"github.com/gin-gonic/gin"
)

// PricingHandler exposes quoting endpoints so the wizard can show
// prices before a session exists.
type PricingHandler struct{}

// NewPricingHandler creates a new PricingHandler instance.
func NewPricingHandler() *PricingHandler {
	return &PricingHandler{}
}

// QuoteHandler prices a set of service requests against a building
// type without creating a session.
func (h *PricingHandler) QuoteHandler(c *gin.Context) {
	var input struct {
		BuildingType string                  `json:"building_type"`
		Services     []models.ServiceRequest `json:"services"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if len(input.Services) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no services requested"})
		return
	}

	var selections []models.ServiceSelection
	var total float64
	contactSales := false
	for _, req := range input.Services {
		sel, err := pricing.Resolve(req, input.BuildingType)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if sel.ContactSales {
			contactSales = true
		}
		total += sel.Price
		selections = append(selections, sel)
	}

	c.JSON(http.StatusOK, gin.H{
		"selections":    selections,
		"total":         total,
		"contact_sales": contactSales,
	})
}

// FireRiskTiersHandler returns the fire-risk tier table for a building
// type, or the list of building types when none is given.
func (h *PricingHandler) FireRiskTiersHandler(c *gin.Context) {
	buildingType := c.Query("building_type")
	if buildingType == "" {
		c.JSON(http.StatusOK, gin.H{"building_types": pricing.BuildingTypes()})
		return
	}

	tiers, err := pricing.Tiers(buildingType)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"building_type": buildingType, "tiers": tiers})
}
