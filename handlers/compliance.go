package handlers

import (
	"net/http"

	"complyhub/services/compliance"

	"github.com/gin-gonic/gin"
)

// ComplianceHandler exposes the derived compliance views.
type ComplianceHandler struct {
	Svc compliance.ComplianceService
}

// NewComplianceHandler creates a new ComplianceHandler instance.
func NewComplianceHandler(svc compliance.ComplianceService) *ComplianceHandler {
	return &ComplianceHandler{Svc: svc}
}

// PropertySummaryHandler returns the per-property compliance view:
// stored score, month comparison, logbook projections and assessment
// classifications.
func (h *ComplianceHandler) PropertySummaryHandler(c *gin.Context) {
	usr, ok := currentUser(c)
	if !ok {
		return
	}
	summary, err := h.Svc.PropertySummary(c, usr, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// DashboardHandler aggregates across the caller's portfolio.
func (h *ComplianceHandler) DashboardHandler(c *gin.Context) {
	usr, ok := currentUser(c)
	if !ok {
		return
	}
	dashboard, err := h.Svc.Dashboard(c, usr)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dashboard)
}
