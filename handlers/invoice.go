package handlers

import (
	"net/http"

	"complyhub/services/invoice"

	"github.com/gin-gonic/gin"
)

// InvoiceHandler exposes read-only invoice endpoints. Creation runs
// from the background worker after a booking is approved.
type InvoiceHandler struct {
	Svc invoice.InvoiceService
}

// NewInvoiceHandler creates a new InvoiceHandler instance.
func NewInvoiceHandler(svc invoice.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{Svc: svc}
}

// ListHandler returns the caller's invoices.
func (h *InvoiceHandler) ListHandler(c *gin.Context) {
	usr, ok := currentUser(c)
	if !ok {
		return
	}
	invoices, err := h.Svc.ListByUser(c, usr)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"invoices": invoices})
}

// GetByBookingHandler returns the invoice billing one booking, if any.
func (h *InvoiceHandler) GetByBookingHandler(c *gin.Context) {
	usr, ok := currentUser(c)
	if !ok {
		return
	}
	inv, err := h.Svc.GetByBookingID(c, usr, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, inv)
}
