package handlers

import (
	"net/http"

	"complyhub/models"
	"complyhub/services/property"

	"github.com/gin-gonic/gin"
)

// PropertyHandler exposes portfolio CRUD endpoints.
type PropertyHandler struct {
	Svc property.PropertyService
}

// NewPropertyHandler creates a new PropertyHandler instance.
func NewPropertyHandler(svc property.PropertyService) *PropertyHandler {
	return &PropertyHandler{Svc: svc}
}

// CreateHandler adds a property to the caller's portfolio.
func (h *PropertyHandler) CreateHandler(c *gin.Context) {
	usr, ok := currentUser(c)
	if !ok {
		return
	}
	var input models.Property
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	created, err := h.Svc.Create(c, usr, input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListHandler returns the caller's properties.
func (h *PropertyHandler) ListHandler(c *gin.Context) {
	usr, ok := currentUser(c)
	if !ok {
		return
	}
	properties, err := h.Svc.List(c, usr)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"properties": properties})
}

// GetHandler fetches one property by ID.
func (h *PropertyHandler) GetHandler(c *gin.Context) {
	usr, ok := currentUser(c)
	if !ok {
		return
	}
	prop, err := h.Svc.GetByID(c, usr, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, prop)
}

// UpdateHandler edits a property's details.
func (h *PropertyHandler) UpdateHandler(c *gin.Context) {
	usr, ok := currentUser(c)
	if !ok {
		return
	}
	var input models.Property
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	input.ID = c.Param("id")

	updated, err := h.Svc.Update(c, usr, input)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteHandler removes a property.
func (h *PropertyHandler) DeleteHandler(c *gin.Context) {
	usr, ok := currentUser(c)
	if !ok {
		return
	}
	if err := h.Svc.Delete(c, usr, c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "property deleted"})
}
