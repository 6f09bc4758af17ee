package handlers

import (
	"net/http"

	"complyhub/models"
	"complyhub/services/logbook"

	"github.com/gin-gonic/gin"
)

// LogbookHandler exposes logbook and entry endpoints.
type LogbookHandler struct {
	Svc logbook.LogbookService
}

// NewLogbookHandler creates a new LogbookHandler instance.
func NewLogbookHandler(svc logbook.LogbookService) *LogbookHandler {
	return &LogbookHandler{Svc: svc}
}

// CreateHandler adds a logbook to a property.
func (h *LogbookHandler) CreateHandler(c *gin.Context) {
	usr, ok := currentUser(c)
	if !ok {
		return
	}
	var input models.Logbook
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	input.PropertyID = c.Param("id")

	created, err := h.Svc.Create(c, usr, input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListHandler returns a property's logbooks with their due projections.
func (h *LogbookHandler) ListHandler(c *gin.Context) {
	usr, ok := currentUser(c)
	if !ok {
		return
	}
	summaries, err := h.Svc.List(c, usr, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"logbooks": summaries})
}

// UpdateHandler edits a logbook's details.
func (h *LogbookHandler) UpdateHandler(c *gin.Context) {
	usr, ok := currentUser(c)
	if !ok {
		return
	}
	var input models.Logbook
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	input.ID = c.Param("logbookID")

	updated, err := h.Svc.Update(c, usr, input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// SetActiveHandler toggles whether a logbook counts towards scoring.
func (h *LogbookHandler) SetActiveHandler(c *gin.Context) {
	usr, ok := currentUser(c)
	if !ok {
		return
	}
	var input struct {
		Active bool `json:"active"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	updated, err := h.Svc.SetActive(c, usr, c.Param("logbookID"), input.Active)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteHandler removes a logbook and its entries.
func (h *LogbookHandler) DeleteHandler(c *gin.Context) {
	usr, ok := currentUser(c)
	if !ok {
		return
	}
	if err := h.Svc.Delete(c, usr, c.Param("logbookID")); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "logbook deleted"})
}

// AddEntryHandler records one performed check.
func (h *LogbookHandler) AddEntryHandler(c *gin.Context) {
	usr, ok := currentUser(c)
	if !ok {
		return
	}
	var input models.LogbookEntry
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	input.LogbookID = c.Param("logbookID")

	entry, err := h.Svc.AddEntry(c, usr, input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// ListEntriesHandler returns a logbook's entries, newest first.
func (h *LogbookHandler) ListEntriesHandler(c *gin.Context) {
	usr, ok := currentUser(c)
	if !ok {
		return
	}
	entries, err := h.Svc.ListEntries(c, usr, c.Param("logbookID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}
