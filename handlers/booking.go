package handlers

import (
	"net/http"
	"strconv"

	serviceRepo "complyhub/database/repository/service"
	"complyhub/models"
	"complyhub/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking wizard and lifecycle endpoints.
type BookingHandler struct {
	Bookings    booking.BookingService
	Sessions    booking.SessionService
	ServiceRepo serviceRepo.ServiceRepository
	Logger      *zap.Logger
}

// NewBookingHandler creates a new BookingHandler instance.
func NewBookingHandler(bookings booking.BookingService, sessions booking.SessionService, services serviceRepo.ServiceRepository, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Bookings: bookings, Sessions: sessions, ServiceRepo: services, Logger: logger}
}

// GetAvailableServices returns the bookable service catalogue.
func (h *BookingHandler) GetAvailableServices(c *gin.Context) {
	services, err := h.ServiceRepo.GetAll(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}

// InitiateSession starts the booking wizard: pick a property and the
// services to book, get back a priced session.
func (h *BookingHandler) InitiateSession(c *gin.Context) {
	usr, ok := currentUser(c)
	if !ok {
		return
	}
	var input struct {
		PropertyID string                  `json:"property_id"`
		Services   []models.ServiceRequest `json:"services"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.Sessions.InitiateSession(c, usr, input.PropertyID, input.Services)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// UpdateSession captures the assignee details for an open session.
func (h *BookingHandler) UpdateSession(c *gin.Context) {
	usr, ok := currentUser(c)
	if !ok {
		return
	}
	var input booking.AssigneeDetails
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.Sessions.UpdateSession(c, usr, c.Param("sessionID"), input)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// ConfirmBooking finalizes the wizard into a persisted booking.
func (h *BookingHandler) ConfirmBooking(c *gin.Context) {
	usr, ok := currentUser(c)
	if !ok {
		return
	}
	var input struct {
		SessionID       string `json:"session_id"`
		ApproveDirectly bool   `json:"approve_directly"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	result, err := h.Sessions.ConfirmSession(c, usr, input.SessionID, input.ApproveDirectly)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

// CancelSession abandons an open wizard session.
func (h *BookingHandler) CancelSession(c *gin.Context) {
	if _, ok := currentUser(c); !ok {
		return
	}
	if err := h.Sessions.CancelSession(c, c.Param("sessionID")); err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "session cancelled"})
}

// TransitionBooking applies a status change with its gates: documents
// before completion, a full assignee group before assignment.
func (h *BookingHandler) TransitionBooking(c *gin.Context) {
	usr, ok := currentUser(c)
	if !ok {
		return
	}
	var input models.BookingTransitionRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	result, err := h.Bookings.Transition(c, usr, c.Param("id"), input)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetBooking fetches one booking.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	usr, ok := currentUser(c)
	if !ok {
		return
	}
	b, err := h.Bookings.GetByID(c, usr, c.Param("id"))
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// ListMyBookings returns the caller's bookings across all properties.
func (h *BookingHandler) ListMyBookings(c *gin.Context) {
	usr, ok := currentUser(c)
	if !ok {
		return
	}
	result, err := h.Bookings.ListByUser(c, usr, listOptionsFromQuery(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// ListPropertyBookings returns the bookings for one property.
func (h *BookingHandler) ListPropertyBookings(c *gin.Context) {
	usr, ok := currentUser(c)
	if !ok {
		return
	}
	result, err := h.Bookings.ListByProperty(c, usr, c.Param("id"), listOptionsFromQuery(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

func listOptionsFromQuery(c *gin.Context) booking.ListOptions {
	opts := booking.ListOptions{
		Status: models.BookingStatus(c.Query("status")),
		SortBy: c.Query("sort_by"),
		Desc:   c.Query("order") == "desc",
	}
	if page, err := strconv.Atoi(c.Query("page")); err == nil {
		opts.Page = page
	}
	if perPage, err := strconv.Atoi(c.Query("per_page")); err == nil {
		opts.PerPage = perPage
	}
	return opts
}
