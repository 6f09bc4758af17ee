package handlers

import (
	"errors"
	"net/http"

	documentRepo "complyhub/database/repository/document"
	"complyhub/models"
	"complyhub/services/booking"
	"complyhub/utils"

	"github.com/gin-gonic/gin"
)

// currentUser pulls the authenticated account off the context. The
// auth middleware sets it; a missing value means the route was wired
// without it.
func currentUser(c *gin.Context) (*models.User, bool) {
	val, exists := c.Get("currentUser")
	if !exists {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return nil, false
	}
	usr, ok := val.(*models.User)
	if !ok || usr == nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return nil, false
	}
	return usr, true
}

// respondBookingError maps lifecycle failures to HTTP statuses.
func respondBookingError(c *gin.Context, err error) {
	var lerr *booking.LifecycleError
	if errors.As(err, &lerr) {
		status := http.StatusBadRequest
		switch lerr.Code {
		case booking.CodeSessionNotFound, booking.CodePropertyNotOwned:
			status = http.StatusNotFound
		case booking.CodeInvalidTransition:
			status = http.StatusConflict
		case booking.CodePersistFailed:
			status = http.StatusInternalServerError
		}
		utils.JSONError(c, status, lerr.Message, lerr.Code)
		return
	}
	utils.JSONError(c, http.StatusInternalServerError, err.Error(), "")
}

// respondDocumentError maps document failures, notably the unique
// folder name violation.
func respondDocumentError(c *gin.Context, err error) {
	var dup *documentRepo.DuplicateFolderError
	if errors.As(err, &dup) {
		utils.JSONError(c, http.StatusConflict, dup.Error(), "duplicateFolder")
		return
	}
	utils.JSONError(c, http.StatusInternalServerError, err.Error(), "")
}
