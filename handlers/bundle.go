// File: complyhub/handlers/bundle.go
package handlers

import (
	userRepoPkg "complyhub/database/repository/user"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	UserRepo userRepoPkg.UserRepository

	// Account endpoints
	RegisterUserHandler        gin.HandlerFunc
	AuthenticateUserHandler    gin.HandlerFunc
	GetProfileHandler          gin.HandlerFunc
	UpdateProfileHandler       gin.HandlerFunc
	RevokeUserAuthTokenHandler gin.HandlerFunc

	// Property endpoints
	CreatePropertyHandler gin.HandlerFunc
	ListPropertiesHandler gin.HandlerFunc
	GetPropertyHandler    gin.HandlerFunc
	UpdatePropertyHandler gin.HandlerFunc
	DeletePropertyHandler gin.HandlerFunc

	// Booking wizard endpoints
	InitiateSession gin.HandlerFunc
	UpdateSession   gin.HandlerFunc
	ConfirmBooking  gin.HandlerFunc
	CancelSession   gin.HandlerFunc

	// Booking lifecycle endpoints
	GetAvailableServices gin.HandlerFunc
	TransitionBooking    gin.HandlerFunc
	GetBooking           gin.HandlerFunc
	ListMyBookings       gin.HandlerFunc
	ListPropertyBookings gin.HandlerFunc
	GetBookingInvoice    gin.HandlerFunc

	// Logbook endpoints
	CreateLogbookHandler    gin.HandlerFunc
	ListLogbooksHandler     gin.HandlerFunc
	UpdateLogbookHandler    gin.HandlerFunc
	SetLogbookActiveHandler gin.HandlerFunc
	DeleteLogbookHandler    gin.HandlerFunc
	AddLogbookEntryHandler  gin.HandlerFunc
	ListLogbookEntries      gin.HandlerFunc

	// Document endpoints
	CreateFolderHandler    gin.HandlerFunc
	ListFoldersHandler     gin.HandlerFunc
	UploadDocumentsHandler gin.HandlerFunc
	ListDocumentsHandler   gin.HandlerFunc
	DocumentURLHandler     gin.HandlerFunc
	DeleteDocumentHandler  gin.HandlerFunc

	// Invoice endpoints
	ListInvoicesHandler gin.HandlerFunc

	// Compliance endpoints
	PropertySummaryHandler gin.HandlerFunc
	DashboardHandler       gin.HandlerFunc

	// Pricing endpoints
	QuoteHandler         gin.HandlerFunc
	FireRiskTiersHandler gin.HandlerFunc
}
