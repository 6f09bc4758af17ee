package routes

import (
	"time"

	"complyhub/handlers"
	"complyhub/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers account endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.RegisterUserHandler)
		api.POST("/login", hb.AuthenticateUserHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("/me", hb.GetProfileHandler)
		api.PUT("/me", hb.UpdateProfileHandler)
		api.DELETE("/revoke", hb.RevokeUserAuthTokenHandler)
	}
}

// RegisterPropertyRoutes registers portfolio endpoints, including the
// per-property logbook, document and compliance surfaces.
func RegisterPropertyRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/properties")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("", hb.CreatePropertyHandler)
		api.GET("", hb.ListPropertiesHandler)
		api.GET("/:id", hb.GetPropertyHandler)
		api.PATCH("/:id", hb.UpdatePropertyHandler)
		api.DELETE("/:id", hb.DeletePropertyHandler)

		// Compliance views.
		api.GET("/:id/compliance", hb.PropertySummaryHandler)

		// Bookings scoped to a property.
		api.GET("/:id/bookings", hb.ListPropertyBookings)

		// Logbooks.
		api.POST("/:id/logbooks", hb.CreateLogbookHandler)
		api.GET("/:id/logbooks", hb.ListLogbooksHandler)
		api.PATCH("/:id/logbooks/:logbookID", hb.UpdateLogbookHandler)
		api.PUT("/:id/logbooks/:logbookID/active", hb.SetLogbookActiveHandler)
		api.DELETE("/:id/logbooks/:logbookID", hb.DeleteLogbookHandler)
		api.POST("/:id/logbooks/:logbookID/entries", hb.AddLogbookEntryHandler)
		api.GET("/:id/logbooks/:logbookID/entries", hb.ListLogbookEntries)

		// Document folders and files.
		api.POST("/:id/folders", hb.CreateFolderHandler)
		api.GET("/:id/folders", hb.ListFoldersHandler)
		api.POST("/:id/folders/:folderID/documents", hb.UploadDocumentsHandler)
		api.GET("/:id/folders/:folderID/documents", hb.ListDocumentsHandler)
	}
}

// RegisterBookingRoutes sets up the endpoints for the booking engine.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/bookings")
	{
		bookingGroup.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		bookingGroup.GET("/services", hb.GetAvailableServices)
		bookingGroup.POST("/session", hb.InitiateSession)
		bookingGroup.PUT("/session/:sessionID", hb.UpdateSession)
		bookingGroup.POST("/confirm", hb.ConfirmBooking)
		bookingGroup.DELETE("/session/:sessionID", hb.CancelSession)

		bookingGroup.GET("/mine", hb.ListMyBookings)
		bookingGroup.GET("/:id", hb.GetBooking)
		bookingGroup.POST("/:id/transition", hb.TransitionBooking)
		bookingGroup.GET("/:id/invoice", hb.GetBookingInvoice)
	}
}

// RegisterInvoiceRoutes registers read-only invoice endpoints.
func RegisterInvoiceRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/invoices")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("", hb.ListInvoicesHandler)
	}
}

// RegisterDocumentRoutes registers document endpoints addressed by
// document ID rather than property.
func RegisterDocumentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/documents")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("/:documentID/url", hb.DocumentURLHandler)
		api.DELETE("/:documentID", hb.DeleteDocumentHandler)
	}
}

// RegisterComplianceRoutes registers the portfolio dashboard.
func RegisterComplianceRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/compliance")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("/dashboard", hb.DashboardHandler)
	}
}

// RegisterPricingRoutes registers public quoting endpoints.
func RegisterPricingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/pricing")
	{
		api.POST("/quote", hb.QuoteHandler)
		api.GET("/fire-risk-tiers", hb.FireRiskTiersHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterUserRoutes(r, hb)
	RegisterPropertyRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterInvoiceRoutes(r, hb)
	RegisterDocumentRoutes(r, hb)
	RegisterComplianceRoutes(r, hb)
	RegisterPricingRoutes(r, hb)
	RegisterHealthRoute(r)
}
