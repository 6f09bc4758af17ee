// File: complyhub/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"complyhub/config"
	"complyhub/database"
	bookingRepoPkg "complyhub/database/repository/booking"
	documentRepoPkg "complyhub/database/repository/document"
	invoiceRepoPkg "complyhub/database/repository/invoice"
	logbookRepoPkg "complyhub/database/repository/logbook"
	propertyRepoPkg "complyhub/database/repository/property"
	serviceRepoPkg "complyhub/database/repository/service"
	userRepoPkg "complyhub/database/repository/user"
	"complyhub/handlers"
	"complyhub/middleware"
	"complyhub/routes"
	"complyhub/services/booking"
	"complyhub/services/compliance"
	"complyhub/services/document"
	"complyhub/services/invoice"
	"complyhub/services/logbook"
	"complyhub/services/property"
	"complyhub/services/user"
	"complyhub/utils"
	"complyhub/workers"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitSessionCache()
	utils.InitAuthCache()

	if err := documentRepoPkg.EnsureIndexes(context.Background()); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure document indexes: %v", err)
	}

	cloudinaryStorageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	propertyRepo := propertyRepoPkg.NewMongoPropertyRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	logbookRepo := logbookRepoPkg.NewMongoLogbookRepo()
	documentRepo := documentRepoPkg.NewMongoDocumentRepo()
	invoiceRepo := invoiceRepoPkg.NewMongoInvoiceRepo()
	serviceRepo := serviceRepoPkg.NewMongoServiceRepo()

	if err := serviceRepo.Seed(context.Background()); err != nil {
		logger.Sugar().Warnf("main: failed to seed service catalogue: %v", err)
	}

	// services.
	userService := &user.DefaultUserService{
		Repo:      userRepo,
		AuthCache: utils.GetAuthCacheClient(),
	}

	propertyService := &property.DefaultPropertyService{
		Repo: propertyRepo,
	}

	enqueuer := workers.NewEnqueuer()
	defer enqueuer.Close()

	bookingService := &booking.DefaultBookingService{
		Repo:     bookingRepo,
		Enqueuer: enqueuer,
		Logger:   logger,
	}

	sessionService := &booking.DefaultSessionService{
		Cache:        utils.GetSessionCacheClient(),
		PropertyRepo: propertyRepo,
		Bookings:     bookingService,
		TTL:          30 * time.Minute,
		Logger:       logger,
	}

	complianceService := &compliance.DefaultComplianceService{
		PropertyRepo: propertyRepo,
		LogbookRepo:  logbookRepo,
		BookingRepo:  bookingRepo,
		Logger:       logger,
	}

	logbookService := &logbook.DefaultLogbookService{
		Repo:         logbookRepo,
		PropertyRepo: propertyRepo,
		Logger:       logger,
	}

	documentService := &document.DefaultDocumentService{
		Repo:         documentRepo,
		PropertyRepo: propertyRepo,
		Storage:      cloudinaryStorageService,
		Logger:       logger,
	}

	invoiceService := &invoice.DefaultInvoiceService{
		Repo:        invoiceRepo,
		BookingRepo: bookingRepo,
		UserRepo:    userRepo,
		Logger:      logger,
	}

	// Background worker for invoice creation and the nightly score
	// recompute.
	workers.InitWorker(invoiceService, complianceService)

	// handlers.
	userHandler := handlers.NewUserHandler(userService)
	propertyHandler := handlers.NewPropertyHandler(propertyService)
	bookingHandler := handlers.NewBookingHandler(bookingService, sessionService, serviceRepo, logger)
	logbookHandler := handlers.NewLogbookHandler(logbookService)
	documentHandler := handlers.NewDocumentHandler(documentService)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceService)
	complianceHandler := handlers.NewComplianceHandler(complianceService)
	pricingHandler := handlers.NewPricingHandler()

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,

		// Account endpoints.
		RegisterUserHandler:        userHandler.RegisterHandler,
		AuthenticateUserHandler:    userHandler.AuthenticateHandler,
		GetProfileHandler:          userHandler.GetProfileHandler,
		UpdateProfileHandler:       userHandler.UpdateProfileHandler,
		RevokeUserAuthTokenHandler: userHandler.RevokeAuthTokenHandler,

		// Property endpoints.
		CreatePropertyHandler: propertyHandler.CreateHandler,
		ListPropertiesHandler: propertyHandler.ListHandler,
		GetPropertyHandler:    propertyHandler.GetHandler,
		UpdatePropertyHandler: propertyHandler.UpdateHandler,
		DeletePropertyHandler: propertyHandler.DeleteHandler,

		// Booking wizard endpoints.
		InitiateSession: bookingHandler.InitiateSession,
		UpdateSession:   bookingHandler.UpdateSession,
		ConfirmBooking:  bookingHandler.ConfirmBooking,
		CancelSession:   bookingHandler.CancelSession,

		// Booking lifecycle endpoints.
		GetAvailableServices: bookingHandler.GetAvailableServices,
		TransitionBooking:    bookingHandler.TransitionBooking,
		GetBooking:           bookingHandler.GetBooking,
		ListMyBookings:       bookingHandler.ListMyBookings,
		ListPropertyBookings: bookingHandler.ListPropertyBookings,
		GetBookingInvoice:    invoiceHandler.GetByBookingHandler,

		// Logbook endpoints.
		CreateLogbookHandler:    logbookHandler.CreateHandler,
		ListLogbooksHandler:     logbookHandler.ListHandler,
		UpdateLogbookHandler:    logbookHandler.UpdateHandler,
		SetLogbookActiveHandler: logbookHandler.SetActiveHandler,
		DeleteLogbookHandler:    logbookHandler.DeleteHandler,
		AddLogbookEntryHandler:  logbookHandler.AddEntryHandler,
		ListLogbookEntries:      logbookHandler.ListEntriesHandler,

		// Document endpoints.
		CreateFolderHandler:    documentHandler.CreateFolderHandler,
		ListFoldersHandler:     documentHandler.ListFoldersHandler,
		UploadDocumentsHandler: documentHandler.UploadDocumentsHandler,
		ListDocumentsHandler:   documentHandler.ListDocumentsHandler,
		DocumentURLHandler:     documentHandler.DownloadURLHandler,
		DeleteDocumentHandler:  documentHandler.DeleteDocumentHandler,

		// Invoice endpoints.
		ListInvoicesHandler: invoiceHandler.ListHandler,

		// Compliance endpoints.
		PropertySummaryHandler: complianceHandler.PropertySummaryHandler,
		DashboardHandler:       complianceHandler.DashboardHandler,

		// Pricing endpoints.
		QuoteHandler:         pricingHandler.QuoteHandler,
		FireRiskTiersHandler: pricingHandler.FireRiskTiersHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Periodic dependency health checks backing /health. The queue DB
	// gets its own client here since asynq owns its connections.
	queueClient := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	utils.StartHealthMonitor(map[string]*redis.Client{
		"session": utils.GetSessionCacheClient(),
		"auth":    utils.GetAuthCacheClient(),
		"queue":   queueClient,
	}, database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
