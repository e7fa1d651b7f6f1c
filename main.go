// File: dochouse/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dochouse/config"
	"dochouse/database"
	appointmentRepo "dochouse/database/repository/appointment"
	doctorRepo "dochouse/database/repository/doctor"
	paymentRepo "dochouse/database/repository/payment"
	reviewRepo "dochouse/database/repository/review"
	serviceRepo "dochouse/database/repository/service"
	userRepo "dochouse/database/repository/user"
	"dochouse/handlers"
	"dochouse/middleware"
	"dochouse/routes"
	"dochouse/services/account"
	"dochouse/services/billing"
	"dochouse/services/booking"
	"dochouse/services/catalog"
	"dochouse/services/dashboard"
	"dochouse/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	client, err := database.Connect(config.AppConfig.DatabaseURL)
	if err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}
	db := client.Database(config.AppConfig.DatabaseName)
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeSecretKey

	// repositories.
	doctors := doctorRepo.NewMongoDoctorRepo(db)
	services := serviceRepo.NewMongoServiceRepo(db)
	reviews := reviewRepo.NewMongoReviewRepo(db)
	users := userRepo.NewMongoUserRepo(db)
	appointments := appointmentRepo.NewMongoAppointmentRepo(db)
	payments := paymentRepo.NewMongoPaymentRepo(db)

	// services.
	catalogService := &catalog.DefaultCatalogService{
		Repo:  services,
		Cache: utils.GetCacheClient(),
	}
	accountService := &account.DefaultAccountService{
		Repo: users,
	}
	bookingService := &booking.DefaultBookingService{
		Repo: appointments,
	}
	billingService := &billing.DefaultBillingService{
		Repo: payments,
	}
	dashboardService := &dashboard.DefaultDashboardService{
		Doctors:      doctors,
		Users:        users,
		Appointments: appointments,
		Payments:     payments,
		Reviews:      reviews,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Accounts:     accountService,
		Doctors:      handlers.NewDoctorHandler(doctors),
		Services:     handlers.NewServiceHandler(catalogService),
		Reviews:      handlers.NewReviewHandler(reviews),
		Users:        handlers.NewUserHandler(accountService),
		Appointments: handlers.NewAppointmentHandler(bookingService),
		Payments:     handlers.NewPaymentHandler(billingService),
		Dashboard:    handlers.NewDashboardHandler(dashboardService),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "5000"
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
