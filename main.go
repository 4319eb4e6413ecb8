// File: slotify/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"slotify/config"
	"slotify/cron"
	"slotify/database"
	bookingRepo "slotify/database/repository/booking"
	overrideRepo "slotify/database/repository/override"
	serviceRepo "slotify/database/repository/service"
	staffRepo "slotify/database/repository/staff"
	"slotify/handlers"
	"slotify/middleware"
	"slotify/routes"
	"slotify/services/availability"
	"slotify/services/recurrence"
	"slotify/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	svcRepo := serviceRepo.NewMongoServiceRepo()
	stfRepo := staffRepo.NewMongoStaffRepo()
	bkgRepo := bookingRepo.NewMongoBookingRepo()
	ovrRepo := overrideRepo.NewMongoOverrideRepo()

	// services.
	engine := &availability.Engine{
		ServiceRepo:           svcRepo,
		StaffRepo:             stfRepo,
		BookingRepo:           bkgRepo,
		OverrideRepo:          ovrRepo,
		Cache:                 utils.GetCacheClient(),
		CacheTTL:              config.AvailabilityCacheTTL(),
		OverrideLookupTimeout: config.OverrideLookupTimeout(),
	}
	planner := &recurrence.Planner{
		Detector: &recurrence.BookingConflictDetector{Bookings: bkgRepo},
	}

	availabilityHandler := handlers.NewAvailabilityHandler(engine)
	recurringHandler := handlers.NewRecurringHandler(planner)

	routes.RegisterRoutes(router, availabilityHandler, recurringHandler)

	if config.AppConfig.PrewarmEnabled {
		cron.InitPrewarmWorker(engine)
		cron.StartPrewarmScheduler(svcRepo)
	}

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
