package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"anaesthesia-staffing-service/internal/config"
	"anaesthesia-staffing-service/internal/database"
	"anaesthesia-staffing-service/internal/handler"
	"anaesthesia-staffing-service/internal/service"
	"anaesthesia-staffing-service/pkg/logger"
	"anaesthesia-staffing-service/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	// 1. Load configuration
	base := logrus.New()
	cfg, err := config.LoadConfig()
	if err != nil {
		base.WithError(err).Fatal("Invalid configuration")
	}

	log := logger.New(base, cfg.Log.File, "anaesthesia-staffing-service", cfg.Log.Environment)
	logger.SetLevel(base, cfg.Log.Level)
	log.WithField("store_driver", cfg.Store.Driver).Info("Configuration loaded successfully")

	// 2. Initialize JWT validation with the identity provider's secret
	utils.InitJWT(cfg.JWT.AccessSecret)

	// 3. Open the record stores
	stores, err := database.OpenStores(cfg, log)
	if err != nil {
		log.WithError(err).Fatal("Failed to open record stores")
	}

	// 4. Initialize services and load the initial state
	staffing := service.NewStaffingService(stores.Hospitals, stores.People, stores.Audit, log, cfg.Store.PeoplePageSize)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := staffing.Refresh(ctx); err != nil {
		log.WithError(err).Warn("Initial load failed; data will be retried by the refresh worker")
	}

	// 5. Start background worker in goroutine
	workerService := service.NewWorkerService(staffing, cfg.Refresh.Interval, log)
	go workerService.Start(ctx)

	// 6. Setup Gin router
	gin.SetMode(cfg.Server.GinMode)
	r := handler.SetupRouter(staffing, cfg.CORS.AllowedOrigins, log)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: r,
	}
	srv.RegisterOnShutdown(staffing.CloseSubscriptions)

	go func() {
		log.WithField("port", cfg.Server.Port).Info("Server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("Failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	// Cancel background worker context
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Server forced to shut down")
	}
	log.Info("Server exited")
}
