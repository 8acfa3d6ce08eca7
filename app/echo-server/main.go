package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	appMetrics "shopperSpectrum/app/echo-server/metrics"
	"shopperSpectrum/app/echo-server/router"
	"shopperSpectrum/business/recommendation"
	"shopperSpectrum/business/segmentation"
	"shopperSpectrum/internal/loader"
	"shopperSpectrum/internal/middleware"
	"shopperSpectrum/internal/rest"
	"shopperSpectrum/pkg/config"
	"shopperSpectrum/pkg/logger"
	"shopperSpectrum/pkg/metrics"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment, logger.WithLevel(cfg.Log.Level), logger.WithFormat(cfg.Log.Format))
	logger.Info("Starting Shopper Spectrum", "version", cfg.App.Version)

	metrics.Init()
	appMetrics.Init()

	// Artifacts are loaded once; the process cannot serve without them.
	store, err := loader.LoadStore(context.Background(), cfg)
	if err != nil {
		logger.Fatal("Failed to load artifacts", "error", err)
	}
	metrics.ArtifactProducts.Set(float64(store.Similarity.Len()))

	// Init service
	recommendationService := recommendation.NewService(store.Similarity, cfg.Artifacts.DefaultTopN)
	segmentationService := segmentation.NewService(store.Scaler, store.Model)

	// Init handler
	homeHandler := rest.NewHomeHandler(cfg.App.Name, cfg.App.Version, store.Similarity.Len())
	recommendationHandler := rest.NewRecommendationHandler(recommendationService, cfg.Artifacts.MaxTopN, cfg.Server.RequestTimeout)
	segmentationHandler := rest.NewSegmentationHandler(segmentationService, cfg.Server.RequestTimeout)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(appMetrics.Middleware())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	// Setup routes
	api := e.Group("/api/v1")
	router.SetupHomeRoutes(e, api, homeHandler)
	router.SetupRecommendationRoutes(api, recommendationHandler)
	router.SetupSegmentationRoutes(api, segmentationHandler)

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown server
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
