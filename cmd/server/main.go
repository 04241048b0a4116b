package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/BerylCAtieno/titan-inquiry-api/internal/analyzer"
	"github.com/BerylCAtieno/titan-inquiry-api/internal/config"
	"github.com/BerylCAtieno/titan-inquiry-api/internal/content"
	"github.com/BerylCAtieno/titan-inquiry-api/internal/router"
	"github.com/BerylCAtieno/titan-inquiry-api/internal/services"
	"github.com/BerylCAtieno/titan-inquiry-api/internal/utils"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger := utils.NewLogger(cfg.LogLevel)

	// Model client is built once; nil when no API key is set.
	model, err := analyzer.NewModel(cfg.AI, logger)
	if err != nil {
		logger.Fatal("Failed to initialize model client", "error", err)
	}
	inquiryAnalyzer := analyzer.NewInquiryAnalyzer(model, cfg.BrandName, logger)

	catalog, err := content.Load()
	if err != nil {
		logger.Fatal("Failed to load site content", "error", err)
	}

	inquiryService := services.NewInquiryService(inquiryAnalyzer, cfg, logger)

	handler := router.NewRouter(inquiryService, catalog, router.Options{
		MaxBriefSize:      cfg.MaxBriefSize,
		CORSAllowedOrigin: cfg.CORSAllowedOrigin,
	}, logger)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.AI.Timeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Starting server",
			"port", cfg.Port,
			"ai_provider", cfg.AI.Provider,
			"ai_model", cfg.AI.Model,
			"analysis_enabled", inquiryAnalyzer.Enabled())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed to start", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", "error", err)
	}

	logger.Info("Server exited")
}
