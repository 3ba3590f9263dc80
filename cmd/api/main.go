package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/yelnady/personal-portfolio/internal/api"
	"github.com/yelnady/personal-portfolio/internal/config"
	"github.com/yelnady/personal-portfolio/internal/content"
	"github.com/yelnady/personal-portfolio/internal/metrics"
	"github.com/yelnady/personal-portfolio/internal/models"
)

var version = "dev"

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		// The video endpoint reports this per request; the rest of the site still works.
		log.Printf("Warning: %v", err)
	}

	if !cfg.VerboseErrors() {
		gin.SetMode(gin.ReleaseMode)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	metrics.Init("portfolio-api", version, cfg.Environment)

	portfolio, err := content.Load()
	if err != nil {
		log.Fatalf("Failed to load portfolio content: %v", err)
	}

	// Failure diagnostics are optional
	var recorder api.FailureRecorder
	if cfg.DiagnosticsDSN != "" {
		db, err := models.NewDatabase(cfg.DiagnosticsDSN)
		if err != nil {
			log.Fatalf("Failed to initialize diagnostics database: %v", err)
		}
		defer db.Close()
		recorder = db
	}

	gateway := api.NewVideoGateway(api.GatewayConfigFrom(cfg), logger, recorder)
	server := api.NewServer(cfg, gateway, portfolio, logger)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           server.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("Server starting on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}
