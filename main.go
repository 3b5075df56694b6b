package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/cleanjesus/medmate-api/config"
	"github.com/cleanjesus/medmate-api/data"
	"github.com/cleanjesus/medmate-api/logging"
	"github.com/cleanjesus/medmate-api/pricing"
	"github.com/cleanjesus/medmate-api/scheduler"
	"github.com/cleanjesus/medmate-api/server"
	"github.com/cleanjesus/medmate-api/treatments"
	"github.com/cleanjesus/medmate-api/websearch"
	"github.com/joho/godotenv"
)

func main() {
	// Read the env variables; fall back to the executable directory so the
	// binary can run from anywhere
	if err := godotenv.Load(); err != nil {
		if ex, exErr := os.Executable(); exErr == nil {
			_ = godotenv.Load(filepath.Join(filepath.Dir(ex), ".env"))
		}
	}

	cfg, err := config.Load()
	if err != nil {
		logging.Error("Configuration error", "error", err)
		os.Exit(1)
	}

	logging.InitLogger(cfg.LogDir, cfg.LogLevel)

	if cfg.SearchAPIKey == "" {
		logging.Warn("SEARCH_API_KEY is not set, search calls will be rejected upstream")
	}

	stats := data.NewStats()

	searchClient := websearch.NewClient(
		cfg.SearchAPIKey,
		cfg.SearchBaseURL,
		time.Duration(cfg.SearchTimeoutSeconds)*time.Second,
		time.Duration(cfg.RequestDelayMs)*time.Millisecond,
		time.Duration(cfg.ThrottleRetryDelayMs)*time.Millisecond,
	)

	pricer := pricing.NewProviderPricer(searchClient, cfg.ProviderDomain)
	finder := treatments.NewAggregator(searchClient, pricer)

	srv := server.NewServer(cfg, finder, stats)

	sched := scheduler.NewScheduler(srv.RateLimiter(), stats)
	if err := sched.Start(); err != nil {
		logging.Error("Failed to start maintenance scheduler", "error", err)
		os.Exit(1)
	}
	defer sched.Stop()

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Start the server in a goroutine
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Block until a signal is received
	<-quit

	// Create a context with timeout for shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logging.Error("Shutdown error", "error", err)
	}
}
