// ABOUTME: Main entry point for the Inshorts News API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/semaphore"

	"inshorts-news-api/api"
	"inshorts-news-api/api/handlers"
	"inshorts-news-api/core/interfaces"
	"inshorts-news-api/core/news"
	"inshorts-news-api/core/search"
	stdhttp "inshorts-news-api/infrastructure/http/standard"
	logruslogger "inshorts-news-api/infrastructure/logger/logrus"
	"inshorts-news-api/infrastructure/source/inshorts"
	"inshorts-news-api/pkg/config"
)

func main() {
	startTime := time.Now()

	// Load configuration
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Create logger
	logger := logruslogger.NewLogger(cfg.LogLevel)
	logger.Info("Starting Inshorts News API", map[string]interface{}{
		"port":                   cfg.Server.Port,
		"fetch_timeout_seconds":  cfg.Source.FetchTimeout,
		"max_concurrent_fetches": cfg.Source.MaxConcurrentFetches,
	})

	// Create HTTP client
	httpClient := stdhttp.NewStandardHTTPClient(30 * time.Second)

	// Create dependencies container
	deps := interfaces.Dependencies{
		HTTPClient: httpClient,
		Logger:     logger,
	}

	// Create the news source and core services
	source := inshorts.NewClient(deps, cfg.Source.BaseURL)

	fetcherConfig := news.DefaultFetcherConfig()
	fetcherConfig.Timeout = time.Duration(cfg.Source.FetchTimeout) * time.Second
	fetcher := news.NewFetcher(source, logger, fetcherConfig)

	sem := semaphore.NewWeighted(int64(cfg.Source.MaxConcurrentFetches))
	aggregator := news.NewAggregator(fetcher, sem, logger)
	searchService := search.NewService(aggregator, logger)

	// Create API with middleware
	humaAPI, router := api.NewAPI(api.APIConfig{Logger: logger})

	// Create and register handlers
	newsHandler := handlers.NewNewsHandler(aggregator, searchService)
	newsHandler.RegisterRoutes(humaAPI)

	systemHandler := handlers.NewSystemHandler(startTime)
	systemHandler.RegisterRoutes(humaAPI)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server stopped", nil)
}
