package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cookbook/internal/config"
	"cookbook/internal/handler"
	"cookbook/internal/recipe"
	"cookbook/internal/repository"
	"cookbook/internal/router"
	"cookbook/internal/service"
	"cookbook/internal/thumbnail"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting cookbook API server")

	if cfg.Auth.APIKey == "" {
		logger.Warn().Msg("API_KEY not set, authentication disabled")
	}

	// One manager per process, seeded with the sample recipes
	manager := recipe.NewManager()
	logger.Info().Int("recipes", manager.Len()).Msg("recipe manager seeded")

	// Initialize repository and service
	recipeRepo := repository.NewRecipeRepository(manager, logger)
	recipeService := service.NewRecipeService(recipeRepo, logger)

	// Initialize HTTP handlers
	loader := thumbnail.NewLoader(cfg.Image.Root, cfg.Image.Width, cfg.Image.Height, cfg.Image.MaxDimension, logger)
	recipeHandler := handler.NewRecipeHandler(recipeService, logger)
	imageHandler := handler.NewImageHandler(recipeService, loader, logger)

	// Initialize router
	mux := router.New(recipeHandler, imageHandler, cfg.Auth.APIKey, cfg.CORS, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		// Create a context with timeout for shutdown
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Attempt graceful shutdown
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			// Force close
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}
