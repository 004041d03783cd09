package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"landing-forms/pkg/api"
	"landing-forms/pkg/clients/supabase"
	"landing-forms/pkg/config"
	"landing-forms/pkg/middleware"
	"landing-forms/pkg/services"
)

func main() {
	envErr := godotenv.Load()

	// Initialize configuration
	cfg := config.LoadConfig()
	logger := config.NewLogger(cfg)

	if envErr != nil {
		logger.Debug("No .env file found, relying on environment variables")
	}

	// The client is chosen once; without a URL and key every save is mocked
	supabaseClient := supabase.NewClientFromConfig(cfg)
	if supabase.IsConfigured(supabaseClient) {
		logger.WithField("url", cfg.SupabaseURL).Info("Supabase configured")
	} else {
		logger.Warn("Supabase not configured, form submissions will only be logged")
	}

	formService := services.NewFormService(supabaseClient, logger)

	gin.SetMode(cfg.GinMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS(cfg.AllowedOrigins))

	handlers := api.NewHandlers(formService, supabase.IsConfigured(supabaseClient), logger)
	handlers.RegisterRoutes(router)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.WithField("port", cfg.Port).Info("Server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("Error starting server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.WithError(err).Error("Server forced to shutdown")
	}
}
