// Package main is the entry point for the Barbershop reporting API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/barbershop/backend/config"
	"github.com/barbershop/backend/internal/application/adapter"
	"github.com/barbershop/backend/internal/infra/db"
	"github.com/barbershop/backend/internal/infra/dependency"
	"github.com/barbershop/backend/internal/integration/cache"
	"github.com/barbershop/backend/internal/integration/email"
	"github.com/barbershop/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := config.Load()

	slog.Info("Starting Barbershop API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
		"timezone", cfg.Report.Timezone,
	)

	database, err := db.NewConnection(&cfg.Database)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	if err := database.AutoMigrate(model.AllModels()...); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migrations completed successfully")

	redisClient := connectRedis(&cfg.Redis)
	if redisClient != nil {
		defer func() {
			if err := redisClient.Close(); err != nil {
				slog.Error("Failed to close redis connection", "error", err)
			}
		}()
	}

	injector, err := dependency.NewInjector(cfg, database.DB(), redisClient, emailSender(&cfg.Email), time.Now)
	if err != nil {
		slog.Error("Failed to wire dependencies", "error", err)
		os.Exit(1)
	}

	engine := injector.Router.Setup(cfg.Server.Environment)

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	if cfg.Email.WorkerEnabled {
		go injector.EmailWorker.Start(ctx)
	}
	injector.WriteRateLimiter.StartCleanup(cfg.RateLimit.Window, ctx.Done())

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}

// connectRedis returns nil when caching is disabled or Redis is unreachable.
func connectRedis(cfg *config.RedisConfig) *redis.Client {
	if cfg.URL == "" {
		slog.Info("Report cache disabled")
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := cache.NewRedisClient(ctx, cfg)
	if err != nil {
		slog.Warn("Redis unavailable, running without report cache", "error", err)
		return nil
	}
	return client
}

func emailSender(cfg *config.EmailConfig) adapter.EmailSender {
	if cfg.ResendAPIKey == "" {
		slog.Warn("RESEND_API_KEY not set, digests will not be delivered")
		return email.NewMockEmailSender()
	}
	return email.NewResendClient(cfg.ResendAPIKey, cfg.ResendBaseURL, cfg.FromName, cfg.FromEmail)
}
