package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/srgjo27/package_pricing/internal/adapter/cache"
	"github.com/srgjo27/package_pricing/internal/adapter/handler"
	"github.com/srgjo27/package_pricing/internal/adapter/repository/postgres"
	"github.com/srgjo27/package_pricing/internal/core/engine"
	"github.com/srgjo27/package_pricing/internal/core/services"
	"github.com/srgjo27/package_pricing/internal/platform/config"
	"github.com/srgjo27/package_pricing/internal/platform/database"
	"github.com/srgjo27/package_pricing/internal/platform/logger"
)

func main() {
	l := logger.New(log.New(os.Stdout, "", log.LstdFlags|log.LUTC))

	cfg, err := config.Load(".env")
	if err != nil {
		l.LogErrorf("Invalid configuration: %v", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := database.NewPostgresDB(ctx, cfg.DB, l)
	if err != nil {
		l.LogErrorf("Failed to connect to db after retries: %v", err)
		os.Exit(1)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)
	defer db.Close()

	if err := database.Migrate(ctx, db); err != nil {
		l.LogErrorf("Failed to migrate database: %v", err)
		os.Exit(1)
	}

	l.LogInfo("Connecting to Redis at %s...", cfg.RedisAddr())

	redisClient := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr(),
		DB:   0,
	})
	defer redisClient.Close()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		l.LogErrorf("Failed to connect to Redis: %v", err)
		os.Exit(1)
	}

	l.LogInfo("Redis connected successfully")

	ruleRepo := postgres.NewRuleSetRepository(db)
	slotRepo := postgres.NewSlotRepository(db)
	bookingRepo := postgres.NewBookingRepository(db)
	ruleCache := cache.NewRuleSetCache(redisClient, cfg.RuleSetCacheTTL)

	eng := engine.New(cfg.LowStockThreshold)

	ruleService := services.NewRuleSetService(ruleRepo, ruleCache, l)
	quoteService := services.NewQuoteService(ruleService, eng)
	bookingService := services.NewBookingService(ruleRepo, slotRepo, bookingRepo, ruleCache, eng, l, services.BookingConfig{
		HoldTTL:         cfg.BookingHoldTTL,
		CleanupInterval: cfg.CleanupInterval,
	})

	h := handler.NewHandler(ruleService, quoteService, bookingService, l)

	go bookingService.RunBackgroundCleanup(ctx)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      h.Routes(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		l.LogInfo("Server starting on %s", cfg.HTTPAddr)

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			l.LogErrorf("Server startup failed: %v", err)
			cancel()
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
	case <-ctx.Done():
	}

	l.LogInfo("Shutting down server...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		l.LogErrorf("Server forced to shutdown: %v", err)
	}

	l.LogInfo("Server exiting")
}
