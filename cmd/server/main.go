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

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mediashelf/catalog-service/internal/cache"
	"github.com/mediashelf/catalog-service/internal/config"
	"github.com/mediashelf/catalog-service/internal/handler"
	"github.com/mediashelf/catalog-service/internal/repository"
	"github.com/mediashelf/catalog-service/internal/router"
	"github.com/mediashelf/catalog-service/internal/service"
	"github.com/mediashelf/catalog-service/seeds"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	ctx := context.Background()

	// ------------ PostgreSQL ---------------
	poolConfig, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("failed to parse database config", zap.Error(err))
	}
	poolConfig.MaxConns = int32(cfg.DBPoolSize)
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer pool.Close()

	if err := waitForDB(ctx, pool, logger); err != nil {
		logger.Fatal("database not ready", zap.Error(err))
	}
	logger.Info("connected to PostgreSQL")

	// ------------ Run Migrations ---------------
	// for migrate-down using CLI command
	if len(os.Args) > 1 && os.Args[1] == "migrate-down" {
		if err := migrateDown(ctx, pool); err != nil {
			logger.Fatal("failed to migrate down", zap.Error(err))
		}
		logger.Info("migrations dropped")
		return
	}

	if err := migrateUp(ctx, pool); err != nil {
		logger.Fatal("failed to migrate up", zap.Error(err))
	}

	// ------------ Setup Seed Data ---------------
	if err := checkSeed(ctx, pool, logger); err != nil {
		logger.Fatal("failed to check seed", zap.Error(err))
	}

	// ------------ Redis (optional) ---------------
	var workCache service.WorkCache
	if opts, err := redis.ParseURL(cfg.RedisURL); err != nil {
		logger.Warn("invalid redis url, catalog cache disabled", zap.Error(err))
	} else {
		client := redis.NewClient(opts)
		catalogCache := cache.New(client, cfg.CacheTTL)
		if err := catalogCache.Ping(ctx); err != nil {
			logger.Warn("redis unavailable, catalog cache disabled", zap.Error(err))
		} else {
			logger.Info("connected to Redis")
			workCache = catalogCache
		}
	}

	// ---------------- Server --------------------
	repo := repository.New(pool)
	svc := service.New(repo, workCache, logger)
	h := handler.New(svc)

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: router.Setup(h),
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		s := <-sigChan
		logger.Info("received signal, shutting down", zap.Any("signal", s))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("server shutdown failed", zap.Error(err))
		}
	}()

	logger.Info("server listening", zap.Int("port", cfg.Port))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("server error", zap.Error(err))
	}
}

func waitForDB(ctx context.Context, pool *pgxpool.Pool, logger *zap.Logger) error {
	for i := 0; i < 30; i++ {
		if err := pool.Ping(ctx); err == nil {
			return nil
		}
		logger.Info("waiting for database...", zap.Int("attempt", i+1))
		time.Sleep(1 * time.Second)
	}
	return fmt.Errorf("database connection timeout after 30s")
}

func migrateDown(ctx context.Context, pool *pgxpool.Pool) error {
	sql, err := os.ReadFile("migrations/create_tables.down.sql")
	if err != nil {
		return fmt.Errorf("read migration file: %w", err)
	}
	if _, err := pool.Exec(ctx, string(sql)); err != nil {
		return fmt.Errorf("execute migration: %w", err)
	}
	return nil
}

func migrateUp(ctx context.Context, pool *pgxpool.Pool) error {
	sql, err := os.ReadFile("migrations/create_tables.up.sql")
	if err != nil {
		return fmt.Errorf("read migration file: %w", err)
	}
	if _, err := pool.Exec(ctx, string(sql)); err != nil {
		return fmt.Errorf("execute migration: %w", err)
	}
	return nil
}

func checkSeed(ctx context.Context, pool *pgxpool.Pool, logger *zap.Logger) error {
	var count int
	if err := pool.QueryRow(ctx, "SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		return fmt.Errorf("check users count: %w", err)
	}
	if count > 0 {
		logger.Info("database already seeded, skipping", zap.Int("users", count))
		return nil
	}
	return seeds.Setup(ctx, pool, logger)
}
