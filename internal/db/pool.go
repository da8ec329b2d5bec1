// Package db contains code for connecting to the database.
package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dataelementhub/dehub-registry/internal/config"
)

const (
	defaultMaxOpenConns   = 25
	defaultMaxIdleConns   = 5
	defaultConnectTimeout = 30 * time.Second
)

// NewPool creates a pgx connection pool from the provided configuration and
// waits until the database answers a ping, retrying with exponential backoff
// for up to the configured connect timeout.
func NewPool(ctx context.Context, cfg *config.DatabaseConfig) (*pgxpool.Pool, error) {
	if cfg == nil {
		return nil, fmt.Errorf("database configuration is required")
	}

	connString, err := cfg.GetConnectionString()
	if err != nil {
		return nil, fmt.Errorf("failed to build connection string: %w", err)
	}

	poolCfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection string: %w", err)
	}

	poolCfg.MaxConns = defaultMaxOpenConns
	if cfg.MaxOpenConns > 0 {
		poolCfg.MaxConns = cfg.MaxOpenConns
	}
	poolCfg.MinConns = defaultMaxIdleConns
	if cfg.MaxIdleConns > 0 {
		poolCfg.MinConns = cfg.MaxIdleConns
	}
	if poolCfg.MinConns > poolCfg.MaxConns {
		poolCfg.MinConns = poolCfg.MaxConns
	}

	lifetime, err := cfg.GetConnMaxLifetime()
	if err != nil {
		return nil, fmt.Errorf("invalid connection max lifetime: %w", err)
	}
	if lifetime > 0 {
		poolCfg.MaxConnLifetime = lifetime
	}

	connectTimeout, err := cfg.GetConnectTimeout()
	if err != nil {
		return nil, fmt.Errorf("invalid connect timeout: %w", err)
	}
	if connectTimeout == 0 {
		connectTimeout = defaultConnectTimeout
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := waitForDatabase(ctx, pool, connectTimeout); err != nil {
		pool.Close()
		return nil, err
	}

	slog.Info("Database connection established",
		"user", cfg.User,
		"host", cfg.Host,
		"port", cfg.Port,
		"database", cfg.Database)

	return pool, nil
}

// waitForDatabase pings the pool until it answers or the timeout elapses.
func waitForDatabase(ctx context.Context, pool *pgxpool.Pool, timeout time.Duration) error {
	_, err := backoff.Retry(ctx,
		func() (struct{}, error) {
			return struct{}{}, pool.Ping(ctx)
		},
		backoff.WithBackOff(backoff.NewExponentialBackOff()),
		backoff.WithMaxElapsedTime(timeout),
		backoff.WithNotify(func(err error, next time.Duration) {
			slog.WarnContext(ctx, "Database not reachable yet, retrying",
				"error", err,
				"retry_in", next)
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}
	return nil
}
