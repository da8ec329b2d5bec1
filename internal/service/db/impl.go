// Package database provides a database-backed implementation of the RegistryService interface
package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/trace"

	"github.com/dataelementhub/dehub-registry/internal/db/sqlc"
	"github.com/dataelementhub/dehub-registry/internal/service"
	"github.com/dataelementhub/dehub-registry/internal/telemetry"
)

// options holds configuration options for the database service
type options struct {
	pool    *pgxpool.Pool
	tracer  trace.Tracer
	metrics *telemetry.StoreMetrics
}

// Option is a functional option for configuring the database service
type Option func(*options) error

// WithConnectionPool creates a new database-backed registry service with the
// given pgx pool. The caller is responsible for closing the pool when it is
// done.
func WithConnectionPool(pool *pgxpool.Pool) Option {
	return func(o *options) error {
		if pool == nil {
			return fmt.Errorf("pgx pool is required")
		}
		o.pool = pool
		return nil
	}
}

// WithTracer sets the OpenTelemetry tracer for the database service.
// If not set, tracing will be disabled (no-op).
func WithTracer(tracer trace.Tracer) Option {
	return func(o *options) error {
		o.tracer = tracer
		return nil
	}
}

// WithMetrics sets the instruments recording transaction and write counts.
// A nil value disables store metrics.
func WithMetrics(metrics *telemetry.StoreMetrics) Option {
	return func(o *options) error {
		o.metrics = metrics
		return nil
	}
}

// dbService implements the RegistryService interface using a database backend
type dbService struct {
	pool    *pgxpool.Pool
	tracer  trace.Tracer
	metrics *telemetry.StoreMetrics
}

var _ service.RegistryService = (*dbService)(nil)

// New creates a new database-backed registry service with the given options
func New(opts ...Option) (service.RegistryService, error) {
	o := &options{}

	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}

	if o.pool == nil {
		return nil, fmt.Errorf("pgx pool is required")
	}

	return &dbService{
		pool:    o.pool,
		tracer:  o.tracer,
		metrics: o.metrics,
	}, nil
}

// CheckReadiness checks if the service is ready to serve requests
func (s *dbService) CheckReadiness(ctx context.Context) error {
	err := s.pool.Ping(ctx)
	if err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}
	return nil
}

// inTx runs fn inside a read-write transaction. The transaction is committed
// when fn returns nil and rolled back otherwise. Every error raised by the
// store is returned as a *service.StoreError.
func (s *dbService) inTx(ctx context.Context, operation string, fn func(querier *sqlc.Queries) error) (err error) {
	start := time.Now()
	defer func() {
		s.metrics.RecordTransaction(ctx, operation, time.Since(start), err == nil)
	}()

	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{
		IsoLevel:   pgx.ReadCommitted,
		AccessMode: pgx.ReadWrite,
	})
	if err != nil {
		return service.NewStoreError(fmt.Errorf("failed to begin transaction: %w", err))
	}
	defer func() {
		if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			slog.WarnContext(ctx, "Failed to roll back transaction",
				"error", err,
				"request_id", middleware.GetReqID(ctx))
		}
	}()

	if err := fn(sqlc.New(tx)); err != nil {
		return service.NewStoreError(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return service.NewStoreError(err)
	}

	return nil
}
