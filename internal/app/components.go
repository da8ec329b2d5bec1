package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dataelementhub/dehub-registry/internal/service"
	"github.com/dataelementhub/dehub-registry/internal/telemetry"
)

// AppComponents groups all application components
//
//nolint:revive // This name is fine
type AppComponents struct {
	// RegistryService serves relations and sources
	RegistryService service.RegistryService

	// UserResolver maps authenticated identities onto user ids
	UserResolver service.UserResolver

	// Telemetry owns the tracer and meter providers
	Telemetry *telemetry.Telemetry

	// Pool is the database connection pool, nil when the services were injected
	Pool *pgxpool.Pool
}

// close releases the pool and flushes telemetry
func (c *AppComponents) close(ctx context.Context) error {
	if c == nil {
		return nil
	}

	if c.Pool != nil {
		c.Pool.Close()
	}

	var errs []error
	if c.Telemetry != nil {
		if err := c.Telemetry.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("failed to shut down telemetry: %w", err))
		}
	}
	return errors.Join(errs...)
}
