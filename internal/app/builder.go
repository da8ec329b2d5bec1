package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/netip"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/dataelementhub/dehub-registry/internal/api"
	"github.com/dataelementhub/dehub-registry/internal/auth"
	"github.com/dataelementhub/dehub-registry/internal/authz"
	"github.com/dataelementhub/dehub-registry/internal/config"
	"github.com/dataelementhub/dehub-registry/internal/db"
	"github.com/dataelementhub/dehub-registry/internal/service"
	database "github.com/dataelementhub/dehub-registry/internal/service/db"
	"github.com/dataelementhub/dehub-registry/internal/telemetry"
	"github.com/dataelementhub/dehub-registry/internal/versions"
)

const (
	defaultHTTPAddress     = ":8080"
	defaultRequestTimeout  = 10 * time.Second
	defaultReadTimeout     = 10 * time.Second
	defaultWriteTimeout    = 15 * time.Second
	defaultIdleTimeout     = 60 * time.Second
	defaultGracefulTimeout = 30 * time.Second
)

// RegistryAppOptions is a function that configures the registry app builder
type RegistryAppOptions func(*registryAppConfig) error

// registryAppConfig collects everything NewRegistryApp needs. Components left
// nil are built from the configuration.
type registryAppConfig struct {
	config *config.Config

	// Optional component overrides (primarily for testing)
	registryService service.RegistryService
	userResolver    service.UserResolver
	authMiddleware  func(http.Handler) http.Handler
	authzMiddleware func(http.Handler) http.Handler
	telemetry       *telemetry.Telemetry

	// HTTP server options
	address         string
	middlewares     []func(http.Handler) http.Handler
	requestTimeout  time.Duration
	readTimeout     time.Duration
	writeTimeout    time.Duration
	idleTimeout     time.Duration
	gracefulTimeout time.Duration
}

func baseConfig(opts ...RegistryAppOptions) (*registryAppConfig, error) {
	cfg := &registryAppConfig{
		address:         defaultHTTPAddress,
		requestTimeout:  defaultRequestTimeout,
		readTimeout:     defaultReadTimeout,
		writeTimeout:    defaultWriteTimeout,
		idleTimeout:     defaultIdleTimeout,
		gracefulTimeout: defaultGracefulTimeout,
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// NewRegistryApp builds the application from the given options
func NewRegistryApp(
	ctx context.Context,
	opts ...RegistryAppOptions,
) (*RegistryApp, error) {
	cfg, err := baseConfig(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to build base configuration: %w", err)
	}
	if cfg.config == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	components := &AppComponents{}

	// Release whatever was built when a later step fails
	var cleanupNeeded = true
	defer func() {
		if cleanupNeeded {
			if err := components.close(ctx); err != nil {
				slog.Warn("Failed to release components", "error", err)
			}
		}
	}()

	if err := buildTelemetry(ctx, cfg, components); err != nil {
		return nil, fmt.Errorf("failed to build telemetry: %w", err)
	}

	if err := buildServiceComponents(ctx, cfg, components); err != nil {
		return nil, fmt.Errorf("failed to build service components: %w", err)
	}

	if cfg.authMiddleware == nil {
		cfg.authMiddleware, err = auth.NewAuthMiddleware(cfg.config.Auth)
		if err != nil {
			return nil, fmt.Errorf("failed to build auth middleware: %w", err)
		}
	}

	if cfg.authzMiddleware == nil {
		cfg.authzMiddleware, err = authz.NewMiddleware(cfg.config.Authz)
		if err != nil {
			return nil, fmt.Errorf("failed to build authz middleware: %w", err)
		}
	}

	httpServer, err := buildHTTPServer(cfg, components)
	if err != nil {
		return nil, fmt.Errorf("failed to build HTTP server: %w", err)
	}

	cleanupNeeded = false

	return &RegistryApp{
		config:          cfg.config,
		components:      components,
		httpServer:      httpServer,
		gracefulTimeout: cfg.gracefulTimeout,
	}, nil
}

// WithConfig sets the configuration
func WithConfig(c *config.Config) RegistryAppOptions {
	return func(cfg *registryAppConfig) error {
		cfg.config = c
		return nil
	}
}

// WithAddress sets the HTTP server address
func WithAddress(addr string) RegistryAppOptions {
	return func(cfg *registryAppConfig) error {
		if addr == "" {
			return fmt.Errorf("address cannot be empty")
		}

		host, port, found := strings.Cut(addr, ":")
		if !found || port == "" {
			return fmt.Errorf("address is not a valid port: %s", addr)
		}
		if host == "localhost" {
			host = "127.0.0.1"
		}
		if host == "" {
			host = "0.0.0.0"
		}

		if _, err := netip.ParseAddrPort(host + ":" + port); err != nil {
			return fmt.Errorf("address is not a valid port: %w", err)
		}

		cfg.address = addr
		return nil
	}
}

// WithMiddlewares replaces the default HTTP middlewares
func WithMiddlewares(mw ...func(http.Handler) http.Handler) RegistryAppOptions {
	return func(cfg *registryAppConfig) error {
		cfg.middlewares = mw
		return nil
	}
}

// WithRegistryService injects the store and user resolver instead of
// connecting to the configured database (for testing)
func WithRegistryService(svc service.RegistryService, users service.UserResolver) RegistryAppOptions {
	return func(cfg *registryAppConfig) error {
		if svc == nil || users == nil {
			return fmt.Errorf("registry service and user resolver are both required")
		}
		cfg.registryService = svc
		cfg.userResolver = users
		return nil
	}
}

// WithAuthMiddleware replaces the middleware built from the auth configuration
func WithAuthMiddleware(mw func(http.Handler) http.Handler) RegistryAppOptions {
	return func(cfg *registryAppConfig) error {
		cfg.authMiddleware = mw
		return nil
	}
}

// WithTelemetry injects already initialized telemetry providers
func WithTelemetry(t *telemetry.Telemetry) RegistryAppOptions {
	return func(cfg *registryAppConfig) error {
		cfg.telemetry = t
		return nil
	}
}

// WithGracefulTimeout bounds how long Run waits for in-flight requests on shutdown
func WithGracefulTimeout(timeout time.Duration) RegistryAppOptions {
	return func(cfg *registryAppConfig) error {
		if timeout <= 0 {
			return fmt.Errorf("graceful timeout must be positive, got %s", timeout)
		}
		cfg.gracefulTimeout = timeout
		return nil
	}
}

// buildTelemetry initializes the tracer and meter providers
func buildTelemetry(ctx context.Context, b *registryAppConfig, c *AppComponents) error {
	if b.telemetry != nil {
		c.Telemetry = b.telemetry
		return nil
	}

	telCfg := b.config.Telemetry
	if telCfg != nil && telCfg.ServiceVersion == "" {
		withVersion := *telCfg
		withVersion.ServiceVersion = versions.Version
		telCfg = &withVersion
	}

	tel, err := telemetry.New(ctx, telemetry.WithTelemetryConfig(telCfg))
	if err != nil {
		return err
	}
	c.Telemetry = tel
	return nil
}

// buildServiceComponents connects to the database and builds the store and
// user resolver on top of the pool
func buildServiceComponents(ctx context.Context, b *registryAppConfig, c *AppComponents) error {
	if b.registryService != nil {
		c.RegistryService = b.registryService
		c.UserResolver = b.userResolver
		return nil
	}

	slog.Info("Initializing service components")

	pool, err := db.NewPool(ctx, b.config.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	c.Pool = pool

	storeMetrics, err := telemetry.NewStoreMetrics(c.Telemetry.MeterProvider())
	if err != nil {
		return fmt.Errorf("failed to create store metrics: %w", err)
	}

	c.RegistryService, err = database.New(
		database.WithConnectionPool(pool),
		database.WithTracer(c.Telemetry.Tracer(database.ServiceTracerName)),
		database.WithMetrics(storeMetrics),
	)
	if err != nil {
		return fmt.Errorf("failed to create registry service: %w", err)
	}

	c.UserResolver, err = database.NewUserResolver(pool,
		database.WithCacheTTL(b.config.Auth.GetIdentityCacheTTL()),
		database.WithResolverTracer(c.Telemetry.Tracer(database.ServiceTracerName)),
	)
	if err != nil {
		return fmt.Errorf("failed to create user resolver: %w", err)
	}

	slog.Info("Service components initialized successfully")
	return nil
}

// buildHTTPServer builds the HTTP server with router and middleware
func buildHTTPServer(b *registryAppConfig, c *AppComponents) (*http.Server, error) {
	slog.Info("Initializing HTTP server")

	middlewares := b.middlewares
	if middlewares == nil {
		metricsMiddleware, err := telemetry.MetricsMiddleware(c.Telemetry.MeterProvider())
		if err != nil {
			return nil, fmt.Errorf("failed to create metrics middleware: %w", err)
		}

		// Metrics and tracing sit in front of auth so rejected requests are observed
		middlewares = []func(http.Handler) http.Handler{
			middleware.RequestID,
			middleware.RealIP,
			middleware.Recoverer,
			metricsMiddleware,
			telemetry.TracingMiddleware(c.Telemetry.TracerProvider()),
			middleware.Timeout(b.requestTimeout),
			api.LoggingMiddleware,
		}
	}
	middlewares = append(middlewares, b.authMiddleware)
	if b.authzMiddleware != nil {
		middlewares = append(middlewares, b.authzMiddleware)
	}

	router := api.NewServer(c.RegistryService, c.UserResolver,
		api.WithMiddlewares(middlewares...),
		api.WithMetricsHandler(c.Telemetry.MetricsHandler()),
	)

	server := &http.Server{
		Addr:         b.address,
		Handler:      router,
		ReadTimeout:  b.readTimeout,
		WriteTimeout: b.writeTimeout,
		IdleTimeout:  b.idleTimeout,
	}

	slog.Info("HTTP server configured", "address", b.address)
	return server, nil
}
