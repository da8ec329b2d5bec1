package telemetry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
)

// collector records the OTLP paths it receives exports on
type collector struct {
	mu    sync.Mutex
	paths []string
}

func (c *collector) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	c.mu.Lock()
	c.paths = append(c.paths, r.URL.Path)
	c.mu.Unlock()
	w.WriteHeader(http.StatusOK)
}

func (c *collector) received() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.paths...)
}

func TestNew_NoOpWhenNothingIsExported(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts []Option
	}{
		{name: "no config"},
		{
			name: "telemetry disabled",
			opts: []Option{WithTelemetryConfig(&Config{
				Enabled: false,
				Tracing: &TracingConfig{Enabled: true},
				Metrics: &MetricsConfig{Enabled: true},
			})},
		},
		{
			name: "tracing and metrics disabled",
			opts: []Option{WithTelemetryConfig(&Config{
				Enabled: true,
				Tracing: &TracingConfig{Enabled: false},
				Metrics: &MetricsConfig{Enabled: false},
			})},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctx := context.Background()

			tel, err := New(ctx, tt.opts...)
			require.NoError(t, err)

			assert.IsType(t, tracenoop.TracerProvider{}, tel.TracerProvider())
			assert.IsType(t, noop.MeterProvider{}, tel.MeterProvider())
			assert.Nil(t, tel.MetricsHandler())

			// Shutdown of no-op providers is repeatable
			require.NoError(t, tel.Shutdown(ctx))
			require.NoError(t, tel.Shutdown(ctx))
		})
	}
}

func TestNew_RejectsInvalidConfig(t *testing.T) {
	t.Parallel()

	_, err := New(context.Background(), WithTelemetryConfig(&Config{
		Enabled: true,
		Tracing: &TracingConfig{Enabled: true, Sampling: 1.5},
	}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid telemetry configuration")
}

func TestNew_FlushesToCollectorOnShutdown(t *testing.T) {
	t.Parallel()

	otlp := &collector{}
	server := httptest.NewServer(otlp)
	defer server.Close()

	ctx := context.Background()
	tel, err := New(ctx, WithTelemetryConfig(&Config{
		Enabled:     true,
		ServiceName: "deh-registry-api",
		Environment: "staging",
		Endpoint:    strings.TrimPrefix(server.URL, "http://"),
		Insecure:    true,
		Tracing:     &TracingConfig{Enabled: true, Sampling: 1.0},
		Metrics:     &MetricsConfig{Enabled: true},
	}))
	require.NoError(t, err)

	require.IsType(t, &sdktrace.TracerProvider{}, tel.TracerProvider())
	require.IsType(t, &sdkmetric.MeterProvider{}, tel.MeterProvider())
	assert.Nil(t, tel.MetricsHandler(), "OTLP metrics are pushed, not scraped")

	_, span := tel.Tracer(TracerName).Start(ctx, "GET /v1/relations")
	span.End()

	store, err := NewStoreMetrics(tel.MeterProvider())
	require.NoError(t, err)
	store.RecordRelationsWritten(ctx, "create_relations", 2)

	require.NoError(t, tel.Shutdown(ctx))

	received := otlp.received()
	assert.Contains(t, received, "/v1/traces")
	assert.Contains(t, received, "/v1/metrics")
}

func TestTelemetry_PrometheusMetricsHandler(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	tel, err := New(ctx, WithTelemetryConfig(&Config{
		Enabled: true,
		Metrics: &MetricsConfig{
			Enabled:  true,
			Exporter: MetricsExporterPrometheus,
		},
	}))
	require.NoError(t, err)
	defer func() {
		require.NoError(t, tel.Shutdown(ctx))
	}()

	handler := tel.MetricsHandler()
	require.NotNil(t, handler)

	metricsMW, err := MetricsMiddleware(tel.MeterProvider())
	require.NoError(t, err)
	router := chi.NewRouter()
	router.Use(metricsMW)
	router.Get("/v1/source/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/source/42", nil))

	store, err := NewStoreMetrics(tel.MeterProvider())
	require.NoError(t, err)
	store.RecordRelationsWritten(ctx, "create_relations", 4)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	body := rr.Body.String()
	assert.Contains(t, body, "deh_registry_relations_written_total")
	assert.Contains(t, body, `route="/v1/source/{id}"`)
	assert.Contains(t, body, `status_code="404"`)
	assert.NotContains(t, body, "/v1/source/42")
	assert.Contains(t, body, "go_goroutines")
}

func TestTelemetry_PrometheusRegistriesAreIsolated(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	cfg := &Config{
		Enabled: true,
		Metrics: &MetricsConfig{Enabled: true, Exporter: MetricsExporterPrometheus},
	}

	// Two servers in one process must not collide on collector registration
	first, err := New(ctx, WithTelemetryConfig(cfg))
	require.NoError(t, err)
	defer func() { require.NoError(t, first.Shutdown(ctx)) }()

	second, err := New(ctx, WithTelemetryConfig(cfg))
	require.NoError(t, err)
	defer func() { require.NoError(t, second.Shutdown(ctx)) }()

	store, err := NewStoreMetrics(first.MeterProvider())
	require.NoError(t, err)
	store.RecordRelationsWritten(ctx, "delete_relation", 1)

	rr := httptest.NewRecorder()
	second.MetricsHandler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.NotContains(t, rr.Body.String(), "deh_registry_relations_written_total")
}
