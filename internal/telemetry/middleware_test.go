package telemetry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

type requestKey struct {
	method string
	route  string
	status string
}

func attrString(set attribute.Set, key attribute.Key) string {
	value, _ := set.Value(key)
	return value.AsString()
}

// newRegistryRouter mirrors the v1 route shapes with canned responses
func newRegistryRouter(mw func(http.Handler) http.Handler) *chi.Mux {
	r := chi.NewRouter()
	r.Use(mw)
	r.Route("/v1", func(r chi.Router) {
		r.Get("/relations", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
		r.Post("/relations", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusCreated)
		})
		r.Delete("/relations", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusConflict)
		})
		r.Get("/source/{id}", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})
	})
	return r
}

func TestNewHTTPMetrics_NilProvider(t *testing.T) {
	t.Parallel()

	metrics, err := NewHTTPMetrics(nil)
	require.NoError(t, err)
	assert.Nil(t, metrics)

	called := false
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true })
	metrics.Middleware(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/relations", nil))
	assert.True(t, called)
}

func TestHTTPMetrics_RecordsRoutesNotPaths(t *testing.T) {
	t.Parallel()

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	defer func() { _ = mp.Shutdown(context.Background()) }()

	mw, err := MetricsMiddleware(mp)
	require.NoError(t, err)
	router := newRegistryRouter(mw)

	requests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/v1/relations?elementUrn=urn:dehub:1"},
		{http.MethodGet, "/v1/relations"},
		{http.MethodPost, "/v1/relations"},
		{http.MethodDelete, "/v1/relations"},
		{http.MethodGet, "/v1/source/1"},
		{http.MethodGet, "/v1/source/2"},
		{http.MethodGet, "/v2/elements"},
	}
	for _, req := range requests {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(req.method, req.path, nil))
	}

	found := collectScope(t, reader, HTTPMetricsMeterName)

	total, ok := found["deh_registry_http_requests_total"].Data.(metricdata.Sum[int64])
	require.True(t, ok, "expected request counter")
	counts := map[requestKey]int64{}
	for _, dp := range total.DataPoints {
		counts[requestKey{
			method: attrString(dp.Attributes, "method"),
			route:  attrString(dp.Attributes, "route"),
			status: attrString(dp.Attributes, "status_code"),
		}] = dp.Value
	}
	assert.Equal(t, map[requestKey]int64{
		{http.MethodGet, "/v1/relations", "200"}:    2,
		{http.MethodPost, "/v1/relations", "201"}:   1,
		{http.MethodDelete, "/v1/relations", "409"}: 1,
		{http.MethodGet, "/v1/source/{id}", "404"}:  2,
		{http.MethodGet, unknownRoute, "404"}:       1,
	}, counts)

	duration, ok := found["deh_registry_http_request_duration_seconds"].Data.(metricdata.Histogram[float64])
	require.True(t, ok, "expected duration histogram")
	var observed uint64
	for _, dp := range duration.DataPoints {
		observed += dp.Count
	}
	assert.Equal(t, uint64(len(requests)), observed)

	active, ok := found["deh_registry_http_active_requests"].Data.(metricdata.Sum[int64])
	require.True(t, ok, "expected in-flight gauge")
	for _, dp := range active.DataPoints {
		assert.Zero(t, dp.Value, "no request is in flight after ServeHTTP returns")
	}
}

func TestHTTPMetrics_CountsInFlightRequests(t *testing.T) {
	t.Parallel()

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	defer func() { _ = mp.Shutdown(context.Background()) }()

	metrics, err := NewHTTPMetrics(mp)
	require.NoError(t, err)

	var inFlight int64
	handler := metrics.Middleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		active := collectScope(t, reader, HTTPMetricsMeterName)["deh_registry_http_active_requests"]
		sum, ok := active.Data.(metricdata.Sum[int64])
		require.True(t, ok)
		require.Len(t, sum.DataPoints, 1)
		inFlight = sum.DataPoints[0].Value
		w.WriteHeader(http.StatusAccepted)
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/v1/source", nil))

	assert.Equal(t, int64(1), inFlight)
}

func TestRoutePattern(t *testing.T) {
	t.Parallel()

	var seen string
	r := chi.NewRouter()
	r.Get("/v1/source/{id}", func(_ http.ResponseWriter, req *http.Request) {
		seen = routePattern(req)
	})
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/source/7", nil))
	assert.Equal(t, "/v1/source/{id}", seen)

	assert.Equal(t, unknownRoute, routePattern(httptest.NewRequest(http.MethodGet, "/v1/source/7", nil)))
}
