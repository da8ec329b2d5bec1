package telemetry

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

// collectScope returns the metrics recorded under meter scopeName by name
func collectScope(t *testing.T, reader *sdkmetric.ManualReader, scopeName string) map[string]metricdata.Metrics {
	t.Helper()

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	found := map[string]metricdata.Metrics{}
	for _, scope := range rm.ScopeMetrics {
		if scope.Scope.Name != scopeName {
			continue
		}
		for _, m := range scope.Metrics {
			found[m.Name] = m
		}
	}
	return found
}

func TestNewStoreMetrics(t *testing.T) {
	t.Parallel()

	t.Run("returns nil when provider is nil", func(t *testing.T) {
		t.Parallel()

		metrics, err := NewStoreMetrics(nil)
		require.NoError(t, err)
		assert.Nil(t, metrics)
	})

	t.Run("creates metrics with SDK provider", func(t *testing.T) {
		t.Parallel()

		mp := sdkmetric.NewMeterProvider()
		defer func() { _ = mp.Shutdown(context.Background()) }()

		metrics, err := NewStoreMetrics(mp)
		require.NoError(t, err)
		require.NotNil(t, metrics)
		assert.NotNil(t, metrics.txDuration)
		assert.NotNil(t, metrics.relationsWritten)
	})
}

func TestStoreMetrics_NilReceiver(t *testing.T) {
	t.Parallel()

	var metrics *StoreMetrics
	// Should not panic
	metrics.RecordTransaction(context.Background(), "create_relations", time.Second, true)
	metrics.RecordRelationsWritten(context.Background(), "create_relations", 3)
}

func TestStoreMetrics_RecordTransaction(t *testing.T) {
	t.Parallel()

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	defer func() { _ = mp.Shutdown(context.Background()) }()

	metrics, err := NewStoreMetrics(mp)
	require.NoError(t, err)

	metrics.RecordTransaction(context.Background(), "update_relation", 1500*time.Millisecond, true)
	metrics.RecordTransaction(context.Background(), "update_relation", 500*time.Millisecond, false)

	found := collectScope(t, reader, StoreMetricsMeterName)
	m, ok := found["deh_registry_store_transaction_duration_seconds"]
	require.True(t, ok, "expected transaction duration metric")

	hist, ok := m.Data.(metricdata.Histogram[float64])
	require.True(t, ok, "expected histogram data type")
	require.Len(t, hist.DataPoints, 2)

	var sum float64
	for _, dp := range hist.DataPoints {
		sum += dp.Sum
	}
	assert.InDelta(t, 2.0, sum, 0.001)
}

func TestStoreMetrics_RecordRelationsWritten(t *testing.T) {
	t.Parallel()

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	defer func() { _ = mp.Shutdown(context.Background()) }()

	metrics, err := NewStoreMetrics(mp)
	require.NoError(t, err)

	metrics.RecordRelationsWritten(context.Background(), "create_relations", 3)
	metrics.RecordRelationsWritten(context.Background(), "create_relations", 2)
	metrics.RecordRelationsWritten(context.Background(), "create_relations", 0)

	found := collectScope(t, reader, StoreMetricsMeterName)
	m, ok := found["deh_registry_relations_written_total"]
	require.True(t, ok, "expected relations written metric")

	sum, ok := m.Data.(metricdata.Sum[int64])
	require.True(t, ok, "expected sum data type")
	require.Len(t, sum.DataPoints, 1)
	assert.Equal(t, int64(5), sum.DataPoints[0].Value)
}
