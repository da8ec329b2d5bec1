package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	// StoreMetricsMeterName is the name used for the store metrics meter
	StoreMetricsMeterName = "github.com/dataelementhub/dehub-registry/store"
)

// StoreMetrics holds the OpenTelemetry instruments for store operations
type StoreMetrics struct {
	txDuration       metric.Float64Histogram
	relationsWritten metric.Int64Counter
}

// NewStoreMetrics creates a new StoreMetrics instance with the given meter provider.
// If provider is nil, it returns nil (no-op metrics).
func NewStoreMetrics(provider metric.MeterProvider) (*StoreMetrics, error) {
	if provider == nil {
		return nil, nil
	}

	meter := provider.Meter(StoreMetricsMeterName)

	txDuration, err := meter.Float64Histogram(
		"deh_registry_store_transaction_duration_seconds",
		metric.WithDescription("Duration of store write transactions in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5),
	)
	if err != nil {
		return nil, err
	}

	relationsWritten, err := meter.Int64Counter(
		"deh_registry_relations_written_total",
		metric.WithDescription("Number of element relations created, updated or deleted"),
		metric.WithUnit("{relation}"),
	)
	if err != nil {
		return nil, err
	}

	return &StoreMetrics{
		txDuration:       txDuration,
		relationsWritten: relationsWritten,
	}, nil
}

// RecordTransaction records the duration and outcome of a write transaction
func (m *StoreMetrics) RecordTransaction(ctx context.Context, operation string, duration time.Duration, success bool) {
	if m == nil || m.txDuration == nil {
		return
	}

	attrs := []attribute.KeyValue{
		attribute.String("operation", operation),
		attribute.Bool("success", success),
	}

	m.txDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(attrs...))
}

// RecordRelationsWritten counts relations committed by operation
func (m *StoreMetrics) RecordRelationsWritten(ctx context.Context, operation string, count int) {
	if m == nil || m.relationsWritten == nil || count <= 0 {
		return
	}

	m.relationsWritten.Add(ctx, int64(count), metric.WithAttributes(attribute.String("operation", operation)))
}
