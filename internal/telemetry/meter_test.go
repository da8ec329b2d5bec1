package telemetry

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

func labelValue(m *dto.Metric, name string) string {
	for _, label := range m.GetLabel() {
		if label.GetName() == name {
			return label.GetValue()
		}
	}
	return ""
}

func gatherFamilies(t *testing.T, registry *prometheus.Registry) map[string]*dto.MetricFamily {
	t.Helper()

	families, err := registry.Gather()
	require.NoError(t, err)

	byName := make(map[string]*dto.MetricFamily, len(families))
	for _, family := range families {
		byName[family.GetName()] = family
	}
	return byName
}

func TestNewMeterProvider_Disabled(t *testing.T) {
	t.Parallel()

	for name, mc := range map[string]*MetricsConfig{
		"no metrics section": nil,
		"metrics off":        {Exporter: MetricsExporterPrometheus},
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			mp, err := NewMeterProvider(context.Background(), WithMetricsConfig(mc))
			require.NoError(t, err)
			assert.IsType(t, noop.MeterProvider{}, mp)
		})
	}
}

func TestNewMeterProvider_OTLP(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	mp, err := NewMeterProvider(ctx,
		WithMetricsConfig(&MetricsConfig{Enabled: true}),
		WithMeterEndpoint("localhost:4318"),
		WithMeterInsecure(true),
	)
	require.NoError(t, err)

	sdkMP, ok := mp.(*sdkmetric.MeterProvider)
	require.True(t, ok)
	// Nothing listens on the endpoint; the final export may fail
	_ = sdkMP.Shutdown(ctx)
}

func TestNewMeterProvider_PrometheusRegistry(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	registry := prometheus.NewRegistry()
	mp, err := NewMeterProvider(ctx,
		WithMeterServiceName("deh-registry-api"),
		WithMeterServiceVersion("2.1.0"),
		WithMeterEnvironment("production"),
		WithMetricsConfig(&MetricsConfig{Enabled: true, Exporter: MetricsExporterPrometheus}),
		WithPrometheusRegisterer(registry),
	)
	require.NoError(t, err)
	defer func() { _ = mp.(*sdkmetric.MeterProvider).Shutdown(ctx) }()

	store, err := NewStoreMetrics(mp)
	require.NoError(t, err)
	store.RecordRelationsWritten(ctx, "create_relations", 3)
	store.RecordRelationsWritten(ctx, "delete_relation", 1)

	families := gatherFamilies(t, registry)

	written, ok := families["deh_registry_relations_written_total"]
	require.True(t, ok, "relations counter must be exported")
	byOperation := map[string]float64{}
	for _, m := range written.GetMetric() {
		byOperation[labelValue(m, "operation")] = m.GetCounter().GetValue()
	}
	assert.Equal(t, map[string]float64{"create_relations": 3, "delete_relation": 1}, byOperation)

	info, ok := families["target_info"]
	require.True(t, ok, "resource must be exported as target_info")
	require.Len(t, info.GetMetric(), 1)
	assert.Equal(t, ServiceNamespace, labelValue(info.GetMetric()[0], "service_namespace"))
	assert.Equal(t, "production", labelValue(info.GetMetric()[0], "deployment_environment"))
}
