package main

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/dataelementhub/dehub-registry/internal/logging"
)

//nolint:paralleltest // modifies the process environment
func TestGetLogLevel(t *testing.T) {
	tests := []struct {
		name     string
		prefixed string
		fallback string
		want     slog.Level
	}{
		{name: "unset", want: slog.LevelInfo},
		{name: "prefixed debug", prefixed: "debug", want: slog.LevelDebug},
		{name: "fallback warn", fallback: "WARNING", want: slog.LevelWarn},
		{name: "prefixed wins", prefixed: "error", fallback: "debug", want: slog.LevelError},
		{name: "invalid", prefixed: "verbose", want: slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("DEH_REGISTRY_LOG_LEVEL", tt.prefixed)
			t.Setenv("LOG_LEVEL", tt.fallback)
			assert.Equal(t, tt.want, getLogLevel())
		})
	}
}

func TestTraceHandlerInjectsSpanContext(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(&traceHandler{Handler: logging.NewHandler(logging.WithOutput(&buf))}).With("component", "test")

	tp := sdktrace.NewTracerProvider()
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	ctx, span := tp.Tracer("test").Start(context.Background(), "op")
	defer span.End()

	logger.InfoContext(ctx, "with span")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, span.SpanContext().TraceID().String(), record["trace_id"])
	assert.Equal(t, span.SpanContext().SpanID().String(), record["span_id"])
	assert.Equal(t, "test", record["component"])

	buf.Reset()
	logger.Info("without span")
	record = map[string]any{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.NotContains(t, record, "trace_id")
}
