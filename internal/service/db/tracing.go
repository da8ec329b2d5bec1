package database

import (
	"context"

	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/dataelementhub/dehub-registry/internal/otel"
)

const (
	// ServiceTracerName is the name used for the database service tracer
	ServiceTracerName = "github.com/dataelementhub/dehub-registry/service/db"
)

// DBSystemPostgres is the database system attribute for PostgreSQL
var DBSystemPostgres = semconv.DBSystemPostgreSQL

// startSpan starts a new span for database operations.
// If the tracer is nil, it returns a no-op span from the context.
// Every database span carries the db.system attribute.
func startSpan(
	ctx context.Context,
	tracer trace.Tracer,
	name string,
	opts ...trace.SpanStartOption,
) (context.Context, trace.Span) {
	if tracer != nil {
		opts = append([]trace.SpanStartOption{trace.WithAttributes(DBSystemPostgres)}, opts...)
	}
	return otel.StartSpan(ctx, tracer, name, opts...)
}

func (s *dbService) startSpan(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	return startSpan(ctx, s.tracer, name, opts...)
}
