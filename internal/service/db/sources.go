package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel/trace"

	"github.com/dataelementhub/dehub-registry/internal/db/sqlc"
	"github.com/dataelementhub/dehub-registry/internal/otel"
	"github.com/dataelementhub/dehub-registry/internal/service"
)

// ListSources returns every source ordered by id
func (s *dbService) ListSources(ctx context.Context) ([]*service.Source, error) {
	ctx, span := s.startSpan(ctx, "dbService.ListSources")
	defer span.End()

	rows, err := sqlc.New(s.pool).ListSources(ctx)
	if err != nil {
		err = service.NewStoreError(err)
		otel.RecordError(span, err)
		return nil, err
	}

	result := make([]*service.Source, 0, len(rows))
	for _, row := range rows {
		result = append(result, toSource(
			row.ID, row.Name, row.Prefix, row.Type, row.BaseUrl, row.Version, row.CreatedAt,
		))
	}

	span.SetAttributes(otel.AttrResultCount.Int(len(result)))
	return result, nil
}

// ListSourcesByType returns the sources of the given type ordered by id
func (s *dbService) ListSourcesByType(
	ctx context.Context,
	sourceType service.SourceType,
) ([]*service.Source, error) {
	ctx, span := s.startSpan(ctx, "dbService.ListSourcesByType",
		trace.WithAttributes(otel.AttrSourceType.String(string(sourceType))),
	)
	defer span.End()

	rows, err := sqlc.New(s.pool).ListSourcesByType(ctx, string(sourceType))
	if err != nil {
		err = service.NewStoreError(err)
		otel.RecordError(span, err)
		return nil, err
	}

	result := make([]*service.Source, 0, len(rows))
	for _, row := range rows {
		result = append(result, toSource(
			row.ID, row.Name, row.Prefix, row.Type, row.BaseUrl, row.Version, row.CreatedAt,
		))
	}

	span.SetAttributes(otel.AttrResultCount.Int(len(result)))
	return result, nil
}

// GetSource returns the source with the given id
func (s *dbService) GetSource(ctx context.Context, id int32) (*service.Source, error) {
	ctx, span := s.startSpan(ctx, "dbService.GetSource",
		trace.WithAttributes(otel.AttrSourceID.Int(int(id))),
	)
	defer span.End()

	row, err := sqlc.New(s.pool).GetSource(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, service.ErrSourceNotFound
	}
	if err != nil {
		err = service.NewStoreError(err)
		otel.RecordError(span, err)
		return nil, err
	}

	return toSource(row.ID, row.Name, row.Prefix, row.Type, row.BaseUrl, row.Version, row.CreatedAt), nil
}

// CreateSource stores source and returns the id assigned by the database
func (s *dbService) CreateSource(ctx context.Context, source *service.Source) (int32, error) {
	ctx, span := s.startSpan(ctx, "dbService.CreateSource")
	defer span.End()

	if source == nil {
		err := fmt.Errorf("source is required")
		otel.RecordError(span, err)
		return 0, err
	}
	span.SetAttributes(otel.AttrSourceType.String(string(source.Type)))

	var id int32
	err := s.inTx(ctx, opCreateSource, func(querier *sqlc.Queries) error {
		var err error
		id, err = querier.InsertSource(ctx, sqlc.InsertSourceParams{
			Name:    source.Name,
			Prefix:  source.Prefix,
			Type:    string(source.Type),
			BaseUrl: source.BaseURL,
			Version: source.Version,
		})
		return err
	})
	if err != nil {
		otel.RecordError(span, err)
		return 0, err
	}

	span.SetAttributes(otel.AttrSourceID.Int(int(id)))
	slog.InfoContext(ctx, "Source created",
		"id", id,
		"name", source.Name,
		"prefix", source.Prefix,
		"type", source.Type,
		"request_id", middleware.GetReqID(ctx))

	return id, nil
}

func toSource(
	id int32,
	name, prefix, sourceType string,
	baseURL, version *string,
	createdAt time.Time,
) *service.Source {
	return &service.Source{
		ID:        id,
		Name:      name,
		Prefix:    prefix,
		Type:      service.SourceType(sourceType),
		BaseURL:   baseURL,
		Version:   version,
		CreatedAt: &createdAt,
	}
}
