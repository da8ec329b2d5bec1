package database

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel/trace"

	"github.com/dataelementhub/dehub-registry/internal/db/sqlc"
	"github.com/dataelementhub/dehub-registry/internal/otel"
	"github.com/dataelementhub/dehub-registry/internal/service"
)

const relationNotFoundMessage = "element relation not found"

// Operation names used as metric attributes
const (
	opCreateRelations = "create_relations"
	opUpdateRelation  = "update_relation"
	opDeleteRelation  = "delete_relation"
	opCreateSource    = "create_source"
)

// ListRelations returns every relation whose type is in types, or all of them
// when types is empty
func (s *dbService) ListRelations(
	ctx context.Context,
	types []service.RelationType,
) ([]*service.ElementRelation, error) {
	names := make([]string, 0, len(types))
	for _, t := range types {
		names = append(names, string(t))
	}

	ctx, span := s.startSpan(ctx, "dbService.ListRelations",
		trace.WithAttributes(otel.AttrRelationTypes.StringSlice(names)),
	)
	defer span.End()

	rows, err := sqlc.New(s.pool).ListElementRelations(ctx, names)
	if err != nil {
		err = service.NewStoreError(err)
		otel.RecordError(span, err)
		return nil, err
	}

	result := make([]*service.ElementRelation, 0, len(rows))
	for _, row := range rows {
		createdAt := row.CreatedAt
		result = append(result, &service.ElementRelation{
			LeftURN:   row.LeftUrn,
			RightURN:  row.RightUrn,
			Relation:  service.RelationType(row.Relation),
			CreatedBy: row.CreatedBy,
			CreatedAt: &createdAt,
		})
	}

	span.SetAttributes(otel.AttrResultCount.Int(len(result)))
	slog.DebugContext(ctx, "ListRelations completed",
		"types", names,
		"count", len(result),
		"request_id", middleware.GetReqID(ctx))

	return result, nil
}

// CreateRelations stores every relation in a single transaction. A rejected
// relation rolls back the whole batch.
func (s *dbService) CreateRelations(
	ctx context.Context,
	userID int32,
	relations []*service.ElementRelation,
) error {
	ctx, span := s.startSpan(ctx, "dbService.CreateRelations",
		trace.WithAttributes(
			otel.AttrUserID.Int(int(userID)),
			otel.AttrBatchSize.Int(len(relations)),
		),
	)
	defer span.End()

	if userID <= 0 {
		otel.RecordError(span, service.ErrUnauthenticated)
		return service.ErrUnauthenticated
	}

	err := s.inTx(ctx, opCreateRelations, func(querier *sqlc.Queries) error {
		for i, rel := range relations {
			if rel == nil {
				return fmt.Errorf("relation %d is empty", i)
			}
			err := querier.InsertElementRelation(ctx, sqlc.InsertElementRelationParams{
				LeftUrn:   rel.LeftURN,
				RightUrn:  rel.RightURN,
				Relation:  string(rel.Relation),
				CreatedBy: userID,
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		otel.RecordError(span, err)
		return err
	}

	s.metrics.RecordRelationsWritten(ctx, opCreateRelations, len(relations))
	slog.InfoContext(ctx, "Element relations created",
		"count", len(relations),
		"user_id", userID,
		"request_id", middleware.GetReqID(ctx))

	return nil
}

// UpdateRelation changes the relation type of an existing (left, right) pair
func (s *dbService) UpdateRelation(
	ctx context.Context,
	userID int32,
	relation *service.ElementRelation,
) error {
	ctx, span := s.startSpan(ctx, "dbService.UpdateRelation",
		trace.WithAttributes(otel.AttrUserID.Int(int(userID))),
	)
	defer span.End()

	if userID <= 0 {
		otel.RecordError(span, service.ErrUnauthenticated)
		return service.ErrUnauthenticated
	}
	if relation == nil {
		err := fmt.Errorf("relation is required")
		otel.RecordError(span, err)
		return err
	}
	span.SetAttributes(
		otel.AttrRelationLeft.String(relation.LeftURN),
		otel.AttrRelationRight.String(relation.RightURN),
	)

	err := s.inTx(ctx, opUpdateRelation, func(querier *sqlc.Queries) error {
		affected, err := querier.UpdateElementRelation(ctx, sqlc.UpdateElementRelationParams{
			Relation:  string(relation.Relation),
			UpdatedBy: &userID,
			LeftUrn:   relation.LeftURN,
			RightUrn:  relation.RightURN,
		})
		if err != nil {
			return err
		}
		if affected == 0 {
			return &service.StoreError{Message: relationNotFoundMessage}
		}
		return nil
	})
	if err != nil {
		otel.RecordError(span, err)
		return err
	}

	s.metrics.RecordRelationsWritten(ctx, opUpdateRelation, 1)
	slog.InfoContext(ctx, "Element relation updated",
		"left_urn", relation.LeftURN,
		"right_urn", relation.RightURN,
		"relation", relation.Relation,
		"user_id", userID,
		"request_id", middleware.GetReqID(ctx))

	return nil
}

// DeleteRelation removes an existing (left, right) pair
func (s *dbService) DeleteRelation(
	ctx context.Context,
	userID int32,
	relation *service.ElementRelation,
) error {
	ctx, span := s.startSpan(ctx, "dbService.DeleteRelation",
		trace.WithAttributes(otel.AttrUserID.Int(int(userID))),
	)
	defer span.End()

	if userID <= 0 {
		otel.RecordError(span, service.ErrUnauthenticated)
		return service.ErrUnauthenticated
	}
	if relation == nil {
		err := fmt.Errorf("relation is required")
		otel.RecordError(span, err)
		return err
	}
	span.SetAttributes(
		otel.AttrRelationLeft.String(relation.LeftURN),
		otel.AttrRelationRight.String(relation.RightURN),
	)

	err := s.inTx(ctx, opDeleteRelation, func(querier *sqlc.Queries) error {
		affected, err := querier.DeleteElementRelation(ctx, sqlc.DeleteElementRelationParams{
			LeftUrn:  relation.LeftURN,
			RightUrn: relation.RightURN,
		})
		if err != nil {
			return err
		}
		if affected == 0 {
			return &service.StoreError{Message: relationNotFoundMessage}
		}
		return nil
	})
	if err != nil {
		otel.RecordError(span, err)
		return err
	}

	s.metrics.RecordRelationsWritten(ctx, opDeleteRelation, 1)
	slog.InfoContext(ctx, "Element relation deleted",
		"left_urn", relation.LeftURN,
		"right_urn", relation.RightURN,
		"user_id", userID,
		"request_id", middleware.GetReqID(ctx))

	return nil
}
