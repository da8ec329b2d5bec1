package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/patrickmn/go-cache"
	"go.opentelemetry.io/otel/trace"

	"github.com/dataelementhub/dehub-registry/internal/db/sqlc"
	"github.com/dataelementhub/dehub-registry/internal/otel"
	"github.com/dataelementhub/dehub-registry/internal/service"
)

const defaultUserCacheTTL = 5 * time.Minute

// userResolver maps identities onto rows of the users table, creating rows on
// first use. Resolved ids are cached since they never change.
type userResolver struct {
	querier sqlc.Querier
	cache   *cache.Cache
	tracer  trace.Tracer
}

var _ service.UserResolver = (*userResolver)(nil)

// UserResolverOption configures the user resolver
type UserResolverOption func(*userResolver)

// WithCacheTTL sets how long a resolved identity is kept in memory
func WithCacheTTL(ttl time.Duration) UserResolverOption {
	return func(r *userResolver) {
		if ttl > 0 {
			r.cache = cache.New(ttl, 2*ttl)
		}
	}
}

// WithResolverTracer sets the tracer used for user resolution spans
func WithResolverTracer(tracer trace.Tracer) UserResolverOption {
	return func(r *userResolver) {
		r.tracer = tracer
	}
}

// NewUserResolver creates a UserResolver backed by the users table
func NewUserResolver(pool *pgxpool.Pool, opts ...UserResolverOption) (service.UserResolver, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgx pool is required")
	}
	return newUserResolver(sqlc.New(pool), opts...), nil
}

func newUserResolver(querier sqlc.Querier, opts ...UserResolverOption) *userResolver {
	r := &userResolver{
		querier: querier,
		cache:   cache.New(defaultUserCacheTTL, 2*defaultUserCacheTTL),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ResolveUser returns the id of the user with the given identity
func (r *userResolver) ResolveUser(ctx context.Context, identity string) (int32, error) {
	if identity == "" {
		return 0, service.ErrUnauthenticated
	}

	if cached, ok := r.cache.Get(identity); ok {
		return cached.(int32), nil
	}

	ctx, span := startSpan(ctx, r.tracer, "userResolver.ResolveUser")
	defer span.End()

	id, err := r.querier.UpsertUser(ctx, identity)
	if err != nil {
		err = service.NewStoreError(err)
		otel.RecordError(span, err)
		return 0, err
	}

	span.SetAttributes(otel.AttrUserID.Int(int(id)))
	r.cache.SetDefault(identity, id)
	return id, nil
}
