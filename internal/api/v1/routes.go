// Package v1 provides the REST API handlers for element relations and sources.
package v1

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dataelementhub/dehub-registry/internal/api/common"
	"github.com/dataelementhub/dehub-registry/internal/auth"
	"github.com/dataelementhub/dehub-registry/internal/service"
)

// Routes holds the services used by the v1 handlers
type Routes struct {
	service service.RegistryService
	users   service.UserResolver
}

// NewRoutes creates a new Routes instance with the provided services
func NewRoutes(svc service.RegistryService, users service.UserResolver) *Routes {
	return &Routes{
		service: svc,
		users:   users,
	}
}

// Router creates a new router for the v1 API
func Router(svc service.RegistryService, users service.UserResolver) http.Handler {
	routes := NewRoutes(svc, users)

	r := chi.NewRouter()

	r.Route("/relations", func(r chi.Router) {
		r.Get("/", routes.listRelations)
		r.Post("/", routes.createRelations)
		r.Put("/", routes.updateRelation)
		r.Delete("/", routes.deleteRelation)
	})

	r.Route("/source", func(r chi.Router) {
		r.Get("/", routes.listSources)
		r.Post("/", routes.createSource)
		r.Get("/{id}", routes.getSource)
	})

	return r
}

// resolveUser maps the authenticated caller onto a user id. It writes the error
// response itself and returns false when the request must not proceed.
func (rr *Routes) resolveUser(w http.ResponseWriter, r *http.Request) (int32, bool) {
	identity, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		slog.WarnContext(r.Context(), "Rejecting unauthenticated mutation",
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", middleware.GetReqID(r.Context()))
		common.WriteErrorResponse(w, "authentication required", http.StatusUnauthorized)
		return 0, false
	}

	userID, err := rr.users.ResolveUser(r.Context(), identity)
	if err != nil {
		if errors.Is(err, service.ErrUnauthenticated) {
			common.WriteErrorResponse(w, "authentication required", http.StatusUnauthorized)
			return 0, false
		}
		slog.ErrorContext(r.Context(), "Failed to resolve user",
			"identity", identity,
			"error", err,
			"request_id", middleware.GetReqID(r.Context()))
		common.WriteErrorResponse(w, storeMessage(err), http.StatusBadRequest)
		return 0, false
	}

	return userID, true
}

// storeMessage returns the store's own description of err when there is one
func storeMessage(err error) string {
	var storeErr *service.StoreError
	if errors.As(err, &storeErr) {
		return storeErr.Message
	}
	return err.Error()
}
