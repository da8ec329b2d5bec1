package v1

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dataelementhub/dehub-registry/internal/api/common"
	"github.com/dataelementhub/dehub-registry/internal/service"
	"github.com/dataelementhub/dehub-registry/internal/versions"
)

// HealthRouter creates a router for health check endpoints
func HealthRouter(svc service.RelationService) http.Handler {
	r := chi.NewRouter()

	r.Get("/health", healthHandler)
	r.Get("/readiness", readinessHandler(svc))
	r.Get("/version", versionHandler)

	return r
}

// healthHandler handles GET /health
//
// @Summary		Liveness
// @Tags		system
// @Produce		json
// @Success		200	{object}	map[string]string
// @Router		/health [get]
func healthHandler(w http.ResponseWriter, _ *http.Request) {
	common.WriteJSONResponse(w, map[string]string{"status": "healthy"}, http.StatusOK)
}

// readinessHandler handles GET /readiness
//
// @Summary		Readiness
// @Description	Reports ready once the database answers
// @Tags		system
// @Produce		json
// @Success		200	{object}	map[string]string
// @Failure		503	{object}	common.ErrorResponse
// @Router		/readiness [get]
func readinessHandler(svc service.RelationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.CheckReadiness(r.Context()); err != nil {
			slog.WarnContext(r.Context(), "Readiness check failed", "error", err)
			common.WriteErrorResponse(w, "service not ready: "+err.Error(), http.StatusServiceUnavailable)
			return
		}

		common.WriteJSONResponse(w, map[string]string{"status": "ready"}, http.StatusOK)
	}
}

// versionHandler handles GET /version
//
// @Summary		Build information
// @Tags		system
// @Produce		json
// @Success		200	{object}	versions.VersionInfo
// @Router		/version [get]
func versionHandler(w http.ResponseWriter, _ *http.Request) {
	common.WriteJSONResponse(w, versions.GetVersionInfo(), http.StatusOK)
}
