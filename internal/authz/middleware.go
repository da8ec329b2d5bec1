package authz

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/dataelementhub/dehub-registry/internal/auth"
	"github.com/dataelementhub/dehub-registry/internal/config"
)

// ForbiddenResponse is the JSON body returned when authorization is denied.
type ForbiddenResponse struct {
	Error   string           `json:"error"`
	Message string           `json:"message"`
	Details *ForbiddenDetail `json:"details,omitempty"`
}

// ForbiddenDetail provides additional context for authorization denials,
// helping callers understand why access was denied and what is required.
type ForbiddenDetail struct {
	RequiredAction string   `json:"required_action"`
	UserScopes     []string `json:"user_scopes"`
	Hint           string   `json:"hint"`
}

// Middleware creates an HTTP middleware that performs Cedar-based authorization.
// It runs after the auth middleware has stored the identity and token claims in
// the context. Requests without an identity (public paths) pass through.
func Middleware(authorizer Authorizer, scopeMapping []config.ScopeMappingEntry) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := auth.IdentityFromContext(r.Context())
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			scopes := Scopes(auth.ClaimsFromContext(r.Context()))
			grantedActions := GrantedActions(scopes, scopeMapping)
			requiredAction := RouteAction(r.Method, r.URL.Path)
			resourceType, resourceID := RouteResource(r.URL.Path)

			req := Request{
				Principal:      identity,
				GrantedActions: grantedActions,
				Action:         requiredAction,
				ResourceType:   resourceType,
				ResourceID:     resourceID,
			}

			decision, err := authorizer.Authorize(r.Context(), req)
			if err != nil {
				slog.ErrorContext(r.Context(), "Authorization evaluation failed",
					"error", err,
					"action", requiredAction,
					"path", r.URL.Path,
					"method", r.Method,
					"subject", identity,
				)
				writeJSONError(w, http.StatusInternalServerError, "authorization evaluation failed")
				return
			}

			if !decision.Allowed {
				slog.WarnContext(r.Context(), "Authorization denied",
					"action", requiredAction,
					"path", r.URL.Path,
					"method", r.Method,
					"subject", identity,
					"scopes", scopes,
					"granted_actions", grantedActions,
					"reasons", decision.Reasons,
				)
				writeForbidden(w, requiredAction, scopes, scopeMapping)
				return
			}

			slog.DebugContext(r.Context(), "Authorization permitted",
				"action", requiredAction,
				"path", r.URL.Path,
				"method", r.Method,
				"subject", identity,
				"reasons", decision.Reasons,
			)

			next.ServeHTTP(w, r)
		})
	}
}

// NoopMiddleware returns a middleware that performs no authorization checks.
// Use this when authorization is disabled in the configuration.
func NoopMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return next
	}
}

// NewMiddleware builds the authorization middleware described by cfg, or a
// no-op middleware when authorization is disabled.
func NewMiddleware(cfg *config.AuthzConfig) (func(http.Handler) http.Handler, error) {
	if !cfg.IsEnabled() {
		return NoopMiddleware(), nil
	}

	authorizer, err := NewCedarAuthorizerFromFile(cfg.PolicyFile)
	if err != nil {
		return nil, err
	}

	slog.Info("authz: cedar policies enabled",
		"policy_file", cfg.PolicyFile,
		"scope_mappings", len(cfg.GetScopeMapping()))
	return Middleware(authorizer, cfg.GetScopeMapping()), nil
}

// writeForbidden writes a 403 Forbidden JSON response with details about
// the required action and a hint indicating which scopes would grant access.
func writeForbidden(w http.ResponseWriter, requiredAction string, userScopes []string, scopeMapping []config.ScopeMappingEntry) {
	hint := buildHint(requiredAction, scopeMapping)

	resp := ForbiddenResponse{
		Error:   "forbidden",
		Message: "You do not have permission to perform this action.",
		Details: &ForbiddenDetail{
			RequiredAction: requiredAction,
			UserScopes:     userScopes,
			Hint:           hint,
		},
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusForbidden)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("Failed to encode forbidden response", "error", err)
	}
}

// writeJSONError writes a generic JSON error response with the given status code.
func writeJSONError(w http.ResponseWriter, status int, message string) {
	resp := struct {
		Error string `json:"error"`
	}{
		Error: message,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("Failed to encode error response", "error", err)
	}
}

// buildHint examines the scope mapping to find which scopes grant the
// required action and returns a human-readable hint string.
func buildHint(requiredAction string, scopeMapping []config.ScopeMappingEntry) string {
	var matchingScopes []string

	for _, entry := range scopeMapping {
		if slices.Contains(entry.Actions, requiredAction) {
			matchingScopes = append(matchingScopes, entry.Scope)
		}
	}

	if len(matchingScopes) == 0 {
		return "No configured scopes grant the required action."
	}

	return "This operation requires one of the following scopes: " + strings.Join(matchingScopes, ", ")
}
