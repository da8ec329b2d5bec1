// Package auth provides authentication middleware for the registry API server.
package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/golang-jwt/jwt/v5"
)

// RFC 6750 Section 3 error codes
const (
	// errorCodeInvalidRequest indicates the request is missing a required parameter,
	// includes an unsupported parameter or parameter value, or is otherwise malformed.
	errorCodeInvalidRequest = "invalid_request"

	// errorCodeInvalidToken indicates the access token provided is expired, revoked,
	// malformed, or invalid for other reasons.
	errorCodeInvalidToken = "invalid_token"
)

// defaultRealm is the default protection space identifier
const defaultRealm = "dehub-registry"

var (
	errMissingAuthHeader = errors.New("authorization header is missing")
	errNotBearer         = errors.New("authorization header is not a bearer token")
	errEmptyToken        = errors.New("bearer token is empty")
	errMissingIdentity   = errors.New("token carries no identity claim")
)

// jwtMiddleware authenticates requests carrying a bearer JWT and stores the
// caller identity in the request context.
type jwtMiddleware struct {
	validator     tokenValidator
	identityClaim string
	realm         string
}

func newJWTMiddleware(validator tokenValidator, identityClaim, realm string) *jwtMiddleware {
	if realm == "" {
		realm = defaultRealm
	}
	return &jwtMiddleware{
		validator:     validator,
		identityClaim: identityClaim,
		realm:         realm,
	}
}

// Middleware returns an HTTP middleware function that performs authentication.
func (m *jwtMiddleware) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := extractBearerToken(r)
		if err != nil {
			slog.WarnContext(r.Context(), "Token extraction failed",
				"error", err,
				"remote_addr", r.RemoteAddr,
				"path", r.URL.Path,
				"request_id", middleware.GetReqID(r.Context()))
			m.writeError(w, http.StatusUnauthorized, errorCodeInvalidRequest, "missing or malformed authorization header")
			return
		}

		claims, err := m.validator.ValidateToken(r.Context(), token)
		if err != nil {
			slog.WarnContext(r.Context(), "Token validation failed",
				"error", err,
				"remote_addr", r.RemoteAddr,
				"path", r.URL.Path,
				"request_id", middleware.GetReqID(r.Context()))
			m.writeError(w, http.StatusUnauthorized, errorCodeInvalidToken, "token validation failed")
			return
		}

		identity, err := identityFromClaims(claims, m.identityClaim)
		if err != nil {
			slog.WarnContext(r.Context(), "Token has no usable identity",
				"error", err,
				"claim", m.identityClaim,
				"path", r.URL.Path,
				"request_id", middleware.GetReqID(r.Context()))
			m.writeError(w, http.StatusUnauthorized, errorCodeInvalidToken, "token carries no identity")
			return
		}

		slog.DebugContext(r.Context(), "Authentication successful",
			"identity", identity,
			"path", r.URL.Path,
			"request_id", middleware.GetReqID(r.Context()))

		ctx := WithClaims(WithIdentity(r.Context(), identity), claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// identityFromClaims reads the configured claim and falls back to "sub"
func identityFromClaims(claims jwt.MapClaims, claim string) (string, error) {
	if value, ok := claims[claim].(string); ok && value != "" {
		return value, nil
	}
	sub, err := claims.GetSubject()
	if err != nil {
		return "", err
	}
	if sub == "" {
		return "", errMissingIdentity
	}
	return sub, nil
}

// extractBearerToken returns the token of an "Authorization: Bearer <token>" header
func extractBearerToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", errMissingAuthHeader
	}
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", errNotBearer
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", errEmptyToken
	}
	return token, nil
}

// sanitizeHeaderValue removes characters that could enable header injection attacks.
// This includes newlines, carriage returns, and unescaped quotes.
func sanitizeHeaderValue(s string) string {
	if !strings.ContainsAny(s, "\r\n\"") {
		return s
	}
	s = strings.ReplaceAll(s, "\r", "")
	s = strings.ReplaceAll(s, "\n", "")
	// quoted-string, RFC 7230
	s = strings.ReplaceAll(s, `"`, `\"`)
	return s
}

// writeError writes a JSON error response with RFC 6750 compliant WWW-Authenticate header.
// The errCode parameter should be one of the RFC 6750 error codes (invalid_request, invalid_token).
func (m *jwtMiddleware) writeError(w http.ResponseWriter, status int, errCode, description string) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("WWW-Authenticate", fmt.Sprintf(`Bearer realm="%s", error="%s", error_description="%s"`,
		sanitizeHeaderValue(m.realm), errCode, sanitizeHeaderValue(description)))
	w.WriteHeader(status)

	resp := struct {
		Error string `json:"error"`
	}{
		Error: description,
	}

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("Failed to encode error response", "error", err)
	}
}

// WrapWithPublicPaths wraps an auth middleware to bypass authentication for public paths.
// It checks each request path against the provided list of public paths using IsPublicPath.
// Requests to public paths are passed directly to the next handler without authentication,
// while all other requests go through the provided auth middleware.
func WrapWithPublicPaths(
	authMw func(http.Handler) http.Handler,
	publicPaths []string,
) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		authWrappedNext := authMw(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !IsPublicPath(r.URL.Path, publicPaths) {
				authWrappedNext.ServeHTTP(w, r)
			} else {
				next.ServeHTTP(w, r)
			}
		})
	}
}
