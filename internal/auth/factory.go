package auth

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/dataelementhub/dehub-registry/internal/config"
)

// NewAuthMiddleware creates authentication middleware based on config.
// Public paths are always let through unauthenticated.
func NewAuthMiddleware(cfg *config.AuthConfig) (func(http.Handler) http.Handler, error) {
	switch cfg.GetMode() {
	case config.AuthModeAnonymous:
		slog.Info("auth: anonymous mode")
		return anonymousMiddleware, nil
	case config.AuthModeJWT:
		validator, err := newJWTValidator(cfg.JWT)
		if err != nil {
			return nil, fmt.Errorf("failed to create jwt validator: %w", err)
		}
		m := newJWTMiddleware(validator, cfg.JWT.GetIdentityClaim(), cfg.JWT.Realm)
		slog.Info("auth: jwt mode",
			"issuer", cfg.JWT.Issuer,
			"audience", cfg.JWT.Audience,
			"identity_claim", m.identityClaim)
		return WrapWithPublicPaths(m.Middleware, DefaultPublicPaths), nil
	default:
		return nil, fmt.Errorf("unsupported auth mode: %s", cfg.Mode)
	}
}

// anonymousMiddleware is a no-op middleware that passes requests through without authentication.
func anonymousMiddleware(next http.Handler) http.Handler {
	return next
}
