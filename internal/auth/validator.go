package auth

//go:generate mockgen -destination=mocks/mock_validator.go -package=mocks -source=validator.go tokenValidator

import (
	"context"
	"crypto"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dataelementhub/dehub-registry/internal/config"
)

var (
	hmacMethods       = []string{"HS256", "HS384", "HS512"}
	asymmetricMethods = []string{"RS256", "RS384", "RS512", "PS256", "PS384", "PS512", "ES256", "ES384", "ES512"}
)

// tokenValidator abstracts token validation for testability.
type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (jwt.MapClaims, error)
}

// jwtValidator verifies bearer JWTs against a locally configured key
type jwtValidator struct {
	parser *jwt.Parser
	key    any
}

// newJWTValidator builds a validator from the configured key file and
// expected issuer and audience
func newJWTValidator(cfg *config.JWTConfig) (*jwtValidator, error) {
	if cfg == nil {
		return nil, errors.New("jwt configuration is required")
	}

	var (
		key     any
		methods []string
		err     error
	)
	switch {
	case cfg.SecretFile != "":
		key, err = readSecret(cfg.SecretFile)
		methods = hmacMethods
	case cfg.PublicKeyFile != "":
		key, err = readPublicKey(cfg.PublicKeyFile)
		methods = asymmetricMethods
	default:
		return nil, errors.New("one of secretFile or publicKeyFile is required")
	}
	if err != nil {
		return nil, err
	}

	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods(methods),
		jwt.WithExpirationRequired(),
	}
	if cfg.Issuer != "" {
		parserOpts = append(parserOpts, jwt.WithIssuer(cfg.Issuer))
	}
	if cfg.Audience != "" {
		parserOpts = append(parserOpts, jwt.WithAudience(cfg.Audience))
	}

	return &jwtValidator{
		parser: jwt.NewParser(parserOpts...),
		key:    key,
	}, nil
}

// ValidateToken parses token, checks its signature and registered claims and
// returns the claims
func (v *jwtValidator) ValidateToken(_ context.Context, token string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	_, err := v.parser.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return v.key, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}
	return claims, nil
}

func readSecret(file string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Clean(file))
	if err != nil {
		return nil, fmt.Errorf("failed to read jwt secret file: %w", err)
	}
	secret := []byte(strings.TrimSpace(string(data)))
	if len(secret) == 0 {
		return nil, fmt.Errorf("jwt secret file %s is empty", file)
	}
	return secret, nil
}

func readPublicKey(file string) (crypto.PublicKey, error) {
	data, err := os.ReadFile(filepath.Clean(file))
	if err != nil {
		return nil, fmt.Errorf("failed to read jwt public key file: %w", err)
	}
	if key, err := jwt.ParseRSAPublicKeyFromPEM(data); err == nil {
		return key, nil
	}
	if key, err := jwt.ParseECPublicKeyFromPEM(data); err == nil {
		return key, nil
	}
	return nil, fmt.Errorf("jwt public key file %s holds no RSA or ECDSA public key", file)
}
