package auth

import (
	"context"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dataelementhub/dehub-registry/internal/config"
)

const testSecret = "a-test-secret-of-reasonable-length"

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0600))
	return path
}

func writePublicKey(t *testing.T, pub any) string {
	t.Helper()
	der, err := x509.MarshalPKIXPublicKey(pub)
	require.NoError(t, err)
	return writeFile(t, "key.pem", pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der}))
}

func validClaims() jwt.MapClaims {
	return jwt.MapClaims{
		"sub":                "f3a2",
		"preferred_username": "alice",
		"iss":                "https://auth.example.org",
		"aud":                "dehub-rest",
		"exp":                time.Now().Add(time.Hour).Unix(),
	}
}

func sign(t *testing.T, method jwt.SigningMethod, claims jwt.MapClaims, key any) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func TestJWTValidator_HMAC(t *testing.T) {
	t.Parallel()

	secretFile := writeFile(t, "secret", []byte(testSecret+"\n"))
	v, err := newJWTValidator(&config.JWTConfig{
		Issuer:     "https://auth.example.org",
		Audience:   "dehub-rest",
		SecretFile: secretFile,
	})
	require.NoError(t, err)

	expired := validClaims()
	expired["exp"] = time.Now().Add(-time.Minute).Unix()

	wrongIssuer := validClaims()
	wrongIssuer["iss"] = "https://other.example.org"

	wrongAudience := validClaims()
	wrongAudience["aud"] = "someone-else"

	noExpiry := validClaims()
	delete(noExpiry, "exp")

	tests := []struct {
		name    string
		token   string
		wantErr bool
	}{
		{"valid", sign(t, jwt.SigningMethodHS256, validClaims(), []byte(testSecret)), false},
		{"valid hs512", sign(t, jwt.SigningMethodHS512, validClaims(), []byte(testSecret)), false},
		{"wrong secret", sign(t, jwt.SigningMethodHS256, validClaims(), []byte("other")), true},
		{"expired", sign(t, jwt.SigningMethodHS256, expired, []byte(testSecret)), true},
		{"missing expiry", sign(t, jwt.SigningMethodHS256, noExpiry, []byte(testSecret)), true},
		{"wrong issuer", sign(t, jwt.SigningMethodHS256, wrongIssuer, []byte(testSecret)), true},
		{"wrong audience", sign(t, jwt.SigningMethodHS256, wrongAudience, []byte(testSecret)), true},
		{"garbage", "not.a.jwt", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			claims, err := v.ValidateToken(context.Background(), tt.token)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "alice", claims["preferred_username"])
		})
	}
}

func TestJWTValidator_RSA(t *testing.T) {
	t.Parallel()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	v, err := newJWTValidator(&config.JWTConfig{PublicKeyFile: writePublicKey(t, &key.PublicKey)})
	require.NoError(t, err)

	_, err = v.ValidateToken(context.Background(), sign(t, jwt.SigningMethodRS256, validClaims(), key))
	require.NoError(t, err)

	// an HMAC token must not be accepted when a public key is configured
	_, err = v.ValidateToken(context.Background(), sign(t, jwt.SigningMethodHS256, validClaims(), []byte(testSecret)))
	require.Error(t, err)
}

func TestJWTValidator_ECDSA(t *testing.T) {
	t.Parallel()

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	v, err := newJWTValidator(&config.JWTConfig{PublicKeyFile: writePublicKey(t, &key.PublicKey)})
	require.NoError(t, err)

	claims, err := v.ValidateToken(context.Background(), sign(t, jwt.SigningMethodES256, validClaims(), key))
	require.NoError(t, err)
	assert.Equal(t, "f3a2", claims["sub"])
}

func TestNewJWTValidator_Errors(t *testing.T) {
	t.Parallel()

	_, err := newJWTValidator(nil)
	require.Error(t, err)

	_, err = newJWTValidator(&config.JWTConfig{})
	require.ErrorContains(t, err, "one of secretFile or publicKeyFile is required")

	_, err = newJWTValidator(&config.JWTConfig{SecretFile: filepath.Join(t.TempDir(), "missing")})
	require.ErrorContains(t, err, "failed to read jwt secret file")

	_, err = newJWTValidator(&config.JWTConfig{SecretFile: writeFile(t, "empty", []byte("  \n"))})
	require.ErrorContains(t, err, "is empty")

	_, err = newJWTValidator(&config.JWTConfig{PublicKeyFile: writeFile(t, "bad.pem", []byte("not pem"))})
	require.ErrorContains(t, err, "holds no RSA or ECDSA public key")
}
