// Package config provides configuration loading and management for the registry server.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dataelementhub/dehub-registry/internal/telemetry"
)

const (
	// EnvPrefix is the prefix of every environment variable read by the server
	EnvPrefix = "DEH_REGISTRY"

	// DatabasePasswordEnv is the environment variable holding the database password
	DatabasePasswordEnv = EnvPrefix + "_DATABASE_PASSWORD"
)

// AuthMode selects how callers are identified
type AuthMode string

const (
	// AuthModeAnonymous accepts every request without a caller identity
	AuthModeAnonymous AuthMode = "anonymous"
	// AuthModeJWT requires a valid bearer JWT on every non-public request
	AuthModeJWT AuthMode = "jwt"
)

// Authorization actions granted through scope mapping
const (
	ActionRead  = "read"
	ActionWrite = "write"
	ActionAdmin = "admin"
)

const (
	defaultIdentityClaim    = "preferred_username"
	defaultIdentityCacheTTL = 5 * time.Minute
	defaultSSLMode          = "require"
)

// Option defines the interface for configuration options
type Option func(*loaderConfig) error

// loaderConfig defines the configuration for loading a configuration
type loaderConfig struct {
	path string
}

// WithConfigPath loads configuration from a YAML file
func WithConfigPath(path string) Option {
	return func(cfg *loaderConfig) error {
		if path == "" {
			return fmt.Errorf("path is required")
		}

		// Resolve symlinks to prevent symlink attacks.
		// Note that this calls filepath.Clean internally.
		realPath, err := filepath.EvalSymlinks(path)
		if err != nil {
			return fmt.Errorf("failed to evaluate symlinks: %w", err)
		}

		if !filepath.IsAbs(realPath) {
			if !filepath.IsLocal(realPath) {
				return fmt.Errorf("path is not local or contains invalid traversal: %s", path)
			}
		}

		cfg.path = realPath
		return nil
	}
}

// Config represents the root configuration structure
type Config struct {
	Database  *DatabaseConfig   `yaml:"database"`
	Auth      *AuthConfig       `yaml:"auth,omitempty"`
	Authz     *AuthzConfig      `yaml:"authz,omitempty"`
	Telemetry *telemetry.Config `yaml:"telemetry,omitempty"`
}

// DatabaseConfig defines database connection settings
type DatabaseConfig struct {
	// Host is the database server hostname or IP address
	Host string `yaml:"host"`

	// Port is the database server port
	Port int `yaml:"port"`

	// User is the database username
	User string `yaml:"user"`

	// PasswordFile is the path to a file containing the database password
	// The file should contain only the password with optional trailing whitespace
	PasswordFile string `yaml:"passwordFile,omitempty"`

	// Database is the database name
	Database string `yaml:"database"`

	// SSLMode is the SSL mode for the connection (disable, require, verify-ca, verify-full)
	SSLMode string `yaml:"sslMode,omitempty"`

	// MaxOpenConns is the maximum number of open connections to the database
	MaxOpenConns int32 `yaml:"maxOpenConns,omitempty"`

	// MaxIdleConns is the minimum number of idle connections kept in the pool
	MaxIdleConns int32 `yaml:"maxIdleConns,omitempty"`

	// ConnMaxLifetime is the maximum lifetime of a connection (e.g., "1h", "30m")
	ConnMaxLifetime string `yaml:"connMaxLifetime,omitempty"`

	// ConnectTimeout bounds the startup retries while waiting for the database (e.g., "30s")
	ConnectTimeout string `yaml:"connectTimeout,omitempty"`
}

// AuthConfig defines how callers are authenticated
type AuthConfig struct {
	// Mode is either "anonymous" (default) or "jwt"
	Mode AuthMode `yaml:"mode,omitempty"`

	// JWT holds the token validation settings used in jwt mode
	JWT *JWTConfig `yaml:"jwt,omitempty"`

	// IdentityCacheTTL is how long a resolved identity to user id mapping is cached
	IdentityCacheTTL string `yaml:"identityCacheTTL,omitempty"`
}

// JWTConfig defines bearer token validation settings
type JWTConfig struct {
	// Issuer is the expected "iss" claim; empty disables the check
	Issuer string `yaml:"issuer,omitempty"`

	// Audience is the expected "aud" claim; empty disables the check
	Audience string `yaml:"audience,omitempty"`

	// SecretFile points to a file with the HMAC secret for HS256/HS384/HS512 tokens
	SecretFile string `yaml:"secretFile,omitempty"`

	// PublicKeyFile points to a PEM encoded RSA or ECDSA public key
	PublicKeyFile string `yaml:"publicKeyFile,omitempty"`

	// IdentityClaim names the claim holding the caller identity.
	// Defaults to "preferred_username"; "sub" is used when the claim is absent.
	IdentityClaim string `yaml:"identityClaim,omitempty"`

	// Realm is reported in WWW-Authenticate challenges
	Realm string `yaml:"realm,omitempty"`
}

// AuthzConfig defines Cedar based authorization of authenticated callers
type AuthzConfig struct {
	// Enabled turns authorization on. It requires jwt auth mode.
	Enabled bool `yaml:"enabled"`

	// PolicyFile points to a Cedar policy file replacing the built-in policies
	PolicyFile string `yaml:"policyFile,omitempty"`

	// ScopeMapping maps token scopes onto authorization actions
	ScopeMapping []ScopeMappingEntry `yaml:"scopeMapping,omitempty"`
}

// ScopeMappingEntry grants Actions to callers holding Scope
type ScopeMappingEntry struct {
	Scope   string   `yaml:"scope"`
	Actions []string `yaml:"actions"`
}

// DefaultScopeMapping is used when no scope mapping is configured
var DefaultScopeMapping = []ScopeMappingEntry{
	{Scope: "dehub:read", Actions: []string{ActionRead}},
	{Scope: "dehub:write", Actions: []string{ActionRead, ActionWrite}},
	{Scope: "dehub:admin", Actions: []string{ActionRead, ActionWrite, ActionAdmin}},
}

// GetPassword returns the database password using the following priority:
// 1. Read from PasswordFile if specified
// 2. Read from DEH_REGISTRY_DATABASE_PASSWORD environment variable
//
// The password from file will have leading/trailing whitespace trimmed.
func (d *DatabaseConfig) GetPassword() (string, error) {
	if d.PasswordFile != "" {
		cleanPath := filepath.Clean(d.PasswordFile)

		data, err := os.ReadFile(cleanPath)
		if err != nil {
			return "", fmt.Errorf("failed to read password from file %s: %w", d.PasswordFile, err)
		}

		return strings.TrimSpace(string(data)), nil
	}

	if envPassword := os.Getenv(DatabasePasswordEnv); envPassword != "" {
		return envPassword, nil
	}

	return "", fmt.Errorf(
		"no database password configured: set passwordFile or %s environment variable", DatabasePasswordEnv,
	)
}

// GetConnectionString builds a PostgreSQL connection string with proper password handling.
// The password is URL-escaped to handle special characters safely.
func (d *DatabaseConfig) GetConnectionString() (string, error) {
	password, err := d.GetPassword()
	if err != nil {
		return "", err
	}

	sslMode := d.SSLMode
	if sslMode == "" {
		sslMode = defaultSSLMode
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, password),
		Host:     fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:     "/" + d.Database,
		RawQuery: url.Values{"sslmode": []string{sslMode}}.Encode(),
	}

	return u.String(), nil
}

// GetConnMaxLifetime returns the parsed connection lifetime, or zero when unset
func (d *DatabaseConfig) GetConnMaxLifetime() (time.Duration, error) {
	if d.ConnMaxLifetime == "" {
		return 0, nil
	}
	return time.ParseDuration(d.ConnMaxLifetime)
}

// GetConnectTimeout returns the parsed startup timeout, or zero when unset
func (d *DatabaseConfig) GetConnectTimeout() (time.Duration, error) {
	if d.ConnectTimeout == "" {
		return 0, nil
	}
	return time.ParseDuration(d.ConnectTimeout)
}

// GetMode returns the auth mode, defaulting to anonymous
func (a *AuthConfig) GetMode() AuthMode {
	if a == nil || a.Mode == "" {
		return AuthModeAnonymous
	}
	return a.Mode
}

// GetIdentityCacheTTL returns the identity cache TTL, defaulting to five minutes
func (a *AuthConfig) GetIdentityCacheTTL() time.Duration {
	if a == nil || a.IdentityCacheTTL == "" {
		return defaultIdentityCacheTTL
	}
	ttl, err := time.ParseDuration(a.IdentityCacheTTL)
	if err != nil {
		return defaultIdentityCacheTTL
	}
	return ttl
}

// GetIdentityClaim returns the identity claim name, defaulting to preferred_username
func (j *JWTConfig) GetIdentityClaim() string {
	if j == nil || j.IdentityClaim == "" {
		return defaultIdentityClaim
	}
	return j.IdentityClaim
}

// IsEnabled reports whether authorization is turned on
func (a *AuthzConfig) IsEnabled() bool {
	return a != nil && a.Enabled
}

// GetScopeMapping returns the configured scope mapping or DefaultScopeMapping
func (a *AuthzConfig) GetScopeMapping() []ScopeMappingEntry {
	if a == nil || len(a.ScopeMapping) == 0 {
		return DefaultScopeMapping
	}
	return a.ScopeMapping
}

// LoadConfig loads and parses configuration from a YAML file
func LoadConfig(opts ...Option) (*Config, error) {
	loaderCfg := &loaderConfig{}
	for _, opt := range opts {
		if err := opt(loaderCfg); err != nil {
			return nil, err
		}
	}

	if loaderCfg.path == "" {
		return nil, fmt.Errorf("path is required")
	}

	data, err := os.ReadFile(loaderCfg.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Validate performs validation on the configuration
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("config cannot be nil")
	}

	if err := c.Database.validate(); err != nil {
		return fmt.Errorf("database: %w", err)
	}

	if err := c.Auth.validate(); err != nil {
		return fmt.Errorf("auth: %w", err)
	}

	if err := c.Authz.validate(c.Auth.GetMode()); err != nil {
		return fmt.Errorf("authz: %w", err)
	}

	if err := c.Telemetry.Validate(); err != nil {
		return fmt.Errorf("telemetry: %w", err)
	}

	return nil
}

func (d *DatabaseConfig) validate() error {
	if d == nil {
		return fmt.Errorf("configuration is required")
	}

	var errs []error
	if d.Host == "" {
		errs = append(errs, errors.New("host is required"))
	}
	if d.Port <= 0 || d.Port > 65535 {
		errs = append(errs, fmt.Errorf("port must be between 1 and 65535, got %d", d.Port))
	}
	if d.User == "" {
		errs = append(errs, errors.New("user is required"))
	}
	if d.Database == "" {
		errs = append(errs, errors.New("database is required"))
	}
	if _, err := d.GetConnMaxLifetime(); err != nil {
		errs = append(errs, fmt.Errorf("invalid connMaxLifetime: %w", err))
	}
	if _, err := d.GetConnectTimeout(); err != nil {
		errs = append(errs, fmt.Errorf("invalid connectTimeout: %w", err))
	}

	return errors.Join(errs...)
}

func (a *AuthConfig) validate() error {
	if a == nil {
		return nil
	}

	if a.IdentityCacheTTL != "" {
		if _, err := time.ParseDuration(a.IdentityCacheTTL); err != nil {
			return fmt.Errorf("invalid identityCacheTTL: %w", err)
		}
	}

	switch a.GetMode() {
	case AuthModeAnonymous:
		return nil
	case AuthModeJWT:
		if a.JWT == nil {
			return errors.New("jwt configuration is required for jwt mode")
		}
		if a.JWT.SecretFile == "" && a.JWT.PublicKeyFile == "" {
			return errors.New("jwt: one of secretFile or publicKeyFile is required")
		}
		if a.JWT.SecretFile != "" && a.JWT.PublicKeyFile != "" {
			return errors.New("jwt: only one of secretFile or publicKeyFile may be specified")
		}
		return nil
	default:
		return fmt.Errorf("unsupported auth mode: %s", a.Mode)
	}
}

func (a *AuthzConfig) validate(mode AuthMode) error {
	if !a.IsEnabled() {
		return nil
	}
	if mode != AuthModeJWT {
		return fmt.Errorf("requires auth mode %s, got %s", AuthModeJWT, mode)
	}

	var errs []error
	for i, entry := range a.ScopeMapping {
		if entry.Scope == "" {
			errs = append(errs, fmt.Errorf("scopeMapping[%d]: scope is required", i))
		}
		for _, action := range entry.Actions {
			switch action {
			case ActionRead, ActionWrite, ActionAdmin:
			default:
				errs = append(errs, fmt.Errorf("scopeMapping[%d]: unknown action %q", i, action))
			}
		}
	}
	return errors.Join(errs...)
}
