package auth

import (
	"path"
	"strings"
)

// DefaultPublicPaths are served without authentication in every mode
var DefaultPublicPaths = []string{"/health", "/readiness", "/version", "/metrics", "/openapi.json", "/openapi.yaml"}

// IsPublicPath checks if a path should bypass authentication.
// It performs secure path matching by:
// 1. Rejecting paths with encoded path separators to prevent double-encoding attacks
// 2. Normalizing the path to prevent traversal attacks (e.g., /health/../v1/relations)
// 3. Using segment-aware matching so /health matches /health and /health/check but NOT /healthcheck
func IsPublicPath(requestPath string, publicPaths []string) bool {
	// %2f = /, %2e = .
	lowerPath := strings.ToLower(requestPath)
	if strings.Contains(lowerPath, "%2f") || strings.Contains(lowerPath, "%2e") {
		return false
	}

	cleanPath := normalizePath(requestPath)

	for _, publicPath := range publicPaths {
		cleanPublicPath := normalizePath(publicPath)

		// root makes everything public
		if cleanPublicPath == "/" {
			return true
		}

		if cleanPath == cleanPublicPath || strings.HasPrefix(cleanPath, cleanPublicPath+"/") {
			return true
		}
	}
	return false
}

func normalizePath(p string) string {
	clean := path.Clean(p)
	if !strings.HasPrefix(clean, "/") {
		clean = "/" + clean
	}
	return clean
}
