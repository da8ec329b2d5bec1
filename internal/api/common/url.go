package common

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
)

// ForwardedProtoHeader carries the scheme used by the client in front of a proxy
const ForwardedProtoHeader = "X-Forwarded-Proto"

// GetAndValidateURLParam extracts, decodes, and validates a URL parameter from the request.
// Returns the decoded value or an error if invalid.
// Validation rules:
// - Must not be empty after trimming whitespace
// - Must not contain any whitespace characters
func GetAndValidateURLParam(r *http.Request, paramName string) (string, error) {
	encodedValue := chi.URLParam(r, paramName)

	decoded, err := url.PathUnescape(encodedValue)
	if err != nil {
		return "", fmt.Errorf("invalid URL encoding in %s", paramName)
	}

	if strings.TrimSpace(decoded) == "" {
		return "", fmt.Errorf("%s cannot be empty", paramName)
	}

	if strings.ContainsAny(decoded, " \t\n\r") {
		return "", fmt.Errorf("%s cannot contain whitespace", paramName)
	}

	return decoded, nil
}

// GetIDURLParam extracts a URL parameter and parses it as a 32-bit decimal id
func GetIDURLParam(r *http.Request, paramName string) (int32, error) {
	value, err := GetAndValidateURLParam(r, paramName)
	if err != nil {
		return 0, err
	}

	id, err := strconv.ParseInt(value, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %s", paramName, value)
	}
	return int32(id), nil
}

// BuildLocation returns the absolute URL of path when both host and scheme are
// known, and path itself otherwise
func BuildLocation(host, scheme, path string) string {
	if host == "" || scheme == "" {
		return path
	}
	return scheme + "://" + host + path
}

// LocationFor builds the Location of path for a response to r. The host is the
// request's Host header and the scheme comes from X-Forwarded-Proto.
func LocationFor(r *http.Request, path string) string {
	return BuildLocation(r.Host, r.Header.Get(ForwardedProtoHeader), path)
}
