package authz

import (
	"net/http"
	"strings"

	"github.com/dataelementhub/dehub-registry/internal/config"
)

// Action aliases from config for convenience within the authz package.
const (
	ActionRead  = config.ActionRead
	ActionWrite = config.ActionWrite
	ActionAdmin = config.ActionAdmin
)

// Cedar resource entity types
const (
	ResourceRelation = "Relation"
	ResourceSource   = "Source"
	ResourceRegistry = "Registry"
)

// globalResourceID identifies a whole collection rather than one record
const globalResourceID = "global"

// RouteAction determines the required Cedar action based on HTTP method and path.
func RouteAction(method, path string) string {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return ActionRead
	}

	path = strings.TrimSuffix(path, "/")
	if isRelationWrite(method, path) || isSourceWrite(method, path) {
		return ActionWrite
	}

	// Default: require admin for unknown mutating operations
	return ActionAdmin
}

// isRelationWrite matches POST, PUT and DELETE on /v1/relations
func isRelationWrite(method, path string) bool {
	if path != "/v1/relations" {
		return false
	}
	return method == http.MethodPost || method == http.MethodPut || method == http.MethodDelete
}

// isSourceWrite matches POST /v1/source
func isSourceWrite(method, path string) bool {
	return method == http.MethodPost && path == "/v1/source"
}

// RouteResource returns the Cedar resource type and id addressed by path.
// Collections and unknown paths use the id "global".
func RouteResource(path string) (string, string) {
	segments := strings.Split(strings.Trim(path, "/"), "/")
	if len(segments) < 2 || segments[0] != "v1" {
		return ResourceRegistry, globalResourceID
	}

	switch segments[1] {
	case "relations":
		return ResourceRelation, globalResourceID
	case "source":
		if len(segments) == 3 && segments[2] != "" {
			return ResourceSource, segments[2]
		}
		return ResourceSource, globalResourceID
	default:
		return ResourceRegistry, globalResourceID
	}
}
