package authz

import (
	"slices"
	"strings"

	"github.com/dataelementhub/dehub-registry/internal/config"
)

// actionOrder is the order granted actions are reported in
var actionOrder = []string{config.ActionRead, config.ActionWrite, config.ActionAdmin}

// Scopes returns the sorted, de-duplicated scopes a token carries.
//
// Three claims are read and merged: "scope" (space separated, RFC 8693),
// "scp" (a string or an array) and Keycloak's "realm_access.roles", which
// lets realm roles named like scopes, e.g. "dehub:write", grant actions.
func Scopes(claims map[string]any) []string {
	var scopes []string
	if s, ok := claims["scope"].(string); ok {
		scopes = append(scopes, strings.Fields(s)...)
	}
	scopes = append(scopes, stringList(claims["scp"])...)
	if realm, ok := claims["realm_access"].(map[string]any); ok {
		scopes = append(scopes, stringList(realm["roles"])...)
	}

	if len(scopes) == 0 {
		return nil
	}
	slices.Sort(scopes)
	return slices.Compact(scopes)
}

// stringList accepts a space separated string or a JSON array of strings
func stringList(v any) []string {
	switch list := v.(type) {
	case string:
		return strings.Fields(list)
	case []string:
		return list
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			if s, ok := item.(string); ok && s != "" {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// GrantedActions returns the actions the mapping grants to scopes, ordered
// read, write, admin.
func GrantedActions(scopes []string, mapping []config.ScopeMappingEntry) []string {
	granted := make(map[string]struct{}, len(actionOrder))
	for _, entry := range mapping {
		if !slices.Contains(scopes, entry.Scope) {
			continue
		}
		for _, action := range entry.Actions {
			granted[action] = struct{}{}
		}
	}

	actions := make([]string, 0, len(granted))
	for _, action := range actionOrder {
		if _, ok := granted[action]; ok {
			actions = append(actions, action)
		}
	}
	return actions
}
