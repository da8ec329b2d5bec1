package authz

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	cedar "github.com/cedar-policy/cedar-go"
)

const cedarNamespace = "DataElementHub::Registry"

// anonymousPrincipal names the principal entity when a request carries no identity
const anonymousPrincipal = "authenticated"

type cedarAuthorizer struct {
	policySet *cedar.PolicySet
}

// NewCedarAuthorizer creates a new Cedar-based authorizer.
// If policyBytes is nil, built-in default policies are used.
func NewCedarAuthorizer(policyBytes []byte) (*cedarAuthorizer, error) {
	if policyBytes == nil {
		policyBytes = []byte(defaultPolicies)
	}

	ps, err := cedar.NewPolicySetFromBytes("policies.cedar", policyBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Cedar policies: %w", err)
	}

	return &cedarAuthorizer{policySet: ps}, nil
}

// NewCedarAuthorizerFromFile reads policies from path, or uses the built-in
// policies when path is empty.
func NewCedarAuthorizerFromFile(path string) (*cedarAuthorizer, error) {
	if path == "" {
		return NewCedarAuthorizer(nil)
	}

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read Cedar policies from %s: %w", path, err)
	}
	return NewCedarAuthorizer(data)
}

// Authorize checks if the principal with the given granted actions can perform
// the specified action on the resource using Cedar policy evaluation.
func (a *cedarAuthorizer) Authorize(ctx context.Context, req Request) (Decision, error) {
	principal := req.Principal
	if principal == "" {
		principal = anonymousPrincipal
	}
	principalUID := cedar.NewEntityUID(cedar.EntityType(cedarNamespace+"::User"), cedar.String(principal))

	actionValues := make([]cedar.Value, len(req.GrantedActions))
	for i, action := range req.GrantedActions {
		actionValues[i] = cedar.String(action)
	}

	entities := cedar.EntityMap{
		principalUID: cedar.Entity{
			UID: principalUID,
			Attributes: cedar.NewRecord(cedar.RecordMap{
				"grantedActions": cedar.NewSet(actionValues...),
			}),
		},
	}

	actionUID := cedar.NewEntityUID(cedar.EntityType(cedarNamespace+"::Action"), cedar.String(req.Action))

	resourceType := req.ResourceType
	if resourceType == "" {
		resourceType = ResourceRegistry
	}
	resourceID := req.ResourceID
	if resourceID == "" {
		resourceID = globalResourceID
	}
	resourceUID := cedar.NewEntityUID(cedar.EntityType(cedarNamespace+"::"+resourceType), cedar.String(resourceID))

	cedarReq := cedar.Request{
		Principal: principalUID,
		Action:    actionUID,
		Resource:  resourceUID,
		Context:   cedar.NewRecord(cedar.RecordMap{}),
	}

	decision, diagnostic := cedar.Authorize(a.policySet, entities, cedarReq)

	slog.DebugContext(ctx, "Authorization decision",
		"principal", principal,
		"action", req.Action,
		"decision", decision,
		"grantedActions", req.GrantedActions,
		"resource", resourceType+"::"+resourceID,
	)

	var reasons []string
	for _, r := range diagnostic.Reasons {
		reasons = append(reasons, string(r.PolicyID))
	}

	return Decision{
		Allowed: decision == cedar.Allow,
		Reasons: reasons,
	}, nil
}
