package authz

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCedarAuthorizer(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		policyBytes []byte
		wantErr     string
	}{
		{
			name:        "nil bytes uses default policies",
			policyBytes: nil,
		},
		{
			name:        "empty bytes creates authorizer with no policies",
			policyBytes: []byte(""),
		},
		{
			name:        "invalid policy bytes returns error",
			policyBytes: []byte("this is not a valid cedar policy!!!"),
			wantErr:     "failed to parse Cedar policies",
		},
		{
			name: "valid custom policy bytes succeeds",
			policyBytes: []byte(`permit(
				principal,
				action == DataElementHub::Registry::Action::"read",
				resource
			);`),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			authorizer, err := NewCedarAuthorizer(tt.policyBytes)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Nil(t, authorizer)
				return
			}

			require.NoError(t, err)
			assert.NotNil(t, authorizer)
			assert.NotNil(t, authorizer.policySet)
		})
	}
}

func TestNewCedarAuthorizerFromFile(t *testing.T) {
	t.Parallel()

	authorizer, err := NewCedarAuthorizerFromFile("")
	require.NoError(t, err)
	assert.NotNil(t, authorizer.policySet)

	path := filepath.Join(t.TempDir(), "policies.cedar")
	require.NoError(t, os.WriteFile(path, []byte(`permit(principal, action, resource);`), 0600))
	authorizer, err = NewCedarAuthorizerFromFile(path)
	require.NoError(t, err)

	decision, err := authorizer.Authorize(context.Background(), Request{Action: ActionAdmin})
	require.NoError(t, err)
	assert.True(t, decision.Allowed)

	_, err = NewCedarAuthorizerFromFile(filepath.Join(t.TempDir(), "missing.cedar"))
	require.ErrorContains(t, err, "failed to read Cedar policies")
}

func TestCedarAuthorizer_Authorize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		granted     []string
		action      string
		wantAllowed bool
	}{
		{name: "read grants read", granted: []string{ActionRead}, action: ActionRead, wantAllowed: true},
		{name: "read does not grant write", granted: []string{ActionRead}, action: ActionWrite},
		{name: "read does not grant admin", granted: []string{ActionRead}, action: ActionAdmin},
		{name: "read,write grants write", granted: []string{ActionRead, ActionWrite}, action: ActionWrite, wantAllowed: true},
		{name: "read,write does not grant admin", granted: []string{ActionRead, ActionWrite}, action: ActionAdmin},
		{name: "admin grants admin", granted: []string{ActionAdmin}, action: ActionAdmin, wantAllowed: true},
		{name: "write alone does not imply read", granted: []string{ActionWrite}, action: ActionRead},
		{name: "empty grants nothing", granted: []string{}, action: ActionRead},
		{name: "unknown action is denied", granted: []string{ActionRead, ActionWrite, ActionAdmin}, action: "unknown"},
	}

	authorizer, err := NewCedarAuthorizer(nil)
	require.NoError(t, err)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			decision, err := authorizer.Authorize(context.Background(), Request{
				Principal:      "alice",
				GrantedActions: tt.granted,
				Action:         tt.action,
				ResourceType:   ResourceRelation,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.wantAllowed, decision.Allowed)

			if tt.wantAllowed {
				assert.NotEmpty(t, decision.Reasons, "allowed decisions should have policy reasons")
			}
		})
	}
}

func TestCedarAuthorizer_Authorize_ResourceDefaults(t *testing.T) {
	t.Parallel()

	authorizer, err := NewCedarAuthorizer(nil)
	require.NoError(t, err)

	tests := []struct {
		name         string
		resourceType string
		resourceID   string
	}{
		{name: "empty resource type and ID uses defaults"},
		{name: "explicit source", resourceType: ResourceSource, resourceID: "12"},
		{name: "only resource type specified", resourceType: ResourceRelation},
		{name: "only resource ID specified", resourceID: "my-resource"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			decision, err := authorizer.Authorize(context.Background(), Request{
				GrantedActions: []string{ActionRead},
				Action:         ActionRead,
				ResourceType:   tt.resourceType,
				ResourceID:     tt.resourceID,
			})
			require.NoError(t, err)
			assert.True(t, decision.Allowed, "read should be allowed with read granted regardless of resource")
		})
	}
}

func TestCedarAuthorizer_Authorize_CustomPolicy(t *testing.T) {
	t.Parallel()

	// Relations may be written by writers, sources only by curators
	customPolicy := []byte(`permit(
		principal,
		action == DataElementHub::Registry::Action::"write",
		resource is DataElementHub::Registry::Relation
	) when {
		principal.grantedActions.contains("write")
	};

	permit(
		principal == DataElementHub::Registry::User::"curator",
		action == DataElementHub::Registry::Action::"write",
		resource is DataElementHub::Registry::Source
	);`)

	authorizer, err := NewCedarAuthorizer(customPolicy)
	require.NoError(t, err)

	tests := []struct {
		name        string
		request     Request
		wantAllowed bool
	}{
		{
			name: "writer may write relations",
			request: Request{
				Principal:      "alice",
				GrantedActions: []string{ActionWrite},
				Action:         ActionWrite,
				ResourceType:   ResourceRelation,
			},
			wantAllowed: true,
		},
		{
			name: "writer may not write sources",
			request: Request{
				Principal:      "alice",
				GrantedActions: []string{ActionWrite},
				Action:         ActionWrite,
				ResourceType:   ResourceSource,
			},
			wantAllowed: false,
		},
		{
			name: "curator may write sources without grants",
			request: Request{
				Principal:    "curator",
				Action:       ActionWrite,
				ResourceType: ResourceSource,
			},
			wantAllowed: true,
		},
		{
			name: "no read policy denies reads",
			request: Request{
				Principal:      "alice",
				GrantedActions: []string{ActionRead},
				Action:         ActionRead,
				ResourceType:   ResourceRelation,
			},
			wantAllowed: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			decision, err := authorizer.Authorize(context.Background(), tt.request)
			require.NoError(t, err)
			assert.Equal(t, tt.wantAllowed, decision.Allowed)
		})
	}
}
