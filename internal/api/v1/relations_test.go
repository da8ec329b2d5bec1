package v1_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	v1 "github.com/dataelementhub/dehub-registry/internal/api/v1"
	"github.com/dataelementhub/dehub-registry/internal/auth"
	"github.com/dataelementhub/dehub-registry/internal/service"
	"github.com/dataelementhub/dehub-registry/internal/service/mocks"
)

const (
	relationBody  = `{"leftUrn":"urn:dehub:a","rightUrn":"urn:dehub:b","relation":"equal"}`
	relationsBody = `[` + relationBody + `,{"leftUrn":"urn:dehub:a","rightUrn":"urn:dehub:c","relation":"wider"}]`
)

// newRouter returns the v1 router behind a middleware that authenticates the
// caller as identity, or leaves the request anonymous when identity is empty.
func newRouter(svc service.RegistryService, users service.UserResolver, identity string) http.Handler {
	router := v1.Router(svc, users)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if identity != "" {
			r = r.WithContext(auth.WithIdentity(r.Context(), identity))
		}
		router.ServeHTTP(w, r)
	})
}

func errorMessage(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body["error"]
}

func TestListRelations(t *testing.T) {
	t.Parallel()

	created := &service.ElementRelation{
		LeftURN:   "urn:dehub:a",
		RightURN:  "urn:dehub:b",
		Relation:  service.RelationTypeEqual,
		CreatedBy: 3,
	}

	tests := []struct {
		name       string
		query      string
		setupMock  func(*mocks.MockRegistryService)
		wantStatus int
		wantBody   string
		wantError  string
	}{
		{
			name:  "no filter",
			query: "",
			setupMock: func(m *mocks.MockRegistryService) {
				m.EXPECT().ListRelations(gomock.Any(), []service.RelationType{}).
					Return([]*service.ElementRelation{created}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `[{"leftUrn":"urn:dehub:a","rightUrn":"urn:dehub:b","relation":"equal","createdBy":3}]`,
		},
		{
			name:  "repeated type filter",
			query: "?type=wider&type=narrower",
			setupMock: func(m *mocks.MockRegistryService) {
				m.EXPECT().ListRelations(gomock.Any(), []service.RelationType{
					service.RelationTypeWider, service.RelationTypeNarrower,
				}).Return(nil, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `[]`,
		},
		{
			name:       "unknown type",
			query:      "?type=equal&type=sameAs",
			wantStatus: http.StatusBadRequest,
			wantError:  "unknown type",
		},
		{
			name:       "type is case sensitive",
			query:      "?type=EQUAL",
			wantStatus: http.StatusBadRequest,
			wantError:  "unknown type",
		},
		{
			name:  "store failure",
			query: "",
			setupMock: func(m *mocks.MockRegistryService) {
				m.EXPECT().ListRelations(gomock.Any(), gomock.Any()).
					Return(nil, &service.StoreError{Message: "connection refused"})
			},
			wantStatus: http.StatusInternalServerError,
			wantError:  "failed to list relations",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			svc := mocks.NewMockRegistryService(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(svc)
			}

			rr := httptest.NewRecorder()
			newRouter(svc, mocks.NewMockUserResolver(ctrl), "").
				ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/relations"+tt.query, nil))

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, errorMessage(t, rr))
				return
			}
			assert.JSONEq(t, tt.wantBody, rr.Body.String())
		})
	}
}

func TestRelationMutations(t *testing.T) {
	t.Parallel()

	duplicate := &service.StoreError{
		Message:    `ERROR: duplicate key value violates unique constraint "element_relation_pkey" (SQLSTATE 23505)`,
		Constraint: true,
	}
	notFound := &service.StoreError{Message: "element relation not found"}

	type call func(svc *mocks.MockRegistryService) *gomock.Call

	tests := []struct {
		name       string
		method     string
		body       string
		identity   string
		expect     call
		returnErr  error
		wantStatus int
		wantError  string
	}{
		{
			name:     "create batch",
			method:   http.MethodPost,
			body:     relationsBody,
			identity: "alice",
			expect: func(svc *mocks.MockRegistryService) *gomock.Call {
				return svc.EXPECT().CreateRelations(gomock.Any(), int32(7), gomock.Len(2))
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name:     "create rejected by store",
			method:   http.MethodPost,
			body:     relationsBody,
			identity: "alice",
			expect: func(svc *mocks.MockRegistryService) *gomock.Call {
				return svc.EXPECT().CreateRelations(gomock.Any(), int32(7), gomock.Any())
			},
			returnErr:  duplicate,
			wantStatus: http.StatusBadRequest,
			wantError:  duplicate.Message,
		},
		{
			name:       "create with invalid relation type",
			method:     http.MethodPost,
			body:       `[{"leftUrn":"a","rightUrn":"b","relation":"same"}]`,
			identity:   "alice",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "create with single object",
			method:     http.MethodPost,
			body:       relationBody,
			identity:   "alice",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "create anonymously",
			method:     http.MethodPost,
			body:       relationsBody,
			wantStatus: http.StatusUnauthorized,
			wantError:  "authentication required",
		},
		{
			name:     "update",
			method:   http.MethodPut,
			body:     relationBody,
			identity: "alice",
			expect: func(svc *mocks.MockRegistryService) *gomock.Call {
				return svc.EXPECT().UpdateRelation(gomock.Any(), int32(7), &service.ElementRelation{
					LeftURN:  "urn:dehub:a",
					RightURN: "urn:dehub:b",
					Relation: service.RelationTypeEqual,
				})
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name:     "update missing pair",
			method:   http.MethodPut,
			body:     relationBody,
			identity: "alice",
			expect: func(svc *mocks.MockRegistryService) *gomock.Call {
				return svc.EXPECT().UpdateRelation(gomock.Any(), int32(7), gomock.Any())
			},
			returnErr:  notFound,
			wantStatus: http.StatusBadRequest,
			wantError:  "element relation not found",
		},
		{
			name:       "update without relation",
			method:     http.MethodPut,
			body:       `{"leftUrn":"urn:dehub:a","rightUrn":"urn:dehub:b"}`,
			identity:   "alice",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "update anonymously",
			method:     http.MethodPut,
			body:       relationBody,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:     "delete by key",
			method:   http.MethodDelete,
			body:     `{"leftUrn":"urn:dehub:a","rightUrn":"urn:dehub:b"}`,
			identity: "alice",
			expect: func(svc *mocks.MockRegistryService) *gomock.Call {
				return svc.EXPECT().DeleteRelation(gomock.Any(), int32(7), &service.ElementRelation{
					LeftURN:  "urn:dehub:a",
					RightURN: "urn:dehub:b",
				})
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name:     "delete missing pair",
			method:   http.MethodDelete,
			body:     relationBody,
			identity: "alice",
			expect: func(svc *mocks.MockRegistryService) *gomock.Call {
				return svc.EXPECT().DeleteRelation(gomock.Any(), int32(7), gomock.Any())
			},
			returnErr:  notFound,
			wantStatus: http.StatusBadRequest,
			wantError:  "element relation not found",
		},
		{
			name:       "delete malformed body",
			method:     http.MethodDelete,
			body:       `{"leftUrn":`,
			identity:   "alice",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "delete anonymously",
			method:     http.MethodDelete,
			body:       relationBody,
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			svc := mocks.NewMockRegistryService(ctrl)
			users := mocks.NewMockUserResolver(ctrl)
			if tt.identity != "" {
				users.EXPECT().ResolveUser(gomock.Any(), tt.identity).Return(int32(7), nil)
			}
			if tt.expect != nil {
				tt.expect(svc).Return(tt.returnErr)
			}

			req := httptest.NewRequest(tt.method, "/relations", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()
			newRouter(svc, users, tt.identity).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusNoContent {
				assert.Empty(t, rr.Body.String())
			}
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, errorMessage(t, rr))
			}
		})
	}
}

func TestRelationMutations_UserResolution(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		resolveErr error
		wantStatus int
		wantError  string
	}{
		{
			name:       "store failure",
			resolveErr: &service.StoreError{Message: "connection refused"},
			wantStatus: http.StatusBadRequest,
			wantError:  "connection refused",
		},
		{
			name:       "identity rejected",
			resolveErr: service.ErrUnauthenticated,
			wantStatus: http.StatusUnauthorized,
			wantError:  "authentication required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			// no service expectations: nothing may be persisted
			svc := mocks.NewMockRegistryService(ctrl)
			users := mocks.NewMockUserResolver(ctrl)
			users.EXPECT().ResolveUser(gomock.Any(), "alice").Return(int32(0), tt.resolveErr)

			req := httptest.NewRequest(http.MethodPost, "/relations", strings.NewReader(relationsBody))
			rr := httptest.NewRecorder()
			newRouter(svc, users, "alice").ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantError, errorMessage(t, rr))
		})
	}
}

func TestCreateRelations_ServiceRejectsMissingUser(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	svc := mocks.NewMockRegistryService(ctrl)
	users := mocks.NewMockUserResolver(ctrl)
	users.EXPECT().ResolveUser(gomock.Any(), "alice").Return(int32(7), nil)
	svc.EXPECT().CreateRelations(gomock.Any(), int32(7), gomock.Any()).
		Return(errors.Join(errors.New("create failed"), service.ErrUnauthenticated))

	req := httptest.NewRequest(http.MethodPost, "/relations", strings.NewReader(relationsBody))
	rr := httptest.NewRecorder()
	newRouter(svc, users, "alice").ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestCreateRelations_PassesDecodedRelations(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	svc := mocks.NewMockRegistryService(ctrl)
	users := mocks.NewMockUserResolver(ctrl)
	users.EXPECT().ResolveUser(gomock.Any(), "bob").Return(int32(2), nil)

	var got []*service.ElementRelation
	svc.EXPECT().CreateRelations(gomock.Any(), int32(2), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int32, rels []*service.ElementRelation) error {
			got = rels
			return nil
		})

	req := httptest.NewRequest(http.MethodPost, "/relations", strings.NewReader(relationsBody))
	rr := httptest.NewRecorder()
	newRouter(svc, users, "bob").ServeHTTP(rr, req)

	require.Equal(t, http.StatusNoContent, rr.Code)
	require.Len(t, got, 2)
	assert.Equal(t, "urn:dehub:c", got[1].RightURN)
	assert.Equal(t, service.RelationTypeWider, got[1].Relation)
}
