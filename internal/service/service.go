// Package service provides the business interfaces of the element relation and
// source registry API
package service

import (
	"context"
	"errors"
)

var (
	// ErrSourceNotFound is returned when a source with the requested id does not exist
	ErrSourceNotFound = errors.New("source not found")
	// ErrUnknownRelationType is returned when a value is not a valid RelationType
	ErrUnknownRelationType = errors.New("unknown relation type")
	// ErrUnknownSourceType is returned when a value is not a valid SourceType
	ErrUnknownSourceType = errors.New("unknown source type")
	// ErrUnauthenticated is returned when an operation requires a caller identity
	// and none was resolved
	ErrUnauthenticated = errors.New("no authenticated user")
)

//go:generate mockgen -destination=mocks/mock_service.go -package=mocks -source=service.go

// RegistryService groups the relation and source operations served by a single store
type RegistryService interface {
	RelationService
	SourceService
}

// RelationService defines the operations on element relations
type RelationService interface {
	// CheckReadiness checks if the service is ready to serve requests
	CheckReadiness(ctx context.Context) error

	// ListRelations returns all relations whose type is in types. An empty
	// types slice returns every relation.
	ListRelations(ctx context.Context, types []RelationType) ([]*ElementRelation, error)

	// CreateRelations persists all relations attributed to userID. Either every
	// relation is stored or none is.
	CreateRelations(ctx context.Context, userID int32, relations []*ElementRelation) error

	// UpdateRelation changes the relation type of an existing (left, right) pair
	UpdateRelation(ctx context.Context, userID int32, relation *ElementRelation) error

	// DeleteRelation removes an existing (left, right) pair
	DeleteRelation(ctx context.Context, userID int32, relation *ElementRelation) error
}

// SourceService defines the operations on sources
type SourceService interface {
	// ListSources returns every source
	ListSources(ctx context.Context) ([]*Source, error)

	// ListSourcesByType returns the sources of the given type
	ListSourcesByType(ctx context.Context, sourceType SourceType) ([]*Source, error)

	// GetSource returns the source with the given id or ErrSourceNotFound
	GetSource(ctx context.Context, id int32) (*Source, error)

	// CreateSource persists source and returns the identifier assigned by the store
	CreateSource(ctx context.Context, source *Source) (int32, error)
}

// UserResolver maps an authenticated identity onto a registry user id
type UserResolver interface {
	// ResolveUser returns the id of the user with the given identity, creating
	// the user when it does not exist yet
	ResolveUser(ctx context.Context, identity string) (int32, error)
}
