package service

import (
	"fmt"
	"time"
)

// RelationType classifies the link between two registry elements.
type RelationType string

// Known relation types. Values match the relation_type database enum.
const (
	RelationTypeEqual      RelationType = "equal"
	RelationTypeEquivalent RelationType = "equivalent"
	RelationTypeWider      RelationType = "wider"
	RelationTypeNarrower   RelationType = "narrower"
	RelationTypeInexact    RelationType = "inexact"
)

// RelationTypes lists every valid relation type.
var RelationTypes = []RelationType{
	RelationTypeEqual,
	RelationTypeEquivalent,
	RelationTypeWider,
	RelationTypeNarrower,
	RelationTypeInexact,
}

// ParseRelationType converts s into a RelationType. Matching is exact; no case
// folding or trimming is applied.
func ParseRelationType(s string) (RelationType, error) {
	for _, t := range RelationTypes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownRelationType, s)
}

// ParseRelationTypes parses every value in names, failing on the first one that
// is not a valid relation type. A nil or empty input yields an empty slice.
func ParseRelationTypes(names []string) ([]RelationType, error) {
	types := make([]RelationType, 0, len(names))
	for _, name := range names {
		t, err := ParseRelationType(name)
		if err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	return types, nil
}

// SourceType classifies the origin of a source record.
type SourceType string

// Known source types. Values match the source_type database enum.
const (
	SourceTypeImport SourceType = "IMPORT"
	SourceTypeCaDSR  SourceType = "CADSR"
	SourceTypeMDR    SourceType = "MDR"
	SourceTypeOther  SourceType = "OTHER"
)

// SourceTypes lists every valid source type.
var SourceTypes = []SourceType{
	SourceTypeImport,
	SourceTypeCaDSR,
	SourceTypeMDR,
	SourceTypeOther,
}

// ParseSourceType converts s into a SourceType. Matching is exact.
func ParseSourceType(s string) (SourceType, error) {
	for _, t := range SourceTypes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSourceType, s)
}

// ElementRelation is a directed, typed link between two registry elements
// identified by their URNs.
type ElementRelation struct {
	LeftURN   string       `json:"leftUrn"`
	RightURN  string       `json:"rightUrn"`
	Relation  RelationType `json:"relation"`
	CreatedBy int32        `json:"createdBy,omitempty"`
	CreatedAt *time.Time   `json:"createdAt,omitempty"`
}

// Source is a named provenance record.
type Source struct {
	ID        int32      `json:"id,omitempty"`
	Name      string     `json:"name"`
	Prefix    string     `json:"prefix"`
	Type      SourceType `json:"type"`
	BaseURL   *string    `json:"baseUrl,omitempty"`
	Version   *string    `json:"version,omitempty"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}
