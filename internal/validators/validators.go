// Package validators decodes and validates request bodies against the JSON
// schemas embedded in the binary.
package validators

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/dataelementhub/dehub-registry/internal/service"
)

// MaxBodySize bounds the size of a decoded request body
const MaxBodySize = 4 << 20

const schemaBaseURL = "https://schemas.dataelementhub.de/registry/"

// Schema names
const (
	SchemaRelation    = "relation.json"
	SchemaRelations   = "relations.json"
	SchemaRelationKey = "relation-key.json"
	SchemaSource      = "source.json"
)

// ErrInvalidBody is returned when a request body cannot be decoded or does not
// match its schema
var ErrInvalidBody = errors.New("invalid request body")

//go:embed schemas/*.json
var schemaFS embed.FS

var compiledSchemas = sync.OnceValues(compileSchemas)

func compileSchemas() (map[string]*jsonschema.Schema, error) {
	entries, err := fs.ReadDir(schemaFS, "schemas")
	if err != nil {
		return nil, err
	}

	c := jsonschema.NewCompiler()
	for _, entry := range entries {
		data, err := schemaFS.ReadFile("schemas/" + entry.Name())
		if err != nil {
			return nil, err
		}
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to parse schema %s: %w", entry.Name(), err)
		}
		if err := c.AddResource(schemaBaseURL+entry.Name(), doc); err != nil {
			return nil, fmt.Errorf("failed to add schema %s: %w", entry.Name(), err)
		}
	}

	schemas := make(map[string]*jsonschema.Schema, len(entries))
	for _, entry := range entries {
		sch, err := c.Compile(schemaBaseURL + entry.Name())
		if err != nil {
			return nil, fmt.Errorf("failed to compile schema %s: %w", entry.Name(), err)
		}
		schemas[entry.Name()] = sch
	}
	return schemas, nil
}

// Decode reads a JSON document from r, validates it against the named schema
// and unmarshals it into v. Every failure is reported as ErrInvalidBody.
func Decode(r io.Reader, schema string, v any) error {
	schemas, err := compiledSchemas()
	if err != nil {
		return err
	}
	sch, ok := schemas[schema]
	if !ok {
		return fmt.Errorf("unknown schema %q", schema)
	}

	data, err := io.ReadAll(io.LimitReader(r, MaxBodySize+1))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidBody, err)
	}
	if len(data) > MaxBodySize {
		return fmt.Errorf("%w: body exceeds %d bytes", ErrInvalidBody, MaxBodySize)
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidBody, err)
	}
	if err := sch.Validate(inst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidBody, err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidBody, err)
	}
	return nil
}

// DecodeRelations decodes a JSON array of relations
func DecodeRelations(r io.Reader) ([]*service.ElementRelation, error) {
	relations := []*service.ElementRelation{}
	if err := Decode(r, SchemaRelations, &relations); err != nil {
		return nil, err
	}
	return relations, nil
}

// DecodeRelation decodes a single relation carrying its relation type
func DecodeRelation(r io.Reader) (*service.ElementRelation, error) {
	var relation service.ElementRelation
	if err := Decode(r, SchemaRelation, &relation); err != nil {
		return nil, err
	}
	return &relation, nil
}

// DecodeRelationKey decodes a relation of which only the (left, right) pair is required
func DecodeRelationKey(r io.Reader) (*service.ElementRelation, error) {
	var relation service.ElementRelation
	if err := Decode(r, SchemaRelationKey, &relation); err != nil {
		return nil, err
	}
	return &relation, nil
}

// DecodeSource decodes a source
func DecodeSource(r io.Reader) (*service.Source, error) {
	var source service.Source
	if err := Decode(r, SchemaSource, &source); err != nil {
		return nil, err
	}
	return &source, nil
}
