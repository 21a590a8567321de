// Package schema validates JSON documents against JSON Schema definitions
// declared in Go.
package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Schema names a JSON Schema definition. The definition is compiled on first
// use; a Schema must not be copied after that.
type Schema struct {
	Name       string
	Definition map[string]any

	once     sync.Once
	compiled *jsonschema.Schema
	err      error
}

// ErrInvalidDocument indicates a document that is not JSON or does not
// conform to its schema.
type ErrInvalidDocument struct {
	Schema string
	Err    error
}

func (e *ErrInvalidDocument) Error() string {
	return fmt.Sprintf("%s document rejected: %v", e.Schema, e.Err)
}

func (e *ErrInvalidDocument) Unwrap() error { return e.Err }

// Validate checks raw against s. A malformed or non-conforming document
// yields *ErrInvalidDocument. A definition that does not compile is a
// programming error and is returned as-is.
func Validate(s *Schema, raw []byte) error {
	compiled, err := s.compile()
	if err != nil {
		return fmt.Errorf("schema %s: %w", s.Name, err)
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return &ErrInvalidDocument{Schema: s.Name, Err: err}
	}
	if err := compiled.Validate(doc); err != nil {
		return &ErrInvalidDocument{Schema: s.Name, Err: err}
	}
	return nil
}

func (s *Schema) compile() (*jsonschema.Schema, error) {
	s.once.Do(func() {
		s.compiled, s.err = build(s.Name, s.Definition)
	})
	return s.compiled, s.err
}

// build compiles def under a synthetic URL. The compiler only accepts
// values decoded by jsonschema.UnmarshalJSON, so def is round-tripped
// through JSON.
func build(name string, def map[string]any) (*jsonschema.Schema, error) {
	data, err := json.Marshal(def)
	if err != nil {
		return nil, err
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	url := "https://learnlab.local/schema/" + name + ".json"
	c := jsonschema.NewCompiler()
	if err := c.AddResource(url, doc); err != nil {
		return nil, err
	}
	return c.Compile(url)
}
