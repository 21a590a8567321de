package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/abhisek/learnlab/internal/schema"
)

//go:embed catalog.json
var defaultData []byte

// document is the on-disk catalog layout.
type document struct {
	Subjects []Subject `json:"subjects"`
}

// DocumentSchema describes a catalog file.
var DocumentSchema = &schema.Schema{
	Name: "catalog",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"subjects": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id":   map[string]any{"type": "string", "minLength": 1},
						"name": map[string]any{"type": "string", "minLength": 1},
						"icon": map[string]any{"type": "string"},
						"courses": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "object",
								"properties": map[string]any{
									"id":   map[string]any{"type": "string", "minLength": 1},
									"name": map[string]any{"type": "string", "minLength": 1},
									"flashcards": map[string]any{
										"type": "array",
										"items": map[string]any{
											"type": "object",
											"properties": map[string]any{
												"front": map[string]any{"type": "string", "minLength": 1},
												"back":  map[string]any{"type": "string", "minLength": 1},
											},
											"required":             []any{"front", "back"},
											"additionalProperties": false,
										},
									},
								},
								"required": []any{"id", "name", "flashcards"},
							},
						},
					},
					"required": []any{"id", "name", "courses"},
				},
			},
		},
		"required": []any{"subjects"},
	},
}

// Parse decodes and validates a catalog document.
func Parse(data []byte) (*Catalog, error) {
	if err := schema.Validate(DocumentSchema, data); err != nil {
		return nil, err
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return New(doc.Subjects)
}

// Load reads a catalog document from r.
func Load(r io.Reader) (*Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

// LoadFile reads a catalog document from path.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	return Load(f)
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
	defaultErr     error
)

// Default returns the built-in catalog.
func Default() (*Catalog, error) {
	defaultOnce.Do(func() {
		defaultCatalog, defaultErr = Parse(defaultData)
	})
	return defaultCatalog, defaultErr
}
