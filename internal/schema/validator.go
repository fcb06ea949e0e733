package schema

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

// Records describes the backing file: an array of {id, name, grade}
// objects whose fields are all strings.
var Records = map[string]any{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type":    "array",
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id":    map[string]any{"type": "string"},
			"name":  map[string]any{"type": "string"},
			"grade": map[string]any{"type": "string"},
		},
		"required": []string{"id", "name", "grade"},
	},
}

// Validator checks documents against JSON schemas.
// It caches compiled schemas so repeated loads stay cheap.
type Validator struct {
	cache sync.Map // map[string]*gojsonschema.Schema
}

func NewValidator() *Validator {
	return &Validator{}
}

// ValidateRecords checks doc against the Records schema.
func (v *Validator) ValidateRecords(doc []byte) error {
	return v.Validate(Records, doc)
}

// Validate checks if the JSON document matches the provided schema.
// The schema can be a map[string]any, a string (JSON), or a struct.
func (v *Validator) Validate(schemaData any, doc []byte) error {
	schema, err := v.compile(schemaData)
	if err != nil {
		return fmt.Errorf("invalid schema definition: %w", err)
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(doc))
	if err != nil {
		return fmt.Errorf("validation execution failed: %w", err)
	}
	if result.Valid() {
		return nil
	}

	var errs []string
	for _, desc := range result.Errors() {
		errs = append(errs, desc.String())
	}
	return fmt.Errorf("schema validation failed:\n- %s", dumpErrors(errs))
}

func (v *Validator) compile(schemaData any) (*gojsonschema.Schema, error) {
	var raw []byte
	switch s := schemaData.(type) {
	case string:
		raw = []byte(s)
	case []byte:
		raw = s
	default:
		b, err := json.Marshal(schemaData)
		if err != nil {
			return nil, err
		}
		raw = b
	}
	key := string(raw)

	if val, ok := v.cache.Load(key); ok {
		return val.(*gojsonschema.Schema), nil
	}

	schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return nil, err
	}
	v.cache.Store(key, schema)
	return schema, nil
}

// dumpErrors keeps the first three messages so a badly broken file does
// not flood the log.
func dumpErrors(errs []string) string {
	if len(errs) == 0 {
		return ""
	}
	truncated := ""
	if len(errs) > 3 {
		truncated = fmt.Sprintf("\n... and %d more", len(errs)-3)
		errs = errs[:3]
	}
	return strings.Join(errs, "\n- ") + truncated
}
