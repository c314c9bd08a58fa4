// Package jsonschema projects the résumé model into a JSON Schema and checks
// raw documents against it.
package jsonschema

// Schema is a minimal JSON Schema representation used for export.
type Schema struct {
	Schema string `json:"$schema,omitempty"`
	Title  string `json:"title,omitempty"`

	// Core
	Type    string `json:"type,omitempty"`
	Pattern string `json:"pattern,omitempty"`

	// Object
	Properties map[string]*Schema `json:"properties,omitempty"`
	Required   []string           `json:"required,omitempty"`

	// Array
	Items *Schema `json:"items,omitempty"`
}

// Draft07 is the meta-schema URI written into root schemas.
const Draft07 = "http://json-schema.org/draft-07/schema#"
