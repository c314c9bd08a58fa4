package jsonresume

import (
	gojson "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	eng "github.com/reoring/jsonresume/internal/engine"
	gojsonsrc "github.com/reoring/jsonresume/internal/source/gojson"
)

// Encode renders r as a JSON Resume document. Absent optional fields and
// empty collections are omitted; Basics.Location is always written.
//
// The error is always nil for values built from this package's types; it is
// kept to match the json.Marshal shape.
func Encode(r Resume) ([]byte, error) {
	return gojson.Marshal(r)
}

// EncodeIndent is like Encode but applies Indent to format the output.
func EncodeIndent(r Resume, prefix, indent string) ([]byte, error) {
	return gojson.MarshalIndent(r, prefix, indent)
}

// EncodeYAML renders r as YAML with the same keys and omission rules as
// Encode. Mapping keys are written in sorted order.
func EncodeYAML(r Resume) ([]byte, error) {
	data, err := Encode(r)
	if err != nil {
		return nil, err
	}
	tree, err := eng.DecodeDocument(gojsonsrc.NewBytes(data))
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(tree)
}
