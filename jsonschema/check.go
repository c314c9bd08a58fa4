package jsonschema

import (
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// Violation is one schema failure reported by Checker.
type Violation struct {
	Path    string // JSON Pointer of the offending value
	Type    string // gojsonschema error type, e.g. "required", "invalid_type"
	Message string
	Value   any
}

// Checker validates raw documents against a compiled schema.
type Checker struct {
	compiled *gojsonschema.Schema
}

// NewChecker compiles s.
func NewChecker(s *Schema) (*Checker, error) {
	compiled, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(s))
	if err != nil {
		return nil, err
	}
	return &Checker{compiled: compiled}, nil
}

// Check validates a JSON document. A non-nil error means the document could
// not be read at all; schema failures are returned as violations.
func (c *Checker) Check(doc []byte) ([]Violation, error) {
	res, err := c.compiled.Validate(gojsonschema.NewBytesLoader(doc))
	if err != nil {
		return nil, err
	}
	if res.Valid() {
		return nil, nil
	}
	out := make([]Violation, 0, len(res.Errors()))
	for _, re := range res.Errors() {
		path := fieldPointer(re.Field())
		if re.Type() == "required" {
			if prop, ok := re.Details()["property"].(string); ok {
				path = strings.TrimSuffix(path, "/") + "/" + prop
			}
		}
		out = append(out, Violation{Path: path, Type: re.Type(), Message: re.Description(), Value: re.Value()})
	}
	return out, nil
}

// fieldPointer converts gojsonschema's dotted field context ("work.0.startDate",
// "(root)") into a JSON Pointer.
func fieldPointer(field string) string {
	if field == "" || field == "(root)" {
		return "/"
	}
	return "/" + strings.ReplaceAll(field, ".", "/")
}
