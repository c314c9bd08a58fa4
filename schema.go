package jsonresume

import (
	"reflect"
	"sync"

	"github.com/reoring/jsonresume/jsonschema"
)

var (
	schemaOnce    sync.Once
	schemaDoc     *jsonschema.Schema
	schemaChecker *jsonschema.Checker
	schemaErr     error
)

func loadSchema() {
	schemaDoc = jsonschema.Reflect(reflect.TypeOf(Resume{}), jsonschema.ReflectOpt{DatePatterns: validateDates})
	schemaDoc.Title = "Resume Schema"
	schemaChecker, schemaErr = jsonschema.NewChecker(schemaDoc)
}

// JSONSchema returns the JSON Schema describing the wire format accepted by
// Decode. Date fields carry the date pattern only when the validation pass is
// compiled in. The returned value is shared; do not modify it.
func JSONSchema() *jsonschema.Schema {
	schemaOnce.Do(loadSchema)
	return schemaDoc
}

// CheckSchema validates a raw JSON document against JSONSchema without
// decoding it. Unlike Decode it rejects null where a string is expected.
// Failures are returned as Issues.
func CheckSchema(data []byte) error {
	schemaOnce.Do(loadSchema)
	if schemaErr != nil {
		return schemaErr
	}
	vs, err := schemaChecker.Check(data)
	if err != nil {
		return Issues{{Path: "/", Code: CodeParseError, Message: err.Error(), Cause: err}}
	}
	if len(vs) == 0 {
		return nil
	}
	iss := make(Issues, 0, len(vs))
	for _, v := range vs {
		it := Issue{Path: v.Path, Code: schemaCode(v.Type), Message: v.Message, Hint: v.Type}
		if s, ok := v.Value.(string); ok {
			it.InputFragment = s
		}
		iss = append(iss, it)
	}
	return iss
}

func schemaCode(t string) string {
	switch t {
	case "required":
		return CodeRequired
	case "invalid_type":
		return CodeInvalidType
	case "pattern", "does_not_match_pattern":
		return CodePattern
	default:
		return t
	}
}
