// Package jsonresume models a résumé in the JSON Resume schema and converts
// it to and from its wire format.
//
// The package provides:
//
//   - The Schema Model: Resume and its nested records, with optional scalars
//     as *string, collections as slices and single-string leaves (Highlight,
//     Course, Keyword, Duty, Profit, Role) as distinct named types.
//   - The codec: Decode/DecodeReader/DecodeYAML and Encode/EncodeIndent/EncodeYAML.
//     Decoding ignores unknown keys, fills missing keys with zero values and
//     reports problems as a *DecodeError holding Issues (JSON Pointer, code,
//     message). Encoding omits absent scalars and empty collections.
//   - Validation: Resume.Validate checks every date field against
//     rules.DatePattern and returns all failures at once as *ValidationErrors.
//   - JSONSchema/CheckSchema: a JSON Schema projection of the model.
//
// Build tags:
//
//   - sideprojects: adds Resume.SideProjects (wire key "sideProjects").
//   - novalidate: compiles out Resume.Validate and ValidationErrors.
//     Validation is the opt-in "validate" feature in other JSON Resume
//     implementations; here it is on unless novalidate is set.
//
// Typical usage:
//
//	r, err := jsonresume.Decode(data)
//	if err != nil {
//		var de *jsonresume.DecodeError
//		if errors.As(err, &de) { ... de.Issues ... }
//	}
//	if err := r.Validate(); err != nil { ... }
//	out, _ := jsonresume.Encode(r)
package jsonresume
