package jsonresume

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes.
const (
	CodeInvalidType  = "invalid_type"
	CodeRequired     = "required"
	CodeDuplicateKey = "duplicate_key"
	CodePattern      = "pattern"
	CodeParseError   = "parse_error"
	CodeTruncated    = "truncated"
)

// Issue represents a single problem found while decoding or validating.
type Issue struct {
	Path    string // JSON Pointer using wire names (for example: /work/0/startDate).
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: expected shape, pattern name, etc.
	Cause   error  // Optional: underlying error.
	// InputFragment holds the offending input value when it is a string,
	// e.g. the rejected date.
	InputFragment string
	// Params carries structured parameters for i18n and observability.
	Params map[string]any
}

// Issues is a collection of issues that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	lim := min(len(iss), maxShown)
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		fmt.Fprintf(b, "%s at %s", iss[i].Code, iss[i].Path)
	}
	if len(iss) > lim {
		fmt.Fprintf(b, "; ... (total %d)", len(iss))
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	return append(dst, more...)
}

// AsIssues extracts Issues from an error using errors.As internally. It sees
// through *DecodeError and *ValidationErrors.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// DecodeError reports wire input that cannot be mapped onto the model: a
// syntax error, a structural type mismatch, or a missing required scalar.
type DecodeError struct {
	Issues Issues
}

func (e *DecodeError) Error() string { return "jsonresume: decode: " + e.Issues.Error() }

func (e *DecodeError) Unwrap() error { return e.Issues }

// Path returns the location of the first issue.
func (e *DecodeError) Path() string {
	if len(e.Issues) == 0 {
		return ""
	}
	return e.Issues[0].Path
}
