//go:build !novalidate

package jsonresume

import (
	"reflect"

	"github.com/reoring/jsonresume/i18n"
	"github.com/reoring/jsonresume/rules"
)

// validateDates is true when the validation pass is compiled in.
const validateDates = true

// ValidationErrors lists every date field that failed the format check.
// Each issue has code CodePattern, the field's JSON Pointer path and the
// rejected value in InputFragment.
type ValidationErrors struct {
	Issues Issues
}

func (e *ValidationErrors) Error() string { return "jsonresume: validate: " + e.Issues.Error() }

func (e *ValidationErrors) Unwrap() error { return e.Issues }

// Validate checks every populated date field against rules.DatePattern. It
// looks at each field on its own and never compares fields with each other.
// The result is nil or a *ValidationErrors naming all failing fields.
func (r Resume) Validate() error {
	v := dateValidator{}
	v.walk("", reflect.ValueOf(r))
	if len(v.issues) == 0 {
		return nil
	}
	return &ValidationErrors{Issues: v.issues}
}

type dateValidator struct {
	issues Issues
}

func (v *dateValidator) walk(path string, rv reflect.Value) {
	switch rv.Kind() {
	case reflect.Pointer:
		if !rv.IsNil() {
			v.walk(path, rv.Elem())
		}
	case reflect.Slice:
		for i := 0; i < rv.Len(); i++ {
			v.walk(joinIndex(path, i), rv.Index(i))
		}
	case reflect.Struct:
		for _, f := range structFields(rv.Type()) {
			fv := rv.FieldByIndex(f.index)
			fp := joinKey(path, f.key)
			if f.date {
				v.check(fp, fv)
				continue
			}
			v.walk(fp, fv)
		}
	}
}

func (v *dateValidator) check(path string, fv reflect.Value) {
	if fv.Kind() == reflect.Pointer {
		if fv.IsNil() {
			return
		}
		fv = fv.Elem()
	}
	s := fv.String()
	if rules.MatchDate(s) {
		return
	}
	v.issues = AppendIssues(v.issues, Issue{
		Path:          path,
		Code:          CodePattern,
		Message:       i18n.T(CodePattern, map[string]string{"pattern": "YYYY, YYYY-MM or YYYY-MM-DD"}),
		Hint:          "date",
		InputFragment: s,
		Params:        map[string]any{"pattern": rules.DatePattern},
	})
}
