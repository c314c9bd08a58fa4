package jsonresume

import (
	"errors"
	"fmt"
	"io"
	"reflect"

	gojson "github.com/goccy/go-json"

	"github.com/reoring/jsonresume/i18n"
	eng "github.com/reoring/jsonresume/internal/engine"
	gojsonsrc "github.com/reoring/jsonresume/internal/source/gojson"
	"github.com/reoring/jsonresume/internal/source/yamlsrc"
)

// Decode parses a JSON Resume document.
//
// Keys missing from the input take the zero value of their field and unknown
// keys are ignored. The only per-field failures are type mismatches and a
// missing Position title or Feature field. All of them are reported together
// in a *DecodeError unless opt.FailFast is set.
func Decode(data []byte, opts ...DecodeOpt) (Resume, error) {
	opt := lastOpt(opts)
	if opt.MaxBytes > 0 && int64(len(data)) > opt.MaxBytes {
		return Resume{}, truncatedError()
	}
	// The go-json tokenizer does not check separators, so syntax is
	// verified up front.
	if err := checkSyntax(data); err != nil {
		return Resume{}, &DecodeError{Issues: sourceIssues(err)}
	}
	return decodeSource(gojsonsrc.NewBytes(data), opt)
}

// DecodeReader reads r to the end and parses it like Decode. When MaxBytes
// is set at most MaxBytes+1 bytes are read.
func DecodeReader(r io.Reader, opts ...DecodeOpt) (Resume, error) {
	opt := lastOpt(opts)
	if opt.MaxBytes > 0 {
		r = io.LimitReader(r, opt.MaxBytes+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return Resume{}, &DecodeError{Issues: Issues{{Path: "/", Code: CodeParseError, Message: err.Error(), Cause: err}}}
	}
	return Decode(data, opt)
}

// DecodeYAML parses a résumé written in YAML. It follows the same rules as
// Decode with two differences: every plain scalar other than null and
// booleans is read as text, so 2021-06 and an unquoted 123 both arrive as
// strings where JSON would reject the number; and aliases and merge keys
// (<<) are expanded before decoding. Cyclic aliases and excessive alias
// expansion are parse errors.
func DecodeYAML(data []byte, opts ...DecodeOpt) (Resume, error) {
	opt := lastOpt(opts)
	if opt.MaxBytes > 0 && int64(len(data)) > opt.MaxBytes {
		return Resume{}, truncatedError()
	}
	tree, err := yamlsrc.Decode(data, opt.engineOptions())
	if err != nil {
		return Resume{}, &DecodeError{Issues: sourceIssues(err)}
	}
	return decodeTree(tree, opt)
}

// UnmarshalJSON implements json.Unmarshaler with the same contract as Decode.
func (r *Resume) UnmarshalJSON(data []byte) error {
	v, err := Decode(data)
	if err != nil {
		return err
	}
	*r = v
	return nil
}

func decodeSource(src eng.TokenSource, opt DecodeOpt) (Resume, error) {
	if eo := opt.engineOptions(); eo.Enabled() {
		src = eng.WrapWithEnforcement(src, eo)
	}
	tree, err := eng.DecodeDocument(src)
	if err != nil {
		return Resume{}, &DecodeError{Issues: sourceIssues(err)}
	}
	return decodeTree(tree, opt)
}

func decodeTree(tree any, opt DecodeOpt) (Resume, error) {
	var r Resume
	d := &decoder{failFast: opt.FailFast}
	d.decodeValue("", tree, reflect.ValueOf(&r).Elem())
	if len(d.issues) > 0 {
		return Resume{}, &DecodeError{Issues: d.issues}
	}
	return r, nil
}

// errInvalidJSON is reported when go-json's validator rejects input that its
// unmarshaler would accept.
var errInvalidJSON = errors.New("invalid JSON")

func checkSyntax(data []byte) error {
	if gojson.Valid(data) {
		return nil
	}
	var v any
	if err := gojson.Unmarshal(data, &v); err != nil {
		return err
	}
	return errInvalidJSON
}

func truncatedError() error {
	return &DecodeError{Issues: Issues{{Path: "/", Code: CodeTruncated, Message: i18n.T(CodeTruncated, nil), Hint: "max bytes exceeded"}}}
}

// sourceIssues converts syntax and enforcement failures into Issues.
func sourceIssues(err error) Issues {
	var ie eng.IssueError
	if errors.As(err, &ie) {
		return Issues{{Path: ie.Path, Code: ie.Code, Message: ie.Message, Cause: err}}
	}
	var de *yamlsrc.DuplicateKeyError
	if errors.As(err, &de) {
		return Issues{{Path: de.Path, Code: CodeDuplicateKey, Message: de.Error(), Cause: err}}
	}
	msg := err.Error()
	switch {
	case errors.Is(err, io.ErrUnexpectedEOF), errors.Is(err, io.EOF):
		msg = "unexpected end of input"
	case errors.Is(err, eng.ErrTrailingData):
		msg = "unexpected data after top-level value"
	}
	return Issues{{Path: "/", Code: CodeParseError, Message: msg, Cause: err}}
}

// decoder maps an any tree onto model values, collecting issues with their
// JSON Pointer paths.
type decoder struct {
	failFast bool
	issues   Issues
}

func (d *decoder) stopped() bool { return d.failFast && len(d.issues) > 0 }

func (d *decoder) add(it Issue) { d.issues = AppendIssues(d.issues, it) }

func (d *decoder) decodeValue(path string, raw any, rv reflect.Value) {
	switch rv.Kind() {
	case reflect.Pointer:
		// null on an optional value means "not provided".
		if raw == nil {
			return
		}
		nv := reflect.New(rv.Type().Elem())
		d.decodeValue(path, raw, nv.Elem())
		rv.Set(nv)
	case reflect.String:
		s, ok := raw.(string)
		if !ok {
			d.mismatch(path, "string", raw)
			return
		}
		rv.SetString(s)
	case reflect.Slice:
		arr, ok := raw.([]any)
		if !ok {
			d.mismatch(path, "array", raw)
			return
		}
		if len(arr) == 0 {
			return
		}
		out := reflect.MakeSlice(rv.Type(), len(arr), len(arr))
		for i, item := range arr {
			d.decodeValue(joinIndex(path, i), item, out.Index(i))
			if d.stopped() {
				return
			}
		}
		rv.Set(out)
	case reflect.Struct:
		d.decodeStruct(path, raw, rv)
	default:
		panic(fmt.Sprintf("jsonresume: unsupported field kind %s", rv.Kind()))
	}
}

func (d *decoder) decodeStruct(path string, raw any, rv reflect.Value) {
	obj, ok := raw.(map[string]any)
	if !ok {
		d.mismatch(path, "object", raw)
		return
	}
	for _, f := range structFields(rv.Type()) {
		fp := joinKey(path, f.key)
		val, present := obj[f.key]
		if !present {
			if f.required {
				d.add(Issue{Path: fp, Code: CodeRequired, Message: i18n.T(CodeRequired, nil), Hint: "required property missing"})
			}
		} else {
			d.decodeValue(fp, val, rv.FieldByIndex(f.index))
		}
		if d.stopped() {
			return
		}
	}
}

func (d *decoder) mismatch(path, expected string, raw any) {
	got, fragment := describe(raw)
	data := map[string]string{"expected": expected, "got": got}
	d.add(Issue{
		Path:          rootPath(path),
		Code:          CodeInvalidType,
		Message:       i18n.T(CodeInvalidType, data),
		Hint:          "expected " + expected,
		InputFragment: fragment,
		Params:        map[string]any{"expected": expected, "got": got},
	})
}

// describe names the JSON type of raw and renders scalars for InputFragment.
func describe(raw any) (string, string) {
	switch v := raw.(type) {
	case nil:
		return "null", "null"
	case string:
		return "string", v
	case bool:
		if v {
			return "boolean", "true"
		}
		return "boolean", "false"
	case gojson.Number:
		return "number", string(v)
	case []any:
		return "array", ""
	case map[string]any:
		return "object", ""
	default:
		return fmt.Sprintf("%T", raw), ""
	}
}
