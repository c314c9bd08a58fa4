package jsonresume

import (
	"reflect"
	"strconv"
	"strings"
	"sync"
)

// fieldInfo describes how one struct field maps onto the wire.
type fieldInfo struct {
	index    []int
	key      string
	required bool // resume:"required": must be present on decode
	date     bool // resume:"date": checked by Validate
}

var fieldCache sync.Map // reflect.Type -> []fieldInfo

// structFields lists the wire-visible fields of t in declaration order,
// flattening embedded structs the way encoding/json does.
func structFields(t reflect.Type) []fieldInfo {
	if v, ok := fieldCache.Load(t); ok {
		return v.([]fieldInfo)
	}
	fs := collectFields(t, nil)
	v, _ := fieldCache.LoadOrStore(t, fs)
	return v.([]fieldInfo)
}

func collectFields(t reflect.Type, prefix []int) []fieldInfo {
	var out []fieldInfo
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		idx := append(append([]int{}, prefix...), i)
		if sf.Anonymous && sf.Type.Kind() == reflect.Struct {
			out = append(out, collectFields(sf.Type, idx)...)
			continue
		}
		if !sf.IsExported() {
			continue
		}
		key := resolveStructKey(sf)
		if key == "-" {
			continue
		}
		fi := fieldInfo{index: idx, key: key}
		for _, opt := range strings.Split(sf.Tag.Get("resume"), ",") {
			switch strings.TrimSpace(opt) {
			case "required":
				fi.required = true
			case "date":
				fi.date = true
			}
		}
		out = append(out, fi)
	}
	return out
}

// resolveStructKey returns the wire key of a struct field: the json tag name
// when present, the Go field name otherwise. "-" disables the field.
func resolveStructKey(sf reflect.StructField) string {
	jt := sf.Tag.Get("json")
	if jt == "" {
		return sf.Name
	}
	if jt == "-" {
		return "-"
	}
	if i := strings.IndexByte(jt, ','); i >= 0 {
		if i == 0 {
			return sf.Name
		}
		return jt[:i]
	}
	return jt
}

var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

// joinKey appends an RFC 6901 escaped object key to a JSON Pointer.
func joinKey(base, key string) string { return base + "/" + pointerEscaper.Replace(key) }

func joinIndex(base string, i int) string { return base + "/" + strconv.Itoa(i) }

func rootPath(p string) string {
	if p == "" {
		return "/"
	}
	return p
}

// Equal reports whether r and o hold the same data. Nil and empty
// collections compare equal; an absent scalar differs from an empty one.
func (r Resume) Equal(o Resume) bool {
	return deepEqual(reflect.ValueOf(r), reflect.ValueOf(o))
}

func deepEqual(a, b reflect.Value) bool {
	switch a.Kind() {
	case reflect.Pointer:
		if a.IsNil() || b.IsNil() {
			return a.IsNil() == b.IsNil()
		}
		return deepEqual(a.Elem(), b.Elem())
	case reflect.Slice:
		if a.Len() != b.Len() {
			return false
		}
		for i := 0; i < a.Len(); i++ {
			if !deepEqual(a.Index(i), b.Index(i)) {
				return false
			}
		}
		return true
	case reflect.Struct:
		for i := 0; i < a.NumField(); i++ {
			if !deepEqual(a.Field(i), b.Field(i)) {
				return false
			}
		}
		return true
	case reflect.String:
		return a.String() == b.String()
	default:
		return a.Interface() == b.Interface()
	}
}
