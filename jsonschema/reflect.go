package jsonschema

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/reoring/jsonresume/rules"
)

// ReflectOpt controls the projection.
type ReflectOpt struct {
	// DatePatterns adds rules.DatePattern to fields tagged resume:"date".
	DatePatterns bool
}

// Reflect builds a schema for t from its json and resume struct tags.
// Pointers and slices map to optional properties and arrays; string kinds
// (including named string types) map to "string"; fields tagged
// resume:"required" are listed under "required". Embedded structs are
// flattened.
func Reflect(t reflect.Type, opt ReflectOpt) *Schema {
	s := reflectType(t, opt)
	s.Schema = Draft07
	return s
}

func reflectType(t reflect.Type, opt ReflectOpt) *Schema {
	switch t.Kind() {
	case reflect.Pointer:
		return reflectType(t.Elem(), opt)
	case reflect.String:
		return &Schema{Type: "string"}
	case reflect.Slice:
		return &Schema{Type: "array", Items: reflectType(t.Elem(), opt)}
	case reflect.Struct:
		s := &Schema{Type: "object", Properties: map[string]*Schema{}}
		addFields(s, t, opt)
		return s
	default:
		panic(fmt.Sprintf("jsonschema: unsupported kind %s", t.Kind()))
	}
}

func addFields(s *Schema, t reflect.Type, opt ReflectOpt) {
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if sf.Anonymous && sf.Type.Kind() == reflect.Struct {
			addFields(s, sf.Type, opt)
			continue
		}
		if !sf.IsExported() {
			continue
		}
		key := sf.Name
		if jt := sf.Tag.Get("json"); jt != "" {
			if jt == "-" {
				continue
			}
			if name, _, _ := strings.Cut(jt, ","); name != "" {
				key = name
			}
		}
		ps := reflectType(sf.Type, opt)
		for _, o := range strings.Split(sf.Tag.Get("resume"), ",") {
			switch o {
			case "required":
				s.Required = append(s.Required, key)
			case "date":
				if opt.DatePatterns {
					ps.Pattern = rules.DatePattern
				}
			}
		}
		s.Properties[key] = ps
	}
}
