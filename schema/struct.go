// Copyright (c) 2026 The settings authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package schema

import (
	"encoding"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// Of derives the Object from the struct type of the given value,
// which is either a struct or a pointer to struct.
//
// Exported fields are mapped with following tags:
//   - `settings:"name"` provides the field name (and key). `settings:"-"` skips the field.
//     Without it, the Go field name is converted to snake_case.
//     `settings:"name,alias=key"` sets the key in resolved mappings, while the name
//     still derives the environment variable name.
//   - `env:"NAME"` overrides the environment variable name.
//   - `envPrefix:"PREFIX"` overrides the environment variable prefix of a nested struct.
//   - `deprecated:"true"` marks the field deprecated.
//
// Struct fields (except time.Time and encoding.TextUnmarshaler) are Nested,
// slices and arrays (except []byte) are List, maps are Mapping, and the rest are Scalar.
func Of(value any) (Object, error) {
	typ := reflect.TypeOf(value)
	for typ != nil && typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	if typ == nil || typ.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %v", errNotStruct, reflect.TypeOf(value))
	}

	return of(typ, map[reflect.Type]struct{}{})
}

func of(typ reflect.Type, visiting map[reflect.Type]struct{}) (Object, error) {
	if _, ok := visiting[typ]; ok {
		return nil, fmt.Errorf("%w: %s", errRecursiveType, typ)
	}
	visiting[typ] = struct{}{}
	defer delete(visiting, typ)

	object := make(Object, 0, typ.NumField())
	for i := range typ.NumField() {
		structField := typ.Field(i)
		if !structField.IsExported() {
			continue
		}

		name, tagOptions, _ := strings.Cut(structField.Tag.Get(TagName), ",")
		if name == "-" {
			continue
		}
		if name == "" {
			name = SnakeCase(structField.Name)
		}

		field := Field{
			Name:      name,
			Env:       structField.Tag.Get("env"),
			EnvPrefix: structField.Tag.Get("envPrefix"),
		}
		for _, option := range strings.Split(tagOptions, ",") {
			if alias, ok := strings.CutPrefix(option, "alias="); ok {
				field.Alias = alias
			}
		}
		if deprecated := structField.Tag.Get("deprecated"); deprecated != "" {
			var err error
			if field.Deprecated, err = strconv.ParseBool(deprecated); err != nil {
				return nil, fmt.Errorf("parse deprecated tag of %s.%s: %w", typ, structField.Name, err)
			}
		}

		fieldType := structField.Type
		for fieldType.Kind() == reflect.Pointer {
			fieldType = fieldType.Elem()
		}
		field.Shape = shapeOf(fieldType)
		if field.Shape == Nested {
			fields, err := of(fieldType, visiting)
			if err != nil {
				return nil, err
			}
			field.Fields = fields
		}

		object = append(object, field)
	}

	return object, nil
}

func shapeOf(typ reflect.Type) Shape {
	if typ == timeType || reflect.PointerTo(typ).Implements(textUnmarshalerType) {
		return Scalar
	}

	switch typ.Kind() { //nolint:exhaustive
	case reflect.Struct:
		return Nested
	case reflect.Map:
		return Mapping
	case reflect.Slice, reflect.Array:
		if typ.Elem().Kind() == reflect.Uint8 {
			return Scalar
		}

		return List
	default:
		return Scalar
	}
}

// SnakeCase converts a Go identifier to snake_case, e.g. HTTPHost to http_host.
func SnakeCase(name string) string {
	runes := []rune(name)
	builder := strings.Builder{}
	builder.Grow(len(name) + 4) //nolint:mnd
	for i, r := range runes {
		if unicode.IsUpper(r) && i > 0 {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				builder.WriteByte('_')
			}
		}
		builder.WriteRune(unicode.ToLower(r))
	}

	return builder.String()
}

// TagName is the struct tag providing the field name.
const TagName = "settings"

//nolint:gochecknoglobals
var (
	timeType            = reflect.TypeFor[time.Time]()
	textUnmarshalerType = reflect.TypeFor[encoding.TextUnmarshaler]()

	errNotStruct     = errors.New("schema requires a struct")
	errRecursiveType = errors.New("schema cannot be derived from recursive type")
)
