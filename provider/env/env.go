// Copyright (c) 2026 The settings authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

// Package env loads configuration from environment variables.
//
// Env walks the schema and derives the name of the environment variable for each field
// by joining the prefix and the field name with `_`. E.g. with prefix `APP`,
// the field `port` of the nested field `http` is loaded from `APP_HTTP_PORT`.
// A field with explicit env name is loaded from that name regardless of the prefix.
// The names are case-insensitive unless WithCaseSensitive(true) is provided.
//
// Values are returned as raw strings, except:
//   - list fields, which are decoded from JSON;
//   - mapping fields, which collect all variables with the `<NAME>_` prefix,
//     e.g. `APP_EXTRA_X=1` and `APP_EXTRA_Y=2` are loaded as `{extra: {x: "1", y: "2"}}`;
//   - union fields, which are decoded from JSON if a complex member matches.
//
// A variable is claimed by the first mapping field (in schema order) whose prefix matches,
// so that it cannot be loaded by other fields.
package env

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"strings"

	"github.com/nil-go/settings/schema"
)

// Env is a source that loads configuration from environment variables.
//
// To create a new Env, call [New].
type Env struct {
	_             [0]func() // Ensure it's incomparable.
	logger        *slog.Logger
	prefix        string
	caseSensitive bool
	vars          map[string]string
}

// New creates an Env with the given Option(s).
//
// The variables are copied while creating, so that later changes of the process environment
// or the map given by WithVars are not observed.
func New(opts ...Option) Env {
	option := &options{}
	for _, opt := range opts {
		opt(option)
	}
	if option.logger == nil {
		option.logger = slog.Default()
	}

	vars := option.vars
	if vars == nil {
		vars = environ()
	}
	option.vars = make(map[string]string, len(vars))
	for key, value := range vars {
		if !option.caseSensitive {
			key = strings.ToLower(key)
		}
		option.vars[key] = value
	}
	if !option.caseSensitive {
		option.prefix = strings.ToLower(option.prefix)
	}

	return Env(*option)
}

// Load returns the values of fields in the given object which have environment variables set.
// Fields without value are omitted.
//
// It returns *DecodeError if the value of a list or mapping field is not valid JSON.
func (e Env) Load(object schema.Object) (map[string]any, error) {
	r := resolver{
		Env: e,
		// Consumption of mapping fields only applies to this call.
		remaining: maps.Clone(e.vars),
	}

	return r.resolve(object, e.prefix, "")
}

func (e Env) String() string {
	if e.prefix == "" {
		return "env"
	}

	return "env:" + e.prefix
}

type resolver struct {
	Env

	remaining map[string]string
}

func (r resolver) resolve(object schema.Object, prefix, path string) (map[string]any, error) {
	values := make(map[string]any, len(object))
	for _, field := range object {
		fieldPath := join(path, field.Key(), ".")
		if field.Deprecated {
			r.logger.Warn("Field is deprecated.", "field", fieldPath)
		}

		name := field.Env
		if name == "" {
			name = join(prefix, field.Name, "_")
		}
		name = r.fold(name)

		var (
			value any
			ok    bool
			err   error
		)
		switch field.Shape { //nolint:exhaustive
		case schema.Nested:
			childPrefix := name
			if field.EnvPrefix != "" {
				childPrefix = r.fold(field.EnvPrefix)
			}
			if value, err = r.resolve(field.Fields, childPrefix, fieldPath); err != nil {
				return nil, err
			}
			ok = true
		case schema.Mapping:
			value, ok, err = r.mapping(name)
		case schema.List:
			value, ok, err = r.list(name)
		case schema.Union:
			value, ok = r.union(field.Members, name)
		default:
			value, ok = r.remaining[name]
		}
		if err != nil {
			return nil, &DecodeError{Field: fieldPath, Env: name, Err: err}
		}

		if ok {
			values[field.Key()] = value
		}
	}

	return values, nil
}

// mapping collects the variable with the exact name (as JSON object) and all variables
// prefixed with `<name>_`, then consumes them.
func (r resolver) mapping(name string) (map[string]any, bool, error) {
	values := make(map[string]any)
	if raw, ok := r.remaining[name]; ok {
		if err := json.Unmarshal([]byte(raw), &values); err != nil {
			return nil, false, fmt.Errorf("unmarshal mapping: %w", err)
		}
		if values == nil {
			values = make(map[string]any) // JSON null.
		}
		delete(r.remaining, name)
	}

	prefix := name + "_"
	for key, value := range r.remaining {
		subKey, found := strings.CutPrefix(key, prefix)
		if !found || subKey == "" {
			continue
		}
		values[subKey] = value
		delete(r.remaining, key)
	}

	return values, len(values) > 0, nil
}

func (r resolver) list(name string) (any, bool, error) {
	raw, ok := r.remaining[name]
	if !ok {
		return nil, false, nil
	}

	var value any
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		return nil, false, fmt.Errorf("unmarshal list: %w", err)
	}
	if value == nil {
		return nil, false, nil // JSON null.
	}

	return value, true, nil
}

// union tries complex members in order, and falls back to the raw string.
func (r resolver) union(members []schema.Type, name string) (any, bool) {
	raw, ok := r.remaining[name]
	if !ok {
		return nil, false
	}

	for _, member := range members {
		if !member.Shape.IsComplex() {
			continue
		}

		var value any
		if err := json.Unmarshal([]byte(raw), &value); err != nil {
			continue
		}
		switch value.(type) {
		case []any:
			if member.Shape == schema.List {
				return value, true
			}
		case map[string]any:
			if member.Shape == schema.Mapping || member.Shape == schema.Nested {
				return value, true
			}
		}
	}

	return raw, true
}

func (r resolver) fold(name string) string {
	if r.caseSensitive {
		return name
	}

	return strings.ToLower(name)
}

func join(prefix, name, separator string) string {
	if prefix == "" {
		return name
	}

	return prefix + separator + name
}

func environ() map[string]string {
	vars := make(map[string]string)
	for _, env := range os.Environ() {
		key, value, _ := strings.Cut(env, "=")
		vars[key] = value
	}

	return vars
}
