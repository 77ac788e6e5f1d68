// Copyright (c) 2026 The settings authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

// Package pflag loads configuration from flags defined by [spf13/pflag].
//
// PFlag walks the schema and loads each field from the flag named with the dotted keys
// of the field, e.g. the field `port` of the nested field `http` is loaded from `--http.port`.
// Only flags changed on the command line are loaded, so that default values of flags
// do not override values from other sources.
//
// [spf13/pflag]: https://github.com/spf13/pflag
package pflag

import (
	"github.com/spf13/pflag"

	"github.com/nil-go/settings/schema"
)

// PFlag is a source that loads configuration from flags defined by spf13/pflag.
//
// To create a new PFlag, call [New].
type PFlag struct {
	set    *pflag.FlagSet
	prefix string
}

// New creates a PFlag with the given Option(s).
//
// The flag set must be parsed before Load is called.
func New(opts ...Option) PFlag {
	option := &options{}
	for _, opt := range opts {
		opt(option)
	}
	if option.set == nil {
		option.set = pflag.CommandLine
	}

	return PFlag(*option)
}

// Load returns the values of fields in the given object which have flags changed.
// Values of slice flags are returned as []any, others as raw strings.
func (f PFlag) Load(object schema.Object) (map[string]any, error) {
	changed := make(map[string]any)
	f.set.Visit(func(flg *pflag.Flag) {
		if slice, ok := flg.Value.(pflag.SliceValue); ok {
			values := slice.GetSlice()
			list := make([]any, len(values))
			for i, value := range values {
				list[i] = value
			}
			changed[flg.Name] = list

			return
		}
		changed[flg.Name] = flg.Value.String()
	})

	return load(object, changed, f.prefix), nil
}

func load(object schema.Object, changed map[string]any, path string) map[string]any {
	values := make(map[string]any)
	for _, field := range object {
		name := field.Key()
		if path != "" {
			name = path + "." + name
		}

		if field.Shape == schema.Nested {
			if nested := load(field.Fields, changed, name); len(nested) > 0 {
				values[field.Key()] = nested
			}

			continue
		}
		if value, ok := changed[name]; ok {
			values[field.Key()] = value
		}
	}

	return values
}

func (f PFlag) String() string {
	if f.prefix == "" {
		return "pflag"
	}

	return "pflag:" + f.prefix
}
