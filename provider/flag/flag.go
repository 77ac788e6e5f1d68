// Copyright (c) 2026 The settings authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

// Package flag loads configuration from command-line flags.
//
// Flag walks the schema and loads each field from the flag named with the dotted keys
// of the field, e.g. the field `port` of the nested field `http` is loaded from `-http.port`.
// Only flags explicitly set on the command line are loaded, so that default values of flags
// do not override values from other sources.
package flag

import (
	"flag"

	"github.com/nil-go/settings/schema"
)

// Flag is a source that loads configuration from flags.
//
// To create a new Flag, call [New].
type Flag struct {
	set    *flag.FlagSet
	prefix string
}

// New creates a Flag with the given Option(s).
//
// The flag set must be parsed before Load is called.
func New(opts ...Option) Flag {
	option := &options{}
	for _, opt := range opts {
		opt(option)
	}
	if option.set == nil {
		option.set = flag.CommandLine
	}

	return Flag(*option)
}

// Load returns the values of fields in the given object which have flags set.
// Values are returned as raw strings.
func (f Flag) Load(object schema.Object) (map[string]any, error) {
	set := make(map[string]string)
	f.set.Visit(func(flg *flag.Flag) {
		set[flg.Name] = flg.Value.String()
	})

	return load(object, set, f.prefix), nil
}

func load(object schema.Object, set map[string]string, path string) map[string]any {
	values := make(map[string]any)
	for _, field := range object {
		name := field.Key()
		if path != "" {
			name = path + "." + name
		}

		if field.Shape == schema.Nested {
			if nested := load(field.Fields, set, name); len(nested) > 0 {
				values[field.Key()] = nested
			}

			continue
		}
		if value, ok := set[name]; ok {
			values[field.Key()] = value
		}
	}

	return values
}

func (f Flag) String() string {
	if f.prefix == "" {
		return "flag"
	}

	return "flag:" + f.prefix
}
