// Copyright (c) 2026 The settings authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package pflag

import "github.com/spf13/pflag"

// WithPrefix provides the prefix of flag names.
//
// E.g. if the given prefix is "app", the field `port` is loaded from the flag `--app.port`.
func WithPrefix(prefix string) Option {
	return func(options *options) {
		options.prefix = prefix
	}
}

// WithFlagSet provides the flag set that loads configuration from.
//
// The default flag set is [pflag.CommandLine].
func WithFlagSet(set *pflag.FlagSet) Option {
	return func(options *options) {
		options.set = set
	}
}

type (
	// Option configures a PFlag with specific options.
	Option  func(*options)
	options PFlag
)
