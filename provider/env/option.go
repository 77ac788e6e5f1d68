// Copyright (c) 2026 The settings authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package env

import "log/slog"

// WithPrefix provides the prefix of environment variable names.
// The name of a field is `<prefix>_<name>`, or `<name>` if the prefix is empty.
//
// By default, it has no prefix.
func WithPrefix(prefix string) Option {
	return func(options *options) {
		options.prefix = prefix
	}
}

// WithCaseSensitive enables case-sensitive environment variable names.
//
// By default, the names are case-insensitive.
func WithCaseSensitive(caseSensitive bool) Option {
	return func(options *options) {
		options.caseSensitive = caseSensitive
	}
}

// WithVars provides the variables which Env loads from instead of the process environment.
func WithVars(vars map[string]string) Option {
	return func(options *options) {
		options.vars = vars
	}
}

// WithLogger provides the slog.Logger for Env.
//
// By default, it uses slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(options *options) {
		options.logger = logger
	}
}

type (
	// Option configures an Env with specific options.
	Option  func(*options)
	options Env
)
