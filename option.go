// Copyright (c) 2026 The settings authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package settings

import "log/slog"

// WithEnvPrefix provides the prefix of environment variable names.
// An empty prefix derives the names from field names only.
//
// The default prefix is `APP`.
func WithEnvPrefix(prefix string) Option {
	return func(options *options) {
		options.envPrefix = prefix
	}
}

// WithEnvFile provides the path of the dotenv file. An empty path disables the dotenv file.
//
// The default path is `.env`, which is ignored silently if it does not exist.
func WithEnvFile(path string) Option {
	return func(options *options) {
		options.envFile = path
	}
}

// WithEnvFileEncoding provides the IANA name of the dotenv file's character encoding.
//
// By default, the dotenv file is read as UTF-8.
func WithEnvFileEncoding(encoding string) Option {
	return func(options *options) {
		options.envFileEncoding = encoding
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

// WithConfigFile provides the path of the config file, which has the lowest precedence.
// It is ignored with a warning if it does not exist.
//
// By default, no config file is loaded.
func WithConfigFile(path string) Option {
	return func(options *options) {
		options.configFile = path
	}
}

// WithConfigFormat provides the format name of the config file (e.g. `yaml`),
// which is used instead of the file extension.
func WithConfigFormat(format string) Option {
	return func(options *options) {
		options.configFormat = format
	}
}

// WithKeywords provides the values which take precedence over all other sources.
// The keys are field keys, and the values are used as they are.
func WithKeywords(keywords map[string]any) Option {
	return func(options *options) {
		options.keywords = keywords
	}
}

// WithSources replaces the default sources with the given sources.
// Each source takes precedence over the sources after it.
func WithSources(sources ...Source) Option {
	return func(options *options) {
		options.sources = append(options.sources, sources...)
	}
}

// WithVars provides the environment variables instead of the process environment.
func WithVars(vars map[string]string) Option {
	return func(options *options) {
		options.vars = vars
	}
}

// WithLogHandler provides the slog.Handler for logs from resolution.
//
// By default, it uses the handler of slog.Default().
func WithLogHandler(handler slog.Handler) Option {
	return func(options *options) {
		options.handler = handler
	}
}

type (
	// Option configures a Resolver with specific options.
	Option  func(*options)
	options Resolver
)
