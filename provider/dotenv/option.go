// Copyright (c) 2026 The settings authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package dotenv

import (
	"io"
	"log/slog"
)

// WithPrefix provides the prefix of variable names, see env.WithPrefix.
func WithPrefix(prefix string) Option {
	return func(options *options) {
		options.prefix = prefix
	}
}

// WithCaseSensitive enables case-sensitive variable names, see env.WithCaseSensitive.
func WithCaseSensitive(caseSensitive bool) Option {
	return func(options *options) {
		options.caseSensitive = caseSensitive
	}
}

// WithEncoding provides the IANA name of the file's character encoding, e.g. `ISO-8859-1`.
//
// By default, the file is read as UTF-8.
func WithEncoding(encoding string) Option {
	return func(options *options) {
		options.encoding = encoding
	}
}

// WithParser provides the function used to parse the file content.
// If the parser is nil, the file is ignored with a warning.
//
// The default parser is godotenv.Parse.
func WithParser(parser func(io.Reader) (map[string]string, error)) Option {
	return func(options *options) {
		options.parser = parser
	}
}

// WithLogger provides the slog.Logger for DotEnv.
//
// By default, it uses slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(options *options) {
		options.logger = logger
	}
}

type (
	// Option configures a DotEnv with specific options.
	Option  func(*options)
	options struct {
		prefix        string
		caseSensitive bool
		encoding      string
		parser        func(io.Reader) (map[string]string, error)
		logger        *slog.Logger
	}
)

func apply(opts []Option) options {
	option := &options{
		parser: defaultParser,
	}
	for _, opt := range opts {
		opt(option)
	}
	if option.logger == nil {
		option.logger = slog.Default()
	}

	return *option
}
