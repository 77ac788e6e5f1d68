// Copyright (c) 2026 The settings authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package fs

import "log/slog"

// WithFormatHint provides the format name (e.g. `yaml`), which is used
// instead of the file extension to select the format.
func WithFormatHint(hint string) Option {
	return func(options *options) {
		options.hint = hint
	}
}

// IgnoreFileNotExist ignores the error and return an empty map instead if the file is not found.
func IgnoreFileNotExist() Option {
	return func(options *options) {
		options.ignoreNotExist = true
	}
}

// WithLogger provides the slog.Logger for FS.
//
// By default, it uses slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(options *options) {
		options.logger = logger
	}
}

type (
	// Option configures a FS with specific options.
	Option  func(options *options)
	options FS
)
