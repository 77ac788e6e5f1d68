// Copyright (c) 2026 The settings authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package file

import (
	"log/slog"

	"github.com/nil-go/settings/format"
)

// WithFormat binds the File to the given format instead of selecting it from the path.
// The file is only loaded if the format accepts it.
func WithFormat(format format.Format) Option {
	return func(options *options) {
		options.format = format
	}
}

// WithFormatHint provides the format name (e.g. `yaml`), which is used
// instead of the file extension to select the format.
func WithFormatHint(hint string) Option {
	return func(options *options) {
		options.hint = hint
	}
}

// IgnoreFileNotExist ignores the error and return an empty map instead if the configuration file is not found.
func IgnoreFileNotExist() Option {
	return func(options *options) {
		options.ignoreNotExist = true
	}
}

// WithLogger provides the slog.Logger for File.
//
// By default, it uses slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(options *options) {
		options.logger = logger
	}
}

type (
	// Option configures a File with specific options.
	Option  func(options *options)
	options File
)
