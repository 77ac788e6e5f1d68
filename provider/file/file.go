// Copyright (c) 2026 The settings authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

// Package file loads configuration from OS file.
//
// File loads a file with the given path from the OS file system and returns
// a nested map[string]any that is parsed in the format of the file.
// The format is detected from the file extension, or provided explicitly
// with WithFormatHint or WithFormat. See package format for supported formats.
//
// By default, it returns error while loading if the file is not found.
// IgnoreFileNotExist can override the behavior to return an empty map[string]any.
package file

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/nil-go/settings/format"
	"github.com/nil-go/settings/internal"
	"github.com/nil-go/settings/schema"
)

// File is a source that loads configuration from a OS file.
//
// To create a new File, call [New].
type File struct {
	logger         *slog.Logger
	path           string
	hint           string
	format         format.Format
	ignoreNotExist bool
}

// New creates a File with the given path and Option(s).
//
// If no format is provided with WithFormat, it selects the format with format.Select,
// and returns format.ErrUnsupportedFormat if no format accepts the file.
// It returns format.ErrMissingDependency if the parser of the format is not available.
//
// It panics if the path is empty.
func New(path string, opts ...Option) (File, error) {
	if path == "" {
		panic("cannot create File with empty path")
	}

	option := &options{
		path: path,
	}
	for _, opt := range opts {
		opt(option)
	}
	if option.logger == nil {
		option.logger = slog.Default()
	}
	if option.format.Name == "" {
		selected, err := format.Select(path, option.hint)
		if err != nil {
			return File{}, err //nolint:wrapcheck
		}
		option.format = selected
	}
	if !option.format.Available() {
		return File{}, fmt.Errorf("%s parser for %s: %w", option.format, path, format.ErrMissingDependency)
	}

	return File(*option), nil
}

// Load reads and parses the file. The content is returned verbatim, without key transformation.
// It returns an empty map if the file is not acceptable by the format of the File.
func (f File) Load(schema.Object) (map[string]any, error) {
	if !f.format.IsAcceptable(f.path, f.hint) {
		return make(map[string]any), nil
	}

	bytes, err := os.ReadFile(internal.ExpandHome(f.path))
	if err != nil {
		if f.ignoreNotExist && errors.Is(err, fs.ErrNotExist) {
			f.logger.Warn("Config file does not exist.", "file", f.path)

			return make(map[string]any), nil
		}

		return nil, fmt.Errorf("read file: %w", err)
	}

	values, err := f.format.Parse(bytes)
	if err != nil {
		return nil, fmt.Errorf("parse file %s: %w", f.path, err)
	}

	return values, nil
}

// Path returns the path of the file with `~` expanded.
func (f File) Path() string {
	return internal.ExpandHome(f.path)
}

func (f File) String() string {
	return "file:" + f.path
}
