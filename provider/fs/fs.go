// Copyright (c) 2026 The settings authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

// Package fs loads configuration from a file in fs.FS, e.g. embed.FS.
//
// FS reads the file with the given path from the fs.FS and returns
// a nested map[string]any that is parsed in the format of the file.
// The format is selected the same way as package file does.
package fs

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/nil-go/settings/format"
	"github.com/nil-go/settings/schema"
)

// FS is a source that loads configuration from a file in fs.FS.
//
// To create a new FS, call [New].
type FS struct {
	logger         *slog.Logger
	fs             fs.FS
	path           string
	hint           string
	format         format.Format
	ignoreNotExist bool
}

// New creates a FS with the given fs.FS, path and Option(s).
//
// It returns format.ErrUnsupportedFormat if no format accepts the file,
// or format.ErrMissingDependency if the parser of the format is not available.
//
// It panics if the fs is nil or the path is empty.
func New(fsys fs.FS, path string, opts ...Option) (FS, error) {
	if fsys == nil {
		panic("cannot create FS with nil fs")
	}
	if path == "" {
		panic("cannot create FS with empty path")
	}

	option := &options{
		fs:   fsys,
		path: path,
	}
	for _, opt := range opts {
		opt(option)
	}
	if option.logger == nil {
		option.logger = slog.Default()
	}

	selected, err := format.Select(path, option.hint)
	if err != nil {
		return FS{}, err //nolint:wrapcheck
	}
	if !selected.Available() {
		return FS{}, fmt.Errorf("%s parser for %s: %w", selected, path, format.ErrMissingDependency)
	}
	option.format = selected

	return FS(*option), nil
}

// Load reads and parses the file. The content is returned verbatim, without key transformation.
func (f FS) Load(schema.Object) (map[string]any, error) {
	content, err := fs.ReadFile(f.fs, f.path)
	if err != nil {
		if f.ignoreNotExist && errors.Is(err, fs.ErrNotExist) {
			f.logger.Warn("Config file does not exist.", "file", f.String())

			return make(map[string]any), nil
		}

		return nil, fmt.Errorf("read file: %w", err)
	}

	values, err := f.format.Parse(content)
	if err != nil {
		return nil, fmt.Errorf("parse file %s: %w", f.path, err)
	}

	return values, nil
}

func (f FS) String() string {
	return "fs:" + f.path
}
