// Copyright (c) 2026 The settings authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

// Package format detects the format of configuration files and parses them.
//
// The recognized formats and their extensions are:
//   - JSON: json, js
//   - YAML: yaml, yml
//   - TOML: toml, tml
//   - HCL2: hcl, hcl2, tf
//
// Select binds a file to the first acceptable format in the order above.
package format

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
)

// Format is a configuration file format.
type Format struct {
	// Name is the human-readable name of the format.
	Name string
	// Extensions are the file extensions (without the leading dot) of the format.
	Extensions []string
	// Unmarshal parses the file content into a map[string]any.
	// A nil Unmarshal means the parser of the format is not available.
	Unmarshal func([]byte, any) error
}

// Detect returns the format name derived from the extension of the given path,
// without the leading dot. It returns empty string if the path has no extension.
func Detect(path string) string {
	return strings.TrimPrefix(filepath.Ext(path), ".")
}

// IsAcceptable reports whether the file at path can be read in the format.
// The hint takes precedence over the format detected from path if it's not empty.
func (f Format) IsAcceptable(path, hint string) bool {
	if path == "" {
		return false
	}

	if hint == "" {
		hint = Detect(path)
	}
	if hint == "" {
		return false
	}

	return slices.Contains(f.Extensions, strings.ToLower(hint))
}

// Available reports whether the parser of the format is available.
func (f Format) Available() bool {
	return f.Unmarshal != nil
}

// Parse parses the given content into a nested map[string]any.
func (f Format) Parse(content []byte) (map[string]any, error) {
	if !f.Available() {
		return nil, fmt.Errorf("%s: %w", f.Name, ErrMissingDependency)
	}

	var values map[string]any
	if err := f.Unmarshal(content, &values); err != nil {
		return nil, fmt.Errorf("unmarshal %s: %w", f.Name, err)
	}
	if values == nil {
		values = make(map[string]any)
	}

	return values, nil
}

func (f Format) String() string {
	return f.Name
}

// Formats returns the built-in formats in the order they are selected.
func Formats() []Format {
	return []Format{JSON, YAML, TOML, HCL2}
}

// Select returns the first built-in format that accepts the file at path.
// It returns ErrUnsupportedFormat if none of them accepts it.
func Select(path, hint string) (Format, error) {
	for _, format := range Formats() {
		if format.IsAcceptable(path, hint) {
			return format, nil
		}
	}

	return Format{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
}

var (
	// ErrUnsupportedFormat is returned when no format accepts the configuration file.
	ErrUnsupportedFormat = errors.New("no reader for this file")
	// ErrMissingDependency is returned when the parser of the format is not available.
	ErrMissingDependency = errors.New("missing optional dependency")

	errUnsupportedTarget = errors.New("unsupported unmarshal target")
)
