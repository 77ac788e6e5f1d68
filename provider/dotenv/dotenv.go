// Copyright (c) 2026 The settings authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

// Package dotenv loads configuration from a dotenv file.
//
// The file contains `KEY=VALUE` lines, which are treated as environment variables
// and loaded the same way as package env does.
//
// Reading the file is best-effort: a missing file contributes no variables.
// It logs a warning if the missing file is not the default `.env`.
package dotenv

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"

	"github.com/nil-go/settings/internal"
	"github.com/nil-go/settings/provider/env"
	"github.com/nil-go/settings/schema"
)

// DefaultPath is the conventional path of the dotenv file.
const DefaultPath = ".env"

// DotEnv is a source that loads configuration from a dotenv file.
//
// To create a new DotEnv, call [New].
type DotEnv struct {
	env  env.Env
	path string
}

// New creates a DotEnv with the given path and Option(s).
// It reads the file immediately, see [Read].
func New(path string, opts ...Option) (DotEnv, error) {
	option := apply(opts)
	vars, err := read(path, option)
	if err != nil {
		return DotEnv{}, err
	}

	return DotEnv{
		env: env.New(
			env.WithPrefix(option.prefix),
			env.WithCaseSensitive(option.caseSensitive),
			env.WithVars(vars),
			env.WithLogger(option.logger),
		),
		path: path,
	}, nil
}

// Load returns the values of fields in the given object which have variables in the dotenv file.
func (d DotEnv) Load(object schema.Object) (map[string]any, error) {
	return d.env.Load(object) //nolint:wrapcheck
}

func (d DotEnv) String() string {
	return "dotenv:" + d.path
}

// Read reads the dotenv file with the given path into a flat map.
//
// It returns an empty map if the file does not exist, or no parser is available.
// Other errors while reading or parsing the file are returned.
func Read(path string, opts ...Option) (map[string]string, error) {
	return read(path, apply(opts))
}

func read(path string, option options) (map[string]string, error) {
	if path == "" {
		return make(map[string]string), nil
	}

	expanded := internal.ExpandHome(path)
	content, err := os.ReadFile(expanded)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		if filepath.Clean(path) != DefaultPath {
			option.logger.Warn("Dotenv file does not exist.", "file", path)
		}

		return make(map[string]string), nil
	case err != nil:
		return nil, fmt.Errorf("read dotenv file: %w", err)
	}

	if option.parser == nil {
		option.logger.Warn("Dotenv parser is not available.", "file", path)

		return make(map[string]string), nil
	}

	var reader io.Reader = bytes.NewReader(content)
	if option.encoding != "" {
		encoding, err := ianaindex.IANA.Encoding(option.encoding)
		if err != nil {
			return nil, fmt.Errorf("lookup encoding %s: %w", option.encoding, err)
		}
		if encoding == nil {
			return nil, fmt.Errorf("lookup encoding %s: %w", option.encoding, errUnsupportedEncoding)
		}
		reader = transform.NewReader(reader, encoding.NewDecoder())
	}

	vars, err := option.parser(reader)
	if err != nil {
		return nil, fmt.Errorf("parse dotenv file: %w", err)
	}

	return vars, nil
}

var errUnsupportedEncoding = errors.New("encoding is not supported")

// defaultParser parses dotenv content with godotenv.
func defaultParser(reader io.Reader) (map[string]string, error) {
	return godotenv.Parse(reader) //nolint:wrapcheck
}
