// Copyright (c) 2026 The settings authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package file_test

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nil-go/settings/format"
	"github.com/nil-go/settings/provider/file"
	"github.com/nil-go/settings/schema"
)

func TestFile_Load(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		description string
		path        string
		opts        []file.Option
		expected    map[string]any
		log         string
		err         string
	}{
		{
			description: "json",
			path:        "testdata/config.json",
			expected:    map[string]any{"k": "v", "p": map[string]any{"k": "v"}},
		},
		{
			description: "yaml",
			path:        "testdata/config.yml",
			expected:    map[string]any{"k": "v", "p": map[string]any{"k": "v"}},
		},
		{
			description: "format hint",
			path:        "testdata/config.conf",
			opts:        []file.Option{file.WithFormatHint("toml")},
			expected:    map[string]any{"k": "v"},
		},
		{
			description: "explicit format not acceptable",
			path:        "testdata/config.json",
			opts:        []file.Option{file.WithFormat(format.YAML)},
			expected:    map[string]any{},
		},
		{
			description: "explicit format with hint",
			path:        "testdata/config.conf",
			opts:        []file.Option{file.WithFormat(format.TOML), file.WithFormatHint("tml")},
			expected:    map[string]any{"k": "v"},
		},
		{
			description: "file (not exist)",
			path:        "not_found.json",
			err:         "read file: open not_found.json: ",
		},
		{
			description: "file (ignore not exist)",
			path:        "not_found.json",
			opts:        []file.Option{file.IgnoreFileNotExist()},
			expected:    map[string]any{},
			log:         "level=WARN msg=\"Config file does not exist.\" file=not_found.json\n",
		},
		{
			description: "unmarshal error",
			path:        "testdata/config.json",
			opts: []file.Option{
				file.WithFormat(format.Format{
					Name:       "JSON",
					Extensions: []string{"json"},
					Unmarshal: func([]byte, any) error {
						return errors.New("unmarshal error")
					},
				}),
			},
			err: "parse file testdata/config.json: unmarshal JSON: unmarshal error",
		},
		{
			description: "syntax error",
			path:        "testdata/config.yml",
			opts:        []file.Option{file.WithFormat(format.JSON), file.WithFormatHint("json")},
			err:         "parse file testdata/config.yml: unmarshal JSON: invalid character 'k' looking for beginning of value",
		},
	}

	for _, testcase := range testcases {
		t.Run(testcase.description, func(t *testing.T) {
			t.Parallel()

			buf := new(bytes.Buffer)
			opts := append([]file.Option{file.WithLogger(slog.New(logHandler(buf)))}, testcase.opts...)
			loader, err := file.New(testcase.path, opts...)
			require.NoError(t, err)

			values, err := loader.Load(schema.Object{})
			if testcase.err != "" {
				require.Error(t, err)
				require.True(t, strings.HasPrefix(err.Error(), testcase.err), err.Error())

				return
			}
			require.NoError(t, err)
			require.Equal(t, testcase.expected, values)
			require.Equal(t, testcase.log, buf.String())
		})
	}
}

func TestNew_error(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		description string
		path        string
		opts        []file.Option
		err         error
		message     string
	}{
		{
			description: "unsupported format",
			path:        "config.ini",
			err:         format.ErrUnsupportedFormat,
			message:     "no reader for this file: config.ini",
		},
		{
			description: "missing dependency",
			path:        "config.ini",
			opts:        []file.Option{file.WithFormat(format.Format{Name: "INI", Extensions: []string{"ini"}})},
			err:         format.ErrMissingDependency,
			message:     "INI parser for config.ini: missing optional dependency",
		},
	}

	for _, testcase := range testcases {
		t.Run(testcase.description, func(t *testing.T) {
			t.Parallel()

			_, err := file.New(testcase.path, testcase.opts...)
			require.ErrorIs(t, err, testcase.err)
			require.EqualError(t, err, testcase.message)
		})
	}
}

func TestNew_panic(t *testing.T) {
	t.Parallel()

	require.PanicsWithValue(t, "cannot create File with empty path", func() {
		_, _ = file.New("")
	})
}

func TestFile_String(t *testing.T) {
	t.Parallel()

	loader, err := file.New("config.json")
	require.NoError(t, err)
	require.Equal(t, "file:config.json", loader.String())
}

func logHandler(buf *bytes.Buffer) *slog.TextHandler {
	return slog.NewTextHandler(buf, &slog.HandlerOptions{
		ReplaceAttr: func(groups []string, attr slog.Attr) slog.Attr {
			if len(groups) == 0 && attr.Key == slog.TimeKey {
				return slog.Attr{}
			}

			return attr
		},
	})
}
