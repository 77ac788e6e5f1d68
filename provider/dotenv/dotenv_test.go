// Copyright (c) 2026 The settings authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package dotenv_test

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nil-go/settings/provider/dotenv"
	"github.com/nil-go/settings/schema"
)

func TestRead(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		description string
		path        string
		opts        []dotenv.Option
		expected    map[string]string
		log         string
		err         string
	}{
		{
			description: "file",
			path:        "testdata/app.env",
			expected: map[string]string{
				"APP_HTTP_HOST":  "myname.lan",
				"APP_HTTP_HTTP2": "true",
				"APP_PORT":       "10001",
			},
		},
		{
			description: "empty path",
			path:        "",
			expected:    map[string]string{},
		},
		{
			description: "default file (not exist)",
			path:        ".env",
			expected:    map[string]string{},
		},
		{
			description: "file (not exist)",
			path:        "testdata/not_found.env",
			expected:    map[string]string{},
			log:         "level=WARN msg=\"Dotenv file does not exist.\" file=testdata/not_found.env\n",
		},
		{
			description: "no parser",
			path:        "testdata/app.env",
			opts:        []dotenv.Option{dotenv.WithParser(nil)},
			expected:    map[string]string{},
			log:         "level=WARN msg=\"Dotenv parser is not available.\" file=testdata/app.env\n",
		},
		{
			description: "no parser (not exist)",
			path:        "testdata/not_found.env",
			opts:        []dotenv.Option{dotenv.WithParser(nil)},
			expected:    map[string]string{},
			log:         "level=WARN msg=\"Dotenv file does not exist.\" file=testdata/not_found.env\n",
		},
		{
			description: "parse error",
			path:        "testdata/app.env",
			opts: []dotenv.Option{
				dotenv.WithParser(func(io.Reader) (map[string]string, error) {
					return nil, errors.New("parse error")
				}),
			},
			err: "parse dotenv file: parse error",
		},
		{
			description: "unknown encoding",
			path:        "testdata/app.env",
			opts:        []dotenv.Option{dotenv.WithEncoding("no-such-encoding")},
			err:         "lookup encoding no-such-encoding: ianaindex: invalid encoding name",
		},
		{
			description: "directory",
			path:        "testdata",
			err:         "read dotenv file: read testdata: is a directory",
		},
	}

	for _, testcase := range testcases {
		t.Run(testcase.description, func(t *testing.T) {
			t.Parallel()

			buf := new(bytes.Buffer)
			opts := append([]dotenv.Option{dotenv.WithLogger(slog.New(logHandler(buf)))}, testcase.opts...)
			vars, err := dotenv.Read(testcase.path, opts...)
			if testcase.err != "" {
				require.EqualError(t, err, testcase.err)

				return
			}
			require.NoError(t, err)
			require.Equal(t, testcase.expected, vars)
			require.Equal(t, testcase.log, buf.String())
		})
	}
}

func TestRead_encoding(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "latin1.env")
	require.NoError(t, os.WriteFile(path, []byte("APP_NAME=caf\xe9\n"), 0o600))

	vars, err := dotenv.Read(path, dotenv.WithEncoding("ISO-8859-1"))
	require.NoError(t, err)
	require.Equal(t, map[string]string{"APP_NAME": "café"}, vars)
}

func TestDotEnv_Load(t *testing.T) {
	t.Parallel()

	loader, err := dotenv.New("testdata/app.env", dotenv.WithPrefix("APP"))
	require.NoError(t, err)

	values, err := loader.Load(schema.Object{
		{Name: "port"},
		{Name: "http", Shape: schema.Nested, Fields: schema.Object{{Name: "host"}, {Name: "http2"}, {Name: "bind"}}},
	})
	require.NoError(t, err)
	require.Equal(t, map[string]any{
		"port": "10001",
		"http": map[string]any{"host": "myname.lan", "http2": "true"},
	}, values)
}

func TestDotEnv_Load_caseSensitive(t *testing.T) {
	t.Parallel()

	loader, err := dotenv.New("testdata/app.env", dotenv.WithPrefix("app"), dotenv.WithCaseSensitive(true))
	require.NoError(t, err)

	values, err := loader.Load(schema.Object{{Name: "PORT"}})
	require.NoError(t, err)
	require.Equal(t, map[string]any{}, values)
}

func TestNew_error(t *testing.T) {
	t.Parallel()

	_, err := dotenv.New("testdata", dotenv.WithLogger(slog.New(logHandler(new(bytes.Buffer)))))
	require.EqualError(t, err, "read dotenv file: read testdata: is a directory")
}

func TestDotEnv_String(t *testing.T) {
	t.Parallel()

	loader, err := dotenv.New("testdata/app.env")
	require.NoError(t, err)
	require.Equal(t, "dotenv:testdata/app.env", loader.String())
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
