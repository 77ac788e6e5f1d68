// Copyright (c) 2026 The settings authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package flag_test

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/require"

	sflag "github.com/nil-go/settings/provider/flag"
	"github.com/nil-go/settings/schema"
)

func TestFlag_Load(t *testing.T) {
	t.Parallel()

	object := schema.Object{
		{Name: "debug"},
		{Name: "level"},
		{Name: "http", Shape: schema.Nested, Fields: schema.Object{
			{Name: "host"},
			{Name: "port"},
		}},
	}

	testcases := []struct {
		description string
		args        []string
		prefix      string
		expected    map[string]any
	}{
		{
			description: "no flag set",
			expected:    map[string]any{},
		},
		{
			description: "flags set",
			args:        []string{"-debug", "-http.port", "8080"},
			expected: map[string]any{
				"debug": "true",
				"http":  map[string]any{"port": "8080"},
			},
		},
		{
			description: "default value",
			args:        []string{"-level", "info"},
			expected:    map[string]any{"level": "info"},
		},
		{
			description: "with prefix",
			args:        []string{"-app.http.host", "example.com", "-http.port", "8080"},
			prefix:      "app",
			expected: map[string]any{
				"http": map[string]any{"host": "example.com"},
			},
		},
	}

	for _, testcase := range testcases {
		t.Run(testcase.description, func(t *testing.T) {
			t.Parallel()

			set := flag.NewFlagSet("test", flag.ContinueOnError)
			set.Bool("debug", false, "")
			set.String("level", "info", "")
			set.String("http.host", "localhost", "")
			set.Int("http.port", 80, "")
			set.String("app.http.host", "", "")
			require.NoError(t, set.Parse(testcase.args))

			values, err := sflag.New(sflag.WithFlagSet(set), sflag.WithPrefix(testcase.prefix)).Load(object)
			require.NoError(t, err)
			require.Equal(t, testcase.expected, values)
		})
	}
}

func TestFlag_String(t *testing.T) {
	t.Parallel()

	require.Equal(t, "flag", sflag.New().String())
	require.Equal(t, "flag:app", sflag.New(sflag.WithPrefix("app")).String())
}
