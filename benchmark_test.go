// Copyright (c) 2026 The settings authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package settings_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nil-go/settings"
	"github.com/nil-go/settings/schema"
)

func BenchmarkResolver_Resolve(b *testing.B) {
	resolver := settings.New(
		settings.WithVars(map[string]string{"APP_HTTP_HOST": "env.lan", "APP_EXTRA_X": "1"}),
		settings.WithEnvFile("testdata/app.env"),
		settings.WithConfigFile("testdata/config.json"),
		settings.WithKeywords(map[string]any{"version": "999"}),
	)
	object := schema.Object{
		{Name: "version"},
		{Name: "extra", Shape: schema.Mapping},
		{Name: "http", Shape: schema.Nested, Fields: schema.Object{{Name: "host"}, {Name: "bind"}}},
	}
	b.ResetTimer()

	var (
		values map[string]any
		err    error
	)
	for i := 0; i < b.N; i++ {
		values, err = resolver.Resolve(object)
	}
	b.StopTimer()

	require.NoError(b, err)
	require.Equal(b, "999", values["version"])
}

func BenchmarkResolver_Load(b *testing.B) {
	resolver := settings.New(
		settings.WithVars(map[string]string{"APP_HTTP_HOST": "env.lan"}),
		settings.WithEnvFile(""),
		settings.WithConfigFile("testdata/config.json"),
	)
	b.ResetTimer()

	var (
		config struct {
			HTTP struct {
				Host string
				Port int
			}
		}
		err error
	)
	for i := 0; i < b.N; i++ {
		err = resolver.Load(&config)
	}
	b.StopTimer()

	require.NoError(b, err)
	require.Equal(b, "env.lan", config.HTTP.Host)
}
