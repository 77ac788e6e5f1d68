// Copyright (c) 2026 The settings authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package env_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nil-go/settings/provider/env"
	"github.com/nil-go/settings/schema"
)

func BenchmarkNew(b *testing.B) {
	var loader env.Env
	for i := 0; i < b.N; i++ {
		loader = env.New()
	}
	b.StopTimer()

	values, err := loader.Load(schema.Object{{Name: "path"}})
	require.NoError(b, err)
	require.NotEmpty(b, values["path"])
}

func BenchmarkLoad(b *testing.B) {
	loader := env.New(env.WithPrefix("APP"), env.WithVars(map[string]string{
		"APP_HOST":          "localhost",
		"APP_HTTP_PORT":     "8080",
		"APP_HTTP_LABELS_A": "a",
		"APP_HTTP_LABELS_B": "b",
	}))
	object := schema.Object{
		{Name: "host"},
		{
			Name:   "http",
			Shape:  schema.Nested,
			Fields: schema.Object{{Name: "port"}, {Name: "labels", Shape: schema.Mapping}},
		},
	}
	b.ResetTimer()

	var (
		values map[string]any
		err    error
	)
	for i := 0; i < b.N; i++ {
		values, err = loader.Load(object)
	}
	b.StopTimer()

	require.NoError(b, err)
	require.Equal(b, "localhost", values["host"])
}
