// Copyright (c) 2026 The settings authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package settings

import (
	"fmt"
	"log/slog"

	"github.com/nil-go/settings/internal/maps"
	"github.com/nil-go/settings/internal/slogx"
	"github.com/nil-go/settings/provider/dotenv"
	"github.com/nil-go/settings/provider/env"
	"github.com/nil-go/settings/provider/file"
	"github.com/nil-go/settings/provider/keyword"
	"github.com/nil-go/settings/schema"
)

// Source is the interface that wraps the basic Load method.
//
// Load returns the values of fields in the given object as a nested map[string]any,
// whose keys are field keys, like `{parent: {child: {key: 1}}}`.
// Fields without value should be omitted.
type Source interface {
	Load(object schema.Object) (map[string]any, error)
}

// Resolver resolves configuration from sources with precedence.
//
// To create a new Resolver, call [New].
type Resolver struct {
	handler slog.Handler

	envPrefix       string
	envFile         string
	envFileEncoding string
	caseSensitive   bool
	configFile      string
	configFormat    string
	keywords        map[string]any
	vars            map[string]string

	sources []Source
}

// New creates a new Resolver with the given Option(s).
//
// By default, configuration is resolved from following sources,
// each of which takes precedence over the sources after it:
//   - keywords provided by WithKeywords;
//   - environment variables with prefix `APP`;
//   - dotenv file `.env`;
//   - config file provided by WithConfigFile.
func New(opts ...Option) *Resolver {
	option := &options{
		envPrefix: "APP",
		envFile:   dotenv.DefaultPath,
	}
	for _, opt := range opts {
		opt(option)
	}

	return (*Resolver)(option)
}

// Resolve resolves the values of fields in the given object from all sources,
// and deep merges them so that values from a source override the values from sources after it,
// while nested maps are merged key by key.
//
// The default sources are created for each call, so it is safe to call concurrently.
func (r *Resolver) Resolve(object schema.Object) (map[string]any, error) {
	layers, err := r.load(object)
	if err != nil {
		return nil, err
	}

	return merge(layers), nil
}

type layer struct {
	source Source
	values map[string]any
}

// merge merges values of layers in reverse order, so the first layer has the highest precedence.
func merge(layers []layer) map[string]any {
	values := make(map[string]any)
	for i := len(layers) - 1; i >= 0; i-- {
		maps.Merge(values, layers[i].values)
	}

	return values
}

func (r *Resolver) load(object schema.Object) ([]layer, error) {
	if err := object.Validate(); err != nil {
		return nil, fmt.Errorf("invalid schema: %w", err)
	}

	sources, err := r.newSources()
	if err != nil {
		return nil, err
	}

	result := make([]layer, 0, len(sources))
	for _, source := range sources {
		values, err := source.Load(object)
		if err != nil {
			return nil, fmt.Errorf("load %v: %w", source, err)
		}
		result = append(result, layer{source: source, values: values})
	}

	return result, nil
}

func (r *Resolver) newSources() ([]Source, error) {
	if len(r.sources) > 0 {
		return r.sources, nil
	}

	// Warnings (e.g. deprecated field) are only logged once per resolution
	// even if the field is visited by several sources.
	logger := slog.New(slogx.Once(r.logHandler()))

	sources := []Source{
		keyword.New(r.keywords),
		env.New(
			env.WithPrefix(r.envPrefix),
			env.WithCaseSensitive(r.caseSensitive),
			env.WithVars(r.vars),
			env.WithLogger(logger),
		),
	}

	if r.envFile != "" {
		dotEnv, err := dotenv.New(
			r.envFile,
			dotenv.WithPrefix(r.envPrefix),
			dotenv.WithCaseSensitive(r.caseSensitive),
			dotenv.WithEncoding(r.envFileEncoding),
			dotenv.WithLogger(logger),
		)
		if err != nil {
			return nil, fmt.Errorf("load dotenv file: %w", err)
		}
		sources = append(sources, dotEnv)
	}

	if r.configFile != "" {
		configFile, err := file.New(
			r.configFile,
			file.WithFormatHint(r.configFormat),
			file.IgnoreFileNotExist(),
			file.WithLogger(logger),
		)
		if err != nil {
			return nil, fmt.Errorf("load config file: %w", err)
		}
		sources = append(sources, configFile)
	}

	return sources, nil
}

func (r *Resolver) logHandler() slog.Handler {
	if r.handler == nil {
		return slog.Default().Handler()
	}

	return r.handler
}
