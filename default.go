// Copyright (c) 2026 The settings authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package settings

import (
	"sync/atomic"

	"github.com/nil-go/settings/schema"
)

// Load resolves configuration for the struct pointed to by target with the default Resolver.
// See [Resolver.Load].
func Load(target any) error {
	return defaultResolver.Load().Load(target)
}

// Resolve resolves the values of fields in the given object with the default Resolver.
// See [Resolver.Resolve].
func Resolve(object schema.Object) (map[string]any, error) {
	return defaultResolver.Load().Resolve(object)
}

// SetDefault makes r the default [Resolver].
// After this call, the settings package's top functions (e.g. settings.Load)
// will resolve with r.
//
// It panics if r is nil.
func SetDefault(r *Resolver) {
	if r == nil {
		panic("cannot set nil as default resolver")
	}

	defaultResolver.Store(r)
}

var defaultResolver atomic.Pointer[Resolver] //nolint:gochecknoglobals

func init() { //nolint:gochecknoinits
	defaultResolver.Store(New())
}
