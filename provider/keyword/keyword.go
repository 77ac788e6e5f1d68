// Copyright (c) 2026 The settings authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

// Package keyword loads configuration from values given by the caller.
//
// The keys of the values are field keys (aliases). They are returned exactly as given,
// without name derivation or decoding.
package keyword

import (
	"github.com/nil-go/settings/internal/maps"
	"github.com/nil-go/settings/schema"
)

// Keyword is a source that returns the values it was created with.
type Keyword struct {
	values map[string]any
}

// New creates a Keyword with the given values.
// The values are copied, so that later changes to the map are not observed.
func New(values map[string]any) Keyword {
	return Keyword{values: maps.Clone(values)}
}

// Load returns a copy of the values.
func (k Keyword) Load(schema.Object) (map[string]any, error) {
	values := maps.Clone(k.values)
	if values == nil {
		values = make(map[string]any)
	}

	return values, nil
}

func (k Keyword) String() string {
	return "keyword"
}
