// Copyright (c) 2026 The settings authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package maps

import "slices"

// Sub returns the value under the given path, or nil if the path does not exist.
// Blank path segments are ignored.
func Sub(values map[string]any, path []string) any {
	path = slices.DeleteFunc(slices.Clone(path), func(s string) bool { return s == "" })
	if len(path) == 0 {
		return values
	}

	value := values[path[0]]
	if len(path) == 1 {
		return value
	}

	if mp, ok := value.(map[string]any); ok {
		return Sub(mp, path[1:])
	}

	return nil
}
