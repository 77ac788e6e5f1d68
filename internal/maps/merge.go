// Copyright (c) 2026 The settings authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package maps

// Merge recursively merges the src map into the dst map.
// Key conflicts are resolved by preferring src,
// or recursively descending, if both values from src and dst are map.
//
// Maps from src are never shared with dst, so later merges into dst
// do not leak back into src.
func Merge(dst, src map[string]any) {
	for key, srcVal := range src {
		// Direct override if the srcVal is not map[string]any.
		srcMap, srcOk := srcVal.(map[string]any)
		if !srcOk {
			dst[key] = srcVal

			continue
		}

		// Direct override if the dstVal is not map[string]any.
		dstMap, dstOk := dst[key].(map[string]any)
		if !dstOk {
			// Create a new map to avoid overwriting the src map.
			values := make(map[string]any, len(srcMap))
			Merge(values, srcMap)
			dst[key] = values

			continue
		}

		// Merge if the srcVal and dstVal are both map[string]any.
		Merge(dstMap, srcMap)
	}
}

// Clone returns a deep copy of values.
// Nested maps and []any are copied; other values are shared.
func Clone(values map[string]any) map[string]any {
	if values == nil {
		return nil
	}

	cloned := make(map[string]any, len(values))
	for key, value := range values {
		cloned[key] = clone(value)
	}

	return cloned
}

func clone(value any) any {
	switch v := value.(type) {
	case map[string]any:
		return Clone(v)
	case []any:
		list := make([]any, len(v))
		for i, e := range v {
			list[i] = clone(e)
		}

		return list
	default:
		return value
	}
}
