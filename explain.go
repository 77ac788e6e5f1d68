// Copyright (c) 2026 The settings authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package settings

import (
	"fmt"
	"slices"
	"strings"

	"github.com/nil-go/settings/internal/credential"
	"github.com/nil-go/settings/internal/maps"
	"github.com/nil-go/settings/schema"
)

// Explain provides information about how the value of each field under the given path
// is resolved from sources, including the values from sources with lower precedence.
// The path is the dotted keys of fields, e.g. `http.host`. An empty path explains all fields.
//
// It blurs sensitive information.
func (r *Resolver) Explain(object schema.Object, path string) (string, error) {
	layers, err := r.load(object)
	if err != nil {
		return "", err
	}

	explanation := &strings.Builder{}
	explain(explanation, layers, path, maps.Sub(merge(layers), split(path)))

	return explanation.String(), nil
}

func explain(explanation *strings.Builder, layers []layer, path string, value any) {
	if values, ok := value.(map[string]any); ok {
		keys := make([]string, 0, len(values))
		for key := range values {
			keys = append(keys, key)
		}
		slices.Sort(keys)
		for _, key := range keys {
			explain(explanation, layers, join(path, key), values[key])
		}

		return
	}

	type sourceValue struct {
		source Source
		value  any
	}
	var sources []sourceValue
	for _, layer := range layers {
		if v := maps.Sub(layer.values, split(path)); v != nil {
			sources = append(sources, sourceValue{layer.source, v})
		}
	}

	if len(sources) == 0 {
		explanation.WriteString(path)
		explanation.WriteString(" has no configuration.\n\n")

		return
	}
	explanation.WriteString(path)
	explanation.WriteString(" has value[")
	explanation.WriteString(credential.Blur(path, sources[0].value))
	explanation.WriteString("] that is loaded by source[")
	explanation.WriteString(fmt.Sprintf("%v", sources[0].source))
	explanation.WriteString("].\n")
	if len(sources) > 1 {
		explanation.WriteString("Here are other value(source)s:\n")
		for _, source := range sources[1:] {
			explanation.WriteString("  - ")
			explanation.WriteString(credential.Blur(path, source.value))
			explanation.WriteString("(")
			explanation.WriteString(fmt.Sprintf("%v", source.source))
			explanation.WriteString(")\n")
		}
	}
	explanation.WriteString("\n")
}

func split(path string) []string {
	if path == "" {
		return nil
	}

	return strings.Split(path, ".")
}

func join(path, key string) string {
	if path == "" {
		return key
	}

	return path + "." + key
}
