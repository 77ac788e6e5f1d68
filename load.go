// Copyright (c) 2026 The settings authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package settings

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"

	"github.com/nil-go/settings/internal/maps"
	"github.com/nil-go/settings/schema"
)

// Load resolves configuration for the struct pointed to by target
// and decodes the resolved values into it.
//
// The schema is derived from the struct with schema.Of, so the struct supports
// tags `settings`, `env`, `envPrefix` and `deprecated`.
// Fields without resolved value keep their current values, which act as defaults.
// After decoding, the struct is validated with its `validate` tags.
func (r *Resolver) Load(target any) error {
	object, err := schema.Of(target)
	if err != nil {
		return fmt.Errorf("derive schema: %w", err)
	}

	values, err := r.Resolve(object)
	if err != nil {
		return err
	}

	return decode(byName(values, object), target)
}

// byName re-keys aliased fields with their names, which the decoder matches with struct tags.
func byName(values map[string]any, object schema.Object) map[string]any {
	renamed := maps.Clone(values)
	for _, field := range object {
		value, ok := values[field.Key()]
		if !ok {
			continue
		}
		if nested, isMap := value.(map[string]any); isMap && field.Shape == schema.Nested {
			value = byName(nested, field.Fields)
		}
		if field.Key() != field.Name {
			delete(renamed, field.Key())
		}
		renamed[field.Name] = value
	}

	return renamed
}

func decode(values map[string]any, target any) error {
	decoder, err := mapstructure.NewDecoder(
		&mapstructure.DecoderConfig{
			Result:           target,
			WeaklyTypedInput: true,
			DecodeHook:       decodeHook,
			TagName:          schema.TagName,
			MatchName:        matchName,
		},
	)
	if err != nil {
		return fmt.Errorf("new decoder: %w", err)
	}

	if err := decoder.Decode(values); err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	if err := validate.Struct(target); err != nil {
		return fmt.Errorf("validate: %w", err)
	}

	return nil
}

// matchName matches keys derived by schema.Of with Go field names, e.g. http_host with HTTPHost.
func matchName(key, fieldName string) bool {
	return strings.EqualFold(key, fieldName) || key == schema.SnakeCase(fieldName)
}

//nolint:gochecknoglobals
var (
	decodeHook = mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
		mapstructure.TextUnmarshallerHookFunc(),
	)
	validate = validator.New(validator.WithRequiredStructEnabled())
)
