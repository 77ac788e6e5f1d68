// Copyright (c) 2026 The settings authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package format

import (
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/pelletier/go-toml/v2"
	"github.com/zclconf/go-cty/cty"
	"gopkg.in/yaml.v3"
)

//nolint:gochecknoglobals
var (
	JSON = Format{Name: "JSON", Extensions: []string{"json", "js"}, Unmarshal: json.Unmarshal}
	YAML = Format{Name: "YAML", Extensions: []string{"yaml", "yml"}, Unmarshal: unmarshalYAML}
	TOML = Format{Name: "TOML", Extensions: []string{"toml", "tml"}, Unmarshal: toml.Unmarshal}
	HCL2 = Format{Name: "HCL2", Extensions: []string{"hcl", "hcl2", "tf"}, Unmarshal: unmarshalHCL}
)

// unmarshalYAML decodes YAML into a map. Mappings with non-string keys
// are converted to map[string]any with keys formatted by fmt.Sprint.
func unmarshalYAML(content []byte, target any) error {
	if err := yaml.Unmarshal(content, target); err != nil {
		return err //nolint:wrapcheck
	}

	if values, ok := target.(*map[string]any); ok && *values != nil {
		for key, value := range *values {
			(*values)[key] = stringKeys(value)
		}
	}

	return nil
}

func stringKeys(value any) any {
	switch v := value.(type) {
	case map[any]any:
		values := make(map[string]any, len(v))
		for key, e := range v {
			values[fmt.Sprint(key)] = stringKeys(e)
		}

		return values
	case map[string]any:
		for key, e := range v {
			v[key] = stringKeys(e)
		}

		return v
	case []any:
		for i, e := range v {
			v[i] = stringKeys(e)
		}

		return v
	default:
		return value
	}
}

// unmarshalHCL decodes HCL2 native syntax into a map.
//
// Attributes are evaluated without variables or functions. Expressions which cannot be
// evaluated that way are kept as their source text wrapped in "${...}".
// Blocks are keyed by their type and labels. A block type with a single block is decoded
// as a map, otherwise as a list of maps.
func unmarshalHCL(content []byte, target any) error {
	values, ok := target.(*map[string]any)
	if !ok {
		return fmt.Errorf("%w: %T", errUnsupportedTarget, target)
	}

	file, diags := hclsyntax.ParseConfig(content, "", hcl.InitialPos)
	if diags.HasErrors() {
		return diags
	}
	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		return fmt.Errorf("%w: %T", errUnsupportedTarget, file.Body)
	}
	*values = hclBody(body, content)

	return nil
}

func hclBody(body *hclsyntax.Body, content []byte) map[string]any {
	values := make(map[string]any, len(body.Attributes)+len(body.Blocks))
	for name, attribute := range body.Attributes {
		values[name] = hclExpression(attribute.Expr, content)
	}

	blocks := make(map[string][]any)
	var types []string
	for _, block := range body.Blocks {
		var value any = hclBody(block.Body, content)
		for i := len(block.Labels) - 1; i >= 0; i-- {
			value = map[string]any{block.Labels[i]: value}
		}
		if _, ok := blocks[block.Type]; !ok {
			types = append(types, block.Type)
		}
		blocks[block.Type] = append(blocks[block.Type], value)
	}
	for _, typ := range types {
		if list := blocks[typ]; len(list) == 1 {
			values[typ] = list[0]
		} else {
			values[typ] = list
		}
	}

	return values
}

func hclExpression(expr hclsyntax.Expression, content []byte) any {
	if len(expr.Variables()) == 0 {
		if value, diags := expr.Value(nil); !diags.HasErrors() && value.IsWhollyKnown() {
			return ctyValue(value)
		}
	}
	if wrap, ok := expr.(*hclsyntax.TemplateWrapExpr); ok {
		expr = wrap.Wrapped
	}

	return "${" + string(expr.Range().SliceBytes(content)) + "}"
}

func ctyValue(value cty.Value) any {
	if value.IsNull() {
		return nil
	}

	typ := value.Type()
	switch {
	case typ.Equals(cty.String):
		return value.AsString()
	case typ.Equals(cty.Bool):
		return value.True()
	case typ.Equals(cty.Number):
		number := value.AsBigFloat()
		if number.IsInt() {
			if i, accuracy := number.Int64(); accuracy == big.Exact {
				return int(i)
			}
		}
		f, _ := number.Float64()

		return f
	case typ.IsListType(), typ.IsSetType(), typ.IsTupleType():
		list := make([]any, 0, value.LengthInt())
		for it := value.ElementIterator(); it.Next(); {
			_, element := it.Element()
			list = append(list, ctyValue(element))
		}

		return list
	case typ.IsMapType(), typ.IsObjectType():
		values := make(map[string]any, value.LengthInt())
		for it := value.ElementIterator(); it.Next(); {
			key, element := it.Element()
			values[key.AsString()] = ctyValue(element)
		}

		return values
	default:
		return nil
	}
}
