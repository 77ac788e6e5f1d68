// Copyright (c) 2026 The settings authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

// Package schema describes the fields a configuration is resolved for.
//
// A schema is a tree of [Field] descriptors. Each field has exactly one [Shape],
// and fields of shape [Nested] own a child [Object]. The tree is walked by sources
// (e.g. environment variables) to derive where the value of each field comes from.
//
// The tree can be declared explicitly, or derived from a Go struct with [Of].
package schema

import (
	"errors"
	"fmt"
)

// Shape is the structural category of a field's value.
type Shape int

const (
	// Scalar is a single value, e.g. string, number or bool.
	Scalar Shape = iota
	// List is a sequence of values.
	List
	// Mapping is a map from string keys to values.
	Mapping
	// Nested is an object with its own fields.
	Nested
	// Union is one of several member types, tried in declared order.
	Union
)

func (s Shape) String() string {
	switch s {
	case Scalar:
		return "scalar"
	case List:
		return "list"
	case Mapping:
		return "mapping"
	case Nested:
		return "nested"
	case Union:
		return "union"
	default:
		return fmt.Sprintf("shape(%d)", int(s))
	}
}

// IsComplex reports whether values of the shape are structured rather than a single value.
func (s Shape) IsComplex() bool {
	return s == List || s == Mapping || s == Nested
}

// Field describes a single configuration field.
type Field struct {
	// Name is the field name, unique within its owning Object.
	// It is used to derive the environment variable name.
	Name string
	// Alias is the key of the field in resolved mappings. It defaults to Name.
	Alias string
	Shape Shape
	// Env overrides the derived environment variable name.
	Env string
	// EnvPrefix overrides the environment variable prefix for the subtree of a Nested field.
	EnvPrefix string
	// Deprecated fields are still resolved, but a warning is logged when they are visited.
	Deprecated bool
	// Fields are the children of a Nested field.
	Fields Object
	// Members are the candidate types of a Union field.
	Members []Type
}

// Key returns the key of the field in resolved mappings.
func (f Field) Key() string {
	if f.Alias != "" {
		return f.Alias
	}

	return f.Name
}

// Type is a member of a Union field.
type Type struct {
	Shape Shape
	// Fields are the fields of a Nested member.
	Fields Object
}

// Object is an ordered set of fields.
// The order of fields is the order sources visit them.
type Object []Field

// Field returns the field with the given name.
func (o Object) Field(name string) (Field, bool) {
	for _, field := range o {
		if field.Name == name {
			return field, true
		}
	}

	return Field{}, false
}

// Validate checks the object is a well-formed tree.
func (o Object) Validate() error {
	return o.validate("")
}

func (o Object) validate(path string) error {
	var errs []error
	names := make(map[string]struct{}, len(o))
	keys := make(map[string]struct{}, len(o))
	for _, field := range o {
		fieldPath := join(path, field.Name)
		if field.Name == "" {
			errs = append(errs, fmt.Errorf("%s: %w", fieldPath, errEmptyName))

			continue
		}
		if _, ok := names[field.Name]; ok {
			errs = append(errs, fmt.Errorf("%s: %w", fieldPath, errDuplicatedName))
		}
		names[field.Name] = struct{}{}
		if _, ok := keys[field.Key()]; ok {
			errs = append(errs, fmt.Errorf("%s: %w %q", fieldPath, errDuplicatedAlias, field.Key()))
		}
		keys[field.Key()] = struct{}{}

		switch field.Shape {
		case Scalar, List, Mapping:
		case Nested:
			errs = append(errs, field.Fields.validate(fieldPath))
		case Union:
			if len(field.Members) == 0 {
				errs = append(errs, fmt.Errorf("%s: %w", fieldPath, errNoMember))
			}
			for _, member := range field.Members {
				switch member.Shape {
				case Union:
					errs = append(errs, fmt.Errorf("%s: %w", fieldPath, errNestedUnion))
				case Nested:
					errs = append(errs, member.Fields.validate(fieldPath))
				default:
				}
			}
		default:
			errs = append(errs, fmt.Errorf("%s: %w %s", fieldPath, errUnknownShape, field.Shape))
		}
	}

	return errors.Join(errs...)
}

func join(path, name string) string {
	if path == "" {
		return name
	}

	return path + "." + name
}

var (
	errEmptyName       = errors.New("field name is empty")
	errDuplicatedName  = errors.New("duplicated field name")
	errDuplicatedAlias = errors.New("duplicated field alias")
	errNoMember        = errors.New("union field has no member")
	errNestedUnion     = errors.New("union field cannot have union member")
	errUnknownShape    = errors.New("unknown shape")
)
