// Copyright (c) 2026 The settings authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package env

import "fmt"

// DecodeError is returned when the value of a complex field cannot be decoded.
// The value itself is not included since it may be sensitive.
type DecodeError struct {
	Field string
	Env   string
	Err   error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode field %s from %s: %v", e.Field, e.Env, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
