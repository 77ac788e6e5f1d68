// Copyright (c) 2026 The settings authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

// Package slogx provides slog.Handler middlewares.
package slogx

import (
	"context"
	"log/slog"
	"strings"
	"sync"
)

// Once returns a handler which passes a record to the given handler
// only the first time a record with the same level, message and attributes is seen.
// Handlers derived by WithAttrs and WithGroup share the seen records.
func Once(handler slog.Handler) slog.Handler {
	return onceHandler{
		handler: handler,
		seen:    &seen{keys: make(map[string]struct{})},
	}
}

type (
	onceHandler struct {
		handler slog.Handler
		scope   string
		seen    *seen
	}
	seen struct {
		keys  map[string]struct{}
		mutex sync.Mutex
	}
)

func (h onceHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

func (h onceHandler) Handle(ctx context.Context, record slog.Record) error {
	builder := &strings.Builder{}
	builder.WriteString(record.Level.String())
	builder.WriteByte(' ')
	builder.WriteString(record.Message)
	builder.WriteString(h.scope)
	record.Attrs(func(attr slog.Attr) bool {
		writeAttr(builder, attr)

		return true
	})

	if !h.seen.add(builder.String()) {
		return nil
	}

	return h.handler.Handle(ctx, record) //nolint:wrapcheck
}

func (h onceHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	builder := &strings.Builder{}
	builder.WriteString(h.scope)
	for _, attr := range attrs {
		writeAttr(builder, attr)
	}

	return onceHandler{
		handler: h.handler.WithAttrs(attrs),
		scope:   builder.String(),
		seen:    h.seen,
	}
}

func (h onceHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	return onceHandler{
		handler: h.handler.WithGroup(name),
		scope:   h.scope + " " + name + ".",
		seen:    h.seen,
	}
}

func (s *seen) add(key string) bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, ok := s.keys[key]; ok {
		return false
	}
	s.keys[key] = struct{}{}

	return true
}

func writeAttr(builder *strings.Builder, attr slog.Attr) {
	builder.WriteByte(' ')
	builder.WriteString(attr.String())
}
