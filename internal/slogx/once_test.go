// Copyright (c) 2026 The settings authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package slogx_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nil-go/settings/internal/slogx"
)

func TestOnce(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		description string
		log         func(*slog.Logger)
		expected    string
	}{
		{
			description: "duplicated record",
			log: func(logger *slog.Logger) {
				logger.Warn("Field is deprecated.", "field", "port")
				logger.Warn("Field is deprecated.", "field", "port")
			},
			expected: "level=WARN msg=\"Field is deprecated.\" field=port\n",
		},
		{
			description: "different attributes",
			log: func(logger *slog.Logger) {
				logger.Warn("Field is deprecated.", "field", "port")
				logger.Warn("Field is deprecated.", "field", "host")
			},
			expected: "level=WARN msg=\"Field is deprecated.\" field=port\n" +
				"level=WARN msg=\"Field is deprecated.\" field=host\n",
		},
		{
			description: "different level",
			log: func(logger *slog.Logger) {
				logger.Warn("message")
				logger.Error("message")
			},
			expected: "level=WARN msg=message\nlevel=ERROR msg=message\n",
		},
		{
			description: "shared by derived logger",
			log: func(logger *slog.Logger) {
				logger.With("source", "env").Warn("message")
				logger.With("source", "env").Warn("message")
				logger.With("source", "dotenv").Warn("message")
				logger.WithGroup("g").Warn("message", "k", "v")
				logger.Warn("message", "k", "v")
			},
			expected: "level=WARN msg=message source=env\n" +
				"level=WARN msg=message source=dotenv\n" +
				"level=WARN msg=message g.k=v\n" +
				"level=WARN msg=message k=v\n",
		},
		{
			description: "disabled level",
			log: func(logger *slog.Logger) {
				logger.Debug("message")
			},
			expected: "",
		},
	}

	for _, testcase := range testcases {
		t.Run(testcase.description, func(t *testing.T) {
			t.Parallel()

			buf := &bytes.Buffer{}
			handler := slog.NewTextHandler(buf, &slog.HandlerOptions{
				ReplaceAttr: func(groups []string, attr slog.Attr) slog.Attr {
					if len(groups) == 0 && attr.Key == slog.TimeKey {
						return slog.Attr{}
					}

					return attr
				},
			})
			testcase.log(slog.New(slogx.Once(handler)))
			require.Equal(t, testcase.expected, buf.String())
		})
	}
}
