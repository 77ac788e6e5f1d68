// Copyright (c) 2026 The settings authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package file

import (
	"context"
	"log/slog"

	"github.com/nil-go/settings/internal/fswatch"
	"github.com/nil-go/settings/schema"
)

// Watch watches the file and calls onChange with the reloaded values when it changes.
// onChange is called with nil if the file is removed.
// It blocks until ctx is done, or the watcher could not be created.
func (f File) Watch(ctx context.Context, onChange func(map[string]any)) error {
	return fswatch.Watch(ctx, f.Path(), f.logger, func(event fswatch.Event) { //nolint:wrapcheck
		if event == fswatch.Removed {
			f.logger.LogAttrs(
				ctx, slog.LevelWarn,
				"Config file has been removed.",
				slog.String("file", f.path),
			)
			onChange(nil)

			return
		}

		values, err := f.Load(schema.Object{})
		if err != nil {
			f.logger.LogAttrs(
				ctx, slog.LevelWarn,
				"Error when reloading config file.",
				slog.String("file", f.path),
				slog.Any("error", err),
			)

			return
		}
		onChange(values)
	})
}
