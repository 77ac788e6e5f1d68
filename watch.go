// Copyright (c) 2026 The settings authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package settings

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"

	"golang.org/x/sync/errgroup"

	"github.com/nil-go/settings/internal"
	"github.com/nil-go/settings/internal/fswatch"
	"github.com/nil-go/settings/internal/maps"
	"github.com/nil-go/settings/schema"
)

// Watcher is the interface that wraps the Watch method.
//
// Watch watches the source and calls onChange with the new values when it changes.
// It blocks until ctx is done, or the watching fails.
type Watcher interface {
	Watch(ctx context.Context, onChange func(map[string]any)) error
}

// Watch resolves the values of fields in the given object again whenever a source changes,
// and calls onChange with the new values if they are different from the previous ones.
// The config file, the dotenv file and sources that implement Watcher are watched.
//
// It blocks until ctx is done, or watching any source fails.
// It returns immediately if there is nothing to watch.
// It panics if ctx or onChange is nil.
func (r *Resolver) Watch(ctx context.Context, object schema.Object, onChange func(map[string]any)) error {
	if ctx == nil {
		panic("cannot watch change with nil context")
	}
	if onChange == nil {
		panic("cannot watch change with nil onChange")
	}

	values, err := r.Resolve(object)
	if err != nil {
		return err
	}
	sources, err := r.newSources()
	if err != nil {
		return err
	}

	logger := slog.New(r.logHandler())
	changed := make(chan struct{}, 1)
	notify := func(map[string]any) {
		select {
		case changed <- struct{}{}:
		default:
			// A resolution is pending and picks up this change as well.
		}
	}

	group, ctx := errgroup.WithContext(ctx)
	watching := false
	for _, source := range sources {
		watcher, ok := source.(Watcher)
		if !ok {
			continue
		}
		watching = true
		group.Go(func() error {
			logger.DebugContext(ctx, "Watching configuration change.", "source", source)
			if err := watcher.Watch(ctx, notify); err != nil {
				return fmt.Errorf("watch %v: %w", source, err)
			}

			return nil
		})
	}
	if len(r.sources) == 0 && r.envFile != "" {
		watching = true
		path := internal.ExpandHome(r.envFile)
		group.Go(func() error {
			logger.DebugContext(ctx, "Watching configuration change.", "source", "dotenv:"+r.envFile)

			return fswatch.Watch(ctx, path, logger, func(fswatch.Event) { notify(nil) }) //nolint:wrapcheck
		})
	}
	if !watching {
		return nil
	}

	group.Go(func() error {
		for {
			select {
			case <-changed:
				newValues, err := r.Resolve(object)
				if err != nil {
					logger.WarnContext(ctx, "Error when resolving changed configuration.", "error", err)

					continue
				}
				if reflect.DeepEqual(values, newValues) {
					continue
				}
				values = newValues

				logger.InfoContext(ctx, "Configuration has been changed.")
				onChange(maps.Clone(values))
			case <-ctx.Done():
				return nil
			}
		}
	})

	return group.Wait() //nolint:wrapcheck
}
