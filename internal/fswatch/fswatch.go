// Copyright (c) 2026 The settings authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

// Package fswatch watches a single file for changes.
package fswatch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Event is the kind of change on the watched file.
type Event int

const (
	// Changed means the file has been created or written.
	Changed Event = iota
	// Removed means the file has been removed or renamed.
	Removed
)

// Watch calls onEvent whenever the file at path changes.
// It blocks until ctx is done, or the watcher could not be created.
//
//nolint:cyclop,funlen
func Watch(ctx context.Context, path string, logger *slog.Logger, onEvent func(Event)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create file watcher for %s: %w", path, err)
	}
	defer func() {
		if e := watcher.Close(); e != nil {
			logger.LogAttrs(
				ctx, slog.LevelWarn,
				"Error when closing file watcher.",
				slog.String("file", path),
				slog.Any("error", e),
			)
		}
	}()

	// Although only a single file is being watched, fsnotify has to watch
	// the whole parent directory to pick up all events such as symlink changes.
	dir, _ := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	if e := watcher.Add(dir); e != nil {
		return fmt.Errorf("watch dir %s: %w", dir, e)
	}

	// Resolve symlinks and save the original path so that changes to symlinks
	// can be detected. The file may not exist yet.
	cleanPath := filepath.Clean(path)
	realPath, err := filepath.EvalSymlinks(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		realPath = cleanPath
	case err != nil:
		return fmt.Errorf("eval symlink: %w", err)
	default:
		realPath = filepath.Clean(realPath)
	}

	var (
		lastEvent     string
		lastEventTime time.Time
	)
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			// Use a simple timer to buffer events as certain events fire
			// multiple times on some platforms.
			if event.String() == lastEvent && time.Since(lastEventTime) < 5*time.Millisecond {
				continue
			}
			lastEvent = event.String()
			lastEventTime = time.Now()

			// Since the event is triggered on a directory, is this
			// one on the file being watched?
			evFile := filepath.Clean(event.Name)
			if evFile != realPath && evFile != cleanPath {
				continue
			}

			switch {
			case event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename):
				onEvent(Removed)
			case event.Has(fsnotify.Create) || event.Has(fsnotify.Write):
				onEvent(Changed)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.LogAttrs(
				ctx, slog.LevelWarn,
				"Error when watching file.",
				slog.String("file", path),
				slog.Any("error", err),
			)

		case <-ctx.Done():
			return nil
		}
	}
}
