// Copyright (c) 2026 The settings authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

package internal

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandHome replaces the leading `~` of the path with the home directory of the current user.
// The path is returned as it is if the home directory is unknown.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	return filepath.Join(home, path[1:])
}
