// Package filex holds small filesystem helpers for the per-user CLI
// directory.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// userHomeDir is a test seam for os.UserHomeDir.
var userHomeDir = os.UserHomeDir

// UserDir returns <home>/<name> without creating it.
func UserDir(name string) (string, error) {
	home, err := userHomeDir()
	if err != nil {
		return "", fmt.Errorf("home dir: %w", err)
	}
	return filepath.Join(home, name), nil
}

// EnsureDir creates dir (and parents) with owner-only permissions if it does
// not exist yet, and returns it unchanged.
func EnsureDir(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return dir, nil
}

// DisplayPath shortens paths under the home directory to "~/...".
func DisplayPath(path string) string {
	home, err := userHomeDir()
	if err != nil || home == "" {
		return path
	}
	rel, err := filepath.Rel(home, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}
	if rel == "." {
		return "~"
	}
	return filepath.Join("~", rel)
}
