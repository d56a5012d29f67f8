// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Subdirectory allocation

package workspace

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// Mkdir creates a directory below the workspace and returns its absolute path.
//
// With reuse set, the directory is rootPath/prefix and may already exist.
// Otherwise a numeric suffix is appended (prefix0, prefix1, ...) and the first
// name that does not exist yet is created. The per-prefix counter is only
// advanced on collisions, so the next call for the same prefix starts at the
// name just handed out and moves past it.
func (w *Workspace) Mkdir(prefix string, reuse bool) (string, error) {
	rel, err := cleanPrefix(prefix)
	if err != nil {
		return "", err
	}

	// The root is never recreated here, so nothing is left behind once
	// Cleanup has run.
	if !w.Exists() {
		return "", fmt.Errorf("%w: %s", ErrNoWorkspaceRoot, w.root)
	}

	if reuse {
		dir := filepath.Join(w.root, rel)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
		return dir, nil
	}

	// Parents of a nested prefix such as "cache/run" are shared by every
	// suffixed name.
	base := filepath.Join(w.root, rel)
	if err := os.MkdirAll(filepath.Dir(base), 0o755); err != nil {
		return "", fmt.Errorf("failed to create directory %s: %w", filepath.Dir(base), err)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	counter := w.counters[prefix]
	for attempt := 0; attempt < maxAllocAttempts; attempt++ {
		dir := base + strconv.Itoa(counter)
		err := os.Mkdir(dir, 0o755)
		if err == nil {
			w.counters[prefix] = counter
			w.logger.Debug("Allocated tempdir subdirectory",
				zap.String("prefix", prefix),
				zap.String("path", dir))
			return dir, nil
		}
		if !errors.Is(err, fs.ErrExist) {
			return "", fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
		counter++
	}

	w.counters[prefix] = counter
	return "", fmt.Errorf("%w %q after %d attempts", ErrAllocExhausted, prefix, maxAllocAttempts)
}

// MkdirReuse is shorthand for Mkdir(prefix, true)
func (w *Workspace) MkdirReuse(prefix string) (string, error) {
	return w.Mkdir(prefix, true)
}

func cleanPrefix(prefix string) (string, error) {
	if strings.TrimSpace(prefix) == "" {
		return "", ErrEmptyPrefix
	}
	if filepath.IsAbs(prefix) {
		return "", fmt.Errorf("%w: %q", ErrInvalidPrefix, prefix)
	}

	rel := filepath.Clean(prefix)
	if rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %q", ErrInvalidPrefix, prefix)
	}
	return rel, nil
}
