// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Cleanup functionality

package workspace

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"go.uber.org/zap"
)

// Cleanup removes the workspace tree unless NoClean is set.
// A directory that is already gone is not an error, so Cleanup can be
// called any number of times.
func (w *Workspace) Cleanup() error {
	if w.noClean {
		w.logger.Debug("No cleaning up tempdir", zap.String("path", w.root))
		return nil
	}

	w.logger.Debug("Cleaning up the tempdir", zap.String("path", w.root))
	if err := removeTree(w.root); err != nil {
		return fmt.Errorf("failed to cleanup tempdir %s: %w", w.root, err)
	}
	return nil
}

// Remove deletes the tempdir at the given path, treating a missing
// directory as success
func Remove(path string) error {
	if err := removeTree(path); err != nil {
		return fmt.Errorf("failed to remove tempdir %s: %w", path, err)
	}
	return nil
}

func removeTree(path string) error {
	err := os.RemoveAll(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
