// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Main workspace logic

package workspace

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// New resolves the workspace path and creates it from scratch.
// A directory already present at the path is a leftover from a previous
// session and gets wiped before being recreated.
func New(config *Config) (*Workspace, error) {
	if config == nil {
		config = &Config{}
	}
	if err := validateBasename(config.Basename); err != nil {
		return nil, err
	}

	root, err := resolveRoot(config.TempRoot, config.Basename)
	if err != nil {
		return nil, err
	}

	ws := newWorkspace(root, config)

	if info, err := os.Lstat(root); err == nil {
		ws.logger.Warn("Removing stale tempdir", zap.String("path", root))
		// A symlink at the leaf is itself the stale entry; its target lies
		// outside the temp root and is never touched.
		if info.Mode()&fs.ModeSymlink != 0 {
			err = os.Remove(root)
		} else {
			err = removeTree(root)
		}
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to remove stale tempdir %s: %w", root, err)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to stat tempdir %s: %w", root, err)
	}

	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create tempdir %s: %w", root, err)
	}

	ws.logger.Debug("Created tempdir", zap.String("path", root))
	return ws, nil
}

// Open attaches to a workspace created by another process.
// The directory is neither wiped nor removed by Cleanup.
func Open(root string, config *Config) (*Workspace, error) {
	if config == nil {
		config = &Config{}
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve tempdir %s: %w", root, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("failed to open tempdir %s: %w", abs, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("tempdir %s is not a directory", abs)
	}

	ws := newWorkspace(abs, config)
	ws.basename = filepath.Base(abs)
	ws.noClean = true
	ws.attached = true
	return ws, nil
}

// ResolvePath computes the absolute workspace path without touching it
func ResolvePath(tempRoot, basename string) (string, error) {
	if err := validateBasename(basename); err != nil {
		return "", err
	}
	return resolveRoot(tempRoot, basename)
}

func newWorkspace(root string, config *Config) *Workspace {
	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Workspace{
		basename: config.Basename,
		root:     root,
		noClean:  config.NoClean,
		logger:   logger,
		counters: make(map[string]int),
	}
}

func validateBasename(basename string) error {
	if basename == "" || basename == "." || basename == ".." {
		return fmt.Errorf("%w: %q", ErrInvalidBasename, basename)
	}
	if strings.ContainsAny(basename, `/\`) {
		return fmt.Errorf("%w: %q contains a path separator", ErrInvalidBasename, basename)
	}
	return nil
}

// resolveRoot joins basename onto the real temp root. The leaf itself is
// not resolved, so the workspace always stays a direct child of the root.
func resolveRoot(tempRoot, basename string) (string, error) {
	if tempRoot == "" {
		tempRoot = os.TempDir()
	}

	base, err := filepath.Abs(tempRoot)
	if err != nil {
		return "", fmt.Errorf("failed to resolve temp root %s: %w", tempRoot, err)
	}
	if resolved, err := filepath.EvalSymlinks(base); err == nil {
		base = resolved
	}

	return filepath.Join(base, basename), nil
}

// Path returns the absolute workspace path
func (w *Workspace) Path() string {
	return w.root
}

// Basename returns the leaf name of the workspace directory
func (w *Workspace) Basename() string {
	return w.basename
}

// Join returns a path below the workspace root
func (w *Workspace) Join(elem ...string) string {
	return filepath.Join(append([]string{w.root}, elem...)...)
}

// Exists checks if the workspace directory exists
func (w *Workspace) Exists() bool {
	info, err := os.Stat(w.root)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// NoClean reports whether Cleanup leaves the tree on disk
func (w *Workspace) NoClean() bool {
	return w.noClean
}

// Attached reports whether the workspace was opened rather than created
func (w *Workspace) Attached() bool {
	return w.attached
}

// String returns the workspace path
func (w *Workspace) String() string {
	return w.root
}
