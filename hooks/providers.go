// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Built-in hook implementations

package hooks

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-git/go-git/v5"
)

// Static always returns value
func Static(value string) Func {
	return func() (string, error) {
		return value, nil
	}
}

// Env returns the value of the environment variable key
func Env(key string) Func {
	return func() (string, error) {
		return os.Getenv(key), nil
	}
}

// GitRoot returns the name of the git work tree containing dir.
// Outside of a repository it has no opinion.
func GitRoot(dir string) Func {
	return func() (string, error) {
		repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return "", nil
		}
		if err != nil {
			return "", fmt.Errorf("failed to open git repository at %s: %w", dir, err)
		}

		wt, err := repo.Worktree()
		if errors.Is(err, git.ErrIsBareRepository) {
			return "", nil
		}
		if err != nil {
			return "", fmt.Errorf("failed to get git worktree: %w", err)
		}

		return filepath.Base(wt.Filesystem.Root()), nil
	}
}
