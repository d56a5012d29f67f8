// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// workspace types/constants

package workspace

import (
	"errors"
	"sync"

	"go.uber.org/zap"
)

// MaxAllocAttempts bounds the collision scan performed by Mkdir
const MaxAllocAttempts = 10000

// maxAllocAttempts is the bound in effect; tests lower it
var maxAllocAttempts = MaxAllocAttempts

var (
	ErrInvalidBasename = errors.New("invalid tempdir basename")
	ErrEmptyPrefix     = errors.New("subdirectory prefix must not be empty")
	ErrInvalidPrefix   = errors.New("subdirectory prefix must be relative to the tempdir")
	ErrAllocExhausted  = errors.New("no free subdirectory name left for prefix")
	ErrNoWorkspaceRoot = errors.New("tempdir does not exist")
)

// Workspace is the single session-scoped temporary directory
type Workspace struct {
	basename string
	root     string
	noClean  bool
	attached bool
	logger   *zap.Logger

	mu       sync.Mutex
	counters map[string]int
}

// Config holds configuration for workspace creation
type Config struct {
	TempRoot string // Defaults to os.TempDir()
	Basename string
	NoClean  bool
	Logger   *zap.Logger
}
