// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Handing the workspace to tests and child processes

package session

import (
	"context"
	"errors"
	"os"

	"go.uber.org/zap"

	"github.com/sony-level/tempdir/workspace"
)

// ResourceName is the name tests request the workspace under
const ResourceName = "tempdir"

// EnvPath carries the workspace path to child test processes
const EnvPath = "TEMPDIR_PATH"

var ErrNoWorkspace = errors.New("no tempdir workspace available")

type resourceKey struct{ name string }

// WithWorkspace returns a context carrying ws
func WithWorkspace(ctx context.Context, ws *workspace.Workspace) context.Context {
	return context.WithValue(ctx, resourceKey{ResourceName}, ws)
}

// WorkspaceFrom returns the workspace stored by WithWorkspace
func WorkspaceFrom(ctx context.Context) (*workspace.Workspace, error) {
	ws, ok := ctx.Value(resourceKey{ResourceName}).(*workspace.Workspace)
	if !ok || ws == nil {
		return nil, ErrNoWorkspace
	}
	return ws, nil
}

// Environ returns the variables a child process needs to attach to ws.
// Only the path is exported; a nested session resolving the same basename
// would wipe ws as stale.
func Environ(ws *workspace.Workspace) []string {
	return []string{EnvPath + "=" + ws.Path()}
}

// FromEnv attaches to the workspace announced in TEMPDIR_PATH.
// The attached workspace never removes the directory; the process that
// created it does.
func FromEnv(logger *zap.Logger) (*workspace.Workspace, error) {
	path := os.Getenv(EnvPath)
	if path == "" {
		return nil, ErrNoWorkspace
	}
	return workspace.Open(path, &workspace.Config{Logger: logger})
}
