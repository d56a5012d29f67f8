// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Session lifecycle: configure, cleanup stack, teardown

package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/sony-level/tempdir/hooks"
	"github.com/sony-level/tempdir/workspace"
)

var (
	ErrAlreadyConfigured = errors.New("session already configured")
	ErrNotConfigured     = errors.New("session not configured")
)

// Session owns the tempdir for one test session.
// It is not safe for concurrent use; configuration and teardown happen
// once, before and after all tests.
type Session struct {
	opts   Options
	hooks  *hooks.Registry
	logger *zap.Logger

	ws       *workspace.Workspace
	cleanups []func() error
	tornDown bool
}

// New creates a session. A nil registry or logger is replaced with an
// empty registry and a no-op logger.
func New(opts Options, registry *hooks.Registry, logger *zap.Logger) *Session {
	if registry == nil {
		registry = hooks.NewRegistry()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		opts:   opts,
		hooks:  registry,
		logger: logger,
	}
}

// Hooks returns the registry consulted during Configure
func (s *Session) Hooks() *hooks.Registry {
	return s.hooks
}

// ResolveBasename picks the workspace leaf name:
// command line override, then the basename hook, then the name of the
// current working directory.
func (s *Session) ResolveBasename() (hooks.Result, error) {
	if s.opts.Basename != "" {
		return hooks.Result{Value: s.opts.Basename, Source: "cli"}, nil
	}

	res, err := s.hooks.Basename()
	if err != nil {
		return hooks.Result{}, err
	}
	if res.Found() {
		return res, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return hooks.Result{}, fmt.Errorf("failed to get current directory: %w", err)
	}
	return hooks.Result{Value: filepath.Base(cwd), Source: "cwd"}, nil
}

// ResolveTempRoot returns the temp root hook result, or os.TempDir()
func (s *Session) ResolveTempRoot() (hooks.Result, error) {
	res, err := s.hooks.TempRoot()
	if err != nil {
		return hooks.Result{}, err
	}
	if res.Found() {
		return res, nil
	}
	return hooks.Result{Value: os.TempDir(), Source: "default"}, nil
}

// ResolvePath computes the workspace path without creating anything
func (s *Session) ResolvePath() (string, error) {
	basename, err := s.ResolveBasename()
	if err != nil {
		return "", err
	}
	tempRoot, err := s.ResolveTempRoot()
	if err != nil {
		return "", err
	}
	return workspace.ResolvePath(tempRoot.Value, basename.Value)
}

// Configure creates the workspace and registers its removal on the
// session cleanup stack
func (s *Session) Configure() (*workspace.Workspace, error) {
	if s.ws != nil {
		return nil, ErrAlreadyConfigured
	}

	basename, err := s.ResolveBasename()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve tempdir basename: %w", err)
	}
	tempRoot, err := s.ResolveTempRoot()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve temp root: %w", err)
	}

	s.logger.Debug("Resolved tempdir",
		zap.String("basename", basename.Value),
		zap.String("basename_source", basename.Source),
		zap.String("temproot", tempRoot.Value),
		zap.String("temproot_source", tempRoot.Source))

	ws, err := workspace.New(&workspace.Config{
		TempRoot: tempRoot.Value,
		Basename: basename.Value,
		NoClean:  s.opts.NoClean,
		Logger:   s.logger,
	})
	if err != nil {
		return nil, err
	}

	s.ws = ws
	s.AddCleanup(ws.Cleanup)
	return ws, nil
}

// Workspace returns the configured workspace, or nil before Configure
func (s *Session) Workspace() *workspace.Workspace {
	return s.ws
}

// AddCleanup pushes fn on the cleanup stack. Callbacks run in reverse
// order of registration during Teardown.
func (s *Session) AddCleanup(fn func() error) {
	s.cleanups = append(s.cleanups, fn)
}

// Teardown runs the cleanup stack. Every callback runs even when an earlier
// one fails; the errors are joined. Only the first call does any work.
func (s *Session) Teardown() error {
	if s.tornDown {
		return nil
	}
	s.tornDown = true

	var errs []error
	for i := len(s.cleanups) - 1; i >= 0; i-- {
		if err := s.cleanups[i](); err != nil {
			errs = append(errs, err)
		}
	}
	s.cleanups = nil
	return errors.Join(errs...)
}

// ReportHeader returns the one-line session header
func (s *Session) ReportHeader() string {
	if s.ws == nil {
		return "tempdir: <not configured>"
	}
	return "tempdir: " + s.ws.Path()
}
