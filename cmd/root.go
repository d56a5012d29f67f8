/*
Copyright © 2026 ソニーレベル <C7kali3@gmail.com>

*/
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sony-level/tempdir/hooks"
	"github.com/sony-level/tempdir/internal/config"
	"github.com/sony-level/tempdir/internal/logging"
	"github.com/sony-level/tempdir/session"
)

// ExitError carries the exit code of the test command
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

type rootOptions struct {
	session    session.Options
	verbose    bool
	configPath string
}

// NewRootCmd builds the tempdir command tree
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "tempdir",
		Short: "Predictable, session-scoped temporary directory for test runs",
		Long: `tempdir creates a well-known temporary directory for a test session,
hands it to the tests and removes it when the session ends.

The directory lives under the system temp root and is named after the
current directory unless --tempdir-basename, TEMPDIR_BASENAME or a config
file says otherwise. If it already exists when a session starts, IT WILL
BE WIPED.

Examples:
  tempdir run -- go test ./...
  tempdir run --tempdir-basename myproject -- go test -v ./pkg/...
  tempdir run --tempdir-no-clean -- go test ./...
  tempdir path
  tempdir clean`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	opts.session.AddFlags(rootCmd.PersistentFlags())
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Config file (default: .tempdir.yaml, then ~/.config/tempdir/config.yaml)")

	setUsageTemplate(rootCmd)

	rootCmd.AddCommand(newRunCmd(opts))
	rootCmd.AddCommand(newPathCmd(opts))
	rootCmd.AddCommand(newCleanCmd(opts))

	return rootCmd
}

// Execute runs the root command and exits with the proper status.
// This is called by main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := NewRootCmd().ExecuteContext(ctx)
	stop()

	if err == nil {
		return
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		os.Exit(exitErr.Code)
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

// newSession assembles a session from flags, environment and config file
func (o *rootOptions) newSession(cmd *cobra.Command) (*session.Session, *zap.Logger, error) {
	logger := logging.New(o.verbose, cmd.ErrOrStderr())

	file, err := config.Load(o.configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	if file.Path() != "" {
		logger.Debug("Loaded config file", zap.String("path", file.Path()))
	}

	opts := o.session
	opts.NoClean, err = config.ResolveNoClean(
		cmd.Flags().Changed(session.FlagNoClean), o.session.NoClean, file)
	if err != nil {
		return nil, nil, err
	}

	registry := hooks.NewRegistry()
	registry.RegisterBasename("env", hooks.Env(config.EnvBasename))
	if file.Basename != "" {
		registry.RegisterBasename("config", hooks.Static(file.Basename))
	}
	if file.GitRoot {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		registry.RegisterBasename("git", hooks.GitRoot(cwd))
	}

	registry.RegisterTempRoot("env", hooks.Env(config.EnvTempRoot))
	if file.TempRoot != "" {
		registry.RegisterTempRoot("config", hooks.Static(file.TempRoot))
	}

	return session.New(opts, registry, logger), logger, nil
}
