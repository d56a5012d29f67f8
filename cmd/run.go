/*
Copyright © 2026 ソニーレベル <C7kali3@gmail.com>

*/
package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sony-level/tempdir/internal/exec"
	"github.com/sony-level/tempdir/session"
)

func newRunCmd(opts *rootOptions) *cobra.Command {
	var timeout time.Duration

	runCmd := &cobra.Command{
		Use:   "run [flags] [--] command [args...]",
		Short: "Run a test command inside a fresh tempdir session",
		Long: `Create the session tempdir, run the given command with TEMPDIR_PATH
pointing at it, and remove the tempdir once the command has finished,
even when it fails or is interrupted.

Test code picks the directory up with session.FromEnv().

Examples:
  tempdir run -- go test ./...
  tempdir run --timeout 10m go test -race ./...`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			if _, err := exec.LookPath(args[0]); err != nil {
				return err
			}

			s, logger, err := opts.newSession(cmd)
			if err != nil {
				return err
			}

			ws, err := s.Configure()
			if err != nil {
				return fmt.Errorf("failed to configure tempdir: %w", err)
			}
			defer func() {
				if teardownErr := s.Teardown(); teardownErr != nil {
					logger.Warn("Tempdir teardown failed", zap.Error(teardownErr))
					if err == nil {
						err = teardownErr
					}
				}
			}()

			fmt.Fprintln(cmd.OutOrStdout(), s.ReportHeader())

			runner := exec.NewRunner(&exec.RunnerConfig{
				Env:     session.Environ(ws),
				Stdout:  cmd.OutOrStdout(),
				Stderr:  cmd.ErrOrStderr(),
				Timeout: timeout,
				Logger:  logger,
			})

			result := runner.Run(cmd.Context(), args[0], args[1:]...)
			logger.Debug(exec.FormatCommandResult(result))

			if result.Success {
				return nil
			}
			if result.ExitCode > 0 {
				return &ExitError{Code: result.ExitCode}
			}
			if result.Error == nil {
				return errors.New("command failed")
			}
			return result.Error
		},
	}

	runCmd.Flags().DurationVar(&timeout, "timeout", 0, "Interrupt the command after this long (0 disables)")
	runCmd.Flags().SetInterspersed(false)

	return runCmd
}
