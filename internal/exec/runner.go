// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Command executor with streaming output and process group handling

package exec

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Runner executes the test command of a session
type Runner struct {
	config *RunnerConfig
}

// NewRunner creates a new command runner
func NewRunner(config *RunnerConfig) *Runner {
	if config == nil {
		config = &RunnerConfig{}
	}
	if config.Stdout == nil {
		config.Stdout = os.Stdout
	}
	if config.Stderr == nil {
		config.Stderr = os.Stderr
	}
	if config.GracePeriod <= 0 {
		config.GracePeriod = DefaultGracePeriod
	}
	if config.Logger == nil {
		config.Logger = zap.NewNop()
	}
	return &Runner{config: config}
}

// Run starts name with args and waits for it to finish.
// Cancelling ctx interrupts the whole process group and kills it once the
// grace period has passed.
func (r *Runner) Run(ctx context.Context, name string, args ...string) *CommandResult {
	result := &CommandResult{
		Command: append([]string{name}, args...),
	}
	startTime := time.Now()

	if r.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.config.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = r.config.WorkingDir
	cmd.Env = append(os.Environ(), r.config.Env...)
	cmd.Stdout = r.config.Stdout
	cmd.Stderr = r.config.Stderr
	setPlatformProcessGroup(cmd)
	cmd.Cancel = func() error {
		return interruptProcessGroup(cmd)
	}
	cmd.WaitDelay = r.config.GracePeriod

	r.config.Logger.Debug("Running command",
		zap.Strings("command", result.Command),
		zap.String("dir", r.config.WorkingDir))

	if err := cmd.Start(); err != nil {
		result.ExitCode = -1
		result.Error = fmt.Errorf("failed to start command: %w", err)
		result.Duration = time.Since(startTime)
		return result
	}

	err := cmd.Wait()
	result.Duration = time.Since(startTime)

	if err != nil {
		// Anything left in the group after the leader exited goes too
		_ = killProcessGroup(cmd)

		var exitErr *exec.ExitError
		switch {
		case errors.Is(ctx.Err(), context.DeadlineExceeded):
			result.ExitCode = -1
			result.Error = fmt.Errorf("command timed out after %v", r.config.Timeout)
		case ctx.Err() != nil:
			result.ExitCode = -1
			result.Error = fmt.Errorf("command interrupted: %w", ctx.Err())
		case errors.As(err, &exitErr):
			result.ExitCode = exitErr.ExitCode()
			result.Error = fmt.Errorf("command exited with code %d", result.ExitCode)
		default:
			result.ExitCode = -1
			result.Error = err
		}
		return result
	}

	result.Success = true
	return result
}

// LookPath resolves name the way Run will, so a missing command can be
// reported before any session state is created
func LookPath(name string) (string, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		return "", fmt.Errorf("command %q not found: %w", name, err)
	}
	return path, nil
}

// FormatCommandResult returns a human-readable result line
func FormatCommandResult(result *CommandResult) string {
	var sb strings.Builder

	if result.Success {
		sb.WriteString(fmt.Sprintf("✓ %s: Success", strings.Join(result.Command, " ")))
	} else {
		sb.WriteString(fmt.Sprintf("✗ %s: Failed", strings.Join(result.Command, " ")))
		if result.Error != nil {
			sb.WriteString(fmt.Sprintf(" - %s", result.Error.Error()))
		}
	}

	sb.WriteString(fmt.Sprintf(" (%v)", result.Duration.Round(time.Millisecond)))
	return sb.String()
}
