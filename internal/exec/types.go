// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Execution types

package exec

import (
	"io"
	"time"

	"go.uber.org/zap"
)

// DefaultGracePeriod is how long an interrupted command may take to exit
// before it is killed
const DefaultGracePeriod = 10 * time.Second

// RunnerConfig configures the command runner
type RunnerConfig struct {
	WorkingDir  string        // Empty means the current directory
	Env         []string      // Appended to the parent environment
	Stdout      io.Writer     // Defaults to os.Stdout
	Stderr      io.Writer     // Defaults to os.Stderr
	Timeout     time.Duration // Zero means no timeout
	GracePeriod time.Duration
	Logger      *zap.Logger
}

// CommandResult contains the result of running a command
type CommandResult struct {
	Command  []string
	Success  bool
	ExitCode int
	Duration time.Duration
	Error    error
}
