// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Tests for executor

//go:build !windows

package tests

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/sony-level/tempdir/internal/exec"
)

func TestRunnerSuccess(t *testing.T) {
	var stdout bytes.Buffer
	runner := exec.NewRunner(&exec.RunnerConfig{
		WorkingDir: t.TempDir(),
		Stdout:     &stdout,
	})

	result := runner.Run(context.Background(), "sh", "-c", "echo hello world")

	if !result.Success {
		t.Fatalf("echo should succeed: %v", result.Error)
	}
	if result.ExitCode != 0 {
		t.Errorf("Expected exit code 0, got %d", result.ExitCode)
	}
	if strings.TrimSpace(stdout.String()) != "hello world" {
		t.Errorf("Unexpected stdout: %q", stdout.String())
	}
}

func TestRunnerExitCode(t *testing.T) {
	runner := exec.NewRunner(&exec.RunnerConfig{Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}})

	result := runner.Run(context.Background(), "sh", "-c", "exit 3")

	if result.Success {
		t.Error("exit 3 should fail")
	}
	if result.ExitCode != 3 {
		t.Errorf("Expected exit code 3, got %d", result.ExitCode)
	}
	if result.Error == nil || !strings.Contains(result.Error.Error(), "code 3") {
		t.Errorf("Unexpected error: %v", result.Error)
	}
}

func TestRunnerEnv(t *testing.T) {
	var stdout bytes.Buffer
	runner := exec.NewRunner(&exec.RunnerConfig{
		Env:    []string{"TEMPDIR_PATH=/tmp/bar"},
		Stdout: &stdout,
	})

	result := runner.Run(context.Background(), "sh", "-c", `printf %s "$TEMPDIR_PATH"`)

	if !result.Success {
		t.Fatalf("command failed: %v", result.Error)
	}
	if stdout.String() != "/tmp/bar" {
		t.Errorf("TEMPDIR_PATH = %q, want /tmp/bar", stdout.String())
	}
}

func TestRunnerTimeout(t *testing.T) {
	runner := exec.NewRunner(&exec.RunnerConfig{
		Timeout:     100 * time.Millisecond,
		GracePeriod: 100 * time.Millisecond,
	})

	start := time.Now()
	result := runner.Run(context.Background(), "sleep", "10")

	if result.Success {
		t.Error("sleep should have been interrupted")
	}
	if result.Error == nil || !strings.Contains(result.Error.Error(), "timed out") {
		t.Errorf("Expected timeout error, got %v", result.Error)
	}
	if time.Since(start) > 5*time.Second {
		t.Errorf("Timeout took too long: %v", time.Since(start))
	}
}

func TestRunnerCancel(t *testing.T) {
	runner := exec.NewRunner(&exec.RunnerConfig{GracePeriod: 100 * time.Millisecond})

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(100*time.Millisecond, cancel)

	result := runner.Run(ctx, "sleep", "10")

	if result.Success {
		t.Error("cancelled command should fail")
	}
	if result.Error == nil || !strings.Contains(result.Error.Error(), "interrupted") {
		t.Errorf("Expected interrupted error, got %v", result.Error)
	}
}

func TestRunnerStartFailure(t *testing.T) {
	runner := exec.NewRunner(nil)

	result := runner.Run(context.Background(), "definitely-not-a-real-command-tempdir")

	if result.Success {
		t.Error("missing binary should fail")
	}
	if result.ExitCode != -1 {
		t.Errorf("Expected exit code -1, got %d", result.ExitCode)
	}
}

func TestLookPath(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Errorf("LookPath(sh) error = %v", err)
	}
	if _, err := exec.LookPath("definitely-not-a-real-command-tempdir"); err == nil {
		t.Error("LookPath() should fail for a missing command")
	}
}

func TestFormatCommandResult(t *testing.T) {
	ok := exec.FormatCommandResult(&exec.CommandResult{
		Command: []string{"go", "test"},
		Success: true,
	})
	if !strings.Contains(ok, "✓ go test: Success") {
		t.Errorf("Unexpected format: %s", ok)
	}

	failed := exec.FormatCommandResult(&exec.CommandResult{
		Command:  []string{"go", "test"},
		ExitCode: 1,
	})
	if !strings.Contains(failed, "✗ go test: Failed") {
		t.Errorf("Unexpected format: %s", failed)
	}
}
