package adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"
)

// TargetRunnerAdapter abstracts launching the instrumented target program.
type TargetRunnerAdapter interface {
	// RunTarget runs the target once in workDir. The target consumes the input
	// artifact and emits the execution record. A non-zero exit status is not an
	// error: crashing inputs are still valid executions.
	RunTarget(ctx context.Context, workDir string) (output string, err error)
}

// LocalTargetRunnerAdapter runs the target through /bin/sh so the configured
// command may carry arguments and redirections.
type LocalTargetRunnerAdapter struct {
	command string
	timeout time.Duration
}

// NewLocalTargetRunnerAdapter constructs a LocalTargetRunnerAdapter. A zero
// timeout disables the per-run deadline.
func NewLocalTargetRunnerAdapter(command string, timeout time.Duration) *LocalTargetRunnerAdapter {
	return &LocalTargetRunnerAdapter{
		command: command,
		timeout: timeout,
	}
}

// RunTarget implements TargetRunnerAdapter.
func (a *LocalTargetRunnerAdapter) RunTarget(ctx context.Context, workDir string) (string, error) {
	if a.timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, "/bin/sh", "-c", a.command)
	cmd.Dir = workDir

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	output := stdout.String() + stderr.String()

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && ctx.Err() == nil {
		return output, nil
	}

	if err != nil {
		return output, fmt.Errorf("run target %q: %w", a.command, err)
	}

	return output, nil
}
