package domain

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"preach.dev/pkg/preach/internal/adapter"
	m "preach.dev/pkg/preach/internal/model"
)

// ExecutionDriver runs the instrumented target on a concrete input and
// returns the execution it recorded.
type ExecutionDriver interface {
	RunProgram(ctx context.Context, input []int64) (*m.Execution, error)
}

// DriverConfig names the files exchanged with the target.
type DriverConfig struct {
	WorkDir       string
	InputPath     m.Path
	ExecutionPath m.Path
}

type executionDriver struct {
	fs     adapter.ArtifactFSAdapter
	runner adapter.TargetRunnerAdapter
	config DriverConfig
}

// NewExecutionDriver constructs an ExecutionDriver backed by the provided
// artifact and target runner adapters.
func NewExecutionDriver(fs adapter.ArtifactFSAdapter, runner adapter.TargetRunnerAdapter, config DriverConfig) ExecutionDriver {
	return &executionDriver{fs: fs, runner: runner, config: config}
}

// RunProgram writes the input artifact, runs the target and parses the
// execution record. Every failure other than cancellation wraps
// ErrEnvironment.
func (d *executionDriver) RunProgram(ctx context.Context, input []int64) (*m.Execution, error) {
	start := time.Now()
	defer func() { executionDuration.Observe(time.Since(start).Seconds()) }()

	if err := d.fs.WriteInput(ctx, d.config.InputPath, input); err != nil {
		return nil, d.fail(ctx, "write input", err)
	}

	output, err := d.runner.RunTarget(ctx, d.config.WorkDir)
	if err != nil {
		return nil, d.fail(ctx, "run target", err)
	}

	ex, err := d.fs.ReadExecution(ctx, d.config.ExecutionPath)
	if err != nil {
		slog.Debug("Target output", "output", output)
		return nil, d.fail(ctx, "read execution", err)
	}

	return ex, nil
}

func (d *executionDriver) fail(ctx context.Context, step string, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}

	slog.Error("Execution failed", "step", step, "error", err)

	return fmt.Errorf("%w: %s: %w", ErrEnvironment, step, err)
}
