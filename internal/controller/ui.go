// Package controller provides output adapters for displaying search progress and results.
package controller

import (
	"context"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	m "preach.dev/pkg/preach/internal/model"
)

// RunInfo describes a search about to start.
type RunInfo struct {
	RunID         string
	Strategy      string
	Functions     int
	Branches      int
	MaxIterations int
	TimeBudget    time.Duration
}

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeSearch StartMode = iota
	ModeGuide
	ModeReport
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode      StartMode
	interrupt context.CancelFunc
}

// WithSearchMode sets the UI to coverage search mode.
func WithSearchMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeSearch
	}
}

// WithGuideMode sets the UI to path-guided mode.
func WithGuideMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeGuide
	}
}

// WithReportMode sets the UI to display a coverage report.
func WithReportMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeReport
	}
}

// WithInterrupt registers the function called when the user aborts a
// running search from the UI.
func WithInterrupt(cancel context.CancelFunc) StartOption {
	return func(c *StartConfig) {
		c.interrupt = cancel
	}
}

func newStartConfig(options []StartOption) StartConfig {
	var cfg StartConfig
	for _, opt := range options {
		opt(&cfg)
	}

	return cfg
}

// UI displays the progress and the results of a search.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	Wait(ctx context.Context) // Wait for UI to finish (user closes it)
	DisplayRunInfo(ctx context.Context, info RunInfo)
	DisplayProgress(ctx context.Context, progress m.Progress)
	DisplayFinding(ctx context.Context, finding m.Finding)
	DisplayStats(ctx context.Context, stats m.SearchStats)
	DisplayCoverage(ctx context.Context, coverage []m.FunctionCoverage)
	DisplayInput(ctx context.Context, input []int64)
}

// NewUI returns the TUI when stdout is a terminal and the plain text UI
// otherwise.
func NewUI(cmd *cobra.Command, tty bool) UI {
	if tty {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
