package controller

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "preach.dev/pkg/preach/internal/model"
)

func newTestSimpleUI(t *testing.T, options ...StartOption) (*SimpleUI, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	ui := NewSimpleUI(cmd)
	require.NoError(t, ui.Start(context.Background(), options...))

	return ui, &buf
}

func TestSimpleUI_StartCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ui := NewSimpleUI(&cobra.Command{})
	require.ErrorIs(t, ui.Start(ctx), context.Canceled)
}

func TestSimpleUI_DisplayRunInfo(t *testing.T) {
	tests := []struct {
		name         string
		info         RunInfo
		wantContains []string
		wantMissing  []string
	}{
		{
			name:         "iteration budget",
			info:         RunInfo{RunID: "r1", Strategy: "dfs", Functions: 3, Branches: 12, MaxIterations: 100},
			wantContains: []string{"Run r1", "strategy dfs", "12 branches in 3 functions", "Budget: 100 iterations"},
		},
		{
			name:         "both budgets",
			info:         RunInfo{RunID: "r2", Strategy: "cfg", MaxIterations: 5, TimeBudget: time.Minute},
			wantContains: []string{"Budget: 5 iterations, 1m0s"},
		},
		{
			name:         "no budget",
			info:         RunInfo{RunID: "r3", Strategy: "random"},
			wantContains: []string{"strategy random"},
			wantMissing:  []string{"Budget"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ui, buf := newTestSimpleUI(t, WithSearchMode())

			ui.DisplayRunInfo(context.Background(), tt.info)

			got := buf.String()
			for _, want := range tt.wantContains {
				assert.Contains(t, got, want)
			}

			for _, missing := range tt.wantMissing {
				assert.NotContains(t, got, missing)
			}
		})
	}
}

func TestSimpleUI_DisplayProgressOnlyOnChange(t *testing.T) {
	ui, buf := newTestSimpleUI(t, WithSearchMode())
	ctx := context.Background()

	ui.DisplayProgress(ctx, m.Progress{Iteration: 1, Elapsed: 2 * time.Second, TotalCovered: 4, ReachableFunctions: 2, ReachableBranches: 10})
	ui.DisplayProgress(ctx, m.Progress{Iteration: 2, TotalCovered: 4})
	ui.DisplayProgress(ctx, m.Progress{Iteration: 3, TotalCovered: 6})

	got := buf.String()
	assert.Contains(t, got, "Iteration 1 (2s): covered 4 branches [2 reach funs, 10 reach branches].")
	assert.NotContains(t, got, "Iteration 2 ")
	assert.Contains(t, got, "Iteration 3 (0s): covered 6 branches")
}

func TestSimpleUI_DisplayFinding(t *testing.T) {
	ui, buf := newTestSimpleUI(t, WithSearchMode())
	ctx := context.Background()

	ui.DisplayFinding(ctx, m.Finding{Iteration: 4, NewBranches: []m.BranchID{3, 7}})
	ui.DisplayFinding(ctx, m.Finding{Iteration: 9, NewBranches: []m.BranchID{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, Lucky: true})

	got := buf.String()
	assert.Contains(t, got, "Iteration 4: 2 new branch(es) 3 7")
	assert.Contains(t, got, "Iteration 9: 10 lucky branch(es) 1 2 3 4 5 6 7 8 (+2)")
}

func TestSimpleUI_DisplayFindingSilentInReportMode(t *testing.T) {
	ui, buf := newTestSimpleUI(t, WithReportMode())

	ui.DisplayFinding(context.Background(), m.Finding{Iteration: 1, NewBranches: []m.BranchID{1}})

	assert.Empty(t, buf.String())
}

func TestSimpleUI_DisplayStats(t *testing.T) {
	tests := []struct {
		name         string
		stats        m.SearchStats
		wantContains []string
		wantMissing  []string
	}{
		{
			name: "plain strategy",
			stats: m.SearchStats{
				Strategy: "dfs", Iterations: 42, TotalCovered: 4, TotalBranches: 6,
				Solves: 10, Unsats: 3, ShortCircuits: 1, PredictionFailures: 2, LuckyFinds: 1,
			},
			wantContains: []string{"dfs", "42", "4/6", "10 (3 unsat, 1 short-circuited)", "2 (1 lucky)"},
			wantMissing:  []string{"Cfg solves"},
		},
		{
			name: "cfg strategy",
			stats: m.SearchStats{
				Strategy: "cfg",
				Cfg:      m.CfgStats{InnerSolves: 5, InnerZeroSuccesses: 2, TopSolves: 3, TopSolveSuccesses: 1, Solves: 4, SolveNoPaths: 1},
			},
			wantContains: []string{"Cfg solves", "3/5", "Top-level SolveAlongCfg", "1/3", "4 (0 all concrete, 1 no paths)"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ui, buf := newTestSimpleUI(t)

			ui.DisplayStats(context.Background(), tt.stats)

			got := buf.String()
			for _, want := range tt.wantContains {
				assert.Contains(t, got, want)
			}

			for _, missing := range tt.wantMissing {
				assert.NotContains(t, got, missing)
			}
		})
	}
}

func TestSimpleUI_DisplayCoverage(t *testing.T) {
	ui, buf := newTestSimpleUI(t, WithReportMode())

	ui.DisplayCoverage(context.Background(), []m.FunctionCoverage{
		{Function: 0, Branches: 4, Covered: 3},
		{Function: 1, Branches: 0, Covered: 0},
	})

	got := buf.String()
	assert.Contains(t, got, "75.0")
	assert.Contains(t, got, "-")
	assert.Contains(t, got, "4")
}

func TestSimpleUI_DisplayInput(t *testing.T) {
	ui, buf := newTestSimpleUI(t, WithGuideMode())

	ui.DisplayInput(context.Background(), []int64{3, -1, 0})

	assert.Equal(t, "inputs:\n3 -1 0\n", buf.String())
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "-", formatPercent(1, 0))
	assert.Equal(t, "50.0", formatPercent(1, 2))
	assert.Equal(t, "100.0", formatPercent(3, 3))
}

func TestFormatBranches(t *testing.T) {
	assert.Empty(t, formatBranches(nil, 8))
	assert.Equal(t, "call 2 ret", formatBranches([]m.BranchID{m.CallID, 2, m.ReturnID}, 8))
	assert.Equal(t, "1 2 (+1)", formatBranches([]m.BranchID{1, 2, 3}, 2))
}

func TestNewUI(t *testing.T) {
	cmd := &cobra.Command{}

	assert.IsType(t, &SimpleUI{}, NewUI(cmd, false))
	assert.IsType(t, &TUI{}, NewUI(cmd, true))
	assert.False(t, IsTTY(nil))
}
