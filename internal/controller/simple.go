package controller

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "preach.dev/pkg/preach/internal/model"
)

// SimpleUI implements UI using cobra Command's output writer.
type SimpleUI struct {
	cmd  *cobra.Command
	mode StartMode

	lastCovered int
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd, lastCovered: -1}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mode = newStartConfig(options).mode
	s.lastCovered = -1

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// Wait blocks until the UI is closed (no-op for SimpleUI).
func (s *SimpleUI) Wait(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
	// SimpleUI doesn't block - it just prints and continues
}

// DisplayRunInfo prints the search parameters.
func (s *SimpleUI) DisplayRunInfo(_ context.Context, info RunInfo) {
	s.printf("Run %s: strategy %s, %d branches in %d functions\n",
		info.RunID, info.Strategy, info.Branches, info.Functions)

	if info.MaxIterations > 0 || info.TimeBudget > 0 {
		s.printf("Budget: %s\n", formatBudget(info.MaxIterations, info.TimeBudget))
	}
}

// DisplayProgress prints a progress line whenever total coverage changed.
func (s *SimpleUI) DisplayProgress(_ context.Context, p m.Progress) {
	if p.TotalCovered == s.lastCovered {
		return
	}

	s.lastCovered = p.TotalCovered
	s.printf("Iteration %d (%ds): covered %d branches [%d reach funs, %d reach branches].\n",
		p.Iteration, int(p.Elapsed.Seconds()), p.TotalCovered, p.ReachableFunctions, p.ReachableBranches)
}

// DisplayFinding prints the branches discovered by a finding.
func (s *SimpleUI) DisplayFinding(_ context.Context, f m.Finding) {
	if s.mode == ModeReport {
		return
	}

	kind := "new"
	if f.Lucky {
		kind = "lucky"
	}

	s.printf("Iteration %d: %d %s branch(es) %s\n", f.Iteration, len(f.NewBranches), kind, formatBranches(f.NewBranches, 8))
}

// DisplayStats prints the final counters as a table.
func (s *SimpleUI) DisplayStats(_ context.Context, stats m.SearchStats) {
	s.printf("\n%s", renderStatsTable(stats))
}

// DisplayCoverage prints per-function coverage as a table.
func (s *SimpleUI) DisplayCoverage(_ context.Context, coverage []m.FunctionCoverage) {
	s.printf("\n%s", renderCoverageTable(coverage))
}

// DisplayInput prints a concrete input.
func (s *SimpleUI) DisplayInput(_ context.Context, input []int64) {
	s.printf("inputs:\n%s\n", formatInput(input))
}

func (s *SimpleUI) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func statsRows(stats m.SearchStats) [][]string {
	rows := [][]string{
		{"Strategy", stats.Strategy},
		{"Iterations", fmt.Sprintf("%d", stats.Iterations)},
		{"Elapsed", stats.Elapsed.Round(time.Millisecond).String()},
		{"Covered", fmt.Sprintf("%d/%d", stats.TotalCovered, stats.TotalBranches)},
		{"Reachable", fmt.Sprintf("%d funs, %d branches", stats.ReachableFunctions, stats.ReachableBranches)},
		{"Solves", fmt.Sprintf("%d (%d unsat, %d short-circuited)", stats.Solves, stats.Unsats, stats.ShortCircuits)},
		{"Prediction failures", fmt.Sprintf("%d (%d lucky)", stats.PredictionFailures, stats.LuckyFinds)},
		{"Restarts", fmt.Sprintf("%d", stats.Restarts)},
	}

	cfg := stats.Cfg
	if cfg != (m.CfgStats{}) {
		rows = append(rows,
			[]string{"Cfg solves", fmt.Sprintf("%d/%d (%d lucky, %d on 0's, %d on others, %d unsats, %d prediction failures)",
				cfg.InnerSuccesses(), cfg.InnerSolves, cfg.InnerLuckySuccesses, cfg.InnerZeroSuccesses,
				cfg.InnerNonzeroSuccesses, cfg.InnerUnsats, cfg.InnerPredictionFailures)},
			[]string{"Top-level SolveAlongCfg", fmt.Sprintf("%d/%d", cfg.TopSolveSuccesses, cfg.TopSolves)},
			[]string{"All SolveAlongCfg", fmt.Sprintf("%d/%d (%d all concrete, %d no paths)",
				cfg.SolveSuccesses, cfg.Solves, cfg.SolveAllConcrete, cfg.SolveNoPaths)},
			[]string{"SolveAlongCfg solver", fmt.Sprintf("%d/%d unsat, %d prediction failures, %d recursions",
				cfg.SolveUnsats, cfg.SolveSatAttempts, cfg.SolvePredFailures, cfg.SolveRecursions)},
		)
	}

	return rows
}

func renderStatsTable(stats m.SearchStats) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Statistic", "Value"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})
	table.AppendBulk(statsRows(stats))
	table.Render()

	return tableBuffer.String()
}

func renderCoverageTable(coverage []m.FunctionCoverage) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Function", "Covered", "Branches", "%"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT})

	covered, total := 0, 0

	for _, fc := range coverage {
		table.Append([]string{
			fmt.Sprintf("%d", fc.Function),
			fmt.Sprintf("%d", fc.Covered),
			fmt.Sprintf("%d", fc.Branches),
			formatPercent(fc.Covered, fc.Branches),
		})

		covered += fc.Covered
		total += fc.Branches
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Functions %d", len(coverage)),
		fmt.Sprintf("%d", covered),
		fmt.Sprintf("%d", total),
		formatPercent(covered, total),
	})

	table.Render()

	return tableBuffer.String()
}

func formatPercent(n, total int) string {
	if total == 0 {
		return "-"
	}

	return fmt.Sprintf("%.1f", 100*float64(n)/float64(total))
}

func formatBranches(bs []m.BranchID, limit int) string {
	parts := make([]string, 0, min(len(bs), limit)+1)
	for i, b := range bs {
		if i == limit {
			parts = append(parts, fmt.Sprintf("(+%d)", len(bs)-limit))
			break
		}

		parts = append(parts, b.String())
	}

	return strings.Join(parts, " ")
}

func formatInput(input []int64) string {
	parts := make([]string, len(input))
	for i, v := range input {
		parts[i] = fmt.Sprintf("%d", v)
	}

	return strings.Join(parts, " ")
}

func formatBudget(iterations int, budget time.Duration) string {
	var parts []string

	if iterations > 0 {
		parts = append(parts, fmt.Sprintf("%d iterations", iterations))
	}

	if budget > 0 {
		parts = append(parts, budget.String())
	}

	return strings.Join(parts, ", ")
}
