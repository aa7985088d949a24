package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"preach.dev/pkg/preach/internal/adapter"
	"preach.dev/pkg/preach/internal/controller"
	m "preach.dev/pkg/preach/internal/model"
)

// Options configure a search run. Zero budgets mean unlimited.
type Options struct {
	RunID         string
	MaxIterations int
	TimeBudget    time.Duration

	// Depth bounds the bounded DFS recursion and the uniform random walk.
	Depth int
	// StepSize is the window width of the hybrid local search.
	StepSize int
	// CfgDepth and CfgIterations bound one CFG-heuristic pass.
	CfgDepth      int
	CfgIterations int
	// BaselineIterations bounds one CFG-baseline pass.
	BaselineIterations int

	// TargetPath is the path-guided target. A negative entry -b stands for
	// the pair of branch b.
	TargetPath   []int64
	SeedInput    []int64
	GuideRetries int
	Strict       bool
}

// DefaultOptions returns the tuned constants of every strategy.
func DefaultOptions() Options {
	return Options{
		MaxIterations:      1000000,
		Depth:              1000000,
		StepSize:           8,
		CfgDepth:           5,
		CfgIterations:      30,
		BaselineIterations: 250,
		GuideRetries:       100,
	}
}

// SearchDeps are the collaborators of a Search.
type SearchDeps struct {
	Artifacts Artifacts
	Coverage  *CoverageTracker
	Solver    *BranchSolver
	Driver    ExecutionDriver
	UI        controller.UI
	Findings  adapter.FindingsRecorder
	Rand      *rand.Rand
	Clock     func() time.Time
}

// Search is the state shared by every strategy: the static artifacts, the
// coverage tracker, the solver, the budgets and the statistics.
type Search struct {
	universe *Universe
	cfg      *ControlFlowGraph
	coverage *CoverageTracker
	solver   *BranchSolver
	driver   ExecutionDriver
	ui       controller.UI
	findings adapter.FindingsRecorder
	rng      *rand.Rand
	clock    func() time.Time
	opts     Options

	strategy   string
	start      time.Time
	iterations int
	stats      m.SearchStats
}

// NewSearch wires a Search. A nil clock uses time.Now and a nil Rand is
// seeded from the clock.
func NewSearch(deps SearchDeps, opts Options) *Search {
	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}

	rng := deps.Rand
	if rng == nil {
		seed := uint64(clock().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>1))
	}

	return &Search{
		universe: deps.Artifacts.Universe,
		cfg:      deps.Artifacts.CFG,
		coverage: deps.Coverage,
		solver:   deps.Solver,
		driver:   deps.Driver,
		ui:       deps.UI,
		findings: deps.Findings,
		rng:      rng,
		clock:    clock,
		opts:     opts,
		start:    clock(),
	}
}

// Coverage returns the tracker shared by the strategies.
func (s *Search) Coverage() *CoverageTracker {
	return s.coverage
}

// Iterations returns the number of executions so far.
func (s *Search) Iterations() int {
	return s.iterations
}

// Stats returns a snapshot of the counters.
func (s *Search) Stats() m.SearchStats {
	stats := s.stats
	stats.RunID = s.opts.RunID
	stats.Strategy = s.strategy
	stats.Iterations = s.iterations
	stats.Elapsed = s.clock().Sub(s.start)
	stats.TotalCovered = s.coverage.TotalCovered()
	stats.TotalBranches = s.universe.NumBranches()
	stats.ReachableFunctions, stats.ReachableBranches = s.coverage.Reachable()

	if s.solver != nil {
		solver := s.solver.Stats()
		stats.Solves = solver.Queries
		stats.Unsats = solver.Unsats
		stats.ShortCircuits = solver.ShortCircuits
	}

	return stats
}

// RunStrategy runs st until it finishes, a budget is exhausted or ctx is
// cancelled. Budget exhaustion is a clean stop.
func (s *Search) RunStrategy(ctx context.Context, st Strategy) (m.SearchStats, error) {
	s.strategy = st.Name()
	s.start = s.clock()

	slog.Info("Starting search",
		"strategy", s.strategy,
		"run_id", s.opts.RunID,
		"branches", s.universe.NumBranches(),
		"max_iterations", s.opts.MaxIterations,
		"time_budget", s.opts.TimeBudget)

	s.report(ctx)

	err := st.Run(ctx)
	if s.solver != nil {
		s.solver.Release()
	}

	if errors.Is(err, ErrBudgetExhausted) {
		slog.Info("Search budget exhausted", "iterations", s.iterations)
		err = nil
	}

	stats := s.Stats()

	slog.Info("Search finished",
		"strategy", s.strategy,
		"iterations", stats.Iterations,
		"covered", stats.TotalCovered,
		"elapsed", stats.Elapsed,
		"error", err)

	if s.ui != nil {
		s.ui.DisplayStats(ctx, stats)
	}

	return stats, err
}

// outcome is one execution and what it did to coverage.
type outcome struct {
	ex        *m.Execution
	grew      bool
	fresh     []m.BranchID
	predicted bool
}

func (s *Search) checkBudget(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if s.opts.MaxIterations > 0 && s.iterations >= s.opts.MaxIterations {
		return ErrBudgetExhausted
	}

	if s.opts.TimeBudget > 0 && s.clock().Sub(s.start) >= s.opts.TimeBudget {
		return ErrBudgetExhausted
	}

	return nil
}

// runProgram runs the target without touching coverage.
func (s *Search) runProgram(ctx context.Context, input []int64) (*m.Execution, error) {
	if err := s.checkBudget(ctx); err != nil {
		return nil, err
	}

	s.iterations++
	executionsTotal.WithLabelValues(s.strategy).Inc()

	return s.driver.RunProgram(ctx, input)
}

// execute runs input and updates coverage. New coverage is recorded as a
// finding.
func (s *Search) execute(ctx context.Context, input []int64) (outcome, error) {
	ex, err := s.runProgram(ctx, input)
	if err != nil {
		return outcome{}, err
	}

	o := outcome{ex: ex, predicted: true}

	o.grew, o.fresh, err = s.coverage.UpdateCoverage(ctx, ex)
	if err != nil {
		return o, err
	}

	s.report(ctx)

	if o.grew {
		s.recordFinding(ctx, o, false)
	}

	return o, nil
}

// force runs an input produced by negating constraint c of prev and checks
// the prediction. A finding with a failed prediction is recorded as lucky.
func (s *Search) force(ctx context.Context, prev *m.Execution, c int, input []int64) (outcome, error) {
	o, err := s.runForced(ctx, prev, c, input)
	if err != nil {
		return o, err
	}

	if o.grew {
		s.recordForced(ctx, o, !o.predicted)
	}

	return o, nil
}

// runForced is force without recording a finding.
func (s *Search) runForced(ctx context.Context, prev *m.Execution, c int, input []int64) (outcome, error) {
	ex, err := s.runProgram(ctx, input)
	if err != nil {
		return outcome{}, err
	}

	o := outcome{ex: ex}

	o.grew, o.fresh, err = s.coverage.UpdateCoverage(ctx, ex)
	if err != nil {
		return o, err
	}

	s.report(ctx)

	branchIdx := prev.Path.PathIndex(c)
	o.predicted = s.solver.CheckPrediction(prev, ex, branchIdx)

	if !o.predicted {
		s.stats.PredictionFailures++
		s.solver.notePredictionFailure(prev, ex, branchIdx)

		if o.grew {
			slog.Info("Prediction failed (but got lucky)", "iteration", s.iterations, "constraint", c)
		}
	}

	return o, nil
}

func (s *Search) recordForced(ctx context.Context, o outcome, lucky bool) {
	if lucky {
		s.stats.LuckyFinds++
	}

	s.recordFinding(ctx, o, lucky)
}

func (s *Search) recordFinding(ctx context.Context, o outcome, lucky bool) {
	kind := "legit"
	if lucky {
		kind = "lucky"
	}

	findingsTotal.WithLabelValues(kind).Inc()

	finding := m.Finding{
		Iteration:   s.iterations,
		Strategy:    s.strategy,
		Input:       o.ex.CloneInputs(),
		NewBranches: o.fresh,
		Lucky:       lucky,
	}

	if s.findings != nil {
		if err := s.findings.RecordFinding(finding); err != nil {
			slog.Warn("Failed to record finding", "iteration", s.iterations, "error", err)
		}
	}

	if s.ui != nil {
		s.ui.DisplayFinding(ctx, finding)
	}
}

func (s *Search) report(ctx context.Context) {
	reachFuns, reachBranches := s.coverage.Reachable()

	p := m.Progress{
		Iteration:          s.iterations,
		Elapsed:            s.clock().Sub(s.start),
		RoundCovered:       s.coverage.RoundCovered(),
		TotalCovered:       s.coverage.TotalCovered(),
		TotalBranches:      s.universe.NumBranches(),
		ReachableFunctions: reachFuns,
		ReachableBranches:  reachBranches,
	}

	slog.Debug(fmt.Sprintf("Iteration %d (%ds): covered %d branches [%d reach funs, %d reach branches]",
		p.Iteration, int(p.Elapsed.Seconds()), p.TotalCovered, p.ReachableFunctions, p.ReachableBranches))

	if s.ui != nil {
		s.ui.DisplayProgress(ctx, p)
	}
}

// restartInput is the input of a new round: empty for the first round, fresh
// random values of the previous execution's variables afterwards.
func (s *Search) restartInput(prev *m.Execution) []int64 {
	s.stats.Restarts++

	if prev == nil || len(prev.Vars) == 0 {
		return nil
	}

	return s.solver.RandomInput(prev.Vars)
}

// shuffle permutes xs with the injected generator.
func shuffle[T any](rng *rand.Rand, xs []T) {
	rng.Shuffle(len(xs), func(i, j int) { xs[i], xs[j] = xs[j], xs[i] })
}

// pickWithoutReplacement removes and returns a random element of *idxs.
func pickWithoutReplacement(rng *rand.Rand, idxs *[]int) int {
	list := *idxs
	r := rng.IntN(len(list))
	picked := list[r]
	list[r] = list[len(list)-1]
	*idxs = list[:len(list)-1]

	return picked
}

func indexRange(start, end int) []int {
	out := make([]int, 0, max(end-start, 0))
	for i := start; i < end; i++ {
		out = append(out, i)
	}

	return out
}
