package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"preach.dev/pkg/preach/internal/adapter"
	"preach.dev/pkg/preach/internal/controller"
	m "preach.dev/pkg/preach/internal/model"
)

// SearchArgs contains the arguments of a search run.
type SearchArgs struct {
	Strategy string
	Branches m.Path
	CFG      m.Path
	Driver   DriverConfig

	// Coverage is the coverage artifact; empty disables persistence.
	Coverage m.Path
	Resume   bool
	// Stats is where the final counters are written; empty skips them.
	Stats m.Path
	// Findings is the directory receiving the inputs that grew coverage;
	// empty skips the export.
	Findings m.Path
	// Seed seeds the random generator; zero derives it from the clock.
	Seed    uint64
	Options Options
}

// CoverageArgs contains the arguments of a coverage report.
type CoverageArgs struct {
	Branches m.Path
	Coverage m.Path
}

// Workflow defines the top-level operations of the CLI.
type Workflow interface {
	Search(ctx context.Context, args SearchArgs) (m.SearchStats, error)
	Guide(ctx context.Context, args SearchArgs) (GuideResult, error)
	Coverage(ctx context.Context, args CoverageArgs) ([]m.FunctionCoverage, error)
}

type workflow struct {
	adapter.ArtifactFSAdapter
	adapter.TargetRunnerAdapter
	adapter.SolverAdapter
	adapter.StatsStore
	controller.UI

	newCoverageStore    func(path m.Path) adapter.CoverageStore
	newFindingsRecorder func() (adapter.FindingsRecorder, error)
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	fsAdapter adapter.ArtifactFSAdapter,
	runner adapter.TargetRunnerAdapter,
	solver adapter.SolverAdapter,
	statsStore adapter.StatsStore,
	ui controller.UI,
) Workflow {
	return &workflow{
		ArtifactFSAdapter:   fsAdapter,
		TargetRunnerAdapter: runner,
		SolverAdapter:       solver,
		StatsStore:          statsStore,
		UI:                  ui,
		newCoverageStore: func(path m.Path) adapter.CoverageStore {
			return adapter.NewFileCoverageStore(path)
		},
		newFindingsRecorder: func() (adapter.FindingsRecorder, error) {
			return adapter.NewSpillFindingsRecorder("")
		},
	}
}

// searchEnv is everything a strategy runs against.
type searchEnv struct {
	artifacts Artifacts
	search    *Search
	findings  adapter.FindingsRecorder
}

func (e *searchEnv) close() {
	if e.findings == nil {
		return
	}

	if err := e.findings.Close(); err != nil {
		slog.Warn("Failed to close findings recorder", "error", err)
	}
}

func (w *workflow) prepare(ctx context.Context, args SearchArgs) (*searchEnv, error) {
	artifacts, err := LoadArtifacts(ctx, w.ArtifactFSAdapter, args.Branches, args.CFG)
	if err != nil {
		return nil, err
	}

	var store adapter.CoverageStore
	if args.Coverage != "" {
		store = w.newCoverageStore(args.Coverage)
	}

	tracker := NewCoverageTracker(artifacts.Universe, artifacts.CFG, store)

	if args.Resume && store != nil {
		loaded, err := tracker.Resume(ctx)
		if err != nil {
			return nil, err
		}

		slog.Info("Resumed coverage", "path", args.Coverage, "branches", loaded)
	}

	findings, err := w.newFindingsRecorder()
	if err != nil {
		return nil, fmt.Errorf("%w: findings recorder: %w", ErrEnvironment, err)
	}

	seed := args.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	slog.Debug("Seeded random generator", "seed", seed)

	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	opts := args.Options
	if opts.RunID == "" {
		opts.RunID = uuid.NewString()
	}

	search := NewSearch(SearchDeps{
		Artifacts: artifacts,
		Coverage:  tracker,
		Solver:    NewBranchSolver(w.SolverAdapter, artifacts.Universe, rng),
		Driver:    NewExecutionDriver(w.ArtifactFSAdapter, w.TargetRunnerAdapter, args.Driver),
		UI:        w.UI,
		Findings:  findings,
		Rand:      rng,
	}, opts)

	return &searchEnv{artifacts: artifacts, search: search, findings: findings}, nil
}

func (w *workflow) Search(ctx context.Context, args SearchArgs) (m.SearchStats, error) {
	env, err := w.prepare(ctx, args)
	if err != nil {
		return m.SearchStats{}, err
	}
	defer env.close()

	strategy, err := NewStrategy(args.Strategy, env.search)
	if err != nil {
		return m.SearchStats{}, err
	}

	return w.runWithUI(ctx, env, strategy, args, controller.WithSearchMode())
}

func (w *workflow) Guide(ctx context.Context, args SearchArgs) (GuideResult, error) {
	env, err := w.prepare(ctx, args)
	if err != nil {
		return GuideResult{}, err
	}
	defer env.close()

	guided, err := NewPathGuidedSearch(env.search)
	if err != nil {
		return GuideResult{}, err
	}

	_, err = w.runWithUI(ctx, env, guided, args, controller.WithGuideMode(), func(ctx context.Context) {
		if ex := guided.Result().Execution; ex != nil {
			w.DisplayInput(ctx, ex.CloneInputs())
		}
	})

	result := guided.Result()

	slog.Info("Guided search finished",
		"matched", result.Matched,
		"target_len", len(guided.Target()),
		"complete", result.Complete,
		"error", err)

	return result, err
}

// runWithUI runs strategy between Start and Close of the UI, then writes the
// statistics and exports the findings. An interrupt from the UI is a clean
// stop.
func (w *workflow) runWithUI(
	ctx context.Context,
	env *searchEnv,
	strategy Strategy,
	args SearchArgs,
	mode controller.StartOption,
	after ...func(ctx context.Context),
) (m.SearchStats, error) {
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := w.Start(ctx, mode, controller.WithInterrupt(cancel)); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return m.SearchStats{}, err
	}

	w.DisplayRunInfo(ctx, controller.RunInfo{
		RunID:         env.search.opts.RunID,
		Strategy:      strategy.Name(),
		Functions:     env.artifacts.Universe.NumFunctions(),
		Branches:      env.artifacts.Universe.NumBranches(),
		MaxIterations: env.search.opts.MaxIterations,
		TimeBudget:    env.search.opts.TimeBudget,
	})

	stats, err := env.search.RunStrategy(runCtx, strategy)
	if errors.Is(err, context.Canceled) && ctx.Err() == nil {
		slog.Info("Search interrupted from the UI", "iterations", stats.Iterations)
		err = nil
	}

	// Reports are written even when the search was cancelled.
	finishCtx := context.WithoutCancel(ctx)

	for _, fn := range after {
		fn(finishCtx)
	}

	if saveErr := w.saveResults(finishCtx, env, args, stats); saveErr != nil && err == nil {
		err = saveErr
	}

	w.Wait(ctx)
	w.Close(finishCtx)

	return stats, err
}

func (w *workflow) saveResults(ctx context.Context, env *searchEnv, args SearchArgs, stats m.SearchStats) error {
	if args.Stats != "" {
		if err := w.SaveStats(ctx, args.Stats, stats); err != nil {
			slog.Error("Failed to save statistics", "path", args.Stats, "error", err)
			return fmt.Errorf("save stats: %w", err)
		}
	}

	if args.Findings != "" && env.findings.Len() > 0 {
		if _, err := env.findings.Export(ctx, args.Findings); err != nil {
			slog.Error("Failed to export findings", "dir", args.Findings, "error", err)
			return fmt.Errorf("export findings: %w", err)
		}
	}

	return nil
}

func (w *workflow) Coverage(ctx context.Context, args CoverageArgs) ([]m.FunctionCoverage, error) {
	artifacts, err := LoadArtifacts(ctx, w.ArtifactFSAdapter, args.Branches, "")
	if err != nil {
		return nil, err
	}

	tracker := NewCoverageTracker(artifacts.Universe, nil, w.newCoverageStore(args.Coverage))

	if _, err := tracker.Resume(ctx); err != nil {
		return nil, err
	}

	report := tracker.FunctionCoverage()

	if err := w.Start(ctx, controller.WithReportMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return nil, err
	}

	w.DisplayCoverage(ctx, report)
	w.Wait(ctx)
	w.Close(ctx)

	return report, nil
}
