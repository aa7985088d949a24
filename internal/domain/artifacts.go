package domain

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"preach.dev/pkg/preach/internal/adapter"
	m "preach.dev/pkg/preach/internal/model"
)

// Artifacts are the static inputs of a search.
type Artifacts struct {
	Universe *Universe
	CFG      *ControlFlowGraph
}

// LoadArtifacts reads the branch listing and the CFG concurrently. An empty
// cfgPath yields a graph without edges.
func LoadArtifacts(ctx context.Context, fs adapter.ArtifactFSAdapter, branchesPath, cfgPath m.Path) (Artifacts, error) {
	var (
		listing m.BranchListing
		records []m.Successors
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error

		listing, err = fs.LoadBranchListing(gctx, branchesPath)

		return err
	})

	if cfgPath != "" {
		g.Go(func() error {
			var err error

			records, err = fs.LoadCFG(gctx, cfgPath)

			return err
		})
	}

	if err := g.Wait(); err != nil {
		slog.Error("Failed to load artifacts", "branches", branchesPath, "cfg", cfgPath, "error", err)
		return Artifacts{}, fmt.Errorf("%w: load artifacts: %w", ErrEnvironment, err)
	}

	universe, err := NewUniverse(listing)
	if err != nil {
		return Artifacts{}, fmt.Errorf("%w: branch listing %s: %w", ErrEnvironment, branchesPath, err)
	}

	cfg, err := NewControlFlowGraph(universe, records)
	if err != nil {
		return Artifacts{}, fmt.Errorf("%w: cfg %s: %w", ErrEnvironment, cfgPath, err)
	}

	slog.Info("Loaded artifacts",
		"functions", universe.NumFunctions(),
		"branches", universe.NumBranches(),
		"cfg_records", len(records))

	return Artifacts{Universe: universe, CFG: cfg}, nil
}
