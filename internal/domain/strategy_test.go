package domain

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStrategies_CoverToyProgram(t *testing.T) {
	for _, name := range []string{
		StrategyDFS,
		StrategyRandom,
		StrategyUniform,
		StrategyHybrid,
		StrategyCfgBaseline,
		StrategyCfg,
	} {
		t.Run(name, func(t *testing.T) {
			ts := newToySearch(t, toyOptions(300))

			st, err := NewStrategy(name, ts.Search)
			require.NoError(t, err)

			stats, err := ts.RunStrategy(context.Background(), st)
			require.NoError(t, err)

			assert.Equal(t, 6, stats.TotalCovered, "covered %v", ts.coverage.CoveredBranches())
			assert.LessOrEqual(t, stats.Iterations, 300)
			assert.Equal(t, ts.brute.opened, ts.brute.closed, "every solver session is released")
		})
	}
}

func TestBoundedDFS_ExploresAllPaths(t *testing.T) {
	ts := newToySearch(t, toyOptions(1000))

	stats, err := ts.RunStrategy(context.Background(), NewBoundedDFS(ts.Search))
	require.NoError(t, err)

	assert.Equal(t, 6, stats.TotalCovered)
	assert.Equal(t, 6, stats.Iterations, "dfs terminates on its own")
	assert.Zero(t, stats.PredictionFailures)
}

func TestBoundedDFS_DepthBound(t *testing.T) {
	opts := toyOptions(1000)
	opts.Depth = 1

	ts := newToySearch(t, opts)

	stats, err := ts.RunStrategy(context.Background(), NewBoundedDFS(ts.Search))
	require.NoError(t, err)

	// The initial run plus a single descent.
	assert.Equal(t, 2, stats.Iterations)
}

func TestBoundedDFS_BudgetExhaustionIsCleanStop(t *testing.T) {
	ts := newToySearch(t, toyOptions(2))

	stats, err := ts.RunStrategy(context.Background(), NewBoundedDFS(ts.Search))
	require.NoError(t, err)

	assert.Equal(t, 2, stats.Iterations)
	assert.Equal(t, ts.brute.opened, ts.brute.closed)
}

func TestRandomInputSearch_RunsUntilBudget(t *testing.T) {
	ts := newToySearch(t, toyOptions(50))

	stats, err := ts.RunStrategy(context.Background(), NewRandomInputSearch(ts.Search))
	require.NoError(t, err)

	assert.Equal(t, 50, stats.Iterations)
	assert.GreaterOrEqual(t, stats.TotalCovered, 2)
	assert.Zero(t, ts.brute.opened, "random testing never solves")
}

func TestRandomSearch_UnsolvableRestarts(t *testing.T) {
	ts := newToySearch(t, toyOptions(5))
	ts.brute.unsat = true

	stats, err := ts.RunStrategy(context.Background(), NewRandomSearch(ts.Search))
	require.NoError(t, err)

	assert.Equal(t, 5, stats.Iterations)
	assert.Equal(t, 6, stats.Restarts)
	assert.GreaterOrEqual(t, stats.Unsats, 10)
}

func TestCfgHeuristicSearch_RecordsCfgStats(t *testing.T) {
	ts := newToySearch(t, toyOptions(100))

	stats, err := ts.RunStrategy(context.Background(), NewCfgHeuristicSearch(ts.Search))
	require.NoError(t, err)

	assert.Positive(t, stats.Cfg.InnerSolves)
	assert.Positive(t, stats.Cfg.InnerSuccesses())
}
