package domain

import (
	"context"
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "preach.dev/pkg/preach/internal/model"
)

// nestedPath is 1 ( 5 ) 3.
func nestedPath() m.SymbolicPath {
	var b pathBuilder

	b.branch(1, pred(0, map[m.VarID]int64{0: 1}, m.OpGT))
	b.event(m.CallID)
	b.branch(5, pred(0, map[m.VarID]int64{1: 1}, m.OpGT))
	b.event(m.ReturnID)
	b.branch(3, pred(0, map[m.VarID]int64{1: 1}, m.OpEQ))

	return b.path()
}

func TestFindAlongCfg(t *testing.T) {
	path := nestedPath()

	tests := []struct {
		name string
		i    int
		dist int
		bs   []m.BranchID
		want bool
	}{
		{"branch at index", 0, 0, []m.BranchID{1}, true},
		{"callee out of reach", 0, 0, []m.BranchID{5}, false},
		{"callee one step away", 0, 1, []m.BranchID{5}, true},
		{"after the call", 0, 1, []m.BranchID{3}, true},
		{"not on the path", 0, 5, []m.BranchID{6}, false},
		{"index past the end", 9, 5, []m.BranchID{1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, findAlongCfg(tt.i, tt.dist, path, newBranchSet(tt.bs)))
		})
	}
}

func TestMinCflDistance(t *testing.T) {
	flat := execOf(1, 2, 3).Path

	var b pathBuilder

	b.event(m.CallID)
	b.branch(5, pred(0, nil, m.OpGT))
	b.event(m.ReturnID)
	b.branch(3, pred(0, nil, m.OpGT))

	inside := b.path()

	tests := []struct {
		name string
		path m.SymbolicPath
		i    int
		bs   []m.BranchID
		want int
	}{
		{"at index", nestedPath(), 0, []m.BranchID{1}, 0},
		{"inside callee", nestedPath(), 0, []m.BranchID{5}, 1},
		{"after return", nestedPath(), 0, []m.BranchID{3}, 1},
		{"flat", flat, 0, []m.BranchID{3}, 2},
		{"closest wins", flat, 0, []m.BranchID{3, 2}, 1},
		{"missing", nestedPath(), 0, []m.BranchID{6}, math.MaxInt},
		{"return leaves the frame", inside, 1, []m.BranchID{3}, math.MaxInt},
		{"index past the end", flat, 3, []m.BranchID{1}, math.MaxInt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, minCflDistance(tt.i, tt.path, newBranchSet(tt.bs)))
		})
	}
}

func TestCfgHeuristicSearch_ScoreConstraints(t *testing.T) {
	ts := newToySearch(t, toyOptions(10))
	c := NewCfgHeuristicSearch(ts.Search)

	_, _, err := ts.coverage.UpdateCoverage(context.Background(), toyProgram([]int64{6, 5}))
	require.NoError(t, err)
	ts.coverage.RecomputeDistances()

	scored := c.scoreConstraints(toyProgram(nil), 0)
	assert.Equal(t, []scoredConstraint{{constraint: 0, score: 1}, {constraint: 1, score: InfiniteDistance}}, scored)

	// Repeated opposite branches are penalized by their earlier occurrences.
	scores := []int{}
	for _, sc := range c.scoreConstraints(execOf(2, 2, 4), 0) {
		scores = append(scores, sc.score)
	}

	assert.Equal(t, []int{1, 2, InfiniteDistance}, scores)

	assert.Len(t, c.scoreConstraints(execOf(2, 2, 4), 2), 1)
}

func TestCfgHeuristicSearch_DoSearchForcesClosestBranch(t *testing.T) {
	ctx := context.Background()
	ts := newToySearch(t, toyOptions(10))
	c := NewCfgHeuristicSearch(ts.Search)

	o, err := ts.execute(ctx, nil)
	require.NoError(t, err)

	ts.coverage.RecomputeDistances()

	found, err := c.doSearch(ctx, 5, 30, 0, InfiniteDistance, o.ex)
	require.NoError(t, err)
	require.NotNil(t, found)
	ts.solver.Release()

	assert.Equal(t, 1, ts.stats.Cfg.InnerSolves)
	assert.Equal(t, 1, ts.stats.Cfg.InnerZeroSuccesses)
	assert.Equal(t, 1, ts.stats.Cfg.InnerSuccesses())
	assert.Equal(t, 2, ts.Iterations())
}

func TestCfgHeuristicSearch_DoSearchBounds(t *testing.T) {
	ctx := context.Background()
	ts := newToySearch(t, toyOptions(10))
	c := NewCfgHeuristicSearch(ts.Search)

	ex := toyProgram(nil)

	found, err := c.doSearch(ctx, 0, 30, 0, InfiniteDistance, ex)
	require.NoError(t, err)
	assert.Nil(t, found)

	found, err = c.doSearch(ctx, 5, 30, ex.Path.NumConstraints(), InfiniteDistance, ex)
	require.NoError(t, err)
	assert.Nil(t, found)

	found, err = c.doSearch(ctx, 5, 0, 0, InfiniteDistance, ex)
	require.NoError(t, err)
	assert.Nil(t, found)

	assert.Zero(t, ts.Iterations())
}

func TestCfgHeuristicSearch_SolveAlongCfgNegativeDistance(t *testing.T) {
	ts := newToySearch(t, toyOptions(10))
	c := NewCfgHeuristicSearch(ts.Search)

	found, err := c.solveAlongCfg(context.Background(), 0, -1, toyProgram(nil))
	require.NoError(t, err)
	assert.Nil(t, found)

	assert.Equal(t, 1, ts.stats.Cfg.Solves)
	assert.Equal(t, 1, ts.stats.Cfg.SolveNoPaths)
}

// coverRound marks the branches of exs round-covered and recomputes the
// distances.
func coverRound(t *testing.T, ts *toySearch, exs ...*m.Execution) {
	t.Helper()

	for _, ex := range exs {
		_, _, err := ts.coverage.UpdateCoverage(context.Background(), ex)
		require.NoError(t, err)
	}

	ts.coverage.RecomputeDistances()
}

func TestCfgHeuristicSearch_SolveAlongCfgForcesPairedBranch(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		setup   func(ts *toySearch)
		want    []int64
		wantCfg m.CfgStats
	}{
		{
			name: "forced branch is uncovered",
			want: []int64{4, 7},
			wantCfg: m.CfgStats{
				Solves: 1, SolveSuccesses: 1, SolveSatAttempts: 1,
			},
		},
		{
			name:  "negation unsatisfiable",
			setup: func(ts *toySearch) { ts.brute.unsat = true },
			wantCfg: m.CfgStats{
				Solves: 1, SolveSatAttempts: 1, SolveUnsats: 1,
			},
		},
		{
			name: "run diverges from the prediction",
			setup: func(ts *toySearch) {
				ts.driver.program = func([]int64) *m.Execution { return toyProgram([]int64{0, 0}) }
			},
			wantCfg: m.CfgStats{
				Solves: 1, SolveSatAttempts: 1, SolvePredFailures: 1,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newToySearch(t, toyOptions(10))
			c := NewCfgHeuristicSearch(ts.Search)

			// Only branch 5 is uncovered, one CFG step below branch 1.
			coverRound(t, ts, toyProgram([]int64{4, 0}), toyProgram([]int64{0, 0}), toyProgram([]int64{0, 5}))
			require.Equal(t, 1, ts.coverage.Distance(1))

			if tt.setup != nil {
				tt.setup(ts)
			}

			found, err := c.solveAlongCfg(ctx, 0, 1, toyProgram([]int64{4, 0}))
			require.NoError(t, err)
			ts.solver.Release()

			if tt.want == nil {
				assert.Nil(t, found)
			} else {
				require.NotNil(t, found)
				assert.Equal(t, tt.want, found.Inputs)
				assert.True(t, ts.coverage.IsCovered(5))
			}

			assert.Equal(t, tt.wantCfg, ts.stats.Cfg)
			assert.Equal(t, 1, ts.brute.opened)
			assert.Equal(t, 1, ts.brute.closed)
		})
	}
}

func TestCfgHeuristicSearch_SolveAlongCfgFollowsUncoveredBranch(t *testing.T) {
	ts := newToySearch(t, toyOptions(10))
	c := NewCfgHeuristicSearch(ts.Search)

	// Branch 6 is the only uncovered one and the path already takes it.
	coverRound(t, ts, toyProgram([]int64{4, 7}), toyProgram([]int64{0, 5}))

	found, err := c.solveAlongCfg(context.Background(), 0, 1, toyProgram([]int64{4, 0}))
	require.NoError(t, err)
	assert.Nil(t, found)

	assert.Equal(t, m.CfgStats{Solves: 2, SolveRecursions: 1, SolveNoPaths: 1}, ts.stats.Cfg)
	assert.Zero(t, ts.Iterations())
	assert.Zero(t, ts.brute.opened)
}

func TestCfgHeuristicSearch_SolveAlongCfgRecursesAfterForcing(t *testing.T) {
	ts := newProgramSearch(t, loadArtifacts(t, chainListing, chainCFG), chainProgram, toyOptions(10))
	c := NewCfgHeuristicSearch(ts.Search)

	coverRound(t, ts, chain(1, 1, 1), chain(0, 0, 0))
	require.Equal(t, 1, ts.coverage.Distance(13))
	require.Equal(t, 0, ts.coverage.Distance(16))

	// 14 is forced to 13 without new coverage, then 15 is forced to 16.
	found, err := c.solveAlongCfg(context.Background(), 0, 1, chain(1, 0, 1))
	require.NoError(t, err)
	require.NotNil(t, found)
	ts.solver.Release()

	assert.Equal(t, []int64{1, 1, -bruteRange}, found.Inputs)
	assert.Equal(t, []m.BranchID{11, 13, 16}, found.Path.Events())

	assert.Equal(t, m.CfgStats{Solves: 2, SolveSuccesses: 2, SolveSatAttempts: 2, SolveRecursions: 1}, ts.stats.Cfg)
	assert.Equal(t, 2, ts.Iterations())
	require.Equal(t, 1, ts.findings.Len())
	assert.False(t, ts.findings.findings[0].Lucky)
}

func TestCfgHeuristicSearch_DoSearchTopLevelSolve(t *testing.T) {
	ctx := context.Background()
	ts := newProgramSearch(t, loadArtifacts(t, chainListing, chainCFG), chainProgram, toyOptions(10))
	c := NewCfgHeuristicSearch(ts.Search)

	coverRound(t, ts, chain(1, 1, 1), chain(0, 0, 0))

	found, err := c.doSearch(ctx, 5, 30, 0, InfiniteDistance, chain(1, 0, 1))
	require.NoError(t, err)
	require.NotNil(t, found)
	ts.solver.Release()

	assert.Equal(t, []m.BranchID{11, 13, 16}, found.Path.Events())

	cfg := ts.stats.Cfg
	assert.Equal(t, 1, cfg.InnerSolves)
	assert.Zero(t, cfg.InnerZeroSuccesses)
	assert.Equal(t, 1, cfg.TopSolves)
	assert.Equal(t, 1, cfg.TopSolveSuccesses)
	assert.Equal(t, 1, cfg.SolveSuccesses)
	assert.Equal(t, 2, ts.Iterations())
}

func TestCfgHeuristicSearch_DoSearchLuckyOffPath(t *testing.T) {
	ctx := context.Background()
	ts := newProgramSearch(t, loadArtifacts(t, chainListing, chainCFG), chainProgram, toyOptions(10))
	c := NewCfgHeuristicSearch(ts.Search)

	coverRound(t, ts, chain(1, 1, 1), chain(0, 0, 0))

	// Forcing 12 to 11 reaches 16, which is two steps away while 11 is one.
	found, err := c.doSearch(ctx, 5, 30, 0, InfiniteDistance, chain(0, 1, 0))
	require.NoError(t, err)
	require.NotNil(t, found)
	ts.solver.Release()

	assert.Equal(t, []int64{1, 1, 0}, found.Inputs)

	cfg := ts.stats.Cfg
	assert.Equal(t, 1, cfg.InnerSolves)
	assert.Equal(t, 1, cfg.InnerLuckySuccesses)
	assert.Zero(t, cfg.InnerLuckyPredictionFail)
	assert.Equal(t, 1, cfg.TopSolves)
	assert.Zero(t, cfg.TopSolveSuccesses)
	assert.Equal(t, 1, cfg.SolveNoPaths)

	assert.Equal(t, 1, ts.stats.LuckyFinds)
	assert.Zero(t, ts.stats.PredictionFailures)

	require.Equal(t, 1, ts.findings.Len())
	assert.True(t, ts.findings.findings[0].Lucky)
	assert.Equal(t, []m.BranchID{16}, ts.findings.findings[0].NewBranches)
}

func TestCfgHeuristicSearch_DoSearchLuckyPredictionFailure(t *testing.T) {
	ctx := context.Background()
	ts := newToySearch(t, toyOptions(10))
	c := NewCfgHeuristicSearch(ts.Search)

	_, err := ts.execute(ctx, nil)
	require.NoError(t, err)

	ts.coverage.RecomputeDistances()

	// Every forced run diverges at the forced branch and covers 6.
	ts.driver.program = func([]int64) *m.Execution { return execOf(2, 4, 6) }

	found, err := c.doSearch(ctx, 5, 30, 0, InfiniteDistance, toyProgram(nil))
	require.NoError(t, err)
	require.NotNil(t, found)
	ts.solver.Release()

	assert.Equal(t, []m.BranchID{2, 4, 6}, found.Path.Events())

	cfg := ts.stats.Cfg
	assert.Equal(t, 1, cfg.InnerSolves)
	assert.Equal(t, 1, cfg.InnerLuckySuccesses)
	assert.Equal(t, 1, cfg.InnerLuckyPredictionFail)
	assert.Zero(t, cfg.TopSolves)

	assert.Equal(t, 1, ts.stats.LuckyFinds)
	assert.Equal(t, 1, ts.stats.PredictionFailures)
	assert.Equal(t, 2, ts.Iterations())

	require.Equal(t, 2, ts.findings.Len())
	assert.False(t, ts.findings.findings[0].Lucky)
	assert.True(t, ts.findings.findings[1].Lucky)
}

func TestCfgHeuristicSearch_RunRecomputesDistancesEveryRound(t *testing.T) {
	ctx := context.Background()
	ts := newToySearch(t, toyOptions(1))
	c := NewCfgHeuristicSearch(ts.Search)

	coverRound(t, ts, toyProgram([]int64{6, 5}))
	require.Equal(t, InfiniteDistance, ts.coverage.Distance(3))

	// The restart run covers no listed branch, so round coverage does not grow.
	ts.driver.program = func([]int64) *m.Execution { return execOf() }

	err := c.Run(ctx)
	require.ErrorIs(t, err, ErrBudgetExhausted)

	for _, b := range ts.universe.Branches() {
		assert.Zero(t, ts.coverage.Distance(b), "branch %d", b)
	}
}

func TestCfgBaselineSearch_ScoreConstraints(t *testing.T) {
	ts := newToySearch(t, toyOptions(10))
	c := NewCfgBaselineSearch(ts.Search)

	_, _, err := ts.coverage.UpdateCoverage(context.Background(), toyProgram(nil))
	require.NoError(t, err)

	scored := c.scoreConstraints(execOf(1, 4, 2))
	require.Len(t, scored, 3)

	front := []int{scored[0].constraint, scored[1].constraint}
	slices.Sort(front)

	assert.Equal(t, []int{1, 2}, front)
	assert.Zero(t, scored[0].score)
	assert.Zero(t, scored[1].score)
	assert.Equal(t, scoredConstraint{constraint: 0, score: coveredPairPenalty}, scored[2])
}
