package domain

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"preach.dev/pkg/preach/internal/adapter"
	m "preach.dev/pkg/preach/internal/model"
)

// InfiniteDistance is the distance of a covered branch from which no
// uncovered branch is reachable.
const InfiniteDistance = 10000

// CoverageTracker owns the round and total coverage sets, the function
// reachability accounting and the distance-to-uncovered map. All methods are
// safe for concurrent use; each call is one critical section.
type CoverageTracker struct {
	mu sync.Mutex

	universe *Universe
	cfg      *ControlFlowGraph
	store    adapter.CoverageStore

	covered []bool
	total   []bool
	reached []bool
	dist    []int

	numCovered         int
	totalCovered       int
	reachableFunctions int
	reachableBranches  int
}

// NewCoverageTracker creates a tracker with nothing covered. A nil store
// disables persistence; a nil cfg makes every covered branch infinitely far.
func NewCoverageTracker(u *Universe, cfg *ControlFlowGraph, store adapter.CoverageStore) *CoverageTracker {
	t := &CoverageTracker{
		universe: u,
		cfg:      cfg,
		store:    store,
		covered:  make([]bool, u.MaxBranch()),
		total:    make([]bool, u.MaxBranch()),
		reached:  make([]bool, u.NumFunctions()),
		dist:     make([]int, u.MaxBranch()),
	}

	for i := range t.dist {
		t.dist[i] = InfiniteDistance
	}

	for _, b := range u.Branches() {
		t.dist[b] = 0
	}

	return t
}

// UpdateCoverage records the branches of ex. It reports whether round
// coverage grew and returns the newly round-covered branches in path order.
// Growth is persisted through the store; a failing store is an environment
// error.
func (t *CoverageTracker) UpdateCoverage(ctx context.Context, ex *m.Execution) (bool, []m.BranchID, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	var fresh []m.BranchID

	for _, b := range ex.Path.Events() {
		if b <= 0 || !t.universe.Contains(b) {
			continue
		}

		if !t.covered[b] {
			t.covered[b] = true
			t.numCovered++
			fresh = append(fresh, b)
			t.reach(b)
		}

		if !t.total[b] {
			t.total[b] = true
			t.totalCovered++
		}
	}

	if len(fresh) == 0 {
		return false, nil, nil
	}

	coveredBranches.Set(float64(t.totalCovered))

	if t.store != nil {
		if err := t.store.SaveCoverage(ctx, t.totalCoveredLocked()); err != nil {
			slog.Error("Failed to persist coverage", "error", err)
			return true, fresh, fmt.Errorf("%w: persist coverage: %w", ErrEnvironment, err)
		}
	}

	return true, fresh, nil
}

func (t *CoverageTracker) reach(b m.BranchID) {
	fi := t.universe.FunctionOf(b)
	if fi < 0 || t.reached[fi] {
		return
	}

	t.reached[fi] = true
	t.reachableFunctions++
	t.reachableBranches += t.universe.FunctionBranchCount(fi)
}

// ResetRound clears round coverage. Total coverage and function
// reachability persist.
func (t *CoverageTracker) ResetRound() {
	t.mu.Lock()
	defer t.mu.Unlock()

	clear(t.covered)
	t.numCovered = 0
}

// Resume seeds coverage from the store and returns the number of branches
// loaded. Unknown branch ids are ignored.
func (t *CoverageTracker) Resume(ctx context.Context) (int, error) {
	if t.store == nil {
		return 0, nil
	}

	saved, err := t.store.LoadCoverage(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: load coverage: %w", ErrEnvironment, err)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	loaded := 0

	for _, b := range saved {
		if !t.universe.Contains(b) {
			continue
		}

		loaded++

		if !t.covered[b] {
			t.covered[b] = true
			t.numCovered++
			t.reach(b)
		}

		if !t.total[b] {
			t.total[b] = true
			t.totalCovered++
		}
	}

	coveredBranches.Set(float64(t.totalCovered))

	return loaded, nil
}

// RecomputeDistances runs a multi-source BFS over the reverse CFG from every
// round-uncovered branch. Uncovered branches get distance 0 and covered
// branches that reach no uncovered branch keep InfiniteDistance.
func (t *CoverageTracker) RecomputeDistances() {
	t.mu.Lock()
	defer t.mu.Unlock()

	queue := make([]m.BranchID, 0, t.universe.NumBranches())

	for _, b := range t.universe.Branches() {
		if t.covered[b] {
			t.dist[b] = InfiniteDistance
			continue
		}

		t.dist[b] = 0
		queue = append(queue, b)
	}

	if t.cfg == nil {
		return
	}

	for head := 0; head < len(queue); head++ {
		b := queue[head]
		next := t.dist[b] + 1

		for _, p := range t.cfg.Predecessors(b) {
			if next < t.dist[p] {
				t.dist[p] = next
				queue = append(queue, p)
			}
		}
	}
}

// Distance returns the last computed distance of b. Ids outside the
// universe are infinitely far.
func (t *CoverageTracker) Distance(b m.BranchID) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.universe.Contains(b) {
		return InfiniteDistance
	}

	return t.dist[b]
}

// IsCovered reports round coverage of b.
func (t *CoverageTracker) IsCovered(b m.BranchID) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.universe.Contains(b) && t.covered[b]
}

// IsTotalCovered reports whether b was ever covered.
func (t *CoverageTracker) IsTotalCovered(b m.BranchID) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.universe.Contains(b) && t.total[b]
}

// RoundCovered returns the number of branches covered this round.
func (t *CoverageTracker) RoundCovered() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.numCovered
}

// TotalCovered returns the number of branches ever covered.
func (t *CoverageTracker) TotalCovered() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.totalCovered
}

// Reachable returns the reached function count and the summed branch count
// of reached functions.
func (t *CoverageTracker) Reachable() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.reachableFunctions, t.reachableBranches
}

// CoveredBranches returns every ever-covered branch in ascending order.
func (t *CoverageTracker) CoveredBranches() []m.BranchID {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.totalCoveredLocked()
}

func (t *CoverageTracker) totalCoveredLocked() []m.BranchID {
	out := make([]m.BranchID, 0, t.totalCovered)

	for _, b := range t.universe.Branches() {
		if t.total[b] {
			out = append(out, b)
		}
	}

	return out
}

// FunctionCoverage summarizes total coverage per listed function.
func (t *CoverageTracker) FunctionCoverage() []m.FunctionCoverage {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]m.FunctionCoverage, t.universe.NumFunctions())

	for fi := range out {
		fn := t.universe.Function(fi)
		out[fi] = m.FunctionCoverage{Function: fn.Function, Branches: 2 * len(fn.Pairs)}

		for _, p := range fn.Pairs {
			if t.total[p.True] {
				out[fi].Covered++
			}

			if t.total[p.False] {
				out[fi].Covered++
			}
		}
	}

	return out
}
