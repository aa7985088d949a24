package domain

import (
	"context"
	"log/slog"
	"math"
	"slices"

	m "preach.dev/pkg/preach/internal/model"
)

// branchSet is a set of branch ids.
type branchSet map[m.BranchID]struct{}

func newBranchSet(bs []m.BranchID) branchSet {
	set := make(branchSet, len(bs))
	for _, b := range bs {
		set[b] = struct{}{}
	}

	return set
}

func (s branchSet) has(b m.BranchID) bool {
	_, ok := s[b]
	return ok
}

// CfgHeuristicSearch forces the constraints whose opposite branch is closest
// to an uncovered branch in the control flow graph. When forcing a
// constraint does not reach new coverage directly, it keeps forcing along the
// shortest CFG paths towards uncovered branches.
//
// Every round starts from scratch: round coverage is cleared and the
// distances are recomputed from the restart run and after every pass that
// succeeds.
type CfgHeuristicSearch struct {
	*Search
}

// NewCfgHeuristicSearch creates a CFG-directed search.
func NewCfgHeuristicSearch(s *Search) *CfgHeuristicSearch {
	return &CfgHeuristicSearch{Search: s}
}

// Name implements Strategy.
func (c *CfgHeuristicSearch) Name() string { return StrategyCfg }

// Run implements Strategy.
func (c *CfgHeuristicSearch) Run(ctx context.Context) error {
	var last *m.Execution

	for {
		c.coverage.ResetRound()

		o, err := c.execute(ctx, c.restartInput(last))
		if err != nil {
			return err
		}

		c.coverage.RecomputeDistances()

		ex := o.ex

		for {
			next, err := c.pass(ctx, ex)
			if err != nil {
				return err
			}

			if next == nil {
				cfgOutcomesTotal.WithLabelValues("exhausted").Inc()
				break
			}

			c.coverage.RecomputeDistances()

			ex = next
		}

		slog.Debug("CFG search round exhausted", "iteration", c.iterations, "stats", c.stats.Cfg)

		last = ex
	}
}

func (c *CfgHeuristicSearch) pass(ctx context.Context, prev *m.Execution) (*m.Execution, error) {
	var found *m.Execution

	err := c.solver.WithSession(ctx, func() error {
		var err error

		found, err = c.doSearch(ctx, c.opts.CfgDepth, c.opts.CfgIterations, 0, InfiniteDistance, prev)

		return err
	})

	return found, err
}

// doSearch scores the constraints of prev from pos on by the distance of
// their opposite branch plus the number of earlier constraints with the same
// opposite branch, then forces them in increasing score order. It returns the
// execution that grew coverage, or nil.
func (c *CfgHeuristicSearch) doSearch(ctx context.Context, depth, iters, pos, maxDist int, prev *m.Execution) (*m.Execution, error) {
	slog.Debug("CFG search pass", "depth", depth, "pos", pos, "max_dist", maxDist, "path_len", prev.Path.Len())

	if pos >= prev.Path.NumConstraints() || depth == 0 {
		return nil, nil
	}

	scored := c.scoreConstraints(prev, pos)
	stats := &c.stats.Cfg

	for _, sc := range scored {
		if iters <= 0 || sc.score > maxDist {
			return nil, nil
		}

		stats.InnerSolves++

		input, ok, err := c.solver.SolveAtBranch(ctx, prev, sc.constraint)
		if err != nil {
			return nil, err
		}

		if !ok {
			stats.InnerUnsats++
			continue
		}

		o, err := c.runForced(ctx, prev, sc.constraint, input)
		if err != nil {
			return nil, err
		}

		iters--

		bIdx := prev.Path.PathIndex(sc.constraint)
		pair := c.universe.Paired(prev.Path.Event(bIdx))
		dist := c.coverage.Distance(pair)

		if o.grew && !o.predicted {
			slog.Debug("Found new branch by forcing (lucky, prediction failed)", "distance", dist, "score", sc.score)

			c.recordForced(ctx, o, true)

			stats.InnerLuckySuccesses++
			stats.InnerLuckyPredictionFail++
			cfgOutcomesTotal.WithLabelValues("lucky_pred_fail").Inc()

			return o.ex, nil
		}

		if o.grew {
			fresh := newBranchSet(o.fresh)
			minDist := minCflDistance(bIdx, o.ex.Path, fresh)

			if findAlongCfg(bIdx, dist, o.ex.Path, fresh) {
				if minDist > dist {
					slog.Warn("CFL distance exceeds CFG distance of a legitimate find", "min_cfl", minDist, "distance", dist)
				}

				if dist == 0 {
					stats.InnerZeroSuccesses++
					cfgOutcomesTotal.WithLabelValues("zero").Inc()
				} else {
					stats.InnerNonzeroSuccesses++
					cfgOutcomesTotal.WithLabelValues("nonzero").Inc()
				}

				slog.Debug("Found new branch by forcing", "distance", dist, "score", sc.score)

				c.recordForced(ctx, o, false)

				return o.ex, nil
			}

			slog.Debug("Found new branch off the shortest path (lucky)", "distance", dist, "min_cfl", minDist)

			c.recordForced(ctx, o, true)

			stats.InnerLuckySuccesses++
			cfgOutcomesTotal.WithLabelValues("lucky").Inc()
		}

		if !o.predicted {
			stats.InnerPredictionFailures++
			continue
		}

		stats.TopSolves++

		if dist > 0 {
			found, err := c.solveAlongCfg(ctx, bIdx, sc.score-1, o.ex)
			if err != nil {
				return nil, err
			}

			if found != nil {
				stats.TopSolveSuccesses++
				cfgOutcomesTotal.WithLabelValues("top_solve").Inc()

				return found, nil
			}
		}

		if o.grew {
			return o.ex, nil
		}
	}

	return nil, nil
}

func (c *CfgHeuristicSearch) scoreConstraints(prev *m.Execution, pos int) []scoredConstraint {
	scored := make([]scoredConstraint, 0, prev.Path.NumConstraints()-pos)
	for i := pos; i < prev.Path.NumConstraints(); i++ {
		scored = append(scored, scoredConstraint{constraint: i})
	}

	shuffle(c.rng, scored)

	seen := map[m.BranchID]int{}

	for i := range scored {
		pair := c.universe.Paired(prev.BranchAtConstraint(scored[i].constraint))
		scored[i].score = c.coverage.Distance(pair) + seen[pair]
		seen[pair]++
	}

	slices.SortStableFunc(scored, compareScore)

	return scored
}

// solveAlongCfg tries to reach an uncovered branch within maxDist CFG steps
// of path index i of prev. Branches already on a short enough path are
// followed without solving; constraints whose opposite branch is on one are
// forced. It returns the execution that grew coverage, or nil.
func (c *CfgHeuristicSearch) solveAlongCfg(ctx context.Context, i, maxDist int, prev *m.Execution) (*m.Execution, error) {
	stats := &c.stats.Cfg
	stats.Solves++

	slog.Debug("Solving along CFG", "index", i, "max_dist", maxDist)

	if maxDist < 0 {
		stats.SolveNoPaths++
		return nil, nil
	}

	path := prev.Path
	idxs := path.NextBranches(i + 1)

	onPath := func(j int) (bool, bool) {
		b := path.Event(j)
		return c.coverage.Distance(b) <= maxDist, c.coverage.Distance(c.universe.Paired(b)) <= maxDist
	}

	foundPath := false

	for _, j := range idxs {
		direct, paired := onPath(j)
		if direct || paired {
			foundPath = true
			break
		}
	}

	if !foundPath {
		stats.SolveNoPaths++
		return nil, nil
	}

	allConcrete := true
	stats.SolveAllConcrete++

	shuffle(c.rng, idxs)

	for _, j := range idxs {
		direct, paired := onPath(j)
		if !direct && !paired {
			continue
		}

		if direct {
			stats.SolveRecursions++

			found, err := c.solveAlongCfg(ctx, j, maxDist-1, prev)
			if err != nil {
				return nil, err
			}

			if found != nil {
				stats.SolveSuccesses++
				return found, nil
			}
		}

		constraint, symbolic := path.ConstraintAt(j)
		if !symbolic {
			continue
		}

		if allConcrete {
			allConcrete = false
			stats.SolveAllConcrete--
		}

		if !paired {
			continue
		}

		stats.SolveSatAttempts++

		input, ok, err := c.solver.SolveAtBranch(ctx, prev, constraint)
		if err != nil {
			return nil, err
		}

		if !ok {
			stats.SolveUnsats++
			continue
		}

		o, err := c.force(ctx, prev, constraint, input)
		if err != nil {
			return nil, err
		}

		if o.grew {
			stats.SolveSuccesses++
			return o.ex, nil
		}

		if !o.predicted {
			stats.SolvePredFailures++
			continue
		}

		stats.SolveRecursions++

		found, err := c.solveAlongCfg(ctx, j, maxDist-1, o.ex)
		if err != nil {
			return nil, err
		}

		if found != nil {
			stats.SolveSuccesses++
			return found, nil
		}
	}

	return nil, nil
}

// findAlongCfg reports whether a branch of bs is reachable from path index i
// within dist CFG steps along the path.
func findAlongCfg(i, dist int, path m.SymbolicPath, bs branchSet) bool {
	if i >= path.Len() {
		return false
	}

	if bs.has(path.Event(i)) {
		return true
	}

	if dist <= 0 {
		return false
	}

	for _, j := range path.NextBranches(i + 1) {
		if findAlongCfg(j, dist-1, path, bs) {
			return true
		}
	}

	return false
}

// minCflDistance returns the smallest call-aware distance from path index i
// to a branch of bs. Branches inside a callee count from the call site; a
// return restores the distance at the call. It returns math.MaxInt when no
// branch of bs follows i in the current frame.
func minCflDistance(i int, path m.SymbolicPath, bs branchSet) int {
	if i >= path.Len() {
		return math.MaxInt
	}

	if bs.has(path.Event(i)) {
		return 0
	}

	minDist := math.MaxInt
	curDist := 1

	var stack []int

	for j := i + 1; j < path.Len(); j++ {
		b := path.Event(j)

		if bs.has(b) {
			minDist = min(minDist, curDist)
		}

		switch {
		case b.IsBranch():
			curDist++
		case b == m.CallID:
			stack = append(stack, curDist)
		case b == m.ReturnID:
			if len(stack) == 0 {
				return minDist
			}

			curDist = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
		}
	}

	return minDist
}
