package domain

import (
	"context"
	"slices"

	m "preach.dev/pkg/preach/internal/model"
)

// coveredPairPenalty pushes constraints whose opposite side is already
// round-covered behind every other constraint.
const coveredPairPenalty = 100000000

// CfgBaselineSearch forces constraints whose opposite branch is uncovered
// first, least-seen first, and moves to every execution that grows coverage.
// It does not check predictions.
type CfgBaselineSearch struct {
	*Search
}

// NewCfgBaselineSearch creates the CFG-less baseline of the CFG heuristic.
func NewCfgBaselineSearch(s *Search) *CfgBaselineSearch {
	return &CfgBaselineSearch{Search: s}
}

// Name implements Strategy.
func (c *CfgBaselineSearch) Name() string { return StrategyCfgBaseline }

// Run implements Strategy.
func (c *CfgBaselineSearch) Run(ctx context.Context) error {
	var last *m.Execution

	for {
		o, err := c.execute(ctx, c.restartInput(last))
		if err != nil {
			return err
		}

		ex := o.ex

		for {
			next, err := c.pass(ctx, ex)
			if err != nil {
				return err
			}

			if next == nil {
				break
			}

			ex = next
		}

		last = ex
	}
}

func (c *CfgBaselineSearch) pass(ctx context.Context, prev *m.Execution) (*m.Execution, error) {
	var found *m.Execution

	err := c.solver.WithSession(ctx, func() error {
		var err error

		found, err = c.doSearch(ctx, prev, c.opts.BaselineIterations)

		return err
	})

	return found, err
}

func (c *CfgBaselineSearch) doSearch(ctx context.Context, prev *m.Execution, iters int) (*m.Execution, error) {
	scored := c.scoreConstraints(prev)

	for _, sc := range scored {
		if iters <= 0 {
			return nil, nil
		}

		input, ok, err := c.solver.SolveAtBranch(ctx, prev, sc.constraint)
		if err != nil {
			return nil, err
		}

		if !ok {
			continue
		}

		o, err := c.execute(ctx, input)
		if err != nil {
			return nil, err
		}

		iters--

		if o.grew {
			return o.ex, nil
		}
	}

	return nil, nil
}

func (c *CfgBaselineSearch) scoreConstraints(prev *m.Execution) []scoredConstraint {
	scored := make([]scoredConstraint, prev.Path.NumConstraints())
	for i := range scored {
		scored[i].constraint = i
	}

	shuffle(c.rng, scored)

	seen := map[m.BranchID]int{}

	for i := range scored {
		pair := c.universe.Paired(prev.BranchAtConstraint(scored[i].constraint))

		scored[i].score = seen[pair]
		if c.coverage.IsCovered(pair) {
			scored[i].score += coveredPairPenalty
		}

		seen[pair]++
	}

	slices.SortStableFunc(scored, compareScore)

	return scored
}

// scoredConstraint is a constraint index with its heuristic score; lower
// scores are forced first.
type scoredConstraint struct {
	constraint int
	score      int
}

func compareScore(a, b scoredConstraint) int {
	return a.score - b.score
}
