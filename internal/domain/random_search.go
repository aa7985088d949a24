package domain

import (
	"context"
	"log/slog"

	m "preach.dev/pkg/preach/internal/model"
)

const (
	randomRoundLength = 10000
	randomSolveTries  = 1000
)

// RandomSearch forces uniformly chosen constraints of the current execution.
// It keeps the new execution when coverage grew or the prediction held and
// restarts after a round without progress.
type RandomSearch struct {
	*Search
}

// NewRandomSearch creates a random branch search.
func NewRandomSearch(s *Search) *RandomSearch {
	return &RandomSearch{Search: s}
}

// Name implements Strategy.
func (r *RandomSearch) Name() string { return StrategyRandom }

// Run implements Strategy.
func (r *RandomSearch) Run(ctx context.Context) error {
	var last *m.Execution

	for {
		slog.Debug("Random search restart", "iteration", r.iterations)

		o, err := r.execute(ctx, r.restartInput(last))
		if err != nil {
			return err
		}

		last, err = r.round(ctx, o.ex)
		if err != nil {
			return err
		}
	}
}

func (r *RandomSearch) round(ctx context.Context, cur *m.Execution) (*m.Execution, error) {
	err := r.solver.WithSession(ctx, func() error {
		for count := 0; count < randomRoundLength; count++ {
			c, input, ok, err := r.solveRandomBranch(ctx, cur)
			if err != nil {
				return err
			}

			if !ok {
				return nil
			}

			o, err := r.force(ctx, cur, c, input)
			if err != nil {
				return err
			}

			switch {
			case o.grew:
				count = -1
				cur = o.ex
			case o.predicted:
				cur = o.ex
			}
		}

		return nil
	})

	return cur, err
}

// solveRandomBranch tries random constraints of ex without replacement until
// one solves.
func (r *RandomSearch) solveRandomBranch(ctx context.Context, ex *m.Execution) (int, []int64, bool, error) {
	idxs := indexRange(0, ex.Path.NumConstraints())

	for tries := 0; tries < randomSolveTries && len(idxs) > 0; tries++ {
		c := pickWithoutReplacement(r.rng, &idxs)

		input, ok, err := r.solver.SolveAtBranch(ctx, ex, c)
		if err != nil {
			return 0, nil, false, err
		}

		if ok {
			return c, input, true, nil
		}
	}

	slog.Debug("No random constraint could be solved", "constraints", ex.Path.NumConstraints())

	return 0, nil, false, nil
}
