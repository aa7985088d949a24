package domain

import (
	"context"

	m "preach.dev/pkg/preach/internal/model"
)

const (
	hybridLocalSteps = 100
	hybridSolveTries = 1000
)

// HybridSearch runs random local searches inside windows of StepSize
// constraints at increasingly deep path positions.
type HybridSearch struct {
	*Search
}

// NewHybridSearch creates a hybrid local search.
func NewHybridSearch(s *Search) *HybridSearch {
	return &HybridSearch{Search: s}
}

// Name implements Strategy.
func (h *HybridSearch) Name() string { return StrategyHybrid }

// Run implements Strategy.
func (h *HybridSearch) Run(ctx context.Context) error {
	step := max(h.opts.StepSize, 1)

	var last *m.Execution

	for {
		o, err := h.execute(ctx, h.restartInput(last))
		if err != nil {
			return err
		}

		ex := o.ex

		for pos := 0; pos < ex.Path.NumConstraints(); pos += step {
			ex, err = h.localSearch(ctx, ex, pos, pos+step)
			if err != nil {
				return err
			}
		}

		last = ex
	}
}

func (h *HybridSearch) localSearch(ctx context.Context, ex *m.Execution, start, end int) (*m.Execution, error) {
	err := h.solver.WithSession(ctx, func() error {
		for range hybridLocalSteps {
			next, ok, err := h.randomStep(ctx, ex, start, end)
			if err != nil {
				return err
			}

			if !ok {
				return nil
			}

			ex = next
		}

		return nil
	})

	return ex, err
}

// randomStep forces a random constraint in [start, end) and returns the new
// execution if its prediction held.
func (h *HybridSearch) randomStep(ctx context.Context, ex *m.Execution, start, end int) (*m.Execution, bool, error) {
	end = min(end, ex.Path.NumConstraints())
	if start >= end {
		return nil, false, nil
	}

	idxs := indexRange(start, end)

	for tries := 0; tries < hybridSolveTries && len(idxs) > 0; tries++ {
		c := pickWithoutReplacement(h.rng, &idxs)

		input, ok, err := h.solver.SolveAtBranch(ctx, ex, c)
		if err != nil {
			return nil, false, err
		}

		if !ok {
			continue
		}

		o, err := h.force(ctx, ex, c, input)
		if err != nil {
			return nil, false, err
		}

		if o.predicted {
			return o.ex, true, nil
		}
	}

	return nil, false, nil
}
