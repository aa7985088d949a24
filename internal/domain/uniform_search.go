package domain

import (
	"context"
	"log/slog"

	m "preach.dev/pkg/preach/internal/model"
)

// UniformRandomSearch walks the constraints of the current execution in
// order and forces each solvable one with probability one half, so every
// bounded-depth path is drawn roughly uniformly.
type UniformRandomSearch struct {
	*Search
}

// NewUniformRandomSearch creates a uniform random path search.
func NewUniformRandomSearch(s *Search) *UniformRandomSearch {
	return &UniformRandomSearch{Search: s}
}

// Name implements Strategy.
func (u *UniformRandomSearch) Name() string { return StrategyUniform }

// Run implements Strategy.
func (u *UniformRandomSearch) Run(ctx context.Context) error {
	o, err := u.execute(ctx, nil)
	if err != nil {
		return err
	}

	prev := o.ex

	for {
		next, ran, err := u.walk(ctx, prev)
		if err != nil {
			return err
		}

		prev = next

		if !ran {
			o, err := u.execute(ctx, u.restartInput(prev))
			if err != nil {
				return err
			}

			prev = o.ex
		}
	}
}

// walk performs one uniform random path and reports whether it ran the
// target at least once.
func (u *UniformRandomSearch) walk(ctx context.Context, prev *m.Execution) (*m.Execution, bool, error) {
	ran := false

	slog.Debug("Uniform random walk", "constraints", prev.Path.NumConstraints())

	err := u.solver.WithSession(ctx, func() error {
		depth := 0

		for i := 0; i < prev.Path.NumConstraints() && depth < u.opts.Depth; i++ {
			input, ok, err := u.solver.SolveAtBranch(ctx, prev, i)
			if err != nil {
				return err
			}

			if !ok {
				continue
			}

			depth++

			if u.rng.IntN(2) != 0 {
				continue
			}

			o, err := u.force(ctx, prev, i, input)
			if err != nil {
				return err
			}

			ran = true

			if !o.predicted {
				depth--
				continue
			}

			prev = o.ex
		}

		return nil
	})

	return prev, ran, err
}
