package domain

import (
	"context"

	m "preach.dev/pkg/preach/internal/model"
)

// BoundedDFS forces constraints in path order, descending past every
// successfully forced constraint. The depth bounds the number of descents,
// not the path length.
type BoundedDFS struct {
	*Search
}

// NewBoundedDFS creates a bounded depth-first search.
func NewBoundedDFS(s *Search) *BoundedDFS {
	return &BoundedDFS{Search: s}
}

// Name implements Strategy.
func (d *BoundedDFS) Name() string { return StrategyDFS }

// Run implements Strategy.
func (d *BoundedDFS) Run(ctx context.Context) error {
	o, err := d.execute(ctx, nil)
	if err != nil {
		return err
	}

	return d.solver.WithSession(ctx, func() error {
		return d.dfs(ctx, 0, d.opts.Depth, o.ex)
	})
}

func (d *BoundedDFS) dfs(ctx context.Context, pos, depth int, prev *m.Execution) error {
	for i := pos; i < prev.Path.NumConstraints() && depth > 0; i++ {
		input, ok, err := d.solver.SolveAtBranch(ctx, prev, i)
		if err != nil {
			return err
		}

		if !ok {
			continue
		}

		o, err := d.force(ctx, prev, i, input)
		if err != nil {
			return err
		}

		if !o.predicted {
			continue
		}

		depth--

		if err := d.dfs(ctx, i+1, depth, o.ex); err != nil {
			return err
		}
	}

	return nil
}
