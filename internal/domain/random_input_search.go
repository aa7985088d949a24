package domain

import "context"

// RandomInputSearch runs the target on fresh random inputs only. It is the
// pure random testing baseline.
type RandomInputSearch struct {
	*Search
}

// NewRandomInputSearch creates a random input search.
func NewRandomInputSearch(s *Search) *RandomInputSearch {
	return &RandomInputSearch{Search: s}
}

// Name implements Strategy.
func (r *RandomInputSearch) Name() string { return StrategyRandomInput }

// Run implements Strategy.
func (r *RandomInputSearch) Run(ctx context.Context) error {
	o, err := r.execute(ctx, nil)
	if err != nil {
		return err
	}

	vars := o.ex.Vars

	for {
		o, err = r.execute(ctx, r.solver.RandomInput(vars))
		if err != nil {
			return err
		}

		if len(o.ex.Vars) > 0 {
			vars = o.ex.Vars
		}
	}
}
