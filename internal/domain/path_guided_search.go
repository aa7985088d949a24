package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	m "preach.dev/pkg/preach/internal/model"
)

// ErrEmptyTarget is returned when a path-guided search has no target path.
var ErrEmptyTarget = errors.New("empty target path")

// GuideResult is the outcome of a path-guided search.
type GuideResult struct {
	Execution *m.Execution
	// Matched is the length of the common prefix of the target and the
	// constrained branches of Execution.
	Matched int
	// Complete reports whether the whole target was matched.
	Complete bool
}

// PathGuidedSearch steers the target towards a given sequence of constrained
// branches, starting from a seed input.
//
// In strict mode it walks the target index by index and forces the
// constraint at the first divergence when its opposite branch is the one
// the target asks for. Otherwise it greedily forces the constraint whose
// execution shares the most branches with the target.
type PathGuidedSearch struct {
	*Search

	target []m.BranchID
	set    branchSet
	result GuideResult
}

// NewPathGuidedSearch resolves the configured target path. A negative
// entry -b stands for the pair of branch b.
func NewPathGuidedSearch(s *Search) (*PathGuidedSearch, error) {
	if len(s.opts.TargetPath) == 0 {
		return nil, ErrEmptyTarget
	}

	target := make([]m.BranchID, 0, len(s.opts.TargetPath))

	for i, raw := range s.opts.TargetPath {
		if raw == 0 || raw > math.MaxInt32 || raw < -math.MaxInt32 {
			return nil, fmt.Errorf("target entry %d: invalid branch %d", i, raw)
		}

		b := m.BranchID(raw)
		if raw < 0 {
			b = s.universe.Paired(m.BranchID(-raw))
		}

		if !s.universe.Contains(b) {
			slog.Warn("Target branch is not in the branch listing", "index", i, "branch", b)
		}

		target = append(target, b)
	}

	return &PathGuidedSearch{
		Search: s,
		target: target,
		set:    newBranchSet(target),
	}, nil
}

// Name implements Strategy.
func (p *PathGuidedSearch) Name() string { return StrategyGuided }

// Target returns the resolved target path.
func (p *PathGuidedSearch) Target() []m.BranchID {
	return p.target
}

// Result returns the last execution reached and how much of the target it
// matches. It is only meaningful after Run.
func (p *PathGuidedSearch) Result() GuideResult {
	return p.result
}

// Run implements Strategy. It returns ErrInfeasibleTarget when the target
// cannot be followed from the seed input.
func (p *PathGuidedSearch) Run(ctx context.Context) error {
	o, err := p.execute(ctx, p.opts.SeedInput)
	if err != nil {
		return err
	}

	p.setResult(o.ex)

	slog.Info("Guiding towards target path",
		"target_len", len(p.target),
		"seed_constraints", o.ex.Path.NumConstraints(),
		"matched", p.result.Matched,
		"strict", p.opts.Strict)

	return p.solver.WithSession(ctx, func() error {
		if p.opts.Strict {
			return p.runStrict(ctx, o.ex)
		}

		return p.runGreedy(ctx, o.ex)
	})
}

func (p *PathGuidedSearch) runStrict(ctx context.Context, ex *m.Execution) error {
	for idx := 0; idx < ex.Path.NumConstraints() && idx < len(p.target); idx++ {
		b := ex.BranchAtConstraint(idx)
		if b == p.target[idx] {
			continue
		}

		if p.universe.Paired(b) != p.target[idx] {
			return fmt.Errorf("%w: constraint %d took %s, target expects %s", ErrInfeasibleTarget, idx, b, p.target[idx])
		}

		input, ok, err := p.solver.SolveAtBranch(ctx, ex, idx)
		if err != nil {
			return err
		}

		if !ok {
			return fmt.Errorf("%w: cannot force constraint %d to %s", ErrInfeasibleTarget, idx, p.target[idx])
		}

		o, err := p.execute(ctx, input)
		if err != nil {
			return err
		}

		ex = o.ex
		p.setResult(ex)
	}

	p.setResult(ex)

	return nil
}

func (p *PathGuidedSearch) runGreedy(ctx context.Context, ex *m.Execution) error {
	idx := p.result.Matched

	for range max(p.opts.GuideRetries, 1) {
		if p.result.Complete {
			return nil
		}

		best, bestIdx, bestScore := (*m.Execution)(nil), -1, -1

		for i := idx; i < ex.Path.NumConstraints(); i++ {
			input, ok, err := p.solver.SolveAtBranch(ctx, ex, i)
			if err != nil {
				return err
			}

			if !ok {
				continue
			}

			o, err := p.execute(ctx, input)
			if err != nil {
				return err
			}

			if score := p.similarity(o.ex); score > bestScore {
				best, bestIdx, bestScore = o.ex, i, score
			}
		}

		if best == nil {
			return fmt.Errorf("%w: no constraint from %d on can be forced", ErrInfeasibleTarget, idx)
		}

		slog.Debug("Selected branch for negation",
			"constraint", bestIdx,
			"branch", ex.BranchAtConstraint(bestIdx),
			"similarity", bestScore)

		ex = best
		idx = bestIdx + 1
		p.setResult(ex)
	}

	slog.Info("Guide retries exhausted", "matched", p.result.Matched, "target_len", len(p.target))

	return nil
}

// similarity counts the constrained branches of ex that occur in the target.
func (p *PathGuidedSearch) similarity(ex *m.Execution) int {
	n := 0

	for c := range ex.Path.NumConstraints() {
		if p.set.has(ex.BranchAtConstraint(c)) {
			n++
		}
	}

	return n
}

func (p *PathGuidedSearch) setResult(ex *m.Execution) {
	matched := 0
	for matched < ex.Path.NumConstraints() && matched < len(p.target) && ex.BranchAtConstraint(matched) == p.target[matched] {
		matched++
	}

	p.result = GuideResult{
		Execution: ex,
		Matched:   matched,
		Complete:  matched == len(p.target),
	}
}
