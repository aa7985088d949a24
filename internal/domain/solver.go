package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"preach.dev/pkg/preach/internal/adapter"
	m "preach.dev/pkg/preach/internal/model"
)

// SolverStats counts branch solve attempts.
type SolverStats struct {
	Queries       int
	Unsats        int
	ShortCircuits int
	Errors        int
}

// BranchSolver negates single path predicates through the external solver
// and verifies the resulting executions. It holds at most one solver session,
// opened on demand and released by the owning search pass.
type BranchSolver struct {
	solver   adapter.SolverAdapter
	universe *Universe
	rng      *rand.Rand

	session adapter.SolverSession
	stats   SolverStats
}

// NewBranchSolver creates a solver for the branches of u. rng drives
// RandomInput and must not be shared across goroutines.
func NewBranchSolver(solver adapter.SolverAdapter, u *Universe, rng *rand.Rand) *BranchSolver {
	return &BranchSolver{solver: solver, universe: u, rng: rng}
}

// Stats returns the attempt counters.
func (s *BranchSolver) Stats() SolverStats {
	return s.stats
}

// WithSession runs fn inside a solver session that is released afterwards,
// whatever fn returns.
func (s *BranchSolver) WithSession(ctx context.Context, fn func() error) error {
	if err := s.open(ctx); err != nil {
		return err
	}

	defer s.Release()

	return fn()
}

func (s *BranchSolver) open(ctx context.Context) error {
	if s.session != nil {
		return nil
	}

	session, err := s.solver.OpenSession(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		slog.Error("Failed to open solver session", "error", err)

		return fmt.Errorf("%w: open solver session: %w", ErrEnvironment, err)
	}

	s.session = session

	return nil
}

// Release closes the current session, if any.
func (s *BranchSolver) Release() {
	if s.session == nil {
		return
	}

	if err := s.session.Close(); err != nil {
		slog.Warn("Failed to close solver session", "error", err)
	}

	s.session = nil
}

// SolveAtBranch computes an input that keeps the predicates before constraint
// idx and negates constraint idx. It returns false without querying the
// solver when an earlier predicate is identical to the one at idx. Variables
// the solver leaves unassigned keep their value from ex.
func (s *BranchSolver) SolveAtBranch(ctx context.Context, ex *m.Execution, idx int) ([]int64, bool, error) {
	constraints := ex.Path.Constraints()
	if idx < 0 || idx >= len(constraints) {
		return nil, false, fmt.Errorf("constraint index %d out of range (%d constraints)", idx, len(constraints))
	}

	target := constraints[idx]

	for i := idx - 1; i >= 0; i-- {
		if constraints[i].Equal(target) {
			s.stats.ShortCircuits++
			solverQueriesTotal.WithLabelValues("short_circuit").Inc()
			slog.Debug("Identical earlier constraint, skipping solve", "constraint", idx, "earlier", i)

			return nil, false, nil
		}
	}

	if err := s.open(ctx); err != nil {
		return nil, false, err
	}

	query := dependentPrefix(constraints[:idx+1])
	query[len(query)-1] = target.Negated()

	s.stats.Queries++

	soln, sat, err := s.session.Solve(ctx, ex.Inputs, ex.Vars, query)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, false, ctxErr
		}

		if errors.Is(err, adapter.ErrSolverClosed) {
			s.session = nil
		} else {
			s.Release()
		}

		s.stats.Errors++
		solverQueriesTotal.WithLabelValues("error").Inc()
		slog.Warn("Solver session failed, treating constraint as unsolved", "constraint", idx, "error", err)

		return nil, false, nil
	}

	if !sat {
		s.stats.Unsats++
		solverQueriesTotal.WithLabelValues("unsat").Inc()

		return nil, false, nil
	}

	input := ex.CloneInputs()
	changed := false

	for v, val := range soln {
		if int(v) >= len(input) {
			slog.Warn("Solver assigned an undeclared variable", "var", v)
			continue
		}

		if input[v] != val {
			input[v] = val
			changed = true
		}
	}

	if !changed {
		s.stats.Unsats++
		solverQueriesTotal.WithLabelValues("unsat").Inc()
		slog.Debug("Solver model leaves the input unchanged", "constraint", idx)

		return nil, false, nil
	}

	solverQueriesTotal.WithLabelValues("sat").Inc()

	return input, true, nil
}

// dependentPrefix returns a copy of the predicates that transitively share a
// variable with the last one, keeping their order. The last predicate is
// always the final element.
func dependentPrefix(prefix []m.Predicate) []m.Predicate {
	last := len(prefix) - 1

	vars := map[m.VarID]bool{}
	for _, v := range prefix[last].Expr.Vars() {
		vars[v] = true
	}

	keep := make([]bool, len(prefix))
	keep[last] = true

	for grew := true; grew; {
		grew = false

		for i := range last {
			if keep[i] || !sharesVar(prefix[i], vars) {
				continue
			}

			keep[i] = true
			grew = true

			for _, v := range prefix[i].Expr.Vars() {
				vars[v] = true
			}
		}
	}

	out := make([]m.Predicate, 0, len(prefix))

	for i, p := range prefix {
		if keep[i] {
			out = append(out, p)
		}
	}

	return out
}

func sharesVar(p m.Predicate, vars map[m.VarID]bool) bool {
	for _, v := range p.Expr.Vars() {
		if vars[v] {
			return true
		}
	}

	return false
}

// RandomInput fills every declared variable with 64 random bits narrowed to
// its declared type.
func (s *BranchSolver) RandomInput(vars map[m.VarID]m.ScalarType) []int64 {
	size := 0
	for v := range vars {
		size = max(size, int(v)+1)
	}

	input := make([]int64, size)

	for _, v := range m.SortedVars(vars) {
		input[v] = vars[v].Narrow(s.rng.Uint64())
	}

	return input
}

// CheckPrediction reports whether next followed prev up to path index
// branchIdx and took the opposite side at branchIdx.
func (s *BranchSolver) CheckPrediction(prev, next *m.Execution, branchIdx int) bool {
	if branchIdx < 0 || prev.Path.Len() <= branchIdx || next.Path.Len() <= branchIdx {
		return false
	}

	if !slices.Equal(prev.Path.Events()[:branchIdx], next.Path.Events()[:branchIdx]) {
		return false
	}

	return next.Path.Event(branchIdx) == s.universe.Paired(prev.Path.Event(branchIdx))
}

// notePredictionFailure logs a unified diff of the expected and observed path
// prefixes at debug level.
func (s *BranchSolver) notePredictionFailure(prev, next *m.Execution, branchIdx int) {
	predictionFailuresTotal.Inc()

	if !slog.Default().Enabled(context.Background(), slog.LevelDebug) {
		return
	}

	slog.Debug("Prediction failed", "index", branchIdx, "diff", s.describeDivergence(prev, next, branchIdx))
}

func (s *BranchSolver) describeDivergence(prev, next *m.Execution, branchIdx int) string {
	end := min(branchIdx+1, prev.Path.Len())

	expected := make([]string, 0, end)
	for i, b := range prev.Path.Events()[:end] {
		if i == branchIdx {
			b = s.universe.Paired(b)
		}

		expected = append(expected, b.String()+"\n")
	}

	observed := make([]string, 0, end)
	for _, b := range next.Path.Events()[:min(end, next.Path.Len())] {
		observed = append(observed, b.String()+"\n")
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        expected,
		B:        observed,
		FromFile: "expected",
		ToFile:   "observed",
		Context:  2,
	})
	if err != nil {
		return err.Error()
	}

	return strings.TrimSpace(diff)
}
