package domain

import (
	"context"
	"errors"
	"math/rand/v2"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"preach.dev/pkg/preach/internal/adapter"
	m "preach.dev/pkg/preach/internal/model"
)

// The toy program has two inputs x and y and three conditionals:
//
//	if x > 3 { /* 1 */ check(x, y) } else { /* 2 */ }
//	if y == 5 { /* 3 */ } else { /* 4 */ }
//
//	func check(x, y) { if x+y > 10 { /* 5 */ } else { /* 6 */ } }
var toyListing = m.BranchListing{Functions: []m.FunctionBranches{
	{Function: 1, Pairs: []m.BranchPair{{True: 1, False: 2}, {True: 3, False: 4}}},
	{Function: 2, Pairs: []m.BranchPair{{True: 5, False: 6}}},
}}

var toyCFG = []m.Successors{
	{Source: 1, Next: []m.BranchID{5, 6}},
	{Source: 2, Next: []m.BranchID{3, 4}},
	{Source: 3},
	{Source: 4},
	{Source: 5, Next: []m.BranchID{3, 4}},
	{Source: 6, Next: []m.BranchID{3, 4}},
}

var toyVars = map[m.VarID]m.ScalarType{0: m.Int, 1: m.Int}

// pred builds "const + sum(coeff*var) op 0".
func pred(constant int64, coeffs map[m.VarID]int64, op m.CompareOp) m.Predicate {
	return m.Predicate{Expr: m.NewLinearExpr(constant, coeffs), Op: op}
}

// pathBuilder assembles the events and predicates of one execution.
type pathBuilder struct {
	events  []m.BranchID
	preds   []m.Predicate
	predIdx []int
}

func (b *pathBuilder) branch(id m.BranchID, p m.Predicate) {
	b.predIdx = append(b.predIdx, len(b.events))
	b.preds = append(b.preds, p)
	b.events = append(b.events, id)
}

func (b *pathBuilder) event(id m.BranchID) {
	b.events = append(b.events, id)
}

// cond records the side of a conditional selected by p and returns it.
func (b *pathBuilder) cond(p m.Predicate, values []int64, taken, other m.BranchID) bool {
	if p.Holds(values) {
		b.branch(taken, p)
		return true
	}

	b.branch(other, p.Negated())

	return false
}

func (b *pathBuilder) path() m.SymbolicPath {
	return m.MustSymbolicPath(b.events, b.preds, b.predIdx)
}

func toyProgram(input []int64) *m.Execution {
	values := make([]int64, 2)
	copy(values, input)

	x := map[m.VarID]int64{0: 1}
	y := map[m.VarID]int64{1: 1}

	var b pathBuilder

	if b.cond(pred(-3, x, m.OpGT), values, 1, 2) {
		b.event(m.CallID)
		b.cond(pred(-10, map[m.VarID]int64{0: 1, 1: 1}, m.OpGT), values, 5, 6)
		b.event(m.ReturnID)
	}

	b.cond(pred(-5, y, m.OpEQ), values, 3, 4)

	return &m.Execution{Inputs: values, Path: b.path(), Vars: toyVars}
}

// The chain program has three inputs x, y and z and a nested conditional:
//
//	if x > 0 { /* 11 */ } else { /* 12 */ }
//	if y > 0 { /* 13 */ if z > 0 { /* 15 */ } else { /* 16 */ } } else { /* 14 */ }
//
// Branches 17 and 18 belong to a function the program never calls.
var chainListing = m.BranchListing{Functions: []m.FunctionBranches{
	{Function: 1, Pairs: []m.BranchPair{{True: 11, False: 12}, {True: 13, False: 14}, {True: 15, False: 16}}},
	{Function: 2, Pairs: []m.BranchPair{{True: 17, False: 18}}},
}}

var chainCFG = []m.Successors{
	{Source: 11, Next: []m.BranchID{13, 14, 17}},
	{Source: 12, Next: []m.BranchID{13, 14}},
	{Source: 13, Next: []m.BranchID{15, 16}},
	{Source: 14},
	{Source: 15},
	{Source: 16},
	{Source: 17},
	{Source: 18},
}

var chainVars = map[m.VarID]m.ScalarType{0: m.Int, 1: m.Int, 2: m.Int}

func chainProgram(input []int64) *m.Execution {
	values := make([]int64, 3)
	copy(values, input)

	var b pathBuilder

	b.cond(pred(0, map[m.VarID]int64{0: 1}, m.OpGT), values, 11, 12)

	if b.cond(pred(0, map[m.VarID]int64{1: 1}, m.OpGT), values, 13, 14) {
		b.cond(pred(0, map[m.VarID]int64{2: 1}, m.OpGT), values, 15, 16)
	}

	return &m.Execution{Inputs: values, Path: b.path(), Vars: chainVars}
}

func chain(x, y, z int64) *m.Execution {
	return chainProgram([]int64{x, y, z})
}

// execOf builds an execution whose every event is a constrained branch.
func execOf(branches ...m.BranchID) *m.Execution {
	var b pathBuilder

	for i, id := range branches {
		b.branch(id, pred(int64(i), map[m.VarID]int64{0: 1}, m.OpGT))
	}

	return &m.Execution{Inputs: []int64{0}, Path: b.path(), Vars: map[m.VarID]m.ScalarType{0: m.Int}}
}

// programDriver runs a Go function in place of the target.
type programDriver struct {
	mu      sync.Mutex
	program func([]int64) *m.Execution
	inputs  [][]int64
	err     error
}

func (d *programDriver) RunProgram(ctx context.Context, input []int64) (*m.Execution, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.err != nil {
		return nil, d.err
	}

	d.inputs = append(d.inputs, append([]int64(nil), input...))

	return d.program(input), nil
}

func (d *programDriver) runs() int {
	d.mu.Lock()
	defer d.mu.Unlock()

	return len(d.inputs)
}

// bruteSolver searches assignments of the constrained variables in
// [-bruteRange, bruteRange], first variable outermost.
type bruteSolver struct {
	unsat  bool
	opened int
	closed int
}

const bruteRange = 16

func (s *bruteSolver) OpenSession(_ context.Context) (adapter.SolverSession, error) {
	s.opened++
	return &bruteSession{solver: s}, nil
}

type bruteSession struct {
	solver *bruteSolver
	closed bool
}

func (s *bruteSession) Solve(_ context.Context, seed []int64, _ map[m.VarID]m.ScalarType, constraints []m.Predicate) (map[m.VarID]int64, bool, error) {
	if s.closed {
		return nil, false, adapter.ErrSolverClosed
	}

	if s.solver.unsat {
		return nil, false, nil
	}

	seen := map[m.VarID]bool{}

	var vars []m.VarID

	for _, c := range constraints {
		for _, v := range c.Expr.Vars() {
			if !seen[v] {
				seen[v] = true
				vars = append(vars, v)
			}
		}
	}

	size := len(seed)
	for _, v := range vars {
		size = max(size, int(v)+1)
	}

	values := make([]int64, size)
	copy(values, seed)

	var try func(k int) bool

	try = func(k int) bool {
		if k == len(vars) {
			for _, c := range constraints {
				if !c.Holds(values) {
					return false
				}
			}

			return true
		}

		for val := int64(-bruteRange); val <= bruteRange; val++ {
			values[vars[k]] = val
			if try(k + 1) {
				return true
			}
		}

		return false
	}

	if !try(0) {
		return nil, false, nil
	}

	soln := make(map[m.VarID]int64, len(vars))
	for _, v := range vars {
		soln[v] = values[v]
	}

	return soln, true, nil
}

func (s *bruteSession) Close() error {
	if s.closed {
		return errors.New("closed twice")
	}

	s.closed = true
	s.solver.closed++

	return nil
}

// memFindings keeps findings in memory.
type memFindings struct {
	findings []m.Finding
}

func (f *memFindings) RecordFinding(finding m.Finding) error {
	f.findings = append(f.findings, finding)
	return nil
}

func (f *memFindings) Len() int { return len(f.findings) }

func (f *memFindings) Export(_ context.Context, _ m.Path) (int, error) {
	return len(f.findings), nil
}

func (f *memFindings) Close() error { return nil }

// fakeClock advances by step on every reading.
type fakeClock struct {
	now  time.Time
	step time.Duration
}

func (c *fakeClock) Now() time.Time {
	c.now = c.now.Add(c.step)
	return c.now
}

func toyArtifacts(t *testing.T) Artifacts {
	t.Helper()

	return loadArtifacts(t, toyListing, toyCFG)
}

func loadArtifacts(t *testing.T, listing m.BranchListing, records []m.Successors) Artifacts {
	t.Helper()

	u, err := NewUniverse(listing)
	require.NoError(t, err)

	cfg, err := NewControlFlowGraph(u, records)
	require.NoError(t, err)

	return Artifacts{Universe: u, CFG: cfg}
}

// toySearch wires a Search over a Go program.
type toySearch struct {
	*Search
	driver   *programDriver
	brute    *bruteSolver
	findings *memFindings
}

func newToySearch(t *testing.T, opts Options) *toySearch {
	t.Helper()

	return newProgramSearch(t, toyArtifacts(t), toyProgram, opts)
}

func newProgramSearch(t *testing.T, artifacts Artifacts, program func([]int64) *m.Execution, opts Options) *toySearch {
	t.Helper()

	rng := rand.New(rand.NewPCG(1, 2))

	ts := &toySearch{
		driver:   &programDriver{program: program},
		brute:    &bruteSolver{},
		findings: &memFindings{},
	}

	ts.Search = NewSearch(SearchDeps{
		Artifacts: artifacts,
		Coverage:  NewCoverageTracker(artifacts.Universe, artifacts.CFG, nil),
		Solver:    NewBranchSolver(ts.brute, artifacts.Universe, rng),
		Driver:    ts.driver,
		Findings:  ts.findings,
		Rand:      rng,
	}, opts)

	return ts
}

func toyOptions(maxIterations int) Options {
	opts := DefaultOptions()
	opts.MaxIterations = maxIterations

	return opts
}
