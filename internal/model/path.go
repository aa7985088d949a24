package model

import (
	"errors"
	"fmt"
)

// ErrUnbalancedPath is returned when a path's call/return events do not nest.
var ErrUnbalancedPath = errors.New("unbalanced call/return events")

// SymbolicPath is the event sequence of one concrete run together with the
// symbolic predicates of the events that depended on input.
//
// The events form a tree flattened in traversal order: every CallID opens a
// nested frame that is closed by the matching ReturnID. A run may exit inside
// a function, so trailing frames may stay open; a ReturnID without an open
// frame is rejected.
//
// The zero value is an empty path.
type SymbolicPath struct {
	events []BranchID
	preds  []Predicate

	// predIdx[c] is the event index of constraint c; strictly increasing.
	predIdx []int
	// constraintAt[i] is the constraint index of event i, or -1.
	constraintAt []int
	// matchRet[i] is the index of the ReturnID closing the call at i, or
	// len(events) when the frame never closes. Only meaningful at calls.
	matchRet []int
}

// NewSymbolicPath validates and indexes a path.
func NewSymbolicPath(events []BranchID, preds []Predicate, predIdx []int) (SymbolicPath, error) {
	if len(preds) != len(predIdx) {
		return SymbolicPath{}, fmt.Errorf("%d predicates but %d predicate indices", len(preds), len(predIdx))
	}

	p := SymbolicPath{
		events:       events,
		preds:        preds,
		predIdx:      predIdx,
		constraintAt: make([]int, len(events)),
		matchRet:     make([]int, len(events)),
	}

	for i := range p.constraintAt {
		p.constraintAt[i] = -1
	}

	prev := -1

	for c, idx := range predIdx {
		if idx <= prev {
			return SymbolicPath{}, fmt.Errorf("predicate %d: event index %d not after %d", c, idx, prev)
		}

		if idx >= len(events) {
			return SymbolicPath{}, fmt.Errorf("predicate %d: event index %d out of range (%d events)", c, idx, len(events))
		}

		if !events[idx].IsBranch() {
			return SymbolicPath{}, fmt.Errorf("predicate %d: event %d is %s, not a branch", c, idx, events[idx])
		}

		p.constraintAt[idx] = c
		prev = idx
	}

	if err := p.indexCalls(); err != nil {
		return SymbolicPath{}, err
	}

	return p, nil
}

// MustSymbolicPath is NewSymbolicPath for statically known paths; it panics on error.
func MustSymbolicPath(events []BranchID, preds []Predicate, predIdx []int) SymbolicPath {
	p, err := NewSymbolicPath(events, preds, predIdx)
	if err != nil {
		panic(err)
	}

	return p
}

func (p *SymbolicPath) indexCalls() error {
	var open []int

	for i, ev := range p.events {
		p.matchRet[i] = -1

		switch {
		case ev == CallID:
			open = append(open, i)
		case ev == ReturnID:
			if len(open) == 0 {
				return fmt.Errorf("event %d: %w", i, ErrUnbalancedPath)
			}

			p.matchRet[open[len(open)-1]] = i
			open = open[:len(open)-1]
		case !ev.IsBranch():
			return fmt.Errorf("event %d: unknown sentinel %d", i, int32(ev))
		}
	}

	for _, i := range open {
		p.matchRet[i] = len(p.events)
	}

	return nil
}

// Len returns the number of events.
func (p SymbolicPath) Len() int {
	return len(p.events)
}

// Events returns the event sequence. Callers must not modify it.
func (p SymbolicPath) Events() []BranchID {
	return p.events
}

// Event returns the event at index i.
func (p SymbolicPath) Event(i int) BranchID {
	return p.events[i]
}

// NumConstraints returns the number of symbolic predicates.
func (p SymbolicPath) NumConstraints() int {
	return len(p.preds)
}

// Constraints returns the predicate sequence. Callers must not modify it.
func (p SymbolicPath) Constraints() []Predicate {
	return p.preds
}

// Constraint returns predicate c.
func (p SymbolicPath) Constraint(c int) Predicate {
	return p.preds[c]
}

// PathIndex maps a constraint index to its event index.
func (p SymbolicPath) PathIndex(c int) int {
	return p.predIdx[c]
}

// PathIndices returns the event index of every constraint. Callers must not modify it.
func (p SymbolicPath) PathIndices() []int {
	return p.predIdx
}

// ConstraintAt maps an event index to its constraint index. It reports false
// for concrete branches and sentinels.
func (p SymbolicPath) ConstraintAt(i int) (int, bool) {
	if i < 0 || i >= len(p.constraintAt) {
		return 0, false
	}

	c := p.constraintAt[i]

	return c, c >= 0
}

// BranchAtConstraint returns the branch taken at constraint c.
func (p SymbolicPath) BranchAtConstraint(c int) BranchID {
	return p.events[p.predIdx[c]]
}

// ConstrainedBranches returns the branch of every constraint, in order.
func (p SymbolicPath) ConstrainedBranches() []BranchID {
	out := make([]BranchID, len(p.predIdx))
	for c, idx := range p.predIdx {
		out[c] = p.events[idx]
	}

	return out
}

// MatchingReturn returns the index of the return closing the call at i. The
// index equals Len() when the frame is never closed.
func (p SymbolicPath) MatchingReturn(i int) (int, bool) {
	if i < 0 || i >= len(p.events) || p.events[i] != CallID {
		return 0, false
	}

	return p.matchRet[i], true
}

// SkipToReturn advances from pos over branches and complete nested frames and
// returns the index of the ReturnID closing the current frame, or Len().
func (p SymbolicPath) SkipToReturn(pos int) int {
	for pos < len(p.events) && p.events[pos] != ReturnID {
		if p.events[pos] == CallID {
			pos = p.matchRet[pos]
			if pos >= len(p.events) {
				return len(p.events)
			}
		}

		pos++
	}

	return pos
}

// NextBranches returns the event indices of the branches that immediately
// follow position pos-1 in the control flow: the first branch after any
// sequence of calls at this level, plus, for every call in that sequence,
// the first branches inside the callee. For the path
//
//	* ( ( ( 1 2 ) 4 ) ( 5 ( 6 7 ) ) 8 ) 9
//
// starting right after '*' it yields 1, 4, 5, 8 and 9.
func (p SymbolicPath) NextBranches(pos int) []int {
	var out []int

	p.collectNext(pos, &out)

	return out
}

func (p SymbolicPath) collectNext(pos int, out *[]int) {
	n := len(p.events)

	for pos < n && p.events[pos] == CallID {
		p.collectNext(pos+1, out)

		ret := p.matchRet[pos]
		if ret >= n {
			return
		}

		pos = ret + 1
	}

	if pos < n && p.events[pos].IsBranch() {
		*out = append(*out, pos)
	}
}
