// Package domain implements the concolic search engine: the static branch
// universe, coverage tracking, branch solving and the search strategies.
package domain

import (
	"fmt"
	"slices"

	m "preach.dev/pkg/preach/internal/model"
)

// MaxBranchID bounds branch ids so that per-branch tables stay dense.
const MaxBranchID = 1 << 26

// Universe is the static branch metadata loaded from the branch listing. It
// is immutable after construction.
type Universe struct {
	functions []m.FunctionBranches
	branches  []m.BranchID

	// Indexed by branch id. function holds the function index plus one so
	// that zero means "not a branch".
	paired   []m.BranchID
	function []int32
}

// NewUniverse builds the universe from a listing. Branch ids must be positive,
// unique, and distinct from their pair.
func NewUniverse(listing m.BranchListing) (*Universe, error) {
	u := &Universe{functions: listing.Functions}

	var maxID m.BranchID

	for _, fn := range listing.Functions {
		for _, p := range fn.Pairs {
			for _, b := range []m.BranchID{p.True, p.False} {
				if b <= 0 || b >= MaxBranchID {
					return nil, fmt.Errorf("function %d: branch id %d out of range", fn.Function, b)
				}

				maxID = max(maxID, b)
			}

			if p.True == p.False {
				return nil, fmt.Errorf("function %d: branch %d paired with itself", fn.Function, p.True)
			}
		}
	}

	u.paired = make([]m.BranchID, maxID+1)
	u.function = make([]int32, maxID+1)

	for fi, fn := range listing.Functions {
		for _, p := range fn.Pairs {
			for _, b := range []m.BranchID{p.True, p.False} {
				if u.function[b] != 0 {
					return nil, fmt.Errorf("function %d: branch %d listed twice", fn.Function, b)
				}

				u.function[b] = int32(fi + 1)
				u.branches = append(u.branches, b)
			}

			u.paired[p.True] = p.False
			u.paired[p.False] = p.True
		}
	}

	slices.Sort(u.branches)

	return u, nil
}

// Contains reports whether b is a listed branch.
func (u *Universe) Contains(b m.BranchID) bool {
	return b > 0 && int(b) < len(u.function) && u.function[b] != 0
}

// Paired returns the other side of b's conditional, or b itself when b is
// not a listed branch.
func (u *Universe) Paired(b m.BranchID) m.BranchID {
	if !u.Contains(b) {
		return b
	}

	return u.paired[b]
}

// FunctionOf returns the index of the function owning b, or -1.
func (u *Universe) FunctionOf(b m.BranchID) int {
	if !u.Contains(b) {
		return -1
	}

	return int(u.function[b]) - 1
}

// FunctionBranchCount returns the number of branches of the function at index fi.
func (u *Universe) FunctionBranchCount(fi int) int {
	if fi < 0 || fi >= len(u.functions) {
		return 0
	}

	return 2 * len(u.functions[fi].Pairs)
}

// Function returns the listing entry of the function at index fi.
func (u *Universe) Function(fi int) m.FunctionBranches {
	return u.functions[fi]
}

// NumFunctions returns the number of listed functions.
func (u *Universe) NumFunctions() int {
	return len(u.functions)
}

// Branches returns every listed branch in ascending order. Callers must not
// modify it.
func (u *Universe) Branches() []m.BranchID {
	return u.branches
}

// NumBranches returns the number of listed branches.
func (u *Universe) NumBranches() int {
	return len(u.branches)
}

// MaxBranch returns one past the largest branch id, the size of dense
// per-branch tables.
func (u *Universe) MaxBranch() int {
	return len(u.paired)
}
