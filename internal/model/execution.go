package model

import "sort"

// Execution is the record of one concrete run: the input that produced it,
// the observed symbolic path and the declared types of the symbolic variables.
type Execution struct {
	Inputs []int64
	Path   SymbolicPath
	Vars   map[VarID]ScalarType
}

// BranchAtConstraint returns the branch taken at constraint c.
func (e *Execution) BranchAtConstraint(c int) BranchID {
	return e.Path.BranchAtConstraint(c)
}

// SortedVars returns the declared variables in ascending order.
func (e *Execution) SortedVars() []VarID {
	return SortedVars(e.Vars)
}

// CloneInputs returns a copy of the concrete input.
func (e *Execution) CloneInputs() []int64 {
	out := make([]int64, len(e.Inputs))
	copy(out, e.Inputs)

	return out
}

// SortedVars returns the keys of vars in ascending order.
func SortedVars(vars map[VarID]ScalarType) []VarID {
	out := make([]VarID, 0, len(vars))
	for v := range vars {
		out = append(out, v)
	}

	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}
