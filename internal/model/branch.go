// Package model defines the data structures shared by the concolic search engine.
package model

import "fmt"

// BranchID identifies one side of a conditional in the target program.
type BranchID int32

// FunctionID identifies a function of the target program in the branch listing.
type FunctionID int32

// VarID identifies a symbolic input variable.
type VarID uint32

const (
	// CallID marks a function call event in a path.
	CallID BranchID = -1
	// ReturnID marks a function return event in a path.
	ReturnID BranchID = -2
)

// IsBranch reports whether the event is a real branch and not a call/return sentinel.
func (b BranchID) IsBranch() bool {
	return b >= 0
}

func (b BranchID) String() string {
	switch b {
	case CallID:
		return "call"
	case ReturnID:
		return "ret"
	default:
		return fmt.Sprintf("%d", int32(b))
	}
}

// BranchPair is the true/false pairing of one conditional.
type BranchPair struct {
	True  BranchID
	False BranchID
}

// FunctionBranches is one record of the branch listing.
type FunctionBranches struct {
	Function FunctionID
	Pairs    []BranchPair
}

// BranchListing is the parsed branch-listing artifact.
type BranchListing struct {
	Functions []FunctionBranches
}

// Successors is one record of the CFG artifact.
type Successors struct {
	Source BranchID
	Next   []BranchID
}

// Path represents a file system path.
type Path string
