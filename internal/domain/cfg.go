package domain

import (
	"fmt"
	"log/slog"

	m "preach.dev/pkg/preach/internal/model"
)

// ControlFlowGraph holds the branch-level successor lists and the derived
// reverse adjacency.
type ControlFlowGraph struct {
	succ [][]m.BranchID
	pred [][]m.BranchID
}

// NewControlFlowGraph builds the graph from the CFG artifact records. Every
// source and successor must be a branch of u.
func NewControlFlowGraph(u *Universe, records []m.Successors) (*ControlFlowGraph, error) {
	g := &ControlFlowGraph{
		succ: make([][]m.BranchID, u.MaxBranch()),
		pred: make([][]m.BranchID, u.MaxBranch()),
	}

	if len(records) != 0 && len(records) != u.NumBranches() {
		slog.Warn("CFG record count differs from branch count", "records", len(records), "branches", u.NumBranches())
	}

	for _, rec := range records {
		if !u.Contains(rec.Source) {
			return nil, fmt.Errorf("cfg source %d is not a listed branch", rec.Source)
		}

		for _, next := range rec.Next {
			if !u.Contains(next) {
				return nil, fmt.Errorf("cfg edge %d -> %d: successor is not a listed branch", rec.Source, next)
			}
		}

		g.succ[rec.Source] = append(g.succ[rec.Source], rec.Next...)
	}

	for _, b := range u.Branches() {
		for _, next := range g.succ[b] {
			g.pred[next] = append(g.pred[next], b)
		}
	}

	return g, nil
}

// Successors returns the forward CFG successors of b.
func (g *ControlFlowGraph) Successors(b m.BranchID) []m.BranchID {
	if b < 0 || int(b) >= len(g.succ) {
		return nil
	}

	return g.succ[b]
}

// Predecessors returns the branches with an edge into b.
func (g *ControlFlowGraph) Predecessors(b m.BranchID) []m.BranchID {
	if b < 0 || int(b) >= len(g.pred) {
		return nil
	}

	return g.pred[b]
}
