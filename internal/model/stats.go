package model

import "time"

// Progress is a snapshot of the search reported after every execution.
type Progress struct {
	Iteration          int
	Elapsed            time.Duration
	RoundCovered       int
	TotalCovered       int
	TotalBranches      int
	ReachableFunctions int
	ReachableBranches  int
}

// SearchStats are the counters kept by the search strategies. The CFG
// counters are only filled by the CFG-guided strategies.
type SearchStats struct {
	RunID      string        `yaml:"run_id"`
	Strategy   string        `yaml:"strategy"`
	Iterations int           `yaml:"iterations"`
	Elapsed    time.Duration `yaml:"elapsed"`
	Restarts   int           `yaml:"restarts"`

	TotalCovered       int `yaml:"total_covered"`
	TotalBranches      int `yaml:"total_branches"`
	ReachableFunctions int `yaml:"reachable_functions"`
	ReachableBranches  int `yaml:"reachable_branches"`

	Solves             int `yaml:"solves"`
	Unsats             int `yaml:"unsats"`
	ShortCircuits      int `yaml:"short_circuits"`
	PredictionFailures int `yaml:"prediction_failures"`
	LuckyFinds         int `yaml:"lucky_finds"`

	Cfg CfgStats `yaml:"cfg,omitempty"`
}

// CfgStats are the counters of the CFG-heuristic search.
type CfgStats struct {
	InnerSolves              int `yaml:"inner_solves"`
	InnerUnsats              int `yaml:"inner_unsats"`
	InnerPredictionFailures  int `yaml:"inner_prediction_failures"`
	InnerLuckySuccesses      int `yaml:"inner_lucky_successes"`
	InnerLuckyPredictionFail int `yaml:"inner_lucky_prediction_failures"`
	InnerZeroSuccesses       int `yaml:"inner_zero_successes"`
	InnerNonzeroSuccesses    int `yaml:"inner_nonzero_successes"`

	TopSolves         int `yaml:"top_solves"`
	TopSolveSuccesses int `yaml:"top_solve_successes"`

	Solves             int `yaml:"solves"`
	SolveSuccesses     int `yaml:"solve_successes"`
	SolveNoPaths       int `yaml:"solve_no_paths"`
	SolveAllConcrete   int `yaml:"solve_all_concrete"`
	SolveSatAttempts   int `yaml:"solve_sat_attempts"`
	SolveUnsats        int `yaml:"solve_unsats"`
	SolvePredFailures  int `yaml:"solve_prediction_failures"`
	SolveRecursions    int `yaml:"solve_recursions"`
}

// InnerSuccesses is the number of passes that ended with new coverage.
func (s CfgStats) InnerSuccesses() int {
	return s.InnerLuckySuccesses + s.InnerZeroSuccesses + s.InnerNonzeroSuccesses + s.TopSolveSuccesses
}

// Finding is an execution that grew coverage.
type Finding struct {
	Iteration   int
	Strategy    string
	Input       []int64
	NewBranches []BranchID
	Lucky       bool
}

// FunctionCoverage summarizes coverage of one function.
type FunctionCoverage struct {
	Function FunctionID
	Branches int
	Covered  int
}
