package domain

import "errors"

var (
	// ErrEnvironment marks a broken harness: an artifact that cannot be
	// written or parsed, or a target or solver that cannot be launched.
	// Searches stop immediately when they see it.
	ErrEnvironment = errors.New("environment failure")

	// ErrBudgetExhausted is returned once the iteration or time budget is
	// spent. Strategies unwind on it and Run reports a clean stop.
	ErrBudgetExhausted = errors.New("search budget exhausted")

	// ErrInfeasibleTarget is returned by the path-guided search when the
	// target path cannot be followed from the achieved prefix.
	ErrInfeasibleTarget = errors.New("target path infeasible")

	// ErrUnknownStrategy is returned by NewStrategy for unregistered names.
	ErrUnknownStrategy = errors.New("unknown search strategy")
)
