package domain

import (
	"context"
	"fmt"
	"slices"
	"strings"
)

// Strategy is a branch selection policy driving a Search.
type Strategy interface {
	Name() string
	Run(ctx context.Context) error
}

// Strategy names accepted by NewStrategy. The path-guided search needs a
// target path and is only built by the guide workflow.
const (
	StrategyDFS         = "dfs"
	StrategyRandom      = "random"
	StrategyRandomInput = "random_input"
	StrategyUniform     = "uniform_random"
	StrategyHybrid      = "hybrid"
	StrategyCfgBaseline = "cfg_baseline"
	StrategyCfg         = "cfg"
	StrategyGuided      = "guided"
)

var strategies = map[string]func(*Search) (Strategy, error){
	StrategyDFS:         func(s *Search) (Strategy, error) { return NewBoundedDFS(s), nil },
	StrategyRandom:      func(s *Search) (Strategy, error) { return NewRandomSearch(s), nil },
	StrategyRandomInput: func(s *Search) (Strategy, error) { return NewRandomInputSearch(s), nil },
	StrategyUniform:     func(s *Search) (Strategy, error) { return NewUniformRandomSearch(s), nil },
	StrategyHybrid:      func(s *Search) (Strategy, error) { return NewHybridSearch(s), nil },
	StrategyCfgBaseline: func(s *Search) (Strategy, error) { return NewCfgBaselineSearch(s), nil },
	StrategyCfg:         func(s *Search) (Strategy, error) { return NewCfgHeuristicSearch(s), nil },
}

// StrategyNames lists the registered strategies in sorted order.
func StrategyNames() []string {
	names := make([]string, 0, len(strategies))
	for name := range strategies {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// NewStrategy builds the named strategy on top of s.
func NewStrategy(name string, s *Search) (Strategy, error) {
	if strings.EqualFold(name, StrategyGuided) {
		return nil, fmt.Errorf("%w %q: path-guided search needs a target path, use 'preach guide'", ErrUnknownStrategy, name)
	}

	build, ok := strategies[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w %q (known: %s)", ErrUnknownStrategy, name, strings.Join(StrategyNames(), ", "))
	}

	return build(s)
}
