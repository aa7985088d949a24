package adapter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	m "preach.dev/pkg/preach/internal/model"
)

// StatsStore persists the counters of a finished search.
type StatsStore interface {
	SaveStats(ctx context.Context, path m.Path, stats m.SearchStats) error
	LoadStats(ctx context.Context, path m.Path) (m.SearchStats, error)
}

// YAMLStatsStore stores statistics as YAML documents.
type YAMLStatsStore struct{}

// NewYAMLStatsStore constructs a YAMLStatsStore.
func NewYAMLStatsStore() *YAMLStatsStore {
	return &YAMLStatsStore{}
}

// SaveStats implements StatsStore.
func (s *YAMLStatsStore) SaveStats(ctx context.Context, path m.Path, stats m.SearchStats) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(string(path)), 0o750); err != nil {
		return fmt.Errorf("create stats dir: %w", err)
	}

	data, err := yaml.Marshal(stats)
	if err != nil {
		return fmt.Errorf("marshal stats: %w", err)
	}

	if err := os.WriteFile(string(path), data, 0o600); err != nil {
		return fmt.Errorf("write stats: %w", err)
	}

	return nil
}

// LoadStats implements StatsStore.
func (s *YAMLStatsStore) LoadStats(ctx context.Context, path m.Path) (m.SearchStats, error) {
	if err := ctx.Err(); err != nil {
		return m.SearchStats{}, err
	}

	data, err := os.ReadFile(string(path))
	if err != nil {
		return m.SearchStats{}, fmt.Errorf("read stats: %w", err)
	}

	var stats m.SearchStats
	if err := yaml.Unmarshal(data, &stats); err != nil {
		return m.SearchStats{}, fmt.Errorf("unmarshal stats %s: %w", path, err)
	}

	return stats, nil
}
