// Package adapter contains the file-format and external-process adapters of
// the preach CLI.
package adapter

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	m "preach.dev/pkg/preach/internal/model"
)

// ArtifactFSAdapter abstracts the files exchanged with the instrumented target.
// It hides direct `os` access so the domain layer can be tested without
// touching the disk.
type ArtifactFSAdapter interface {
	// LoadBranchListing reads the branch listing produced at instrumentation time.
	LoadBranchListing(ctx context.Context, path m.Path) (m.BranchListing, error)

	// LoadCFG reads the binary branch CFG produced at instrumentation time.
	LoadCFG(ctx context.Context, path m.Path) ([]m.Successors, error)

	// WriteInput writes the concrete input consumed by the next target run.
	WriteInput(ctx context.Context, path m.Path, input []int64) error

	// ReadExecution parses the execution record emitted by the last target run.
	ReadExecution(ctx context.Context, path m.Path) (*m.Execution, error)
}

// LocalArtifactFSAdapter implements ArtifactFSAdapter on the local filesystem.
type LocalArtifactFSAdapter struct{}

// NewLocalArtifactFSAdapter constructs a LocalArtifactFSAdapter.
func NewLocalArtifactFSAdapter() *LocalArtifactFSAdapter {
	return &LocalArtifactFSAdapter{}
}

// LoadBranchListing implements ArtifactFSAdapter.
func (a *LocalArtifactFSAdapter) LoadBranchListing(ctx context.Context, path m.Path) (m.BranchListing, error) {
	if err := ctx.Err(); err != nil {
		return m.BranchListing{}, err
	}

	f, err := os.Open(string(path))
	if err != nil {
		return m.BranchListing{}, fmt.Errorf("open branch listing: %w", err)
	}
	defer closeQuietly(f, path)

	listing, err := ParseBranchListing(f)
	if err != nil {
		return m.BranchListing{}, fmt.Errorf("parse branch listing %s: %w", path, err)
	}

	slog.Debug("Loaded branch listing", "path", path, "functions", len(listing.Functions))

	return listing, nil
}

// LoadCFG implements ArtifactFSAdapter.
func (a *LocalArtifactFSAdapter) LoadCFG(ctx context.Context, path m.Path) ([]m.Successors, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(string(path))
	if err != nil {
		return nil, fmt.Errorf("open cfg: %w", err)
	}
	defer closeQuietly(f, path)

	records, err := ParseCFG(f)
	if err != nil {
		return nil, fmt.Errorf("parse cfg %s: %w", path, err)
	}

	slog.Debug("Loaded cfg", "path", path, "records", len(records))

	return records, nil
}

// WriteInput implements ArtifactFSAdapter.
func (a *LocalArtifactFSAdapter) WriteInput(ctx context.Context, path m.Path, input []int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f, err := os.OpenFile(string(path), os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open input for writing: %w", err)
	}

	if err := WriteInput(f, input); err != nil {
		_ = f.Close()
		return fmt.Errorf("write input %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("close input %s: %w", path, err)
	}

	return nil
}

// ReadExecution implements ArtifactFSAdapter.
func (a *LocalArtifactFSAdapter) ReadExecution(ctx context.Context, path m.Path) (*m.Execution, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(string(path))
	if err != nil {
		return nil, fmt.Errorf("open execution record: %w", err)
	}
	defer closeQuietly(f, path)

	ex, err := ParseExecution(f)
	if err != nil {
		return nil, fmt.Errorf("parse execution record %s: %w", path, err)
	}

	return ex, nil
}

// ResolvePath joins a relative artifact path onto dir.
func ResolvePath(dir string, path string) m.Path {
	if filepath.IsAbs(path) || dir == "" {
		return m.Path(path)
	}

	return m.Path(filepath.Join(dir, path))
}

func closeQuietly(f *os.File, path m.Path) {
	if err := f.Close(); err != nil {
		slog.Warn("Failed to close file", "path", path, "error", err)
	}
}
