package adapter

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	m "preach.dev/pkg/preach/internal/model"
	"preach.dev/pkg/preach/pkg"
)

// FindingsRecorder collects the executions that grew coverage.
type FindingsRecorder interface {
	RecordFinding(finding m.Finding) error
	Len() int
	// Export writes every recorded input to dir as inputs-N.txt in the input
	// artifact format and returns how many files were written.
	Export(ctx context.Context, dir m.Path) (int, error)
	Close() error
}

// SpillFindingsRecorder keeps findings in an on-disk spill so long searches do
// not hold every input in memory.
type SpillFindingsRecorder struct {
	spill pkg.FileSpill[m.Finding]
}

// NewSpillFindingsRecorder creates a recorder spilling into dir.
func NewSpillFindingsRecorder(dir string) (*SpillFindingsRecorder, error) {
	spill, err := pkg.NewFileSpill[m.Finding](dir)
	if err != nil {
		return nil, err
	}

	return &SpillFindingsRecorder{spill: spill}, nil
}

// RecordFinding implements FindingsRecorder.
func (r *SpillFindingsRecorder) RecordFinding(finding m.Finding) error {
	return r.spill.Append(finding)
}

// Len implements FindingsRecorder.
func (r *SpillFindingsRecorder) Len() int {
	return int(r.spill.Len())
}

// Export implements FindingsRecorder.
func (r *SpillFindingsRecorder) Export(ctx context.Context, dir m.Path) (int, error) {
	if err := os.MkdirAll(string(dir), 0o750); err != nil {
		return 0, fmt.Errorf("create findings dir: %w", err)
	}

	written := 0

	err := r.spill.Range(func(index uint64, finding m.Finding) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		name := filepath.Join(string(dir), fmt.Sprintf("inputs-%d.txt", index))

		f, err := os.Create(name)
		if err != nil {
			return fmt.Errorf("create %s: %w", name, err)
		}

		if err := WriteInput(f, finding.Input); err != nil {
			_ = f.Close()
			return fmt.Errorf("write %s: %w", name, err)
		}

		if err := f.Close(); err != nil {
			return err
		}

		written++

		return nil
	})
	if err != nil {
		return written, err
	}

	slog.Info("Exported findings", "dir", dir, "count", written)

	return written, nil
}

// Close implements FindingsRecorder and removes the spill file.
func (r *SpillFindingsRecorder) Close() error {
	err := r.spill.Close()

	if rmErr := os.Remove(r.spill.Path()); rmErr != nil && !os.IsNotExist(rmErr) && err == nil {
		err = rmErr
	}

	return err
}
