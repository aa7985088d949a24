package adapter

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	m "preach.dev/pkg/preach/internal/model"
)

// CoverageStore persists the cumulative set of covered branches so that a
// restarted search can resume with knowledge of what was already covered.
type CoverageStore interface {
	SaveCoverage(ctx context.Context, covered []m.BranchID) error
	LoadCoverage(ctx context.Context) ([]m.BranchID, error)
}

// FileCoverageStore writes newline separated branch ids to a file. Saves go
// through a temporary file and a rename so a crash never leaves a truncated file.
type FileCoverageStore struct {
	path m.Path
}

// NewFileCoverageStore constructs a FileCoverageStore writing to path.
func NewFileCoverageStore(path m.Path) *FileCoverageStore {
	return &FileCoverageStore{path: path}
}

// SaveCoverage implements CoverageStore.
func (s *FileCoverageStore) SaveCoverage(ctx context.Context, covered []m.BranchID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	dir := filepath.Dir(string(s.path))

	tmp, err := os.CreateTemp(dir, ".coverage-*")
	if err != nil {
		return fmt.Errorf("create coverage temp file: %w", err)
	}

	w := bufio.NewWriter(tmp)
	for _, b := range covered {
		_, err = w.WriteString(strconv.FormatInt(int64(b), 10) + "\n")
		if err != nil {
			break
		}
	}

	if err == nil {
		err = w.Flush()
	}

	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}

	if err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("write coverage: %w", err)
	}

	if err := os.Rename(tmp.Name(), string(s.path)); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("replace coverage file: %w", err)
	}

	return nil
}

// LoadCoverage implements CoverageStore. A missing file is an empty coverage set.
func (s *FileCoverageStore) LoadCoverage(ctx context.Context) ([]m.BranchID, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(string(s.path))
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("open coverage: %w", err)
	}
	defer closeQuietly(f, s.path)

	var out []m.BranchID

	scanner := bufio.NewScanner(f)
	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		b, err := strconv.ParseInt(text, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("coverage line %d: %w", line, err)
		}

		out = append(out, m.BranchID(b))
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read coverage: %w", err)
	}

	return out, nil
}
