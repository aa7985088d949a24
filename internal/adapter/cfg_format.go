package adapter

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	m "preach.dev/pkg/preach/internal/model"
)

// maxSuccessors bounds a single record so corrupt files fail fast instead of
// allocating huge slices.
const maxSuccessors = 1 << 24

// ParseCFG reads the binary CFG artifact: a uint64 record count followed by
// records of (int32 source, uint64 n, n x int32 successor), little-endian.
func ParseCFG(r io.Reader) ([]m.Successors, error) {
	br := bufio.NewReader(r)

	var count uint64
	if err := binary.Read(br, binary.LittleEndian, &count); err != nil {
		return nil, fmt.Errorf("read record count: %w", err)
	}

	records := make([]m.Successors, 0, min(count, 1<<16))

	for i := uint64(0); i < count; i++ {
		var (
			src int32
			n   uint64
		)

		if err := binary.Read(br, binary.LittleEndian, &src); err != nil {
			return nil, fmt.Errorf("record %d: read source: %w", i, err)
		}

		if err := binary.Read(br, binary.LittleEndian, &n); err != nil {
			return nil, fmt.Errorf("record %d: read successor count: %w", i, err)
		}

		if n > maxSuccessors {
			return nil, fmt.Errorf("record %d: successor count %d too large", i, n)
		}

		next := make([]int32, n)
		if err := binary.Read(br, binary.LittleEndian, next); err != nil {
			return nil, fmt.Errorf("record %d: read successors: %w", i, err)
		}

		rec := m.Successors{Source: m.BranchID(src), Next: make([]m.BranchID, n)}
		for j, b := range next {
			rec.Next[j] = m.BranchID(b)
		}

		records = append(records, rec)
	}

	if _, err := br.ReadByte(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("trailing data after %d records", count)
	}

	return records, nil
}

// WriteCFG writes records in the format read by ParseCFG.
func WriteCFG(w io.Writer, records []m.Successors) error {
	bw := bufio.NewWriter(w)

	if err := binary.Write(bw, binary.LittleEndian, uint64(len(records))); err != nil {
		return err
	}

	for _, rec := range records {
		next := make([]int32, len(rec.Next))
		for j, b := range rec.Next {
			next[j] = int32(b)
		}

		if err := binary.Write(bw, binary.LittleEndian, int32(rec.Source)); err != nil {
			return err
		}

		if err := binary.Write(bw, binary.LittleEndian, uint64(len(next))); err != nil {
			return err
		}

		if err := binary.Write(bw, binary.LittleEndian, next); err != nil {
			return err
		}
	}

	return bw.Flush()
}
