package adapter

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	m "preach.dev/pkg/preach/internal/model"
)

// ParseBranchListing reads the whitespace separated branch listing: for every
// function its id, the number of conditionals, and then one true/false branch
// pair per conditional.
func ParseBranchListing(r io.Reader) (m.BranchListing, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	scanner.Split(bufio.ScanWords)

	next := func() (int64, bool, error) {
		if !scanner.Scan() {
			return 0, false, scanner.Err()
		}

		v, err := strconv.ParseInt(scanner.Text(), 10, 32)
		if err != nil {
			return 0, false, fmt.Errorf("parse %q: %w", scanner.Text(), err)
		}

		return v, true, nil
	}

	var listing m.BranchListing

	for {
		fid, ok, err := next()
		if err != nil {
			return m.BranchListing{}, err
		}

		if !ok {
			break
		}

		count, ok, err := next()
		if err != nil {
			return m.BranchListing{}, err
		}

		if !ok || count < 0 {
			return m.BranchListing{}, fmt.Errorf("function %d: missing or negative branch count", fid)
		}

		fn := m.FunctionBranches{Function: m.FunctionID(fid), Pairs: make([]m.BranchPair, 0, count)}

		for i := int64(0); i < count; i++ {
			t, okT, errT := next()
			f, okF, errF := next()

			if err := errors.Join(errT, errF); err != nil {
				return m.BranchListing{}, err
			}

			if !okT || !okF {
				return m.BranchListing{}, fmt.Errorf("function %d: truncated after %d of %d pairs", fid, i, count)
			}

			fn.Pairs = append(fn.Pairs, m.BranchPair{True: m.BranchID(t), False: m.BranchID(f)})
		}

		listing.Functions = append(listing.Functions, fn)
	}

	return listing, nil
}

// WriteBranchListing writes a listing in the format read by ParseBranchListing.
func WriteBranchListing(w io.Writer, listing m.BranchListing) error {
	bw := bufio.NewWriter(w)

	for _, fn := range listing.Functions {
		if _, err := fmt.Fprintf(bw, "%d %d\n", fn.Function, len(fn.Pairs)); err != nil {
			return err
		}

		for _, p := range fn.Pairs {
			if _, err := fmt.Fprintf(bw, "%d %d\n", p.True, p.False); err != nil {
				return err
			}
		}
	}

	return bw.Flush()
}
