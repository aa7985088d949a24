package adapter

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"strconv"
	"strings"

	m "preach.dev/pkg/preach/internal/model"
)

// maxRecordLen bounds every length prefix of an execution record.
const maxRecordLen = 1 << 26

type recordReader struct {
	r   *bufio.Reader
	err error
}

func (rr *recordReader) read(v any) {
	if rr.err != nil {
		return
	}

	rr.err = binary.Read(rr.r, binary.LittleEndian, v)
}

func (rr *recordReader) length(what string) int {
	var n uint32

	rr.read(&n)

	if rr.err == nil && n > maxRecordLen {
		rr.err = fmt.Errorf("%s length %d too large", what, n)
	}

	return int(n)
}

// ParseExecution decodes an execution record written by the instrumented
// target:
//
//	u32 nvars, nvars x (u32 var, u8 type, i64 value)
//	u32 nevents, nevents x i32 event
//	u32 npreds, npreds x (u32 event index, u8 op, i64 const, u32 nterms, nterms x (u32 var, i64 coeff))
//
// All integers are little-endian.
func ParseExecution(r io.Reader) (*m.Execution, error) {
	rr := &recordReader{r: bufio.NewReader(r)}

	ex := &m.Execution{Vars: map[m.VarID]m.ScalarType{}}

	nvars := rr.length("vars")
	for i := 0; i < nvars && rr.err == nil; i++ {
		var (
			v   uint32
			typ uint8
			val int64
		)

		rr.read(&v)
		rr.read(&typ)
		rr.read(&val)

		if rr.err != nil {
			break
		}

		if !m.ScalarType(typ).Valid() {
			return nil, fmt.Errorf("var %d: unknown scalar type %d", v, typ)
		}

		if int(v) != i {
			return nil, fmt.Errorf("var %d: expected id %d", v, i)
		}

		ex.Vars[m.VarID(v)] = m.ScalarType(typ)
		ex.Inputs = append(ex.Inputs, val)
	}

	nevents := rr.length("events")
	raw := make([]int32, 0, min(nevents, 1<<16))

	for i := 0; i < nevents && rr.err == nil; i++ {
		var ev int32

		rr.read(&ev)
		raw = append(raw, ev)
	}

	npreds := rr.length("predicates")
	preds := make([]m.Predicate, 0, min(npreds, 1<<16))
	predIdx := make([]int, 0, min(npreds, 1<<16))

	for i := 0; i < npreds && rr.err == nil; i++ {
		pred, idx, err := readPredicate(rr)
		if err != nil {
			return nil, fmt.Errorf("predicate %d: %w", i, err)
		}

		preds = append(preds, pred)
		predIdx = append(predIdx, idx)
	}

	if rr.err != nil {
		return nil, fmt.Errorf("decode execution record: %w", rr.err)
	}

	events := make([]m.BranchID, len(raw))
	for i, ev := range raw {
		events[i] = m.BranchID(ev)
	}

	path, err := m.NewSymbolicPath(events, preds, predIdx)
	if err != nil {
		return nil, fmt.Errorf("invalid path: %w", err)
	}

	ex.Path = path

	return ex, nil
}

func readPredicate(rr *recordReader) (m.Predicate, int, error) {
	var (
		idx      uint32
		op       uint8
		constant int64
	)

	rr.read(&idx)
	rr.read(&op)
	rr.read(&constant)

	nterms := rr.length("terms")
	coeffs := make(map[m.VarID]int64, min(nterms, 64))

	for j := 0; j < nterms && rr.err == nil; j++ {
		var (
			v     uint32
			coeff int64
		)

		rr.read(&v)
		rr.read(&coeff)
		coeffs[m.VarID(v)] += coeff
	}

	if rr.err != nil {
		return m.Predicate{}, 0, rr.err
	}

	if !m.CompareOp(op).Valid() {
		return m.Predicate{}, 0, fmt.Errorf("unknown operator %d", op)
	}

	return m.Predicate{Expr: m.NewLinearExpr(constant, coeffs), Op: m.CompareOp(op)}, int(idx), nil
}

// WriteExecution encodes an execution in the format read by ParseExecution.
func WriteExecution(w io.Writer, ex *m.Execution) error {
	bw := bufio.NewWriter(w)

	var err error

	put := func(v any) {
		if err == nil {
			err = binary.Write(bw, binary.LittleEndian, v)
		}
	}

	put(uint32(len(ex.Inputs)))

	for i, val := range ex.Inputs {
		typ, ok := ex.Vars[m.VarID(i)]
		if !ok {
			typ = m.LongLong
		}

		put(uint32(i))
		put(uint8(typ))
		put(val)
	}

	put(uint32(ex.Path.Len()))

	for _, ev := range ex.Path.Events() {
		put(int32(ev))
	}

	put(uint32(ex.Path.NumConstraints()))

	for c, pred := range ex.Path.Constraints() {
		put(uint32(ex.Path.PathIndex(c)))
		put(uint8(pred.Op))
		put(pred.Expr.Const)
		put(uint32(len(pred.Expr.Terms)))

		for _, t := range pred.Expr.Terms {
			put(uint32(t.Var))
			put(t.Coeff)
		}
	}

	if err != nil {
		return err
	}

	return bw.Flush()
}

// WriteInput writes one value per line.
func WriteInput(w io.Writer, input []int64) error {
	bw := bufio.NewWriter(w)

	for _, v := range input {
		if _, err := bw.WriteString(strconv.FormatInt(v, 10) + "\n"); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// ParseInput reads values written by WriteInput. Blank lines are ignored.
func ParseInput(r io.Reader) ([]int64, error) {
	scanner := bufio.NewScanner(r)

	var out []int64

	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		v, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		out = append(out, v)
	}

	return out, scanner.Err()
}
