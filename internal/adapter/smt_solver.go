package adapter

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/big"
	"os/exec"
	"strconv"
	"strings"

	m "preach.dev/pkg/preach/internal/model"
)

// ErrSolverClosed is returned by a session used after Close.
var ErrSolverClosed = errors.New("solver session closed")

// SolverAdapter opens sessions on the external constraint solver.
type SolverAdapter interface {
	OpenSession(ctx context.Context) (SolverSession, error)
}

// SolverSession is an incremental solver session. A session that failed once
// keeps failing; callers release it and open a new one.
type SolverSession interface {
	// Solve checks the conjunction of constraints. The seed holds the current
	// concrete values and vars the declared types. On success the returned
	// map assigns every variable mentioned by the constraints.
	Solve(ctx context.Context, seed []int64, vars map[m.VarID]m.ScalarType, constraints []m.Predicate) (map[m.VarID]int64, bool, error)
	Close() error
}

// SMTSolverAdapter speaks SMT-LIB2 to a solver process such as `z3 -in -smt2`.
// Every session owns one process; queries are wrapped in push/pop so that
// declarations are reused across the queries of a session.
type SMTSolverAdapter struct {
	command []string
}

// NewSMTSolverAdapter constructs an adapter for the given command line.
func NewSMTSolverAdapter(command string) *SMTSolverAdapter {
	return &SMTSolverAdapter{command: strings.Fields(command)}
}

// OpenSession implements SolverAdapter.
func (a *SMTSolverAdapter) OpenSession(ctx context.Context) (SolverSession, error) {
	if len(a.command) == 0 {
		return nil, errors.New("empty solver command")
	}

	cmd := exec.CommandContext(ctx, a.command[0], a.command[1:]...)

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("solver stdin: %w", err)
	}

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("solver stdout: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start solver %q: %w", strings.Join(a.command, " "), err)
	}

	stop := func() error {
		if cmd.Process != nil {
			_ = cmd.Process.Kill()
		}

		err := cmd.Wait()

		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil
		}

		return err
	}

	session, err := newSMTSession(stdin, stdout, stop)
	if err != nil {
		_ = stop()
		return nil, err
	}

	slog.Debug("Opened solver session", "command", a.command)

	return session, nil
}

type smtSession struct {
	w        io.WriteCloser
	r        *bufio.Reader
	stop     func() error
	declared map[m.VarID]bool
	failed   error
	closed   bool
}

func newSMTSession(w io.WriteCloser, r io.Reader, stop func() error) (*smtSession, error) {
	s := &smtSession{
		w:        w,
		r:        bufio.NewReader(r),
		stop:     stop,
		declared: map[m.VarID]bool{},
	}

	if err := s.send("(set-option :print-success false)\n(set-option :produce-models true)\n(set-logic QF_LIA)\n"); err != nil {
		return nil, err
	}

	return s, nil
}

// Solve implements SolverSession. The seed is ignored: the solver process
// searches the whole type range of each variable, and the caller merges the
// model into its own copy of the seed.
func (s *smtSession) Solve(ctx context.Context, _ []int64, vars map[m.VarID]m.ScalarType, constraints []m.Predicate) (map[m.VarID]int64, bool, error) {
	if s.closed {
		return nil, false, ErrSolverClosed
	}

	if s.failed != nil {
		return nil, false, s.failed
	}

	if err := ctx.Err(); err != nil {
		return nil, false, err
	}

	soln, sat, err := s.query(vars, constraints)
	if err != nil {
		s.failed = fmt.Errorf("solver session failed: %w", err)
		return nil, false, s.failed
	}

	return soln, sat, nil
}

func (s *smtSession) query(vars map[m.VarID]m.ScalarType, constraints []m.Predicate) (map[m.VarID]int64, bool, error) {
	used := constraintVars(constraints)

	var script strings.Builder

	for _, v := range used {
		if s.declared[v] {
			continue
		}

		typ, ok := vars[v]
		if !ok {
			typ = m.LongLong
		}

		lo, hi := smtRange(typ)
		fmt.Fprintf(&script, "(declare-const %s Int)\n(assert (and (<= %s %s) (<= %s %s)))\n",
			smtVar(v), lo, smtVar(v), smtVar(v), hi)
		s.declared[v] = true
	}

	script.WriteString("(push 1)\n")

	for _, c := range constraints {
		fmt.Fprintf(&script, "(assert %s)\n", SMTPredicate(c))
	}

	script.WriteString("(check-sat)\n")

	if err := s.send(script.String()); err != nil {
		return nil, false, err
	}

	status, err := readSExpr(s.r)
	if err != nil {
		return nil, false, fmt.Errorf("read check-sat: %w", err)
	}

	if status.isList {
		return nil, false, fmt.Errorf("solver error: %s", status)
	}

	var soln map[m.VarID]int64

	switch status.atom {
	case "sat":
		soln, err = s.model(used)
		if err != nil {
			return nil, false, err
		}
	case "unsat", "unknown":
	default:
		return nil, false, fmt.Errorf("unexpected check-sat answer %q", status.atom)
	}

	if err := s.send("(pop 1)\n"); err != nil {
		return nil, false, err
	}

	return soln, soln != nil, nil
}

func (s *smtSession) model(used []m.VarID) (map[m.VarID]int64, error) {
	soln := make(map[m.VarID]int64, len(used))
	if len(used) == 0 {
		return soln, nil
	}

	names := make([]string, len(used))
	for i, v := range used {
		names[i] = smtVar(v)
	}

	if err := s.send("(get-value (" + strings.Join(names, " ") + "))\n"); err != nil {
		return nil, err
	}

	values, err := readSExpr(s.r)
	if err != nil {
		return nil, fmt.Errorf("read get-value: %w", err)
	}

	if !values.isList {
		return nil, fmt.Errorf("unexpected get-value answer %s", values)
	}

	for _, pair := range values.list {
		if !pair.isList || len(pair.list) != 2 || pair.list[0].isList {
			return nil, fmt.Errorf("malformed model entry %s", pair)
		}

		v, err := parseSMTVar(pair.list[0].atom)
		if err != nil {
			return nil, err
		}

		val, err := parseSMTInt(pair.list[1])
		if err != nil {
			return nil, fmt.Errorf("value of %s: %w", pair.list[0].atom, err)
		}

		soln[v] = val
	}

	return soln, nil
}

func (s *smtSession) send(script string) error {
	if _, err := io.WriteString(s.w, script); err != nil {
		return fmt.Errorf("write to solver: %w", err)
	}

	return nil
}

// Close implements SolverSession.
func (s *smtSession) Close() error {
	if s.closed {
		return nil
	}

	s.closed = true

	_, _ = io.WriteString(s.w, "(exit)\n")
	_ = s.w.Close()

	if s.stop != nil {
		return s.stop()
	}

	return nil
}

// SMTPredicate renders a predicate as an SMT-LIB2 linear integer term.
func SMTPredicate(p m.Predicate) string {
	expr := smtExpr(p.Expr)

	switch p.Op {
	case m.OpEQ:
		return "(= " + expr + " 0)"
	case m.OpNEQ:
		return "(not (= " + expr + " 0))"
	case m.OpGT:
		return "(> " + expr + " 0)"
	case m.OpLE:
		return "(<= " + expr + " 0)"
	case m.OpLT:
		return "(< " + expr + " 0)"
	case m.OpGE:
		return "(>= " + expr + " 0)"
	}

	return "false"
}

func smtExpr(e m.LinearExpr) string {
	if len(e.Terms) == 0 {
		return smtInt(e.Const)
	}

	parts := make([]string, 0, len(e.Terms)+1)
	for _, t := range e.Terms {
		parts = append(parts, "(* "+smtInt(t.Coeff)+" "+smtVar(t.Var)+")")
	}

	if e.Const != 0 || len(parts) == 1 {
		parts = append(parts, smtInt(e.Const))
	}

	return "(+ " + strings.Join(parts, " ") + ")"
}

func smtInt(v int64) string {
	if v < 0 {
		return "(- " + new(big.Int).Neg(big.NewInt(v)).String() + ")"
	}

	return strconv.FormatInt(v, 10)
}

func smtVar(v m.VarID) string {
	return "x" + strconv.FormatUint(uint64(v), 10)
}

func parseSMTVar(name string) (m.VarID, error) {
	if !strings.HasPrefix(name, "x") {
		return 0, fmt.Errorf("unknown variable %q", name)
	}

	v, err := strconv.ParseUint(name[1:], 10, 32)
	if err != nil {
		return 0, fmt.Errorf("unknown variable %q: %w", name, err)
	}

	return m.VarID(v), nil
}

// parseSMTInt decodes "5" or "(- 5)". Values outside int64 but inside uint64
// are returned as their two's complement bit pattern.
func parseSMTInt(e sexpr) (int64, error) {
	var text string

	switch {
	case !e.isList:
		text = e.atom
	case len(e.list) == 2 && !e.list[0].isList && e.list[0].atom == "-" && !e.list[1].isList:
		text = "-" + e.list[1].atom
	default:
		return 0, fmt.Errorf("unsupported value %s", e)
	}

	n, ok := new(big.Int).SetString(text, 10)
	if !ok {
		return 0, fmt.Errorf("invalid integer %q", text)
	}

	if n.IsInt64() {
		return n.Int64(), nil
	}

	if n.IsUint64() {
		return int64(n.Uint64()), nil
	}

	return 0, fmt.Errorf("integer %s out of range", text)
}

func smtRange(t m.ScalarType) (string, string) {
	if !t.Signed() && t.Bits() == 64 {
		return "0", new(big.Int).SetUint64(^uint64(0)).String()
	}

	lo, hi := t.MinMax()

	return smtInt(lo), smtInt(hi)
}

func constraintVars(constraints []m.Predicate) []m.VarID {
	seen := map[m.VarID]m.ScalarType{}
	for _, c := range constraints {
		for _, v := range c.Expr.Vars() {
			seen[v] = 0
		}
	}

	return m.SortedVars(seen)
}
