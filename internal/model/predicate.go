package model

import (
	"fmt"
	"sort"
	"strings"
)

// CompareOp is the relational operator of a symbolic predicate. Operators come
// in negation pairs (op ^ 1 is the negation of op).
type CompareOp uint8

// Relational operators.
const (
	OpEQ CompareOp = iota
	OpNEQ
	OpGT
	OpLE
	OpLT
	OpGE
)

var opSymbols = [...]string{
	OpEQ:  "==",
	OpNEQ: "!=",
	OpGT:  ">",
	OpLE:  "<=",
	OpLT:  "<",
	OpGE:  ">=",
}

// Valid reports whether op is a known operator.
func (op CompareOp) Valid() bool {
	return int(op) < len(opSymbols)
}

// Negate returns the complementary operator.
func (op CompareOp) Negate() CompareOp {
	return op ^ 1
}

func (op CompareOp) String() string {
	if !op.Valid() {
		return fmt.Sprintf("op(%d)", uint8(op))
	}

	return opSymbols[op]
}

// Term is one coefficient*variable product of a linear expression.
type Term struct {
	Var   VarID
	Coeff int64
}

// LinearExpr is Const + sum(Terms). Terms are kept sorted by Var with no zero
// coefficients so that structural equality is syntactic equality.
type LinearExpr struct {
	Const int64
	Terms []Term
}

// NewLinearExpr builds a normalized expression from a coefficient map.
func NewLinearExpr(constant int64, coeffs map[VarID]int64) LinearExpr {
	terms := make([]Term, 0, len(coeffs))
	for v, c := range coeffs {
		if c == 0 {
			continue
		}

		terms = append(terms, Term{Var: v, Coeff: c})
	}

	sort.Slice(terms, func(i, j int) bool { return terms[i].Var < terms[j].Var })

	return LinearExpr{Const: constant, Terms: terms}
}

// Vars returns the variables referenced by the expression, in ascending order.
func (e LinearExpr) Vars() []VarID {
	vars := make([]VarID, 0, len(e.Terms))
	for _, t := range e.Terms {
		vars = append(vars, t.Var)
	}

	return vars
}

// Eval evaluates the expression with wrap-around int64 arithmetic.
func (e LinearExpr) Eval(values []int64) int64 {
	sum := e.Const
	for _, t := range e.Terms {
		var v int64
		if int(t.Var) < len(values) {
			v = values[t.Var]
		}

		sum += t.Coeff * v
	}

	return sum
}

// Equal reports syntactic equality.
func (e LinearExpr) Equal(o LinearExpr) bool {
	if e.Const != o.Const || len(e.Terms) != len(o.Terms) {
		return false
	}

	for i := range e.Terms {
		if e.Terms[i] != o.Terms[i] {
			return false
		}
	}

	return true
}

func (e LinearExpr) String() string {
	var b strings.Builder

	for i, t := range e.Terms {
		if i > 0 {
			b.WriteString(" + ")
		}

		fmt.Fprintf(&b, "%d*x%d", t.Coeff, t.Var)
	}

	if len(e.Terms) == 0 || e.Const != 0 {
		if len(e.Terms) > 0 {
			b.WriteString(" + ")
		}

		fmt.Fprintf(&b, "%d", e.Const)
	}

	return b.String()
}

// Predicate is the symbolic condition "Expr Op 0" governing one path event.
type Predicate struct {
	Expr LinearExpr
	Op   CompareOp
}

// Negated returns a copy of the predicate with the opposite polarity. The
// receiver is never modified.
func (p Predicate) Negated() Predicate {
	return Predicate{Expr: p.Expr, Op: p.Op.Negate()}
}

// Equal reports syntactic equality of two predicates.
func (p Predicate) Equal(o Predicate) bool {
	return p.Op == o.Op && p.Expr.Equal(o.Expr)
}

// Holds evaluates the predicate on concrete values.
func (p Predicate) Holds(values []int64) bool {
	v := p.Expr.Eval(values)

	switch p.Op {
	case OpEQ:
		return v == 0
	case OpNEQ:
		return v != 0
	case OpGT:
		return v > 0
	case OpLE:
		return v <= 0
	case OpLT:
		return v < 0
	case OpGE:
		return v >= 0
	}

	return false
}

func (p Predicate) String() string {
	return fmt.Sprintf("%s %s 0", p.Expr, p.Op)
}
