package adapter

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"
)

var errUnexpectedClose = errors.New("unexpected ')'")

// sexpr is a parsed SMT-LIB2 s-expression: an atom or a list.
type sexpr struct {
	atom   string
	list   []sexpr
	isList bool
}

func (s sexpr) String() string {
	if !s.isList {
		return s.atom
	}

	parts := make([]string, len(s.list))
	for i, e := range s.list {
		parts[i] = e.String()
	}

	return "(" + strings.Join(parts, " ") + ")"
}

// readSExpr reads one complete s-expression, skipping leading whitespace and
// ';' comments.
func readSExpr(r *bufio.Reader) (sexpr, error) {
	if err := skipSpace(r); err != nil {
		return sexpr{}, err
	}

	c, err := r.ReadByte()
	if err != nil {
		return sexpr{}, err
	}

	switch c {
	case '(':
		var list []sexpr

		for {
			if err := skipSpace(r); err != nil {
				return sexpr{}, unexpectedEOF(err)
			}

			next, err := r.ReadByte()
			if err != nil {
				return sexpr{}, unexpectedEOF(err)
			}

			if next == ')' {
				return sexpr{list: list, isList: true}, nil
			}

			if err := r.UnreadByte(); err != nil {
				return sexpr{}, err
			}

			elem, err := readSExpr(r)
			if err != nil {
				return sexpr{}, unexpectedEOF(err)
			}

			list = append(list, elem)
		}
	case ')':
		return sexpr{}, errUnexpectedClose
	case '"':
		return readDelimited(r, '"')
	case '|':
		return readDelimited(r, '|')
	default:
		var b strings.Builder

		b.WriteByte(c)

		for {
			next, err := r.ReadByte()
			if errors.Is(err, io.EOF) {
				return sexpr{atom: b.String()}, nil
			}

			if err != nil {
				return sexpr{}, err
			}

			if next == '(' || next == ')' || unicode.IsSpace(rune(next)) {
				if err := r.UnreadByte(); err != nil {
					return sexpr{}, err
				}

				return sexpr{atom: b.String()}, nil
			}

			b.WriteByte(next)
		}
	}
}

// readDelimited reads a string literal or quoted symbol. A doubled delimiter
// inside a string literal is an escaped delimiter.
func readDelimited(r *bufio.Reader, delim byte) (sexpr, error) {
	var b strings.Builder

	for {
		c, err := r.ReadByte()
		if err != nil {
			return sexpr{}, unexpectedEOF(err)
		}

		if c != delim {
			b.WriteByte(c)
			continue
		}

		if delim == '"' {
			next, err := r.ReadByte()
			if err == nil && next == '"' {
				b.WriteByte('"')
				continue
			}

			if err == nil {
				if err := r.UnreadByte(); err != nil {
					return sexpr{}, err
				}
			}
		}

		return sexpr{atom: b.String()}, nil
	}
}

func skipSpace(r *bufio.Reader) error {
	for {
		c, err := r.ReadByte()
		if err != nil {
			return err
		}

		if c == ';' {
			if _, err := r.ReadString('\n'); err != nil {
				return err
			}

			continue
		}

		if !unicode.IsSpace(rune(c)) {
			return r.UnreadByte()
		}
	}
}

func unexpectedEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return fmt.Errorf("truncated s-expression: %w", io.ErrUnexpectedEOF)
	}

	return err
}
