package model

import (
	"fmt"
	"strings"
)

// ScalarType is the declared C scalar type of a symbolic input variable.
type ScalarType uint8

// Supported scalar types, in the order the instrumentation emits them.
const (
	UChar ScalarType = iota
	Char
	UShort
	Short
	UInt
	Int
	ULong
	Long
	ULongLong
	LongLong
)

var scalarNames = [...]string{
	UChar:     "unsigned char",
	Char:      "char",
	UShort:    "unsigned short",
	Short:     "short",
	UInt:      "unsigned int",
	Int:       "int",
	ULong:     "unsigned long",
	Long:      "long",
	ULongLong: "unsigned long long",
	LongLong:  "long long",
}

// Valid reports whether t is one of the known scalar types.
func (t ScalarType) Valid() bool {
	return int(t) < len(scalarNames)
}

func (t ScalarType) String() string {
	if !t.Valid() {
		return fmt.Sprintf("scalar(%d)", uint8(t))
	}

	return scalarNames[t]
}

// Bits returns the storage width of the type. Longs are 64 bits (LP64).
func (t ScalarType) Bits() uint {
	switch t {
	case UChar, Char:
		return 8
	case UShort, Short:
		return 16
	case UInt, Int:
		return 32
	default:
		return 64
	}
}

// Signed reports whether the type is signed.
func (t ScalarType) Signed() bool {
	switch t {
	case Char, Short, Int, Long, LongLong:
		return true
	default:
		return false
	}
}

// Narrow casts raw random bits to the type's width and signedness, the way a C
// cast from unsigned long long would.
func (t ScalarType) Narrow(raw uint64) int64 {
	switch t {
	case UChar:
		return int64(uint8(raw))
	case Char:
		return int64(int8(raw))
	case UShort:
		return int64(uint16(raw))
	case Short:
		return int64(int16(raw))
	case UInt:
		return int64(uint32(raw))
	case Int:
		return int64(int32(raw))
	default:
		return int64(raw)
	}
}

// MinMax returns the inclusive value range of the type as seen through an int64.
// Unsigned 64-bit types are reported as the full int64 range since values are
// stored as their two's complement bit pattern.
func (t ScalarType) MinMax() (int64, int64) {
	bits := t.Bits()
	if bits == 64 {
		return -1 << 63, 1<<63 - 1
	}

	if t.Signed() {
		return -(1 << (bits - 1)), 1<<(bits-1) - 1
	}

	return 0, 1<<bits - 1
}

// ParseScalarType parses the names produced by String.
func ParseScalarType(s string) (ScalarType, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	for i, name := range scalarNames {
		if name == s {
			return ScalarType(i), nil
		}
	}

	return 0, fmt.Errorf("unknown scalar type %q", s)
}
