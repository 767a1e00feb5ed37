// Released under an MIT license. See LICENSE.

// Package integer provides the fixed-width integer type.
package integer

import (
	"strconv"

	"github.com/bootstrap-scheme/bs/internal/common"
	"github.com/bootstrap-scheme/bs/internal/common/interface/cell"
	"github.com/bootstrap-scheme/bs/internal/common/interface/literal"
)

const name = "integer"

// T (integer) wraps Go's int64 type. Arithmetic on it wraps on overflow.
type T int64

type integer = T

// New creates a new integer cell.
func New(v int64) cell.I {
	i := integer(v)

	return &i
}

// Equal returns true if c is an integer with the same value.
func (i *integer) Equal(c cell.I) bool {
	return Is(c) && *i == *To(c)
}

// Int returns the int64 value of the integer i.
func (i *integer) Int() int64 {
	return int64(*i)
}

// Literal returns the literal representation of the integer i.
func (i *integer) Literal() string {
	return strconv.FormatInt(int64(*i), 10)
}

// Name returns the name of the integer type.
func (i *integer) Name() string {
	return name
}

// String returns the text of the integer i.
func (i *integer) String() string {
	return i.Literal()
}

// Value returns the int64 held by c. It panics if c is not an integer.
func Value(c cell.I) int64 {
	return To(c).Int()
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t integer

	// The integer type is a cell.
	_ = cell.I(&t)

	// The integer type has a literal representation.
	_ = literal.I(&t)

	// The integer type is a stringer.
	_ = common.Stringer(&t)
}
