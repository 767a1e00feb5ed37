// Released under an MIT license. See LICENSE.

// Package boolean provides the boolean value type.
//
// There are exactly two booleans. Every boolean in a running program
// is either True or False so they can be compared by identity.
package boolean

import (
	"github.com/bootstrap-scheme/bs/internal/common"
	"github.com/bootstrap-scheme/bs/internal/common/interface/cell"
	"github.com/bootstrap-scheme/bs/internal/common/interface/literal"
	"github.com/bootstrap-scheme/bs/internal/common/interface/truth"
)

const name = "boolean"

// T (boolean) wraps Go's bool type.
type T bool

type boolean = T

//nolint:gochecknoglobals
var (
	False = f()
	True  = t()
)

// New returns the shared boolean for the bool b.
func New(b bool) cell.I {
	if b {
		return True
	}

	return False
}

// Bool returns the boolean value of the boolean b.
func (b *boolean) Bool() bool {
	return bool(*b)
}

// Equal returns true if c is a boolean with a matching value.
func (b *boolean) Equal(c cell.I) bool {
	return Is(c) && b.Bool() == To(c).Bool()
}

// Literal returns the literal representation of the boolean b.
func (b *boolean) Literal() string {
	if bool(*b) {
		return "#t"
	}

	return "#f"
}

// Name returns the type name for the boolean b.
func (b *boolean) Name() string {
	return name
}

// String returns the text of the boolean b.
func (b *boolean) String() string {
	return b.Literal()
}

// Value returns the bool held by c. It panics if c is not a boolean.
func Value(c cell.I) bool {
	return To(c).Bool()
}

func f() *boolean {
	v := boolean(false)

	return &v
}

func t() *boolean {
	v := boolean(true)

	return &v
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t boolean

	// The boolean type is a cell.
	_ = cell.I(&t)

	// The boolean type has a literal representation.
	_ = literal.I(&t)

	// The boolean type is a stringer.
	_ = common.Stringer(&t)

	// The boolean type has a truth value.
	_ = truth.I(&t)
}
