// Released under an MIT license. See LICENSE.

// Package pair provides the cons cell type and the empty list.
//
// Pairs may share structure and nothing prevents a cycle from being built
// with SetCar or SetCdr. The reader never builds cycles. Equal and Literal
// assume their arguments are acyclic.
package pair

import (
	"strings"

	"github.com/bootstrap-scheme/bs/internal/common"
	"github.com/bootstrap-scheme/bs/internal/common/interface/cell"
	"github.com/bootstrap-scheme/bs/internal/common/interface/literal"
)

const name = "pair"

//nolint:gochecknoglobals
var (
	// Null is the empty list. It is also used to mark the end of a list.
	// It is not a pair.
	Null cell.I = &null{}
)

// T (pair) is a cons cell.
type T struct {
	car cell.I
	cdr cell.I
}

type pair = T

// Equal returns true if c is a pair with elements that are equal to p's.
func (p *pair) Equal(c cell.I) bool {
	var l cell.I = p

	for Is(l) {
		if !Is(c) || !Car(l).Equal(Car(c)) {
			return false
		}

		l, c = Cdr(l), Cdr(c)
	}

	return l.Equal(c)
}

// Literal returns the literal representation of the pair p.
func (p *pair) Literal() string {
	var b strings.Builder

	b.WriteByte('(')

	var l cell.I = p
	for {
		b.WriteString(literal.String(Car(l)))

		tail := Cdr(l)
		if tail == Null {
			break
		}

		if !Is(tail) {
			b.WriteString(" . ")
			b.WriteString(literal.String(tail))

			break
		}

		b.WriteByte(' ')

		l = tail
	}

	b.WriteByte(')')

	return b.String()
}

// Name returns the name for a pair type.
func (p *pair) Name() string {
	return name
}

// String returns the text representation of the pair p.
func (p *pair) String() string {
	return p.Literal()
}

type null struct{}

// Equal returns true only for the empty list.
func (n *null) Equal(c cell.I) bool {
	return c == Null
}

// Literal returns the representation of a bare empty list.
func (n *null) Literal() string {
	return "nil"
}

// Name returns the name of the empty list.
func (n *null) Name() string {
	return "null"
}

// String returns the text representation of the empty list.
func (n *null) String() string {
	return n.Literal()
}

// Functions specific to pair.

// Car returns the car/head/first member of the pair c.
// If c is not a pair, this function will panic.
func Car(c cell.I) cell.I {
	return To(c).car
}

// Cdr returns the cdr/tail/rest member of the pair c.
// If c is not a pair, this function will panic.
func Cdr(c cell.I) cell.I {
	return To(c).cdr
}

// Cons conses h and t together to form a new pair.
// A nil h or t is taken to be Null.
func Cons(h, t cell.I) cell.I {
	if h == nil {
		h = Null
	}

	if t == nil {
		t = Null
	}

	return &pair{car: h, cdr: t}
}

// SetCar sets the car/head/first of the pair c to value.
// If c is not a pair, this function will panic.
func SetCar(c, value cell.I) {
	To(c).car = value
}

// SetCdr sets the cdr/tail/rest of the pair c to value.
// If c is not a pair, this function will panic.
func SetCdr(c, value cell.I) {
	To(c).cdr = value
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t pair

	// The pair type is a cell.
	_ = cell.I(&t)

	// The pair type has a literal representation.
	_ = literal.I(&t)

	// The pair type is a stringer.
	_ = common.Stringer(&t)

	var n null

	// The empty list is a cell with a literal representation.
	_ = cell.I(&n)
	_ = literal.I(&n)
}
