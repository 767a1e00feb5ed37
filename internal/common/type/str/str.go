// Released under an MIT license. See LICENSE.

// Package str provides the string type.
package str

import (
	"strings"

	"github.com/bootstrap-scheme/bs/internal/common"
	"github.com/bootstrap-scheme/bs/internal/common/interface/cell"
	"github.com/bootstrap-scheme/bs/internal/common/interface/literal"
)

const name = "string"

// T (str) wraps Go's string type. Strings are byte sequences;
// no encoding is assumed.
type T string

type str = T

// New creates a new str cell.
func New(v string) cell.I {
	s := str(v)

	return &s
}

// Equal returns true if the cell c wraps the same string and false otherwise.
func (s *str) Equal(c cell.I) bool {
	return Is(c) && s.String() == To(c).String()
}

// Literal returns the literal representation of the str s.
//
// Only newline and carriage return are escaped. A double quote or
// backslash inside s is written as is, so such strings do not read
// back as the same value.
func (s *str) Literal() string {
	var b strings.Builder

	b.Grow(len(*s) + 2)
	b.WriteByte('"')

	for i := 0; i < len(*s); i++ {
		switch c := (*s)[i]; c {
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		default:
			b.WriteByte(c)
		}
	}

	b.WriteByte('"')

	return b.String()
}

// Name returns the name of the str type.
func (s *str) Name() string {
	return name
}

// String returns the text of the str s.
func (s *str) String() string {
	return string(*s)
}

// Value returns the string held by c. It panics if c is not a str.
func Value(c cell.I) string {
	return To(c).String()
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t str

	// The str type is a cell.
	_ = cell.I(&t)

	// The str type has a literal representation.
	_ = literal.I(&t)

	// The str type is a stringer.
	_ = common.Stringer(&t)
}
