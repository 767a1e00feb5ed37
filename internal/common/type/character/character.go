// Released under an MIT license. See LICENSE.

// Package character provides the single byte character type.
package character

import (
	"github.com/bootstrap-scheme/bs/internal/common"
	"github.com/bootstrap-scheme/bs/internal/common/interface/cell"
	"github.com/bootstrap-scheme/bs/internal/common/interface/literal"
)

const name = "character"

// Named maps the names the reader accepts after #\ to their characters.
// Literal writes the same names.
//
//nolint:gochecknoglobals
var (
	Named = map[string]byte{
		"newline": '\n',
		"space":   ' ',
	}
	names = map[byte]string{
		'\n': "newline",
		' ':  "space",
	}
)

// T (character) is an 8-bit code unit.
type T byte

type character = T

// New creates a new character cell.
func New(v byte) cell.I {
	c := character(v)

	return &c
}

// Byte returns the byte value of the character c.
func (c *character) Byte() byte {
	return byte(*c)
}

// Equal returns true if v is a character with the same value.
func (c *character) Equal(v cell.I) bool {
	return Is(v) && *c == *To(v)
}

// Literal returns the #\ representation of the character c.
func (c *character) Literal() string {
	if s, ok := names[byte(*c)]; ok {
		return `#\` + s
	}

	return `#\` + string([]byte{byte(*c)})
}

// Name returns the name of the character type.
func (c *character) Name() string {
	return name
}

// String returns the character c as a one byte string.
func (c *character) String() string {
	return string([]byte{byte(*c)})
}

// Value returns the byte held by c. It panics if c is not a character.
func Value(c cell.I) byte {
	return To(c).Byte()
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t character

	// The character type is a cell.
	_ = cell.I(&t)

	// The character type has a literal representation.
	_ = literal.I(&t)

	// The character type is a stringer.
	_ = common.Stringer(&t)
}
