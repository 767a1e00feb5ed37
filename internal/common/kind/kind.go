// Released under an MIT license. See LICENSE.

// Package kind reports which variant a value holds.
package kind

import (
	"github.com/bootstrap-scheme/bs/internal/common/interface/cell"
	"github.com/bootstrap-scheme/bs/internal/common/type/boolean"
	"github.com/bootstrap-scheme/bs/internal/common/type/character"
	"github.com/bootstrap-scheme/bs/internal/common/type/integer"
	"github.com/bootstrap-scheme/bs/internal/common/type/pair"
	"github.com/bootstrap-scheme/bs/internal/common/type/str"
)

// T (kind) is a value's variant.
type T int

// Variants. The empty list is its own kind.
const (
	Invalid T = iota

	Boolean
	Character
	Integer
	Null
	Pair
	String
)

// Of returns the kind of c. Values outside the closed set of variants
// are a programming error and cause a panic.
func Of(c cell.I) T {
	switch {
	case c == pair.Null:
		return Null
	case boolean.Is(c):
		return Boolean
	case character.Is(c):
		return Character
	case integer.Is(c):
		return Integer
	case pair.Is(c):
		return Pair
	case str.Is(c):
		return String
	}

	if c == nil {
		panic("nil is not a value")
	}

	panic(c.Name() + " is not a known kind of value")
}

// String returns the name of the kind k.
func (k T) String() string {
	switch k {
	case Boolean:
		return "boolean"
	case Character:
		return "character"
	case Integer:
		return "integer"
	case Null:
		return "null"
	case Pair:
		return "pair"
	case String:
		return "string"
	case Invalid:
	}

	return "invalid"
}
