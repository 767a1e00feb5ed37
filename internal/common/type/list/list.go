// Released under an MIT license. See LICENSE.

// Package list provides common list operations. A list is not a true type.
// Lists are more of a type by convention. They are composed of cons cells.
package list

import (
	"github.com/bootstrap-scheme/bs/internal/common/interface/cell"
	"github.com/bootstrap-scheme/bs/internal/common/type/pair"
)

// New creates a new proper list containing the elements v.
func New(v ...cell.I) cell.I {
	return Dotted(pair.Null, v...)
}

// Dotted creates a list of the elements v whose final cdr is tail.
// With a tail other than Null the result is an improper list.
func Dotted(tail cell.I, v ...cell.I) cell.I {
	l := tail

	for i := len(v) - 1; i >= 0; i-- {
		l = pair.Cons(v[i], l)
	}

	return l
}

// Length returns the number of pairs in the chain starting at list.
// The list must be non-circular.
func Length(list cell.I) int64 {
	var length int64

	for ; pair.Is(list); list = pair.Cdr(list) {
		length++
	}

	return length
}

// Proper returns true if list is Null or a chain of pairs ending in Null.
// The list must be non-circular.
func Proper(list cell.I) bool {
	for pair.Is(list) {
		list = pair.Cdr(list)
	}

	return list == pair.Null
}

// Slice returns the elements of the chain starting at list and its final cdr.
// The list must be non-circular.
func Slice(list cell.I) ([]cell.I, cell.I) {
	var v []cell.I

	for ; pair.Is(list); list = pair.Cdr(list) {
		v = append(v, pair.Car(list))
	}

	return v, list
}
