// Released under an MIT license. See LICENSE.

package pair

import "github.com/bootstrap-scheme/bs/internal/common/interface/cell"

// Path applies Car for each 'a' and Cdr for each 'd' in path,
// rightmost first, as the c[ad]+r names do. Path(c, "add") is Caddr(c).
// A non-pair value where a pair is expected will cause a panic,
// as will any byte other than 'a' or 'd'.
func Path(c cell.I, path string) cell.I {
	for i := len(path) - 1; i >= 0; i-- {
		switch path[i] {
		case 'a':
			c = Car(c)
		case 'd':
			c = Cdr(c)
		default:
			panic("invalid path " + path)
		}
	}

	return c
}

// A non-pair value where a pair is expected will cause a panic
// in any of the functions below.

// Caar returns the car of the car of the pair c.
func Caar(c cell.I) cell.I { return Car(Car(c)) }

// Cadr returns the car of the cdr of the pair c.
func Cadr(c cell.I) cell.I { return Car(Cdr(c)) }

// Cdar returns the cdr of the car of the pair c.
func Cdar(c cell.I) cell.I { return Cdr(Car(c)) }

// Cddr returns the cdr of the cdr of the pair c.
func Cddr(c cell.I) cell.I { return Cdr(Cdr(c)) }

// Caaar returns the car of the car of the car of the pair c.
func Caaar(c cell.I) cell.I { return Path(c, "aaa") }

// Caadr returns the car of the car of the cdr of the pair c.
func Caadr(c cell.I) cell.I { return Path(c, "aad") }

// Cadar returns the car of the cdr of the car of the pair c.
func Cadar(c cell.I) cell.I { return Path(c, "ada") }

// Caddr returns the third element of the list c.
func Caddr(c cell.I) cell.I { return Path(c, "add") }

// Cdaar returns the cdr of the car of the car of the pair c.
func Cdaar(c cell.I) cell.I { return Path(c, "daa") }

// Cdadr returns the cdr of the car of the cdr of the pair c.
func Cdadr(c cell.I) cell.I { return Path(c, "dad") }

// Cddar returns the cdr of the cdr of the car of the pair c.
func Cddar(c cell.I) cell.I { return Path(c, "dda") }

// Cdddr returns what follows the third element of the list c.
func Cdddr(c cell.I) cell.I { return Path(c, "ddd") }

// Cadddr returns the fourth element of the list c.
func Cadddr(c cell.I) cell.I { return Path(c, "addd") }

// Cddddr returns what follows the fourth element of the list c.
func Cddddr(c cell.I) cell.I { return Path(c, "dddd") }
