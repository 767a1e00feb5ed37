// Released under an MIT license. See LICENSE.

// Package parser provides a recursive descent parser for bs data.
//
// There is no separate lexer. Atoms end at a delimiter: whitespace,
// '(', ')', '"', ';', or the end of input.
package parser

import (
	"fmt"

	"github.com/bootstrap-scheme/bs/internal/common/interface/cell"
	"github.com/bootstrap-scheme/bs/internal/common/struct/loc"
	"github.com/bootstrap-scheme/bs/internal/common/type/boolean"
	"github.com/bootstrap-scheme/bs/internal/common/type/character"
	"github.com/bootstrap-scheme/bs/internal/common/type/integer"
	"github.com/bootstrap-scheme/bs/internal/common/type/pair"
	"github.com/bootstrap-scheme/bs/internal/common/type/str"
	"github.com/bootstrap-scheme/bs/internal/reader/errs"
	"github.com/bootstrap-scheme/bs/internal/reader/source"
)

const eof = source.EOF

// T holds the state of the parser.
type T struct {
	s *source.T
}

// New creates a new parser consuming bytes from s.
func New(s *source.T) *T {
	return &T{s: s}
}

// Parse consumes exactly one datum and returns it. If the input holds
// nothing but whitespace and comments, the error is of kind EndOfInput.
func (p *T) Parse() (c cell.I, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		e, ok := r.(*errs.T)
		if !ok {
			panic(r)
		}

		c, err = nil, e
	}()

	p.skip()

	at := p.s.Loc()

	r := p.s.Next()
	if r == eof {
		if err := p.s.Err(); err != nil {
			panic(errs.Wrap(errs.EndOfInput, at, err))
		}

		panic(errs.New(errs.EndOfInput, at, ""))
	}

	return p.datum(r, at), nil
}

func (p *T) char() cell.I {
	at := p.s.Loc()

	r := p.next(at, "in character literal")

	// A name is only attempted when its first two bytes match.
	for name, b := range character.Named {
		if r == int(name[0]) && p.s.Peek() == int(name[1]) {
			p.expect(name[1:])

			r = int(b)

			break
		}
	}

	p.delimited("character literal")

	return character.New(byte(r))
}

func (p *T) datum(r int, at loc.T) cell.I {
	switch {
	case r == '#':
		return p.hash(at)
	case isDigit(r), r == '-' && isDigit(p.s.Peek()):
		return p.number(r)
	case r == '"':
		return p.quoted(at)
	case r == '(':
		return p.list(at)
	}

	panic(errs.New(errs.UnexpectedCharacter, at, quote(r)))
}

// delimited checks, without consuming it, that the next byte ends an atom.
func (p *T) delimited(what string) {
	r := p.s.Peek()
	if isDelimiter(r) {
		return
	}

	panic(errs.New(errs.MissingDelimiter, p.s.Loc(), quote(r)+" after "+what))
}

// expect consumes the bytes of rest, which complete a character name.
func (p *T) expect(rest string) {
	for i := 0; i < len(rest); i++ {
		at := p.s.Loc()

		r := p.next(at, "in character name")
		if r != int(rest[i]) {
			panic(errs.New(errs.MalformedLiteral, at, fmt.Sprintf(
				"unexpected %s while scanning for %q", quote(r), rest,
			)))
		}
	}
}

func (p *T) hash(at loc.T) cell.I {
	r := p.next(p.s.Loc(), "after #")

	switch r {
	case 't':
		return boolean.True
	case 'f':
		return boolean.False
	case '\\':
		return p.char()
	}

	panic(errs.New(errs.MalformedLiteral, at, fmt.Sprintf(
		"unknown literal %q", []byte{'#', byte(r)},
	)))
}

// number accumulates digits with int64 arithmetic. Overflow wraps.
func (p *T) number(r int) cell.I {
	negative := r == '-'
	if negative {
		r = p.s.Next()
	}

	n := int64(r - '0')
	for {
		r = p.s.Next()
		if !isDigit(r) {
			p.s.Back()

			break
		}

		n = n*10 + int64(r-'0')
	}

	if negative {
		n = -n
	}

	p.delimited("number")

	return integer.New(n)
}

func (p *T) list(open loc.T) cell.I {
	var head, tail cell.I = pair.Null, nil

	for {
		p.skip()

		at := p.s.Loc()

		r := p.next(open, "in list")

		switch {
		case r == ')':
			return head
		case r == '.' && tail != nil:
			pair.SetCdr(tail, p.dotted(at))

			return head
		}

		next := pair.Cons(p.datum(r, at), pair.Null)
		if tail == nil {
			head = next
		} else {
			pair.SetCdr(tail, next)
		}

		tail = next
	}
}

// dotted reads what follows the dot in an improper list through the closing paren.
func (p *T) dotted(dot loc.T) cell.I {
	r := p.s.Peek()
	if r == eof {
		p.next(dot, "after dot")
	}

	if !isSpace(r) {
		panic(errs.New(errs.MalformedLiteral, dot, "dot not followed by whitespace"))
	}

	p.skip()

	at := p.s.Loc()
	cdr := p.datum(p.next(dot, "after dot"), at)

	p.skip()

	at = p.s.Loc()
	if r := p.next(dot, "in dotted list"); r != ')' {
		panic(errs.New(errs.MissingCloseParen, at, "found "+quote(r)))
	}

	return cdr
}

// next consumes the next byte. The end of input is an error here.
func (p *T) next(at loc.T, where string) int {
	r := p.s.Next()
	if r != eof {
		return r
	}

	if err := p.s.Err(); err != nil {
		panic(errs.Wrap(errs.PrematureEOF, at, fmt.Errorf("%s: %w", where, err)))
	}

	panic(errs.New(errs.PrematureEOF, at, where))
}

// skip consumes whitespace and comments.
func (p *T) skip() {
	for {
		r := p.s.Peek()

		switch {
		case isSpace(r):
			p.s.Next()
		case r == ';':
			for r != eof && r != '\n' {
				r = p.s.Next()
			}
		default:
			return
		}
	}
}

func (p *T) quoted(open loc.T) cell.I {
	var b []byte

	for {
		r := p.next(open, "in string literal")

		switch r {
		case '"':
			return str.New(string(b))
		case '\\':
			r = p.next(open, "in string literal")

			switch r {
			case 'n':
				r = '\n'
			case 'r':
				r = '\r'
			case 't':
				r = '\t'
			}
		}

		b = append(b, byte(r))
	}
}

// Helper functions.

func isDelimiter(r int) bool {
	switch r {
	case eof, '(', ')', '"', ';':
		return true
	}

	return isSpace(r)
}

func isDigit(r int) bool {
	return r >= '0' && r <= '9'
}

func isSpace(r int) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ':
		return true
	}

	return false
}

func quote(r int) string {
	if r == eof {
		return "end of input"
	}

	return fmt.Sprintf("%q", []byte{byte(r)})
}
