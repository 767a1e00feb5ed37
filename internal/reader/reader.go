// Released under an MIT license. See LICENSE.

// Package reader turns a stream of bytes into bs values.
package reader

import (
	"io"
	"strings"

	"github.com/bootstrap-scheme/bs/internal/common/interface/cell"
	"github.com/bootstrap-scheme/bs/internal/common/struct/loc"
	"github.com/bootstrap-scheme/bs/internal/reader/parser"
	"github.com/bootstrap-scheme/bs/internal/reader/source"
)

// T (reader) encapsulates the source and parser.
type T struct {
	p *parser.T
	s *source.T
}

type reader = T

// New creates a new reader for the input r. Name is used in error locations.
func New(name string, r io.Reader) *T {
	s := source.New(name, r)

	return &T{
		p: parser.New(s),
		s: s,
	}
}

// Loc returns the location of the next unread byte.
func (r *reader) Loc() loc.T {
	return r.s.Loc()
}

// Read consumes and returns the next datum. All errors are of type *errs.T.
// When the input is exhausted the error is of kind EndOfInput and
// errors.Is(err, io.EOF) is true.
func (r *reader) Read() (cell.I, error) {
	return r.p.Parse()
}

// Recover discards the rest of the current line so that reading can
// resume on fresh input after an error.
func (r *reader) Recover() {
	r.s.SkipLine()
}

// ReadString returns the first datum in text.
func ReadString(text string) (cell.I, error) {
	return New("string", strings.NewReader(text)).Read()
}
