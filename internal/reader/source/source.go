// Released under an MIT license. See LICENSE.

// Package source provides the byte stream the reader consumes. It offers
// one byte of lookahead, one byte of pushback, and tracks the line and
// column of the next byte.
package source

import (
	"bufio"
	"errors"
	"io"

	"github.com/bootstrap-scheme/bs/internal/common/struct/loc"
)

// EOF is returned by Next and Peek when the input is exhausted
// or can no longer be read.
const EOF = -1

// T holds the state of the source.
type T struct {
	err   error
	eof   bool // Set once a read fails. The input is never read again.
	input *bufio.Reader
	prev  loc.T // Location before the last Next.
	where loc.T // Location of the next byte.
}

type source = T

// New creates a new T reading from r. Name labels locations and
// can be a file name or other identifier.
func New(name string, r io.Reader) *T {
	b, ok := r.(*bufio.Reader)
	if !ok {
		b = bufio.NewReader(r)
	}

	return &T{
		input: b,
		where: loc.T{
			Char: 1,
			Line: 1,
			Name: name,
		},
	}
}

// Back pushes the last byte returned by Next back onto the input.
// Only one byte can be pushed back. After Next returns EOF
// there is nothing to push back and Back does nothing.
func (s *source) Back() {
	if s.input.UnreadByte() == nil {
		s.where = s.prev
	}
}

// Err returns the first error other than io.EOF encountered while reading.
func (s *source) Err() error {
	return s.err
}

// Loc returns the location of the next byte.
func (s *source) Loc() loc.T {
	return s.where
}

// Next consumes and returns the next byte, or EOF.
func (s *source) Next() int {
	if s.eof {
		return EOF
	}

	b, err := s.input.ReadByte()
	if err != nil {
		s.fail(err)

		return EOF
	}

	s.prev = s.where

	if b == '\n' {
		s.where.Line++
		s.where.Char = 1
	} else {
		s.where.Char++
	}

	return int(b)
}

// Peek returns the next byte, or EOF, without consuming it.
func (s *source) Peek() int {
	if s.eof {
		return EOF
	}

	p, err := s.input.Peek(1)
	if err != nil {
		s.fail(err)

		return EOF
	}

	return int(p[0])
}

// SkipLine discards input up to and including the next newline. If the
// source is already at the start of a line nothing is discarded.
func (s *source) SkipLine() {
	if s.where.Char == 1 {
		return
	}

	for {
		c := s.Next()
		if c == EOF || c == '\n' {
			return
		}
	}
}

func (s *source) fail(err error) {
	s.eof = true

	if s.err == nil && !errors.Is(err, io.EOF) {
		s.err = err
	}
}
