// Released under an MIT license. See LICENSE.

// Package errs provides the errors returned by the reader.
package errs

import (
	"errors"
	"io"

	"github.com/bootstrap-scheme/bs/internal/common/struct/loc"
)

// Kind classifies a reader error.
type Kind int

// Reader error kinds.
const (
	// EndOfInput means the input ended before any datum started.
	EndOfInput Kind = iota

	// PrematureEOF means the input ended in the middle of a datum.
	PrematureEOF

	// MalformedLiteral covers unknown # literals, bad character names,
	// and a dot not followed by whitespace.
	MalformedLiteral

	// MissingDelimiter means an atom ran into the next token.
	MissingDelimiter

	// MissingCloseParen means a dotted pair was not closed after its cdr.
	MissingCloseParen

	// UnexpectedCharacter means no production starts with the character.
	UnexpectedCharacter
)

// Sentinel errors for use with errors.Is.
//
//nolint:gochecknoglobals
var (
	ErrEndOfInput          = errors.New("end of input")
	ErrPrematureEOF        = errors.New("premature end of input")
	ErrMalformedLiteral    = errors.New("malformed literal")
	ErrMissingDelimiter    = errors.New("missing delimiter")
	ErrMissingCloseParen   = errors.New("missing close paren")
	ErrUnexpectedCharacter = errors.New("unexpected character")

	sentinels = map[Kind]error{
		EndOfInput:          ErrEndOfInput,
		PrematureEOF:        ErrPrematureEOF,
		MalformedLiteral:    ErrMalformedLiteral,
		MissingDelimiter:    ErrMissingDelimiter,
		MissingCloseParen:   ErrMissingCloseParen,
		UnexpectedCharacter: ErrUnexpectedCharacter,
	}
)

// T (errs) is a reader error with the location where it was detected.
type T struct {
	Kind   Kind
	Source loc.T
	Detail string

	cause error
}

// New creates a new reader error.
func New(k Kind, source loc.T, detail string) *T {
	return &T{Kind: k, Source: source, Detail: detail}
}

// Wrap creates a new reader error caused by err.
func Wrap(k Kind, source loc.T, err error) *T {
	return &T{Kind: k, Source: source, Detail: err.Error(), cause: err}
}

// Error returns the text of the error including its location.
func (e *T) Error() string {
	msg := e.Source.String() + ": " + e.Kind.String()
	if e.Detail != "" {
		msg += ": " + e.Detail
	}

	return msg
}

// Is reports whether target is the sentinel for e's kind.
func (e *T) Is(target error) bool {
	return sentinels[e.Kind] == target
}

// Unwrap returns the underlying I/O error, if any. A reader error for
// EndOfInput unwraps to io.EOF.
func (e *T) Unwrap() error {
	if e.cause != nil {
		return e.cause
	}

	if e.Kind == EndOfInput {
		return io.EOF
	}

	return nil
}

// String returns the description of the kind k.
func (k Kind) String() string {
	if err, ok := sentinels[k]; ok {
		return err.Error()
	}

	return "unknown error"
}
