package source

import (
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"

	"github.com/bootstrap-scheme/bs/internal/common/struct/loc"
)

func TestBack(t *testing.T) {
	s := New("test", strings.NewReader("a\nb"))

	assert.Equal(t, 'a', rune(s.Next()))
	assert.Equal(t, '\n', rune(s.Next()))
	assert.Equal(t, loc.T{Char: 1, Line: 2, Name: "test"}, s.Loc())

	s.Back()
	assert.Equal(t, loc.T{Char: 2, Line: 1, Name: "test"}, s.Loc())
	assert.Equal(t, '\n', rune(s.Peek()))
	assert.Equal(t, '\n', rune(s.Next()))
	assert.Equal(t, 'b', rune(s.Next()))
	assert.Equal(t, EOF, s.Next())
	assert.Equal(t, EOF, s.Peek())
	assert.NoError(t, s.Err())
}

func TestErr(t *testing.T) {
	broken := errors.New("broken")
	s := New("test", iotest.ErrReader(broken))

	assert.Equal(t, EOF, s.Peek())
	assert.Equal(t, EOF, s.Next())
	assert.ErrorIs(t, s.Err(), broken)
}

func TestEndOfInputSticks(t *testing.T) {
	c := chunks{"x", "", "y"}
	s := New("test", &c)

	assert.Equal(t, 'x', rune(s.Next()))
	assert.Equal(t, EOF, s.Peek())
	assert.Equal(t, EOF, s.Next())
	assert.Equal(t, EOF, s.Peek())

	s.Back()
	assert.Equal(t, EOF, s.Next())
	assert.Equal(t, chunks{"y"}, c, "input read past the end")
	assert.NoError(t, s.Err())
}

func TestLoc(t *testing.T) {
	s := New("test", strings.NewReader("ab\n\ncd"))

	for s.Next() != 'c' {
	}

	assert.Equal(t, "test:3:2", (&loc.T{Char: 2, Line: 3, Name: "test"}).String())
	assert.Equal(t, loc.T{Char: 2, Line: 3, Name: "test"}, s.Loc())
}

func TestSkipLine(t *testing.T) {
	s := New("test", strings.NewReader("abc\ndef\n"))

	s.SkipLine()
	assert.Equal(t, 'a', rune(s.Next()), "nothing skipped at the start of a line")

	s.SkipLine()
	assert.Equal(t, 'd', rune(s.Next()))

	s.SkipLine()
	assert.Equal(t, EOF, s.Next())

	s.SkipLine()
	assert.Equal(t, EOF, s.Peek())
}

// chunks is an io.Reader that returns one element per Read.
// An empty element reads as io.EOF, like Ctrl-D on a terminal.
type chunks []string

func (c *chunks) Read(b []byte) (int, error) {
	if len(*c) == 0 {
		return 0, io.EOF
	}

	s := (*c)[0]
	*c = (*c)[1:]

	if s == "" {
		return 0, io.EOF
	}

	return copy(b, s), nil
}
