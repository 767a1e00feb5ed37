package printer

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bootstrap-scheme/bs/internal/common/interface/cell"
	"github.com/bootstrap-scheme/bs/internal/common/type/boolean"
	"github.com/bootstrap-scheme/bs/internal/common/type/character"
	"github.com/bootstrap-scheme/bs/internal/common/type/integer"
	"github.com/bootstrap-scheme/bs/internal/common/type/list"
	"github.com/bootstrap-scheme/bs/internal/common/type/pair"
	"github.com/bootstrap-scheme/bs/internal/common/type/str"
)

func TestString(t *testing.T) {
	for _, tc := range []struct {
		c        cell.I
		expected string
	}{
		{integer.New(42), "42"},
		{integer.New(-7), "-7"},
		{boolean.True, "#t"},
		{boolean.False, "#f"},
		{character.New('a'), `#\a`},
		{character.New(' '), `#\space`},
		{character.New('\n'), `#\newline`},
		{str.New("hi\nthere"), `"hi\nthere"`},
		{str.New("a\r\"b"), `"a\r"b"`},
		{pair.Null, "nil"},
		{list.New(integer.New(1), integer.New(2), integer.New(3)), "(1 2 3)"},
		{pair.Cons(integer.New(1), integer.New(2)), "(1 . 2)"},
		{list.Dotted(boolean.False, list.New(), str.New("")), `(nil "" . #f)`},
	} {
		assert.Equal(t, tc.expected, String(tc.c))
	}
}

type unknown struct{}

func (*unknown) Equal(cell.I) bool { return false }
func (*unknown) Name() string      { return "unknown" }

func TestUnknown(t *testing.T) {
	assert.Panics(t, func() { String(&unknown{}) })
	assert.Panics(t, func() { String(pair.Cons(&unknown{}, pair.Null)) })
}

type broken struct{}

var errBroken = errors.New("broken")

func (broken) Write([]byte) (int, error) {
	return 0, errBroken
}

func TestWrite(t *testing.T) {
	var b bytes.Buffer

	require.NoError(t, Write(&b, pair.Cons(integer.New(1), pair.Null)))
	require.NoError(t, Writeln(&b, boolean.True))
	assert.Equal(t, "(1)#t\n", b.String())

	err := Writeln(broken{}, integer.New(1))
	assert.ErrorIs(t, err, errBroken)
	assert.Equal(t, "writing integer: broken", err.Error())
}
