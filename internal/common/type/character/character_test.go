package character

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bootstrap-scheme/bs/internal/common/type/str"
)

func TestCharacter(t *testing.T) {
	for _, tc := range []struct {
		b        byte
		expected string
	}{
		{'a', `#\a`},
		{' ', `#\space`},
		{'\n', `#\newline`},
		{'\t', "#\\\t"},
		{'(', `#\(`},
	} {
		c := New(tc.b)

		assert.Equal(t, tc.expected, To(c).Literal())
		assert.Equal(t, tc.b, Value(c))
		assert.True(t, c.Equal(New(tc.b)))
	}

	for name, b := range Named {
		assert.Equal(t, `#\`+name, To(New(b)).Literal())
	}

	assert.False(t, New('a').Equal(str.New("a")))
	assert.PanicsWithValue(t, "not a character", func() { Value(str.New("a")) })
}
