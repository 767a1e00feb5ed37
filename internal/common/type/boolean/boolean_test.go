package boolean

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bootstrap-scheme/bs/internal/common/interface/truth"
	"github.com/bootstrap-scheme/bs/internal/common/type/integer"
)

func TestSingletons(t *testing.T) {
	assert.Same(t, True, New(true))
	assert.Same(t, False, New(false))
	assert.NotSame(t, True, False)

	assert.True(t, Value(True))
	assert.False(t, Value(False))
	assert.True(t, True.Equal(New(true)))
	assert.False(t, True.Equal(False))
	assert.False(t, False.Equal(integer.New(0)))

	assert.Equal(t, "#t", True.Literal())
	assert.Equal(t, "#f", False.String())
}

func TestTruth(t *testing.T) {
	assert.True(t, truth.Value(True))
	assert.False(t, truth.Value(False))
	assert.True(t, truth.Value(integer.New(0)))
}

func TestWrongVariant(t *testing.T) {
	assert.PanicsWithValue(t, "not a boolean", func() { Value(integer.New(1)) })
}
