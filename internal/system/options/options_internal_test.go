package options

import (
	"testing"

	"github.com/docopt/docopt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T, fd uintptr) {
	t.Helper()

	h, s := handler, stdin

	handler = docopt.NoHelpHandler
	stdin = fd

	t.Cleanup(func() {
		handler, stdin = h, s
	})
}

func TestExpression(t *testing.T) {
	setup(t, ^uintptr(0))

	require.NoError(t, Parse([]string{"-q", "-e", "(1 2)"}))

	assert.Equal(t, "(1 2)", Expression())
	assert.Equal(t, "", Script())
	assert.True(t, Quiet())
	assert.False(t, Debug())
	assert.False(t, Interactive())
}

func TestScript(t *testing.T) {
	setup(t, ^uintptr(0))

	require.NoError(t, Parse([]string{"-d", "data.scm"}))

	assert.Equal(t, "data.scm", Script())
	assert.Equal(t, "", Expression())
	assert.True(t, Debug())
	assert.False(t, Quiet())
	assert.False(t, Interactive())
}

func TestInvertInteractive(t *testing.T) {
	setup(t, ^uintptr(0))

	require.NoError(t, Parse([]string{}))
	assert.False(t, Interactive(), "not a terminal")

	require.NoError(t, Parse([]string{"-i"}))
	assert.True(t, Interactive())
}

func TestUsageError(t *testing.T) {
	setup(t, ^uintptr(0))

	assert.Error(t, Parse([]string{"-e"}))
	assert.Error(t, Parse([]string{"--bogus"}))
}
