package history

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSave(t *testing.T) {
	dir := t.TempDir()

	h := home
	home = func() (string, error) { return dir, nil }

	t.Cleanup(func() { home = h })

	var loaded bytes.Buffer

	read := func(r io.Reader) (int, error) {
		n, err := loaded.ReadFrom(r)

		return int(n), err
	}

	require.NoError(t, Load(read), "a missing history file is not an error")
	assert.Equal(t, 0, loaded.Len())

	require.NoError(t, Save(func(w io.Writer) (int, error) {
		return io.WriteString(w, "(1 2)\n#t\n")
	}))

	require.NoError(t, Load(read))
	assert.Equal(t, "(1 2)\n#t\n", loaded.String())
}
