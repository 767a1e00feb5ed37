package main

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"

	"github.com/bootstrap-scheme/bs/internal/engine"
	"github.com/bootstrap-scheme/bs/internal/reader"
	"github.com/bootstrap-scheme/bs/internal/system/logging"
)

type harness struct {
	errors bytes.Buffer
	output bytes.Buffer
	repl   *repl
}

func setup(name string, text string) *harness {
	h := &harness{}

	log := logging.Discard()

	h.repl = &repl{
		engine: engine.New(log),
		errors: &h.errors,
		log:    log,
		output: &h.output,
		reader: reader.New(name, strings.NewReader(text)),
	}

	return h
}

func TestEcho(t *testing.T) {
	h := setup("test", `42 -7 #t #f #\a #\space "hi\nthere" (1 2 3) (1 . 2) ()`)

	assert.Equal(t, 0, h.repl.run())
	assert.Equal(t, "42\n-7\n#t\n#f\n#\\a\n#\\space\n\"hi\\nthere\"\n(1 2 3)\n(1 . 2)\nnil\n", h.output.String())
	assert.Empty(t, h.errors.String())
}

func TestErrorsAreReported(t *testing.T) {
	h := setup("test", "1 ) 2\n3\n(4")

	assert.Equal(t, 1, h.repl.run())
	assert.Equal(t, "1\n3\n", h.output.String())
	assert.Equal(t,
		"error: test:1:3: unexpected character: \")\"\n"+
			"error: test:3:1: premature end of input: in list\n",
		h.errors.String(),
	)
}

func TestFresh(t *testing.T) {
	h := setup("test", "1 2")

	n := 0
	h.repl.fresh = func() { n++ }

	assert.Equal(t, 0, h.repl.run())
	assert.Equal(t, 3, n)
}

func TestEndOfInputStops(t *testing.T) {
	h := setup("test", "")

	c := chunks{"1\n", "", "2\n"}
	h.repl.reader = reader.New("test", &c)

	assert.Equal(t, 0, h.repl.run())
	assert.Equal(t, "1\n", h.output.String())
	assert.Equal(t, chunks{"2\n"}, c)
}

func TestInputFailure(t *testing.T) {
	h := setup("test", "")

	h.repl.reader = reader.New("test", iotest.ErrReader(errors.New("broken")))

	assert.Equal(t, 1, h.repl.run())
	assert.Equal(t, "error: test:1:1: end of input: broken\n", h.errors.String())
}

// chunks returns one element per Read. An empty element reads as io.EOF,
// as a terminal does for Ctrl-D.
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
