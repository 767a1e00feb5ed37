// Released under an MIT license. See LICENSE.

// Package ui provides a line editing interface for bs.
package ui

import (
	"errors"
	"io"
	"log/slog"

	"github.com/peterh/liner"

	"github.com/bootstrap-scheme/bs/internal/system/history"
)

// Prompts.
const (
	Primary      = "> "
	Continuation = "  "
)

// T (ui) is an io.Reader that prompts the user for a line whenever
// its buffer runs dry.
type T struct {
	*liner.State

	buffer []byte
	log    *slog.Logger
	prompt string
}

type ui = T

// New creates a new line editor and loads any saved history.
func New(log *slog.Logger) *T {
	cli := liner.NewLiner()

	cli.SetCtrlCAborts(true)

	err := history.Load(cli.ReadHistory)
	if err != nil {
		log.Warn("loading history", slog.Any("error", err))
	}

	return &T{
		State:  cli,
		log:    log,
		prompt: Primary,
	}
}

// Close saves the history and restores the terminal.
func (u *ui) Close() error {
	err := history.Save(u.WriteHistory)
	if err != nil {
		u.log.Warn("saving history", slog.Any("error", err))
	}

	return u.State.Close()
}

// Fresh makes the next prompt the primary prompt.
// It is called before reading each new datum.
func (u *ui) Fresh() {
	u.prompt = Primary
}

// Read fills p from the current line, prompting for a new one if needed.
// Ctrl-C and Ctrl-D end the input.
func (u *ui) Read(p []byte) (int, error) {
	for len(u.buffer) == 0 {
		line, err := u.Prompt(u.prompt)

		switch {
		case err == nil:
		case errors.Is(err, liner.ErrPromptAborted), errors.Is(err, io.EOF):
			return 0, io.EOF
		default:
			return 0, err
		}

		if line != "" {
			u.AppendHistory(line)
		}

		u.buffer = []byte(line + "\n")
		u.prompt = Continuation
	}

	n := copy(p, u.buffer)
	u.buffer = u.buffer[n:]

	return n, nil
}
