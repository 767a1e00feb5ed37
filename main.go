/*
Bs is Bootstrap Scheme: a reader and printer for Scheme data.

Each datum read is evaluated and printed back. Nothing is special yet,
so every datum evaluates to itself:

    > (1 2 . 3)
    (1 2 . 3)
    > #\space
    #\space
    > "hi\nthere"
    "hi\nthere"

Bs is released under an MIT-style license.
*/
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/bootstrap-scheme/bs/internal/engine"
	"github.com/bootstrap-scheme/bs/internal/engine/boot"
	"github.com/bootstrap-scheme/bs/internal/printer"
	"github.com/bootstrap-scheme/bs/internal/reader"
	"github.com/bootstrap-scheme/bs/internal/reader/errs"
	"github.com/bootstrap-scheme/bs/internal/system/logging"
	"github.com/bootstrap-scheme/bs/internal/system/options"
	"github.com/bootstrap-scheme/bs/internal/ui"
)

func main() {
	err := options.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	os.Exit(start(logging.New(os.Stderr, options.Debug())))
}

// repl holds what the read-eval-print loop reads from and writes to.
type repl struct {
	engine *engine.T
	errors io.Writer
	fresh  func()
	log    *slog.Logger
	output io.Writer
	reader *reader.T
}

// run reads, evaluates, and prints until the input is exhausted.
// It returns the exit status.
func (r *repl) run() int {
	status := 0

	for {
		if r.fresh != nil {
			r.fresh()
		}

		c, err := r.reader.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return status
			}

			status = 1

			if !r.report(err) {
				return status
			}

			r.reader.Recover()

			continue
		}

		r.log.Debug("read", slog.String("datum", printer.String(c)))

		err = printer.Writeln(r.output, r.engine.Evaluate(c))
		if err != nil {
			r.log.Error("write failed", slog.Any("error", err))

			return 1
		}
	}
}

// report prints the read error err. It returns false if reading cannot continue.
func (r *repl) report(err error) bool {
	fmt.Fprintln(r.errors, "error:", err)

	var e *errs.T
	if !errors.As(err, &e) {
		r.log.Error("read failed", slog.Any("error", err))

		return false
	}

	r.log.Warn("read failed",
		slog.String("kind", e.Kind.String()),
		slog.String("source", e.Source.String()),
	)

	// An error from the underlying input is not something the user can fix.
	return errors.Unwrap(e) == nil
}

func start(log *slog.Logger) int {
	r := &repl{
		engine: engine.New(log),
		errors: os.Stderr,
		log:    log,
		output: os.Stdout,
	}

	switch {
	case options.Expression() != "":
		r.reader = reader.New("expression", strings.NewReader(options.Expression()))
	case options.Script() != "":
		path := options.Script()

		f, err := os.Open(path)
		if err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)

			return 1
		}
		defer f.Close()

		r.reader = reader.New(path, f)
	case options.Interactive():
		u := ui.New(log)
		defer u.Close()

		r.fresh = u.Fresh
		r.reader = reader.New("stdin", u)
	default:
		r.reader = reader.New("stdin", os.Stdin)
	}

	if !options.Quiet() {
		fmt.Fprint(os.Stdout, boot.Banner())
	}

	return r.run()
}
