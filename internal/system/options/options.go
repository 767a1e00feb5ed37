// Released under an MIT license. See LICENSE.

// Package options parses the bs command line.
package options

import (
	"os"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
)

// Version is reported by -v.
const Version = "bs 0.1.0"

//nolint:gochecknoglobals
var (
	debug       bool
	expression  string
	interactive bool
	quiet       bool
	script      string
	usage       = `bs

Usage:
  bs [-dqi] [FILE]
  bs [-dq] -e EXPRESSION
  bs -h
  bs -v

Arguments:
  FILE  Read data from FILE instead of stdin.

Options:
  -e, --expression=EXPRESSION  Read data from EXPRESSION.
  -d, --debug                  Log debugging information to stderr.
  -q, --quiet                  Do not print the banner.
  -i, --interactive            Invert interactive mode.
  -h, --help                   Display this help.
  -v, --version                Print bs version.

If bs's stdin is a TTY, and bs was invoked without FILE or EXPRESSION,
line editing and history are enabled. Otherwise, these features are disabled.
`

	// Replaced in tests so that -h and -v don't exit.
	handler = docopt.PrintHelpAndExit
	stdin   = os.Stdin.Fd()
)

// Debug returns true if debug logging was requested.
func Debug() bool {
	return debug
}

// Expression returns the text passed with -e, if any.
func Expression() string {
	return expression
}

// Interactive returns true if bs should prompt using the line editor.
func Interactive() bool {
	return interactive
}

// Parse parses the command line arguments argv, not including the program name.
func Parse(argv []string) error {
	p := &docopt.Parser{HelpHandler: handler}

	opts, err := p.ParseArgs(usage, argv, Version)
	if err != nil {
		return err
	}

	debug, _ = opts.Bool("--debug")
	expression, _ = opts.String("--expression")
	quiet, _ = opts.Bool("--quiet")
	script, _ = opts.String("FILE")

	interactive = false
	if script == "" && expression == "" {
		interactive = isatty.IsTerminal(stdin) || isatty.IsCygwinTerminal(stdin)
	}

	invertInteractive, _ := opts.Bool("--interactive")
	interactive = interactive != invertInteractive

	return nil
}

// Quiet returns true if the banner should not be printed.
func Quiet() bool {
	return quiet
}

// Script returns the path of the file to read, if any.
func Script() string {
	return script
}
