// Released under an MIT license. See LICENSE.

// Package engine provides the evaluator. There are no special forms,
// environments, or procedures yet, so every value evaluates to itself.
package engine

import (
	"log/slog"

	"github.com/bootstrap-scheme/bs/internal/common/interface/cell"
	"github.com/bootstrap-scheme/bs/internal/common/kind"
)

// T (engine) is a facade in front of the machinery for evaluating bs code.
type T struct {
	log *slog.Logger
}

// New creates a new T that reports what it evaluates to log.
func New(log *slog.Logger) *T {
	if log == nil {
		log = slog.Default()
	}

	return &T{log: log}
}

// Evaluate returns the value of c, which is c.
func (e *T) Evaluate(c cell.I) cell.I {
	e.log.Debug("evaluate", slog.String("kind", kind.Of(c).String()))

	return c
}
