// Released under an MIT license. See LICENSE.

// Package printer renders bs values in the syntax the reader accepts.
package printer

import (
	"fmt"
	"io"

	"github.com/bootstrap-scheme/bs/internal/common/interface/cell"
	"github.com/bootstrap-scheme/bs/internal/common/interface/literal"
)

// String returns the printed representation of c. A bare empty list
// prints as nil. Values outside the known variants cause a panic.
func String(c cell.I) string {
	return literal.String(c)
}

// Write writes the printed representation of c to w.
func Write(w io.Writer, c cell.I) error {
	if _, err := io.WriteString(w, String(c)); err != nil {
		return fmt.Errorf("writing %s: %w", c.Name(), err)
	}

	return nil
}

// Writeln writes c followed by a newline.
func Writeln(w io.Writer, c cell.I) error {
	if err := Write(w, c); err != nil {
		return err
	}

	if _, err := io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("writing newline: %w", err)
	}

	return nil
}
