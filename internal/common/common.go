// Released under an MIT license. See LICENSE.

// Package common defines interfaces shared by all value types.
package common

import (
	"fmt"
)

// Stringer is implemented by every value type. String returns the
// same text as Literal.
type Stringer = fmt.Stringer
