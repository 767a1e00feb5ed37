// Released under an MIT license. See LICENSE.

// Package boot provides what is printed when bs starts.
package boot

import _ "embed" // Blank import required by embed.

//go:embed banner.txt
var banner string //nolint:gochecknoglobals

// Banner returns the greeting printed before the first prompt.
func Banner() string {
	return banner
}
