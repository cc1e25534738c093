// Package renderer formats ledger data as markdown, ready for terminal
// rendering by the pw command.
package renderer

import (
	"fmt"
	"strings"
)

// mdRenderer accumulates a markdown document.
type mdRenderer struct {
	*strings.Builder
}

func newRenderer() *mdRenderer {
	return &mdRenderer{Builder: &strings.Builder{}}
}

// Printf formats according to a format specifier and writes to the renderer's buffer.
func (r *mdRenderer) Printf(format string, args ...any) {
	fmt.Fprintf(r, format, args...)
}

// notes joins entry descriptions into one table cell.
func notes(descriptions []string) string {
	return strings.Join(descriptions, "; ")
}
