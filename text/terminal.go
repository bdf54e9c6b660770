package text

import (
	"os"

	"golang.org/x/term"
)

// FallbackWidth is used when the width of the terminal cannot be determined
const FallbackWidth = 80

// TerminalWidth returns the column count of the terminal attached to stdout, or
// FallbackWidth when stdout is not a terminal.
func TerminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return FallbackWidth
	}
	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		return FallbackWidth
	}
	return w
}
