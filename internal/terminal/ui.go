package terminal

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Colors for terminal output.
const (
	Reset = "\033[0m"
	Bold  = "\033[1m"
	Red   = "\033[31m"
)

// Cursor and screen control sequences.
const (
	clearScreen = "\033[2J"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
)

// Error prints an error message to stderr, in red when stderr is a terminal.
func Error(msg string) {
	writeError(os.Stderr, msg, term.IsTerminal(int(os.Stderr.Fd())))
}

func writeError(w io.Writer, msg string, color bool) {
	if color {
		fmt.Fprintf(w, "%s%sError:%s %s\n", Bold, Red, Reset, msg)
		return
	}
	fmt.Fprintf(w, "Error: %s\n", msg)
}
