package utils

import (
	"os"
	"strconv"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// DefaultWidth is used when the output is not a terminal and COLUMNS is unset.
const DefaultWidth = 80

// IsTerminal returns true if f is a terminal, including Cygwin and MSYS
// pseudo terminals on Windows.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// TerminalWidth returns the width of the terminal attached to f. It falls
// back to the COLUMNS environment variable and then to DefaultWidth.
func TerminalWidth(f *os.File) int {
	if f != nil && isatty.IsTerminal(f.Fd()) {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			return width
		}
	}

	if columns, err := strconv.Atoi(os.Getenv("COLUMNS")); err == nil && columns > 0 {
		return columns
	}

	return DefaultWidth
}
