package x_render

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

const clearSequence = "\033[H\033[2J"

// IsTerminal reports whether w is a terminal.
func IsTerminal(w any) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Clear wipes the screen when w is a terminal and does nothing otherwise,
// so piped output keeps every frame.
func Clear(w io.Writer) error {
	if !IsTerminal(w) {
		return nil
	}
	_, err := io.WriteString(w, clearSequence)
	return err
}
