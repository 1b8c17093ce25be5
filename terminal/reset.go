package terminal

import (
	"io"
	"os"
)

// Escape sequences restoring a sane tty after a crash
var resetSequence = []byte(
	"\x1b[?1003l\x1b[?1002l\x1b[?1000l\x1b[?1006l" + // mouse tracking off
		"\x1b[?25h" + // cursor visible
		"\x1b[?1049l" + // leave alternate screen
		"\x1b[0m" + // reset attributes
		"\x1b[?7h", // auto-wrap on
)

// EmergencyReset attempts to restore terminal to sane state
// Call this from panic recovery if Fini() cannot be called normally
func EmergencyReset(w io.Writer) {
	w.Write(resetSequence)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios
	resetTerminalMode()
}
