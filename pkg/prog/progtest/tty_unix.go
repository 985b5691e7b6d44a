//go:build unix

package progtest

import (
	"os"

	"github.com/creack/pty"
)

// Returns the controlling side and the terminal side of a new
// pseudo-terminal.
func openTTY() (*os.File, *os.File, error) {
	return pty.Open()
}
