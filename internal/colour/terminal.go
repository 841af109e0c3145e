package colour

import (
	"os"

	"golang.org/x/term"
)

// SupportsANSIColours reports whether f is a terminal that should receive
// ANSI colour codes. NO_COLOR and TERM=dumb turn colours off.
func SupportsANSIColours(f *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
