package terminal

import "github.com/charmbracelet/x/ansi"

// StripANSI returns s with every ANSI escape sequence (CSI, OSC, DCS and
// the rest) removed. Control characters such as newlines are kept.
func StripANSI(s string) string {
	return ansi.Strip(s)
}
