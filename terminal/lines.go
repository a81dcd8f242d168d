package terminal

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// VisualLineCount returns the number of terminal rows text occupies when it
// is wrapped at columns. Escape sequences are stripped first. A columns value
// of 0 disables wrapping, so every newline-delimited line counts as one row.
func VisualLineCount(text string, columns int) int {
	rows := 0
	for _, line := range strings.Split(StripANSI(text), "\n") {
		rows += lineRows(line, columns)
	}
	return rows
}

// lineRows is the row count of a single line with no newlines in it. An empty
// line still occupies the row the cursor sits on.
func lineRows(line string, columns int) int {
	if columns <= 0 {
		return 1
	}
	width := runewidth.StringWidth(line)
	if width == 0 {
		return 1
	}
	return (width-1)/columns + 1
}
