package terminal

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Bell rings the terminal bell.
const Bell = string(rune(ansi.BEL))

// ClearSequence returns the escape sequence that erases the rows text
// occupies (as reported by VisualLineCount) and leaves the cursor at column 0
// of the first erased row. The cursor is expected to sit on the last row of
// text when the sequence is written.
func ClearSequence(text string, columns int) string {
	rows := VisualLineCount(text, columns)

	var b strings.Builder
	for i := 0; i < rows; i++ {
		b.WriteString(ansi.EraseEntireLine)
		if i < rows-1 {
			b.WriteString(ansi.CursorUp(1))
		}
	}
	b.WriteByte('\r')

	return b.String()
}
