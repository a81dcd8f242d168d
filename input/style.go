package input

import (
	"strings"
	"unicode/utf8"

	"github.com/betterhyq/promptt/terminal"
	"github.com/charmbracelet/lipgloss"
)

var (
	messageStyle  = lipgloss.NewStyle().Bold(true)
	hintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	numberStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Underline(true)
	disabledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Strikethrough(true)

	pendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	doneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	abortedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	exitedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))

	figures = terminal.DefaultFigures()
)

// promptState is where a prompt is in its life, as shown by its symbol.
type promptState int

const (
	statePending promptState = iota
	stateDone
	stateAborted
	stateExited
)

// symbol is the leading glyph of a prompt line: ?, tick or cross.
func symbol(state promptState) string {
	switch state {
	case stateDone:
		return doneStyle.Render(figures.Tick)
	case stateAborted:
		return abortedStyle.Render(figures.Cross)
	case stateExited:
		return exitedStyle.Render(figures.Cross)
	default:
		return pendingStyle.Render("?")
	}
}

// delimiter separates the message from the answer.
func delimiter(completing bool) string {
	if completing {
		return hintStyle.Render(figures.Ellipsis)
	}
	return hintStyle.Render(figures.PointerSmall)
}

// questionLine is the pending prompt line, without a line ending.
func questionLine(message, suffix string) string {
	line := symbol(statePending) + " " + messageStyle.Render(message) + " " + delimiter(false)
	if suffix != "" {
		line += " " + suffix
	}
	return line
}

// answerLine is the finished prompt line, starting at column 0.
func answerLine(state promptState, message, answer string) string {
	return "\r" + symbol(state) + " " + messageStyle.Render(message) + " " + delimiter(true) + " " + answer
}

// InputStyle controls how a text answer is echoed. The returned value is
// never transformed.
type InputStyle int

const (
	StyleDefault InputStyle = iota
	StylePassword
	StyleInvisible
)

// Render returns the echo of value for this style.
func (s InputStyle) Render(value string) string {
	switch s {
	case StylePassword:
		return strings.Repeat("*", utf8.RuneCountInString(value))
	case StyleInvisible:
		return ""
	default:
		return value
	}
}

// ParseInputStyle maps "default", "password" and "invisible" to a style.
func ParseInputStyle(s string) (InputStyle, bool) {
	switch s {
	case "", "default":
		return StyleDefault, true
	case "password":
		return StylePassword, true
	case "invisible":
		return StyleInvisible, true
	default:
		return StyleDefault, false
	}
}
