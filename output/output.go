package output

import (
	"fmt"
	"io"

	"github.com/betterhyq/promptt/terminal"
	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	stepStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Printer writes styled status lines to a writer.
type Printer struct {
	w       io.Writer
	figures terminal.Figures
	verbose bool
}

// New returns a Printer writing to w.
func New(w io.Writer) *Printer {
	return &Printer{w: w, figures: terminal.DefaultFigures()}
}

// SetVerbose enables or disables verbose output.
// The CLI calls this when the --verbose flag is set.
func (p *Printer) SetVerbose(v bool) {
	p.verbose = v
}

// Success prints a green line with a tick. Use this for completed operations.
func (p *Printer) Success(msg string) {
	p.println(successStyle.Render(p.figures.Tick + " " + msg))
}

// Error prints a red line with a cross. Use this for failures that need
// user attention.
func (p *Printer) Error(msg string) {
	p.println(errorStyle.Render(p.figures.Cross + " " + msg))
}

// Info prints an informational line in cyan.
func (p *Printer) Info(msg string) {
	p.println(infoStyle.Render(p.figures.PointerSmall + " " + msg))
}

// Step prints an indented gray line for next steps or sub-items.
func (p *Printer) Step(msg string) {
	p.println(stepStyle.Render("   " + msg))
}

// Verbose prints a gray debug line only if verbose mode is enabled.
func (p *Printer) Verbose(msg string) {
	if p.verbose {
		p.println(stepStyle.Render(p.figures.Ellipsis + " " + msg))
	}
}

func (p *Printer) println(s string) {
	_, _ = fmt.Fprintln(p.w, s)
}
