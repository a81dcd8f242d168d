package input

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/betterhyq/promptt/keys"
	"github.com/betterhyq/promptt/terminal"
)

// DefaultSelectHint is shown under the choices when SelectOptions.Hint is empty.
const DefaultSelectHint = "Use arrow-keys or type number. Return to submit."

const answerPrompt = "  Answer (number or name): "

// SelectOptions configures a select prompt.
type SelectOptions struct {
	Message string
	Choices []Choice
	// Initial is the index highlighted first and the fallback for answers
	// that match nothing. Nil means 0.
	Initial *int
	Hint    string
	// Terminal picks the input mode. When it reports a TTY the menu reads raw
	// keys; when it is nil or not a TTY the menu reads one line.
	Terminal terminal.Terminal
}

// Select shows a menu and returns the Value of the chosen entry.
//
// A typed answer may be a 1-based number, a title or a value (both matched
// case-insensitively). Choosing a disabled entry fails with
// ErrInvalidSelection; the prompt is not repeated.
//
// Example:
//
//	db, err := input.Select(input.SelectOptions{
//	    Message:  "Database",
//	    Choices:  []input.Choice{input.NewChoice("PostgreSQL", "postgres"), input.NewChoice("SQLite", "sqlite")},
//	    Terminal: terminal.NewStd(os.Stdin),
//	}, os.Stdin, os.Stdout)
func Select(opts SelectOptions, r io.Reader, w io.Writer) (string, error) {
	if len(opts.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices to select from", ErrInvalidSelection)
	}

	m := newMenu(opts)
	in := lineReader(r)

	var err error
	if opts.Terminal != nil && opts.Terminal.IsTerminal() {
		err = m.interactive(in, w, opts.Terminal)
	} else {
		err = m.lineBased(in, w)
	}
	if err != nil {
		return "", err
	}

	return m.finish(w)
}

// menu is the state of one Select call.
type menu struct {
	message  string
	hint     string
	choices  []Choice
	fallback int
	start    int
	selected int
	typed    strings.Builder
}

func newMenu(opts SelectOptions) *menu {
	hint := opts.Hint
	if hint == "" {
		hint = DefaultSelectHint
	}

	fallback := clampIndex(opts.Choices, opts.Initial)
	start := fallback
	if opts.Choices[start].Disabled {
		start = nextEnabled(opts.Choices, start)
	}

	return &menu{
		message:  opts.Message,
		hint:     hint,
		choices:  opts.Choices,
		fallback: fallback,
		start:    start,
		selected: start,
	}
}

// lineBased prints the menu once and resolves a single line of input.
func (m *menu) lineBased(in LineReader, w io.Writer) error {
	if _, err := io.WriteString(w, m.render("\n", false)); err != nil {
		return err
	}

	line, err := readLine(in)
	if err != nil {
		return err
	}

	// Some terminals deliver arrow-key sequences even in canonical mode.
	m.selected = parseSelection(m.choices, terminal.StripANSI(line), m.fallback)
	return nil
}

// interactive runs the raw-mode key loop. The terminal is restored on every
// return path and a failed restore is always reported.
func (m *menu) interactive(in LineReader, w io.Writer, term terminal.Terminal) (err error) {
	raw, err := terminal.EnableRaw(term)
	if err != nil {
		return err
	}
	defer func() {
		if rerr := raw.Release(); rerr != nil {
			err = errors.Join(err, rerr)
		}
	}()

	width := term.Width()
	drawn := m.render("\r\n", true)
	if _, err := io.WriteString(w, drawn); err != nil {
		return err
	}

	redraw := func(prefix string) error {
		next := m.render("\r\n", true)
		_, err := io.WriteString(w, prefix+terminal.ClearSequence(drawn, width)+next)
		drawn = next
		m.typed.Reset()
		return err
	}

	for {
		b, err := in.ReadByte()
		if err != nil {
			m.leave(w, drawn, width, stateExited)
			return fmt.Errorf("reading key: %w", err)
		}
		k := keys.FromByte(b)
		if b >= utf8.RuneSelf {
			if k, err = keys.FromUTF8(b, in); err != nil {
				m.leave(w, drawn, width, stateExited)
				return fmt.Errorf("reading key: %w", err)
			}
		}

		switch k.Name {
		case keys.Return, keys.Enter:
			m.submitTyped()
			_, err := io.WriteString(w, terminal.ClearSequence(drawn, width))
			return err

		case keys.Escape:
			seq, err := readEscape(in)
			if err != nil {
				m.leave(w, drawn, width, stateExited)
				return fmt.Errorf("reading key: %w", err)
			}
			prefix := ""
			if !m.move(seq) {
				prefix = terminal.Bell
			}
			if err := redraw(prefix); err != nil {
				return err
			}
			continue
		}

		action, ok := keys.Decide(k, false)
		if !ok {
			if k.IsPrintable() {
				m.typed.WriteRune(k.Rune)
			}
			continue
		}

		switch action {
		case keys.ActionAbort:
			m.leave(w, drawn, width, stateAborted)
			return ErrAborted
		case keys.First:
			m.selected = firstEnabled(m.choices, m.selected)
		case keys.Last:
			m.selected = lastEnabled(m.choices, m.selected)
		case keys.Reset:
			m.selected = m.start
		case keys.ActionDelete:
			m.deleteTyped()
			continue
		default:
			continue
		}
		if err := redraw(""); err != nil {
			return err
		}
	}
}

// move applies an arrow key. It reports false when an Up or Down had no
// enabled choice to move to; other keys don't move and report true.
func (m *menu) move(k keys.Key) bool {
	var next int
	switch k.Name {
	case keys.Up:
		next = prevEnabled(m.choices, m.selected)
	case keys.Down:
		next = nextEnabled(m.choices, m.selected)
	default:
		return true
	}
	moved := next != m.selected
	m.selected = next
	return moved
}

// submitTyped resolves the typed buffer, keeping the current selection
// unless the buffer names an enabled choice.
func (m *menu) submitTyped() {
	defer m.typed.Reset()
	if m.typed.Len() == 0 {
		return
	}
	idx := parseSelection(m.choices, m.typed.String(), m.fallback)
	if idx >= 0 && idx < len(m.choices) && !m.choices[idx].Disabled {
		m.selected = idx
	}
}

func (m *menu) deleteTyped() {
	s := m.typed.String()
	if s == "" {
		return
	}
	_, size := utf8.DecodeLastRuneInString(s)
	m.typed.Reset()
	m.typed.WriteString(s[:len(s)-size])
}

// leave replaces the menu with a closing line for an unfinished prompt.
func (m *menu) leave(w io.Writer, drawn string, width int, state promptState) {
	_, _ = io.WriteString(w, terminal.ClearSequence(drawn, width)+answerLine(state, m.message, "")+"\r\n")
}

func (m *menu) finish(w io.Writer) (string, error) {
	if m.selected < 0 || m.selected >= len(m.choices) {
		return "", fmt.Errorf("%w: index %d out of range", ErrInvalidSelection, m.selected)
	}

	choice := m.choices[m.selected]
	if choice.Disabled {
		return "", fmt.Errorf("%w: %q is disabled", ErrInvalidSelection, choice.Title)
	}

	if _, err := fmt.Fprintln(w, answerLine(stateDone, m.message, choice.Title)); err != nil {
		return "", err
	}
	return choice.Value, nil
}

// render draws the whole menu: one message row, one row per choice, the hint
// and the answer prompt. The cursor ends on the answer row.
func (m *menu) render(nl string, interactive bool) string {
	var b strings.Builder

	b.WriteString(questionLine(m.message, ""))
	b.WriteString(nl)

	for i, c := range m.choices {
		num := numberStyle.Render(fmt.Sprintf(" %d ", i+1))
		pointer := figures.PointerSmall
		title := c.Title

		switch {
		case c.Disabled:
			pointer = " "
			title = disabledStyle.Render(c.Title)
		case interactive && i == m.selected:
			pointer = figures.Pointer
			title = selectedStyle.Render(c.Title)
			if c.Description != "" {
				title += " " + hintStyle.Render("- "+c.Description)
			}
		}

		fmt.Fprintf(&b, "  %s %s %s%s", num, pointer, title, nl)
	}

	b.WriteString("  " + hintStyle.Render(m.hint) + nl)
	b.WriteString(answerPrompt)

	return b.String()
}

// readEscape consumes the rest of an escape sequence whose ESC byte has
// been read. Only parameterless CSI sequences decode to a named key;
// everything else is swallowed and returned as Unknown. A control byte right
// after ESC is left unread so it is handled as its own key.
func readEscape(in io.ByteScanner) (keys.Key, error) {
	b, err := in.ReadByte()
	if err != nil {
		return keys.Key{}, err
	}
	if b < 0x20 {
		if err := in.UnreadByte(); err != nil {
			return keys.Key{}, err
		}
		return keys.Key{Name: keys.Escape}, nil
	}
	if b != '[' {
		return keys.Key{Name: keys.Unknown}, nil
	}

	params := false
	for {
		b, err := in.ReadByte()
		if err != nil {
			return keys.Key{}, err
		}
		switch {
		case b >= 0x40 && b <= 0x7e:
			if params {
				return keys.Key{Name: keys.Unknown}, nil
			}
			return keys.FromCSI(b), nil
		case b >= 0x20 && b <= 0x3f:
			params = true
		default:
			return keys.Key{Name: keys.Unknown}, nil
		}
	}
}
