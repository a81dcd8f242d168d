package input

import (
	"fmt"
	"io"
	"strings"
)

// TextOptions configures a text prompt.
type TextOptions struct {
	Message string
	// Initial is returned when the answer is left empty.
	Initial string
	Style   InputStyle
}

// Text asks for a line of text. An empty answer yields opts.Initial;
// anything else is returned trimmed. The style only affects the echo.
//
// Example:
//
//	name, err := input.Text(input.TextOptions{Message: "Project name", Initial: "myapp"}, os.Stdin, os.Stdout)
//	// Displays: ? Project name › myapp
func Text(opts TextOptions, r io.Reader, w io.Writer) (string, error) {
	in := lineReader(r)

	placeholder := ""
	if opts.Initial != "" {
		placeholder = hintStyle.Render(opts.Style.Render(opts.Initial))
	}
	if _, err := fmt.Fprint(w, questionLine(opts.Message, placeholder)); err != nil {
		return "", err
	}

	line, err := readLine(in)
	if err != nil {
		return "", err
	}

	value := strings.TrimSpace(line)
	if value == "" {
		value = opts.Initial
	}

	if _, err := fmt.Fprintln(w, answerLine(stateDone, opts.Message, opts.Style.Render(value))); err != nil {
		return "", err
	}
	return value, nil
}

// Password is Text with every echoed character masked by an asterisk.
func Password(opts TextOptions, r io.Reader, w io.Writer) (string, error) {
	opts.Style = StylePassword
	return Text(opts, r, w)
}

// Invisible is Text with no echo of the answer at all.
func Invisible(opts TextOptions, r io.Reader, w io.Writer) (string, error) {
	opts.Style = StyleInvisible
	return Text(opts, r, w)
}

// ListOptions configures a list prompt.
type ListOptions struct {
	Message string
	Initial string
	// Separator splits the answer; it defaults to a comma.
	Separator string
}

// List asks for a line of text and splits it into trimmed entries.
func List(opts ListOptions, r io.Reader, w io.Writer) ([]string, error) {
	sep := opts.Separator
	if sep == "" {
		sep = ","
	}

	value, err := Text(TextOptions{Message: opts.Message, Initial: opts.Initial}, r, w)
	if err != nil {
		return nil, err
	}

	parts := strings.Split(value, sep)
	for i, part := range parts {
		parts[i] = strings.TrimSpace(part)
	}
	return parts, nil
}
