package input

import (
	"fmt"
	"io"
	"strings"
)

// ConfirmOptions configures a yes/no prompt. Empty labels and hints fall back
// to "yes", "no", "(Y/n)" and "(y/N)".
type ConfirmOptions struct {
	Message  string
	Initial  bool
	YesLabel string
	NoLabel  string
	YesHint  string
	NoHint   string
}

// Confirm asks a yes/no question. An empty answer yields opts.Initial;
// "y" or "yes" in any case is true and everything else is false.
//
// Example:
//
//	ok, err := input.Confirm(input.ConfirmOptions{Message: "Run go mod tidy?", Initial: true}, os.Stdin, os.Stdout)
//	// Displays: ? Run go mod tidy? › (Y/n)
func Confirm(opts ConfirmOptions, r io.Reader, w io.Writer) (bool, error) {
	hint := orDefault(opts.NoHint, "(y/N)")
	if opts.Initial {
		hint = orDefault(opts.YesHint, "(Y/n)")
	}

	value, err := askBool(opts.Message, hintStyle.Render(hint), opts.Initial, r, w, "y", "yes")
	if err != nil {
		return false, err
	}

	label := orDefault(opts.NoLabel, "no")
	if value {
		label = orDefault(opts.YesLabel, "yes")
	}
	if _, err := fmt.Fprintln(w, answerLine(stateDone, opts.Message, label)); err != nil {
		return false, err
	}
	return value, nil
}

// ToggleOptions configures an on/off prompt. Active and Inactive default to
// "on" and "off".
type ToggleOptions struct {
	Message  string
	Initial  bool
	Active   string
	Inactive string
}

// Toggle asks an on/off question. It accepts what Confirm accepts plus "on".
// The result is echoed with the active or inactive label.
func Toggle(opts ToggleOptions, r io.Reader, w io.Writer) (bool, error) {
	active := orDefault(opts.Active, "on")
	inactive := orDefault(opts.Inactive, "off")

	hint := "(y/N) " + inactive
	if opts.Initial {
		hint = "(Y/n) " + active
	}

	value, err := askBool(opts.Message, hint, opts.Initial, r, w, "y", "yes", "on")
	if err != nil {
		return false, err
	}

	label := inactive
	if value {
		label = active
	}
	if _, err := fmt.Fprintln(w, answerLine(stateDone, opts.Message, label)); err != nil {
		return false, err
	}
	return value, nil
}

// askBool writes the question and reads one answer. An empty answer is
// initial; otherwise the answer is true only if it is one of truthy.
func askBool(message, hint string, initial bool, r io.Reader, w io.Writer, truthy ...string) (bool, error) {
	in := lineReader(r)

	if _, err := fmt.Fprint(w, questionLine(message, hint)); err != nil {
		return false, err
	}

	line, err := readLine(in)
	if err != nil {
		return false, err
	}

	raw := strings.ToLower(strings.TrimSpace(line))
	if raw == "" {
		return initial, nil
	}
	for _, t := range truthy {
		if raw == t {
			return true, nil
		}
	}
	return false, nil
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
