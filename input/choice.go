package input

import (
	"strconv"
	"strings"
)

// Choice is one entry of a select menu. Title is what the user sees and may
// type; Value is what Select returns.
type Choice struct {
	Title       string
	Value       string
	Description string
	Disabled    bool
}

// NewChoice returns an enabled choice.
func NewChoice(title, value string) Choice {
	return Choice{Title: title, Value: value}
}

// parseSelection resolves typed text to a choice index. A number in
// [1, len(choices)] wins, then the first case-insensitive match on title or
// value, then fallback. It always returns an index; whether that choice is
// enabled is for the caller to check.
func parseSelection(choices []Choice, raw string, fallback int) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback
	}

	if n, err := strconv.Atoi(raw); err == nil && n >= 1 && n <= len(choices) {
		return n - 1
	}

	for i, c := range choices {
		if strings.EqualFold(c.Title, raw) || strings.EqualFold(c.Value, raw) {
			return i
		}
	}

	return fallback
}

// nextEnabled returns the first enabled index after from, or from when
// there is none. It never wraps.
func nextEnabled(choices []Choice, from int) int {
	for i := from + 1; i < len(choices); i++ {
		if !choices[i].Disabled {
			return i
		}
	}
	return from
}

// prevEnabled returns the first enabled index before from, or from when
// there is none. It never wraps.
func prevEnabled(choices []Choice, from int) int {
	for i := from - 1; i >= 0; i-- {
		if !choices[i].Disabled {
			return i
		}
	}
	return from
}

// firstEnabled returns the lowest enabled index, or current if all are disabled.
func firstEnabled(choices []Choice, current int) int {
	if i := nextEnabled(choices, -1); i >= 0 {
		return i
	}
	return current
}

// lastEnabled returns the highest enabled index, or current if all are disabled.
func lastEnabled(choices []Choice, current int) int {
	if i := prevEnabled(choices, len(choices)); i < len(choices) {
		return i
	}
	return current
}

// clampIndex returns initial limited to the bounds of choices, or 0 if nil.
func clampIndex(choices []Choice, initial *int) int {
	if initial == nil || *initial < 0 {
		return 0
	}
	if *initial >= len(choices) {
		return len(choices) - 1
	}
	return *initial
}
