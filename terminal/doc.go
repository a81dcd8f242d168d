// Package terminal provides the low-level pieces the prompts draw with.
//
// # Overview
//
// Everything here is either a pure function over strings or a thin adapter
// over the controlling terminal:
//
//   - StripANSI removes escape sequences before text is measured or parsed
//   - VisualLineCount reports how many rows a block of text occupies
//   - ClearSequence builds the escape sequence that erases such a block
//   - Figures holds the glyph set for the current platform
//   - Terminal, Std and RawMode cover TTY detection and raw byte mode
//
// # Raw Mode
//
// Raw mode is acquired through EnableRaw and released through the returned
// guard. Release is idempotent, so callers defer it right after acquiring:
//
//	raw, err := terminal.EnableRaw(term)
//	if err != nil {
//	    return err
//	}
//	defer raw.Release()
//
// Callers that must not lose a restore failure fold the Release error into
// their own return value instead of discarding it.
package terminal
