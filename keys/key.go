// Package keys turns raw key events into the semantic actions prompts act on.
package keys

import (
	"io"
	"unicode"
	"unicode/utf8"
)

// Name identifies a key independent of modifiers.
type Name int

const (
	// Char is a printable character; Key.Rune holds it.
	Char Name = iota
	Return
	Enter
	Backspace
	Delete
	Abort
	Escape
	Tab
	Up
	Down
	Left
	Right
	Home
	End
	PageUp
	PageDown
	Unknown
)

var names = map[Name]string{
	Return:    "return",
	Enter:     "enter",
	Backspace: "backspace",
	Delete:    "delete",
	Abort:     "abort",
	Escape:    "esc",
	Tab:       "tab",
	Up:        "up",
	Down:      "down",
	Left:      "left",
	Right:     "right",
	Home:      "home",
	End:       "end",
	PageUp:    "pgup",
	PageDown:  "pgdown",
	Unknown:   "unknown",
}

// Key is a single key press.
type Key struct {
	Name Name
	Rune rune
	Ctrl bool
	Meta bool
}

// String renders the key the way bindings are written: "ctrl+a", "up", "j".
// Meta is left out; Decide deals with it before any binding is consulted.
func (k Key) String() string {
	name := names[k.Name]
	if k.Name == Char {
		name = string(k.Rune)
	}
	if k.Ctrl {
		return "ctrl+" + name
	}
	return name
}

// FromByte decodes one byte read from a terminal in raw mode. Escape
// sequences start with a byte that decodes to Escape; the caller reads the
// rest and decodes the final byte with FromCSI.
func FromByte(b byte) Key {
	switch {
	case b == '\r':
		return Key{Name: Return}
	case b == '\n':
		return Key{Name: Enter}
	case b == '\t':
		return Key{Name: Tab}
	case b == 0x7f || b == 0x08:
		return Key{Name: Backspace}
	case b == 0x1b:
		return Key{Name: Escape}
	case b >= 0x01 && b <= 0x1a:
		return Key{Name: Char, Rune: rune('a' + b - 1), Ctrl: true}
	case b >= 0x20 && b < 0x7f:
		return Key{Name: Char, Rune: rune(b)}
	default:
		return Key{Name: Unknown}
	}
}

// FromUTF8 decodes a multi-byte character whose lead byte has been read;
// the rest of it is read from in. Malformed input decodes to Unknown.
func FromUTF8(lead byte, in io.ByteReader) (Key, error) {
	buf := []byte{lead}
	for !utf8.FullRune(buf) {
		b, err := in.ReadByte()
		if err != nil {
			return Key{}, err
		}
		buf = append(buf, b)
	}

	r, _ := utf8.DecodeRune(buf)
	if r == utf8.RuneError {
		return Key{Name: Unknown}, nil
	}
	return Key{Name: Char, Rune: r}, nil
}

// FromCSI decodes the final byte of a parameterless CSI sequence (ESC [ x).
func FromCSI(final byte) Key {
	switch final {
	case 'A':
		return Key{Name: Up}
	case 'B':
		return Key{Name: Down}
	case 'C':
		return Key{Name: Right}
	case 'D':
		return Key{Name: Left}
	case 'H':
		return Key{Name: Home}
	case 'F':
		return Key{Name: End}
	default:
		return Key{Name: Unknown}
	}
}

// IsPrintable reports whether k is plain text input (a graphic character or
// space with no modifier).
func (k Key) IsPrintable() bool {
	if k.Name != Char || k.Ctrl || k.Meta {
		return false
	}
	return k.Rune == ' ' || unicode.IsGraphic(k.Rune)
}
