package terminal

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/term"
)

// Terminal is what the interactive prompts need from the device behind the
// input stream.
type Terminal interface {
	// IsTerminal reports whether input comes from an interactive terminal.
	IsTerminal() bool
	// MakeRaw switches the terminal into raw byte mode and returns the
	// function that puts the previous mode back.
	MakeRaw() (restore func() error, err error)
	// Width returns the terminal width in columns, or 0 when unknown.
	Width() int
}

// Std adapts a file descriptor (usually os.Stdin) to Terminal.
type Std struct {
	fd int
}

// NewStd returns a Terminal backed by f.
func NewStd(f *os.File) *Std {
	return &Std{fd: int(f.Fd())}
}

// IsTerminal reports whether the descriptor is a TTY.
func (s *Std) IsTerminal() bool {
	return term.IsTerminal(s.fd)
}

// MakeRaw puts the descriptor into raw mode.
func (s *Std) MakeRaw() (func() error, error) {
	old, err := term.MakeRaw(s.fd)
	if err != nil {
		return nil, fmt.Errorf("enabling raw mode: %w", err)
	}
	return func() error {
		if err := term.Restore(s.fd, old); err != nil {
			return fmt.Errorf("restoring terminal mode: %w", err)
		}
		return nil
	}, nil
}

// Width returns the column count of the terminal, or 0 if it can't be read.
func (s *Std) Width() int {
	width, _, err := term.GetSize(s.fd)
	if err != nil {
		return 0
	}
	return width
}

// lineOnly never reports a TTY.
type lineOnly struct{}

func (lineOnly) IsTerminal() bool { return false }

func (lineOnly) MakeRaw() (func() error, error) {
	return nil, fmt.Errorf("enabling raw mode: input is not a terminal")
}

func (lineOnly) Width() int { return 0 }

// LineOnly returns a Terminal that always selects line-based input, for
// piped input or when the caller wants to disable interactive prompts.
func LineOnly() Terminal {
	return lineOnly{}
}

// RawMode holds a terminal in raw mode until Release is called.
type RawMode struct {
	once    sync.Once
	restore func() error
	err     error
}

// EnableRaw switches t into raw mode. The returned guard must be released on
// every exit path.
func EnableRaw(t Terminal) (*RawMode, error) {
	restore, err := t.MakeRaw()
	if err != nil {
		return nil, err
	}
	return &RawMode{restore: restore}, nil
}

// Release restores the mode that was active before EnableRaw. Only the first
// call touches the terminal; later calls return the same result.
func (r *RawMode) Release() error {
	r.once.Do(func() {
		if r.restore != nil {
			r.err = r.restore()
		}
	})
	return r.err
}
