package input

import (
	"bytes"
	"strings"

	"github.com/betterhyq/promptt/terminal"
)

// fakeTerminal stands in for a TTY so raw-mode paths run without one.
type fakeTerminal struct {
	tty        bool
	width      int
	makeRawErr error
	restoreErr error

	rawCalls int
	restores int
}

func (f *fakeTerminal) IsTerminal() bool { return f.tty }
func (f *fakeTerminal) Width() int       { return f.width }

func (f *fakeTerminal) MakeRaw() (func() error, error) {
	f.rawCalls++
	if f.makeRawErr != nil {
		return nil, f.makeRawErr
	}
	return func() error {
		f.restores++
		return f.restoreErr
	}, nil
}

func tty() *fakeTerminal { return &fakeTerminal{tty: true} }

func intPtr(i int) *int { return &i }

func floatPtr(f float64) *float64 { return &f }

func plain(buf *bytes.Buffer) string {
	return terminal.StripANSI(buf.String())
}

func fruits() []Choice {
	return []Choice{
		NewChoice("Apple", "apple"),
		NewChoice("Banana", "banana"),
		NewChoice("Cherry", "cherry"),
	}
}

func numbered() []Choice {
	return []Choice{
		NewChoice("One", "one"),
		NewChoice("Two", "two"),
		NewChoice("Three", "three"),
	}
}

func stdin(s string) *strings.Reader { return strings.NewReader(s) }
