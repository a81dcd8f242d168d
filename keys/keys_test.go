package keys

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func plain(n Name) Key { return Key{Name: n} }

func char(r rune) Key { return Key{Name: Char, Rune: r} }

func ctrl(r rune) Key { return Key{Name: Char, Rune: r, Ctrl: true} }

func TestDecide(t *testing.T) {
	tests := []struct {
		name   string
		key    Key
		menu   bool
		want   Action
		wantOK bool
	}{
		{"return submits", plain(Return), false, Submit, true},
		{"enter submits", plain(Enter), false, Submit, true},
		{"backspace deletes", plain(Backspace), false, ActionDelete, true},
		{"delete deletes forward", plain(Delete), false, DeleteForward, true},
		{"abort key aborts", plain(Abort), false, ActionAbort, true},
		{"escape exits", plain(Escape), false, Exit, true},
		{"tab is next", plain(Tab), false, Next, true},
		{"page up", plain(PageUp), false, PrevPage, true},
		{"page down", plain(PageDown), false, NextPage, true},
		{"home", plain(Home), false, ActionHome, true},
		{"end", plain(End), false, ActionEnd, true},
		{"up", plain(Up), false, ActionUp, true},
		{"down", plain(Down), false, ActionDown, true},
		{"left", plain(Left), false, ActionLeft, true},
		{"right", plain(Right), false, ActionRight, true},

		{"ctrl+a first", ctrl('a'), false, First, true},
		{"ctrl+c abort", ctrl('c'), false, ActionAbort, true},
		{"ctrl+d abort", ctrl('d'), false, ActionAbort, true},
		{"ctrl+e last", ctrl('e'), false, Last, true},
		{"ctrl+g reset", ctrl('g'), false, Reset, true},
		{"ctrl+z nothing", ctrl('z'), false, 0, false},
		{"ctrl+j nothing even in menu", ctrl('j'), true, 0, false},
		{"ctrl+up nothing", Key{Name: Up, Ctrl: true}, false, 0, false},

		{"j in menu", char('j'), true, ActionDown, true},
		{"k in menu", char('k'), true, ActionUp, true},
		{"j outside menu", char('j'), false, 0, false},
		{"k outside menu", char('k'), false, 0, false},
		{"plain char", char('x'), false, 0, false},
		{"plain char in menu", char('x'), true, 0, false},
		{"space", char(' '), true, 0, false},
		{"unknown", plain(Unknown), false, 0, false},

		{"meta char passes through", Key{Name: Char, Rune: 'a', Meta: true}, false, 0, false},
		{"meta arrow passes through", Key{Name: Up, Meta: true}, true, 0, false},
		{"meta escape still exits", Key{Name: Escape, Meta: true}, false, Exit, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Decide(tt.key, tt.menu)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKeyString(t *testing.T) {
	assert.Equal(t, "ctrl+a", ctrl('a').String())
	assert.Equal(t, "j", char('j').String())
	assert.Equal(t, "up", plain(Up).String())
	assert.Equal(t, "esc", plain(Escape).String())
	assert.Equal(t, "pgdown", plain(PageDown).String())
}

func TestFromByte(t *testing.T) {
	tests := []struct {
		in   byte
		want Key
	}{
		{'\r', plain(Return)},
		{'\n', plain(Enter)},
		{'\t', plain(Tab)},
		{0x7f, plain(Backspace)},
		{0x08, plain(Backspace)},
		{0x1b, plain(Escape)},
		{0x01, ctrl('a')},
		{0x03, ctrl('c')},
		{0x04, ctrl('d')},
		{0x07, ctrl('g')},
		{'a', char('a')},
		{'7', char('7')},
		{' ', char(' ')},
		{0x00, plain(Unknown)},
		{0x80, plain(Unknown)},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FromByte(tt.in), "byte %#x", tt.in)
	}
}

func TestFromUTF8(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Key
		rest string
	}{
		{"two bytes", "é!", char('é'), "!"},
		{"three bytes", "€", char('€'), ""},
		{"four bytes", "😀x", char('😀'), "x"},
		{"stray continuation", "\x80a", plain(Unknown), "a"},
		{"bad continuation", "\xc3(", plain(Unknown), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := strings.NewReader(tt.in)
			lead, err := r.ReadByte()
			require.NoError(t, err)

			got, err := FromUTF8(lead, r)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			rest, _ := io.ReadAll(r)
			assert.Equal(t, tt.rest, string(rest))
		})
	}
}

func TestFromUTF8_Truncated(t *testing.T) {
	_, err := FromUTF8(0xe2, strings.NewReader("\x82"))
	assert.ErrorIs(t, err, io.EOF)
}

func TestFromCSI(t *testing.T) {
	assert.Equal(t, Up, FromCSI('A').Name)
	assert.Equal(t, Down, FromCSI('B').Name)
	assert.Equal(t, Right, FromCSI('C').Name)
	assert.Equal(t, Left, FromCSI('D').Name)
	assert.Equal(t, Home, FromCSI('H').Name)
	assert.Equal(t, End, FromCSI('F').Name)
	assert.Equal(t, Unknown, FromCSI('Z').Name)
}

func TestIsPrintable(t *testing.T) {
	assert.True(t, char('a').IsPrintable())
	assert.True(t, char(' ').IsPrintable())
	assert.True(t, char('é').IsPrintable())
	assert.False(t, ctrl('a').IsPrintable())
	assert.False(t, plain(Return).IsPrintable())
	assert.False(t, Key{Name: Char, Rune: 'x', Meta: true}.IsPrintable())
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "submit", Submit.String())
	assert.Equal(t, "deleteForward", DeleteForward.String())
	assert.Equal(t, "unknown", Action(0).String())
}
