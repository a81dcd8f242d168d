package logger

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(level Level) (*standardLogger, *bytes.Buffer) {
	var buf bytes.Buffer
	l := NewLogger(level, &buf).(*standardLogger)
	l.sink.now = func() time.Time {
		return time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC)
	}
	return l, &buf
}

func TestLogger_LevelFiltering(t *testing.T) {
	l, buf := newTestLogger(LevelWarn)

	l.Debug("debug message")
	l.Info("info message")
	l.Warn("warn message")
	l.Error("error message")

	out := ansi.Strip(buf.String())
	assert.NotContains(t, out, "debug message")
	assert.NotContains(t, out, "info message")
	assert.Contains(t, out, "[WARN] warn message")
	assert.Contains(t, out, "[ERROR] error message")
}

func TestLogger_Format(t *testing.T) {
	l, buf := newTestLogger(LevelDebug)

	l.Info("Asking question", F("type", "select"))

	assert.Equal(t, "2026-10-18 09:30:00 [INFO] Asking question | type=select\n", ansi.Strip(buf.String()))
}

func TestLogger_WithFields(t *testing.T) {
	l, buf := newTestLogger(LevelDebug)

	child := l.WithFields(F("question", "name"), F("index", 0))
	child.Debug("Skipping", F("reason", "no type"))

	out := ansi.Strip(buf.String())
	assert.Contains(t, out, "| question=name index=0 reason=no type")

	// the parent keeps its own fields
	buf.Reset()
	l.Debug("plain")
	assert.NotContains(t, ansi.Strip(buf.String()), "question=")
}

func TestLogger_SetLevelSharedWithChildren(t *testing.T) {
	l, buf := newTestLogger(LevelInfo)
	child := l.WithFields(F("k", "v"))

	l.SetLevel(LevelError)
	child.Warn("hidden")

	assert.Empty(t, buf.String())
}

func TestSilentLogger(t *testing.T) {
	l := NewSilentLogger()
	assert.NotPanics(t, func() {
		l.Error("nothing to see")
		l.WithFields(F("a", 1)).Info("still nothing")
	})
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{"", LevelInfo, false},
		{"warning", LevelWarn, false},
		{"Error", LevelError, false},
		{"off", LevelSilent, false},
		{"loud", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "DEBUG", LevelDebug.String())
	assert.Equal(t, "SILENT", LevelSilent.String())
	assert.Equal(t, "UNKNOWN", Level(42).String())
	assert.True(t, strings.HasPrefix(LevelWarn.String(), "WARN"))
}
