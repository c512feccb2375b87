package types

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/devg1120/mib-parser/internal/testutil"
)

func TestSpan(t *testing.T) {
	s := NewSpan(3, 8)
	testutil.Equal(t, ByteOffset(5), s.Len(), "length")
	testutil.False(t, s.IsEmpty(), "non-empty")

	empty := NewSpan(4, 4)
	testutil.True(t, empty.IsEmpty(), "empty")
}

func TestLoggerNilSafe(t *testing.T) {
	var l Logger
	testutil.False(t, l.Enabled(slog.LevelDebug), "nil disabled")
	testutil.False(t, l.TraceEnabled(), "nil trace disabled")
	// Must not panic.
	l.Log(slog.LevelInfo, "dropped")
	l.Trace("dropped")
}

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	l := Logger{L: slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))}

	testutil.True(t, l.Enabled(slog.LevelDebug), "debug enabled")
	testutil.False(t, l.TraceEnabled(), "trace below debug")

	l.Log(slog.LevelDebug, "visible")
	l.Trace("hidden")

	out := buf.String()
	testutil.Contains(t, out, "visible", "debug emitted")
	testutil.False(t, strings.Contains(out, "hidden"), "trace suppressed")
}

func TestLoggerTrace(t *testing.T) {
	var buf bytes.Buffer
	l := Logger{L: slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: LevelTrace,
	}))}

	testutil.True(t, l.TraceEnabled(), "trace enabled")
	l.Trace("token", slog.Int("kind", 1))
	testutil.Contains(t, buf.String(), "token", "trace emitted")
}
