package xlog

import (
	"io"
	"log/slog"
	"strings"
	"testing"
)

func Nop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type testWriter struct {
	t testing.TB
}

func (writer testWriter) Write(p []byte) (int, error) {
	writer.t.Helper()
	writer.t.Log(strings.TrimRight(string(p), "\n"))
	return len(p), nil
}

// Test returns a logger which writes debug logs to the test output,
// shown only for failed tests or with -v.
func Test(t testing.TB) *slog.Logger {
	return slog.New(slog.NewTextHandler(testWriter{t: t}, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}
