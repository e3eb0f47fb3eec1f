package testlog

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

// Substrings returns a [slog.Handler] and a "want" function.
//
// When a logging call is made using the handler, log lines are written to a buffer.
// Calling "want" tests whether the buffer contains the given string.
// If it does not, t.Errorf is called.
// Calling want clears the buffer.
//
// The handler encodes to JSON, elides times, and adds source/line information.
func Substrings(t *testing.T) (h slog.Handler, want func(string)) {
	var b bytes.Buffer

	want = func(wantString string) {
		t.Helper()
		if !strings.Contains(b.String(), wantString) {
			t.Errorf("\n\texpected %s\n\tin %s", wantString, b.String())
		}
		b.Reset()
	}

	h = slog.NewJSONHandler(&b, &slog.HandlerOptions{
		ReplaceAttr: noTime,
		AddSource:   true,
	})

	return h, want
}

func noTime(scope []string, a slog.Attr) slog.Attr {
	if a.Key == slog.TimeKey && len(scope) == 0 {
		return slog.Attr{}
	}
	return a
}
