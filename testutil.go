package logprefix

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"
)

// SUBSTRINGS

func substringTestLogger(t *testing.T, options ...Option) (Logger, func(string)) {
	var b bytes.Buffer
	options = append(options, Using.Writer(&b))

	wantFunc := func(want string) {
		t.Helper()
		if !strings.Contains(b.String(), want) {
			t.Errorf("\n\texpected %s\n\tin %s", want, b.String())
		}
		b.Reset()
	}

	return New(options...), wantFunc
}

// RECORDING

var someTime = time.Date(1947, time.July, 8, 6, 30, 0, 0, time.UTC)

type recording struct {
	got slog.Record
}

func (*recording) Enabled(context.Context, slog.Level) bool {
	return true
}

func (r *recording) Handle(_ context.Context, rec slog.Record) error {
	r.got = rec
	return nil
}

func (r *recording) WithAttrs([]slog.Attr) slog.Handler {
	return r
}

func (r *recording) WithGroup(string) slog.Handler {
	return r
}
