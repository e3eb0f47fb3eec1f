package logprefix

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/sellerlabs/logprefix/testlog"
)

// nesting handlers directly must match applying the composed prefix once
func TestHandlerComposition(t *testing.T) {
	chained := new(testlog.Capture)
	flat := new(testlog.Capture)

	nested := slog.New(NewHandler(NewHandler(chained, "a"), "b"))
	precomputed := slog.New(chained)

	nested.Info("m")
	precomputed.Info("[a] [b] m")

	msgs := chained.Messages()
	if len(msgs) != 2 || msgs[0] != msgs[1] {
		t.Errorf("composed and precomputed differ: %q", msgs)
	}

	slog.New(NewHandler(flat, "a")).Info("m")
	if got, want := flat.Messages()[0], "[a] m"; got != want {
		t.Errorf("single level:\n\twant %q\n\tgot  %q", want, got)
	}
}

func TestHandlerEmptyLabel(t *testing.T) {
	c := new(testlog.Capture)

	slog.New(NewHandler(c, "")).Info("m")

	if got, want := c.Messages()[0], "[] m"; got != want {
		t.Errorf("empty label:\n\twant %q\n\tgot  %q", want, got)
	}
}

// labels are verbatim; brackets inside a label are not escaped
func TestHandlerLabelNotEscaped(t *testing.T) {
	c := new(testlog.Capture)

	slog.New(NewHandler(c, "a]b")).Info("m")

	if got, want := c.Messages()[0], "[a]b] m"; got != want {
		t.Errorf("bracket label:\n\twant %q\n\tgot  %q", want, got)
	}
}

func TestHandlerWithAttrsKeepsPrefix(t *testing.T) {
	h, want := testlog.Substrings(t)

	log := slog.New(NewHandler(h, "req"))

	log.With("id", 7).Info("accepted")
	want(`"msg":"[req] accepted"`)
	want(`"id":7`)

	log.WithGroup("peer").Info("connected", "addr", "10.0.0.1")
	want(`"msg":"[req] connected"`)
	want(`"peer":{"addr":"10.0.0.1"}`)
}

// enablement is the encapsulated handler's, untouched
func TestHandlerEnabledDelegates(t *testing.T) {
	var b bytes.Buffer
	inner := slog.NewJSONHandler(&b, &slog.HandlerOptions{Level: WARN})

	h := NewHandler(inner, "quiet")
	ctx := context.Background()

	if h.Enabled(ctx, DEBUG) {
		t.Error("DEBUG enabled through a WARN-limited handler")
	}
	if !h.Enabled(ctx, ERROR) {
		t.Error("ERROR not enabled through a WARN-limited handler")
	}

	log := slog.New(h)
	log.Debug("invisible")
	if b.Len() != 0 {
		t.Errorf("suppressed level produced output: %s", b.String())
	}
}

func TestHandlerOnlyMessageChanges(t *testing.T) {
	c := new(recording)

	r := slog.NewRecord(someTime, WARN, "m", 0)
	if err := NewHandler(c, "x").Handle(context.Background(), r); err != nil {
		t.Fatal(err)
	}

	if c.got.Message != "[x] m" {
		t.Errorf("message: got %q", c.got.Message)
	}
	if c.got.Level != WARN {
		t.Errorf("level changed: got %v", c.got.Level)
	}
	if !c.got.Time.Equal(someTime) {
		t.Errorf("time changed: got %v", c.got.Time)
	}

	// the caller's record is a copy; it must still hold the raw message
	if r.Message != "m" {
		t.Errorf("caller's record mutated: %q", r.Message)
	}
}

func TestSlogHandler(t *testing.T) {
	c := new(testlog.Capture)

	h := NewHandler(c, "a")
	if h.SlogHandler() != slog.Handler(c) {
		t.Error("SlogHandler did not return the encapsulated handler")
	}

	// nesting collapses onto the innermost non-prefix handler
	if NewHandler(h, "b").SlogHandler() != slog.Handler(c) {
		t.Error("nested SlogHandler did not reach the encapsulated handler")
	}
}
