package logprefix

import (
	"context"
	"log/slog"
	"testing"

	"github.com/sellerlabs/logprefix/testlog"
)

func TestContextRoundTrip(t *testing.T) {
	c := new(testlog.Capture)
	ctx := NewContext(context.Background(), UsingHandler(c))

	FromContext(ctx).Info("m")

	if got := c.Messages()[0]; got != "m" {
		t.Errorf("round trip: %q", got)
	}
}

func TestWithScope(t *testing.T) {
	c := new(testlog.Capture)
	ctx := NewContext(context.Background(), UsingHandler(c))

	inner := WithScope(WithScope(ctx, "foo"), "bar")
	FromContext(inner).Info("m")

	// the parent context's logger is untouched
	FromContext(ctx).Info("m")

	got := c.Messages()
	if got[0] != "[foo] [bar] m" {
		t.Errorf("scoped: %q", got[0])
	}
	if got[1] != "m" {
		t.Errorf("parent context acquired a prefix: %q", got[1])
	}
}

func TestFromContextBare(t *testing.T) {
	log := FromContext(context.Background())

	if log.Logger == nil {
		t.Fatal("bare context yielded a nil logger")
	}
	if log.Handler() != slog.Default().Handler() {
		t.Error("bare context did not yield the default handler")
	}
}
