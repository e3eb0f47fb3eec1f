package logprefix

import (
	"context"
	"log/slog"
)

// Handler encapsulates a [slog.Handler], prepending an accumulated prefix
// to the message of every record it handles.
//
// Only the message is touched. Every other handler behavior - enablement,
// attr and group derivation, whatever the encapsulated handler does with
// time, level, and source - passes through unchanged.
//
// A Handler's prefix is fixed at construction. Derivation (with
// [NewHandler], [Handler.WithAttrs], or [Handler.WithGroup]) always builds
// a new Handler, so records may flow through a shared Handler from any
// number of goroutines without synchronization.
type Handler struct {
	prefix string
	enc    slog.Handler
}

// NewHandler returns a Handler encapsulating enc.
//
// The label extends whatever prefix enc already carries: if enc was built
// with label "outer", the returned Handler rewrites messages with
// "[outer] [label] ". Depth is unbounded; each level appends one segment.
//
// The label is used verbatim. A "]" or "[" in the label lands in the
// rendered message as-is, brackets unbalanced.
func NewHandler(enc slog.Handler, label string) *Handler {
	h := &Handler{prefix: segment(label), enc: enc}

	// Collapse nesting into one string, so any depth costs one
	// concatenation per record.
	if inner, nested := enc.(*Handler); nested {
		h.prefix = inner.prefix + h.prefix
		h.enc = inner.enc
	}

	return h
}

func segment(label string) string {
	return "[" + label + "] "
}

// SlogHandler returns the [slog.Handler] encapsulated by a Handler.
func (h *Handler) SlogHandler() slog.Handler {
	return h.enc
}

// See [slog.Handler.Enabled].
func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.enc.Enabled(ctx, level)
}

// Handle rewrites the record's message to prefix + message, and delegates
// the rewritten record to the encapsulated handler. The record is a copy;
// the caller's record is not aliased.
func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	r.Message = h.prefix + r.Message
	return h.enc.Handle(ctx, r)
}

// See [slog.Handler.WithAttrs]. The derived handler keeps the prefix.
func (h *Handler) WithAttrs(as []Attr) slog.Handler {
	return &Handler{
		prefix: h.prefix,
		enc:    h.enc.WithAttrs(as),
	}
}

// See [slog.Handler.WithGroup]. The derived handler keeps the prefix.
func (h *Handler) WithGroup(name string) slog.Handler {
	return &Handler{
		prefix: h.prefix,
		enc:    h.enc.WithGroup(name),
	}
}
