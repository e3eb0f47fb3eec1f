// Package apexlog decorates an apex/log handler with the same nested,
// bracketed message prefixes that the root package applies to slog
// handlers.
package apexlog

import (
	"github.com/apex/log"
)

// Handler encapsulates a [log.Handler], prepending an accumulated prefix
// to the message of every entry it handles. Entry fields, level, and
// timestamp pass through unchanged.
//
// A Handler's prefix is fixed at construction.
type Handler struct {
	prefix string
	inner  log.Handler
}

// New returns a Handler encapsulating inner.
//
// As with the slog form, the label extends whatever prefix inner already
// carries, and is used verbatim - no escaping.
func New(inner log.Handler, label string) *Handler {
	h := &Handler{prefix: "[" + label + "] ", inner: inner}

	if nested, ok := inner.(*Handler); ok {
		h.prefix = nested.prefix + h.prefix
		h.inner = nested.inner
	}

	return h
}

// HandleLog implements [log.Handler].
func (h *Handler) HandleLog(e *log.Entry) error {
	e.Message = h.prefix + e.Message

	return h.inner.HandleLog(e)
}
