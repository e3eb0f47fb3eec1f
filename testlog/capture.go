// Package testlog provides slog handlers for observing log output in tests.
//
// It's offered both for this module's own tests and for consumers checking
// what their prefixed loggers emit.
package testlog

import (
	"context"
	"log/slog"
	"slices"
	"sync"
)

// Capture is a [slog.Handler] that appends the message of each record it
// handles to an in-memory sequence, in handling order. It writes nothing.
//
// The zero value is ready to use. A Capture may be shared by derived
// handlers and logged to from any number of goroutines.
type Capture struct {
	mu   sync.Mutex
	msgs []string
}

// Enabled reports true for every level.
func (c *Capture) Enabled(context.Context, slog.Level) bool {
	return true
}

// Handle records the message.
func (c *Capture) Handle(_ context.Context, r slog.Record) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.msgs = append(c.msgs, r.Message)
	return nil
}

// WithAttrs returns the receiver; attrs don't affect captured messages.
func (c *Capture) WithAttrs([]slog.Attr) slog.Handler {
	return c
}

// WithGroup returns the receiver.
func (c *Capture) WithGroup(string) slog.Handler {
	return c
}

// Messages returns the messages handled so far, in order.
func (c *Capture) Messages() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return slices.Clone(c.msgs)
}

// Reset discards captured messages.
func (c *Capture) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.msgs = nil
}
