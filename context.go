package logprefix

import (
	"context"
	"log/slog"
)

type loggerKey struct{}

// NewContext returns a context carrying l.
//
// Pairing NewContext with [FromContext] lets a prefix scope travel through
// call trees that pass a [context.Context] rather than a Logger.
func NewContext(ctx context.Context, l Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// FromContext returns the Logger carried by ctx.
//
// A context carrying no Logger yields one over [slog.Default], with an
// empty prefix; callers never receive a nil logger.
func FromContext(ctx context.Context) Logger {
	if l, ok := ctx.Value(loggerKey{}).(Logger); ok {
		return l
	}
	return Logger{slog.Default()}
}

// WithScope returns a child context whose carried Logger is one prefix
// level deeper.
//
// The parent context and its Logger are unchanged: the new prefix is
// visible only to call trees receiving the child context, so concurrent
// siblings that scope independently never observe each other's labels.
func WithScope(ctx context.Context, label string) context.Context {
	return NewContext(ctx, FromContext(ctx).Prefix(label))
}
