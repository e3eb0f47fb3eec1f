package logprefix

import (
	"log/slog"
)

// Logger embeds a [slog.Logger], and offers prefix scoping methods:
//   - Deriving a prefixed logger: [Logger.Prefix]
//   - Running a block under a nested prefix: [Logger.Scope], [Scope]
//
// The following methods are available on a Logger by way of embedding:
//   - Leveled logging methods: [slog.Logger.Debug], [slog.Logger.Info], [slog.Logger.Warn], [slog.Logger.Error]
//   - General logging methods: [slog.Logger.Log], [slog.Logger.LogAttrs]
//   - [slog.Logger.Handler], [slog.Logger.Enabled]
//
// The following methods are overridden to return [Logger]s rather than
// [*slog.Logger]s, and keep any prefix already installed:
//   - [slog.Logger.With]
//   - [slog.Logger.WithGroup]
type Logger struct {
	*slog.Logger
}

// UsingHandler returns a Logger employing the given slog.Handler.
//
// The handler is used as-is; no prefix is installed until [Logger.Prefix]
// or [Logger.Scope] is called.
func UsingHandler(h slog.Handler) Logger {
	return Logger{slog.New(h)}
}

// Prefix returns a Logger one prefix level deeper: messages it logs carry
// the receiver's accumulated prefix followed by "[" + label + "] ".
//
// The receiver is unchanged, and remains valid for concurrent use.
func (l Logger) Prefix(label string) Logger {
	return Logger{slog.New(NewHandler(l.Handler(), label))}
}

// Scope runs block with a Logger one prefix level deeper, and returns
// block's error unchanged.
//
// Anything logged with the block's Logger - at any further nesting depth,
// from any goroutine the block hands it to - carries the composed prefix.
// Scope itself never fails, recovers, or wraps: errors and panics from
// block pass through untouched.
func (l Logger) Scope(label string, block func(Logger) error) error {
	return block(l.Prefix(label))
}

// Scope is the value-producing form of [Logger.Scope], for blocks that
// compute a result.
func Scope[T any](l Logger, label string, block func(Logger) (T, error)) (T, error) {
	return block(l.Prefix(label))
}

// See [slog.Logger.With].
func (l Logger) With(args ...any) Logger {
	return Logger{
		l.Logger.With(args...),
	}
}

// See [slog.Logger.WithGroup].
func (l Logger) WithGroup(name string) Logger {
	return Logger{
		l.Logger.WithGroup(name),
	}
}
