/*
Package logprefix annotates log messages with nested, bracketed prefixes.

A [Logger] wraps any [slog.Handler]. Entering a scope derives a new Logger
whose messages carry one more "[label] " segment; nothing is mutated, and
no call site threads or concatenates prefix strings by hand.

Included are:
  - a [Handler] decorating any [slog.Handler] with an accumulated prefix
  - scoped execution of a block under a nested prefix ([Logger.Scope], [Scope])
  - context carriage of the active scope ([WithScope], [FromContext])
  - quick/consolidated configuration ([New], [Using])
  - a package [testlog] for observing prefixed output in tests
  - a package [apexlog], the same decorator for apex/log handlers

# Hello, world

	package main

	import "github.com/sellerlabs/logprefix"

	func main() {
		log := logprefix.New()
		log.Info("Hello, Roswell")
	}

# Scopes

Each scope prepends one segment, outermost first:

	log.Scope("fetch", func(log logprefix.Logger) error {
		log.Info("resolving")		// [fetch] resolving

		return log.Scope("peer-7", func(log logprefix.Logger) error {
			log.Info("handshake ok")	// [fetch] [peer-7] handshake ok
			return nil
		})
	})

A scope lives exactly as long as the block holds its Logger. Sibling
scopes derive independently and may run concurrently; neither sees the
other's labels. Errors from the block return from Scope unchanged, and
panics unwind through it untouched.

Labels are not escaped: "[" or "]" inside a label appears verbatim in
the rendered message.

# Context

Where call trees pass a [context.Context] instead of a Logger:

	ctx = logprefix.WithScope(ctx, "fetch")
	logprefix.FromContext(ctx).Info("resolving")	// [fetch] resolving

# Integration with [slog]

A [logprefix.Logger] embeds a [slog.Logger]; the full slog method set is
available, and With/WithGroup derivations keep the prefix. A
[logprefix.Handler] is a valid [slog.Handler], so prefixed handlers slot
into any slog-based stack:

	slog.New(logprefix.NewHandler(h, "worker"))
*/
package logprefix
