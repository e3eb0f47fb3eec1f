package logprefix

import (
	"log/slog"
)

type (
	Attr    = slog.Attr
	Level   = slog.Level
	Leveler = slog.Leveler
	Record  = slog.Record
)

const (
	DEBUG = slog.LevelDebug
	INFO  = slog.LevelInfo
	WARN  = slog.LevelWarn
	ERROR = slog.LevelError
)
