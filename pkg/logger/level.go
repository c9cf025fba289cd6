package logger

import (
	"log/slog"
	"strings"
)

// LevelFatal sits above slog.LevelError for failures the process cannot survive.
const LevelFatal = slog.Level(12)

// ParseLevel maps a verbosity name (fatal, error, warn, info, debug) to a
// slog level. Matching ignores case and surrounding space; unknown names
// yield slog.LevelInfo.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "fatal":
		return LevelFatal
	case "error":
		return slog.LevelError
	case "warn":
		return slog.LevelWarn
	case "debug":
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}

// levelName prints LevelFatal as FATAL instead of ERROR+4.
func levelName(_ []string, a slog.Attr) slog.Attr {
	if a.Key != slog.LevelKey {
		return a
	}
	if lvl, ok := a.Value.Any().(slog.Level); ok && lvl >= LevelFatal {
		a.Value = slog.StringValue("FATAL")
	}
	return a
}
