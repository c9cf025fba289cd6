package logger

import (
	"log/slog"
	"strings"
)

// Error logs err under "error". A nil error yields an empty Attr, which
// slog drops.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// SessionID logs a session id under "session_id". Empty ids are dropped.
func SessionID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("session_id", id)
}

// Keys logs session attribute names as one comma separated value.
func Keys(keys []string) slog.Attr {
	return slog.String("keys", strings.Join(keys, ","))
}

func Count(n int64) slog.Attr {
	return slog.Int64("count", n)
}

func Backend(name string) slog.Attr {
	return slog.String("backend", name)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}
