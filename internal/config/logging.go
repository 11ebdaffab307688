package config

import (
    "io"
    "log/slog"
    "strings"
)

// NewLogger builds the process logger. format is "json" or "text"; level
// is one of debug, info, warn, error.
func NewLogger(w io.Writer, format, level string) *slog.Logger {
    opts := &slog.HandlerOptions{Level: parseLevel(level)}
    var h slog.Handler
    if strings.EqualFold(format, "json") {
        h = slog.NewJSONHandler(w, opts)
    } else {
        h = slog.NewTextHandler(w, opts)
    }
    return slog.New(h)
}

func parseLevel(s string) slog.Level {
    var l slog.Level
    if err := l.UnmarshalText([]byte(s)); err != nil {
        return slog.LevelInfo
    }
    return l
}
