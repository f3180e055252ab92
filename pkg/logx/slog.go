package logx

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/lmittmann/tint"
)

var Error = tint.Err //nolint:gochecknoglobals

func Stringer(name string, value fmt.Stringer) slog.Attr {
	return slog.String(name, value.String())
}

func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.DateTime,
	}))
}

// ParseLevel accepts the names understood by slog.Level.UnmarshalText
// (debug, info, warn, error, optionally with an offset like "info+2").
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level

	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("level.UnmarshalText: %w", err)
	}

	return level, nil
}
