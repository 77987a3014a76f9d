package logging

import (
	"io"
	"log/slog"
	"strings"

	"github.com/myrjola/routinegen/internal/errors"
)

// NewLogger creates a text logger writing to w that enriches records with the attributes stored by [WithAttrs].
func NewLogger(w io.Writer, level slog.Leveler) *slog.Logger {
	return slog.New(NewContextHandler(slog.NewTextHandler(w, &slog.HandlerOptions{
		AddSource:   false,
		Level:       level,
		ReplaceAttr: nil,
	})))
}

// ParseLevel parses debug, info, warn or error case-insensitively.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, errors.Wrap(err, "parse log level", slog.String("level", s))
	}
	return level, nil
}
