package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	FormatConsole = "console"
	FormatJSON    = "json"
	FormatSlog    = "slog"
)

// Options select the backend and verbosity of New.
type Options struct {
	// Level is one of debug, info, warn, error. Unknown values mean info.
	Level string
	// Format is console (zerolog, human friendly), json (zerolog) or slog.
	Format string
	// Output defaults to os.Stderr so log lines do not interleave with the
	// rendered note list on stdout.
	Output io.Writer
}

// New builds the Logger described by opts.
func New(opts Options) Logger {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	switch strings.ToLower(opts.Format) {
	case FormatSlog:
		h := slog.NewTextHandler(out, &slog.HandlerOptions{Level: slogLevel(opts.Level)})
		return NewSlogLogger(slog.New(h))
	case FormatJSON:
		return NewZerologLogger(zerolog.New(out).Level(zerologLevel(opts.Level)).With().Timestamp().Logger())
	default:
		w := zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}
		return NewZerologLogger(zerolog.New(w).Level(zerologLevel(opts.Level)).With().Timestamp().Logger())
	}
}

func zerologLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func slogLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
