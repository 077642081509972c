// Package logging sets up the process-wide slog logger, backed by
// zerolog.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
	slogzerolog "github.com/samber/slog-zerolog/v2"
)

const DefaultLogLevel = slog.LevelInfo

// ParseLogLevel converts a level name to a slog.Level.
func ParseLogLevel(levelStr string) (slog.Level, error) {
	switch {
	case strings.EqualFold(levelStr, slog.LevelDebug.String()):
		return slog.LevelDebug, nil
	case strings.EqualFold(levelStr, slog.LevelInfo.String()):
		return slog.LevelInfo, nil
	case strings.EqualFold(levelStr, slog.LevelWarn.String()):
		return slog.LevelWarn, nil
	case strings.EqualFold(levelStr, slog.LevelError.String()):
		return slog.LevelError, nil
	}

	return DefaultLogLevel, fmt.Errorf("unknown level string: '%s', defaulting to LevelInfo", levelStr)
}

// NewLogger builds a slog.Logger writing to out, as JSON or as
// human-readable console lines.
func NewLogger(out io.Writer, level slog.Level, json bool) *slog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	//nolint
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack

	var zerologLogger zerolog.Logger
	if json {
		zerologLogger = zerolog.New(out).
			With().
			Timestamp().
			Stack().
			Logger()
	} else {
		zerologLogger = zerolog.New(zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.StampMicro,
		}).With().Timestamp().Logger()
	}

	return slog.New(
		slogzerolog.Option{
			Level:  level,
			Logger: &zerologLogger,
		}.NewZerologHandler(),
	)
}

// ConfigureLogger installs a logger built by NewLogger as the slog
// default.
func ConfigureLogger(out io.Writer, level slog.Level, json bool) {
	slog.SetDefault(NewLogger(out, level, json))
}
