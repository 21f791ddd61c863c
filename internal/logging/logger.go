// Package logging provides a single process-wide zerolog logger.
//
// Go Learning Note — zerolog:
// zerolog builds log lines through a chained, allocation-free builder
// (Info().Str(...).Msg(...)) instead of fmt-style formatting. The chain must
// end in Msg/Msgf/Send or nothing is emitted — a common first mistake.
package logging

import (
	"os"

	"github.com/rs/zerolog"
)

var logger zerolog.Logger

func init() {
	logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

// Init sets the global minimum log level from a string (spec.md §6.3,
// GEOINDEX_LOG_LEVEL). An unrecognized level falls back to info rather than
// failing startup.
func Init(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
}

// Logger returns the process-wide logger.
func Logger() *zerolog.Logger {
	return &logger
}

// Info starts an info-level log event.
func Info() *zerolog.Event { return logger.Info() }

// Warn starts a warn-level log event.
func Warn() *zerolog.Event { return logger.Warn() }

// Error starts an error-level log event.
func Error() *zerolog.Event { return logger.Error() }

// Fatal starts a fatal-level log event; emitting it calls os.Exit(1).
func Fatal() *zerolog.Event { return logger.Fatal() }
