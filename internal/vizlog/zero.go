// Package vizlog holds the process-wide zerolog logger.
package vizlog

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

var Zero = NewZeroLogger(os.Stderr)

// NewZeroLogger returns an info-level console logger writing to out.
func NewZeroLogger(out io.Writer) *zerolog.Logger {
	output := zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	logger := zerolog.New(output).With().Timestamp().Logger().Level(zerolog.InfoLevel)
	return &logger
}

// UpdateLevel replaces Zero with a copy at the given level. An empty
// level leaves Zero unchanged.
func UpdateLevel(level string) error {
	if strings.TrimSpace(level) == "" {
		return nil
	}
	lvl, err := ParseLevel(level)
	if err != nil {
		return err
	}
	zeroLogger := Zero.With().Logger().Level(lvl)
	Zero = &zeroLogger
	return nil
}

// SetOutput redirects Zero to out, keeping its level.
func SetOutput(out io.Writer) {
	zeroLogger := Zero.Output(zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339, NoColor: true})
	Zero = &zeroLogger
}

// ParseLevel resolves a level name, case-insensitively. It accepts trace,
// debug, info, warn or warning, error, fatal, and disabled or off.
func ParseLevel(level string) (zerolog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel, nil
	case "debug":
		return zerolog.DebugLevel, nil
	case "info":
		return zerolog.InfoLevel, nil
	case "warn", "warning":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	case "fatal":
		return zerolog.FatalLevel, nil
	case "disabled", "off":
		return zerolog.Disabled, nil
	default:
		return zerolog.NoLevel, errors.Errorf("unknown log level %q", level)
	}
}
