// Package logging builds the diagnostic logger. Log output always goes to
// stderr so that stdout only ever carries the translation.
package logging

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// New creates a console logger writing to w. verbose forces the debug level.
func New(level string, verbose bool, w io.Writer) (zerolog.Logger, error) {
	parsedLevel := zerolog.DebugLevel
	if !verbose {
		var err error
		parsedLevel, err = zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
		if err != nil {
			return zerolog.Nop(), fmt.Errorf("parse TRANSLATE_LOG_LEVEL=%q: %w", level, err)
		}
	}

	writer := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
		NoColor:    true,
	}

	logger := zerolog.New(writer).
		Level(parsedLevel).
		With().
		Timestamp().
		Logger()

	return logger, nil
}
