package cli

import (
	"errors"
	"fmt"

	"codeberg.org/snonux/translate/internal/config"
	"codeberg.org/snonux/translate/internal/processor"
	"codeberg.org/snonux/translate/internal/translation"
)

// Exit codes
const (
	ExitOK          = 0
	ExitTranslation = 1
	ExitUsage       = 2
)

// ExitError is an error that carries the process exit code
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

// ExitCode maps an error returned by the root command to an exit code
func ExitCode(err error) int {
	var exitErr *ExitError
	var cfgErr *config.ConfigurationError
	var parseErr *translation.OptionParseError
	var trErr *translation.TranslationError

	switch {
	case err == nil:
		return ExitOK
	case errors.As(err, &exitErr):
		return exitErr.Code
	case errors.As(err, &cfgErr), errors.As(err, &parseErr), errors.Is(err, processor.ErrEmptyText):
		return ExitUsage
	case errors.As(err, &trErr):
		return ExitTranslation
	default:
		return ExitUsage
	}
}

// errorMessage is what gets printed to stderr for err. Translation errors
// carry the vendor message only; everything else is prefixed.
func errorMessage(err error) string {
	var trErr *translation.TranslationError
	if errors.As(err, &trErr) {
		return trErr.Error()
	}
	return fmt.Sprintf("Error: %v", err)
}
