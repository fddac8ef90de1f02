package translation

import (
	"errors"
	"fmt"
)

// ErrUnknownProvider is returned when a name is not part of the provider enumeration
var ErrUnknownProvider = errors.New("unknown provider")

// OptionParseError indicates that a provider rejected one of its own flags
type OptionParseError struct {
	Provider Name
	Err      error
}

func (e *OptionParseError) Error() string {
	return fmt.Sprintf("%s: %v", e.Provider, e.Err)
}

func (e *OptionParseError) Unwrap() error {
	return e.Err
}

// TranslationError is returned when the vendor call fails. Message is built
// from the vendor's own error payload when one is available.
type TranslationError struct {
	Provider Name
	Message  string
	Err      error
}

func (e *TranslationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return string(e.Provider) + ": translation failed"
}

func (e *TranslationError) Unwrap() error {
	return e.Err
}

func newTranslationError(provider Name, format string, args ...any) *TranslationError {
	err := fmt.Errorf(format, args...)
	return &TranslationError{Provider: provider, Message: err.Error(), Err: errors.Unwrap(err)}
}
