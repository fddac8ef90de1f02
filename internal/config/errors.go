package config

import (
	"errors"
	"fmt"
)

// ErrNoProvider is returned when neither --provider nor defaultProvider is set
var ErrNoProvider = errors.New("no provider specified: use --provider or set defaultProvider in the config file")

// ConfigurationError reports a problem that prevents a run from starting:
// no provider, an unknown provider or an unreadable config file.
type ConfigurationError struct {
	Path string
	Err  error
}

func (e *ConfigurationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("config %s: %v", e.Path, e.Err)
	}
	return e.Err.Error()
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}
