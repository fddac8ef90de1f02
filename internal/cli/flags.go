package cli

import "time"

// Flags holds all command-line flag values of the root command. Provider
// flags are not listed here; every provider parses its own.
type Flags struct {
	CfgFile      string
	Provider     string
	Timeout      time.Duration
	Verbose      bool
	IgnoreErrors bool
}

// NewFlags creates a new Flags instance with defaults taken from settings
func NewFlags(settings Settings) *Flags {
	return &Flags{
		CfgFile:      settings.Config,
		Timeout:      settings.Timeout,
		IgnoreErrors: settings.IgnoreErrors,
	}
}
