package translation

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"
)

// enumValue is a pflag.Value restricted to a fixed set of strings
type enumValue struct {
	allowed   []string
	normalize func(string) string
	value     string
}

func newEnumValue(allowed []string, normalize func(string) string) *enumValue {
	return &enumValue{allowed: allowed, normalize: normalize}
}

func (e *enumValue) String() string { return e.value }

func (e *enumValue) Type() string { return "string" }

func (e *enumValue) Set(raw string) error {
	candidate := raw
	if e.normalize != nil {
		candidate = e.normalize(raw)
	}
	for _, allowed := range e.allowed {
		if allowed == candidate {
			e.value = candidate
			return nil
		}
	}
	return fmt.Errorf("must be one of %s", quoteAll(e.allowed))
}

func quoteAll(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = fmt.Sprintf("%q", v)
	}
	return strings.Join(quoted, ", ")
}

// optionSet parses the flags owned by a single provider out of the full
// argument vector. Unknown flags are skipped together with their value.
type optionSet struct {
	provider Name
	fs       *pflag.FlagSet
}

func newOptionSet(provider Name) *optionSet {
	fs := pflag.NewFlagSet(string(provider), pflag.ContinueOnError)
	fs.ParseErrorsWhitelist.UnknownFlags = true
	fs.SetOutput(io.Discard)
	// help belongs to the root command
	fs.BoolP("help", "h", false, "")
	_ = fs.MarkHidden("help")
	return &optionSet{provider: provider, fs: fs}
}

func (s *optionSet) String(name, usage string) {
	s.fs.String(name, "", usage)
}

func (s *optionSet) Enum(name, shorthand string, allowed []string, normalize func(string) string, usage string) {
	usage = fmt.Sprintf("%s (%s)", usage, strings.Join(allowed, ", "))
	s.fs.VarP(newEnumValue(allowed, normalize), name, shorthand, usage)
}

func (s *optionSet) parse(args []string) (Options, error) {
	if err := s.fs.Parse(args); err != nil {
		return nil, &OptionParseError{Provider: s.provider, Err: err}
	}

	opts := Options{}
	s.fs.Visit(func(f *pflag.Flag) {
		if f.Name == "help" {
			return
		}
		opts[NormalizeKey(f.Name)] = f.Value.String()
	})
	return opts, nil
}

// Usage returns the help text for the provider's flags
func (s *optionSet) Usage() string {
	return s.fs.FlagUsages()
}
