package config

import (
	"fmt"
	"strings"

	"codeberg.org/snonux/translate/internal/translation"
)

// OptionParser is the part of a provider the resolver needs
type OptionParser interface {
	ParseOptions(args []string) (translation.Options, error)
}

// ResolveProviderName picks the --provider flag, else the persisted default,
// and checks it against the provider enumeration
func ResolveProviderName(flag string, persisted Persisted) (translation.Name, error) {
	raw := flag
	if raw == "" {
		raw = persisted.DefaultProvider
	}
	if raw == "" {
		return "", &ConfigurationError{Err: ErrNoProvider}
	}

	name, ok := translation.ParseName(raw)
	if !ok {
		return "", &ConfigurationError{Err: fmt.Errorf("%w: %q (available: %s)",
			translation.ErrUnknownProvider, raw, strings.Join(nameStrings(), ", "))}
	}
	return name, nil
}

// Resolve merges the persisted options of name with the flags provider
// parses from rawArgs. Mandatory fields are left to the provider.
func Resolve(persisted Persisted, name translation.Name, provider OptionParser, rawArgs []string) (translation.Options, error) {
	overrides, err := provider.ParseOptions(rawArgs)
	if err != nil {
		return nil, err
	}
	return Merge(persisted.For(name), overrides), nil
}

func nameStrings() []string {
	names := translation.Names()
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = string(n)
	}
	return out
}
