package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/viper"

	"codeberg.org/snonux/translate/internal/translation"
)

const (
	appDir   = "translate"
	fileName = "config.json"

	defaultProviderKey = "defaultProvider"

	// DefaultProviderEnv overrides defaultProvider of the config file
	DefaultProviderEnv = "TRANSLATE_DEFAULT_PROVIDER"
)

// DefaultPath returns the location of the persisted config file,
// $XDG_CONFIG_HOME/translate/config.json on Unix systems
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to determine config directory: %w", err)
	}
	return filepath.Join(dir, appDir, fileName), nil
}

// Persisted is the content of the config file: an optional default provider
// and one options object per provider name
type Persisted struct {
	DefaultProvider string
	Providers       map[string]translation.Options
}

// For returns a copy of the persisted options of name, or empty options
func (p Persisted) For(name translation.Name) translation.Options {
	opts, ok := p.Providers[string(name)]
	if !ok {
		return translation.Options{}
	}
	return opts.Normalized()
}

// Store reads the persisted config file
type Store struct {
	fs   afero.Fs
	path string
}

// NewStore creates a store for the config file at path on fs
func NewStore(fs afero.Fs, path string) *Store {
	return &Store{fs: fs, path: path}
}

// Path returns the config file location without touching the file
func (s *Store) Path() string {
	return s.path
}

// Load reads the config file. A missing file is created as {} first so later
// runs read the same state.
func (s *Store) Load() (Persisted, error) {
	if err := s.bootstrap(); err != nil {
		return Persisted{}, &ConfigurationError{Path: s.path, Err: err}
	}

	raw, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		return Persisted{}, &ConfigurationError{Path: s.path, Err: err}
	}
	if err := validate(raw); err != nil {
		return Persisted{}, &ConfigurationError{Path: s.path, Err: err}
	}

	// viper decodes the bytes validated above; the file is read only once
	v := viper.New()
	v.SetConfigType("json")
	if err := v.BindEnv(defaultProviderKey, DefaultProviderEnv); err != nil {
		return Persisted{}, &ConfigurationError{Path: s.path, Err: err}
	}
	if len(bytes.TrimSpace(raw)) > 0 {
		if err := v.ReadConfig(bytes.NewReader(raw)); err != nil {
			return Persisted{}, &ConfigurationError{Path: s.path, Err: err}
		}
	}

	persisted := Persisted{
		DefaultProvider: v.GetString(defaultProviderKey),
		Providers:       make(map[string]translation.Options),
	}
	for key, value := range v.AllSettings() {
		if key == strings.ToLower(defaultProviderKey) {
			continue
		}
		section, ok := value.(map[string]any)
		if !ok {
			continue
		}
		persisted.Providers[strings.ToLower(key)] = translation.Options(section).Normalized()
	}
	return persisted, nil
}

func (s *Store) bootstrap() error {
	exists, err := afero.Exists(s.fs, s.path)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := afero.WriteFile(s.fs, s.path, []byte("{}\n"), 0600); err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	return nil
}
