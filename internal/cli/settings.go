package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const envPrefix = "translate"

// Settings are read from TRANSLATE_* environment variables and serve as the
// defaults of the root command flags. Names without the prefix are ignored.
type Settings struct {
	Config       string
	Timeout      time.Duration `default:"30s"`
	LogLevel     string        `split_words:"true" default:"warn"`
	IgnoreErrors bool          `split_words:"true" default:"false"`
}

// LoadSettings reads Settings from the environment
func LoadSettings() (Settings, error) {
	var settings Settings
	if err := envconfig.Process(envPrefix, &settings); err != nil {
		return Settings{}, fmt.Errorf("invalid environment: %w", err)
	}
	if settings.Timeout < 0 {
		return Settings{}, fmt.Errorf("invalid environment: TRANSLATE_TIMEOUT must not be negative")
	}
	return settings, nil
}

// EnvFiles returns the .env files read at startup, most specific last:
// the one next to the config file, then the one in the working directory
func EnvFiles() []string {
	var files []string
	if dir, err := os.UserConfigDir(); err == nil {
		files = append(files, filepath.Join(dir, "translate", ".env"))
	}
	return append(files, ".env")
}

// LoadEnv loads the given .env files. Variables already set in the process
// environment are never overridden and missing files are skipped.
func LoadEnv(files ...string) ([]string, error) {
	var loaded []string
	for _, file := range files {
		err := godotenv.Load(file)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return loaded, fmt.Errorf("failed to load %s: %w", file, err)
		}
		loaded = append(loaded, file)
	}
	return loaded, nil
}
