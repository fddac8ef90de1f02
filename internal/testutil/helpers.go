package testutil

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
)

// ConfigPath is where tests place the persisted config file
const ConfigPath = "/home/test/.config/translate/config.json"

// NewConfigFs returns an in-memory filesystem. If content is not empty it is
// written to ConfigPath.
func NewConfigFs(t *testing.T, content string) afero.Fs {
	t.Helper()

	fs := afero.NewMemMapFs()
	if content != "" {
		CreateTestFile(t, fs, ConfigPath, []byte(content))
	}
	return fs
}

// CreateTestFile creates a test file with content
func CreateTestFile(t *testing.T, fs afero.Fs, path string, content []byte) {
	t.Helper()

	if err := fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create directory for test file: %v", err)
	}
	if err := afero.WriteFile(fs, path, content, 0644); err != nil {
		t.Fatalf("Failed to create test file %s: %v", path, err)
	}
}

// AssertFileNotExists checks if a file does not exist
func AssertFileNotExists(t *testing.T, fs afero.Fs, path string) {
	t.Helper()

	if exists, _ := afero.Exists(fs, path); exists {
		t.Errorf("Expected file to not exist: %s", path)
	}
}

// AssertFileContent checks if a file has expected content
func AssertFileContent(t *testing.T, fs afero.Fs, path string, expected []byte) {
	t.Helper()

	actual, err := afero.ReadFile(fs, path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	if !bytes.Equal(actual, expected) {
		t.Errorf("File content mismatch in %s\nExpected: %q\nActual: %q", path, expected, actual)
	}
}

// Output collects what a command writes to stdout and stderr
type Output struct {
	Stdout bytes.Buffer
	Stderr bytes.Buffer
}

// AssertStderrContains checks that stderr contains substring
func (o *Output) AssertStderrContains(t *testing.T, substring string) {
	t.Helper()

	if !strings.Contains(o.Stderr.String(), substring) {
		t.Errorf("stderr does not contain %q:\n%s", substring, o.Stderr.String())
	}
}
