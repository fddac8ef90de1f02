package cli

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadSettings(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		want    Settings
		wantErr bool
	}{
		{
			name: "defaults",
			env:  map[string]string{},
			want: Settings{Timeout: 30 * time.Second, LogLevel: "warn"},
		},
		{
			name: "from environment",
			env: map[string]string{
				"TRANSLATE_CONFIG":        "/etc/translate.json",
				"TRANSLATE_TIMEOUT":       "5s",
				"TRANSLATE_LOG_LEVEL":     "debug",
				"TRANSLATE_IGNORE_ERRORS": "true",
			},
			want: Settings{Config: "/etc/translate.json", Timeout: 5 * time.Second, LogLevel: "debug", IgnoreErrors: true},
		},
		{
			name:    "invalid timeout",
			env:     map[string]string{"TRANSLATE_TIMEOUT": "soon"},
			wantErr: true,
		},
		{
			name:    "negative timeout",
			env:     map[string]string{"TRANSLATE_TIMEOUT": "-1s"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range []string{"TRANSLATE_CONFIG", "TRANSLATE_TIMEOUT", "TRANSLATE_LOG_LEVEL", "TRANSLATE_IGNORE_ERRORS"} {
				t.Setenv(key, "")
				os.Unsetenv(key)
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			got, err := LoadSettings()
			if (err != nil) != tt.wantErr {
				t.Fatalf("LoadSettings() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("LoadSettings() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.env")
	second := filepath.Join(dir, "second.env")
	missing := filepath.Join(dir, "missing.env")

	if err := os.WriteFile(first, []byte("TRANSLATE_TEST_A=first\nTRANSLATE_TEST_B=first\n"), 0600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(second, []byte("TRANSLATE_TEST_B=second\nTRANSLATE_TEST_C=second\n"), 0600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("TRANSLATE_TEST_A", "")
	os.Unsetenv("TRANSLATE_TEST_A")
	t.Setenv("TRANSLATE_TEST_B", "")
	os.Unsetenv("TRANSLATE_TEST_B")
	t.Setenv("TRANSLATE_TEST_C", "process")

	loaded, err := LoadEnv(missing, first, second)
	if err != nil {
		t.Fatalf("LoadEnv() error = %v", err)
	}
	if len(loaded) != 2 || loaded[0] != first || loaded[1] != second {
		t.Errorf("loaded = %v", loaded)
	}

	tests := map[string]string{
		"TRANSLATE_TEST_A": "first",
		"TRANSLATE_TEST_B": "first",
		"TRANSLATE_TEST_C": "process",
	}
	for key, want := range tests {
		if got := os.Getenv(key); got != want {
			t.Errorf("%s = %q, want %q", key, got, want)
		}
	}
}

func TestEnvFiles(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")

	files := EnvFiles()
	want := []string{"/xdg/translate/.env", ".env"}
	if len(files) != len(want) {
		t.Fatalf("EnvFiles() = %v", files)
	}
	for i := range want {
		if files[i] != want[i] {
			t.Errorf("EnvFiles()[%d] = %s, want %s", i, files[i], want[i])
		}
	}
}
