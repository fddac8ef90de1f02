package translation

import (
	"errors"
	"reflect"
	"testing"
)

func TestParseOptions(t *testing.T) {
	registry := NewRegistry(ClientConfig{})

	tests := []struct {
		name     string
		provider Name
		args     []string
		want     Options
	}{
		{
			name:     "codic token only",
			provider: Codic,
			args:     []string{"hi", "--provider", "codic", "--token", "T2"},
			want:     Options{"token": "T2"},
		},
		{
			name:     "codic casing alias",
			provider: Codic,
			args:     []string{"こんにちは", "--casing", "lower_underscore", "--acronym-style=literal"},
			want:     Options{"casing": "lower underscore", "acronymstyle": "literal"},
		},
		{
			name:     "nothing supplied",
			provider: Codic,
			args:     []string{"hi"},
			want:     Options{},
		},
		{
			name:     "deepl ignores flags of other providers",
			provider: DeepL,
			args:     []string{"hi", "-p", "deepl", "--casing", "camel", "-t", "ja", "--model", "gpt-4"},
			want:     Options{"targetlang": "JA"},
		},
		{
			name:     "deepl long flags",
			provider: DeepL,
			args:     []string{"--source-lang=en", "hello", "--target-lang", "de", "--formality", "More"},
			want:     Options{"sourcelang": "EN", "targetlang": "DE", "formality": "more"},
		},
		{
			name:     "chatgpt options",
			provider: ChatGPT,
			args:     []string{"hi", "--verbose", "--target-language", "French", "--model", "gpt-4"},
			want:     Options{"targetlanguage": "French", "model": "gpt-4"},
		},
		{
			name:     "gemini system message",
			provider: Gemini,
			args:     []string{"hi", "--system-message", "Be terse.", "--token", "G"},
			want:     Options{"systemmessage": "Be terse.", "token": "G"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider, err := registry.Resolve(tt.provider)
			if err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}
			got, err := provider.ParseOptions(tt.args)
			if err != nil {
				t.Fatalf("ParseOptions() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseOptions() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseOptionsRejectsInvalidEnum(t *testing.T) {
	tests := []struct {
		name     string
		provider Provider
		args     []string
	}{
		{"codic casing", NewCodicProvider(ClientConfig{}), []string{"hi", "--casing", "snake"}},
		{"codic acronym style", NewCodicProvider(ClientConfig{}), []string{"hi", "--acronym-style", "shout"}},
		{"deepl target", NewDeepLProvider(ClientConfig{}), []string{"hi", "-t", "XX"}},
		{"chatgpt model", NewChatGPTProvider(ClientConfig{}), []string{"hi", "--model", "gpt-2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.provider.ParseOptions(tt.args)
			if err == nil {
				t.Fatal("ParseOptions() expected error")
			}
			var parseErr *OptionParseError
			if !errors.As(err, &parseErr) {
				t.Fatalf("ParseOptions() error = %T, want *OptionParseError", err)
			}
			if parseErr.Provider != tt.provider.Name() {
				t.Errorf("OptionParseError.Provider = %s, want %s", parseErr.Provider, tt.provider.Name())
			}
		})
	}
}

func TestParseOptionsIgnoresHelp(t *testing.T) {
	got, err := NewCodicProvider(ClientConfig{}).ParseOptions([]string{"--help", "--token", "T"})
	if err != nil {
		t.Fatalf("ParseOptions() error = %v", err)
	}
	if !reflect.DeepEqual(got, Options{"token": "T"}) {
		t.Errorf("ParseOptions() = %v", got)
	}
}
