package translation

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"google.golang.org/genai"
)

const (
	geminiTokenEnv     = "GEMINI_API_KEY"
	geminiDefaultModel = "gemini-2.0-flash"
)

// GeminiConfig holds the options understood by the Gemini provider
type GeminiConfig struct {
	Token          string `option:"token"`
	SourceLanguage string `option:"sourcelanguage"`
	TargetLanguage string `option:"targetlanguage"`
	Model          string `option:"model"`
	SystemMessage  string `option:"systemmessage"`
}

// GeminiProvider translates text with the Gemini generate content API
type GeminiProvider struct {
	config ClientConfig
}

// NewGeminiProvider creates a Gemini provider
func NewGeminiProvider(cfg ClientConfig) *GeminiProvider {
	return &GeminiProvider{config: cfg}
}

// Name returns the provider name
func (p *GeminiProvider) Name() Name {
	return Gemini
}

func (p *GeminiProvider) options() *optionSet {
	set := newOptionSet(Gemini)
	set.String("token", "Gemini API key.")
	set.String("source-language", "Source language.")
	set.String("target-language", "Target language.")
	set.String("system-message", "System instruction.")
	set.String("model", "Model (default "+geminiDefaultModel+").")
	return set
}

// ParseOptions extracts the Gemini flags from args
func (p *GeminiProvider) ParseOptions(args []string) (Options, error) {
	return p.options().parse(args)
}

// Usage describes the Gemini flags
func (p *GeminiProvider) Usage() string {
	return p.options().Usage()
}

// OptionFlags returns the flag definitions without parsing anything
func (p *GeminiProvider) OptionFlags() *pflag.FlagSet {
	return p.options().fs
}

// Translate asks the model to translate text under a system instruction
func (p *GeminiProvider) Translate(ctx context.Context, text string, opts Options) (string, error) {
	var cfg GeminiConfig
	if err := decodeOptions(opts, &cfg); err != nil {
		return "", &TranslationError{Provider: Gemini, Message: err.Error(), Err: err}
	}
	if cfg.Token == "" {
		cfg.Token = os.Getenv(geminiTokenEnv)
	}
	if cfg.Token == "" {
		return "", newTranslationError(Gemini, "gemini: token is required (use --token, the config file or %s)", geminiTokenEnv)
	}

	model := cfg.Model
	if model == "" {
		model = geminiDefaultModel
	}
	system := cfg.SystemMessage
	if system == "" {
		system = defaultSystemMessage(cfg.SourceLanguage, cfg.TargetLanguage)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      cfg.Token,
		Backend:     genai.BackendGeminiAPI,
		HTTPClient:  p.config.httpClient(),
		HTTPOptions: genai.HTTPOptions{BaseURL: p.config.endpoint(Gemini)},
	})
	if err != nil {
		return "", newTranslationError(Gemini, "gemini: failed to create client: %w", err)
	}

	zerolog.Ctx(ctx).Debug().
		Str("provider", string(Gemini)).
		Str("model", model).
		Str("system", system).
		Msg("generating content")

	resp, err := client.Models.GenerateContent(ctx, model, genai.Text(text), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
	})
	if err != nil {
		return "", &TranslationError{Provider: Gemini, Message: geminiErrorMessage(err), Err: err}
	}
	return resp.Text(), nil
}

// geminiErrorMessage formats genai errors as "<code>: <message>"
func geminiErrorMessage(err error) string {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return fmt.Sprintf("%d: %s", apiErr.Code, apiErr.Message)
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) {
		return fmt.Sprintf("%d: %s", apiErrPtr.Code, apiErrPtr.Message)
	}
	return "gemini: request failed: " + err.Error()
}
