package translation

import (
	"context"
	"encoding/json"
	"os"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
)

const (
	deepLFreeAPIURL    = "https://api-free.deepl.com"
	deepLProAPIURL     = "https://api.deepl.com"
	deepLTranslatePath = "/v2/translate"
	deepLTokenEnv      = "DEEPL_AUTH_KEY"
	deepLDefaultTarget = "EN-US"
)

var deepLSourceLangs = []string{
	"BG", "CS", "DA", "DE", "EL", "EN", "ES", "ET", "FI", "FR",
	"HU", "ID", "IT", "JA", "KO", "LT", "LV", "NB", "NL", "PL",
	"PT", "RO", "RU", "SK", "SL", "SV", "TR", "UK", "ZH",
}

var deepLTargetLangs = []string{
	"BG", "CS", "DA", "DE", "EL", "EN", "EN-GB", "EN-US", "ES", "ET",
	"FI", "FR", "HU", "ID", "IT", "JA", "KO", "LT", "LV", "NB",
	"NL", "PL", "PT", "PT-BR", "PT-PT", "RO", "RU", "SK", "SL", "SV",
	"TR", "UK", "ZH",
}

var deepLFormalities = []string{"default", "more", "less", "prefer_more", "prefer_less"}

// DeepLConfig holds the options understood by the DeepL provider
type DeepLConfig struct {
	Token      string `option:"token"`
	SourceLang string `option:"sourcelang"`
	TargetLang string `option:"targetlang"`
	Formality  string `option:"formality"`
	GlossaryID string `option:"glossaryid"`
}

type deepLResponse struct {
	Translations []struct {
		DetectedSourceLanguage string `json:"detected_source_language"`
		Text                   string `json:"text"`
	} `json:"translations"`
}

// DeepLProvider translates text with the DeepL v2 API
type DeepLProvider struct {
	config ClientConfig
	client *resty.Client
}

// NewDeepLProvider creates a DeepL provider
func NewDeepLProvider(cfg ClientConfig) *DeepLProvider {
	return &DeepLProvider{
		config: cfg,
		client: resty.New().SetTimeout(cfg.timeout()),
	}
}

// Name returns the provider name
func (p *DeepLProvider) Name() Name {
	return DeepL
}

func (p *DeepLProvider) options() *optionSet {
	set := newOptionSet(DeepL)
	set.String("token", "DeepL API token.")
	set.Enum("source-lang", "s", deepLSourceLangs, strings.ToUpper, "Language of the text to be translated.")
	set.Enum("target-lang", "t", deepLTargetLangs, strings.ToUpper, "Language into which the text should be translated.")
	set.Enum("formality", "", deepLFormalities, strings.ToLower, "Formality of the translation.")
	set.String("glossary-id", "Glossary to use for the translation.")
	return set
}

// ParseOptions extracts the DeepL flags from args
func (p *DeepLProvider) ParseOptions(args []string) (Options, error) {
	return p.options().parse(args)
}

// Usage describes the DeepL flags
func (p *DeepLProvider) Usage() string {
	return p.options().Usage()
}

// OptionFlags returns the flag definitions without parsing anything
func (p *DeepLProvider) OptionFlags() *pflag.FlagSet {
	return p.options().fs
}

// baseURL picks the free or pro API host from the key suffix unless an
// endpoint override is configured
func (p *DeepLProvider) baseURL(token string) string {
	if base := p.config.endpoint(DeepL); base != "" {
		return base
	}
	if strings.HasSuffix(token, ":fx") {
		return deepLFreeAPIURL
	}
	return deepLProAPIURL
}

// Translate posts text to DeepL and joins every returned translation
func (p *DeepLProvider) Translate(ctx context.Context, text string, opts Options) (string, error) {
	var cfg DeepLConfig
	if err := decodeOptions(opts, &cfg); err != nil {
		return "", &TranslationError{Provider: DeepL, Message: err.Error(), Err: err}
	}
	if cfg.Token == "" {
		cfg.Token = os.Getenv(deepLTokenEnv)
	}
	if cfg.Token == "" {
		return "", newTranslationError(DeepL, "deepl: token is required (use --token, the config file or %s)", deepLTokenEnv)
	}

	form := map[string]string{
		"text":        text,
		"target_lang": deepLDefaultTarget,
	}
	if cfg.SourceLang != "" {
		form["source_lang"] = strings.ToUpper(cfg.SourceLang)
	}
	if cfg.TargetLang != "" {
		form["target_lang"] = strings.ToUpper(cfg.TargetLang)
	}
	if cfg.Formality != "" {
		form["formality"] = cfg.Formality
	}
	if cfg.GlossaryID != "" {
		form["glossary_id"] = cfg.GlossaryID
	}

	url := p.baseURL(cfg.Token) + deepLTranslatePath
	zerolog.Ctx(ctx).Debug().
		Str("provider", string(DeepL)).
		Str("url", url).
		Interface("form", redact(form, "text")).
		Msg("sending translate request")

	resp, err := p.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "DeepL-Auth-Key "+cfg.Token).
		SetFormData(form).
		Post(url)
	if err != nil {
		return "", newTranslationError(DeepL, "deepl: request failed: %w", err)
	}

	body := resp.Body()
	if resp.IsError() {
		msg := statusMessage(resp.StatusCode(), body)
		if vendorMsg := vendorErrorMessage(body); vendorMsg != "" {
			msg = statusMessage(resp.StatusCode(), []byte(vendorMsg))
		}
		return "", &TranslationError{Provider: DeepL, Message: msg}
	}

	var parsed deepLResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", newTranslationError(DeepL, "deepl: failed to decode response: %w", err)
	}

	lines := make([]string, 0, len(parsed.Translations))
	for _, t := range parsed.Translations {
		lines = append(lines, t.Text)
	}
	return strings.Join(lines, "\n"), nil
}
