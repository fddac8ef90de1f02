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
	codicAPIURL        = "https://api.codic.jp"
	codicTranslatePath = "/v1/engine/translate.json"
	codicTokenEnv      = "CODIC_TOKEN"
)

var codicCasings = []string{
	"camel",
	"pascal",
	"lower underscore",
	"upper underscore",
	"hyphen",
}

var codicAcronymStyles = []string{
	"MS naming guidelines",
	"camel strict",
	"literal",
}

// CodicConfig holds the options understood by the Codic engine
type CodicConfig struct {
	Token        string `option:"token"`
	ProjectID    string `option:"projectid"`
	Casing       string `option:"casing"`
	AcronymStyle string `option:"acronymstyle"`
}

// codicTranslation is one entry of the translate.json response array
type codicTranslation struct {
	Successful     bool   `json:"successful"`
	Text           string `json:"text"`
	TranslatedText string `json:"translated_text"`
}

// CodicProvider translates Japanese into identifiers via the Codic API
type CodicProvider struct {
	client *resty.Client
}

// NewCodicProvider creates a Codic provider
func NewCodicProvider(cfg ClientConfig) *CodicProvider {
	baseURL := cfg.endpoint(Codic)
	if baseURL == "" {
		baseURL = codicAPIURL
	}
	return &CodicProvider{
		client: resty.New().SetTimeout(cfg.timeout()).SetBaseURL(baseURL),
	}
}

// Name returns the provider name
func (p *CodicProvider) Name() Name {
	return Codic
}

func (p *CodicProvider) options() *optionSet {
	set := newOptionSet(Codic)
	set.String("token", "Codic API token.")
	set.String("project-id", "Codic project (dictionary) ID.")
	set.Enum("casing", "", codicCasings, normalizeCodicCasing, "Casing.")
	set.Enum("acronym-style", "", codicAcronymStyles, nil, "Acronym style.")
	return set
}

// ParseOptions extracts the Codic flags from args
func (p *CodicProvider) ParseOptions(args []string) (Options, error) {
	return p.options().parse(args)
}

// Usage describes the Codic flags
func (p *CodicProvider) Usage() string {
	return p.options().Usage()
}

// OptionFlags returns the flag definitions without parsing anything
func (p *CodicProvider) OptionFlags() *pflag.FlagSet {
	return p.options().fs
}

// Translate converts text with the Codic engine and joins every result line
func (p *CodicProvider) Translate(ctx context.Context, text string, opts Options) (string, error) {
	var cfg CodicConfig
	if err := decodeOptions(opts, &cfg); err != nil {
		return "", &TranslationError{Provider: Codic, Message: err.Error(), Err: err}
	}
	if cfg.Token == "" {
		cfg.Token = os.Getenv(codicTokenEnv)
	}
	if cfg.Token == "" {
		return "", newTranslationError(Codic, "codic: token is required (use --token, the config file or %s)", codicTokenEnv)
	}

	params := map[string]string{"text": text}
	if cfg.ProjectID != "" {
		params["project_id"] = cfg.ProjectID
	}
	if cfg.Casing != "" {
		params["casing"] = normalizeCodicCasing(cfg.Casing)
	}
	if cfg.AcronymStyle != "" {
		params["acronym_style"] = cfg.AcronymStyle
	}

	zerolog.Ctx(ctx).Debug().
		Str("provider", string(Codic)).
		Interface("params", redact(params, "text")).
		Msg("sending translate request")

	resp, err := p.client.R().
		SetContext(ctx).
		SetAuthToken(cfg.Token).
		SetQueryParams(params).
		Get(codicTranslatePath)
	if err != nil {
		return "", newTranslationError(Codic, "codic: request failed: %w", err)
	}

	body := resp.Body()
	if resp.IsError() {
		msg := vendorErrorMessage(body)
		if msg == "" {
			msg = statusMessage(resp.StatusCode(), body)
		}
		return "", &TranslationError{Provider: Codic, Message: msg}
	}

	var results []codicTranslation
	if err := json.Unmarshal(body, &results); err != nil {
		// some failures arrive with a success status and an error object
		if msg := vendorErrorMessage(body); msg != "" {
			return "", &TranslationError{Provider: Codic, Message: msg}
		}
		return "", newTranslationError(Codic, "codic: failed to decode response: %w", err)
	}

	lines := make([]string, 0, len(results))
	for _, r := range results {
		lines = append(lines, r.TranslatedText)
	}
	return strings.Join(lines, "\n"), nil
}

// normalizeCodicCasing accepts "lower_underscore" for "lower underscore"
func normalizeCodicCasing(raw string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(raw)), "_", " ")
}

// redact returns params without the given keys, for logging
func redact(params map[string]string, keys ...string) map[string]string {
	out := make(map[string]string, len(params))
	for k, v := range params {
		out[k] = v
	}
	for _, k := range keys {
		delete(out, k)
	}
	return out
}
