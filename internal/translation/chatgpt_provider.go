package translation

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/sashabaranov/go-openai"
	"github.com/spf13/pflag"
)

const chatGPTTokenEnv = "OPENAI_API_KEY"

var chatGPTModels = []string{
	openai.GPT3Dot5Turbo,
	openai.GPT4,
	openai.GPT4o,
	openai.GPT4oMini,
}

// ChatGPTConfig holds the options understood by the ChatGPT provider
type ChatGPTConfig struct {
	Token          string `option:"token"`
	SourceLanguage string `option:"sourcelanguage"`
	TargetLanguage string `option:"targetlanguage"`
	Model          string `option:"model"`
	SystemMessage  string `option:"systemmessage"`
}

// ChatGPTProvider translates text with an OpenAI chat completion
type ChatGPTProvider struct {
	config ClientConfig
}

// NewChatGPTProvider creates a ChatGPT provider
func NewChatGPTProvider(cfg ClientConfig) *ChatGPTProvider {
	return &ChatGPTProvider{config: cfg}
}

// Name returns the provider name
func (p *ChatGPTProvider) Name() Name {
	return ChatGPT
}

func (p *ChatGPTProvider) options() *optionSet {
	set := newOptionSet(ChatGPT)
	set.String("token", "OpenAI API token.")
	set.String("source-language", "Source language.")
	set.String("target-language", "Target language.")
	set.String("system-message", "System message.")
	set.Enum("model", "", chatGPTModels, nil, "Model.")
	return set
}

// ParseOptions extracts the ChatGPT flags from args
func (p *ChatGPTProvider) ParseOptions(args []string) (Options, error) {
	return p.options().parse(args)
}

// Usage describes the ChatGPT flags
func (p *ChatGPTProvider) Usage() string {
	return p.options().Usage()
}

// OptionFlags returns the flag definitions without parsing anything
func (p *ChatGPTProvider) OptionFlags() *pflag.FlagSet {
	return p.options().fs
}

// Translate sends text as the user message of a chat completion
func (p *ChatGPTProvider) Translate(ctx context.Context, text string, opts Options) (string, error) {
	var cfg ChatGPTConfig
	if err := decodeOptions(opts, &cfg); err != nil {
		return "", &TranslationError{Provider: ChatGPT, Message: err.Error(), Err: err}
	}
	if cfg.Token == "" {
		cfg.Token = os.Getenv(chatGPTTokenEnv)
	}
	if cfg.Token == "" {
		return "", newTranslationError(ChatGPT, "chatgpt: token is required (use --token, the config file or %s)", chatGPTTokenEnv)
	}

	model := cfg.Model
	if model == "" {
		model = openai.GPT3Dot5Turbo
	}
	system := cfg.SystemMessage
	if system == "" {
		system = defaultSystemMessage(cfg.SourceLanguage, cfg.TargetLanguage)
	}

	clientConfig := openai.DefaultConfig(cfg.Token)
	clientConfig.HTTPClient = p.config.httpClient()
	if base := p.config.endpoint(ChatGPT); base != "" {
		clientConfig.BaseURL = base
	}
	client := openai.NewClientWithConfig(clientConfig)

	zerolog.Ctx(ctx).Debug().
		Str("provider", string(ChatGPT)).
		Str("model", model).
		Str("system", system).
		Msg("creating chat completion")

	resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: system,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: text,
			},
		},
	})
	if err != nil {
		return "", &TranslationError{Provider: ChatGPT, Message: openAIErrorMessage(err), Err: err}
	}

	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[len(resp.Choices)-1].Message.Content, nil
}

// openAIErrorMessage formats go-openai errors as "<status>: <message>"
func openAIErrorMessage(err error) string {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return fmt.Sprintf("%d: %s", apiErr.HTTPStatusCode, apiErr.Message)
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		if msg := vendorErrorMessage(reqErr.Body); msg != "" {
			return fmt.Sprintf("%d: %s", reqErr.HTTPStatusCode, msg)
		}
		return fmt.Sprintf("%d: %v", reqErr.HTTPStatusCode, reqErr.Err)
	}
	return "chatgpt: request failed: " + err.Error()
}
