package processor

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"codeberg.org/snonux/translate/internal/config"
	"codeberg.org/snonux/translate/internal/translation"
)

// ErrEmptyText is returned when the text to translate is blank
var ErrEmptyText = errors.New("text to translate must not be empty")

// Loader provides the persisted config, read once per run
type Loader interface {
	Load() (config.Persisted, error)
}

// Resolver creates a provider by name
type Resolver interface {
	Resolve(name translation.Name) (translation.Provider, error)
}

// Request is one parsed invocation
type Request struct {
	Text string

	// Provider is the --provider flag, empty when not given
	Provider string

	// Args is the raw argument vector. Every provider sees all of it and
	// picks its own flags.
	Args []string
}

// Processor dispatches a request to the selected provider
type Processor struct {
	loader   Loader
	resolver Resolver
	timeout  time.Duration
}

// NewProcessor creates a processor. A timeout of zero leaves the call bounded
// only by the provider's own HTTP client.
func NewProcessor(loader Loader, resolver Resolver, timeout time.Duration) *Processor {
	return &Processor{
		loader:   loader,
		resolver: resolver,
		timeout:  timeout,
	}
}

// Run resolves the provider and its options and translates req.Text.
// Configuration and option errors are returned before any network call.
func (p *Processor) Run(ctx context.Context, req Request) (string, error) {
	if strings.TrimSpace(req.Text) == "" {
		return "", ErrEmptyText
	}
	logger := zerolog.Ctx(ctx)

	persisted, err := p.loader.Load()
	if err != nil {
		return "", err
	}

	name, err := config.ResolveProviderName(req.Provider, persisted)
	if err != nil {
		return "", err
	}
	provider, err := p.resolver.Resolve(name)
	if err != nil {
		return "", &config.ConfigurationError{Err: err}
	}
	logger.Debug().Str("provider", string(name)).Msg("resolved provider")

	opts, err := config.Resolve(persisted, name, provider, req.Args)
	if err != nil {
		return "", err
	}
	logger.Debug().Strs("options", optionKeys(opts)).Msg("resolved options")

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	start := time.Now()
	result, err := provider.Translate(ctx, req.Text, opts)
	if err != nil {
		var trErr *translation.TranslationError
		if !errors.As(err, &trErr) {
			err = &translation.TranslationError{Provider: name, Err: err}
		}
		logger.Debug().Err(err).Dur("elapsed", time.Since(start)).Msg("translation failed")
		return "", err
	}
	logger.Debug().Dur("elapsed", time.Since(start)).Msg("translation finished")
	return result, nil
}

// optionKeys lists the option keys without their values, tokens included
func optionKeys(opts translation.Options) []string {
	keys := make([]string, 0, len(opts))
	for k := range opts {
		keys = append(keys, k)
	}
	return keys
}
