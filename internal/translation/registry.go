package translation

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/spf13/pflag"
)

// DefaultTimeout bounds a single vendor call when no timeout is configured
const DefaultTimeout = 30 * time.Second

// ClientConfig holds the settings shared by every backend's HTTP client
type ClientConfig struct {
	// Timeout bounds one vendor call; zero means DefaultTimeout
	Timeout time.Duration

	// Endpoints overrides the vendor base URL per provider
	Endpoints map[Name]string
}

func (c ClientConfig) timeout() time.Duration {
	if c.Timeout <= 0 {
		return DefaultTimeout
	}
	return c.Timeout
}

func (c ClientConfig) endpoint(name Name) string {
	return strings.TrimRight(c.Endpoints[name], "/")
}

func (c ClientConfig) httpClient() *http.Client {
	return &http.Client{Timeout: c.timeout()}
}

// OptionDescriber is implemented by providers that can describe their flags
type OptionDescriber interface {
	Usage() string
	OptionFlags() *pflag.FlagSet
}

// constructors maps every enumerated name to exactly one backend
var constructors = map[Name]func(ClientConfig) Provider{
	Codic:   func(c ClientConfig) Provider { return NewCodicProvider(c) },
	ChatGPT: func(c ClientConfig) Provider { return NewChatGPTProvider(c) },
	DeepL:   func(c ClientConfig) Provider { return NewDeepLProvider(c) },
	Gemini:  func(c ClientConfig) Provider { return NewGeminiProvider(c) },
}

// Registry creates provider instances by name
type Registry struct {
	config ClientConfig
}

// NewRegistry creates a registry whose providers share cfg
func NewRegistry(cfg ClientConfig) *Registry {
	return &Registry{config: cfg}
}

// Resolve creates a fresh provider for name
func (r *Registry) Resolve(name Name) (Provider, error) {
	construct, ok := constructors[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownProvider, string(name), joinNames(Names()))
	}
	return construct(r.config), nil
}

// Names returns the provider names this registry can resolve
func (r *Registry) Names() []Name {
	return Names()
}

func joinNames(list []Name) string {
	parts := make([]string, len(list))
	for i, n := range list {
		parts[i] = string(n)
	}
	return strings.Join(parts, ", ")
}
