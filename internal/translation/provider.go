package translation

import "context"

// Name identifies a translation provider
type Name string

// Known provider names
const (
	Codic   Name = "codic"
	ChatGPT Name = "chatgpt"
	DeepL   Name = "deepl"
	Gemini  Name = "gemini"
)

// names is the closed enumeration of providers, in help-text order
var names = []Name{Codic, ChatGPT, DeepL, Gemini}

// Names returns every known provider name in a stable order
func Names() []Name {
	out := make([]Name, len(names))
	copy(out, names)
	return out
}

// ParseName reports whether raw is a known provider name. Names are matched
// exactly: "Codic" or " codic" are not provider names.
func ParseName(raw string) (Name, bool) {
	candidate := Name(raw)
	for _, name := range names {
		if name == candidate {
			return name, true
		}
	}
	return candidate, false
}

// Provider defines the interface every translation backend implements
type Provider interface {
	// Name returns the provider name
	Name() Name

	// ParseOptions extracts this provider's flags from the complete argument
	// vector. Flags owned by other providers or the root command are ignored.
	// Only explicitly supplied flags appear in the result.
	ParseOptions(args []string) (Options, error)

	// Translate translates text using the merged provider options
	Translate(ctx context.Context, text string, opts Options) (string, error)
}
