package translation

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-viper/mapstructure/v2"
)

// Options holds provider configuration as option key to value. A key that is
// missing or maps to nil carries no opinion and never overrides another value.
type Options map[string]any

// NormalizeKey maps the spellings used by flags ("project-id"), JSON
// ("projectId") and environment-style names ("project_id") to one key.
func NormalizeKey(key string) string {
	key = strings.ToLower(strings.TrimSpace(key))
	return strings.NewReplacer("-", "", "_", "").Replace(key)
}

// Normalized returns a copy of o with every key normalized. Nil values are
// dropped. When several spellings collide, a key that is already normalized
// wins, otherwise the spelling that sorts first.
func (o Options) Normalized() Options {
	keys := make([]string, 0, len(o))
	for k := range o {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make(Options, len(o))
	exact := make(map[string]bool, len(o))
	for _, k := range keys {
		v := o[k]
		if v == nil {
			continue
		}
		nk := NormalizeKey(k)
		if _, seen := out[nk]; seen && (exact[nk] || k != nk) {
			continue
		}
		out[nk] = v
		exact[nk] = k == nk
	}
	return out
}

// Clone returns a shallow copy of o
func (o Options) Clone() Options {
	out := make(Options, len(o))
	for k, v := range o {
		out[k] = v
	}
	return out
}

// Has reports whether key is present with a non-nil value
func (o Options) Has(key string) bool {
	v, ok := o[NormalizeKey(key)]
	return ok && v != nil
}

// decodeOptions decodes opts into a provider's typed config. Struct fields are
// matched through their `option` tag, which must be a normalized key.
func decodeOptions(opts Options, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		TagName:          "option",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	if err := decoder.Decode(map[string]any(opts.Normalized())); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}
	return nil
}
