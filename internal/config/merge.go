package config

import "codeberg.org/snonux/translate/internal/translation"

// Merge overlays overrides on persisted. Keys that are missing from overrides
// or set to nil keep the persisted value. Neither input is modified.
func Merge(persisted, overrides translation.Options) translation.Options {
	merged := persisted.Normalized()
	for key, value := range overrides.Normalized() {
		merged[key] = value
	}
	return merged
}
