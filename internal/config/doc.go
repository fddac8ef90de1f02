// Package config loads the persisted JSON configuration of translate and
// resolves the effective provider and its options for one run. Values given
// on the command line always win over persisted values.
package config
