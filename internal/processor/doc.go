// Package processor runs one translation: it resolves the provider and its
// options from the persisted config and the raw arguments, then invokes the
// provider. Printing the result is left to the caller.
package processor
