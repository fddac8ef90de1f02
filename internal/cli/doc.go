// Package cli provides command-line interface setup and configuration
// for the translate application. It handles flag parsing, command
// creation, environment settings and the mapping of errors to exit codes
// using cobra, envconfig and godotenv.
package cli
