package cli

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"codeberg.org/snonux/translate/internal"
	"codeberg.org/snonux/translate/internal/config"
	"codeberg.org/snonux/translate/internal/logging"
	"codeberg.org/snonux/translate/internal/processor"
	"codeberg.org/snonux/translate/internal/translation"
)

// Env is everything a run needs from the outside world
type Env struct {
	Stdout   io.Writer
	Stderr   io.Writer
	Fs       afero.Fs
	Settings Settings

	// Endpoints overrides the vendor base URLs, empty in production
	Endpoints map[translation.Name]string
}

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "translate <text> [flags] [provider flags]",
		Short: "Translate text with one of several translation providers",
		Long: `translate sends one text to a translation provider and prints the result.

The provider is chosen with --provider or the defaultProvider entry of the
config file. Provider options come from the config file and can be
overridden with the provider flags listed below.

Examples:
  translate こんにちは --provider codic --casing camel
  translate "Hallo Welt" -p deepl -t JA
  translate config                # Print the config file location
  translate providers             # List the available providers

` + providerUsage(),
		Args:    exactlyOneText,
		Version: internal.Version,

		// flags of no provider at all are left to the provider parsers
		FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
		SilenceErrors:      true,
		SilenceUsage:       true,
	}

	setupFlags(rootCmd, flags)
	registerProviderFlags(rootCmd)

	rootCmd.AddCommand(newConfigCommand(flags), newProvidersCommand())

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", flags.CfgFile, "config file (default is $XDG_CONFIG_HOME/translate/config.json)")
	cmd.PersistentFlags().DurationVar(&flags.Timeout, "timeout", flags.Timeout, "Timeout of the provider call")
	cmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Log debug output to stderr")

	// Local flags
	cmd.Flags().StringVarP(&flags.Provider, "provider", "p", "", "Provider: "+strings.Join(nameStrings(), ", "))
	cmd.Flags().BoolVar(&flags.IgnoreErrors, "ignore-errors", flags.IgnoreErrors, "Exit with 0 when the provider reports an error")

	cmd.RegisterFlagCompletionFunc("provider", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return nameStrings(), cobra.ShellCompDirectiveNoFileComp
	})
}

// registerProviderFlags declares every provider flag on cmd as a hidden
// string flag, so the root parser knows which flags take a value and never
// mistakes the text for one. The values are parsed again by the provider.
func registerProviderFlags(cmd *cobra.Command) {
	registry := translation.NewRegistry(translation.ClientConfig{})

	for _, name := range translation.Names() {
		provider, err := registry.Resolve(name)
		if err != nil {
			continue
		}
		describer, ok := provider.(translation.OptionDescriber)
		if !ok {
			continue
		}
		describer.OptionFlags().VisitAll(func(f *pflag.Flag) {
			if f.Name == "help" || lookupFlag(cmd, f.Name) != nil {
				return
			}
			shorthand := f.Shorthand
			if shorthand == "h" || lookupShorthand(cmd, shorthand) != nil {
				shorthand = ""
			}
			cmd.Flags().StringP(f.Name, shorthand, "", f.Usage)
			_ = cmd.Flags().MarkHidden(f.Name)
		})
	}
}

func lookupFlag(cmd *cobra.Command, name string) *pflag.Flag {
	if f := cmd.Flags().Lookup(name); f != nil {
		return f
	}
	return cmd.PersistentFlags().Lookup(name)
}

func lookupShorthand(cmd *cobra.Command, shorthand string) *pflag.Flag {
	if shorthand == "" {
		return nil
	}
	if f := cmd.Flags().ShorthandLookup(shorthand); f != nil {
		return f
	}
	return cmd.PersistentFlags().ShorthandLookup(shorthand)
}

func newConfigCommand(flags *Flags) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the location of the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configPath(flags)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}

func newProvidersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "providers",
		Short: "List the available providers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range translation.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

func exactlyOneText(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return &ExitError{
			Code:    ExitUsage,
			Message: fmt.Sprintf("expected exactly one text argument, got %d (see --help)", len(args)),
		}
	}
	return nil
}

// Execute runs translate with args and returns the process exit code.
// Errors are printed to env.Stderr; only the translation goes to env.Stdout.
func Execute(ctx context.Context, args []string, env Env) int {
	flags := NewFlags(env.Settings)
	rootCmd := CreateRootCommand(flags)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(env.Stdout)
	rootCmd.SetErr(env.Stderr)

	rootCmd.RunE = func(cmd *cobra.Command, positional []string) error {
		return runTranslate(cmd, positional[0], args, flags, env)
	}

	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return ExitOK
	}

	fmt.Fprintln(env.Stderr, errorMessage(err))
	code := ExitCode(err)
	if code == ExitTranslation && flags.IgnoreErrors {
		return ExitOK
	}
	return code
}

func runTranslate(cmd *cobra.Command, text string, args []string, flags *Flags, env Env) error {
	logger, err := logging.New(env.Settings.LogLevel, flags.Verbose, env.Stderr)
	if err != nil {
		return &ExitError{Code: ExitUsage, Message: err.Error()}
	}
	ctx := logger.WithContext(cmd.Context())

	path, err := configPath(flags)
	if err != nil {
		return err
	}
	logger.Debug().Str("config", path).Dur("timeout", flags.Timeout).Msg("starting translation")

	registry := translation.NewRegistry(translation.ClientConfig{
		Timeout:   flags.Timeout,
		Endpoints: env.Endpoints,
	})
	proc := processor.NewProcessor(config.NewStore(env.Fs, path), registry, flags.Timeout)

	result, err := proc.Run(ctx, processor.Request{
		Text:     text,
		Provider: flags.Provider,
		Args:     args,
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), result)
	return nil
}

// configPath returns the absolute config file location: --config or
// TRANSLATE_CONFIG when set, else the per-user default
func configPath(flags *Flags) (string, error) {
	if flags.CfgFile == "" {
		path, err := config.DefaultPath()
		if err != nil {
			return "", &config.ConfigurationError{Err: err}
		}
		return path, nil
	}
	path, err := filepath.Abs(flags.CfgFile)
	if err != nil {
		return "", &config.ConfigurationError{Path: flags.CfgFile, Err: err}
	}
	return path, nil
}

// providerUsage lists the flags of every provider for the help text
func providerUsage() string {
	registry := translation.NewRegistry(translation.ClientConfig{})

	var b strings.Builder
	b.WriteString("Provider flags:")
	for _, name := range registry.Names() {
		provider, err := registry.Resolve(name)
		if err != nil {
			continue
		}
		describer, ok := provider.(translation.OptionDescriber)
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "\n  %s:\n%s", name, indent(describer.Usage(), "  "))
	}
	return b.String()
}

func indent(text, prefix string) string {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}

func nameStrings() []string {
	names := translation.Names()
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = string(n)
	}
	return out
}
