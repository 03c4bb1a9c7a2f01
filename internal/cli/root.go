// Package cli implements the command-line interface.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hightemp/searchpresets/internal/config"
	"github.com/hightemp/searchpresets/internal/logging"
	"github.com/hightemp/searchpresets/internal/presets"
)

var (
	// Version information (set at build time)
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// ExitCode constants
const (
	ExitSuccess      = 0
	ExitFailure      = 1
	ExitInvalidInput = 2
	ExitNotFound     = 4
)

var (
	errInvalidInput = errors.New("invalid input")
	errNotFound     = errors.New("not found")
)

// options holds flag values shared by all commands.
type options struct {
	inputPath   string
	outputPath  string
	configPath  string
	pretty      bool
	verbose     bool
	warnUnknown bool

	cfg    *config.Config
	logger *zap.Logger
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "searchpresets",
		Short: "Extract search engine presets by country as JSON",
		Long: `searchpresets reads the prepopulated search engine source file and emits
the per-locale engine lists and the country fallback mapping as one JSON
document.

Read from stdin, write to stdout:
  searchpresets < prepopulated_engines_by_country.cc > presets.json

Inspect the country mapping:
  searchpresets mapping -i prepopulated_engines_by_country.cc

Resolve the engines a country gets:
  searchpresets resolve CA -i prepopulated_engines_by_country.cc`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExtract(cmd, opts)
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&opts.inputPath, "input", "i", "", "source file to read (default stdin)")
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging to stderr")
	rootCmd.PersistentFlags().BoolVar(&opts.warnUnknown, "warn-unknown", false, "warn about mapping codes that are not ISO-3166 countries")

	// Extract-specific flags
	rootCmd.Flags().StringVarP(&opts.outputPath, "output", "o", "", "file to write (default stdout)")
	rootCmd.Flags().BoolVar(&opts.pretty, "pretty", false, "indent JSON output")

	// Add subcommands
	rootCmd.AddCommand(newMappingCmd(opts))
	rootCmd.AddCommand(newResolveCmd(opts))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// Execute runs the root command and exits with a code matching the error.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		exitWithCode(exitCode(err), fmt.Sprintf("Error: %v", err))
	}
}

// setup loads config, applies explicitly set flags and builds the logger.
func (o *options) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("pretty") {
		cfg.Pretty = o.pretty
	}
	if flags.Changed("warn-unknown") {
		cfg.WarnUnknownCountries = o.warnUnknown
	}

	logger, err := logging.New(cfg.LogLevel, o.verbose)
	if err != nil {
		return err
	}

	o.cfg = cfg
	o.logger = logger
	return nil
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, presets.ErrGrammarMismatch), errors.Is(err, errInvalidInput):
		return ExitInvalidInput
	case errors.Is(err, errNotFound):
		return ExitNotFound
	default:
		return ExitFailure
	}
}

func exitWithCode(code int, msg string) {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(code)
}
