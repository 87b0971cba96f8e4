// Package cmd implements the CLI commands using Cobra.
package cmd

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"smugembed/internal/config"
	"smugembed/internal/formatter"
	"smugembed/internal/media"
	"smugembed/internal/smugmug"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Global flags
var (
	flagFile        string
	flagWidth       string
	flagSourceField string
	flagJSON        bool
	flagDebug       bool
)

// cfg holds the loaded configuration (merged: defaults < config file < flags).
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "smugembed",
	Short: "Resolve, validate and render SmugMug gallery embeds",
	Long: `smugembed checks SmugMug gallery URLs and iframe embed codes the way the
media type does, and renders the iframe markup stored values produce.

Input is taken from the arguments, from --file, or from stdin.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
}

// errReported marks failures whose verdict was already printed.
var errReported = errors.New("reported")

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagFile, "file", "f", "", "Read input from file (- for stdin)")
	rootCmd.PersistentFlags().StringVar(&flagWidth, "width", "", "iframe width, e.g. 100% or 640px")
	rootCmd.PersistentFlags().StringVar(&flagSourceField, "source-field", "", "Record field holding the embed code")
	rootCmd.PersistentFlags().BoolVarP(&flagJSON, "json", "j", false, "Output results as JSON")
	rootCmd.PersistentFlags().BoolVarP(&flagDebug, "debug", "x", false, "Debug logging to stderr")

	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig loads and merges configuration: defaults < config file < CLI flags.
func loadConfig(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// CLI flags override config file values
	if flagWidth != "" {
		cfg.Width = flagWidth
	}
	if flagSourceField != "" {
		cfg.SourceField = flagSourceField
	}
	if flagDebug {
		cfg.Debug = true
	}

	// Re-validate after flag overrides
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if cfg.Debug {
		log.SetOutput(os.Stderr)
		log.SetPrefix("[smugembed] ")
	} else {
		log.SetOutput(os.Stderr)
		log.SetFlags(0)
	}

	return nil
}

// debugf logs a message if debug mode is enabled.
func debugf(format string, args ...interface{}) {
	if cfg != nil && cfg.Debug {
		log.Printf(format, args...)
	}
}

// newMediaType builds the SmugMug media type from the loaded configuration.
func newMediaType() *smugmug.Type {
	return smugmug.New(smugmug.Options{
		SourceField: cfg.SourceField,
		Width:       cfg.Width,
		IconBase:    cfg.IconBase,
	})
}

// newFormatter builds a formatter over a registry holding the SmugMug type.
func newFormatter(typ *smugmug.Type) (*formatter.Formatter, error) {
	registry, err := media.NewRegistry(typ)
	if err != nil {
		return nil, fmt.Errorf("registering media types: %w", err)
	}
	return formatter.New(registry), nil
}

// newRecord wraps a raw input value in a SmugMug media record.
func newRecord(id, value string) media.Record {
	return media.Record{
		ID:     id,
		Bundle: smugmug.TypeID,
		Fields: map[string][]string{cfg.SourceField: {value}},
	}
}
