package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/joshuapare/modfloat/internal/config"
	"github.com/joshuapare/modfloat/internal/logger"
)

var (
	// Global flags
	configPath string
	verbose    bool
	quiet      bool
	jsonOut    bool
	noColor    bool
	logLevel   string

	// cfg is loaded before every subcommand runs.
	cfg = config.Default()
)

var rootCmd = &cobra.Command{
	Use:   "jplot",
	Short: "Evaluate and tabulate the modular j-invariant at 256-bit precision",
	Long: `jplot computes the q-expansion of Klein's j-invariant with a 256-bit
binary float engine, evaluates j at arbitrary points of the upper half plane,
and writes plot files covering the fundamental domain.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (.toml, .yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored log output")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
}

func setup(cmd *cobra.Command, _ []string) error {
	loaded, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if logLevel != "" {
		loaded.Log.Level = logLevel
	}
	if verbose && logLevel == "" {
		loaded.Log.Level = "debug"
	}
	if err := loaded.Validate(); err != nil {
		return err
	}
	cfg = loaded

	return logger.Init(logger.Options{
		Enabled: verbose || logLevel != "",
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Output:  cmd.ErrOrStderr(),
		NoColor: noColor,
	})
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Helper functions for output

var numbers = message.NewPrinter(language.English)

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...any) {
	if !quiet {
		numbers.Fprintf(os.Stdout, format, args...)
	}
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...any) {
	if verbose && !quiet {
		numbers.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
