// Package commands implements the CLI commands for skillref.
package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/skillref/internal/config"
	skillreferrors "github.com/thoreinstein/skillref/internal/errors"
	"github.com/thoreinstein/skillref/internal/logging"
)

// version is set at build time via ldflags.
// Default to a development version for local builds.
var version = "0.1.0"

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// cfgFile holds the value of the --config flag.
var cfgFile string

// cfg is the loaded configuration; configLoadErr holds any load failure for
// later reporting.
var (
	cfg           *config.Config
	configLoadErr error
)

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "",
		"log format: text, json")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"path to config file")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("skillref version {{.Version}}\n")

	// Silence errors and usage so we can control error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initConfig() {
	config.Init()
	cfg, configLoadErr = config.Load(cfgFile)
}

var rootCmd = &cobra.Command{
	Use:   "skillref",
	Short: "Validate, inspect, and package Agent Skills",
	Long: `skillref works with Agent Skills: named, described units of agent
capability declared as markdown documents with YAML-style frontmatter.

It validates skill metadata against the skill schema, extracts the declared
properties, and assembles the XML prompt block that advertises a skill to an
agent. Input can be a skill directory (containing SKILL.md), a markdown file,
or standard input.`,
	Example: `  # Validate a skill directory (directory checks included)
  skillref validate ./skills/pdf-tools

  # Validate inline text from stdin
  cat SKILL.md | skillref validate -

  # Read the declared properties as JSON
  skillref properties ./skills/pdf-tools --output json

  # Build the agent prompt block
  skillref prompt ./skills/pdf-tools`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if err := setupLogging(cmd); err != nil {
			return err
		}
		if configLoadErr != nil {
			return skillreferrors.NewUserError(configLoadErr, "Check your skillref config file")
		}
		return nil
	},
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return skillreferrors.NewUserError(nil, "cannot use --quiet and --verbose together")
	}

	if quiet {
		slog.SetDefault(logging.NewDiscard())
		return nil
	}

	format := logging.Format(logFormat)
	if logFormat == "" {
		format = logging.FormatText
		if cfg != nil {
			format = logging.Format(cfg.LogFormat)
		}
	}

	logger := logging.New(logging.Config{
		Level:  logging.LevelFromVerbosity(verbosity),
		Format: format,
		Output: cmd.ErrOrStderr(),
	})
	slog.SetDefault(logger)
	return nil
}

// maxContentSize returns the configured input size limit in bytes.
func maxContentSize() int {
	if cfg != nil {
		return cfg.MaxContentSize
	}
	return config.DefaultMaxContentSize
}

// outputFormatDefault returns the configured default output format.
func outputFormatDefault() string {
	if cfg != nil {
		return cfg.OutputFormat
	}
	return "text"
}

// Execute runs the root command. Errors are printed to stderr here, except
// validation failures, which have already been reported.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, skillreferrors.ErrValidationFailed) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		var exitErr *skillreferrors.ExitError
		if errors.As(err, &exitErr) && exitErr.Suggestion != "" {
			fmt.Fprintf(os.Stderr, "Suggestion: %s\n", exitErr.Suggestion)
		}
	}
	return err
}
