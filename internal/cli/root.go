package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/brandonhippe/Advent-of-Code-Runner/internal/errors"
	"github.com/brandonhippe/Advent-of-Code-Runner/internal/logger"
	"github.com/brandonhippe/Advent-of-Code-Runner/internal/ui"
)

// Global flags available on every command.
var (
	cfgFlag     string
	verboseFlag bool
	noColorFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "aoc",
	Short: "Run Advent of Code solutions and track answers and runtimes",
	Long: `aoc discovers puzzle solutions across languages, runs them against
cached inputs, checks answers against adventofcode.com and keeps
per-day runtime statistics.

Results persist to YAML files and render as tables, either in the
terminal or as markdown for README files.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if noColorFlag {
			ui.DisableColors()
		} else {
			ui.DetectColors()
		}

		level := zerolog.InfoLevel
		if verboseFlag {
			level = zerolog.DebugLevel
		}
		zl := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(level).
			With().Timestamp().Logger()
		logger.SetDefault(logger.NewZerologLogger(zl, ""))
	},
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if code, ok := errors.GetExitCode(err); ok {
			os.Exit(code)
		}
		os.Exit(1)
	}
}

// ConfigFlag returns the --config value, empty when unset.
func ConfigFlag() string { return cfgFlag }

// Verbose reports whether --verbose was given.
func Verbose() bool { return verboseFlag }

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFlag, "config", "", "config file (default searches for .aoc.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "disable colored output")
}
