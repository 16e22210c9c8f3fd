package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/brandonhippe/Advent-of-Code-Runner/internal/errors"
)

// Command-specific flags
var (
	runYearsFlag   []int
	runDaysFlag    []int
	runLangsFlag   []string
	runOfflineFlag bool
	runNoLoadFlag  bool
	runNoSaveFlag  bool
	runDashFlag    bool

	reportStyleFlag string
	reportSinkFlag  string

	initForce bool
)

// runCmd discovers and executes solutions, recording answers and runtimes
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run solutions and record answers and runtimes",
	Long: `Discover solutions under the configured data directory, run them
against their inputs and record answers and runtimes.

Answers are checked against adventofcode.com when a session cookie is
available; wrong answers are remembered so they are flagged on later
runs. Missing inputs are downloaded and cached.

Examples:
  aoc run
  aoc run --years 2023
  aoc run --langs python,rust --days 1,2,3
  aoc run --offline`,
	RunE: func(cmd *cobra.Command, args []string) error {
		code, err := Run(RunOptions{
			Years:     runYearsFlag,
			Days:      runDaysFlag,
			Langs:     runLangsFlag,
			Offline:   runOfflineFlag,
			NoLoad:    runNoLoadFlag,
			NoSave:    runNoSaveFlag,
			Dashboard: runDashFlag,
		})
		if err != nil {
			return err
		}
		if code != 0 {
			return errors.NewExitError(code)
		}
		return nil
	},
}

// reportCmd renders recorded results as tables without running anything
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Render recorded answers and runtimes as tables",
	Long: `Render the persisted answer and runtime data as tables.

Styles: DEFAULT, SINGLE_BORDER, DOUBLE_BORDER, MARKDOWN.

Examples:
  aoc report
  aoc report --style MARKDOWN
  aoc report --sink runtimes`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return Report(reportStyleFlag, reportSinkFlag)
	},
}

// progressCmd shows per-year completion bars and runtime sparklines
var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show star progress per year",
	Long: `Show one line per event year with a completion bar, the star count
and a sparkline of per-day runtimes.

Examples:
  aoc progress`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return Progress()
	},
}

// readmeCmd regenerates README files from recorded results
var readmeCmd = &cobra.Command{
	Use:   "readme",
	Short: "Regenerate README files from recorded results",
	Long: `Write the top-level README.md plus one per recorded year, with star
counts and markdown result tables.

Examples:
  aoc readme`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return Readme()
	},
}

// initCmd creates a new .aoc.yaml configuration
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create .aoc.yaml configuration",
	Long: `Initialize a new runner configuration file.

Creates a .aoc.yaml file in the current directory and guides you
through the solutions layout and session cookie setup with
interactive prompts.

Examples:
  aoc init
  aoc init --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return Init(InitOptions{Overwrite: initForce})
	},
}

// completionCmd generates shell completion scripts
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion scripts for aoc.

Examples:
  # Bash
  aoc completion bash > /etc/bash_completion.d/aoc

  # Zsh
  aoc completion zsh > "${fpath[1]}/_aoc"

  # Fish
  aoc completion fish > ~/.config/fish/completions/aoc.fish`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(os.Stdout)
		case "zsh":
			return rootCmd.GenZshCompletion(os.Stdout)
		case "fish":
			return rootCmd.GenFishCompletion(os.Stdout, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletion(os.Stdout)
		default:
			return errors.New(errors.ErrExec,
				"Unknown shell: "+args[0],
				"Supported shells: bash, zsh, fish, powershell")
		}
	},
}

func init() {
	// run command flags
	runCmd.Flags().IntSliceVar(&runYearsFlag, "years", nil, "restrict to specific years")
	runCmd.Flags().IntSliceVar(&runDaysFlag, "days", nil, "restrict to specific days")
	runCmd.Flags().StringSliceVar(&runLangsFlag, "langs", nil, "restrict to specific languages")
	runCmd.Flags().BoolVar(&runOfflineFlag, "offline", false, "skip input downloads and answer checking")
	runCmd.Flags().BoolVar(&runNoLoadFlag, "no-load", false, "ignore persisted results on startup")
	runCmd.Flags().BoolVar(&runNoSaveFlag, "no-save", false, "do not write results back on exit")
	runCmd.Flags().BoolVar(&runDashFlag, "dashboard", false, "show the live TUI dashboard while running")

	// report command flags
	reportCmd.Flags().StringVar(&reportStyleFlag, "style", "", "table style (DEFAULT, SINGLE_BORDER, DOUBLE_BORDER, MARKDOWN)")
	reportCmd.Flags().StringVar(&reportSinkFlag, "sink", "", "render only one sink (answers or runtimes)")

	// init command flags
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite existing config")

	// Register all commands
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(readmeCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
}
