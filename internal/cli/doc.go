// Package cli implements the aoc command-line interface.
//
// The package is organized around Cobra commands, with each command
// delegating to workflow functions for the actual work. The general
// structure follows a clean separation between:
//
//   - Command definitions (cobra.Command instances)
//   - Workflow orchestration (Run, Report, Progress, Readme, Init)
//   - Implementation details (in other internal packages)
//
// # Command Structure
//
// The root command is "aoc" with subcommands for different operations:
//
//	aoc run        - Run solutions and record answers and runtimes
//	aoc report     - Render recorded results as tables
//	aoc progress   - Show star progress per year
//	aoc readme     - Regenerate README files
//	aoc init       - Create .aoc.yaml config
//	aoc version    - Print version information
//	aoc completion - Generate shell completions
//
// # Run Workflow
//
// The Run function handles the phases shared by every run:
//
//  1. Load and validate config
//  2. Build the web client, sinks and README viewer (newEnv)
//  3. Open sinks, replaying persisted results
//  4. Discover and execute solutions, recording measurements
//  5. Close sinks: flush events, save data files, regenerate READMEs
//
// Individual solution failures are collected into the run summary;
// only infrastructure errors abort the save.
//
// # Flag Handling
//
// Global flags (--config, --verbose, --no-color) are defined on the
// root command and available to all subcommands. Command-specific
// flags like --years and --langs are defined on individual commands.
package cli
