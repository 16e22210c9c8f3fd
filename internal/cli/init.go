package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/huh"
	"gopkg.in/yaml.v3"

	"github.com/brandonhippe/Advent-of-Code-Runner/internal/config"
	"github.com/brandonhippe/Advent-of-Code-Runner/internal/errors"
	"github.com/brandonhippe/Advent-of-Code-Runner/internal/ui"
)

// InitOptions holds options for the init command.
type InitOptions struct {
	Overwrite      bool // Overwrite existing config without asking
	NonInteractive bool // Skip prompts, use defaults
}

// Init creates a new .aoc.yaml configuration file.
func Init(opts InitOptions) error {
	configPath := filepath.Join(".", config.ConfigFileName)

	// Check for existing config
	if _, err := os.Stat(configPath); err == nil && !opts.Overwrite {
		var overwrite bool

		if opts.NonInteractive {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Config file already exists: %s", configPath),
				"Use --force to overwrite")
		}

		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", config.ConfigFileName)).
					Value(&overwrite),
			),
		)

		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}

		if !overwrite {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	cfg := config.DefaultConfig()
	dataDir := cfg.DataDir
	inputsDir := cfg.InputsDir
	sessionEnv := cfg.SessionEnv

	defaults := config.DefaultLanguages()
	langNames := make([]string, 0, len(defaults))
	for name := range defaults {
		langNames = append(langNames, name)
	}
	sort.Strings(langNames)
	selected := append([]string(nil), langNames...)

	if !opts.NonInteractive {
		langOptions := make([]huh.Option[string], len(langNames))
		for i, name := range langNames {
			langOptions[i] = huh.NewOption(name, name)
		}

		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Solutions directory").
					Description("Root holding one folder per language (python/2023/4.py)").
					Placeholder(".").
					Value(&dataDir).
					Validate(func(s string) error {
						if strings.TrimSpace(s) == "" {
							return fmt.Errorf("solutions directory is required")
						}
						return nil
					}),
			),
			huh.NewGroup(
				huh.NewInput().
					Title("Inputs directory").
					Description("Where downloaded puzzle inputs are cached").
					Placeholder("Inputs").
					Value(&inputsDir),
			),
			huh.NewGroup(
				huh.NewInput().
					Title("Session environment variable").
					Description("Name of the env var holding your adventofcode.com session cookie").
					Placeholder("AOC_SESSION").
					Value(&sessionEnv).
					Validate(func(s string) error {
						if strings.ContainsAny(s, " \t\n") {
							return fmt.Errorf("variable name cannot contain whitespace")
						}
						return nil
					}),
			),
			huh.NewGroup(
				huh.NewMultiSelect[string]().
					Title("Languages").
					Description("Built-in toolchains to enable (edit .aoc.yaml for more)").
					Options(langOptions...).
					Value(&selected),
			),
		)

		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Check terminal compatibility or use --force with defaults")
		}
	}

	cfg.DataDir = dataDir
	cfg.InputsDir = inputsDir
	if sessionEnv != "" {
		cfg.SessionEnv = sessionEnv
	}
	cfg.Languages = map[string]config.Language{}
	for _, name := range selected {
		cfg.Languages[name] = defaults[name]
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to generate config",
			"This shouldn't happen - please report this bug")
	}

	header := `# Advent of Code runner configuration
# Run 'aoc run' to execute solutions and record results

`
	if err := os.WriteFile(configPath, []byte(header+string(data)), 0644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Failed to write config file: %s", configPath),
			"Check directory permissions")
	}

	fmt.Printf("%s Created %s\n\n", ui.SymbolSuccess, configPath)
	fmt.Println("Next steps:")
	fmt.Printf("  export %s=<session cookie>  - enable downloads and answer checking\n", cfg.SessionEnv)
	fmt.Println("  aoc run                    - run solutions and record results")
	fmt.Println("  aoc report                 - render the recorded tables")

	return nil
}
