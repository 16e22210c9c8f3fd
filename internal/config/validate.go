package config

import (
	"fmt"
	"strings"

	"github.com/brandonhippe/Advent-of-Code-Runner/internal/errors"
)

// FirstYear is the first Advent of Code event.
const FirstYear = 2015

var validStyles = map[string]bool{
	"DEFAULT":       true,
	"SINGLE_BORDER": true,
	"DOUBLE_BORDER": true,
	"MARKDOWN":      true,
}

// Validate checks the config for errors and returns structured error
// messages.
func Validate(cfg *Config) error {
	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but aoc only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Grab the latest release, or lower the version field")
	}

	if cfg.Leaderboard < 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Leaderboard size can't be negative (got %d)", cfg.Leaderboard),
			"Use a positive number, or omit it for the default of 10")
	}

	for _, year := range cfg.Years {
		if year < FirstYear {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Year %d is before the first Advent of Code event (%d)", year, FirstYear),
				"Check the 'years' list in your .aoc.yaml")
		}
	}

	for name, lang := range cfg.Languages {
		if err := validateLanguage(name, lang); err != nil {
			return err
		}
	}

	for sink, sc := range map[string]SinkConfig{
		"answers":  cfg.Sinks.Answers,
		"runtimes": cfg.Sinks.Runtimes,
	} {
		if err := validateSink(sink, sc); err != nil {
			return err
		}
	}

	return nil
}

func validateLanguage(name string, lang Language) error {
	if lang.Run == "" {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Language '%s' has no run command", name),
			"Add a 'run' template, e.g. run: python3 ${DAY}.py")
	}
	if lang.Extension != "" && !strings.HasPrefix(lang.Extension, ".") {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Language '%s' extension must start with a dot (got %q)", name, lang.Extension),
			fmt.Sprintf("Use extension: .%s", lang.Extension))
	}
	return nil
}

func validateSink(name string, sc SinkConfig) error {
	if sc.Style != "" && !validStyles[strings.ToUpper(sc.Style)] {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Unknown table style %q for the %s sink", sc.Style, name),
			"Valid styles are DEFAULT, SINGLE_BORDER, DOUBLE_BORDER, MARKDOWN")
	}
	if !sc.Disabled && sc.File == "" {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("The %s sink has no data file", name),
			fmt.Sprintf("Set sinks.%s.file, or disable the sink", name))
	}
	return nil
}
