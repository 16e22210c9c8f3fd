package cli

import (
	"fmt"

	"github.com/brandonhippe/Advent-of-Code-Runner/internal/config"
	"github.com/brandonhippe/Advent-of-Code-Runner/internal/errors"
	"github.com/brandonhippe/Advent-of-Code-Runner/internal/sink"
	"github.com/brandonhippe/Advent-of-Code-Runner/internal/ui"
	"github.com/brandonhippe/Advent-of-Code-Runner/internal/view"
)

// Readme regenerates the README files from the persisted results.
func Readme() error {
	cfg, err := config.LoadOrDefault(ConfigFlag())
	if err != nil {
		return err
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}

	env := newEnv(cfg, envOptions{Offline: true, NoSave: true})
	if err := sink.OpenAll(env.sinks...); err != nil {
		return err
	}

	if env.answers == nil {
		return errors.New(errors.ErrConfig,
			"The answers sink is disabled",
			"README generation needs recorded answers; enable sinks.answers in .aoc.yaml")
	}

	viewer := view.NewReadmeViewer(config.ExpandTilde(cfg.DataDir), env.answers, env.runtimes)
	if err := viewer.Write(); err != nil {
		return err
	}

	fmt.Printf("%s README files updated\n", ui.SymbolSuccess)
	return nil
}
