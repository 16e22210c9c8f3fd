package cli

import (
	"fmt"

	"github.com/brandonhippe/Advent-of-Code-Runner/internal/config"
	"github.com/brandonhippe/Advent-of-Code-Runner/internal/errors"
	"github.com/brandonhippe/Advent-of-Code-Runner/internal/report"
	"github.com/brandonhippe/Advent-of-Code-Runner/internal/sink"
)

// Report renders the persisted results as tables. styleFlag overrides
// the per-sink configured style; sinkFlag narrows to one sink.
func Report(styleFlag, sinkFlag string) error {
	cfg, err := config.LoadOrDefault(ConfigFlag())
	if err != nil {
		return err
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}

	// Load data but never write it back: report is read-only.
	env := newEnv(cfg, envOptions{Offline: true, NoSave: true})

	if err := sink.OpenAll(env.sinks...); err != nil {
		return err
	}

	return renderReport(env, styleFlag, sinkFlag)
}

func renderReport(env *runEnv, styleFlag, sinkFlag string) error {
	style := report.Style(-1)
	if styleFlag != "" {
		parsed, err := report.ParseStyle(styleFlag)
		if err != nil {
			return err
		}
		style = parsed
	}

	type section struct {
		name  string
		sink  sink.Sink
		title string
	}
	var sections []section
	if env.answers != nil {
		sections = append(sections, section{"answers", env.answers, "Answers"})
	}
	if env.runtimes != nil {
		sections = append(sections, section{"runtimes", env.runtimes, "Runtimes"})
	}
	if len(sections) == 0 {
		return errors.New(errors.ErrConfig,
			"No sinks are enabled",
			"Enable sinks.answers or sinks.runtimes in .aoc.yaml")
	}

	matched := false
	for _, sec := range sections {
		if sinkFlag != "" && sinkFlag != sec.name {
			continue
		}
		matched = true

		out, err := renderSink(sec.sink, style, sec.title)
		if err != nil {
			return err
		}
		fmt.Println(out)
	}

	if !matched {
		return errors.New(errors.ErrConfig,
			"Unknown sink: "+sinkFlag,
			"Valid sinks are answers and runtimes")
	}
	return nil
}

// renderSink narrows the Sink interface back to the concrete Render
// method both sink types share.
func renderSink(s sink.Sink, style report.Style, title string) (string, error) {
	type renderer interface {
		Render(style report.Style, title string) (string, error)
	}
	r, ok := s.(renderer)
	if !ok {
		return "", errors.New(errors.ErrPivot,
			"Sink cannot render: "+s.Name(),
			"")
	}
	return r.Render(style, title)
}
