// Package runner discovers and executes puzzle solutions: it fetches
// inputs, recompiles changed sources, runs each solution through its
// language's toolchain and scrapes answers and timings from the output.
package runner

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/brandonhippe/Advent-of-Code-Runner/internal/config"
	"github.com/brandonhippe/Advent-of-Code-Runner/internal/errors"
	"github.com/brandonhippe/Advent-of-Code-Runner/internal/logger"
	"github.com/brandonhippe/Advent-of-Code-Runner/internal/sink"
	"github.com/brandonhippe/Advent-of-Code-Runner/internal/util"
)

// InputFetcher downloads puzzle inputs. The web client implements it.
type InputFetcher interface {
	Input(ctx context.Context, year, day int) (string, error)
}

// Runner executes discovered solutions.
type Runner struct {
	cfg      *config.Config
	exec     Executor
	fetch    InputFetcher
	log      logger.Logger
	compiled map[string]bool
}

// Option adjusts a Runner.
type Option func(*Runner)

// WithExecutor swaps the command executor.
func WithExecutor(e Executor) Option {
	return func(r *Runner) { r.exec = e }
}

// WithInputFetcher enables downloading missing inputs.
func WithInputFetcher(f InputFetcher) Option {
	return func(r *Runner) { r.fetch = f }
}

// WithLogger sets the runner's logger.
func WithLogger(log logger.Logger) Option {
	return func(r *Runner) { r.log = log }
}

// New creates a runner for the given config.
func New(cfg *config.Config, opts ...Option) *Runner {
	r := &Runner{
		cfg:      cfg,
		exec:     LocalExecutor{},
		log:      logger.Default(),
		compiled: map[string]bool{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes one solution and returns its scraped part results.
func (r *Runner) Run(ctx context.Context, sol Solution) ([]PartResult, error) {
	lang, ok := r.cfg.Languages[sol.Lang]
	if !ok {
		return nil, errors.New(errors.ErrConfig,
			fmt.Sprintf("No language definition for '%s'", sol.Lang),
			"Add it to the languages section of your .aoc.yaml")
	}

	inputPath, err := r.ensureInput(ctx, sol.Year, sol.Day)
	if err != nil {
		return nil, err
	}

	if lang.Compile != "" {
		if err := r.compile(ctx, sol, lang); err != nil {
			return nil, err
		}
	}

	cmd := config.ExpandCommand(lang.Run, sol.Year, sol.Day)
	if inputPath != "" {
		cmd += " " + util.ShellQuote(inputPath)
	}
	r.log.Debug("runner: %s %d day %d: %s", sol.Lang, sol.Year, sol.Day, cmd)

	stdout, stderr, exit, err := r.exec.Capture(ctx, cmd, sol.Dir)
	if err != nil {
		return nil, err
	}
	if exit != 0 {
		return nil, errors.New(errors.ErrExec,
			fmt.Sprintf("%s %d day %d exited with code %d", sol.Lang, sol.Year, sol.Day, exit),
			tail(stderr))
	}

	results := ParseOutput(stdout)
	if len(results) == 0 {
		r.log.Warn("runner: %s %d day %d produced no 'Part N:' output", sol.Lang, sol.Year, sol.Day)
	}
	return results, nil
}

// compile runs the language's compile step, once per directory per
// session and only when the sources have changed.
func (r *Runner) compile(ctx context.Context, sol Solution, lang config.Language) error {
	if r.compiled[sol.Dir] {
		return nil
	}
	if !SourcesChanged(sol.Dir) {
		r.log.Debug("runner: %s is clean, skipping compile", sol.Dir)
		r.compiled[sol.Dir] = true
		return nil
	}

	cmd := config.ExpandCommand(lang.Compile, sol.Year, sol.Day)
	r.log.Debug("runner: compiling %s: %s", sol.Dir, cmd)

	_, stderr, exit, err := r.exec.Capture(ctx, cmd, sol.Dir)
	if err != nil {
		return err
	}
	if exit != 0 {
		return errors.New(errors.ErrExec,
			fmt.Sprintf("Compiling %s %d day %d failed with code %d", sol.Lang, sol.Year, sol.Day, exit),
			tail(stderr))
	}
	r.compiled[sol.Dir] = true
	return nil
}

// ensureInput returns the cached puzzle input path, downloading it first
// when a fetcher is available. Without a fetcher a missing input is not
// fatal; the solution runs without the extra argument.
func (r *Runner) ensureInput(ctx context.Context, year, day int) (string, error) {
	dir := config.ResolvePath(r.cfg.DataDir, r.cfg.InputsDir)
	path := filepath.Join(dir, fmt.Sprintf("%d", year), fmt.Sprintf("%d.txt", day))

	if _, err := os.Stat(path); err == nil {
		return path, nil
	}
	if r.fetch == nil {
		return "", nil
	}

	input, err := r.fetch.Input(ctx, year, day)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", errors.WrapWithCode(err, errors.ErrStore,
			"Cannot create inputs directory",
			"Check permissions on "+dir)
	}
	if err := os.WriteFile(path, []byte(input), 0o644); err != nil {
		return "", errors.WrapWithCode(err, errors.ErrStore,
			"Cannot cache puzzle input",
			"Check permissions on "+dir)
	}
	r.log.Info("runner: fetched input for %d day %d", year, day)
	return path, nil
}

// Measurements converts part results into sink measurements.
func Measurements(sol Solution, results []PartResult) []sink.Measurement {
	out := make([]sink.Measurement, 0, len(results))
	for _, res := range results {
		out = append(out, sink.Measurement{
			Lang:       sol.Lang,
			Year:       sol.Year,
			Day:        sol.Day,
			Part:       res.Part,
			Answer:     res.Answer,
			HasAnswer:  true,
			Seconds:    res.Seconds,
			HasSeconds: res.HasTime,
		})
	}
	return out
}

// tail trims stderr to its last few lines for error suggestions.
func tail(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > 5 {
		lines = lines[len(lines)-5:]
	}
	return strings.Join(lines, "\n")
}
