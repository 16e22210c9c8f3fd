package cli

import (
	"context"
	"fmt"
	"os"
	"sort"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/brandonhippe/Advent-of-Code-Runner/internal/config"
	"github.com/brandonhippe/Advent-of-Code-Runner/internal/errors"
	"github.com/brandonhippe/Advent-of-Code-Runner/internal/report"
	"github.com/brandonhippe/Advent-of-Code-Runner/internal/runner"
	"github.com/brandonhippe/Advent-of-Code-Runner/internal/sink"
	"github.com/brandonhippe/Advent-of-Code-Runner/internal/ui"
	"github.com/brandonhippe/Advent-of-Code-Runner/internal/util"
	"github.com/brandonhippe/Advent-of-Code-Runner/internal/view"
	"github.com/brandonhippe/Advent-of-Code-Runner/internal/web"
)

// RunOptions holds options for the run command.
type RunOptions struct {
	Years     []int    // Restrict to specific event years
	Days      []int    // Restrict to specific days
	Langs     []string // Restrict to specific languages
	Offline   bool     // Skip input downloads and answer checking
	NoLoad    bool     // Ignore persisted results on startup
	NoSave    bool     // Do not write results back on exit
	Dashboard bool     // Live TUI dashboard instead of per-line spinners
}

// Run discovers solutions, executes them and records the results.
// This is the main workflow that ties together all subsystems.
// Returns the process exit code.
func Run(opts RunOptions) (int, error) {
	cfg, err := config.LoadOrDefault(ConfigFlag())
	if err != nil {
		return 1, err
	}
	if err := config.Validate(cfg); err != nil {
		return 1, err
	}

	env := newEnv(cfg, envOptions{
		Offline: opts.Offline,
		NoLoad:  opts.NoLoad || cfg.NoLoad,
		NoSave:  opts.NoSave || cfg.NoSave,
	})

	if err := sink.OpenAll(env.sinks...); err != nil {
		return 1, err
	}

	code, runErr := runAll(env, opts)

	if err := sink.CloseAll(runErr, env.sinks...); err != nil {
		return 1, err
	}
	if runErr != nil {
		return 1, runErr
	}
	return code, nil
}

// runAll executes every selected solution. Individual solution failures
// are collected into the summary; only infrastructure errors (config,
// storage) come back as an error and abort the save.
func runAll(env *runEnv, opts RunOptions) (int, error) {
	langs := map[string]config.Language{}
	known := make([]string, 0, len(env.cfg.Languages))
	for name, lang := range env.cfg.Languages {
		known = append(known, name)
		if len(opts.Langs) == 0 || containsStr(opts.Langs, name) {
			langs[name] = lang
		}
	}
	if len(langs) == 0 {
		sort.Strings(known)
		return 1, errors.New(errors.ErrConfig,
			"No configured language matches --langs",
			"Configured languages: "+util.JoinOrNone(known))
	}

	years := opts.Years
	if len(years) == 0 {
		years = env.cfg.Years
	}

	root := config.ExpandTilde(env.cfg.DataDir)
	solutions, err := runner.Discover(root, langs, years, time.Now())
	if err != nil {
		return 1, err
	}
	if len(opts.Days) > 0 {
		filtered := solutions[:0]
		for _, sol := range solutions {
			if containsInt(opts.Days, sol.Day) {
				filtered = append(filtered, sol)
			}
		}
		solutions = filtered
	}

	if len(solutions) == 0 {
		fmt.Println(report.NoData)
		return 0, nil
	}

	if ui.IsTerminal() {
		ui.PrintHeader(ui.HeaderInfo{Version: GetVersion(), Root: root})
	}

	r := runner.New(env.cfg, runner.WithInputFetcher(env.fetcher))

	var summary ui.RunSummary
	if opts.Dashboard && ui.IsTerminal() {
		summary = runDashboard(r, env, solutions)
	} else {
		summary = runSequential(r, env, solutions)
	}

	if env.answers != nil {
		for _, n := range env.answers.Stars() {
			summary.Stars += n
		}
	}
	fmt.Print(ui.RenderSummary(&summary))

	if summary.Failed > 0 {
		return 1, nil
	}
	return 0, nil
}

// runSequential runs solutions one at a time with a spinner per line.
func runSequential(r *runner.Runner, env *runEnv, solutions []runner.Solution) ui.RunSummary {
	var summary ui.RunSummary
	ctx := context.Background()

	for _, sol := range solutions {
		label := fmt.Sprintf("%s %d day %d", sol.Lang, sol.Year, sol.Day)

		var spinner *ui.Spinner
		if ui.IsTerminal() {
			spinner = ui.NewSpinner(label)
			spinner.Start()
		}

		failMsg := runOne(ctx, r, env, sol)
		switch {
		case failMsg == "":
			summary.Solved++
			if spinner != nil {
				spinner.Success()
			}
		default:
			summary.Failed++
			summary.Failures = append(summary.Failures, ui.RunFailure{
				Lang: sol.Lang, Year: sol.Year, Day: sol.Day, Message: failMsg,
			})
			if spinner != nil {
				spinner.Fail()
			}
		}
	}
	return summary
}

// runDashboard runs solutions under a Bubble Tea dashboard, one row per
// solution. The work happens in a goroutine posting progress messages.
func runDashboard(r *runner.Runner, env *runEnv, solutions []runner.Solution) ui.RunSummary {
	labels := make([]string, len(solutions))
	for i, sol := range solutions {
		labels[i] = fmt.Sprintf("%s %d day %d", sol.Lang, sol.Year, sol.Day)
	}

	var summary ui.RunSummary
	p := tea.NewProgram(ui.NewRunDashboard(labels))

	go func() {
		ctx := context.Background()
		for i, sol := range solutions {
			p.Send(ui.SolutionStartedMsg{Index: i})
			start := time.Now()

			failMsg := runOne(ctx, r, env, sol)
			if failMsg == "" {
				summary.Solved++
			} else {
				summary.Failed++
				summary.Failures = append(summary.Failures, ui.RunFailure{
					Lang: sol.Lang, Year: sol.Year, Day: sol.Day, Message: failMsg,
				})
			}
			p.Send(ui.SolutionDoneMsg{Index: i, Failed: failMsg != "", Elapsed: time.Since(start)})
		}
	}()

	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	return summary
}

// runOne executes a single solution and records its measurements.
// Returns an empty string on success, the failure message otherwise.
func runOne(ctx context.Context, r *runner.Runner, env *runEnv, sol runner.Solution) string {
	results, err := r.Run(ctx, sol)
	if err != nil {
		return err.Error()
	}
	if len(results) == 0 {
		return "no Part output"
	}
	for _, m := range runner.Measurements(sol, results) {
		if err := sink.Record(m, sink.EventOnRun, env.sinks...); err != nil {
			return err.Error()
		}
	}
	// Deliver the queued updates to live consumers right away rather
	// than holding them until the exit flush.
	if err := sink.FlushAll(env.sinks...); err != nil {
		return err.Error()
	}
	return ""
}

// runEnv bundles the per-run infrastructure: config, sinks, the web
// client (as oracle and input fetcher) and the README viewer.
type runEnv struct {
	cfg      *config.Config
	answers  *sink.AnswerSink
	runtimes *sink.RuntimeSink
	sinks    []sink.Sink
	fetcher  runner.InputFetcher
}

type envOptions struct {
	Offline bool
	NoLoad  bool
	NoSave  bool
}

func newEnv(cfg *config.Config, opts envOptions) *runEnv {
	env := &runEnv{cfg: cfg}

	var client *web.Client
	if !opts.Offline {
		session := os.Getenv(cfg.SessionEnv)
		if session == "" {
			ui.PrintWarning(fmt.Sprintf("%s is not set; running offline", cfg.SessionEnv))
		} else if c, err := web.NewClient(session); err == nil {
			client = c
		}
	}

	var oracle sink.Oracle
	if client != nil {
		oracle = client
		env.fetcher = client
	}

	if !cfg.Sinks.Answers.Disabled {
		env.answers = sink.NewAnswerSink(sinkOptions(cfg, cfg.Sinks.Answers, opts), oracle)
		env.sinks = append(env.sinks, env.answers)
	}
	if !cfg.Sinks.Runtimes.Disabled {
		env.runtimes = sink.NewRuntimeSink(sinkOptions(cfg, cfg.Sinks.Runtimes, opts), cfg.Leaderboard)
		env.sinks = append(env.sinks, env.runtimes)
	}

	// READMEs track the data files, so skip them when nothing is saved.
	if env.answers != nil && !opts.NoSave {
		viewer := view.NewReadmeViewer(config.ExpandTilde(cfg.DataDir), env.answers, env.runtimes)
		viewer.Attach()
	}

	return env
}

func sinkOptions(cfg *config.Config, sc config.SinkConfig, opts envOptions) sink.Options {
	style, err := report.ParseStyle(sc.Style)
	if err != nil {
		style = report.StyleDefault
	}
	return sink.Options{
		File:    config.ResolvePath(cfg.DataDir, sc.File),
		Style:   style,
		Verbose: Verbose(),
		NoLoad:  opts.NoLoad,
		NoSave:  opts.NoSave,
	}
}

func containsStr(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func containsInt(list []int, n int) bool {
	for _, v := range list {
		if v == n {
			return true
		}
	}
	return false
}
