// Package view renders README files from recorded results. The viewer
// attaches to the sinks' post-exit callbacks so the markdown stays in
// step with the data files.
package view

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/brandonhippe/Advent-of-Code-Runner/internal/errors"
	"github.com/brandonhippe/Advent-of-Code-Runner/internal/events"
	"github.com/brandonhippe/Advent-of-Code-Runner/internal/logger"
	"github.com/brandonhippe/Advent-of-Code-Runner/internal/report"
	"github.com/brandonhippe/Advent-of-Code-Runner/internal/sink"
)

// Template placeholders use #{(name)} markers.
var placeholderRE = regexp.MustCompile(`#\{\((\w+)\)\}`)

// Default templates. Custom ones can be swapped in per name
// ("overall", "year").
const (
	overallTemplate = `# Advent of Code

Total stars: #{(total_stars)} ⭐

#{(answer_tables)}

#{(runtime_tables)}
`
	yearTemplate = `# Advent of Code #{(year)}

Stars: #{(year_stars)} ⭐
`
)

// ReadmeViewer writes a top-level README plus one per recorded year.
type ReadmeViewer struct {
	root      string
	answers   *sink.AnswerSink
	runtimes  *sink.RuntimeSink
	templates map[string]string
	log       logger.Logger
}

// Option adjusts a ReadmeViewer.
type Option func(*ReadmeViewer)

// WithTemplate overrides one of the built-in templates.
func WithTemplate(name, tmpl string) Option {
	return func(v *ReadmeViewer) { v.templates[name] = tmpl }
}

// WithLogger sets the viewer's logger.
func WithLogger(log logger.Logger) Option {
	return func(v *ReadmeViewer) { v.log = log }
}

// NewReadmeViewer creates a viewer writing under root. runtimes may be
// nil when only answers are tracked.
func NewReadmeViewer(root string, answers *sink.AnswerSink, runtimes *sink.RuntimeSink, opts ...Option) *ReadmeViewer {
	v := &ReadmeViewer{
		root:     root,
		answers:  answers,
		runtimes: runtimes,
		templates: map[string]string{
			"overall": overallTemplate,
			"year":    yearTemplate,
		},
		log: logger.Default(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Attach hooks the viewer into the answer sink's post-exit phase so the
// READMEs regenerate after every successful save.
func (v *ReadmeViewer) Attach() {
	hub := v.answers.Hub()
	hub.PostExit = append(hub.PostExit, func(src events.Source, event string, keys []string, verbose bool, payload events.Payload) {
		if err := v.Write(); err != nil {
			v.log.Warn("readme: %v", err)
		}
	})
}

// Write renders every README from the current tracker state.
func (v *ReadmeViewer) Write() error {
	stars := v.answers.Stars()
	total := 0
	years := make([]int, 0, len(stars))
	for year, n := range stars {
		total += n
		years = append(years, year)
	}
	sort.Ints(years)

	answerTables, err := v.answers.Render(report.StyleMarkdown, "Answers")
	if err != nil {
		return err
	}
	runtimeTables := ""
	if v.runtimes != nil {
		runtimeTables, err = v.runtimes.Render(report.StyleMarkdown, "Runtimes")
		if err != nil {
			return err
		}
	}

	overall := fill(v.templates["overall"], map[string]string{
		"total_stars":    fmt.Sprintf("%d", total),
		"answer_tables":  answerTables,
		"runtime_tables": runtimeTables,
	})
	if err := v.write(filepath.Join(v.root, "README.md"), overall); err != nil {
		return err
	}

	for _, year := range years {
		body := fill(v.templates["year"], map[string]string{
			"year":       fmt.Sprintf("%d", year),
			"year_stars": fmt.Sprintf("%d", stars[year]),
		})
		path := filepath.Join(v.root, fmt.Sprintf("%d", year), "README.md")
		if err := v.write(path, body); err != nil {
			return err
		}
	}

	v.log.Debug("readme: wrote %d year files under %s", len(years), v.root)
	return nil
}

func (v *ReadmeViewer) write(path, body string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.WrapWithCode(err, errors.ErrStore,
			"Cannot create README directory",
			"Check permissions under "+v.root)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		return errors.WrapWithCode(err, errors.ErrStore,
			"Cannot write "+path,
			"Check file permissions")
	}
	return nil
}

// fill substitutes #{(name)} placeholders. Unknown names are left alone
// so template mistakes stay visible in the output.
func fill(tmpl string, vars map[string]string) string {
	return placeholderRE.ReplaceAllStringFunc(tmpl, func(m string) string {
		name := strings.TrimSuffix(strings.TrimPrefix(m, "#{("), ")}")
		if val, ok := vars[name]; ok {
			return val
		}
		return m
	})
}
