// Package sink ties a tracker, an event hub and a YAML data file into
// one reporting sink with an open/close lifecycle. Producers push
// measurements through RecordMeasurement while a run is in flight; the
// close step replays the whole tree to exit callbacks and persists it.
package sink

import (
	"fmt"

	"github.com/brandonhippe/Advent-of-Code-Runner/internal/errors"
	"github.com/brandonhippe/Advent-of-Code-Runner/internal/events"
	"github.com/brandonhippe/Advent-of-Code-Runner/internal/logger"
	"github.com/brandonhippe/Advent-of-Code-Runner/internal/report"
	"github.com/brandonhippe/Advent-of-Code-Runner/internal/tracker"
	"github.com/brandonhippe/Advent-of-Code-Runner/internal/util"
)

// Lifecycle event names carried in update payloads.
const (
	EventOnLoad = "on_load"
	EventOnRun  = "on_run"
	EventOnExit = "on_exit"
)

// Options configures one sink.
type Options struct {
	// File is the YAML data file path. Empty disables persistence.
	File string
	// Style is the default table style for Render.
	Style report.Style
	// Verbose is forwarded to event callbacks.
	Verbose bool
	// NoLoad skips reading the data file on Open.
	NoLoad bool
	// NoSave skips writing the data file on Close.
	NoSave bool
	// Log defaults to logger.Default().
	Log logger.Logger
}

// Measurement is one solved puzzle part as reported by a runner. Answer
// and Seconds are each optional; a sink takes what it understands.
type Measurement struct {
	Lang string
	Year int
	Day  int
	Part int

	Answer    string
	HasAnswer bool

	Seconds    float64
	HasSeconds bool
}

// Sink is the common surface of the answer and runtime sinks.
type Sink interface {
	events.Source
	Tracker() *tracker.Tracker
	Hub() *events.Hub
	Open() error
	Close(runErr error) error
	RecordMeasurement(m Measurement, event string) error
	Flush() error
	Render(style report.Style, title string) (string, error)
}

// Record fans one measurement out to every sink.
func Record(m Measurement, event string, sinks ...Sink) error {
	for _, s := range sinks {
		if err := s.RecordMeasurement(m, event); err != nil {
			return err
		}
	}
	return nil
}

// OpenAll opens every sink, closing the already opened ones on failure.
func OpenAll(sinks ...Sink) error {
	for i, s := range sinks {
		if err := s.Open(); err != nil {
			for _, opened := range sinks[:i] {
				_ = opened.Close(err)
			}
			return err
		}
	}
	return nil
}

// FlushAll drains every sink's queued updates through its on-log
// callbacks. The run loop calls this after each solution so live
// consumers see results as they land instead of at exit.
func FlushAll(sinks ...Sink) error {
	for _, s := range sinks {
		if err := s.Flush(); err != nil {
			return err
		}
	}
	return nil
}

// CloseAll closes every sink, keeping the first error.
func CloseAll(runErr error, sinks ...Sink) error {
	var first error
	for _, s := range sinks {
		if err := s.Close(runErr); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// base carries the state and lifecycle shared by the concrete sinks.
type base struct {
	name     string
	valueKey string
	opts     Options
	trk      *tracker.Tracker
	hub      *events.Hub
	log      logger.Logger
}

func newBase(name, valueKey string, kind tracker.Kind, opts Options) base {
	log := opts.Log
	if log == nil {
		log = logger.Default()
	}
	return base{
		name:     name,
		valueKey: valueKey,
		opts:     opts,
		trk:      tracker.New(kind),
		hub:      events.New(),
		log:      log,
	}
}

func (b *base) Name() string              { return b.name }
func (b *base) Tracker() *tracker.Tracker { return b.trk }
func (b *base) Hub() *events.Hub          { return b.hub }

// Render draws the sink's tracker with the given style. The sink's
// configured style is used when style is negative.
func (b *base) Render(style report.Style, title string) (string, error) {
	if style < 0 {
		style = b.opts.Style
	}
	return report.Render(b.trk, tracker.IndexLabels, style, title)
}

// flush replays the queued run-time updates through the on-log
// callbacks. Queue entries keep their recorded event tag; untagged ones
// flush as on_log.
func (b *base) flush(src Sink) error {
	return b.hub.Flush(b.hub.OnLog, src, b.opts.Verbose, nil)
}

// open loads persisted results and replays them through the concrete
// sink's record path, then fires the post-load callbacks.
func (b *base) open(src Sink, replay func(l replayLeaf) error) error {
	if !b.opts.NoLoad && b.opts.File != "" {
		if err := b.load(replay); err != nil {
			return err
		}
	}
	b.notify(src, b.hub.PostLoad, "post_load")
	return nil
}

// close runs the exit sequence: pre-exit callbacks, a flush of the whole
// tree, persistence, post-exit callbacks. A run error aborts the whole
// sequence so a crashed run never clobbers the data file.
func (b *base) close(src Sink, runErr error) error {
	if runErr != nil {
		b.log.Warn("%s: run failed, skipping save: %v", b.name, runErr)
		return nil
	}

	b.notify(src, b.hub.PreExit, "pre_exit")

	b.enqueueTree()
	if err := b.hub.Flush(b.hub.OnExit, src, b.opts.Verbose, events.Payload{"event": EventOnExit}); err != nil {
		return err
	}

	if !b.opts.NoSave && b.opts.File != "" {
		numeric := b.valueKey == timeKey
		if err := saveDocument(b.opts.File, b.trk, numeric); err != nil {
			return err
		}
		b.log.Debug("%s: saved %d results to %s", b.name, b.trk.Size(), b.opts.File)
	}

	b.notify(src, b.hub.PostExit, "post_exit")
	return nil
}

// enqueueTree queues every concrete leaf for the exit flush. The
// incorrect shadow subtree is persisted but not replayed.
func (b *base) enqueueTree() {
	_ = b.trk.WalkLeaves(func(p []string, v tracker.Value) error {
		if p[0] == tracker.IncorrectKey || len(p) != 4 {
			return nil
		}
		var value any
		if v.IsNum {
			value = v.Num
		} else {
			value = v.Str
		}
		b.hub.Enqueue([]string{p[1], p[2], p[3], p[0]}, events.Payload{b.valueKey: value})
		return nil
	})
}

// notify invokes one callback list directly, outside the queue.
func (b *base) notify(src Sink, callbacks []events.Callback, event string) {
	for _, cb := range callbacks {
		cb(src, event, nil, b.opts.Verbose, events.Payload{"event": event})
	}
}

type replayLeaf struct {
	Lang      string
	Year      int
	Day       int
	Part      int
	Str       string
	Num       float64
	Incorrect bool
}

func (b *base) load(replay func(l replayLeaf) error) error {
	var leaves []replayLeaf
	if b.valueKey == timeKey {
		raw, err := loadDocument[float64](b.opts.File)
		if err != nil {
			return err
		}
		for _, l := range raw {
			leaves = append(leaves, replayLeaf{Lang: l.Lang, Year: l.Year, Day: l.Day, Part: l.Part, Num: l.Value, Incorrect: l.Incorrect})
		}
	} else {
		raw, err := loadDocument[string](b.opts.File)
		if err != nil {
			return err
		}
		for _, l := range raw {
			leaves = append(leaves, replayLeaf{Lang: l.Lang, Year: l.Year, Day: l.Day, Part: l.Part, Str: l.Value, Incorrect: l.Incorrect})
		}
	}

	for _, l := range leaves {
		if err := replay(l); err != nil {
			return err
		}
	}
	b.log.Debug("%s: loaded %d results from %s", b.name, len(leaves), b.opts.File)
	return nil
}

// validate checks the producer-facing coordinate contract.
func validate(lang string, year, day, part int) error {
	switch {
	case lang == "":
		return errors.NewInvalidKey("language is empty")
	case day < 1 || day > 25:
		return errors.NewInvalidKey(fmt.Sprintf("day %d out of range", day))
	case part != 1 && part != 2:
		return errors.NewInvalidKey(fmt.Sprintf("part %d out of range", part))
	}
	return nil
}

func pathOf(lang string, year, day, part int) []string {
	return []string{lang, itoa(year), itoa(day), itoa(part)}
}

func keysOf(lang string, year, day, part int) []string {
	return []string{itoa(year), itoa(day), itoa(part), lang}
}

func itoa(n int) string { return util.Itoa(n) }
