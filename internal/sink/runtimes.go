package sink

import (
	"github.com/brandonhippe/Advent-of-Code-Runner/internal/events"
	"github.com/brandonhippe/Advent-of-Code-Runner/internal/tracker"
)

const timeKey = "time"

// RuntimeSink records elapsed times in seconds. Beyond the raw leaf it
// queues progressively shallower summary updates as the picture fills
// in: a day total once both parts are solved, a yearly average past one
// day, and the yearly total when all 25 days are in.
type RuntimeSink struct {
	base
	minTime map[string]float64
	maxTime map[string]float64
}

// NewRuntimeSink creates the runtimes sink. leaderboard is the number of
// slowest solutions to keep; zero means the default.
func NewRuntimeSink(opts Options, leaderboard int) *RuntimeSink {
	return &RuntimeSink{
		base:    newBase("runtimes", timeKey, tracker.RuntimeKind{Leaderboard: leaderboard}, opts),
		minTime: map[string]float64{},
		maxTime: map[string]float64{},
	}
}

func (s *RuntimeSink) Open() error {
	return s.open(s, func(l replayLeaf) error {
		return s.Record(l.Lang, l.Year, l.Day, l.Part, l.Num, EventOnLoad)
	})
}

func (s *RuntimeSink) Close(runErr error) error {
	return s.close(s, runErr)
}

func (s *RuntimeSink) Flush() error {
	return s.flush(s)
}

func (s *RuntimeSink) RecordMeasurement(m Measurement, event string) error {
	if !m.HasSeconds {
		return nil
	}
	return s.Record(m.Lang, m.Year, m.Day, m.Part, m.Seconds, event)
}

// Record stores one part's elapsed time and queues the summary updates
// it unlocks.
func (s *RuntimeSink) Record(lang string, year, day, part int, seconds float64, event string) error {
	if err := validate(lang, year, day, part); err != nil {
		return err
	}

	if err := s.trk.AddData(pathOf(lang, year, day, part), tracker.NumberValue(seconds)); err != nil {
		return err
	}

	if event == EventOnLoad {
		return nil
	}

	payload := events.Payload{timeKey: seconds}
	if event != "" {
		payload["event"] = event
	}
	if prev, ok := s.minTime[lang]; !ok || seconds < prev {
		s.minTime[lang] = seconds
		payload["min_time"] = seconds
	}
	if prev, ok := s.maxTime[lang]; !ok || seconds > prev {
		s.maxTime[lang] = seconds
		payload["max_time"] = seconds
	}
	s.hub.Enqueue(keysOf(lang, year, day, part), payload)

	s.enqueueSummaries(lang, year, day)
	return nil
}

func (s *RuntimeSink) enqueueSummaries(lang string, year, day int) {
	dayPath := []string{lang, itoa(year), itoa(day)}
	dayDone := s.trk.Contains(append(dayPath, "1")) &&
		(day == 25 || s.trk.Contains(append(dayPath, "2")))
	if dayDone {
		if total, err := s.trk.Total(dayPath); err == nil {
			s.hub.Enqueue([]string{itoa(year), itoa(day), lang},
				events.Payload{timeKey: total, "stat": "total"})
		}
	}

	yearPath := []string{lang, itoa(year)}
	yearNode := s.trk.Root().Child(lang)
	if yearNode == nil {
		return
	}
	yearNode = yearNode.Child(itoa(year))
	if yearNode == nil {
		return
	}
	days := yearNode.Len()
	if days > 1 {
		if avg, err := s.trk.Average(yearPath); err == nil {
			s.hub.Enqueue([]string{itoa(year), lang},
				events.Payload{timeKey: avg, "stat": "average"})
		}
	}
	if days == 25 {
		if total, err := s.trk.Total(yearPath); err == nil {
			s.hub.Enqueue([]string{itoa(year), lang},
				events.Payload{timeKey: total, "stat": "total"})
		}
	}
}

// Slowest returns the current leaderboard as (path, seconds) entries,
// slowest first.
func (s *RuntimeSink) Slowest() []SlowEntry {
	longest := s.trk.SideTree(tracker.LongestKey)
	if longest == nil {
		return nil
	}
	var out []SlowEntry
	_ = tracker.WalkNode(longest, func(p []string, v tracker.Value) error {
		out = append(out, SlowEntry{Path: p[1:], Seconds: v.Num})
		return nil
	})
	return out
}

// SlowEntry is one leaderboard row: [lang year day part] and its time.
type SlowEntry struct {
	Path    []string
	Seconds float64
}
