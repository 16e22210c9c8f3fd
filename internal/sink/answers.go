package sink

import (
	"github.com/brandonhippe/Advent-of-Code-Runner/internal/errors"
	"github.com/brandonhippe/Advent-of-Code-Runner/internal/events"
	"github.com/brandonhippe/Advent-of-Code-Runner/internal/tracker"
)

const ansKey = "ans"

// Oracle knows the correct answers. The web client implements it against
// adventofcode.com; tests swap in a fake.
type Oracle interface {
	// KnownAnswers returns the already-solved answers for a day, keyed
	// by part.
	KnownAnswers(year, day int) (map[int]string, error)
	// Submit posts a candidate answer and reports whether it was right.
	Submit(year, day, part int, answer string) (bool, error)
}

// AnswerSink records puzzle answers, checks them against the oracle and
// keeps wrong submissions in the incorrect shadow subtree. The oracle is
// consulted at most once per (year, day, part) per process; the verdict
// is cached in an unpersisted side tracker.
type AnswerSink struct {
	base
	oracle  Oracle
	correct *tracker.Tracker
}

// NewAnswerSink creates the answers sink. oracle may be nil, which
// disables answer checking.
func NewAnswerSink(opts Options, oracle Oracle) *AnswerSink {
	return &AnswerSink{
		base:    newBase("answers", ansKey, tracker.AnswerKind{}, opts),
		oracle:  oracle,
		correct: tracker.NewWithFlags(tracker.AnswerKind{}, false, false),
	}
}

func (s *AnswerSink) Open() error {
	return s.open(s, func(l replayLeaf) error {
		if l.Incorrect {
			path := append([]string{tracker.IncorrectKey}, pathOf(l.Lang, l.Year, l.Day, l.Part)...)
			return s.trk.AddData(path, tracker.StringValue(l.Str))
		}
		return s.Record(l.Lang, l.Year, l.Day, l.Part, l.Str, EventOnLoad)
	})
}

func (s *AnswerSink) Close(runErr error) error {
	return s.close(s, runErr)
}

func (s *AnswerSink) Flush() error {
	return s.flush(s)
}

func (s *AnswerSink) RecordMeasurement(m Measurement, event string) error {
	if !m.HasAnswer {
		return nil
	}
	return s.Record(m.Lang, m.Year, m.Day, m.Part, m.Answer, event)
}

// Record stores one answer. Day 25 part 2 and empty answers are exempt
// from checking; everything else is compared against the cached correct
// answer, with wrong submissions shadowed under the incorrect subtree.
func (s *AnswerSink) Record(lang string, year, day, part int, answer, event string) error {
	if err := validate(lang, year, day, part); err != nil {
		return err
	}

	if err := s.trk.AddData(pathOf(lang, year, day, part), tracker.StringValue(answer)); err != nil {
		return err
	}

	exempt := (day == 25 && part == 2) || answer == ""
	if !exempt && s.oracle != nil {
		if err := s.check(lang, year, day, part, answer); err != nil {
			return err
		}
	}

	if event != EventOnLoad {
		payload := events.Payload{ansKey: answer}
		if event != "" {
			payload["event"] = event
		}
		s.hub.Enqueue(keysOf(lang, year, day, part), payload)
	}
	return nil
}

func (s *AnswerSink) check(lang string, year, day, part int, answer string) error {
	cpath := []string{itoa(year), itoa(day), itoa(part)}

	if !s.correct.Contains(cpath) {
		known, err := s.oracle.KnownAnswers(year, day)
		if err != nil {
			return errors.WrapWithCode(err, errors.ErrWeb,
				"Cannot fetch known answers",
				"Check your session cookie and network connection")
		}
		if want, ok := known[part]; ok {
			if err := s.correct.AddData(cpath, tracker.StringValue(want)); err != nil {
				return err
			}
		} else {
			right, err := s.oracle.Submit(year, day, part, answer)
			if err != nil {
				return errors.WrapWithCode(err, errors.ErrWeb,
					"Cannot submit answer",
					"Check your session cookie and network connection")
			}
			if right {
				return s.correct.AddData(cpath, tracker.StringValue(answer))
			}
			return s.markIncorrect(lang, year, day, part, answer)
		}
	}

	want, err := s.correct.Get(cpath)
	if err != nil {
		return err
	}
	if answer != want.Str {
		return s.markIncorrect(lang, year, day, part, answer)
	}
	return nil
}

func (s *AnswerSink) markIncorrect(lang string, year, day, part int, answer string) error {
	s.log.Warn("answers: %s %d day %d part %d: %q is not the right answer", lang, year, day, part, answer)
	path := append([]string{tracker.IncorrectKey}, pathOf(lang, year, day, part)...)
	return s.trk.AddData(path, tracker.StringValue(answer))
}

// Correct reports whether the cached verdict marks this answer right.
// Unknown coordinates report false.
func (s *AnswerSink) Correct(year, day, part int, answer string) bool {
	want, err := s.correct.Get([]string{itoa(year), itoa(day), itoa(part)})
	if err != nil {
		return false
	}
	return want.Str == answer
}

// Stars counts collected stars per year from the recorded answers: one
// per solved part, with day 25 part 2 granted once the other 49 are in.
func (s *AnswerSink) Stars() map[int]int {
	type dayPart struct{ day, part int }
	perYear := map[int]map[dayPart]bool{}
	_ = s.trk.WalkLeaves(func(p []string, v tracker.Value) error {
		if p[0] == tracker.IncorrectKey || len(p) != 4 || v.Str == "" {
			return nil
		}
		year, day, part := atoi(p[1]), atoi(p[2]), atoi(p[3])
		if perYear[year] == nil {
			perYear[year] = map[dayPart]bool{}
		}
		perYear[year][dayPart{day, part}] = true
		return nil
	})

	stars := map[int]int{}
	for year, parts := range perYear {
		n := len(parts)
		if n == 49 && parts[dayPart{25, 1}] {
			n = 50
		}
		stars[year] = n
	}
	return stars
}

func atoi(s string) int {
	n := 0
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0
		}
		n = n*10 + int(c-'0')
	}
	return n
}
