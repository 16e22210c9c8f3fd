package sink

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brandonhippe/Advent-of-Code-Runner/internal/errors"
	"github.com/brandonhippe/Advent-of-Code-Runner/internal/events"
	"github.com/brandonhippe/Advent-of-Code-Runner/internal/logger"
	"github.com/brandonhippe/Advent-of-Code-Runner/internal/tracker"
)

type fakeOracle struct {
	known       map[string]map[int]string
	right       map[string]string
	knownCalls  int
	submitCalls int
}

func dayKey(year, day int) string            { return fmt.Sprintf("%d/%d", year, day) }
func partKey(year, day, part int) string     { return fmt.Sprintf("%d/%d/%d", year, day, part) }
func (o *fakeOracle) addKnown(year, day, part int, ans string) {
	if o.known == nil {
		o.known = map[string]map[int]string{}
	}
	if o.known[dayKey(year, day)] == nil {
		o.known[dayKey(year, day)] = map[int]string{}
	}
	o.known[dayKey(year, day)][part] = ans
}

func (o *fakeOracle) KnownAnswers(year, day int) (map[int]string, error) {
	o.knownCalls++
	return o.known[dayKey(year, day)], nil
}

func (o *fakeOracle) Submit(year, day, part int, answer string) (bool, error) {
	o.submitCalls++
	return o.right[partKey(year, day, part)] == answer, nil
}

func testOptions(t *testing.T, file string) Options {
	t.Helper()
	return Options{
		File: file,
		Log:  logger.NewNoop(),
	}
}

func TestAnswerSinkRecordAndCheck(t *testing.T) {
	oracle := &fakeOracle{}
	oracle.addKnown(2023, 1, 1, "42")
	s := NewAnswerSink(testOptions(t, ""), oracle)

	require.NoError(t, s.Record("python", 2023, 1, 1, "42", ""))
	assert.True(t, s.Correct(2023, 1, 1, "42"))
	assert.False(t, s.Tracker().Contains([]string{tracker.IncorrectKey}))

	// Second language, same part: the cached verdict answers.
	require.NoError(t, s.Record("rust", 2023, 1, 1, "42", ""))
	assert.Equal(t, 1, oracle.knownCalls)
	assert.Equal(t, 0, oracle.submitCalls)
	assert.Equal(t, 2, s.Hub().Pending())
}

func TestAnswerSinkWrongAnswerShadowed(t *testing.T) {
	oracle := &fakeOracle{}
	oracle.addKnown(2023, 1, 1, "42")
	s := NewAnswerSink(testOptions(t, ""), oracle)

	require.NoError(t, s.Record("python", 2023, 1, 1, "41", ""))

	v, err := s.Tracker().Get([]string{tracker.IncorrectKey, "python", "2023", "1", "1"})
	require.NoError(t, err)
	assert.Equal(t, "41", v.Str)

	// The main tree still records what the solution produced.
	v, err = s.Tracker().Get([]string{"python", "2023", "1", "1"})
	require.NoError(t, err)
	assert.Equal(t, "41", v.Str)
}

func TestAnswerSinkSubmitsUnknownAnswers(t *testing.T) {
	oracle := &fakeOracle{right: map[string]string{partKey(2023, 1, 1): "42"}}
	s := NewAnswerSink(testOptions(t, ""), oracle)

	require.NoError(t, s.Record("python", 2023, 1, 1, "42", ""))
	assert.Equal(t, 1, oracle.submitCalls)
	assert.True(t, s.Correct(2023, 1, 1, "42"))

	// A correct verdict ends the submissions for that part.
	require.NoError(t, s.Record("rust", 2023, 1, 1, "42", ""))
	assert.Equal(t, 1, oracle.submitCalls)
}

func TestAnswerSinkRejectedSubmissionRetries(t *testing.T) {
	oracle := &fakeOracle{right: map[string]string{partKey(2023, 1, 1): "42"}}
	s := NewAnswerSink(testOptions(t, ""), oracle)

	require.NoError(t, s.Record("python", 2023, 1, 1, "41", ""))
	assert.True(t, s.Tracker().Contains([]string{tracker.IncorrectKey, "python", "2023", "1", "1"}))

	// No verdict was cached, so the next attempt submits again.
	require.NoError(t, s.Record("python", 2023, 1, 1, "42", ""))
	assert.Equal(t, 2, oracle.submitCalls)
	assert.True(t, s.Correct(2023, 1, 1, "42"))
}

func TestAnswerSinkExemptions(t *testing.T) {
	oracle := &fakeOracle{}
	s := NewAnswerSink(testOptions(t, ""), oracle)

	require.NoError(t, s.Record("python", 2023, 25, 2, "Merry Christmas", ""))
	require.NoError(t, s.Record("python", 2023, 2, 1, "", ""))

	assert.Equal(t, 0, oracle.knownCalls)
	assert.Equal(t, 0, oracle.submitCalls)
}

func TestAnswerSinkValidation(t *testing.T) {
	s := NewAnswerSink(testOptions(t, ""), nil)

	tests := []struct {
		lang string
		day  int
		part int
	}{
		{"", 1, 1},
		{"python", 0, 1},
		{"python", 26, 1},
		{"python", 1, 3},
	}
	for _, tt := range tests {
		err := s.Record(tt.lang, 2023, tt.day, tt.part, "x", "")
		require.Error(t, err)
		assert.True(t, errors.IsCode(err, errors.ErrKey))
	}
}

func TestAnswerSinkRoundTrip(t *testing.T) {
	file := filepath.Join(t.TempDir(), "answers.yaml")
	oracle := &fakeOracle{}
	oracle.addKnown(2023, 1, 1, "42")

	s := NewAnswerSink(testOptions(t, file), oracle)
	require.NoError(t, s.Open())
	require.NoError(t, s.Record("python", 2023, 1, 1, "42", ""))
	require.NoError(t, s.Record("python", 2023, 1, 2, "41", ""))
	require.NoError(t, s.Record("rust", 2023, 1, 1, "43", ""))
	require.NoError(t, s.Close(nil))

	reloaded := NewAnswerSink(testOptions(t, file), oracle)
	require.NoError(t, reloaded.Open())

	v, err := reloaded.Tracker().Get([]string{"python", "2023", "1", "1"})
	require.NoError(t, err)
	assert.Equal(t, "42", v.Str)

	// rust's wrong answer came back in the shadow subtree.
	v, err = reloaded.Tracker().Get([]string{tracker.IncorrectKey, "rust", "2023", "1", "1"})
	require.NoError(t, err)
	assert.Equal(t, "43", v.Str)

	// Loading queues nothing for a future flush.
	assert.Equal(t, 0, reloaded.Hub().Pending())
}

func TestCloseAbortsSaveOnRunError(t *testing.T) {
	file := filepath.Join(t.TempDir(), "answers.yaml")
	s := NewAnswerSink(testOptions(t, file), nil)
	require.NoError(t, s.Open())
	require.NoError(t, s.Record("python", 2023, 1, 1, "42", ""))

	require.NoError(t, s.Close(fmt.Errorf("run exploded")))
	_, err := os.Stat(file)
	assert.True(t, os.IsNotExist(err))
}

func TestRuntimeSinkSummaries(t *testing.T) {
	s := NewRuntimeSink(testOptions(t, ""), 0)

	require.NoError(t, s.Record("python", 2023, 1, 1, 0.5, ""))
	assert.Equal(t, 1, s.Hub().Pending())

	require.NoError(t, s.Record("python", 2023, 1, 2, 1.5, ""))
	// Leaf plus the now-complete day total.
	assert.Equal(t, 3, s.Hub().Pending())

	require.NoError(t, s.Record("python", 2023, 2, 1, 1.0, ""))
	// Leaf plus the yearly average (two days recorded).
	assert.Equal(t, 5, s.Hub().Pending())
}

func TestRuntimeSinkMinMaxPayloads(t *testing.T) {
	s := NewRuntimeSink(testOptions(t, ""), 0)
	require.NoError(t, s.Record("python", 2023, 1, 1, 0.5, ""))
	require.NoError(t, s.Record("python", 2023, 2, 1, 1.5, ""))

	var payloads []events.Payload
	cb := func(src events.Source, event string, keys []string, verbose bool, p events.Payload) {
		if len(keys) == 4 {
			payloads = append(payloads, p)
		}
	}
	require.NoError(t, s.Hub().Flush([]events.Callback{cb}, s, false, nil))

	require.Len(t, payloads, 2)
	// Day 1 first: it set both extremes.
	assert.Equal(t, 0.5, payloads[0]["min_time"])
	assert.Equal(t, 0.5, payloads[0]["max_time"])
	// Day 2 only raised the maximum.
	assert.Equal(t, 1.5, payloads[1]["max_time"])
	assert.NotContains(t, payloads[1], "min_time")
}

func TestRuntimeSinkExitFlushCoversTree(t *testing.T) {
	file := filepath.Join(t.TempDir(), "runtimes.yaml")
	s := NewRuntimeSink(testOptions(t, file), 0)
	require.NoError(t, s.Open())

	var events25 int
	var gotEvents []string
	s.Hub().OnExit = append(s.Hub().OnExit, func(src events.Source, event string, keys []string, verbose bool, p events.Payload) {
		gotEvents = append(gotEvents, event)
		if len(keys) == 4 {
			events25++
		}
	})

	require.NoError(t, s.Record("python", 2023, 1, 1, 0.5, ""))
	require.NoError(t, s.Record("python", 2023, 1, 2, 1.5, ""))
	require.NoError(t, s.Close(nil))

	// Two queued leaves, one day total, plus both leaves replayed by the
	// exit sweep.
	require.Len(t, gotEvents, 5)
	for _, e := range gotEvents {
		assert.Equal(t, EventOnExit, e)
	}
	assert.Equal(t, 4, events25)

	reloaded := NewRuntimeSink(testOptions(t, file), 0)
	require.NoError(t, reloaded.Open())
	assert.Equal(t, 2, reloaded.Tracker().Size())

	total, err := reloaded.Tracker().Total([]string{"python", "2023", "1"})
	require.NoError(t, err)
	assert.Equal(t, 2.0, total)
}

func TestRuntimeSinkSlowest(t *testing.T) {
	s := NewRuntimeSink(testOptions(t, ""), 2)
	require.NoError(t, s.Record("python", 2023, 1, 1, 0.5, ""))
	require.NoError(t, s.Record("rust", 2023, 1, 1, 2.5, ""))
	require.NoError(t, s.Record("c", 2023, 1, 1, 1.0, ""))

	slowest := s.Slowest()
	require.Len(t, slowest, 2)
	assert.Equal(t, []string{"rust", "2023", "1", "1"}, slowest[0].Path)
	assert.Equal(t, 2.5, slowest[0].Seconds)
	assert.Equal(t, []string{"c", "2023", "1", "1"}, slowest[1].Path)
}

func TestAnswerSinkStars(t *testing.T) {
	s := NewAnswerSink(testOptions(t, ""), nil)
	for day := 1; day <= 25; day++ {
		require.NoError(t, s.Record("python", 2023, day, 1, "x", ""))
		if day < 25 {
			require.NoError(t, s.Record("python", 2023, day, 2, "y", ""))
		}
	}
	require.NoError(t, s.Record("rust", 2022, 1, 1, "z", ""))

	stars := s.Stars()
	assert.Equal(t, 50, stars[2023])
	assert.Equal(t, 1, stars[2022])
}

func TestFlushDeliversToOnLog(t *testing.T) {
	s := NewAnswerSink(testOptions(t, ""), nil)

	var gotEvents []string
	var gotKeys [][]string
	s.Hub().OnLog = append(s.Hub().OnLog, func(src events.Source, event string, keys []string, verbose bool, p events.Payload) {
		gotEvents = append(gotEvents, event)
		gotKeys = append(gotKeys, keys)
	})

	require.NoError(t, s.Record("python", 2023, 1, 1, "42", EventOnRun))
	require.NoError(t, s.Flush())

	require.Len(t, gotEvents, 1)
	assert.Equal(t, EventOnRun, gotEvents[0])
	assert.Equal(t, []string{"2023", "1", "1", "python"}, gotKeys[0])
	assert.Equal(t, 0, s.Hub().Pending())

	// A drained queue flushes as a no-op.
	require.NoError(t, s.Flush())
	require.Len(t, gotEvents, 1)
}

func TestFlushAllDrainsEverySink(t *testing.T) {
	answers := NewAnswerSink(testOptions(t, ""), nil)
	runtimes := NewRuntimeSink(testOptions(t, ""), 0)

	var fired []string
	log := func(name string) events.Callback {
		return func(src events.Source, event string, keys []string, verbose bool, p events.Payload) {
			fired = append(fired, name)
		}
	}
	answers.Hub().OnLog = append(answers.Hub().OnLog, log("answers"))
	runtimes.Hub().OnLog = append(runtimes.Hub().OnLog, log("runtimes"))

	m := Measurement{
		Lang: "python", Year: 2023, Day: 1, Part: 1,
		Answer: "42", HasAnswer: true,
		Seconds: 0.5, HasSeconds: true,
	}
	require.NoError(t, Record(m, EventOnRun, answers, runtimes))
	require.NoError(t, FlushAll(answers, runtimes))

	assert.Contains(t, fired, "answers")
	assert.Contains(t, fired, "runtimes")
	assert.Equal(t, 0, answers.Hub().Pending())
	assert.Equal(t, 0, runtimes.Hub().Pending())
}

func TestRecordFansOut(t *testing.T) {
	answers := NewAnswerSink(testOptions(t, ""), nil)
	runtimes := NewRuntimeSink(testOptions(t, ""), 0)

	m := Measurement{
		Lang: "python", Year: 2023, Day: 1, Part: 1,
		Answer: "42", HasAnswer: true,
		Seconds: 0.5, HasSeconds: true,
	}
	require.NoError(t, Record(m, "", answers, runtimes))

	assert.True(t, answers.Tracker().Contains([]string{"python", "2023", "1", "1"}))
	assert.True(t, runtimes.Tracker().Contains([]string{"python", "2023", "1", "1"}))
}
