package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brandonhippe/Advent-of-Code-Runner/internal/errors"
)

type testSource string

func (s testSource) Name() string { return string(s) }

func TestFlushOrdersBySpecificity(t *testing.T) {
	h := New()
	h.Enqueue([]string{"2023"}, Payload{"time": 3.0})
	h.Enqueue([]string{"2023", "1", "1", "python"}, Payload{"time": 0.5})
	h.Enqueue([]string{"2023", "1"}, Payload{"time": 2.0})

	var order [][]string
	cb := func(src Source, event string, keys []string, verbose bool, payload Payload) {
		order = append(order, keys)
	}

	require.NoError(t, h.Flush([]Callback{cb}, testSource("runtimes"), false, nil))

	require.Len(t, order, 3)
	assert.Equal(t, []string{"2023", "1", "1", "python"}, order[0])
	assert.Equal(t, []string{"2023", "1"}, order[1])
	assert.Equal(t, []string{"2023"}, order[2])
	assert.Equal(t, 0, h.Pending())
}

func TestFlushMergesDefaults(t *testing.T) {
	h := New()
	h.Enqueue([]string{"2023", "1", "1", "python"}, Payload{"time": 0.5})
	h.Enqueue([]string{"2023", "1", "2", "python"}, Payload{"time": 1.5, "event": "on_load"})

	var events []string
	var sources []string
	cb := func(src Source, event string, keys []string, verbose bool, payload Payload) {
		events = append(events, event)
		sources = append(sources, src.Name())
		assert.Equal(t, payload["event"], event)
	}

	err := h.Flush([]Callback{cb}, testSource("runtimes"), false, Payload{"event": "on_exit"})
	require.NoError(t, err)

	// The queued event wins over the default.
	assert.Equal(t, []string{"on_exit", "on_load"}, events)
	assert.Equal(t, []string{"runtimes", "runtimes"}, sources)
}

func TestFlushDefaultEvent(t *testing.T) {
	h := New()
	h.Enqueue([]string{"2023", "1", "1", "python"}, Payload{"ans": "42"})

	var got string
	cb := func(src Source, event string, keys []string, verbose bool, payload Payload) {
		got = event
	}
	require.NoError(t, h.Flush([]Callback{cb}, testSource("answers"), false, nil))
	assert.Equal(t, DefaultEvent, got)
}

func TestFlushEmptyQueueIsNoOp(t *testing.T) {
	h := New()
	called := false
	cb := func(src Source, event string, keys []string, verbose bool, payload Payload) {
		called = true
	}
	require.NoError(t, h.Flush([]Callback{cb}, testSource("answers"), false, nil))
	assert.False(t, called)
}

func TestFlushReentrancy(t *testing.T) {
	h := New()
	h.Enqueue([]string{"2023", "1", "1", "python"}, Payload{"ans": "42"})

	var inner error
	cb := func(src Source, event string, keys []string, verbose bool, payload Payload) {
		h.Enqueue([]string{"2023", "1", "2", "python"}, Payload{"ans": "7"})
		inner = h.Flush(nil, src, false, nil)
	}

	require.NoError(t, h.Flush([]Callback{cb}, testSource("answers"), false, nil))
	require.Error(t, inner)
	assert.True(t, errors.IsCode(inner, errors.ErrFlush))
}

func TestEnqueueCopiesInput(t *testing.T) {
	h := New()
	keys := []string{"2023", "1", "1", "python"}
	payload := Payload{"ans": "42"}
	h.Enqueue(keys, payload)

	keys[0] = "mutated"
	payload["ans"] = "mutated"

	var got []string
	var gotAns any
	cb := func(src Source, event string, keys []string, verbose bool, payload Payload) {
		got = keys
		gotAns = payload["ans"]
	}
	require.NoError(t, h.Flush([]Callback{cb}, testSource("answers"), false, nil))
	assert.Equal(t, "2023", got[0])
	assert.Equal(t, "42", gotAns)
}
