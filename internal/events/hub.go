// Package events carries update notifications from sinks to attached
// viewers. Each sink owns a hub; callbacks register against named
// lifecycle phases and receive queued updates when the sink flushes.
package events

import (
	"sort"

	"github.com/brandonhippe/Advent-of-Code-Runner/internal/errors"
	"github.com/brandonhippe/Advent-of-Code-Runner/internal/tracker"
)

// DefaultEvent tags updates that carry no explicit event name.
const DefaultEvent = "on_log"

// Payload is the free-form detail attached to one update.
type Payload map[string]any

// clone copies a payload so callbacks never see shared mutable state.
func (p Payload) clone() Payload {
	out := make(Payload, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Source identifies the sink a notification came from.
type Source interface {
	Name() string
}

// Callback handles one flushed update.
type Callback func(src Source, event string, keys []string, verbose bool, payload Payload)

// Update is one queued notification.
type Update struct {
	Keys    []string
	Payload Payload
}

// Hub holds the pending update queue and the per-phase callback lists.
// Hubs are not safe for concurrent use; sinks drive them from one
// goroutine.
type Hub struct {
	PostLoad []Callback
	OnLog    []Callback
	PreExit  []Callback
	OnExit   []Callback
	PostExit []Callback

	pending  []Update
	flushing bool
}

// New creates an empty hub.
func New() *Hub {
	return &Hub{}
}

// Enqueue queues one update for the next flush.
func (h *Hub) Enqueue(keys []string, payload Payload) {
	h.pending = append(h.pending, Update{
		Keys:    append([]string{}, keys...),
		Payload: payload.clone(),
	})
}

// Pending returns the number of queued updates.
func (h *Hub) Pending() int {
	return len(h.pending)
}

// Flush replays every queued update through the given callbacks, most
// specific first: updates with more key segments run before shallower
// ones, ties ordered by segment values. defaults fill payload fields the
// update did not set; the "event" field defaults to DefaultEvent. A
// flush from inside a callback is a FLUSH error. Flushing an empty queue
// is a no-op.
func (h *Hub) Flush(callbacks []Callback, src Source, verbose bool, defaults Payload) error {
	if h.flushing {
		return errors.New(errors.ErrFlush,
			"flush requested while a flush is in progress",
			"do not enqueue-and-flush from inside an event callback")
	}
	if len(h.pending) == 0 {
		return nil
	}
	h.flushing = true
	defer func() { h.flushing = false }()

	batch := make([]Update, len(h.pending))
	copy(batch, h.pending)
	sort.SliceStable(batch, func(i, j int) bool {
		a, b := batch[i].Keys, batch[j].Keys
		if len(a) != len(b) {
			return len(a) > len(b)
		}
		for k := range a {
			if a[k] != b[k] {
				return tracker.SegmentLess(a[k], b[k])
			}
		}
		return false
	})

	for _, u := range batch {
		payload := u.Payload.clone()
		for k, v := range defaults {
			if _, ok := payload[k]; !ok {
				payload[k] = v
			}
		}
		event := DefaultEvent
		if e, ok := payload["event"].(string); ok && e != "" {
			event = e
		}
		payload["event"] = event
		for _, cb := range callbacks {
			cb(src, event, u.Keys, verbose, payload)
		}
	}
	h.pending = nil
	return nil
}
