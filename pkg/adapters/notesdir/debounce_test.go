package notesdir

import (
	"sync"
	"testing"
	"time"

	"go.uber.org/goleak"

	"github.com/jotapp/jot/pkg/core"
)

func TestDebouncerCoalescesBursts(t *testing.T) {
	defer goleak.VerifyNone(t)

	d := newDebouncer(20 * time.Millisecond)

	var mu sync.Mutex
	var got []core.Event
	record := func(e core.Event) {
		mu.Lock()
		defer mu.Unlock()
		got = append(got, e)
	}

	// Five events for the same note within the quiet interval
	for i := 0; i < 4; i++ {
		d.add(core.Event{ID: "same", Type: core.EventCreate}, record)
	}
	d.add(core.Event{ID: "same", Type: core.EventModify}, record)

	time.Sleep(80 * time.Millisecond)
	d.stopAndWait(time.Second)

	mu.Lock()
	defer mu.Unlock()
	if len(got) != 1 {
		t.Fatalf("expected 1 coalesced event, got %d", len(got))
	}
	if got[0].Type != core.EventModify {
		t.Errorf("expected the last event to win, got %s", got[0].Type)
	}
}

func TestDebouncerKeysByID(t *testing.T) {
	defer goleak.VerifyNone(t)

	d := newDebouncer(10 * time.Millisecond)

	var mu sync.Mutex
	seen := make(map[string]int)
	record := func(e core.Event) {
		mu.Lock()
		defer mu.Unlock()
		seen[e.ID]++
	}

	d.add(core.Event{ID: "a"}, record)
	d.add(core.Event{ID: "b"}, record)

	time.Sleep(50 * time.Millisecond)
	d.stopAndWait(time.Second)

	mu.Lock()
	defer mu.Unlock()
	if seen["a"] != 1 || seen["b"] != 1 {
		t.Errorf("expected one callback per id, got %v", seen)
	}
}

func TestDebouncerStopDropsPending(t *testing.T) {
	defer goleak.VerifyNone(t)

	d := newDebouncer(time.Hour)

	fired := false
	d.add(core.Event{ID: "pending"}, func(core.Event) { fired = true })
	d.stopAndWait(time.Second)

	if fired {
		t.Error("expected pending timer to be dropped on stop")
	}

	// add after stop is a no-op
	d.add(core.Event{ID: "late"}, func(core.Event) { fired = true })
	time.Sleep(20 * time.Millisecond)
	if fired {
		t.Error("expected add after stop to be ignored")
	}
}
