package reactivity

import (
	"context"
	"testing"
	"time"

	"github.com/jotapp/jot/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

// MockWatchStore implements core.Store and core.Watchable.
// We only implement what's needed for the test.
type MockWatchStore struct {
	UpstreamCh chan core.Event
}

func (m *MockWatchStore) Watch(ctx context.Context, pattern string) (<-chan core.Event, error) {
	return m.UpstreamCh, nil
}

// Stubs for the other methods to satisfy core.Store
func (m *MockWatchStore) Create(ctx context.Context) (core.Note, error)        { return core.Note{}, nil }
func (m *MockWatchStore) List(ctx context.Context) ([]core.Note, error)        { return nil, nil }
func (m *MockWatchStore) Update(ctx context.Context, id, content string) error { return nil }
func (m *MockWatchStore) Delete(ctx context.Context, id string) error          { return nil }
func (m *MockWatchStore) Initialize(ctx context.Context) error                 { return nil }

func TestEventBroker_Decoupling(t *testing.T) {
	defer goleak.VerifyNone(t)

	// Unbuffered upstream, so any write blocks unless there is a reader.
	store := &MockWatchStore{
		UpstreamCh: make(chan core.Event),
	}

	service := core.NewService(store)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stream, err := service.Watch(ctx, "*")
	require.NoError(t, err)

	// Simulate a slow consumer: do NOT read from stream yet.
	// A fast producer pushes 5 events; without the broker buffer this
	// would hang at the first send.
	done := make(chan bool)
	go func() {
		for i := 0; i < 5; i++ {
			select {
			case store.UpstreamCh <- core.Event{Type: core.EventModify, ID: "evt"}:
				// Sent
			case <-time.After(1 * time.Second):
				t.Error("producer blocked, events are not being buffered")
				close(done)
				return
			}
		}
		close(done)
	}()

	select {
	case <-done:
		// Producer finished even though nothing was read yet
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for producer")
	}

	count := 0
	timeout := time.After(1 * time.Second)
	for i := 0; i < 5; i++ {
		select {
		case <-stream:
			count++
		case <-timeout:
			t.Fatal("failed to read buffered events")
		}
	}
	assert.Equal(t, 5, count)

	// Shut the pump down and drain so goleak sees a clean exit.
	cancel()
	for range stream {
	}
}

func TestEventBroker_ClosesOnUpstreamClose(t *testing.T) {
	defer goleak.VerifyNone(t)

	store := &MockWatchStore{
		UpstreamCh: make(chan core.Event, 1),
	}

	service := core.NewService(store)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stream, err := service.Watch(ctx, "*")
	require.NoError(t, err)

	store.UpstreamCh <- core.Event{Type: core.EventCreate, ID: "last"}
	close(store.UpstreamCh)

	event, ok := <-stream
	require.True(t, ok, "buffered event should still be delivered")
	assert.Equal(t, "last", event.ID)

	_, ok = <-stream
	assert.False(t, ok, "stream should close once upstream closes")
}
