// Package lifecycle bridges note change events into the generic
// lifecycle.Source contract, so applications can plug the notes backend
// into a lifecycle-managed event pipeline.
package lifecycle

import (
	"context"

	"github.com/aretw0/lifecycle"

	"github.com/jotapp/jot/pkg/core"
)

type noteSource struct {
	events <-chan core.Event
	out    chan lifecycle.Event
}

// NewSource creates a lifecycle.Source that emits note change events.
// It bridges the typed event channel to the generic lifecycle Event
// interface.
func NewSource(events <-chan core.Event) lifecycle.Source {
	return &noteSource{
		events: events,
		out:    make(chan lifecycle.Event),
	}
}

func (s *noteSource) Events() <-chan lifecycle.Event {
	return s.out
}

func (s *noteSource) Start(ctx context.Context) error {
	// lifecycle.Go tracks the bridge goroutine itself
	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(s.out)
		for {
			select {
			case <-ctx.Done():
				return nil
			case e, ok := <-s.events:
				if !ok {
					return nil
				}
				// core.Event implements lifecycle.Event (has String())
				select {
				case s.out <- e:
				case <-ctx.Done():
					return nil
				}
			}
		}
	})
	return nil
}
