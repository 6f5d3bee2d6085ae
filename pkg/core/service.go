package core

import (
	"context"
	"errors"
	"sync"
)

// DefaultEventBuffer is the Watch broker buffer used when none is configured.
const DefaultEventBuffer = 100

// Service handles the business logic for notes.
type Service struct {
	store Store

	mu              sync.RWMutex
	eventBufferSize int
}

// NewService creates a new Service.
func NewService(store Store) *Service {
	return &Service{
		store:           store,
		eventBufferSize: DefaultEventBuffer,
	}
}

// SetEventBuffer adjusts the broker buffer used by Watch.
// Zero or negative restores the default.
func (s *Service) SetEventBuffer(size int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if size <= 0 {
		size = DefaultEventBuffer
	}
	s.eventBufferSize = size
}

// CreateNote allocates a fresh empty note and returns it.
func (s *Service) CreateNote(ctx context.Context) (Note, error) {
	return s.store.Create(ctx)
}

// ListNotes retrieves all notes, newest id first.
func (s *Service) ListNotes(ctx context.Context) ([]Note, error) {
	return s.store.List(ctx)
}

// UpdateNote overwrites a note's content in full. Unknown ids are created
// silently; there is no existence check.
//
// No id validation happens here: sanitization at the store boundary is
// total, and an empty id resolves to the fallback stem there.
func (s *Service) UpdateNote(ctx context.Context, id string, content string) error {
	return s.store.Update(ctx, id, content)
}

// DeleteNote removes a note. Deleting an absent id is success.
func (s *Service) DeleteNote(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}

// Watch observes changes in the store if supported.
//
// Events are re-emitted through a buffered channel so a slow consumer does
// not stall the store's watch loop.
func (s *Service) Watch(ctx context.Context, pattern string) (<-chan Event, error) {
	w, ok := s.store.(Watchable)
	if !ok {
		return nil, errors.New("store does not support watching")
	}

	upstream, err := w.Watch(ctx, pattern)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	size := s.eventBufferSize
	s.mu.RUnlock()

	out := make(chan Event, size)
	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case e, ok := <-upstream:
				if !ok {
					return
				}
				select {
				case out <- e:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}
