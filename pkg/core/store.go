package core

import "context"

// Store defines the contract for persisting notes.
// Adhering to this interface keeps the core independent of the underlying
// storage mechanism (a flat directory of files today, anything tomorrow).
type Store interface {
	// Create allocates a fresh note with empty content and returns it.
	// Identifier collisions are resolved internally within a bounded
	// number of attempts; running out surfaces ErrCreationExhausted.
	Create(ctx context.Context) (Note, error)

	// List returns all notes in descending id order.
	// A failure reading any single note aborts the whole listing.
	List(ctx context.Context) ([]Note, error)

	// Update overwrites the note's content in full, creating the note if
	// it does not exist. No merge, no append.
	Update(ctx context.Context, id string, content string) error

	// Delete removes a note by its id. Deleting an absent note succeeds.
	Delete(ctx context.Context, id string) error

	// Initialize ensures the underlying storage is ready (e.g. create the
	// notes directory). Idempotent.
	Initialize(ctx context.Context) error
}

// Watchable defines an interface for stores that can report external
// changes to their contents.
type Watchable interface {
	// Watch emits an Event for every observed change to a note matching
	// pattern until ctx is cancelled.
	Watch(ctx context.Context, pattern string) (<-chan Event, error)
}
