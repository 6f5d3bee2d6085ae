package jot

import (
	"log/slog"
	"time"

	"github.com/jotapp/jot/internal/appdir"
	"github.com/jotapp/jot/internal/platform"
	"github.com/jotapp/jot/pkg/core"
	"github.com/jotapp/jot/pkg/noteid"
)

// Version exposes the version of the library and the jot binary.
const Version = "0.1.0"

// --- Types ---

// Note is a public alias for the core note model.
type Note = core.Note

// Event is a public alias for the core watch event.
type Event = core.Event

// EventType is a public alias for the core watch event type.
type EventType = core.EventType

// Service is a public alias for the core note service.
type Service = core.Service

// Store is a public alias for the core storage port.
type Store = core.Store

// Watch event types.
const (
	EventCreate = core.EventCreate
	EventModify = core.EventModify
	EventDelete = core.EventDelete
)

// --- Configuration ---

// Option defines a functional option for configuring jot.
type Option = platform.Option

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithStore allows injecting a custom storage adapter.
func WithStore(store core.Store) Option {
	return platform.WithStore(store)
}

// WithAdapter allows specifying the storage adapter to use by name.
func WithAdapter(name string) Option {
	return platform.WithAdapter(name)
}

// WithMustExist ensures the notes directory must already exist.
func WithMustExist(must bool) Option {
	return platform.WithMustExist(must)
}

// WithIDGenerator overrides how ids for new notes are generated.
func WithIDGenerator(g noteid.Generator) Option {
	return platform.WithIDGenerator(g)
}

// WithEventBuffer allows specifying the size of the watch event buffer.
func WithEventBuffer(size int) Option {
	return platform.WithEventBuffer(size)
}

// WithIgnore sets glob patterns for note ids the watcher should not report.
func WithIgnore(patterns ...string) Option {
	return platform.WithIgnore(patterns...)
}

// WithDebounce sets the interval used to coalesce watch events per note.
func WithDebounce(d time.Duration) Option {
	return platform.WithDebounce(d)
}

// WithWatcherErrorHandler registers a callback to handle errors occurring
// during the watch loop.
func WithWatcherErrorHandler(fn func(error)) Option {
	return platform.WithWatcherErrorHandler(fn)
}

// --- Factory ---

// New creates a new note Service.
func New(dir string, opts ...Option) (*core.Service, error) {
	return platform.New(dir, opts...)
}

// Init initializes a store explicitly.
func Init(dir string, opts ...Option) (core.Store, error) {
	return platform.Init(dir, opts...)
}

// --- Utils ---

// DefaultDir returns the notes directory used when no explicit path is given.
func DefaultDir() (string, error) {
	return appdir.NotesDir(platform.AppName)
}
