package platform

import (
	"log/slog"
	"time"

	"github.com/jotapp/jot/pkg/core"
	"github.com/jotapp/jot/pkg/noteid"
)

// options holds the internal configuration assembled from Option values.
type options struct {
	store   core.Store
	logger  *slog.Logger
	adapter string
	config  map[string]interface{}
}

// Option defines a functional option for configuring the service.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		store:   nil,
		logger:  nil,
		adapter: "notesdir",
		config:  make(map[string]interface{}),
	}
}

// WithLogger sets the logger for the service and its store.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithStore injects a custom storage adapter (e.g. a mock).
// If provided, the default notesdir adapter is skipped.
func WithStore(store core.Store) Option {
	return func(o *options) {
		o.store = store
	}
}

// WithAdapter selects the storage adapter by name. Defaults to "notesdir".
func WithAdapter(name string) Option {
	return func(o *options) {
		o.adapter = name
	}
}

// WithMustExist requires the notes directory to already exist instead of
// creating it on first use.
func WithMustExist(must bool) Option {
	return func(o *options) {
		o.config["must_exist"] = must
	}
}

// WithIDGenerator overrides how ids for new notes are generated.
func WithIDGenerator(g noteid.Generator) Option {
	return func(o *options) {
		o.config["ids"] = g
	}
}

// WithEventBuffer sets the size of the watch event buffer.
// Zero means default (100).
func WithEventBuffer(size int) Option {
	return func(o *options) {
		o.config["event_buffer"] = size
	}
}

// WithIgnore sets glob patterns for note ids the watcher should not report.
func WithIgnore(patterns ...string) Option {
	return func(o *options) {
		o.config["ignore"] = patterns
	}
}

// WithDebounce sets the interval used to coalesce watch events per note.
func WithDebounce(d time.Duration) Option {
	return func(o *options) {
		o.config["debounce"] = d
	}
}

// WithWatcherErrorHandler registers a callback to handle errors occurring
// during the watch loop, which are otherwise only logged.
func WithWatcherErrorHandler(fn func(error)) Option {
	return func(o *options) {
		o.config["watcher_error_handler"] = fn
	}
}
