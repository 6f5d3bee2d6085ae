package notesdir

import (
	"github.com/aretw0/introspection"
)

// StoreState exposes internal state for observability.
type StoreState struct {
	Dir           string   `json:"dir"`
	WatcherActive bool     `json:"watcher_active"`
	EventsSeen    int64    `json:"events_seen"`
	Ignore        []string `json:"ignore,omitempty"`
	DebounceMS    int64    `json:"debounce_ms"`
}

// State implements introspection.Introspectable.
func (s *Store) State() any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return StoreState{
		Dir:           s.Dir,
		WatcherActive: s.watcherActive,
		EventsSeen:    s.eventsSeen,
		Ignore:        s.config.Ignore,
		DebounceMS:    s.config.Debounce.Milliseconds(),
	}
}

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string {
	return "notesdir"
}

var _ introspection.Introspectable = (*Store)(nil)
var _ introspection.Component = (*Store)(nil)

func (s *Store) setWatcherActive(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.watcherActive = active
}

func (s *Store) recordEvent() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.eventsSeen++
}
