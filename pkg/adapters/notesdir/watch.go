package notesdir

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/aretw0/lifecycle/pkg/core/supervisor"
	"github.com/aretw0/lifecycle/pkg/core/worker"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"github.com/jotapp/jot/pkg/core"
)

const defaultDebounce = 50 * time.Millisecond

// Watch starts a supervised watcher on the notes directory and returns the
// event channel. Pattern is a doublestar expression matched against note
// ids ("*" matches all). The watcher restarts on failure with bounded
// backoff and stops when ctx is cancelled, closing the channel.
func (s *Store) Watch(ctx context.Context, pattern string) (<-chan core.Event, error) {
	if pattern == "" {
		pattern = "*"
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid watch pattern: %s", pattern)
	}

	events := make(chan core.Event)

	spec := supervisor.Spec{
		Name: "notesdir-watcher",
		Type: string(worker.TypeGoroutine),
		Factory: func() (worker.Worker, error) {
			return newWatchWorker(s, pattern, events), nil
		},
		Backoff: supervisor.Backoff{
			InitialInterval: 100 * time.Millisecond,
			MaxInterval:     5 * time.Second,
			Multiplier:      2,
			ResetDuration:   30 * time.Second,
			MaxRestarts:     5,
			MaxDuration:     time.Minute,
		},
		RestartPolicy: supervisor.RestartOnFailure,
	}

	sup := supervisor.New("notesdir", supervisor.StrategyOneForOne, spec)
	if err := sup.Start(ctx); err != nil {
		return nil, fmt.Errorf("failed to start watcher: %w", err)
	}

	// Tear down with the context. Stop waits for the worker to drain its
	// debouncer, so closing the channel afterwards is safe.
	lifecycle.Go(ctx, func(ctx context.Context) error {
		<-ctx.Done()
		stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := sup.Stop(stopCtx)
		close(events)
		return err
	}, lifecycle.WithErrorHandler(func(err error) {
		if s.config.ErrorHandler != nil {
			s.config.ErrorHandler(err)
		} else if s.config.Logger != nil {
			s.config.Logger.Error("watcher shutdown failed", "error", err)
		}
	}))

	return events, nil
}

// mapEventType converts an fsnotify op into a domain event type.
// Unmapped ops (chmod) yield an empty type.
func (s *Store) mapEventType(event fsnotify.Event) core.EventType {
	switch {
	case event.Has(fsnotify.Create):
		return core.EventCreate
	case event.Has(fsnotify.Write):
		return core.EventModify
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		return core.EventDelete
	}
	return ""
}

// resolveID maps an event path back to a note id. Paths that are not note
// files resolve to an empty id.
func (s *Store) resolveID(name string) string {
	base := filepath.Base(name)
	ext := filepath.Ext(base)
	if !strings.EqualFold(ext, noteExt) {
		return ""
	}
	return strings.TrimSuffix(base, ext)
}

// shouldIgnore filters events that are not about matching notes: non-note
// files, ids excluded by the configured ignore patterns, and ids outside
// the watch pattern.
func (s *Store) shouldIgnore(event fsnotify.Event, pattern string) bool {
	id := s.resolveID(event.Name)
	if id == "" {
		return true
	}

	for _, ig := range s.config.Ignore {
		if ok, err := doublestar.Match(ig, id); err == nil && ok {
			return true
		}
	}

	if pattern != "*" {
		ok, err := doublestar.Match(pattern, id)
		if err != nil || !ok {
			return true
		}
	}

	return false
}
