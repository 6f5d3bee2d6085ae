// Package notesdir implements core.Store on a flat directory of Markdown
// files. The directory is the database: every operation re-reads or
// re-writes the filesystem, and nothing is cached between calls.
package notesdir

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/jotapp/jot/pkg/core"
	"github.com/jotapp/jot/pkg/noteid"
)

const (
	noteExt = ".md"

	// maxCreateAttempts bounds the collision-retry loop in Create.
	maxCreateAttempts = 5
)

// Config holds the configuration for the directory-backed store.
type Config struct {
	// Dir is the notes directory itself. It should be absolute so that
	// note paths derived from it are absolute too.
	Dir string

	// MustExist makes Initialize fail when Dir is missing instead of
	// creating it.
	MustExist bool

	// Logger receives debug/error output. Nil disables logging.
	Logger *slog.Logger

	// IDs generates candidate identifiers for Create.
	// Nil means noteid.TimestampGenerator.
	IDs noteid.Generator

	// Ignore lists doublestar patterns of note ids excluded from Watch
	// events.
	Ignore []string

	// Debounce is the quiet interval the watcher waits before emitting an
	// event for a note. Zero means the default (50ms).
	Debounce time.Duration

	// ErrorHandler receives runtime watcher failures. Nil means they are
	// only logged.
	ErrorHandler func(error)
}

// Store implements core.Store using a single flat directory.
type Store struct {
	Dir    string
	config Config
	ids    noteid.Generator

	mu            sync.RWMutex
	watcherActive bool
	eventsSeen    int64
}

// New creates a new directory-backed store.
func New(config Config) *Store {
	ids := config.IDs
	if ids == nil {
		ids = noteid.TimestampGenerator{}
	}
	if config.Debounce <= 0 {
		config.Debounce = defaultDebounce
	}
	return &Store{
		Dir:    config.Dir,
		config: config,
		ids:    ids,
	}
}

// Initialize performs the necessary setup for the store.
func (s *Store) Initialize(ctx context.Context) error {
	if s.config.MustExist {
		info, err := os.Stat(s.Dir)
		if os.IsNotExist(err) {
			return fmt.Errorf("notes directory does not exist: %s", s.Dir)
		}
		if err != nil {
			return fmt.Errorf("failed to stat notes directory: %w", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("notes path is not a directory: %s", s.Dir)
		}
		return nil
	}
	return s.ensureDir()
}

// ensureDir creates the notes directory if absent. Every operation calls it
// so the directory exists before any read or write.
func (s *Store) ensureDir() error {
	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create notes directory: %w", err)
	}
	return nil
}

// notePath derives the on-disk location for an id. Sanitization here is the
// path-traversal barrier: the result is always a direct child of Dir.
func (s *Store) notePath(id string) string {
	return filepath.Join(s.Dir, noteid.Sanitize(id)+noteExt)
}

// Create allocates a fresh empty note.
//
// The candidate id comes from the configured generator and is sanitized
// before touching the filesystem. The file is opened with O_CREATE|O_EXCL so
// collision detection is atomic; on collision the id gets an _<attempt>
// suffix, re-sanitized, for up to five attempts total.
func (s *Store) Create(ctx context.Context) (core.Note, error) {
	if err := s.ensureDir(); err != nil {
		return core.Note{}, err
	}

	base := noteid.Sanitize(s.ids.NewID())

	for attempt := 0; attempt < maxCreateAttempts; attempt++ {
		candidate := base
		if attempt > 0 {
			candidate = noteid.Sanitize(fmt.Sprintf("%s_%d", base, attempt))
		}

		path := filepath.Join(s.Dir, candidate+noteExt)
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
		if err != nil {
			if os.IsExist(err) {
				if s.config.Logger != nil {
					s.config.Logger.Debug("note id taken, retrying", "candidate", candidate)
				}
				continue
			}
			return core.Note{}, fmt.Errorf("failed to create note file %s: %w", path, err)
		}

		// The initial content is empty; closing flushes the zero-byte file.
		if err := f.Close(); err != nil {
			return core.Note{}, fmt.Errorf("failed to write note file %s: %w", path, err)
		}

		// Re-derive the id from the file that actually exists, not the
		// pre-sanitized candidate.
		id := strings.TrimSuffix(filepath.Base(path), noteExt)
		return core.Note{ID: id, Path: path, Content: ""}, nil
	}

	return core.Note{}, fmt.Errorf("failed to create note after %d attempts: %w", maxCreateAttempts, core.ErrCreationExhausted)
}

// List scans the notes directory and returns every note, newest id first.
//
// Only regular files with a case-insensitive .md extension count; the scan
// is flat, subdirectories are not entered. A read failure for any single
// file aborts the whole listing. No partial results.
func (s *Store) List(ctx context.Context) ([]core.Note, error) {
	if err := s.ensureDir(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read notes directory: %w", err)
	}

	notes := make([]core.Note, 0, len(entries))
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}

		name := entry.Name()
		ext := filepath.Ext(name)
		if !strings.EqualFold(ext, noteExt) {
			continue
		}

		id := strings.TrimSuffix(name, ext)
		if id == "" {
			continue
		}

		path := filepath.Join(s.Dir, name)
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read note %s: %w", path, err)
		}

		notes = append(notes, core.Note{
			ID:      id,
			Path:    path,
			Content: string(content),
		})
	}

	// Descending plain string order. The default id scheme makes this
	// newest-first; the sort itself has no numeric awareness.
	sort.Slice(notes, func(i, j int) bool {
		return notes[i].ID > notes[j].ID
	})

	return notes, nil
}

// Update overwrites the note's content in full with create-or-truncate
// semantics. Updating an unknown id silently creates it. Last writer wins;
// the only atomicity relied upon anywhere is Create's exclusive open.
func (s *Store) Update(ctx context.Context, id string, content string) error {
	if err := s.ensureDir(); err != nil {
		return err
	}

	path := s.notePath(id)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write note %s: %w", path, err)
	}
	return nil
}

// Delete removes a note. An absent file is success, so Delete is
// idempotent; any other failure propagates.
func (s *Store) Delete(ctx context.Context, id string) error {
	if err := s.ensureDir(); err != nil {
		return err
	}

	path := s.notePath(id)
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to delete note %s: %w", path, err)
	}
	return nil
}

var _ core.Store = (*Store)(nil)
var _ core.Watchable = (*Store)(nil)
