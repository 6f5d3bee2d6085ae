package platform

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/jotapp/jot/internal/appdir"
	"github.com/jotapp/jot/pkg/adapters/notesdir"
	"github.com/jotapp/jot/pkg/core"
	"github.com/jotapp/jot/pkg/noteid"
)

// AppName is the directory name used under the per-OS application data root.
const AppName = "jot"

// Init builds the configured store and ensures its notes directory exists.
// An empty dir selects the per-OS application data directory.
//
// It returns the configured core.Store.
func Init(dir string, opts ...Option) (core.Store, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	// 1. Check for injected store
	if o.store != nil {
		return o.store, nil
	}

	// 2. Initialize based on adapter
	var store core.Store
	var err error

	switch o.adapter {
	case "notesdir":
		store, err = initNotesDir(dir, o)
	default:
		return nil, fmt.Errorf("unknown adapter: %s", o.adapter)
	}

	if err != nil {
		return nil, err
	}

	// 3. Run initialization
	if err := store.Initialize(context.Background()); err != nil {
		return nil, err
	}

	return store, nil
}

// initNotesDir handles the construction of the filesystem adapter.
func initNotesDir(dir string, o *options) (core.Store, error) {
	mustExist, _ := o.config["must_exist"].(bool)
	ids, _ := o.config["ids"].(noteid.Generator)
	ignore, _ := o.config["ignore"].([]string)
	debounce, _ := o.config["debounce"].(time.Duration)
	errorHandler, _ := o.config["watcher_error_handler"].(func(error))

	resolved, err := resolveDir(dir)
	if err != nil {
		return nil, err
	}

	if o.logger != nil {
		o.logger.Debug("using notes directory", "path", resolved)
	}

	return notesdir.New(notesdir.Config{
		Dir:          resolved,
		MustExist:    mustExist,
		Logger:       o.logger,
		IDs:          ids,
		Ignore:       ignore,
		Debounce:     debounce,
		ErrorHandler: errorHandler,
	}), nil
}

// resolveDir maps an empty dir to the per-OS default and makes explicit
// paths absolute.
func resolveDir(dir string) (string, error) {
	if dir == "" {
		return appdir.NotesDir(AppName)
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve notes directory: %w", err)
	}
	return abs, nil
}
