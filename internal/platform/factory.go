package platform

import (
	"github.com/jotapp/jot/pkg/core"
)

// New wires a ready-to-use note service.
//
//	svc, err := jot.New("", jot.WithLogger(logger))
//
// The dir argument is adapter-specific; for the default notesdir adapter an
// empty string selects the per-OS application data directory.
func New(dir string, opts ...Option) (*core.Service, error) {
	store, err := Init(dir, opts...)
	if err != nil {
		return nil, err
	}

	// Parse options again for service-level settings
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	service := core.NewService(store)
	if size, ok := o.config["event_buffer"].(int); ok {
		service.SetEventBuffer(size)
	}

	return service, nil
}
