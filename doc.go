// Package jot is the Composition Root for the jot note backend.
//
// It connects the core note service (Domain Layer) with the storage adapter
// (Persistence Layer) using the Hexagonal Architecture pattern.
//
// Philosophy:
//
// jot is a thin backend for local-first note frontends. The notes directory
// IS the database: every note is one plain Markdown file named <id>.md, with
// no index, no metadata store, and no hidden state. Anything the user does to
// those files with other tools shows up on the next listing.
//
// Features:
//
//   - **Hexagonal Architecture**: Core domain is isolated from persistence details.
//   - **Files as Truth**: Plain `<id>.md` files, editable by any tool.
//   - **Reactive**: Supervised fsnotify watcher with per-note debouncing.
//   - **MCP Surface**: The `jot serve` command exposes the four note tools to agents.
//   - **Extensible**: Designed to support other backends via `core.Store`.
//
// Usage:
//
//	// Initialize service with functional options
//	svc, err := jot.New("", jot.WithLogger(logger))
//
//	// Create a note and fill it in
//	note, err := svc.CreateNote(ctx)
//	err = svc.UpdateNote(ctx, note.ID, "milk, eggs, flour")
package jot
