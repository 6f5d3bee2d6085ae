package core

// Note is the central entity of the domain: one plain-text document whose
// identifier doubles as its filename stem.
type Note struct {
	// ID is an opaque identifier constrained to [A-Za-z0-9_-]. Never empty.
	ID string `json:"id" yaml:"id"`

	// Path is the absolute on-disk location, <notes_dir>/<id>.md.
	Path string `json:"path" yaml:"path"`

	// Content is the raw text payload. No parsing, no schema.
	Content string `json:"content" yaml:"content"`
}
