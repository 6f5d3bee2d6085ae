package core

import "errors"

// Common errors.
var (
	// ErrCreationExhausted reports that Create ran out of candidate
	// filenames before finding a free one.
	ErrCreationExhausted = errors.New("exhausted candidate filenames for new note")
)
