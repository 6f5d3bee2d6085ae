package noteid

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Generator produces candidate identifiers for new notes.
// A Generator is not trusted to emit filename-safe output; candidates are
// sanitized again at the storage boundary.
type Generator interface {
	NewID() string
}

// TimestampGenerator derives identifiers from the wall clock, formatted as
// note_<milliseconds since the Unix epoch>. Two calls within the same
// millisecond collide; handling that belongs to the caller.
//
// This scheme keeps descending string order equivalent to newest-first,
// which the listing order relies on.
type TimestampGenerator struct {
	// Now overrides the clock. Nil means time.Now.
	Now func() time.Time
}

// NewID implements Generator.
func (g TimestampGenerator) NewID() string {
	now := time.Now
	if g.Now != nil {
		now = g.Now
	}
	return fmt.Sprintf("note_%d", now().UnixMilli())
}

// RandomGenerator derives identifiers from random UUIDs. Collisions are
// practically impossible, at the cost of ids no longer sorting by age.
type RandomGenerator struct{}

// NewID implements Generator.
func (RandomGenerator) NewID() string {
	return "note_" + uuid.New().String()
}
