package core

import "fmt"

// EventType represents the kind of change observed in the notes directory.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
)

// Event represents a change to a single note.
type Event struct {
	Type      EventType `json:"type"`
	ID        string    `json:"id"`
	Timestamp int64     `json:"timestamp"` // Unix timestamp
}

// String implements fmt.Stringer. It also satisfies lifecycle.Event, so
// domain events can feed a lifecycle.Source without wrapping.
func (e Event) String() string {
	return fmt.Sprintf("%s %s", e.Type, e.ID)
}
