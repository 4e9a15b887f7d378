package mirror

import (
	"time"

	"github.com/google/uuid"
)

// Kind names the remote table an event targets.
type Kind string

const (
	KindExpense  Kind = "expense"
	KindRoommate Kind = "roommate"
	KindGroup    Kind = "group"
)

// Event is one record waiting to be written to the remote store.
type Event struct {
	ID        uuid.UUID
	Kind      Kind
	Record    any
	Metadata  map[string]string
	CreatedAt time.Time
}

type EventOption func(*Event)

func WithMetadata(key, value string) EventOption {
	return func(e *Event) {
		e.Metadata[key] = value
	}
}

func NewEvent(kind Kind, record any, opts ...EventOption) Event {
	e := Event{
		ID:        uuid.New(),
		Kind:      kind,
		Record:    record,
		CreatedAt: time.Now(),
		Metadata:  make(map[string]string),
	}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}
