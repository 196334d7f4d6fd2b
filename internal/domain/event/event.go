// Package event describes row lifecycle notifications published after a
// successful store operation.
//
// All nine types share one queue so a single binding sees the full change
// feed. The notify worker only acts on comment.created and acks the rest.
package event

import (
	"context"
	"encoding/json"
	"time"
)

type Type string

const (
	UserCreated    Type = "user.created"
	UserUpdated    Type = "user.updated"
	UserDeleted    Type = "user.deleted"
	PostCreated    Type = "post.created"
	PostUpdated    Type = "post.updated"
	PostDeleted    Type = "post.deleted"
	CommentCreated Type = "comment.created"
	CommentUpdated Type = "comment.updated"
	CommentDeleted Type = "comment.deleted"
)

// Event is the JSON message put on the events queue. Data holds the row for
// created/updated events and is empty for deletes.
type Event struct {
	Type       Type            `json:"type"`
	EntityID   string          `json:"entityId"`
	OccurredAt time.Time       `json:"occurredAt"`
	Data       json.RawMessage `json:"data,omitempty"`
}

// New builds an event, encoding row as Data when it is not nil.
func New(t Type, entityID string, row any) Event {
	e := Event{Type: t, EntityID: entityID, OccurredAt: time.Now().UTC()}
	if row != nil {
		if b, err := json.Marshal(row); err == nil {
			e.Data = b
		}
	}
	return e
}

// Decode unmarshals Data into dst.
func (e Event) Decode(dst any) error {
	return json.Unmarshal(e.Data, dst)
}

// Publisher delivers events. *helpers.RabbitPublisher satisfies it.
type Publisher interface {
	PublishJSON(ctx context.Context, body any) error
}

// Nop drops every event.
type Nop struct{}

func (Nop) PublishJSON(context.Context, any) error { return nil }
