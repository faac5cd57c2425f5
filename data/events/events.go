// Package events publishes entity lifecycle events (usuario.created,
// producto.deleted, ...) to Kafka or RabbitMQ. Publishing is best effort:
// callers log failures and never fail the request because of them.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ncobase/microservicio/ctxutil"
)

// Actions
const (
	Created = "created"
	Updated = "updated"
	Deleted = "deleted"
)

// Event is the message body published for every mutation
type Event struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	Resource   string    `json:"resource"`
	ResourceID int64     `json:"resource_id"`
	OccurredAt time.Time `json:"occurred_at"`
	TraceID    string    `json:"trace_id,omitempty"`
	Data       any       `json:"data,omitempty"`
}

// NewEvent builds an event of type "<resource>.<action>"
func NewEvent(ctx context.Context, resource, action string, id int64, data any) Event {
	return Event{
		ID:         uuid.NewString(),
		Type:       fmt.Sprintf("%s.%s", resource, action),
		Resource:   resource,
		ResourceID: id,
		OccurredAt: time.Now().UTC(),
		TraceID:    ctxutil.GetTraceID(ctx),
		Data:       data,
	}
}

// Key returns the partition / routing identity of the event
func (e Event) Key() []byte {
	return []byte(fmt.Sprintf("%s:%d", e.Resource, e.ResourceID))
}

// Marshal encodes the event as JSON
func (e Event) Marshal() ([]byte, error) {
	return json.Marshal(e)
}

// Publisher sends events to a broker
type Publisher interface {
	Publish(ctx context.Context, e Event) error
	Close() error
}

// Noop discards every event
type Noop struct{}

func (Noop) Publish(context.Context, Event) error { return nil }
func (Noop) Close() error                         { return nil }
