// Package events delivers domain write events to the audit log and, when
// configured, to Kafka. Delivery runs on the worker pool and never blocks or
// fails the request that produced the event.
package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	UserRegistered   = "user.registered"
	UserUpdated      = "user.updated"
	UserDeleted      = "user.deleted"
	GroupCreated     = "group.created"
	GroupMemberAdded = "group.member_added"
	RoutineCreated   = "routine.created"
)

type Event struct {
	ID         string         `json:"id"`
	Type       string         `json:"type"`
	EntityType string         `json:"entity_type"`
	EntityID   int64          `json:"entity_id"`
	OccurredAt time.Time      `json:"occurred_at"`
	Payload    map[string]any `json:"payload,omitempty"`
}

func New(typ, entityType string, entityID int64, payload map[string]any) Event {
	return Event{
		ID:         uuid.NewString(),
		Type:       typ,
		EntityType: entityType,
		EntityID:   entityID,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	}
}

// Emitter is what services depend on.
type Emitter interface {
	Emit(Event)
}

// Publisher is one delivery target.
type Publisher interface {
	Name() string
	Publish(ctx context.Context, e Event) error
}

// Discard drops every event.
type Discard struct{}

func (Discard) Emit(Event) {}
