package request

import (
	"time"

	"labdesk/internal/shared/biztime"
)

// EventType identifies the committed state change an event describes.
type EventType string

const (
	EventTypeCreated  EventType = "created"
	EventTypeAssigned EventType = "assigned"
	EventTypeResolved EventType = "resolved"
	EventTypeUpdated  EventType = "updated"
	EventTypeDeleted  EventType = "deleted"
)

// Snapshot is the immutable view of a request carried by events and fanned
// out to observers. Timestamps are epoch milliseconds.
type Snapshot struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	CreatorID    string  `json:"creator_id"`
	LabSessionID string  `json:"lab_session_id,omitempty"`
	Status       string  `json:"status"`
	Priority     int64   `json:"priority"`
	AssigneeID   *string `json:"assignee_id,omitempty"`
	Metadata     string  `json:"metadata,omitempty"`
	Version      int64   `json:"version"`
	CreatedAt    int64   `json:"created_at"`
	ResolvedAt   *int64  `json:"resolved_at,omitempty"`
}

// Snapshot captures the request's current state for event fan-out.
func (r *Request) Snapshot() Snapshot {
	s := Snapshot{
		ID:           r.id,
		Title:        r.title,
		Description:  r.description,
		CreatorID:    r.creatorID,
		LabSessionID: r.labSessionID,
		Status:       r.status.String(),
		Priority:     r.priority,
		AssigneeID:   r.assigneeID,
		Metadata:     r.metadata,
		Version:      r.version,
		CreatedAt:    r.createdAt.UnixMilli(),
	}

	if r.resolvedAt != nil {
		resolved := r.resolvedAt.UnixMilli()
		s.ResolvedAt = &resolved
	}

	return s
}

// Event is emitted once per committed write. Delivery is best-effort and
// decoupled from the write: a failed delivery never rolls the write back.
type Event struct {
	Type      EventType `json:"type"`
	Request   Snapshot  `json:"request"`
	Timestamp int64     `json:"timestamp"`
}

func NewEvent(eventType EventType, r *Request) Event {
	return Event{
		Type:      eventType,
		Request:   r.Snapshot(),
		Timestamp: biztime.NowUnixMilli(),
	}
}

// GetEventType implements events.DomainEvent. The wire names mirror the
// event channel convention: "request:created", "request:assigned", ...
func (e Event) GetEventType() string {
	return "request:" + string(e.Type)
}

// GetAggregateID implements events.DomainEvent.
func (e Event) GetAggregateID() string {
	return e.Request.ID
}

// GetOccurredAt implements events.DomainEvent.
func (e Event) GetOccurredAt() time.Time {
	return biztime.FromUnixMilli(e.Timestamp)
}

// AllEventTypes lists the wire names of every request event, in the form
// consumed by dispatcher subscriptions.
func AllEventTypes() []string {
	return []string{
		Event{Type: EventTypeCreated}.GetEventType(),
		Event{Type: EventTypeAssigned}.GetEventType(),
		Event{Type: EventTypeResolved}.GetEventType(),
		Event{Type: EventTypeUpdated}.GetEventType(),
		Event{Type: EventTypeDeleted}.GetEventType(),
	}
}
