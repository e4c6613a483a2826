package timeline

import (
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventNote              EventType = "note"
	EventStageChanged      EventType = "stage_changed"
	EventScheduleCreated   EventType = "schedule_created"
	EventScheduleConfirmed EventType = "schedule_confirmed"
	EventScheduleCancelled EventType = "schedule_cancelled"
	EventOfferSent         EventType = "offer_sent"
)

// Event is an append-only audit record attached to a candidate. Past events
// are never read back or mutated by the writers that produce them.
type Event struct {
	id          uuid.UUID
	candidateID uuid.UUID
	eventType   EventType
	content     string
	createdBy   uuid.UUID
	createdAt   time.Time
}

func NewEvent(candidateID uuid.UUID, eventType EventType, content string, createdBy uuid.UUID, now time.Time) *Event {
	return &Event{
		id:          uuid.New(),
		candidateID: candidateID,
		eventType:   eventType,
		content:     content,
		createdBy:   createdBy,
		createdAt:   now,
	}
}

func ReconstructEvent(id, candidateID uuid.UUID, eventType EventType, content string, createdBy uuid.UUID, createdAt time.Time) *Event {
	return &Event{
		id:          id,
		candidateID: candidateID,
		eventType:   eventType,
		content:     content,
		createdBy:   createdBy,
		createdAt:   createdAt,
	}
}

func (e *Event) ID() uuid.UUID          { return e.id }
func (e *Event) CandidateID() uuid.UUID { return e.candidateID }
func (e *Event) Type() EventType        { return e.eventType }
func (e *Event) Content() string        { return e.content }
func (e *Event) CreatedBy() uuid.UUID   { return e.createdBy }
func (e *Event) CreatedAt() time.Time   { return e.createdAt }
