package schedule

import (
	"time"

	"github.com/google/uuid"
)

// Option is one candidate-facing proposed time slot. Options are created in a
// single batch per request and only ever mutated by confirmation: the chosen
// one flips to confirmed, all siblings to rejected.
type Option struct {
	id          uuid.UUID
	requestID   uuid.UUID
	scheduledAt time.Time
	status      OptionStatus
	createdAt   time.Time
}

func NewOption(requestID uuid.UUID, scheduledAt, now time.Time) *Option {
	return &Option{
		id:          uuid.New(),
		requestID:   requestID,
		scheduledAt: scheduledAt,
		status:      OptionOffered,
		createdAt:   now,
	}
}

// NewOptions builds the offered batch for a request from resolver output,
// capped at max. Slots arrive ascending from the resolver, so the earliest
// ones are kept.
func NewOptions(requestID uuid.UUID, slots []time.Time, max int, now time.Time) []*Option {
	if max > 0 && len(slots) > max {
		slots = slots[:max]
	}
	options := make([]*Option, len(slots))
	for i, slot := range slots {
		options[i] = NewOption(requestID, slot, now)
	}
	return options
}

func ReconstructOption(
	id, requestID uuid.UUID,
	scheduledAt time.Time,
	status OptionStatus,
	createdAt time.Time,
) *Option {
	return &Option{
		id:          id,
		requestID:   requestID,
		scheduledAt: scheduledAt,
		status:      status,
		createdAt:   createdAt,
	}
}

func (o *Option) ID() uuid.UUID          { return o.id }
func (o *Option) RequestID() uuid.UUID   { return o.requestID }
func (o *Option) ScheduledAt() time.Time { return o.scheduledAt }
func (o *Option) Status() OptionStatus   { return o.status }
func (o *Option) CreatedAt() time.Time   { return o.createdAt }

func (o *Option) IsOffered() bool {
	return o.status == OptionOffered
}
