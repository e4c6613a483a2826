package offer

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus = errors.New("invalid offer status")
	ErrNotSendable   = errors.New("offer can only be sent from draft")
	ErrNotAnswerable = errors.New("offer can only be answered after sending")
)

type Status string

const (
	StatusDraft    Status = "draft"
	StatusSent     Status = "sent"
	StatusAccepted Status = "accepted"
	StatusDeclined Status = "declined"
)

type Offer struct {
	id          uuid.UUID
	candidateID uuid.UUID
	jobID       uuid.UUID
	content     string
	status      Status
	createdBy   uuid.UUID
	createdAt   time.Time
	updatedAt   time.Time
}

func NewOffer(candidateID, jobID uuid.UUID, content string, createdBy uuid.UUID, now time.Time) *Offer {
	return &Offer{
		id:          uuid.New(),
		candidateID: candidateID,
		jobID:       jobID,
		content:     content,
		status:      StatusDraft,
		createdBy:   createdBy,
		createdAt:   now,
		updatedAt:   now,
	}
}

func ReconstructOffer(
	id, candidateID, jobID uuid.UUID,
	content string,
	status Status,
	createdBy uuid.UUID,
	createdAt, updatedAt time.Time,
) *Offer {
	return &Offer{
		id:          id,
		candidateID: candidateID,
		jobID:       jobID,
		content:     content,
		status:      status,
		createdBy:   createdBy,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// Send marks the offer delivered. Actual delivery is recorded as a timeline
// event on the candidate rather than dispatched as email.
func (o *Offer) Send(now time.Time) error {
	if o.status != StatusDraft {
		return ErrNotSendable
	}
	o.status = StatusSent
	o.updatedAt = now
	return nil
}

func (o *Offer) Answer(accepted bool, now time.Time) error {
	if o.status != StatusSent {
		return ErrNotAnswerable
	}
	if accepted {
		o.status = StatusAccepted
	} else {
		o.status = StatusDeclined
	}
	o.updatedAt = now
	return nil
}

func (o *Offer) ID() uuid.UUID          { return o.id }
func (o *Offer) CandidateID() uuid.UUID { return o.candidateID }
func (o *Offer) JobID() uuid.UUID       { return o.jobID }
func (o *Offer) Content() string        { return o.content }
func (o *Offer) Status() Status         { return o.status }
func (o *Offer) CreatedBy() uuid.UUID   { return o.createdBy }
func (o *Offer) CreatedAt() time.Time   { return o.createdAt }
func (o *Offer) UpdatedAt() time.Time   { return o.updatedAt }
