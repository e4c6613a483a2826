package schedule

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidState     = errors.New("transition not allowed from current state")
	ErrAlreadyConfirmed = errors.New("request already confirmed")
	ErrOptionNotOffered = errors.New("option is not in offered state")
	ErrForeignOption    = errors.New("option does not belong to this request")
)

// Request is one attempt to arrange an interview slot for a candidate at a
// given hiring stage. At most one pending request with a pending candidate
// response exists per candidate; a newer request supersedes the old one by
// expiring it in the same operation.
type Request struct {
	id                uuid.UUID
	candidateID       uuid.UUID
	stageID           uuid.UUID
	interviewerIDs    []uuid.UUID
	window            Window
	duration          Duration
	status            Status
	candidateResponse CandidateResponse
	createdBy         uuid.UUID
	createdAt         time.Time
	updatedAt         time.Time
}

func NewRequest(
	candidateID, stageID uuid.UUID,
	interviewerIDs []uuid.UUID,
	window Window,
	duration Duration,
	createdBy uuid.UUID,
	now time.Time,
) *Request {
	return &Request{
		id:                uuid.New(),
		candidateID:       candidateID,
		stageID:           stageID,
		interviewerIDs:    interviewerIDs,
		window:            window,
		duration:          duration,
		status:            StatusPending,
		candidateResponse: ResponsePending,
		createdBy:         createdBy,
		createdAt:         now,
		updatedAt:         now,
	}
}

func ReconstructRequest(
	id, candidateID, stageID uuid.UUID,
	interviewerIDs []uuid.UUID,
	window Window,
	duration Duration,
	status Status,
	candidateResponse CandidateResponse,
	createdBy uuid.UUID,
	createdAt, updatedAt time.Time,
) *Request {
	return &Request{
		id:                id,
		candidateID:       candidateID,
		stageID:           stageID,
		interviewerIDs:    interviewerIDs,
		window:            window,
		duration:          duration,
		status:            status,
		candidateResponse: candidateResponse,
		createdBy:         createdBy,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}
}

// AwaitingCandidate reports whether the candidate can still pick an option.
func (r *Request) AwaitingCandidate() bool {
	return r.status == StatusPending && r.candidateResponse == ResponsePending
}

// Confirm transitions the request to confirmed after the candidate selected an
// option. Only legal while pending with no prior response; a reused stale link
// hits the confirmed case.
func (r *Request) Confirm(now time.Time) error {
	if r.status == StatusConfirmed {
		return ErrAlreadyConfirmed
	}
	if !r.AwaitingCandidate() {
		return ErrInvalidState
	}
	r.status = StatusConfirmed
	r.candidateResponse = ResponseResponded
	r.updatedAt = now
	return nil
}

// Cancel is the recruiter-side transition, legal from pending only.
func (r *Request) Cancel(now time.Time) error {
	if r.status != StatusPending {
		return ErrInvalidState
	}
	r.status = StatusCancelled
	r.updatedAt = now
	return nil
}

// Expire marks the request superseded by a newer one for the same candidate.
func (r *Request) Expire(now time.Time) error {
	if r.status != StatusPending {
		return ErrInvalidState
	}
	r.status = StatusExpired
	r.updatedAt = now
	return nil
}

func (r *Request) ID() uuid.UUID                        { return r.id }
func (r *Request) CandidateID() uuid.UUID               { return r.candidateID }
func (r *Request) StageID() uuid.UUID                   { return r.stageID }
func (r *Request) InterviewerIDs() []uuid.UUID          { return r.interviewerIDs }
func (r *Request) Window() Window                       { return r.window }
func (r *Request) Duration() Duration                   { return r.duration }
func (r *Request) Status() Status                       { return r.status }
func (r *Request) CandidateResponse() CandidateResponse { return r.candidateResponse }
func (r *Request) CreatedBy() uuid.UUID                 { return r.createdBy }
func (r *Request) CreatedAt() time.Time                 { return r.createdAt }
func (r *Request) UpdatedAt() time.Time                 { return r.updatedAt }
