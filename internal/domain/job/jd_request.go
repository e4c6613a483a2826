package job

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyPosition          = errors.New("jd request position cannot be empty")
	ErrInvalidJDRequestStatus = errors.New("invalid jd request status")
)

type JDRequestStatus string

const (
	JDRequested JDRequestStatus = "requested"
	JDDrafted   JDRequestStatus = "drafted"
	JDApproved  JDRequestStatus = "approved"
)

func (s JDRequestStatus) IsValid() bool {
	switch s {
	case JDRequested, JDDrafted, JDApproved:
		return true
	default:
		return false
	}
}

// JDRequest is a hiring manager's ask for a new job description, tracked
// until it is drafted and approved into a posting.
type JDRequest struct {
	id          uuid.UUID
	position    string
	requirement string
	status      JDRequestStatus
	requestedBy uuid.UUID
	createdAt   time.Time
	updatedAt   time.Time
}

func NewJDRequest(position, requirement string, requestedBy uuid.UUID, now time.Time) (*JDRequest, error) {
	position = strings.TrimSpace(position)
	if position == "" {
		return nil, ErrEmptyPosition
	}

	return &JDRequest{
		id:          uuid.New(),
		position:    position,
		requirement: requirement,
		status:      JDRequested,
		requestedBy: requestedBy,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructJDRequest(
	id uuid.UUID,
	position, requirement string,
	status JDRequestStatus,
	requestedBy uuid.UUID,
	createdAt, updatedAt time.Time,
) *JDRequest {
	return &JDRequest{
		id:          id,
		position:    position,
		requirement: requirement,
		status:      status,
		requestedBy: requestedBy,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (r *JDRequest) ChangeStatus(status JDRequestStatus, now time.Time) error {
	if !status.IsValid() {
		return ErrInvalidJDRequestStatus
	}
	r.status = status
	r.updatedAt = now
	return nil
}

func (r *JDRequest) ID() uuid.UUID           { return r.id }
func (r *JDRequest) Position() string        { return r.position }
func (r *JDRequest) Requirement() string     { return r.requirement }
func (r *JDRequest) Status() JDRequestStatus { return r.status }
func (r *JDRequest) RequestedBy() uuid.UUID  { return r.requestedBy }
func (r *JDRequest) CreatedAt() time.Time    { return r.createdAt }
func (r *JDRequest) UpdatedAt() time.Time    { return r.updatedAt }
