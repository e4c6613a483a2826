package job

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyTitle    = errors.New("job title cannot be empty")
	ErrInvalidStatus = errors.New("invalid job status")
)

type Status string

const (
	StatusDraft  Status = "draft"
	StatusOpen   Status = "open"
	StatusClosed Status = "closed"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusOpen, StatusClosed:
		return true
	default:
		return false
	}
}

type Job struct {
	id          uuid.UUID
	title       string
	description string
	status      Status
	createdBy   uuid.UUID
	createdAt   time.Time
	updatedAt   time.Time
}

func NewJob(title, description string, createdBy uuid.UUID, now time.Time) (*Job, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}

	return &Job{
		id:          uuid.New(),
		title:       title,
		description: description,
		status:      StatusDraft,
		createdBy:   createdBy,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructJob(
	id uuid.UUID,
	title, description string,
	status Status,
	createdBy uuid.UUID,
	createdAt, updatedAt time.Time,
) *Job {
	return &Job{
		id:          id,
		title:       title,
		description: description,
		status:      status,
		createdBy:   createdBy,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (j *Job) ChangeStatus(status Status, now time.Time) error {
	if !status.IsValid() {
		return ErrInvalidStatus
	}
	j.status = status
	j.updatedAt = now
	return nil
}

func (j *Job) ID() uuid.UUID        { return j.id }
func (j *Job) Title() string        { return j.title }
func (j *Job) Description() string  { return j.description }
func (j *Job) Status() Status       { return j.status }
func (j *Job) CreatedBy() uuid.UUID { return j.createdBy }
func (j *Job) CreatedAt() time.Time { return j.createdAt }
func (j *Job) UpdatedAt() time.Time { return j.updatedAt }
