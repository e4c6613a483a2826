package candidate

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName    = errors.New("candidate name cannot be empty")
	ErrInvalidEmail = errors.New("invalid candidate email")
)

type Candidate struct {
	id        uuid.UUID
	name      string
	email     string
	phone     *string
	stageID   *uuid.UUID
	createdBy uuid.UUID
	createdAt time.Time
	updatedAt time.Time
}

func NewCandidate(name, email string, phone *string, stageID *uuid.UUID, createdBy uuid.UUID, now time.Time) (*Candidate, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, ErrInvalidEmail
	}

	return &Candidate{
		id:        uuid.New(),
		name:      name,
		email:     email,
		phone:     phone,
		stageID:   stageID,
		createdBy: createdBy,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructCandidate(
	id uuid.UUID,
	name, email string,
	phone *string,
	stageID *uuid.UUID,
	createdBy uuid.UUID,
	createdAt, updatedAt time.Time,
) *Candidate {
	return &Candidate{
		id:        id,
		name:      name,
		email:     email,
		phone:     phone,
		stageID:   stageID,
		createdBy: createdBy,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (c *Candidate) MoveToStage(stageID uuid.UUID, now time.Time) {
	c.stageID = &stageID
	c.updatedAt = now
}

func (c *Candidate) ID() uuid.UUID        { return c.id }
func (c *Candidate) Name() string         { return c.name }
func (c *Candidate) Email() string        { return c.email }
func (c *Candidate) Phone() *string       { return c.phone }
func (c *Candidate) StageID() *uuid.UUID  { return c.stageID }
func (c *Candidate) CreatedBy() uuid.UUID { return c.createdBy }
func (c *Candidate) CreatedAt() time.Time { return c.createdAt }
func (c *Candidate) UpdatedAt() time.Time { return c.updatedAt }
