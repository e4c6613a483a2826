package shared

import (
	"time"

	"github.com/google/uuid"
)

// Write-side snapshots prevent dependency on read-side query types (CQRS separation)
type CandidateSnapshot struct {
	ID      uuid.UUID
	Name    string
	Email   string
	StageID *uuid.UUID
}

type StageSnapshot struct {
	ID        uuid.UUID
	ProcessID uuid.UUID
	Name      string
	SortOrder int
}

type JobSnapshot struct {
	ID     uuid.UUID
	Title  string
	Status string
}

type OfferSnapshot struct {
	ID          uuid.UUID
	CandidateID uuid.UUID
	JobID       uuid.UUID
	Content     string
	Status      string
}

type JDRequestSnapshot struct {
	ID     uuid.UUID
	Status string
}

type UserSnapshot struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	Role         string
}

// CreatedBy is carried so candidate-side confirmations can attribute their
// timeline events to the recruiter who issued the request.
type ScheduleRequestSnapshot struct {
	ID                uuid.UUID
	CandidateID       uuid.UUID
	StageID           uuid.UUID
	InterviewerIDs    []uuid.UUID
	WindowStart       time.Time
	WindowEnd         time.Time
	DurationMinutes   int
	Status            string
	CandidateResponse string
	CreatedBy         uuid.UUID
}

type ScheduleOptionSnapshot struct {
	ID          uuid.UUID
	RequestID   uuid.UUID
	ScheduledAt time.Time
	Status      string
}
