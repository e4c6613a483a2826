package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type ScheduleOptionView struct {
	ID          uuid.UUID `json:"id"`
	ScheduledAt time.Time `json:"scheduled_at"`
	Status      string    `json:"status"`
}

type ScheduleRequestView struct {
	ID                uuid.UUID            `json:"id"`
	CandidateID       uuid.UUID            `json:"candidate_id"`
	CandidateName     string               `json:"candidate_name"`
	StageID           uuid.UUID            `json:"stage_id"`
	StageName         string               `json:"stage_name"`
	InterviewerIDs    []uuid.UUID          `json:"interviewer_ids"`
	WindowStart       time.Time            `json:"window_start"`
	WindowEnd         time.Time            `json:"window_end"`
	DurationMinutes   int                  `json:"duration_minutes"`
	Status            string               `json:"status"`
	CandidateResponse string               `json:"candidate_response"`
	Options           []ScheduleOptionView `json:"options"`
	CreatedAt         time.Time            `json:"created_at"`
	UpdatedAt         time.Time            `json:"updated_at"`
}

type CandidateView struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Phone     *string    `json:"phone,omitempty"`
	StageID   *uuid.UUID `json:"stage_id,omitempty"`
	StageName *string    `json:"stage_name,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type TimelineEventView struct {
	ID          uuid.UUID `json:"id"`
	CandidateID uuid.UUID `json:"candidate_id"`
	Type        string    `json:"type"`
	Content     string    `json:"content"`
	CreatedBy   uuid.UUID `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
}

type JobView struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type JDRequestView struct {
	ID          uuid.UUID `json:"id"`
	Position    string    `json:"position"`
	Requirement string    `json:"requirement"`
	Status      string    `json:"status"`
	RequestedBy uuid.UUID `json:"requested_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type StageView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	SortOrder int       `json:"sort_order"`
}

type ProcessView struct {
	ID        uuid.UUID   `json:"id"`
	Name      string      `json:"name"`
	Stages    []StageView `json:"stages"`
	CreatedAt time.Time   `json:"created_at"`
}

type OfferView struct {
	ID          uuid.UUID `json:"id"`
	CandidateID uuid.UUID `json:"candidate_id"`
	JobID       uuid.UUID `json:"job_id"`
	Content     string    `json:"content"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type TeamMemberView struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Role        string     `json:"role"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}
