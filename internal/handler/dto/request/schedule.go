package request

import (
	"time"

	"hireflow/internal/domain/schedule"

	"github.com/google/uuid"
)

type CreateScheduleRequest struct {
	CandidateID uuid.UUID `json:"candidate_id" binding:"required"`
	StageID     uuid.UUID `json:"stage_id" binding:"required"`
	// An empty interviewer set is valid: resolution then falls back to
	// business hours with no calendar constraints.
	InterviewerIDs  []uuid.UUID `json:"interviewer_ids"`
	WindowStart     time.Time   `json:"window_start" binding:"required"`
	WindowEnd       time.Time   `json:"window_end" binding:"required"`
	DurationMinutes int         `json:"duration_minutes" binding:"required"`
}

func (r CreateScheduleRequest) Window() (schedule.Window, error) {
	return schedule.NewWindow(r.WindowStart, r.WindowEnd)
}

func (r CreateScheduleRequest) Duration() (schedule.Duration, error) {
	return schedule.NewDuration(r.DurationMinutes)
}

type ConfirmScheduleRequest struct {
	OptionID uuid.UUID `json:"option_id" binding:"required"`
	// Free-text note from the candidate, recorded on the timeline alongside
	// the confirmation.
	Preference *string `json:"preference,omitempty"`
}
