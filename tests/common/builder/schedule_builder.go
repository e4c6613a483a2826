//go:build unit

package builder

import (
	"time"

	dto "hireflow/internal/handler/dto/request"
	"hireflow/internal/usecase/queries"

	"github.com/google/uuid"
)

// ScheduleBuilder assembles schedule request DTOs and read views with sane
// defaults so tests only spell out what they care about.
type ScheduleBuilder struct {
	RequestID       uuid.UUID
	CandidateID     uuid.UUID
	StageID         uuid.UUID
	InterviewerIDs  []uuid.UUID
	WindowStart     time.Time
	WindowEnd       time.Time
	DurationMinutes int
	Status          string
	Options         []queries.ScheduleOptionView
}

func NewScheduleBuilder() *ScheduleBuilder {
	// 2026-02-02 is a Monday.
	start := time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC)
	return &ScheduleBuilder{
		RequestID:       uuid.New(),
		CandidateID:     uuid.New(),
		StageID:         uuid.New(),
		InterviewerIDs:  []uuid.UUID{uuid.New()},
		WindowStart:     start,
		WindowEnd:       start.AddDate(0, 0, 7),
		DurationMinutes: 60,
		Status:          "pending",
	}
}

func (b *ScheduleBuilder) With(mutate func(*ScheduleBuilder)) *ScheduleBuilder {
	if mutate != nil {
		mutate(b)
	}
	return b
}

func (b *ScheduleBuilder) WithStatus(status string) *ScheduleBuilder {
	b.Status = status
	return b
}

func (b *ScheduleBuilder) WithOfferedOption(scheduledAt time.Time) *ScheduleBuilder {
	b.Options = append(b.Options, queries.ScheduleOptionView{
		ID:          uuid.New(),
		ScheduledAt: scheduledAt,
		Status:      "offered",
	})
	return b
}

func (b *ScheduleBuilder) BuildDTO() dto.CreateScheduleRequest {
	return dto.CreateScheduleRequest{
		CandidateID:     b.CandidateID,
		StageID:         b.StageID,
		InterviewerIDs:  b.InterviewerIDs,
		WindowStart:     b.WindowStart,
		WindowEnd:       b.WindowEnd,
		DurationMinutes: b.DurationMinutes,
	}
}

func (b *ScheduleBuilder) BuildView() *queries.ScheduleRequestView {
	return &queries.ScheduleRequestView{
		ID:                b.RequestID,
		CandidateID:       b.CandidateID,
		CandidateName:     "Jordan Lee",
		StageID:           b.StageID,
		StageName:         "Technical Interview",
		InterviewerIDs:    b.InterviewerIDs,
		WindowStart:       b.WindowStart,
		WindowEnd:         b.WindowEnd,
		DurationMinutes:   b.DurationMinutes,
		Status:            b.Status,
		CandidateResponse: "pending",
		Options:           b.Options,
		CreatedAt:         b.WindowStart,
		UpdatedAt:         b.WindowStart,
	}
}
