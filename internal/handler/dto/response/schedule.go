package response

import (
	"time"

	"hireflow/internal/usecase/commands"
	"hireflow/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ScheduleOptionResponse struct {
	ID          uuid.UUID `json:"id"`
	ScheduledAt time.Time `json:"scheduledAt"`
	Status      string    `json:"status"`
}

type ScheduleRequestResponse struct {
	ID                uuid.UUID                `json:"id"`
	CandidateID       uuid.UUID                `json:"candidateId"`
	CandidateName     string                   `json:"candidateName"`
	StageID           uuid.UUID                `json:"stageId"`
	StageName         string                   `json:"stageName"`
	InterviewerIDs    []uuid.UUID              `json:"interviewerIds"`
	WindowStart       time.Time                `json:"windowStart"`
	WindowEnd         time.Time                `json:"windowEnd"`
	DurationMinutes   int                      `json:"durationMinutes"`
	Status            string                   `json:"status"`
	CandidateResponse string                   `json:"candidateResponse"`
	Options           []ScheduleOptionResponse `json:"options"`
	CreatedAt         time.Time                `json:"createdAt"`
	UpdatedAt         time.Time                `json:"updatedAt"`
}

type CreateScheduleResponse struct {
	RequestID       uuid.UUID `json:"requestId"`
	OptionCount     int       `json:"optionCount"`
	PublicLinkToken string    `json:"publicLinkToken"`
}

func FromScheduleRequestView(v *queries.ScheduleRequestView) *ScheduleRequestResponse {
	var resp ScheduleRequestResponse
	// Field-for-field identical shapes; copier keeps the mapping from rotting
	// when columns are added to the view.
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromScheduleRequestViews(views []*queries.ScheduleRequestView) []*ScheduleRequestResponse {
	resps := make([]*ScheduleRequestResponse, 0, len(views))
	for _, v := range views {
		resps = append(resps, FromScheduleRequestView(v))
	}
	return resps
}

func FromCreateScheduleResult(r *commands.CreateScheduleResult) *CreateScheduleResponse {
	return &CreateScheduleResponse{
		RequestID:       r.RequestID,
		OptionCount:     r.OptionCount,
		PublicLinkToken: r.PublicLinkToken,
	}
}
