package response

import (
	"time"

	"hireflow/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CandidateResponse struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Phone     *string    `json:"phone,omitempty"`
	StageID   *uuid.UUID `json:"stageId,omitempty"`
	StageName *string    `json:"stageName,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

type TimelineEventResponse struct {
	ID          uuid.UUID `json:"id"`
	CandidateID uuid.UUID `json:"candidateId"`
	Type        string    `json:"type"`
	Content     string    `json:"content"`
	CreatedBy   uuid.UUID `json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
}

func FromCandidateView(v *queries.CandidateView) *CandidateResponse {
	var resp CandidateResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromCandidateViews(views []*queries.CandidateView) []*CandidateResponse {
	resp := make([]*CandidateResponse, len(views))
	for i, v := range views {
		resp[i] = FromCandidateView(v)
	}
	return resp
}

func FromTimelineEventViews(views []*queries.TimelineEventView) []*TimelineEventResponse {
	resp := make([]*TimelineEventResponse, len(views))
	for i, v := range views {
		var r TimelineEventResponse
		_ = copier.Copy(&r, v)
		resp[i] = &r
	}
	return resp
}
