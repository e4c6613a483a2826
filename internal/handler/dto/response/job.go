package response

import (
	"time"

	"hireflow/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type JobResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type JDRequestResponse struct {
	ID          uuid.UUID `json:"id"`
	Position    string    `json:"position"`
	Requirement string    `json:"requirement"`
	Status      string    `json:"status"`
	RequestedBy uuid.UUID `json:"requestedBy"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type OfferResponse struct {
	ID          uuid.UUID `json:"id"`
	CandidateID uuid.UUID `json:"candidateId"`
	JobID       uuid.UUID `json:"jobId"`
	Content     string    `json:"content"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func FromJobView(v *queries.JobView) *JobResponse {
	var resp JobResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromJobViews(views []*queries.JobView) []*JobResponse {
	resp := make([]*JobResponse, len(views))
	for i, v := range views {
		resp[i] = FromJobView(v)
	}
	return resp
}

func FromJDRequestViews(views []*queries.JDRequestView) []*JDRequestResponse {
	resp := make([]*JDRequestResponse, len(views))
	for i, v := range views {
		var r JDRequestResponse
		_ = copier.Copy(&r, v)
		resp[i] = &r
	}
	return resp
}

func FromOfferViews(views []*queries.OfferView) []*OfferResponse {
	resp := make([]*OfferResponse, len(views))
	for i, v := range views {
		var r OfferResponse
		_ = copier.Copy(&r, v)
		resp[i] = &r
	}
	return resp
}
