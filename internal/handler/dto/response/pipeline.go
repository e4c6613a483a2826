package response

import (
	"time"

	"hireflow/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type StageResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	SortOrder int       `json:"sortOrder"`
}

type ProcessResponse struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Stages    []StageResponse `json:"stages"`
	CreatedAt time.Time       `json:"createdAt"`
}

func FromProcessView(v *queries.ProcessView) *ProcessResponse {
	var resp ProcessResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromProcessViews(views []*queries.ProcessView) []*ProcessResponse {
	resp := make([]*ProcessResponse, len(views))
	for i, v := range views {
		resp[i] = FromProcessView(v)
	}
	return resp
}
