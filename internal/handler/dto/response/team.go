package response

import (
	"time"

	"hireflow/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type TeamMemberResponse struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Role        string     `json:"role"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

func FromTeamMemberViews(views []*queries.TeamMemberView) []*TeamMemberResponse {
	resp := make([]*TeamMemberResponse, len(views))
	for i, v := range views {
		var r TeamMemberResponse
		_ = copier.Copy(&r, v)
		resp[i] = &r
	}
	return resp
}
