package api

import (
	"net/http"

	resdto "hireflow/internal/handler/dto/response"
	"hireflow/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type TeamHandler struct {
	teamQueries queries.TeamQueries
}

func NewTeamHandler(teamQueries queries.TeamQueries) *TeamHandler {
	return &TeamHandler{
		teamQueries: teamQueries,
	}
}

// @Summary List team members
// @Tags team
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.TeamMemberResponse
// @Router /team [get]
func (h *TeamHandler) ListTeam(c *gin.Context) {
	views, err := h.teamQueries.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromTeamMemberViews(views))
}

// @Summary List interviewers
// @Tags team
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.TeamMemberResponse
// @Router /team/interviewers [get]
func (h *TeamHandler) ListInterviewers(c *gin.Context) {
	views, err := h.teamQueries.ListInterviewers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromTeamMemberViews(views))
}
