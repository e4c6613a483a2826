package api

import (
	"errors"
	"net/http"

	reqdto "hireflow/internal/handler/dto/request"
	resdto "hireflow/internal/handler/dto/response"
	"hireflow/internal/handler/middleware"
	"hireflow/internal/pkg/errs"
	"hireflow/internal/usecase/commands"
	"hireflow/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// PublicScheduleHandler serves the candidate-facing link flow. Requests carry
// no session; the schedule link token is the whole identity.
type PublicScheduleHandler struct {
	scheduleCommands commands.ScheduleCommands
	scheduleQueries  queries.ScheduleQueries
}

func NewPublicScheduleHandler(scheduleCommands commands.ScheduleCommands, scheduleQueries queries.ScheduleQueries) *PublicScheduleHandler {
	return &PublicScheduleHandler{
		scheduleCommands: scheduleCommands,
		scheduleQueries:  scheduleQueries,
	}
}

// @Summary Resolve schedule link
// @Description Get the schedule request and offered options behind a link token
// @Tags public
// @Produce json
// @Param X-Schedule-Token header string true "Schedule link token"
// @Success 200 {object} resdto.ScheduleRequestResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /public/schedules [get]
func (h *PublicScheduleHandler) GetSchedule(c *gin.Context) {
	candidateID, requestID, ok := middleware.GetScheduleLink(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	view, err := h.scheduleQueries.GetForCandidate(c.Request.Context(), requestID, candidateID)
	if err != nil {
		if errors.Is(err, errs.ErrScheduleRequestNotFound) || isNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Schedule request not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromScheduleRequestView(view))
}

// @Summary Confirm schedule option
// @Description Confirm one offered slot; the first confirmation wins
// @Tags public
// @Accept json
// @Produce json
// @Param X-Schedule-Token header string true "Schedule link token"
// @Param request body reqdto.ConfirmScheduleRequest true "Chosen option"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /public/schedules/confirm [post]
func (h *PublicScheduleHandler) ConfirmSchedule(c *gin.Context) {
	candidateID, requestID, ok := middleware.GetScheduleLink(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.ConfirmScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	err := h.scheduleCommands.Confirm(c.Request.Context(), requestID, candidateID, req.OptionID, req.Preference)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrAlreadyConfirmed):
			c.JSON(http.StatusConflict, gin.H{
				"error": "This schedule was already confirmed",
			})
		case errors.Is(err, errs.ErrScheduleRequestNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Schedule request not found",
			})
		case errors.Is(err, errs.ErrScheduleOptionNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Schedule option not found",
			})
		case errors.Is(err, errs.ErrInvalidScheduleState):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Schedule request is no longer open for confirmation",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "confirmed",
	})
}
