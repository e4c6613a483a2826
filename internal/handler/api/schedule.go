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
	"github.com/google/uuid"
)

type ScheduleHandler struct {
	scheduleCommands commands.ScheduleCommands
	scheduleQueries  queries.ScheduleQueries
}

func NewScheduleHandler(scheduleCommands commands.ScheduleCommands, scheduleQueries queries.ScheduleQueries) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleCommands: scheduleCommands,
		scheduleQueries:  scheduleQueries,
	}
}

// @Summary Create schedule request
// @Description Resolve availability and offer interview slots to a candidate
// @Tags schedules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateScheduleRequest true "Schedule request"
// @Success 201 {object} resdto.CreateScheduleResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} resdto.CreateScheduleResponse
// @Router /schedules [post]
func (h *ScheduleHandler) CreateSchedule(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.scheduleCommands.Create(c.Request.Context(), req, userID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrNoAvailability):
			// The request row exists; the recruiter can widen the window and
			// try again without losing the audit trail.
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":      "No available time slots in the requested window",
				"request_id": result.RequestID,
			})
		case errors.Is(err, errs.ErrInvalidWindow):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Window start must be before window end",
			})
		case errors.Is(err, errs.ErrInvalidDuration):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Duration must be 30-180 minutes in 30-minute steps",
			})
		case errors.Is(err, errs.ErrCandidateNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Candidate not found",
			})
		case errors.Is(err, errs.ErrStageNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Stage not found",
			})
		case errors.Is(err, errs.ErrPendingScheduleExists):
			c.JSON(http.StatusConflict, gin.H{
				"error": "A schedule request for this candidate was just created concurrently",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCreateScheduleResult(result))
}

// @Summary Get schedule request
// @Description Get a schedule request with its options
// @Tags schedules
// @Produce json
// @Security BearerAuth
// @Param id path string true "Schedule request ID"
// @Success 200 {object} resdto.ScheduleRequestResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /schedules/{id} [get]
func (h *ScheduleHandler) GetSchedule(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid schedule request ID format",
		})
		return
	}

	view, err := h.scheduleQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		handleScheduleQueryError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromScheduleRequestView(view))
}

// @Summary Cancel schedule request
// @Description Cancel a pending schedule request
// @Tags schedules
// @Produce json
// @Security BearerAuth
// @Param id path string true "Schedule request ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /schedules/{id}/cancel [post]
func (h *ScheduleHandler) CancelSchedule(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid schedule request ID format",
		})
		return
	}

	if err := h.scheduleCommands.Cancel(c.Request.Context(), id, userID); err != nil {
		switch {
		case errors.Is(err, errs.ErrScheduleRequestNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Schedule request not found",
			})
		case errors.Is(err, errs.ErrAlreadyConfirmed):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Schedule request already confirmed",
			})
		case errors.Is(err, errs.ErrInvalidScheduleState):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Schedule request is not cancellable in its current state",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary List schedule requests for a candidate
// @Tags schedules
// @Produce json
// @Security BearerAuth
// @Param id path string true "Candidate ID"
// @Success 200 {array} resdto.ScheduleRequestResponse
// @Router /candidates/{id}/schedules [get]
func (h *ScheduleHandler) ListByCandidate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid candidate ID format",
		})
		return
	}

	views, err := h.scheduleQueries.ListByCandidate(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromScheduleRequestViews(views))
}

func handleScheduleQueryError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrScheduleRequestNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Schedule request not found",
		})
	default:
		if isNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Schedule request not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
