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

type JobHandler struct {
	jobCommands commands.JobCommands
	jobQueries  queries.JobQueries
}

func NewJobHandler(jobCommands commands.JobCommands, jobQueries queries.JobQueries) *JobHandler {
	return &JobHandler{
		jobCommands: jobCommands,
		jobQueries:  jobQueries,
	}
}

// @Summary Create job
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateJobRequest true "Job"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /jobs [post]
func (h *JobHandler) CreateJob(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	id, err := h.jobCommands.Create(c.Request.Context(), req, userID)
	if err != nil {
		if errors.Is(err, errs.ErrDomainValidation) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid job data"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// @Summary List jobs
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.JobResponse
// @Router /jobs [get]
func (h *JobHandler) ListJobs(c *gin.Context) {
	views, err := h.jobQueries.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromJobViews(views))
}

// @Summary Get job
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param id path string true "Job ID"
// @Success 200 {object} resdto.JobResponse
// @Failure 404 {object} map[string]string
// @Router /jobs/{id} [get]
func (h *JobHandler) GetJob(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid job ID format"})
		return
	}

	view, err := h.jobQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		if isNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromJobView(view))
}

// @Summary Update job status
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Job ID"
// @Param request body reqdto.UpdateJobStatusRequest true "New status"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /jobs/{id}/status [patch]
func (h *JobHandler) UpdateJobStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid job ID format"})
		return
	}

	var req reqdto.UpdateJobStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.jobCommands.UpdateStatus(c.Request.Context(), id, req.Status); err != nil {
		switch {
		case errors.Is(err, errs.ErrJobNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		case errors.Is(err, errs.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid job status"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Create JD request
// @Tags jd-requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateJDRequest true "JD request"
// @Success 201 {object} map[string]string
// @Router /jd-requests [post]
func (h *JobHandler) CreateJDRequest(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.CreateJDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	id, err := h.jobCommands.CreateJDRequest(c.Request.Context(), req, userID)
	if err != nil {
		if errors.Is(err, errs.ErrDomainValidation) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid jd request data"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// @Summary List JD requests
// @Tags jd-requests
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.JDRequestResponse
// @Router /jd-requests [get]
func (h *JobHandler) ListJDRequests(c *gin.Context) {
	views, err := h.jobQueries.ListJDRequests(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromJDRequestViews(views))
}

// @Summary Update JD request status
// @Tags jd-requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "JD request ID"
// @Param request body reqdto.UpdateJDRequestStatusRequest true "New status"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /jd-requests/{id}/status [patch]
func (h *JobHandler) UpdateJDRequestStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid jd request ID format"})
		return
	}

	var req reqdto.UpdateJDRequestStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.jobCommands.UpdateJDRequestStatus(c.Request.Context(), id, req.Status); err != nil {
		switch {
		case errors.Is(err, errs.ErrJDRequestNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "JD request not found"})
		case errors.Is(err, errs.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid jd request status"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
