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

type PipelineHandler struct {
	pipelineCommands commands.PipelineCommands
	pipelineQueries  queries.PipelineQueries
}

func NewPipelineHandler(pipelineCommands commands.PipelineCommands, pipelineQueries queries.PipelineQueries) *PipelineHandler {
	return &PipelineHandler{
		pipelineCommands: pipelineCommands,
		pipelineQueries:  pipelineQueries,
	}
}

// @Summary Create hiring process
// @Tags processes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateProcessRequest true "Process with ordered stages"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /processes [post]
func (h *PipelineHandler) CreateProcess(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.CreateProcessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	id, err := h.pipelineCommands.CreateProcess(c.Request.Context(), req, userID)
	if err != nil {
		if errors.Is(err, errs.ErrDomainValidation) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid process data"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// @Summary List hiring processes
// @Tags processes
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ProcessResponse
// @Router /processes [get]
func (h *PipelineHandler) ListProcesses(c *gin.Context) {
	views, err := h.pipelineQueries.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromProcessViews(views))
}

// @Summary Get hiring process
// @Tags processes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Process ID"
// @Success 200 {object} resdto.ProcessResponse
// @Failure 404 {object} map[string]string
// @Router /processes/{id} [get]
func (h *PipelineHandler) GetProcess(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid process ID format"})
		return
	}

	view, err := h.pipelineQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		if isNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Process not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromProcessView(view))
}
