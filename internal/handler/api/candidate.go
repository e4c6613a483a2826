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

type CandidateHandler struct {
	candidateCommands commands.CandidateCommands
	offerCommands     commands.OfferCommands
	candidateQueries  queries.CandidateQueries
	jobQueries        queries.JobQueries
}

func NewCandidateHandler(
	candidateCommands commands.CandidateCommands,
	offerCommands commands.OfferCommands,
	candidateQueries queries.CandidateQueries,
	jobQueries queries.JobQueries,
) *CandidateHandler {
	return &CandidateHandler{
		candidateCommands: candidateCommands,
		offerCommands:     offerCommands,
		candidateQueries:  candidateQueries,
		jobQueries:        jobQueries,
	}
}

// @Summary Create candidate
// @Tags candidates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateCandidateRequest true "Candidate"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /candidates [post]
func (h *CandidateHandler) CreateCandidate(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.CreateCandidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	id, err := h.candidateCommands.Create(c.Request.Context(), req, userID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrStageNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Stage not found"})
		case errors.Is(err, errs.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Invalid candidate data"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// @Summary List candidates
// @Tags candidates
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.CandidateResponse
// @Router /candidates [get]
func (h *CandidateHandler) ListCandidates(c *gin.Context) {
	views, err := h.candidateQueries.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromCandidateViews(views))
}

// @Summary Get candidate
// @Tags candidates
// @Produce json
// @Security BearerAuth
// @Param id path string true "Candidate ID"
// @Success 200 {object} resdto.CandidateResponse
// @Failure 404 {object} map[string]string
// @Router /candidates/{id} [get]
func (h *CandidateHandler) GetCandidate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid candidate ID format"})
		return
	}

	view, err := h.candidateQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		if isNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Candidate not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromCandidateView(view))
}

// @Summary Move candidate stage
// @Tags candidates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Candidate ID"
// @Param request body reqdto.MoveStageRequest true "Target stage"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /candidates/{id}/stage [patch]
func (h *CandidateHandler) MoveStage(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid candidate ID format"})
		return
	}

	var req reqdto.MoveStageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.candidateCommands.MoveStage(c.Request.Context(), id, req.StageID, userID); err != nil {
		switch {
		case errors.Is(err, errs.ErrCandidateNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Candidate not found"})
		case errors.Is(err, errs.ErrStageNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Stage not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Delete candidate
// @Tags candidates
// @Produce json
// @Security BearerAuth
// @Param id path string true "Candidate ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /candidates/{id} [delete]
func (h *CandidateHandler) DeleteCandidate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid candidate ID format"})
		return
	}

	if err := h.candidateCommands.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, errs.ErrCandidateNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Candidate not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Candidate timeline
// @Tags candidates
// @Produce json
// @Security BearerAuth
// @Param id path string true "Candidate ID"
// @Success 200 {array} resdto.TimelineEventResponse
// @Failure 404 {object} map[string]string
// @Router /candidates/{id}/timeline [get]
func (h *CandidateHandler) GetTimeline(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid candidate ID format"})
		return
	}

	views, err := h.candidateQueries.Timeline(c.Request.Context(), id)
	if err != nil {
		if isNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Candidate not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromTimelineEventViews(views))
}

// @Summary Add timeline note
// @Tags candidates
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Candidate ID"
// @Param request body reqdto.AddNoteRequest true "Note"
// @Success 201
// @Failure 404 {object} map[string]string
// @Router /candidates/{id}/timeline [post]
func (h *CandidateHandler) AddNote(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid candidate ID format"})
		return
	}

	var req reqdto.AddNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.candidateCommands.AddNote(c.Request.Context(), id, req.Content, userID); err != nil {
		if errors.Is(err, errs.ErrCandidateNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Candidate not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.Status(http.StatusCreated)
}

// @Summary Create offer for candidate
// @Tags offers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Candidate ID"
// @Param request body reqdto.CreateOfferRequest true "Offer"
// @Success 201 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /candidates/{id}/offers [post]
func (h *CandidateHandler) CreateOffer(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid candidate ID format"})
		return
	}

	var req reqdto.CreateOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	offerID, err := h.offerCommands.Create(c.Request.Context(), id, req, userID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrCandidateNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Candidate not found"})
		case errors.Is(err, errs.ErrJobNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": offerID})
}

// @Summary List candidate offers
// @Tags offers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Candidate ID"
// @Success 200 {array} resdto.OfferResponse
// @Router /candidates/{id}/offers [get]
func (h *CandidateHandler) ListOffers(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid candidate ID format"})
		return
	}

	views, err := h.jobQueries.ListOffersByCandidate(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, resdto.FromOfferViews(views))
}
