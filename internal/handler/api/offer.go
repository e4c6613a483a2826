package api

import (
	"errors"
	"net/http"

	"hireflow/internal/handler/middleware"
	"hireflow/internal/pkg/errs"
	"hireflow/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OfferHandler struct {
	offerCommands commands.OfferCommands
}

func NewOfferHandler(offerCommands commands.OfferCommands) *OfferHandler {
	return &OfferHandler{
		offerCommands: offerCommands,
	}
}

// @Summary Send offer
// @Description Mark a draft offer as sent and record it on the timeline
// @Tags offers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Offer ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /offers/{id}/send [post]
func (h *OfferHandler) SendOffer(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid offer ID format"})
		return
	}

	if err := h.offerCommands.Send(c.Request.Context(), id, userID); err != nil {
		switch {
		case errors.Is(err, errs.ErrOfferNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Offer not found"})
		case errors.Is(err, errs.ErrOfferNotSendable):
			c.JSON(http.StatusConflict, gin.H{"error": "Offer cannot be sent in its current state"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
