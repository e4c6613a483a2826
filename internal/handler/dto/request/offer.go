package request

import (
	"github.com/google/uuid"
)

type CreateOfferRequest struct {
	JobID   uuid.UUID `json:"job_id" binding:"required"`
	Content string    `json:"content"`
}
