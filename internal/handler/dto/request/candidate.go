package request

import (
	"github.com/google/uuid"
)

type CreateCandidateRequest struct {
	Name    string     `json:"name" binding:"required"`
	Email   string     `json:"email" binding:"required,email"`
	Phone   *string    `json:"phone,omitempty"`
	StageID *uuid.UUID `json:"stage_id,omitempty"`
}

type MoveStageRequest struct {
	StageID uuid.UUID `json:"stage_id" binding:"required"`
}

type AddNoteRequest struct {
	Content string `json:"content" binding:"required"`
}
