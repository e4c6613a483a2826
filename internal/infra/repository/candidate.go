package repository

import (
	"context"

	"hireflow/internal/domain/candidate"
	"hireflow/internal/infra"
	"hireflow/internal/infra/db"

	"github.com/google/uuid"
)

type CandidateRepository struct{}

func NewCandidateRepository() *CandidateRepository {
	return &CandidateRepository{}
}

func (r *CandidateRepository) Create(ctx context.Context, dbtx db.DBTX, c *candidate.Candidate) error {
	const q = `INSERT INTO candidates (id, name, email, phone, stage_id, created_by, created_at, updated_at)
	    VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`

	_, err := dbtx.Exec(ctx, q,
		c.ID(), c.Name(), c.Email(), c.Phone(), c.StageID(), c.CreatedBy(), c.CreatedAt(), c.UpdatedAt())
	if err != nil {
		return infra.WrapRepoErr("failed to create candidate", err)
	}

	return nil
}

func (r *CandidateRepository) UpdateStage(ctx context.Context, dbtx db.DBTX, candidateID, stageID uuid.UUID) error {
	const q = `UPDATE candidates SET stage_id = $2, updated_at = now() WHERE id = $1`

	tag, err := dbtx.Exec(ctx, q, candidateID, stageID)
	if err != nil {
		return infra.WrapRepoErr("failed to update candidate stage", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("candidate not found", nil, infra.KindNotFound)
	}

	return nil
}

func (r *CandidateRepository) Delete(ctx context.Context, dbtx db.DBTX, candidateID uuid.UUID) error {
	const q = `DELETE FROM candidates WHERE id = $1`

	tag, err := dbtx.Exec(ctx, q, candidateID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete candidate", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("candidate not found", nil, infra.KindNotFound)
	}

	return nil
}
