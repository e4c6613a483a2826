package repository

import (
	"context"

	"hireflow/internal/domain/offer"
	"hireflow/internal/infra"
	"hireflow/internal/infra/db"

	"github.com/google/uuid"
)

type OfferRepository struct{}

func NewOfferRepository() *OfferRepository {
	return &OfferRepository{}
}

func (r *OfferRepository) Create(ctx context.Context, dbtx db.DBTX, o *offer.Offer) error {
	const q = `INSERT INTO offers (id, candidate_id, job_id, content, status, created_by, created_at, updated_at)
	    VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`

	_, err := dbtx.Exec(ctx, q,
		o.ID(), o.CandidateID(), o.JobID(), o.Content(), string(o.Status()), o.CreatedBy(), o.CreatedAt(), o.UpdatedAt())
	if err != nil {
		return infra.WrapRepoErr("failed to create offer", err)
	}

	return nil
}

func (r *OfferRepository) UpdateStatus(ctx context.Context, dbtx db.DBTX, offerID uuid.UUID, status offer.Status) error {
	const q = `UPDATE offers SET status = $2, updated_at = now() WHERE id = $1`

	tag, err := dbtx.Exec(ctx, q, offerID, string(status))
	if err != nil {
		return infra.WrapRepoErr("failed to update offer status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("offer not found", nil, infra.KindNotFound)
	}

	return nil
}
