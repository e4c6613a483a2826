package repository

import (
	"context"

	"hireflow/internal/domain/job"
	"hireflow/internal/infra"
	"hireflow/internal/infra/db"

	"github.com/google/uuid"
)

type JobRepository struct{}

func NewJobRepository() *JobRepository {
	return &JobRepository{}
}

func (r *JobRepository) Create(ctx context.Context, dbtx db.DBTX, j *job.Job) error {
	const q = `INSERT INTO jobs (id, title, description, status, created_by, created_at, updated_at)
	    VALUES ($1,$2,$3,$4,$5,$6,$7)`

	_, err := dbtx.Exec(ctx, q,
		j.ID(), j.Title(), j.Description(), string(j.Status()), j.CreatedBy(), j.CreatedAt(), j.UpdatedAt())
	if err != nil {
		return infra.WrapRepoErr("failed to create job", err)
	}

	return nil
}

func (r *JobRepository) UpdateStatus(ctx context.Context, dbtx db.DBTX, jobID uuid.UUID, status job.Status) error {
	const q = `UPDATE jobs SET status = $2, updated_at = now() WHERE id = $1`

	tag, err := dbtx.Exec(ctx, q, jobID, string(status))
	if err != nil {
		return infra.WrapRepoErr("failed to update job status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("job not found", nil, infra.KindNotFound)
	}

	return nil
}

func (r *JobRepository) CreateJDRequest(ctx context.Context, dbtx db.DBTX, req *job.JDRequest) error {
	const q = `INSERT INTO jd_requests (id, position, requirement, status, requested_by, created_at, updated_at)
	    VALUES ($1,$2,$3,$4,$5,$6,$7)`

	_, err := dbtx.Exec(ctx, q,
		req.ID(), req.Position(), req.Requirement(), string(req.Status()), req.RequestedBy(), req.CreatedAt(), req.UpdatedAt())
	if err != nil {
		return infra.WrapRepoErr("failed to create jd request", err)
	}

	return nil
}

func (r *JobRepository) UpdateJDRequestStatus(ctx context.Context, dbtx db.DBTX, id uuid.UUID, status job.JDRequestStatus) error {
	const q = `UPDATE jd_requests SET status = $2, updated_at = now() WHERE id = $1`

	tag, err := dbtx.Exec(ctx, q, id, string(status))
	if err != nil {
		return infra.WrapRepoErr("failed to update jd request status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("jd request not found", nil, infra.KindNotFound)
	}

	return nil
}
