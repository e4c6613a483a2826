package readstore

import (
	"context"

	"hireflow/internal/infra"
	"hireflow/internal/infra/db"
	"hireflow/internal/pkg/pgconv"
	"hireflow/internal/usecase/queries"

	"github.com/google/uuid"
)

type JobReadStore struct {
	db db.DBTX
}

func NewJobReadStore(dbtx db.DBTX) *JobReadStore {
	return &JobReadStore{db: dbtx}
}

func (r *JobReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.JobView, error) {
	const q = `SELECT id, title, description, status, created_at, updated_at FROM jobs WHERE id = $1`

	var v queries.JobView
	err := r.db.QueryRow(ctx, q, id).Scan(&v.ID, &v.Title, &v.Description, &v.Status, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("job not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find job", err)
	}

	return &v, nil
}

func (r *JobReadStore) FindAll(ctx context.Context) ([]*queries.JobView, error) {
	const q = `SELECT id, title, description, status, created_at, updated_at FROM jobs ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find jobs", err)
	}
	defer rows.Close()

	var views []*queries.JobView
	for rows.Next() {
		var v queries.JobView
		if err := rows.Scan(&v.ID, &v.Title, &v.Description, &v.Status, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan job", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read jobs", err)
	}

	return views, nil
}

func (r *JobReadStore) FindJDRequests(ctx context.Context) ([]*queries.JDRequestView, error) {
	const q = `SELECT id, position, requirement, status, requested_by, created_at, updated_at
	    FROM jd_requests ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find jd requests", err)
	}
	defer rows.Close()

	var views []*queries.JDRequestView
	for rows.Next() {
		var v queries.JDRequestView
		if err := rows.Scan(&v.ID, &v.Position, &v.Requirement, &v.Status, &v.RequestedBy, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan jd request", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read jd requests", err)
	}

	return views, nil
}

func (r *JobReadStore) FindOffersByCandidate(ctx context.Context, candidateID uuid.UUID) ([]*queries.OfferView, error) {
	const q = `SELECT id, candidate_id, job_id, content, status, created_at, updated_at
	    FROM offers WHERE candidate_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, q, candidateID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find offers", err)
	}
	defer rows.Close()

	var views []*queries.OfferView
	for rows.Next() {
		var v queries.OfferView
		if err := rows.Scan(&v.ID, &v.CandidateID, &v.JobID, &v.Content, &v.Status, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan offer", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read offers", err)
	}

	return views, nil
}
