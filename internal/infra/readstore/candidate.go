package readstore

import (
	"context"

	"hireflow/internal/infra"
	"hireflow/internal/infra/db"
	"hireflow/internal/pkg/pgconv"
	"hireflow/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type CandidateReadStore struct {
	db db.DBTX
}

func NewCandidateReadStore(dbtx db.DBTX) *CandidateReadStore {
	return &CandidateReadStore{db: dbtx}
}

func (r *CandidateReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.CandidateView, error) {
	const q = `SELECT c.id, c.name, c.email, c.phone, c.stage_id, s.name, c.created_at, c.updated_at
	    FROM candidates c
	    LEFT JOIN stages s ON s.id = c.stage_id
	    WHERE c.id = $1`

	var v queries.CandidateView
	var phone, stageName pgtype.Text
	var stageID pgtype.UUID
	err := r.db.QueryRow(ctx, q, id).Scan(
		&v.ID, &v.Name, &v.Email, &phone, &stageID, &stageName, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("candidate not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find candidate", err)
	}
	v.Phone = pgconv.StringPtrFromPgtype(phone)
	v.StageID = pgconv.UUIDPtrFromPgtype(stageID)
	v.StageName = pgconv.StringPtrFromPgtype(stageName)

	return &v, nil
}

func (r *CandidateReadStore) FindAll(ctx context.Context) ([]*queries.CandidateView, error) {
	const q = `SELECT c.id, c.name, c.email, c.phone, c.stage_id, s.name, c.created_at, c.updated_at
	    FROM candidates c
	    LEFT JOIN stages s ON s.id = c.stage_id
	    ORDER BY c.created_at DESC`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find candidates", err)
	}
	defer rows.Close()

	var views []*queries.CandidateView
	for rows.Next() {
		var v queries.CandidateView
		var phone, stageName pgtype.Text
		var stageID pgtype.UUID
		if err := rows.Scan(&v.ID, &v.Name, &v.Email, &phone, &stageID, &stageName, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan candidate", err)
		}
		v.Phone = pgconv.StringPtrFromPgtype(phone)
		v.StageID = pgconv.UUIDPtrFromPgtype(stageID)
		v.StageName = pgconv.StringPtrFromPgtype(stageName)
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read candidates", err)
	}

	return views, nil
}

func (r *CandidateReadStore) FindTimelineByCandidate(ctx context.Context, candidateID uuid.UUID) ([]*queries.TimelineEventView, error) {
	const q = `SELECT id, candidate_id, type, content, created_by, created_at
	    FROM timeline_events
	    WHERE candidate_id = $1
	    ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, q, candidateID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find timeline events", err)
	}
	defer rows.Close()

	var views []*queries.TimelineEventView
	for rows.Next() {
		var v queries.TimelineEventView
		if err := rows.Scan(&v.ID, &v.CandidateID, &v.Type, &v.Content, &v.CreatedBy, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan timeline event", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read timeline events", err)
	}

	return views, nil
}
