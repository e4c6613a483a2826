package repository

import (
	"context"

	"hireflow/internal/domain/timeline"
	"hireflow/internal/infra"
	"hireflow/internal/infra/db"
)

type TimelineRepository struct{}

func NewTimelineRepository() *TimelineRepository {
	return &TimelineRepository{}
}

func (r *TimelineRepository) Append(ctx context.Context, dbtx db.DBTX, ev *timeline.Event) error {
	const q = `INSERT INTO timeline_events (id, candidate_id, type, content, created_by, created_at)
	    VALUES ($1,$2,$3,$4,$5,$6)`

	_, err := dbtx.Exec(ctx, q,
		ev.ID(), ev.CandidateID(), string(ev.Type()), ev.Content(), ev.CreatedBy(), ev.CreatedAt())
	if err != nil {
		return infra.WrapRepoErr("failed to append timeline event", err)
	}

	return nil
}
