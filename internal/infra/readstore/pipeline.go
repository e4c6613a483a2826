package readstore

import (
	"context"

	"hireflow/internal/infra"
	"hireflow/internal/infra/db"
	"hireflow/internal/pkg/pgconv"
	"hireflow/internal/usecase/queries"

	"github.com/google/uuid"
)

type PipelineReadStore struct {
	db db.DBTX
}

func NewPipelineReadStore(dbtx db.DBTX) *PipelineReadStore {
	return &PipelineReadStore{db: dbtx}
}

func (r *PipelineReadStore) FindProcessByID(ctx context.Context, id uuid.UUID) (*queries.ProcessView, error) {
	const q = `SELECT id, name, created_at FROM processes WHERE id = $1`

	var v queries.ProcessView
	err := r.db.QueryRow(ctx, q, id).Scan(&v.ID, &v.Name, &v.CreatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("process not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find process", err)
	}

	stages, err := r.stagesByProcess(ctx, id)
	if err != nil {
		return nil, err
	}
	v.Stages = stages

	return &v, nil
}

func (r *PipelineReadStore) FindAllProcesses(ctx context.Context) ([]*queries.ProcessView, error) {
	const q = `SELECT id, name, created_at FROM processes ORDER BY created_at`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find processes", err)
	}
	defer rows.Close()

	var views []*queries.ProcessView
	for rows.Next() {
		var v queries.ProcessView
		if err := rows.Scan(&v.ID, &v.Name, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan process", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read processes", err)
	}

	for _, v := range views {
		stages, err := r.stagesByProcess(ctx, v.ID)
		if err != nil {
			return nil, err
		}
		v.Stages = stages
	}

	return views, nil
}

func (r *PipelineReadStore) stagesByProcess(ctx context.Context, processID uuid.UUID) ([]queries.StageView, error) {
	const q = `SELECT id, name, sort_order FROM stages WHERE process_id = $1 ORDER BY sort_order`

	rows, err := r.db.Query(ctx, q, processID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find stages", err)
	}
	defer rows.Close()

	var stages []queries.StageView
	for rows.Next() {
		var s queries.StageView
		if err := rows.Scan(&s.ID, &s.Name, &s.SortOrder); err != nil {
			return nil, infra.WrapRepoErr("failed to scan stage", err)
		}
		stages = append(stages, s)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read stages", err)
	}

	return stages, nil
}
