package repository

import (
	"context"

	"hireflow/internal/domain/pipeline"
	"hireflow/internal/infra"
	"hireflow/internal/infra/db"
)

type PipelineRepository struct{}

func NewPipelineRepository() *PipelineRepository {
	return &PipelineRepository{}
}

func (r *PipelineRepository) CreateProcess(ctx context.Context, dbtx db.DBTX, p *pipeline.Process) error {
	const pq = `INSERT INTO processes (id, name, created_by, created_at) VALUES ($1,$2,$3,$4)`

	_, err := dbtx.Exec(ctx, pq, p.ID(), p.Name(), p.CreatedBy(), p.CreatedAt())
	if err != nil {
		return infra.WrapRepoErr("failed to create process", err)
	}

	const sq = `INSERT INTO stages (id, process_id, name, sort_order) VALUES ($1,$2,$3,$4)`
	for _, stage := range p.Stages() {
		if _, err := dbtx.Exec(ctx, sq, stage.ID(), stage.ProcessID(), stage.Name(), stage.SortOrder()); err != nil {
			return infra.WrapRepoErr("failed to create stage", err)
		}
	}

	return nil
}
