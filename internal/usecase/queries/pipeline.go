package queries

import (
	"context"

	"github.com/google/uuid"
)

type PipelineQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ProcessView, error)
	List(ctx context.Context) ([]*ProcessView, error)
}

type PipelineViewRepo interface {
	FindProcessByID(ctx context.Context, id uuid.UUID) (*ProcessView, error)
	FindAllProcesses(ctx context.Context) ([]*ProcessView, error)
}

type pipelineQueriesImpl struct {
	repo PipelineViewRepo
}

func NewPipelineQueries(repo PipelineViewRepo) PipelineQueries {
	return &pipelineQueriesImpl{repo: repo}
}

func (q *pipelineQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ProcessView, error) {
	return q.repo.FindProcessByID(ctx, id)
}

func (q *pipelineQueriesImpl) List(ctx context.Context) ([]*ProcessView, error) {
	return q.repo.FindAllProcesses(ctx)
}
