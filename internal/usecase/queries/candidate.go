package queries

import (
	"context"

	"github.com/google/uuid"
)

type CandidateQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*CandidateView, error)
	List(ctx context.Context) ([]*CandidateView, error)
	Timeline(ctx context.Context, candidateID uuid.UUID) ([]*TimelineEventView, error)
}

type CandidateViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*CandidateView, error)
	FindAll(ctx context.Context) ([]*CandidateView, error)
	FindTimelineByCandidate(ctx context.Context, candidateID uuid.UUID) ([]*TimelineEventView, error)
}

type candidateQueriesImpl struct {
	repo CandidateViewRepo
}

func NewCandidateQueries(repo CandidateViewRepo) CandidateQueries {
	return &candidateQueriesImpl{repo: repo}
}

func (q *candidateQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*CandidateView, error) {
	return q.repo.FindByID(ctx, id)
}

func (q *candidateQueriesImpl) List(ctx context.Context) ([]*CandidateView, error) {
	return q.repo.FindAll(ctx)
}

func (q *candidateQueriesImpl) Timeline(ctx context.Context, candidateID uuid.UUID) ([]*TimelineEventView, error) {
	if _, err := q.repo.FindByID(ctx, candidateID); err != nil {
		return nil, err
	}
	return q.repo.FindTimelineByCandidate(ctx, candidateID)
}
