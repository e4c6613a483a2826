package queries

import (
	"context"

	"github.com/google/uuid"
)

type JobQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*JobView, error)
	List(ctx context.Context) ([]*JobView, error)
	ListJDRequests(ctx context.Context) ([]*JDRequestView, error)
	ListOffersByCandidate(ctx context.Context, candidateID uuid.UUID) ([]*OfferView, error)
}

type JobViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*JobView, error)
	FindAll(ctx context.Context) ([]*JobView, error)
	FindJDRequests(ctx context.Context) ([]*JDRequestView, error)
	FindOffersByCandidate(ctx context.Context, candidateID uuid.UUID) ([]*OfferView, error)
}

type jobQueriesImpl struct {
	repo JobViewRepo
}

func NewJobQueries(repo JobViewRepo) JobQueries {
	return &jobQueriesImpl{repo: repo}
}

func (q *jobQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*JobView, error) {
	return q.repo.FindByID(ctx, id)
}

func (q *jobQueriesImpl) List(ctx context.Context) ([]*JobView, error) {
	return q.repo.FindAll(ctx)
}

func (q *jobQueriesImpl) ListJDRequests(ctx context.Context) ([]*JDRequestView, error) {
	return q.repo.FindJDRequests(ctx)
}

func (q *jobQueriesImpl) ListOffersByCandidate(ctx context.Context, candidateID uuid.UUID) ([]*OfferView, error) {
	return q.repo.FindOffersByCandidate(ctx, candidateID)
}
