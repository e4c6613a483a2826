package queries

import (
	"context"

	"hireflow/internal/pkg/errs"

	"github.com/google/uuid"
)

type ScheduleQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ScheduleRequestView, error)
	ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]*ScheduleRequestView, error)
	// GetForCandidate serves the public link flow. The request must belong
	// to the candidate or the caller gets not-found, never someone else's
	// schedule.
	GetForCandidate(ctx context.Context, requestID, candidateID uuid.UUID) (*ScheduleRequestView, error)
}

type ScheduleViewRepo interface {
	FindRequestByID(ctx context.Context, id uuid.UUID) (*ScheduleRequestView, error)
	FindRequestsByCandidate(ctx context.Context, candidateID uuid.UUID) ([]*ScheduleRequestView, error)
}

type scheduleQueriesImpl struct {
	repo ScheduleViewRepo
}

func NewScheduleQueries(repo ScheduleViewRepo) ScheduleQueries {
	return &scheduleQueriesImpl{repo: repo}
}

func (q *scheduleQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ScheduleRequestView, error) {
	return q.repo.FindRequestByID(ctx, id)
}

func (q *scheduleQueriesImpl) ListByCandidate(ctx context.Context, candidateID uuid.UUID) ([]*ScheduleRequestView, error) {
	return q.repo.FindRequestsByCandidate(ctx, candidateID)
}

func (q *scheduleQueriesImpl) GetForCandidate(ctx context.Context, requestID, candidateID uuid.UUID) (*ScheduleRequestView, error) {
	view, err := q.repo.FindRequestByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if view.CandidateID != candidateID {
		return nil, errs.Mark(errs.New("schedule request does not belong to candidate"), errs.ErrScheduleRequestNotFound)
	}
	return view, nil
}
