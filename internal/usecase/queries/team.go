package queries

import (
	"context"
)

type TeamQueries interface {
	List(ctx context.Context) ([]*TeamMemberView, error)
	ListInterviewers(ctx context.Context) ([]*TeamMemberView, error)
}

type TeamViewRepo interface {
	FindAll(ctx context.Context) ([]*TeamMemberView, error)
	FindByRole(ctx context.Context, role string) ([]*TeamMemberView, error)
}

type teamQueriesImpl struct {
	repo TeamViewRepo
}

func NewTeamQueries(repo TeamViewRepo) TeamQueries {
	return &teamQueriesImpl{repo: repo}
}

func (q *teamQueriesImpl) List(ctx context.Context) ([]*TeamMemberView, error) {
	return q.repo.FindAll(ctx)
}

func (q *teamQueriesImpl) ListInterviewers(ctx context.Context) ([]*TeamMemberView, error) {
	return q.repo.FindByRole(ctx, "interviewer")
}
