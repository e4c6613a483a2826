//go:build unit

package queries_test

import (
	"context"
	"testing"

	"hireflow/internal/pkg/errs"
	"hireflow/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type stubScheduleViewRepo struct {
	views map[uuid.UUID]*queries.ScheduleRequestView
}

func (s *stubScheduleViewRepo) FindRequestByID(_ context.Context, id uuid.UUID) (*queries.ScheduleRequestView, error) {
	if v, ok := s.views[id]; ok {
		return v, nil
	}
	return nil, errs.ErrScheduleRequestNotFound
}

func (s *stubScheduleViewRepo) FindRequestsByCandidate(_ context.Context, candidateID uuid.UUID) ([]*queries.ScheduleRequestView, error) {
	var out []*queries.ScheduleRequestView
	for _, v := range s.views {
		if v.CandidateID == candidateID {
			out = append(out, v)
		}
	}
	return out, nil
}

func TestScheduleQueries_GetForCandidate(t *testing.T) {
	requestID := uuid.New()
	candidateID := uuid.New()
	repo := &stubScheduleViewRepo{views: map[uuid.UUID]*queries.ScheduleRequestView{
		requestID: {ID: requestID, CandidateID: candidateID},
	}}
	q := queries.NewScheduleQueries(repo)

	t.Run("owner resolves the request", func(t *testing.T) {
		view, err := q.GetForCandidate(context.Background(), requestID, candidateID)
		require.NoError(t, err)
		require.Equal(t, requestID, view.ID)
	})

	t.Run("another candidate gets not found, not forbidden", func(t *testing.T) {
		_, err := q.GetForCandidate(context.Background(), requestID, uuid.New())
		require.ErrorIs(t, err, errs.ErrScheduleRequestNotFound)
	})

	t.Run("unknown request", func(t *testing.T) {
		_, err := q.GetForCandidate(context.Background(), uuid.New(), candidateID)
		require.ErrorIs(t, err, errs.ErrScheduleRequestNotFound)
	})
}
