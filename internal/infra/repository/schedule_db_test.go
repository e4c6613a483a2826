//go:build e2e

package repository_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"hireflow/internal/domain/schedule"
	"hireflow/internal/infra"
	"hireflow/internal/infra/readstore"
	"hireflow/internal/infra/repository"
	"hireflow/tests/common/dbtest"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scheduleDBFixture struct {
	pool        *pgxpool.Pool
	repo        *repository.ScheduleRepository
	reads       *readstore.CommandReads
	recruiterID uuid.UUID
	stageID     uuid.UUID
	candidateID uuid.UUID
	interviewer uuid.UUID
	now         time.Time
}

func newScheduleDBFixture(t *testing.T) *scheduleDBFixture {
	t.Helper()

	pool := dbtest.SetupPool(t)
	recruiterID := dbtest.CreateTestUser(t, pool, "recruiter@example.com", "recruiter")
	stageID := dbtest.CreateTestStage(t, pool, recruiterID)

	return &scheduleDBFixture{
		pool:        pool,
		repo:        repository.NewScheduleRepository(),
		reads:       readstore.NewCommandReads(pool),
		recruiterID: recruiterID,
		stageID:     stageID,
		candidateID: dbtest.CreateTestCandidate(t, pool, stageID, recruiterID),
		interviewer: dbtest.CreateTestUser(t, pool, "interviewer@example.com", "interviewer"),
		// 2026-02-02 is a Monday.
		now: time.Date(2026, 2, 2, 8, 0, 0, 0, time.UTC),
	}
}

func (f *scheduleDBFixture) window(t *testing.T) schedule.Window {
	t.Helper()
	window, err := schedule.NewWindow(f.now, f.now.AddDate(0, 0, 5))
	require.NoError(t, err)
	return window
}

// seedPendingRequest persists a pending request for the fixture candidate with
// offered options at the given times.
func (f *scheduleDBFixture) seedPendingRequest(t *testing.T, candidateID uuid.UUID, slots ...time.Time) (*schedule.Request, []*schedule.Option) {
	t.Helper()

	ctx := context.Background()
	duration, err := schedule.NewDuration(60)
	require.NoError(t, err)

	req := schedule.NewRequest(candidateID, f.stageID, []uuid.UUID{f.interviewer}, f.window(t), duration, f.recruiterID, f.now)
	require.NoError(t, f.repo.CreateRequest(ctx, f.pool, req))

	options := schedule.NewOptions(req.ID(), slots, 0, f.now)
	require.NoError(t, f.repo.InsertOptions(ctx, f.pool, options))

	return req, options
}

func (f *scheduleDBFixture) requestStatus(t *testing.T, requestID uuid.UUID) (status, response string) {
	t.Helper()
	err := f.pool.QueryRow(context.Background(),
		"SELECT status, candidate_response FROM schedule_requests WHERE id = $1", requestID).
		Scan(&status, &response)
	require.NoError(t, err)
	return status, response
}

func (f *scheduleDBFixture) optionStatus(t *testing.T, optionID uuid.UUID) string {
	t.Helper()
	var status string
	err := f.pool.QueryRow(context.Background(),
		"SELECT status FROM schedule_options WHERE id = $1", optionID).Scan(&status)
	require.NoError(t, err)
	return status
}

func TestScheduleRepository_ConfirmRequest(t *testing.T) {
	t.Run("only the first confirmation updates the row", func(t *testing.T) {
		f := newScheduleDBFixture(t)
		req, _ := f.seedPendingRequest(t, f.candidateID, f.now.Add(2*time.Hour))
		ctx := context.Background()

		affected, err := f.repo.ConfirmRequest(ctx, f.pool, req.ID())
		require.NoError(t, err)
		assert.Equal(t, int64(1), affected)

		affected, err = f.repo.ConfirmRequest(ctx, f.pool, req.ID())
		require.NoError(t, err)
		assert.Equal(t, int64(0), affected)

		status, response := f.requestStatus(t, req.ID())
		assert.Equal(t, "confirmed", status)
		assert.Equal(t, "responded", response)
	})

	t.Run("exactly one of many concurrent confirmations wins", func(t *testing.T) {
		f := newScheduleDBFixture(t)
		req, _ := f.seedPendingRequest(t, f.candidateID, f.now.Add(2*time.Hour))

		var winners atomic.Int64
		var wg sync.WaitGroup
		for range 8 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				affected, err := f.repo.ConfirmRequest(context.Background(), f.pool, req.ID())
				assert.NoError(t, err)
				winners.Add(affected)
			}()
		}
		wg.Wait()

		assert.Equal(t, int64(1), winners.Load())
	})

	t.Run("confirming the chosen option rejects nothing else by itself", func(t *testing.T) {
		f := newScheduleDBFixture(t)
		req, options := f.seedPendingRequest(t, f.candidateID, f.now.Add(2*time.Hour), f.now.Add(4*time.Hour))
		ctx := context.Background()

		affected, err := f.repo.ConfirmOption(ctx, f.pool, req.ID(), options[0].ID())
		require.NoError(t, err)
		assert.Equal(t, int64(1), affected)

		require.NoError(t, f.repo.RejectOptions(ctx, f.pool, req.ID(), ptr(options[0].ID())))

		assert.Equal(t, "confirmed", f.optionStatus(t, options[0].ID()))
		assert.Equal(t, "rejected", f.optionStatus(t, options[1].ID()))
	})
}

func TestScheduleRepository_ExpirePendingByCandidate(t *testing.T) {
	t.Run("supersession expires the pending request and frees its options", func(t *testing.T) {
		f := newScheduleDBFixture(t)
		req, options := f.seedPendingRequest(t, f.candidateID, f.now.Add(2*time.Hour))
		ctx := context.Background()

		affected, err := f.repo.ExpirePendingByCandidate(ctx, f.pool, f.candidateID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), affected)

		status, _ := f.requestStatus(t, req.ID())
		assert.Equal(t, "expired", status)
		assert.Equal(t, "rejected", f.optionStatus(t, options[0].ID()))
	})

	t.Run("a confirmed request is not touched", func(t *testing.T) {
		f := newScheduleDBFixture(t)
		req, _ := f.seedPendingRequest(t, f.candidateID, f.now.Add(2*time.Hour))
		ctx := context.Background()

		_, err := f.repo.ConfirmRequest(ctx, f.pool, req.ID())
		require.NoError(t, err)

		affected, err := f.repo.ExpirePendingByCandidate(ctx, f.pool, f.candidateID)
		require.NoError(t, err)
		assert.Equal(t, int64(0), affected)

		status, _ := f.requestStatus(t, req.ID())
		assert.Equal(t, "confirmed", status)
	})

	t.Run("other candidates keep their pending requests", func(t *testing.T) {
		f := newScheduleDBFixture(t)
		otherCandidate := dbtest.CreateTestCandidate(t, f.pool, f.stageID, f.recruiterID)
		mine, _ := f.seedPendingRequest(t, f.candidateID, f.now.Add(2*time.Hour))
		theirs, _ := f.seedPendingRequest(t, otherCandidate, f.now.Add(3*time.Hour))

		_, err := f.repo.ExpirePendingByCandidate(context.Background(), f.pool, f.candidateID)
		require.NoError(t, err)

		status, _ := f.requestStatus(t, mine.ID())
		assert.Equal(t, "expired", status)
		status, _ = f.requestStatus(t, theirs.ID())
		assert.Equal(t, "pending", status)
	})
}

func TestScheduleRepository_CreateRequest(t *testing.T) {
	t.Run("a second pending request for the candidate is a duplicate key", func(t *testing.T) {
		f := newScheduleDBFixture(t)
		f.seedPendingRequest(t, f.candidateID, f.now.Add(2*time.Hour))

		duration, err := schedule.NewDuration(60)
		require.NoError(t, err)
		second := schedule.NewRequest(f.candidateID, f.stageID, nil, f.window(t), duration, f.recruiterID, f.now)

		err = f.repo.CreateRequest(context.Background(), f.pool, second)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
	})

	t.Run("a pending request is allowed once the previous one expired", func(t *testing.T) {
		f := newScheduleDBFixture(t)
		f.seedPendingRequest(t, f.candidateID, f.now.Add(2*time.Hour))
		ctx := context.Background()

		_, err := f.repo.ExpirePendingByCandidate(ctx, f.pool, f.candidateID)
		require.NoError(t, err)

		duration, err := schedule.NewDuration(60)
		require.NoError(t, err)
		second := schedule.NewRequest(f.candidateID, f.stageID, []uuid.UUID{f.interviewer}, f.window(t), duration, f.recruiterID, f.now)
		require.NoError(t, f.repo.CreateRequest(ctx, f.pool, second))
	})
}

func TestCommandReads_BookedIntervals(t *testing.T) {
	t.Run("offered and confirmed options block the interviewer", func(t *testing.T) {
		f := newScheduleDBFixture(t)
		slot := f.now.Add(2 * time.Hour)
		f.seedPendingRequest(t, f.candidateID, slot)

		intervals, err := f.reads.BookedIntervals(context.Background(), []uuid.UUID{f.interviewer}, f.window(t))
		require.NoError(t, err)
		require.Len(t, intervals, 1)
		assert.True(t, intervals[0].Start.Equal(slot))
		assert.True(t, intervals[0].End.Equal(slot.Add(time.Hour)))
	})

	t.Run("rejected options free the slot", func(t *testing.T) {
		f := newScheduleDBFixture(t)
		req, _ := f.seedPendingRequest(t, f.candidateID, f.now.Add(2*time.Hour))
		ctx := context.Background()

		require.NoError(t, f.repo.RejectOptions(ctx, f.pool, req.ID(), nil))

		intervals, err := f.reads.BookedIntervals(ctx, []uuid.UUID{f.interviewer}, f.window(t))
		require.NoError(t, err)
		assert.Empty(t, intervals)
	})

	t.Run("windows that only touch the slot boundary do not overlap", func(t *testing.T) {
		f := newScheduleDBFixture(t)
		slot := f.now.Add(2 * time.Hour)
		f.seedPendingRequest(t, f.candidateID, slot)

		after, err := schedule.NewWindow(slot.Add(time.Hour), slot.Add(3*time.Hour))
		require.NoError(t, err)

		intervals, err := f.reads.BookedIntervals(context.Background(), []uuid.UUID{f.interviewer}, after)
		require.NoError(t, err)
		assert.Empty(t, intervals)
	})

	t.Run("an empty interviewer set reads nothing", func(t *testing.T) {
		f := newScheduleDBFixture(t)
		f.seedPendingRequest(t, f.candidateID, f.now.Add(2*time.Hour))

		intervals, err := f.reads.BookedIntervals(context.Background(), nil, f.window(t))
		require.NoError(t, err)
		assert.Empty(t, intervals)
	})
}

func ptr[T any](v T) *T {
	return &v
}
