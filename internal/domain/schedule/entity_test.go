//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"hireflow/internal/domain/schedule"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPendingRequest(t *testing.T, now time.Time) *schedule.Request {
	t.Helper()
	window := mustWindow(t, now, now.AddDate(0, 0, 7))
	return schedule.NewRequest(
		uuid.New(), uuid.New(), []uuid.UUID{uuid.New()},
		window, mustDuration(t, 60), uuid.New(), now,
	)
}

func TestRequest_Confirm(t *testing.T) {
	now := time.Date(2026, 2, 2, 9, 0, 0, 0, time.UTC)

	t.Run("pending request confirms", func(t *testing.T) {
		req := newPendingRequest(t, now)
		require.True(t, req.AwaitingCandidate())

		require.NoError(t, req.Confirm(now.Add(time.Hour)))
		assert.Equal(t, schedule.StatusConfirmed, req.Status())
		assert.Equal(t, schedule.ResponseResponded, req.CandidateResponse())
		assert.False(t, req.AwaitingCandidate())
	})

	t.Run("second confirmation reports already confirmed", func(t *testing.T) {
		req := newPendingRequest(t, now)
		require.NoError(t, req.Confirm(now))

		err := req.Confirm(now.Add(time.Minute))
		require.ErrorIs(t, err, schedule.ErrAlreadyConfirmed)
	})

	t.Run("cancelled request cannot confirm", func(t *testing.T) {
		req := newPendingRequest(t, now)
		require.NoError(t, req.Cancel(now))

		err := req.Confirm(now.Add(time.Minute))
		require.ErrorIs(t, err, schedule.ErrInvalidState)
	})

	t.Run("expired request cannot confirm", func(t *testing.T) {
		req := newPendingRequest(t, now)
		require.NoError(t, req.Expire(now))

		err := req.Confirm(now.Add(time.Minute))
		require.ErrorIs(t, err, schedule.ErrInvalidState)
	})
}

func TestRequest_Cancel(t *testing.T) {
	now := time.Date(2026, 2, 2, 9, 0, 0, 0, time.UTC)

	t.Run("pending request cancels", func(t *testing.T) {
		req := newPendingRequest(t, now)
		require.NoError(t, req.Cancel(now))
		assert.Equal(t, schedule.StatusCancelled, req.Status())
	})

	t.Run("confirmed request cannot cancel", func(t *testing.T) {
		req := newPendingRequest(t, now)
		require.NoError(t, req.Confirm(now))
		require.ErrorIs(t, req.Cancel(now), schedule.ErrInvalidState)
	})

	t.Run("cancel is not idempotent", func(t *testing.T) {
		req := newPendingRequest(t, now)
		require.NoError(t, req.Cancel(now))
		require.ErrorIs(t, req.Cancel(now), schedule.ErrInvalidState)
	})
}

func TestRequest_Expire(t *testing.T) {
	now := time.Date(2026, 2, 2, 9, 0, 0, 0, time.UTC)

	t.Run("pending request expires", func(t *testing.T) {
		req := newPendingRequest(t, now)
		require.NoError(t, req.Expire(now))
		assert.Equal(t, schedule.StatusExpired, req.Status())
	})

	t.Run("confirmed request never expires", func(t *testing.T) {
		req := newPendingRequest(t, now)
		require.NoError(t, req.Confirm(now))
		require.ErrorIs(t, req.Expire(now), schedule.ErrInvalidState)
	})
}

func TestNewOptions(t *testing.T) {
	now := time.Date(2026, 2, 2, 9, 0, 0, 0, time.UTC)
	requestID := uuid.New()

	t.Run("caps the batch at max keeping the earliest slots", func(t *testing.T) {
		slots := make([]time.Time, 8)
		for i := range slots {
			slots[i] = now.Add(time.Duration(i) * time.Hour)
		}

		options := schedule.NewOptions(requestID, slots, 5, now)
		require.Len(t, options, 5)
		for i, opt := range options {
			assert.True(t, opt.ScheduledAt().Equal(slots[i]))
			assert.Equal(t, schedule.OptionOffered, opt.Status())
			assert.Equal(t, requestID, opt.RequestID())
		}
	})

	t.Run("fewer slots than max are kept as-is", func(t *testing.T) {
		options := schedule.NewOptions(requestID, []time.Time{now, now.Add(time.Hour)}, 5, now)
		assert.Len(t, options, 2)
	})

	t.Run("empty slots yield an empty batch", func(t *testing.T) {
		options := schedule.NewOptions(requestID, nil, 5, now)
		assert.Empty(t, options)
	})

	t.Run("non-positive max means unlimited", func(t *testing.T) {
		slots := []time.Time{now, now.Add(time.Hour), now.Add(2 * time.Hour)}
		options := schedule.NewOptions(requestID, slots, 0, now)
		assert.Len(t, options, 3)
	})
}
