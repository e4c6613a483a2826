//go:build unit

package calendar_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"hireflow/internal/domain/schedule"
	"hireflow/internal/infra/calendar"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type erroringGateway struct {
	err       error
	intervals []schedule.Interval
}

func (g *erroringGateway) BusyIntervals(_ context.Context, _ uuid.UUID, _ schedule.Window) ([]schedule.Interval, error) {
	return g.intervals, g.err
}

func TestFailSafe(t *testing.T) {
	start := time.Date(2026, 2, 2, 9, 0, 0, 0, time.UTC)
	window, err := schedule.NewWindow(start, start.Add(8*time.Hour))
	require.NoError(t, err)

	t.Run("passes successful lookups through", func(t *testing.T) {
		busy := []schedule.Interval{{Start: start, End: start.Add(time.Hour)}}
		fs := calendar.NewFailSafe(&erroringGateway{intervals: busy}, slog.Default())

		got, err := fs.BusyIntervals(context.Background(), uuid.New(), window)
		require.NoError(t, err)
		assert.Equal(t, busy, got)
	})

	t.Run("a failing lookup degrades to fully busy", func(t *testing.T) {
		fs := calendar.NewFailSafe(&erroringGateway{err: errors.New("upstream down")}, slog.Default())

		got, err := fs.BusyIntervals(context.Background(), uuid.New(), window)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.True(t, got[0].Start.Equal(window.Start()))
		assert.True(t, got[0].End.Equal(window.End()))
	})
}

func TestNoop(t *testing.T) {
	start := time.Date(2026, 2, 2, 9, 0, 0, 0, time.UTC)
	window, err := schedule.NewWindow(start, start.Add(time.Hour))
	require.NoError(t, err)

	got, err := calendar.NewNoop().BusyIntervals(context.Background(), uuid.New(), window)
	require.NoError(t, err)
	assert.Empty(t, got)
}
