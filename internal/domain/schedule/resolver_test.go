//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"hireflow/internal/domain/schedule"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustWindow(t *testing.T, start, end time.Time) schedule.Window {
	t.Helper()
	w, err := schedule.NewWindow(start, end)
	require.NoError(t, err)
	return w
}

func mustDuration(t *testing.T, minutes int) schedule.Duration {
	t.Helper()
	d, err := schedule.NewDuration(minutes)
	require.NoError(t, err)
	return d
}

func TestResolver_Resolve(t *testing.T) {
	resolver := schedule.NewResolver(schedule.BusinessHours{
		StartHour: 9,
		EndHour:   17,
		Location:  time.UTC,
	})

	// 2026-02-02 is a Monday.
	monday := time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC)

	t.Run("fills a free business day with duration-aligned slots", func(t *testing.T) {
		window := mustWindow(t, monday, monday.AddDate(0, 0, 1))
		slots := resolver.Resolve(window, mustDuration(t, 60), nil)

		expected := make([]time.Time, 0, 8)
		for h := 9; h < 17; h++ {
			expected = append(expected, monday.Add(time.Duration(h)*time.Hour))
		}
		if diff := cmp.Diff(expected, slots); diff != "" {
			t.Errorf("slots mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("skips weekends entirely", func(t *testing.T) {
		saturday := time.Date(2026, 2, 7, 0, 0, 0, 0, time.UTC)
		window := mustWindow(t, saturday, saturday.AddDate(0, 0, 2))
		slots := resolver.Resolve(window, mustDuration(t, 60), nil)
		assert.Empty(t, slots)
	})

	t.Run("drops slots overlapping busy intervals", func(t *testing.T) {
		window := mustWindow(t, monday, monday.AddDate(0, 0, 1))
		busy := []schedule.Interval{
			{Start: monday.Add(10 * time.Hour), End: monday.Add(12 * time.Hour)},
		}
		slots := resolver.Resolve(window, mustDuration(t, 60), busy)

		for _, slot := range slots {
			assert.False(t, slot.Equal(monday.Add(10*time.Hour)), "10:00 overlaps busy")
			assert.False(t, slot.Equal(monday.Add(11*time.Hour)), "11:00 overlaps busy")
		}
		assert.Len(t, slots, 6)
	})

	t.Run("partial overlap blocks the slot", func(t *testing.T) {
		window := mustWindow(t, monday, monday.AddDate(0, 0, 1))
		// Busy from 09:30 to 10:30 kills both the 09:00 and 10:00 hour slots.
		busy := []schedule.Interval{
			{Start: monday.Add(9*time.Hour + 30*time.Minute), End: monday.Add(10*time.Hour + 30*time.Minute)},
		}
		slots := resolver.Resolve(window, mustDuration(t, 60), busy)

		require.NotEmpty(t, slots)
		assert.True(t, slots[0].Equal(monday.Add(11*time.Hour)))
	})

	t.Run("a fully busy window yields no slots", func(t *testing.T) {
		window := mustWindow(t, monday, monday.AddDate(0, 0, 1))
		busy := []schedule.Interval{{Start: monday, End: monday.AddDate(0, 0, 1)}}
		slots := resolver.Resolve(window, mustDuration(t, 60), busy)
		assert.Empty(t, slots)
	})

	t.Run("90 minute slots step by 90 minutes and stay inside hours", func(t *testing.T) {
		window := mustWindow(t, monday, monday.AddDate(0, 0, 1))
		slots := resolver.Resolve(window, mustDuration(t, 90), nil)

		// 09:00, 10:30, 12:00, 13:30, 15:00; 16:30+90m would spill past 17:00.
		require.Len(t, slots, 5)
		assert.True(t, slots[0].Equal(monday.Add(9*time.Hour)))
		assert.True(t, slots[4].Equal(monday.Add(15*time.Hour)))
	})

	t.Run("slots outside the window bounds are excluded", func(t *testing.T) {
		// Window opens mid-morning; the 09:00 and 10:00 slots fall before it.
		window := mustWindow(t, monday.Add(10*time.Hour+30*time.Minute), monday.AddDate(0, 0, 1))
		slots := resolver.Resolve(window, mustDuration(t, 60), nil)

		require.NotEmpty(t, slots)
		assert.True(t, slots[0].Equal(monday.Add(11*time.Hour)))
	})

	t.Run("output is deterministic regardless of busy interval order", func(t *testing.T) {
		window := mustWindow(t, monday, monday.AddDate(0, 0, 5))
		busyA := []schedule.Interval{
			{Start: monday.Add(9 * time.Hour), End: monday.Add(10 * time.Hour)},
			{Start: monday.Add(73 * time.Hour), End: monday.Add(75 * time.Hour)},
			{Start: monday.Add(34 * time.Hour), End: monday.Add(35 * time.Hour)},
		}
		busyB := []schedule.Interval{busyA[2], busyA[0], busyA[1]}

		first := resolver.Resolve(window, mustDuration(t, 60), busyA)
		second := resolver.Resolve(window, mustDuration(t, 60), busyB)

		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("resolver output depends on busy order (-first +second):\n%s", diff)
		}
	})
}

func TestWindow(t *testing.T) {
	now := time.Date(2026, 2, 2, 9, 0, 0, 0, time.UTC)

	t.Run("start must be before end", func(t *testing.T) {
		_, err := schedule.NewWindow(now, now)
		require.ErrorIs(t, err, schedule.ErrInvalidWindow)

		_, err = schedule.NewWindow(now.Add(time.Hour), now)
		require.ErrorIs(t, err, schedule.ErrInvalidWindow)
	})

	t.Run("contains checks both bounds", func(t *testing.T) {
		w := mustWindow(t, now, now.Add(4*time.Hour))
		d := mustDuration(t, 60)

		assert.True(t, w.Contains(now, d))
		assert.True(t, w.Contains(now.Add(3*time.Hour), d))
		assert.False(t, w.Contains(now.Add(3*time.Hour+30*time.Minute), d))
		assert.False(t, w.Contains(now.Add(-time.Minute), d))
	})
}

func TestDuration(t *testing.T) {
	cases := []struct {
		minutes int
		ok      bool
	}{
		{30, true},
		{60, true},
		{90, true},
		{180, true},
		{0, false},
		{15, false},
		{45, false},
		{210, false},
		{-30, false},
	}

	for _, c := range cases {
		d, err := schedule.NewDuration(c.minutes)
		if c.ok {
			require.NoError(t, err, "minutes=%d", c.minutes)
			assert.Equal(t, c.minutes, d.Minutes())
		} else {
			require.ErrorIs(t, err, schedule.ErrInvalidDuration, "minutes=%d", c.minutes)
		}
	}
}
