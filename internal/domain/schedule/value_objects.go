package schedule

import (
	"errors"
	"time"
)

const (
	MinDurationMinutes  = 30
	MaxDurationMinutes  = 180
	DurationStepMinutes = 30
)

var (
	ErrInvalidWindow   = errors.New("window start must be before window end")
	ErrInvalidDuration = errors.New("duration must be 30-180 minutes in 30-minute steps")
)

// Window is the date range a recruiter offers for an interview.
type Window struct {
	start time.Time
	end   time.Time
}

func NewWindow(start, end time.Time) (Window, error) {
	if !start.Before(end) {
		return Window{}, ErrInvalidWindow
	}
	return Window{start: start, end: end}, nil
}

func (w Window) Start() time.Time { return w.start }
func (w Window) End() time.Time   { return w.end }

func (w Window) Contains(start time.Time, d Duration) bool {
	end := start.Add(d.AsTimeDuration())
	return !start.Before(w.start) && !end.After(w.end)
}

// Duration is the requested interview slot length.
type Duration struct {
	minutes int
}

func NewDuration(minutes int) (Duration, error) {
	if minutes < MinDurationMinutes || minutes > MaxDurationMinutes || minutes%DurationStepMinutes != 0 {
		return Duration{}, ErrInvalidDuration
	}
	return Duration{minutes: minutes}, nil
}

func (d Duration) Minutes() int { return d.minutes }

func (d Duration) AsTimeDuration() time.Duration {
	return time.Duration(d.minutes) * time.Minute
}

// Interval is a half-open [start, end) span of time on an interviewer's
// calendar, either externally busy or already claimed by another option.
type Interval struct {
	Start time.Time
	End   time.Time
}

func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start.Before(other.End) && other.Start.Before(iv.End)
}
