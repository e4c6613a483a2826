package schedule

import (
	"sort"
	"time"
)

// BusinessHours bounds slot generation to working time. Hours are interpreted
// in Location; only Monday through Friday produce slots.
type BusinessHours struct {
	StartHour int
	EndHour   int
	Location  *time.Location
}

func DefaultBusinessHours() BusinessHours {
	return BusinessHours{
		StartHour: 9,
		EndHour:   18,
		Location:  time.UTC,
	}
}

// Resolver computes candidate slot start-times for a window. Output depends
// only on its inputs: identical window, duration, and busy intervals yield an
// identical ascending sequence, so re-runs are idempotent and tests
// reproducible.
type Resolver struct {
	hours BusinessHours
}

func NewResolver(hours BusinessHours) *Resolver {
	if hours.Location == nil {
		hours.Location = time.UTC
	}
	return &Resolver{hours: hours}
}

// Resolve discretizes the window into duration-aligned buckets inside business
// hours and drops any bucket overlapping a busy interval. Busy intervals cover
// both external calendar commitments and slots already claimed by other
// offered or confirmed options for the same interviewer set. An empty result
// is not an error; the caller decides how to surface "no availability".
func (r *Resolver) Resolve(window Window, duration Duration, busy []Interval) []time.Time {
	step := duration.AsTimeDuration()

	// Sorting here keeps the overlap scan cheap and the output independent of
	// the order busy intervals were collected in.
	sorted := make([]Interval, len(busy))
	copy(sorted, busy)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start.Before(sorted[j].Start) })

	var slots []time.Time

	day := startOfDay(window.Start().In(r.hours.Location))
	lastDay := startOfDay(window.End().In(r.hours.Location))

	for !day.After(lastDay) {
		if isBusinessDay(day.Weekday()) {
			dayStart := day.Add(time.Duration(r.hours.StartHour) * time.Hour)
			dayEnd := day.Add(time.Duration(r.hours.EndHour) * time.Hour)

			for slot := dayStart; !slot.Add(step).After(dayEnd); slot = slot.Add(step) {
				if !window.Contains(slot, duration) {
					continue
				}
				if overlapsAny(Interval{Start: slot, End: slot.Add(step)}, sorted) {
					continue
				}
				slots = append(slots, slot)
			}
		}
		day = day.AddDate(0, 0, 1)
	}

	return slots
}

func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func isBusinessDay(d time.Weekday) bool {
	return d != time.Saturday && d != time.Sunday
}

func overlapsAny(slot Interval, sorted []Interval) bool {
	for _, iv := range sorted {
		if !iv.Start.Before(slot.End) {
			return false
		}
		if slot.Overlaps(iv) {
			return true
		}
	}
	return false
}
