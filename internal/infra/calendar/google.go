package calendar

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"hireflow/internal/domain/schedule"
	"hireflow/internal/pkg/config"
	"hireflow/internal/pkg/errs"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// Gateway reads interviewer busy intervals from an external calendar. The
// scheduler never writes to the calendar; creating the actual meeting is a
// separate concern.
type Gateway interface {
	BusyIntervals(ctx context.Context, interviewerID uuid.UUID, window schedule.Window) ([]schedule.Interval, error)
}

type GoogleCalendar struct {
	svc        *gcal.Service
	calendarID string
}

// NewGoogleCalendar builds a gateway over the shared recruiting calendar
// account. Token exchange is out of scope; the oauth2 token arrives
// pre-issued via configuration.
func NewGoogleCalendar(ctx context.Context, cfg config.CalendarConfig) (*GoogleCalendar, error) {
	var token oauth2.Token
	if err := json.Unmarshal([]byte(cfg.Token), &token); err != nil {
		return nil, errs.Wrap(err, "invalid calendar oauth token")
	}

	client := oauth2.NewClient(ctx, oauth2.StaticTokenSource(&token))
	svc, err := gcal.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, errs.Wrap(err, "failed to create calendar service")
	}

	return &GoogleCalendar{
		svc:        svc,
		calendarID: cfg.CalendarID,
	}, nil
}

func (g *GoogleCalendar) BusyIntervals(ctx context.Context, _ uuid.UUID, window schedule.Window) ([]schedule.Interval, error) {
	req := &gcal.FreeBusyRequest{
		TimeMin: window.Start().Format(time.RFC3339),
		TimeMax: window.End().Format(time.RFC3339),
		Items:   []*gcal.FreeBusyRequestItem{{Id: g.calendarID}},
	}

	resp, err := g.svc.Freebusy.Query(req).Context(ctx).Do()
	if err != nil {
		return nil, errs.Wrap(err, "freebusy query failed")
	}

	var intervals []schedule.Interval
	for _, cal := range resp.Calendars {
		for _, period := range cal.Busy {
			start, startErr := time.Parse(time.RFC3339, period.Start)
			end, endErr := time.Parse(time.RFC3339, period.End)
			if startErr != nil || endErr != nil {
				continue
			}
			intervals = append(intervals, schedule.Interval{Start: start, End: end})
		}
	}

	return intervals, nil
}

// Noop is used when no calendar account is configured: interviewers carry no
// external commitments and only already-offered options constrain resolution.
type Noop struct{}

func NewNoop() *Noop {
	return &Noop{}
}

func (*Noop) BusyIntervals(_ context.Context, _ uuid.UUID, _ schedule.Window) ([]schedule.Interval, error) {
	return nil, nil
}

// FailSafe degrades a calendar failure to "interviewer fully busy" for the
// queried window instead of failing slot generation outright.
type FailSafe struct {
	inner  Gateway
	logger *slog.Logger
}

func NewFailSafe(inner Gateway, logger *slog.Logger) *FailSafe {
	return &FailSafe{inner: inner, logger: logger}
}

func (f *FailSafe) BusyIntervals(ctx context.Context, interviewerID uuid.UUID, window schedule.Window) ([]schedule.Interval, error) {
	intervals, err := f.inner.BusyIntervals(ctx, interviewerID, window)
	if err != nil {
		f.logger.Warn("calendar lookup failed, treating interviewer as fully busy",
			"interviewer_id", interviewerID, "error", err.Error())
		return []schedule.Interval{{Start: window.Start(), End: window.End()}}, nil
	}
	return intervals, nil
}
