//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"hireflow/internal/domain/schedule"
	"hireflow/internal/domain/timeline"
	dto "hireflow/internal/handler/dto/request"
	"hireflow/internal/infra"
	"hireflow/internal/infra/calendar"
	"hireflow/internal/infra/db"
	"hireflow/internal/pkg/clock"
	"hireflow/internal/pkg/errs"
	"hireflow/internal/pkg/jwt"
	"hireflow/internal/usecase/commands"
	"hireflow/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// In-memory unit of work. The write side is driven entirely through the
// shared interfaces, so fakes recording calls are enough to pin down the
// transaction scripts without a database.
// ---------------------------------------------------------------------------

type fakeReads struct {
	candidates map[uuid.UUID]*shared.CandidateSnapshot
	stages     map[uuid.UUID]*shared.StageSnapshot
	requests   map[uuid.UUID]*shared.ScheduleRequestSnapshot
	options    map[uuid.UUID]*shared.ScheduleOptionSnapshot
	booked     []schedule.Interval
}

func newFakeReads() *fakeReads {
	return &fakeReads{
		candidates: map[uuid.UUID]*shared.CandidateSnapshot{},
		stages:     map[uuid.UUID]*shared.StageSnapshot{},
		requests:   map[uuid.UUID]*shared.ScheduleRequestSnapshot{},
		options:    map[uuid.UUID]*shared.ScheduleOptionSnapshot{},
	}
}

func notFound() error {
	return infra.WrapRepoErr("no rows", nil, infra.KindNotFound)
}

func (f *fakeReads) CandidateByID(_ context.Context, id uuid.UUID) (*shared.CandidateSnapshot, error) {
	if c, ok := f.candidates[id]; ok {
		return c, nil
	}
	return nil, notFound()
}

func (f *fakeReads) StageByID(_ context.Context, id uuid.UUID) (*shared.StageSnapshot, error) {
	if s, ok := f.stages[id]; ok {
		return s, nil
	}
	return nil, notFound()
}

func (f *fakeReads) JobByID(_ context.Context, _ uuid.UUID) (*shared.JobSnapshot, error) {
	return nil, notFound()
}

func (f *fakeReads) JDRequestByID(_ context.Context, _ uuid.UUID) (*shared.JDRequestSnapshot, error) {
	return nil, notFound()
}

func (f *fakeReads) OfferByID(_ context.Context, _ uuid.UUID) (*shared.OfferSnapshot, error) {
	return nil, notFound()
}

func (f *fakeReads) UserByEmail(_ context.Context, _ string) (*shared.UserSnapshot, error) {
	return nil, notFound()
}

func (f *fakeReads) UserByID(_ context.Context, _ uuid.UUID) (*shared.UserSnapshot, error) {
	return nil, notFound()
}

func (f *fakeReads) ScheduleRequestByID(_ context.Context, id uuid.UUID) (*shared.ScheduleRequestSnapshot, error) {
	if r, ok := f.requests[id]; ok {
		return r, nil
	}
	return nil, notFound()
}

func (f *fakeReads) ScheduleOptionByID(_ context.Context, id uuid.UUID) (*shared.ScheduleOptionSnapshot, error) {
	if o, ok := f.options[id]; ok {
		return o, nil
	}
	return nil, notFound()
}

func (f *fakeReads) BookedIntervals(_ context.Context, _ []uuid.UUID, _ schedule.Window) ([]schedule.Interval, error) {
	return f.booked, nil
}

type rejectCall struct {
	requestID uuid.UUID
	except    *uuid.UUID
}

type fakeScheduleRepo struct {
	expiredCandidates []uuid.UUID
	createdRequests   []*schedule.Request
	insertedOptions   [][]*schedule.Option
	rejectCalls       []rejectCall

	createErr              error
	confirmRequestAffected int64
	confirmOptionAffected  int64
	cancelAffected         int64
}

func (f *fakeScheduleRepo) CreateRequest(_ context.Context, _ db.DBTX, req *schedule.Request) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.createdRequests = append(f.createdRequests, req)
	return nil
}

func (f *fakeScheduleRepo) ExpirePendingByCandidate(_ context.Context, _ db.DBTX, candidateID uuid.UUID) (int64, error) {
	f.expiredCandidates = append(f.expiredCandidates, candidateID)
	return 0, nil
}

func (f *fakeScheduleRepo) InsertOptions(_ context.Context, _ db.DBTX, options []*schedule.Option) error {
	f.insertedOptions = append(f.insertedOptions, options)
	return nil
}

func (f *fakeScheduleRepo) ConfirmRequest(_ context.Context, _ db.DBTX, _ uuid.UUID) (int64, error) {
	return f.confirmRequestAffected, nil
}

func (f *fakeScheduleRepo) CancelRequest(_ context.Context, _ db.DBTX, _ uuid.UUID) (int64, error) {
	return f.cancelAffected, nil
}

func (f *fakeScheduleRepo) ConfirmOption(_ context.Context, _ db.DBTX, _, _ uuid.UUID) (int64, error) {
	return f.confirmOptionAffected, nil
}

func (f *fakeScheduleRepo) RejectOptions(_ context.Context, _ db.DBTX, requestID uuid.UUID, except *uuid.UUID) error {
	f.rejectCalls = append(f.rejectCalls, rejectCall{requestID: requestID, except: except})
	return nil
}

type fakeTimelineRepo struct {
	events []*timeline.Event
}

func (f *fakeTimelineRepo) Append(_ context.Context, _ db.DBTX, ev *timeline.Event) error {
	f.events = append(f.events, ev)
	return nil
}

type fakeTx struct {
	schedules *fakeScheduleRepo
	timeline  *fakeTimelineRepo
	reads     *fakeReads
}

func (f *fakeTx) Schedules() shared.ScheduleRepository   { return f.schedules }
func (f *fakeTx) Candidates() shared.CandidateRepository { panic("not used") }
func (f *fakeTx) Jobs() shared.JobRepository             { panic("not used") }
func (f *fakeTx) Pipelines() shared.PipelineRepository   { panic("not used") }
func (f *fakeTx) Offers() shared.OfferRepository         { panic("not used") }
func (f *fakeTx) Timeline() shared.TimelineRepository    { return f.timeline }
func (f *fakeTx) Users() shared.UserRepository           { panic("not used") }
func (f *fakeTx) Reads() shared.CommandReads             { return f.reads }
func (f *fakeTx) DB() db.DBTX                            { return nil }

type fakeUoW struct {
	tx *fakeTx
}

func (f *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, f.tx)
}

func (f *fakeUoW) WithDB(_ context.Context, _ func(ctx context.Context, dbtx db.DBTX) error) error {
	panic("not used")
}

func (f *fakeUoW) CommandReads() shared.CommandReads {
	return f.tx.reads
}

type stubCalendar struct {
	intervals []schedule.Interval
	err       error
	calls     int
}

func (s *stubCalendar) BusyIntervals(_ context.Context, _ uuid.UUID, _ schedule.Window) ([]schedule.Interval, error) {
	s.calls++
	return s.intervals, s.err
}

var _ calendar.Gateway = (*stubCalendar)(nil)

// ---------------------------------------------------------------------------

type scheduleFixture struct {
	uow       *fakeUoW
	reads     *fakeReads
	schedules *fakeScheduleRepo
	timeline  *fakeTimelineRepo
	cal       *stubCalendar
	jwtSvc    *jwt.Service
	svc       commands.ScheduleCommands
	now       time.Time
}

func newScheduleFixture(t *testing.T) *scheduleFixture {
	t.Helper()

	reads := newFakeReads()
	schedules := &fakeScheduleRepo{
		confirmRequestAffected: 1,
		confirmOptionAffected:  1,
		cancelAffected:         1,
	}
	tl := &fakeTimelineRepo{}
	uow := &fakeUoW{tx: &fakeTx{schedules: schedules, timeline: tl, reads: reads}}
	cal := &stubCalendar{}
	jwtSvc := jwt.NewService("test-secret", time.Hour, time.Hour)
	resolver := schedule.NewResolver(schedule.BusinessHours{StartHour: 9, EndHour: 17, Location: time.UTC})
	// 2026-02-02 is a Monday.
	now := time.Date(2026, 2, 2, 8, 0, 0, 0, time.UTC)

	return &scheduleFixture{
		uow:       uow,
		reads:     reads,
		schedules: schedules,
		timeline:  tl,
		cal:       cal,
		jwtSvc:    jwtSvc,
		svc:       commands.NewScheduleCommands(uow, cal, resolver, jwtSvc, 5, clock.NewMockClock(now)),
		now:       now,
	}
}

func (f *scheduleFixture) seedCandidateAndStage() (candidateID, stageID uuid.UUID) {
	candidateID = uuid.New()
	stageID = uuid.New()
	f.reads.candidates[candidateID] = &shared.CandidateSnapshot{ID: candidateID, Name: "Jordan Lee"}
	f.reads.stages[stageID] = &shared.StageSnapshot{ID: stageID, Name: "Technical Interview"}
	return candidateID, stageID
}

func (f *scheduleFixture) createRequest(candidateID, stageID uuid.UUID) dto.CreateScheduleRequest {
	return dto.CreateScheduleRequest{
		CandidateID:     candidateID,
		StageID:         stageID,
		InterviewerIDs:  []uuid.UUID{uuid.New()},
		WindowStart:     f.now,
		WindowEnd:       f.now.AddDate(0, 0, 5),
		DurationMinutes: 60,
	}
}

func TestScheduleCommands_Create(t *testing.T) {
	recruiterID := uuid.New()

	t.Run("offers capped option batch and supersedes older pending requests", func(t *testing.T) {
		f := newScheduleFixture(t)
		candidateID, stageID := f.seedCandidateAndStage()

		result, err := f.svc.Create(context.Background(), f.createRequest(candidateID, stageID), recruiterID)
		require.NoError(t, err)
		require.NotNil(t, result)

		assert.Equal(t, 5, result.OptionCount)
		assert.Equal(t, []uuid.UUID{candidateID}, f.schedules.expiredCandidates)
		require.Len(t, f.schedules.createdRequests, 1)
		require.Len(t, f.schedules.insertedOptions, 1)
		assert.Len(t, f.schedules.insertedOptions[0], 5)

		created := f.schedules.createdRequests[0]
		assert.Equal(t, result.RequestID, created.ID())
		assert.Equal(t, schedule.StatusPending, created.Status())

		// The public link token resolves back to this candidate and request.
		claims, err := f.jwtSvc.ValidatePublicLinkToken(result.PublicLinkToken)
		require.NoError(t, err)
		assert.Equal(t, candidateID, claims.CandidateID)
		assert.Equal(t, result.RequestID, claims.ScheduleRequestID)

		require.Len(t, f.timeline.events, 1)
		assert.Equal(t, timeline.EventScheduleCreated, f.timeline.events[0].Type())
	})

	t.Run("zero availability keeps the request and reports it", func(t *testing.T) {
		f := newScheduleFixture(t)
		candidateID, stageID := f.seedCandidateAndStage()
		f.cal.intervals = []schedule.Interval{{Start: f.now, End: f.now.AddDate(0, 0, 5)}}

		result, err := f.svc.Create(context.Background(), f.createRequest(candidateID, stageID), recruiterID)
		require.ErrorIs(t, err, errs.ErrNoAvailability)
		require.NotNil(t, result)

		assert.Equal(t, 0, result.OptionCount)
		assert.NotEqual(t, uuid.Nil, result.RequestID)
		// The request row was still written; widening the window later reuses
		// nothing but the audit trail stays intact.
		require.Len(t, f.schedules.createdRequests, 1)
		require.Len(t, f.schedules.insertedOptions, 1)
		assert.Empty(t, f.schedules.insertedOptions[0])
	})

	t.Run("empty interviewer set resolves business hours only", func(t *testing.T) {
		f := newScheduleFixture(t)
		candidateID, stageID := f.seedCandidateAndStage()
		req := f.createRequest(candidateID, stageID)
		req.InterviewerIDs = nil

		result, err := f.svc.Create(context.Background(), req, recruiterID)
		require.NoError(t, err)
		require.NotNil(t, result)

		assert.Equal(t, 5, result.OptionCount)
		assert.Zero(t, f.cal.calls)
	})

	t.Run("concurrent create loses to the pending-request index", func(t *testing.T) {
		f := newScheduleFixture(t)
		candidateID, stageID := f.seedCandidateAndStage()
		dup := &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}
		f.schedules.createErr = infra.WrapRepoErr("failed to create schedule request", dup)

		_, err := f.svc.Create(context.Background(), f.createRequest(candidateID, stageID), recruiterID)
		require.ErrorIs(t, err, errs.ErrPendingScheduleExists)
	})

	t.Run("already booked options block re-resolution", func(t *testing.T) {
		f := newScheduleFixture(t)
		candidateID, stageID := f.seedCandidateAndStage()
		f.reads.booked = []schedule.Interval{{Start: f.now, End: f.now.AddDate(0, 0, 5)}}

		_, err := f.svc.Create(context.Background(), f.createRequest(candidateID, stageID), recruiterID)
		require.ErrorIs(t, err, errs.ErrNoAvailability)
	})

	t.Run("unknown candidate", func(t *testing.T) {
		f := newScheduleFixture(t)
		_, stageID := f.seedCandidateAndStage()

		_, err := f.svc.Create(context.Background(), f.createRequest(uuid.New(), stageID), recruiterID)
		require.ErrorIs(t, err, errs.ErrCandidateNotFound)
		assert.Empty(t, f.schedules.createdRequests)
	})

	t.Run("unknown stage", func(t *testing.T) {
		f := newScheduleFixture(t)
		candidateID, _ := f.seedCandidateAndStage()

		_, err := f.svc.Create(context.Background(), f.createRequest(candidateID, uuid.New()), recruiterID)
		require.ErrorIs(t, err, errs.ErrStageNotFound)
	})

	t.Run("inverted window", func(t *testing.T) {
		f := newScheduleFixture(t)
		candidateID, stageID := f.seedCandidateAndStage()
		req := f.createRequest(candidateID, stageID)
		req.WindowStart, req.WindowEnd = req.WindowEnd, req.WindowStart

		_, err := f.svc.Create(context.Background(), req, recruiterID)
		require.ErrorIs(t, err, errs.ErrInvalidWindow)
	})

	t.Run("off-step duration", func(t *testing.T) {
		f := newScheduleFixture(t)
		candidateID, stageID := f.seedCandidateAndStage()
		req := f.createRequest(candidateID, stageID)
		req.DurationMinutes = 45

		_, err := f.svc.Create(context.Background(), req, recruiterID)
		require.ErrorIs(t, err, errs.ErrInvalidDuration)
	})
}

func TestScheduleCommands_Confirm(t *testing.T) {
	seedPending := func(f *scheduleFixture) (requestID, candidateID, optionID, recruiterID uuid.UUID) {
		requestID = uuid.New()
		candidateID = uuid.New()
		optionID = uuid.New()
		recruiterID = uuid.New()
		f.reads.requests[requestID] = &shared.ScheduleRequestSnapshot{
			ID:                requestID,
			CandidateID:       candidateID,
			Status:            schedule.StatusPending.String(),
			CandidateResponse: schedule.ResponsePending.String(),
			CreatedBy:         recruiterID,
		}
		f.reads.options[optionID] = &shared.ScheduleOptionSnapshot{
			ID:        optionID,
			RequestID: requestID,
			Status:    schedule.OptionOffered.String(),
		}
		return requestID, candidateID, optionID, recruiterID
	}

	t.Run("confirms the chosen option and rejects siblings", func(t *testing.T) {
		f := newScheduleFixture(t)
		requestID, candidateID, optionID, recruiterID := seedPending(f)

		pref := "mornings suit me best"
		err := f.svc.Confirm(context.Background(), requestID, candidateID, optionID, &pref)
		require.NoError(t, err)

		require.Len(t, f.schedules.rejectCalls, 1)
		assert.Equal(t, requestID, f.schedules.rejectCalls[0].requestID)
		require.NotNil(t, f.schedules.rejectCalls[0].except)
		assert.Equal(t, optionID, *f.schedules.rejectCalls[0].except)

		// Candidates are not users; the event is attributed to the recruiter
		// who issued the request.
		require.Len(t, f.timeline.events, 1)
		ev := f.timeline.events[0]
		assert.Equal(t, timeline.EventScheduleConfirmed, ev.Type())
		assert.Equal(t, recruiterID, ev.CreatedBy())
		assert.Contains(t, ev.Content(), pref)
	})

	t.Run("losing the race reports already confirmed", func(t *testing.T) {
		f := newScheduleFixture(t)
		requestID, candidateID, optionID, _ := seedPending(f)

		// The CAS finds zero pending rows; the re-read shows the winner.
		f.schedules.confirmRequestAffected = 0
		f.reads.requests[requestID].Status = schedule.StatusConfirmed.String()

		err := f.svc.Confirm(context.Background(), requestID, candidateID, optionID, nil)
		require.ErrorIs(t, err, errs.ErrAlreadyConfirmed)
		assert.Empty(t, f.timeline.events)
	})

	t.Run("cancelled request is no longer confirmable", func(t *testing.T) {
		f := newScheduleFixture(t)
		requestID, candidateID, optionID, _ := seedPending(f)

		f.schedules.confirmRequestAffected = 0
		f.reads.requests[requestID].Status = schedule.StatusCancelled.String()

		err := f.svc.Confirm(context.Background(), requestID, candidateID, optionID, nil)
		require.ErrorIs(t, err, errs.ErrInvalidScheduleState)
	})

	t.Run("token for another candidate never resolves the request", func(t *testing.T) {
		f := newScheduleFixture(t)
		requestID, _, optionID, _ := seedPending(f)

		err := f.svc.Confirm(context.Background(), requestID, uuid.New(), optionID, nil)
		require.ErrorIs(t, err, errs.ErrScheduleRequestNotFound)
	})

	t.Run("option from a different request is rejected", func(t *testing.T) {
		f := newScheduleFixture(t)
		requestID, candidateID, _, _ := seedPending(f)

		foreignOption := uuid.New()
		f.reads.options[foreignOption] = &shared.ScheduleOptionSnapshot{
			ID:        foreignOption,
			RequestID: uuid.New(),
			Status:    schedule.OptionOffered.String(),
		}

		err := f.svc.Confirm(context.Background(), requestID, candidateID, foreignOption, nil)
		require.ErrorIs(t, err, errs.ErrScheduleOptionNotFound)
	})

	t.Run("unknown option", func(t *testing.T) {
		f := newScheduleFixture(t)
		requestID, candidateID, _, _ := seedPending(f)

		err := f.svc.Confirm(context.Background(), requestID, candidateID, uuid.New(), nil)
		require.ErrorIs(t, err, errs.ErrScheduleOptionNotFound)
	})
}

func TestScheduleCommands_Cancel(t *testing.T) {
	seedPending := func(f *scheduleFixture) (requestID uuid.UUID) {
		requestID = uuid.New()
		f.reads.requests[requestID] = &shared.ScheduleRequestSnapshot{
			ID:                requestID,
			CandidateID:       uuid.New(),
			Status:            schedule.StatusPending.String(),
			CandidateResponse: schedule.ResponsePending.String(),
			CreatedBy:         uuid.New(),
		}
		return requestID
	}

	t.Run("cancels a pending request and rejects every option", func(t *testing.T) {
		f := newScheduleFixture(t)
		requestID := seedPending(f)

		err := f.svc.Cancel(context.Background(), requestID, uuid.New())
		require.NoError(t, err)

		require.Len(t, f.schedules.rejectCalls, 1)
		assert.Nil(t, f.schedules.rejectCalls[0].except)
		require.Len(t, f.timeline.events, 1)
		assert.Equal(t, timeline.EventScheduleCancelled, f.timeline.events[0].Type())
	})

	t.Run("confirmed request cannot be cancelled", func(t *testing.T) {
		f := newScheduleFixture(t)
		requestID := seedPending(f)

		f.schedules.cancelAffected = 0
		f.reads.requests[requestID].Status = schedule.StatusConfirmed.String()

		err := f.svc.Cancel(context.Background(), requestID, uuid.New())
		require.ErrorIs(t, err, errs.ErrAlreadyConfirmed)
	})

	t.Run("unknown request", func(t *testing.T) {
		f := newScheduleFixture(t)
		err := f.svc.Cancel(context.Background(), uuid.New(), uuid.New())
		require.ErrorIs(t, err, errs.ErrScheduleRequestNotFound)
	})
}

// Interface compliance pins for the fakes.
var (
	_ shared.UnitOfWork   = (*fakeUoW)(nil)
	_ shared.Tx           = (*fakeTx)(nil)
	_ shared.CommandReads = (*fakeReads)(nil)
)
