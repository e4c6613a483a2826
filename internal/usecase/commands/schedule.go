package commands

import (
	"context"
	"fmt"
	"log/slog"

	"hireflow/internal/domain/schedule"
	"hireflow/internal/domain/timeline"
	reqdto "hireflow/internal/handler/dto/request"
	"hireflow/internal/infra"
	"hireflow/internal/infra/calendar"
	"hireflow/internal/pkg/clock"
	"hireflow/internal/pkg/errs"
	"hireflow/internal/pkg/jwt"
	"hireflow/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateScheduleResult struct {
	RequestID       uuid.UUID
	OptionCount     int
	PublicLinkToken string
}

type ScheduleCommands interface {
	// Create resolves availability, persists the request with its offered
	// option batch, and supersedes any older pending request of the same
	// candidate. Zero resolvable slots returns ErrNoAvailability with the
	// request kept option-less.
	Create(ctx context.Context, req reqdto.CreateScheduleRequest, createdBy uuid.UUID) (*CreateScheduleResult, error)
	Cancel(ctx context.Context, requestID, cancelledBy uuid.UUID) error
	// Confirm is the candidate-side selection. The storage-level
	// compare-and-swap decides races: the loser observes zero updated rows
	// and gets ErrAlreadyConfirmed.
	Confirm(ctx context.Context, requestID, candidateID, optionID uuid.UUID, preference *string) error
}

type scheduleCommandsImpl struct {
	uow        shared.UnitOfWork
	calendar   calendar.Gateway
	resolver   *schedule.Resolver
	jwtService *jwt.Service
	maxOptions int
	clock      clock.Clock
}

func NewScheduleCommands(
	uow shared.UnitOfWork,
	cal calendar.Gateway,
	resolver *schedule.Resolver,
	jwtService *jwt.Service,
	maxOptions int,
	clk clock.Clock,
) ScheduleCommands {
	return &scheduleCommandsImpl{
		uow:        uow,
		calendar:   cal,
		resolver:   resolver,
		jwtService: jwtService,
		maxOptions: maxOptions,
		clock:      clk,
	}
}

func (s *scheduleCommandsImpl) Create(ctx context.Context, req reqdto.CreateScheduleRequest, createdBy uuid.UUID) (*CreateScheduleResult, error) {
	window, err := req.Window()
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidWindow)
	}
	duration, err := req.Duration()
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidDuration)
	}

	reads := s.uow.CommandReads()
	if _, err := reads.CandidateByID(ctx, req.CandidateID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrCandidateNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if _, err := reads.StageByID(ctx, req.StageID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrStageNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	// Calendar lookups stay outside the transaction; they hit the network and
	// must not hold a connection while they do.
	var busy []schedule.Interval
	for _, interviewerID := range req.InterviewerIDs {
		intervals, err := s.calendar.BusyIntervals(ctx, interviewerID, window)
		if err != nil {
			return nil, errs.Wrap(err, "calendar lookup failed")
		}
		busy = append(busy, intervals...)
	}

	now := s.clock.Now()
	request := schedule.NewRequest(req.CandidateID, req.StageID, req.InterviewerIDs, window, duration, createdBy, now)

	var optionCount int
	err = s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Schedules().ExpirePendingByCandidate(ctx, tx.DB(), req.CandidateID); err != nil {
			return err
		}

		// At ReadCommitted this only sees committed bookings; two concurrent
		// creates are arbitrated by the unique partial index on pending
		// requests, not by this read.
		booked, err := tx.Reads().BookedIntervals(ctx, req.InterviewerIDs, window)
		if err != nil {
			return err
		}

		slots := s.resolver.Resolve(window, duration, append(busy, booked...))
		options := schedule.NewOptions(request.ID(), slots, s.maxOptions, now)
		optionCount = len(options)

		if err := tx.Schedules().CreateRequest(ctx, tx.DB(), request); err != nil {
			return err
		}
		if err := tx.Schedules().InsertOptions(ctx, tx.DB(), options); err != nil {
			return err
		}

		event := timeline.NewEvent(req.CandidateID, timeline.EventScheduleCreated,
			fmt.Sprintf("interview schedule requested with %d option(s)", optionCount), createdBy, now)
		return tx.Timeline().Append(ctx, tx.DB(), event)
	})
	if err != nil {
		// The unique partial index on pending requests decides concurrent
		// creates; the loser's insert collides after its expire saw nothing.
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, errs.ErrPendingScheduleExists)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	token, err := s.jwtService.GeneratePublicLinkToken(req.CandidateID, request.ID())
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate schedule link token")
	}

	result := &CreateScheduleResult{
		RequestID:       request.ID(),
		OptionCount:     optionCount,
		PublicLinkToken: token,
	}
	if optionCount == 0 {
		return result, errs.ErrNoAvailability
	}
	return result, nil
}

func (s *scheduleCommandsImpl) Cancel(ctx context.Context, requestID, cancelledBy uuid.UUID) error {
	now := s.clock.Now()

	return s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().ScheduleRequestByID(ctx, requestID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrScheduleRequestNotFound)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		affected, err := tx.Schedules().CancelRequest(ctx, tx.DB(), requestID)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if affected == 0 {
			if snap.Status == schedule.StatusConfirmed.String() {
				return errs.ErrAlreadyConfirmed
			}
			return errs.ErrInvalidScheduleState
		}

		if err := tx.Schedules().RejectOptions(ctx, tx.DB(), requestID, nil); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		event := timeline.NewEvent(snap.CandidateID, timeline.EventScheduleCancelled,
			"interview schedule request cancelled", cancelledBy, now)
		return tx.Timeline().Append(ctx, tx.DB(), event)
	})
}

func (s *scheduleCommandsImpl) Confirm(ctx context.Context, requestID, candidateID, optionID uuid.UUID, preference *string) error {
	now := s.clock.Now()

	var snap *shared.ScheduleRequestSnapshot
	err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		snap, err = tx.Reads().ScheduleRequestByID(ctx, requestID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrScheduleRequestNotFound)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		// A token for one candidate never unlocks another candidate's request.
		if snap.CandidateID != candidateID {
			return errs.ErrScheduleRequestNotFound
		}

		option, err := tx.Reads().ScheduleOptionByID(ctx, optionID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrScheduleOptionNotFound)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if option.RequestID != requestID {
			return errs.ErrScheduleOptionNotFound
		}

		affected, err := tx.Schedules().ConfirmRequest(ctx, tx.DB(), requestID)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if affected == 0 {
			// Lost the race or the request left pending/pending some other
			// way. Distinguish the stale-link case for the caller.
			current, err := tx.Reads().ScheduleRequestByID(ctx, requestID)
			if err == nil && current.Status == schedule.StatusConfirmed.String() {
				return errs.ErrAlreadyConfirmed
			}
			return errs.ErrInvalidScheduleState
		}

		optAffected, err := tx.Schedules().ConfirmOption(ctx, tx.DB(), requestID, optionID)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if optAffected == 0 {
			return errs.ErrInvalidScheduleState
		}

		return tx.Schedules().RejectOptions(ctx, tx.DB(), requestID, &optionID)
	})
	if err != nil {
		return err
	}

	// The confirmation already committed; a timeline failure must not undo it.
	content := "candidate confirmed interview slot"
	if preference != nil && *preference != "" {
		content = fmt.Sprintf("candidate confirmed interview slot (preference: %s)", *preference)
	}
	event := timeline.NewEvent(snap.CandidateID, timeline.EventScheduleConfirmed, content, snap.CreatedBy, now)
	appendErr := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Timeline().Append(ctx, tx.DB(), event)
	})
	if appendErr != nil {
		slog.Warn("failed to append confirmation timeline event",
			"request_id", requestID, "error", appendErr.Error())
	}

	return nil
}
