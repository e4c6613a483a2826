package commands

import (
	"context"
	"fmt"

	"hireflow/internal/domain/candidate"
	"hireflow/internal/domain/timeline"
	reqdto "hireflow/internal/handler/dto/request"
	"hireflow/internal/infra"
	"hireflow/internal/pkg/clock"
	"hireflow/internal/pkg/errs"
	"hireflow/internal/usecase/shared"

	"github.com/google/uuid"
)

type CandidateCommands interface {
	Create(ctx context.Context, req reqdto.CreateCandidateRequest, createdBy uuid.UUID) (uuid.UUID, error)
	MoveStage(ctx context.Context, candidateID, stageID, movedBy uuid.UUID) error
	AddNote(ctx context.Context, candidateID uuid.UUID, content string, addedBy uuid.UUID) error
	Delete(ctx context.Context, candidateID uuid.UUID) error
}

type candidateCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewCandidateCommands(uow shared.UnitOfWork, clk clock.Clock) CandidateCommands {
	return &candidateCommandsImpl{uow: uow, clock: clk}
}

func (c *candidateCommandsImpl) Create(ctx context.Context, req reqdto.CreateCandidateRequest, createdBy uuid.UUID) (uuid.UUID, error) {
	if req.StageID != nil {
		if _, err := c.uow.CommandReads().StageByID(ctx, *req.StageID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return uuid.Nil, errs.Mark(err, errs.ErrStageNotFound)
			}
			return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
	}

	entity, err := candidate.NewCandidate(req.Name, req.Email, req.Phone, req.StageID, createdBy, c.clock.Now())
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Candidates().Create(ctx, tx.DB(), entity)
	})
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return entity.ID(), nil
}

func (c *candidateCommandsImpl) MoveStage(ctx context.Context, candidateID, stageID, movedBy uuid.UUID) error {
	now := c.clock.Now()

	stage, err := c.uow.CommandReads().StageByID(ctx, stageID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrStageNotFound)
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Candidates().UpdateStage(ctx, tx.DB(), candidateID, stageID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrCandidateNotFound)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		event := timeline.NewEvent(candidateID, timeline.EventStageChanged,
			fmt.Sprintf("moved to stage %q", stage.Name), movedBy, now)
		return tx.Timeline().Append(ctx, tx.DB(), event)
	})
}

func (c *candidateCommandsImpl) AddNote(ctx context.Context, candidateID uuid.UUID, content string, addedBy uuid.UUID) error {
	now := c.clock.Now()

	if _, err := c.uow.CommandReads().CandidateByID(ctx, candidateID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrCandidateNotFound)
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		event := timeline.NewEvent(candidateID, timeline.EventNote, content, addedBy, now)
		return tx.Timeline().Append(ctx, tx.DB(), event)
	})
}

func (c *candidateCommandsImpl) Delete(ctx context.Context, candidateID uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Candidates().Delete(ctx, tx.DB(), candidateID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrCandidateNotFound)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
}
