package commands

import (
	"context"

	"hireflow/internal/domain/job"
	reqdto "hireflow/internal/handler/dto/request"
	"hireflow/internal/infra"
	"hireflow/internal/pkg/clock"
	"hireflow/internal/pkg/errs"
	"hireflow/internal/usecase/shared"

	"github.com/google/uuid"
)

type JobCommands interface {
	Create(ctx context.Context, req reqdto.CreateJobRequest, createdBy uuid.UUID) (uuid.UUID, error)
	UpdateStatus(ctx context.Context, jobID uuid.UUID, status string) error
	CreateJDRequest(ctx context.Context, req reqdto.CreateJDRequest, requestedBy uuid.UUID) (uuid.UUID, error)
	UpdateJDRequestStatus(ctx context.Context, id uuid.UUID, status string) error
}

type jobCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewJobCommands(uow shared.UnitOfWork, clk clock.Clock) JobCommands {
	return &jobCommandsImpl{uow: uow, clock: clk}
}

func (j *jobCommandsImpl) Create(ctx context.Context, req reqdto.CreateJobRequest, createdBy uuid.UUID) (uuid.UUID, error) {
	entity, err := job.NewJob(req.Title, req.Description, createdBy, j.clock.Now())
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	err = j.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Jobs().Create(ctx, tx.DB(), entity)
	})
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return entity.ID(), nil
}

func (j *jobCommandsImpl) UpdateStatus(ctx context.Context, jobID uuid.UUID, status string) error {
	next := job.Status(status)
	if !next.IsValid() {
		return errs.Mark(job.ErrInvalidStatus, errs.ErrDomainValidation)
	}

	return j.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Jobs().UpdateStatus(ctx, tx.DB(), jobID, next); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrJobNotFound)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (j *jobCommandsImpl) CreateJDRequest(ctx context.Context, req reqdto.CreateJDRequest, requestedBy uuid.UUID) (uuid.UUID, error) {
	entity, err := job.NewJDRequest(req.Position, req.Requirement, requestedBy, j.clock.Now())
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	err = j.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Jobs().CreateJDRequest(ctx, tx.DB(), entity)
	})
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return entity.ID(), nil
}

func (j *jobCommandsImpl) UpdateJDRequestStatus(ctx context.Context, id uuid.UUID, status string) error {
	next := job.JDRequestStatus(status)
	if !next.IsValid() {
		return errs.Mark(job.ErrInvalidJDRequestStatus, errs.ErrDomainValidation)
	}

	return j.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Jobs().UpdateJDRequestStatus(ctx, tx.DB(), id, next); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrJDRequestNotFound)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
}
