package commands

import (
	"context"

	"hireflow/internal/domain/pipeline"
	reqdto "hireflow/internal/handler/dto/request"
	"hireflow/internal/pkg/clock"
	"hireflow/internal/pkg/errs"
	"hireflow/internal/usecase/shared"

	"github.com/google/uuid"
)

type PipelineCommands interface {
	CreateProcess(ctx context.Context, req reqdto.CreateProcessRequest, createdBy uuid.UUID) (uuid.UUID, error)
}

type pipelineCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewPipelineCommands(uow shared.UnitOfWork, clk clock.Clock) PipelineCommands {
	return &pipelineCommandsImpl{uow: uow, clock: clk}
}

func (p *pipelineCommandsImpl) CreateProcess(ctx context.Context, req reqdto.CreateProcessRequest, createdBy uuid.UUID) (uuid.UUID, error) {
	entity, err := pipeline.NewProcess(req.Name, req.Stages, createdBy, p.clock.Now())
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	err = p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Pipelines().CreateProcess(ctx, tx.DB(), entity)
	})
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return entity.ID(), nil
}
