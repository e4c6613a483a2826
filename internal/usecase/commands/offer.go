package commands

import (
	"context"

	"hireflow/internal/domain/offer"
	"hireflow/internal/domain/timeline"
	reqdto "hireflow/internal/handler/dto/request"
	"hireflow/internal/infra"
	"hireflow/internal/pkg/clock"
	"hireflow/internal/pkg/errs"
	"hireflow/internal/usecase/shared"

	"github.com/google/uuid"
)

type OfferCommands interface {
	Create(ctx context.Context, candidateID uuid.UUID, req reqdto.CreateOfferRequest, createdBy uuid.UUID) (uuid.UUID, error)
	// Send flips a draft offer to sent and records the delivery on the
	// candidate timeline. No email leaves the system.
	Send(ctx context.Context, offerID, sentBy uuid.UUID) error
}

type offerCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewOfferCommands(uow shared.UnitOfWork, clk clock.Clock) OfferCommands {
	return &offerCommandsImpl{uow: uow, clock: clk}
}

func (o *offerCommandsImpl) Create(ctx context.Context, candidateID uuid.UUID, req reqdto.CreateOfferRequest, createdBy uuid.UUID) (uuid.UUID, error) {
	reads := o.uow.CommandReads()
	if _, err := reads.CandidateByID(ctx, candidateID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return uuid.Nil, errs.Mark(err, errs.ErrCandidateNotFound)
		}
		return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if _, err := reads.JobByID(ctx, req.JobID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return uuid.Nil, errs.Mark(err, errs.ErrJobNotFound)
		}
		return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	entity := offer.NewOffer(candidateID, req.JobID, req.Content, createdBy, o.clock.Now())

	err := o.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Offers().Create(ctx, tx.DB(), entity)
	})
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return entity.ID(), nil
}

func (o *offerCommandsImpl) Send(ctx context.Context, offerID, sentBy uuid.UUID) error {
	now := o.clock.Now()

	return o.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().OfferByID(ctx, offerID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrOfferNotFound)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if snap.Status != string(offer.StatusDraft) {
			return errs.ErrOfferNotSendable
		}

		if err := tx.Offers().UpdateStatus(ctx, tx.DB(), offerID, offer.StatusSent); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		event := timeline.NewEvent(snap.CandidateID, timeline.EventOfferSent, "offer sent to candidate", sentBy, now)
		return tx.Timeline().Append(ctx, tx.DB(), event)
	})
}
