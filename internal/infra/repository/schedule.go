package repository

import (
	"context"

	"hireflow/internal/domain/schedule"
	"hireflow/internal/infra"
	"hireflow/internal/infra/db"

	"github.com/google/uuid"
)

type ScheduleRepository struct{}

func NewScheduleRepository() *ScheduleRepository {
	return &ScheduleRepository{}
}

func (r *ScheduleRepository) CreateRequest(ctx context.Context, dbtx db.DBTX, req *schedule.Request) error {
	const q = `INSERT INTO schedule_requests
	    (id, candidate_id, stage_id, window_start, window_end, duration_minutes,
	     status, candidate_response, created_by, created_at, updated_at)
	    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`

	_, err := dbtx.Exec(ctx, q,
		req.ID(), req.CandidateID(), req.StageID(),
		req.Window().Start(), req.Window().End(), req.Duration().Minutes(),
		req.Status().String(), req.CandidateResponse().String(),
		req.CreatedBy(), req.CreatedAt(), req.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create schedule request", err)
	}

	const iq = `INSERT INTO schedule_request_interviewers (schedule_request_id, interviewer_id) VALUES ($1,$2)`
	for _, interviewerID := range req.InterviewerIDs() {
		if _, err := dbtx.Exec(ctx, iq, req.ID(), interviewerID); err != nil {
			return infra.WrapRepoErr("failed to attach interviewer", err)
		}
	}

	return nil
}

func (r *ScheduleRepository) ExpirePendingByCandidate(ctx context.Context, dbtx db.DBTX, candidateID uuid.UUID) (int64, error) {
	const q = `UPDATE schedule_requests
	    SET status = 'expired', updated_at = now()
	    WHERE candidate_id = $1 AND status = 'pending' AND candidate_response = 'pending'`

	tag, err := dbtx.Exec(ctx, q, candidateID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to expire pending schedule requests", err)
	}

	// Superseded requests keep their options on file for audit, but they must
	// never surface as bookable again.
	const oq = `UPDATE schedule_options SET status = 'rejected'
	    WHERE status = 'offered' AND schedule_request_id IN (
	        SELECT id FROM schedule_requests
	        WHERE candidate_id = $1 AND status = 'expired')`
	if _, err := dbtx.Exec(ctx, oq, candidateID); err != nil {
		return 0, infra.WrapRepoErr("failed to reject options of expired requests", err)
	}

	return tag.RowsAffected(), nil
}

func (r *ScheduleRepository) InsertOptions(ctx context.Context, dbtx db.DBTX, options []*schedule.Option) error {
	const q = `INSERT INTO schedule_options (id, schedule_request_id, scheduled_at, status, created_at)
	    VALUES ($1,$2,$3,$4,$5)`

	// One logical batch: the surrounding transaction guarantees all-or-nothing,
	// so a request never reports success with a partial option set.
	for _, opt := range options {
		_, err := dbtx.Exec(ctx, q, opt.ID(), opt.RequestID(), opt.ScheduledAt(), opt.Status().String(), opt.CreatedAt())
		if err != nil {
			return infra.WrapRepoErr("failed to insert schedule option", err)
		}
	}

	return nil
}

func (r *ScheduleRepository) ConfirmRequest(ctx context.Context, dbtx db.DBTX, requestID uuid.UUID) (int64, error) {
	const q = `UPDATE schedule_requests
	    SET status = 'confirmed', candidate_response = 'responded', updated_at = now()
	    WHERE id = $1 AND status = 'pending' AND candidate_response = 'pending'`

	tag, err := dbtx.Exec(ctx, q, requestID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to confirm schedule request", err)
	}

	return tag.RowsAffected(), nil
}

func (r *ScheduleRepository) CancelRequest(ctx context.Context, dbtx db.DBTX, requestID uuid.UUID) (int64, error) {
	const q = `UPDATE schedule_requests
	    SET status = 'cancelled', updated_at = now()
	    WHERE id = $1 AND status = 'pending'`

	tag, err := dbtx.Exec(ctx, q, requestID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to cancel schedule request", err)
	}

	return tag.RowsAffected(), nil
}

func (r *ScheduleRepository) ConfirmOption(ctx context.Context, dbtx db.DBTX, requestID, optionID uuid.UUID) (int64, error) {
	const q = `UPDATE schedule_options
	    SET status = 'confirmed'
	    WHERE id = $1 AND schedule_request_id = $2 AND status = 'offered'`

	tag, err := dbtx.Exec(ctx, q, optionID, requestID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to confirm schedule option", err)
	}

	return tag.RowsAffected(), nil
}

func (r *ScheduleRepository) RejectOptions(ctx context.Context, dbtx db.DBTX, requestID uuid.UUID, except *uuid.UUID) error {
	var err error
	if except != nil {
		const q = `UPDATE schedule_options SET status = 'rejected'
		    WHERE schedule_request_id = $1 AND id <> $2 AND status = 'offered'`
		_, err = dbtx.Exec(ctx, q, requestID, *except)
	} else {
		const q = `UPDATE schedule_options SET status = 'rejected'
		    WHERE schedule_request_id = $1 AND status = 'offered'`
		_, err = dbtx.Exec(ctx, q, requestID)
	}

	if err != nil {
		return infra.WrapRepoErr("failed to reject sibling options", err)
	}

	return nil
}
