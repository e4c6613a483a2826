package readstore

import (
	"context"

	"hireflow/internal/infra"
	"hireflow/internal/infra/db"
	"hireflow/internal/pkg/pgconv"
	"hireflow/internal/usecase/queries"

	"github.com/google/uuid"
)

type ScheduleReadStore struct {
	db db.DBTX
}

func NewScheduleReadStore(dbtx db.DBTX) *ScheduleReadStore {
	return &ScheduleReadStore{db: dbtx}
}

const scheduleRequestColumns = `sr.id, sr.candidate_id, c.name, sr.stage_id, s.name,
	    sr.window_start, sr.window_end, sr.duration_minutes, sr.status, sr.candidate_response,
	    sr.created_at, sr.updated_at`

func (r *ScheduleReadStore) FindRequestByID(ctx context.Context, id uuid.UUID) (*queries.ScheduleRequestView, error) {
	q := `SELECT ` + scheduleRequestColumns + `
	    FROM schedule_requests sr
	    JOIN candidates c ON c.id = sr.candidate_id
	    JOIN stages s ON s.id = sr.stage_id
	    WHERE sr.id = $1`

	view, err := r.scanRequest(ctx, q, id)
	if err != nil {
		return nil, err
	}
	if err := r.attachDetails(ctx, view); err != nil {
		return nil, err
	}

	return view, nil
}

func (r *ScheduleReadStore) FindRequestsByCandidate(ctx context.Context, candidateID uuid.UUID) ([]*queries.ScheduleRequestView, error) {
	q := `SELECT ` + scheduleRequestColumns + `
	    FROM schedule_requests sr
	    JOIN candidates c ON c.id = sr.candidate_id
	    JOIN stages s ON s.id = sr.stage_id
	    WHERE sr.candidate_id = $1
	    ORDER BY sr.created_at DESC`

	rows, err := r.db.Query(ctx, q, candidateID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find schedule requests", err)
	}
	defer rows.Close()

	var views []*queries.ScheduleRequestView
	for rows.Next() {
		var v queries.ScheduleRequestView
		if err := rows.Scan(
			&v.ID, &v.CandidateID, &v.CandidateName, &v.StageID, &v.StageName,
			&v.WindowStart, &v.WindowEnd, &v.DurationMinutes, &v.Status, &v.CandidateResponse,
			&v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan schedule request", err)
		}
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read schedule requests", err)
	}

	for _, v := range views {
		if err := r.attachDetails(ctx, v); err != nil {
			return nil, err
		}
	}

	return views, nil
}

func (r *ScheduleReadStore) scanRequest(ctx context.Context, q string, args ...any) (*queries.ScheduleRequestView, error) {
	var v queries.ScheduleRequestView
	err := r.db.QueryRow(ctx, q, args...).Scan(
		&v.ID, &v.CandidateID, &v.CandidateName, &v.StageID, &v.StageName,
		&v.WindowStart, &v.WindowEnd, &v.DurationMinutes, &v.Status, &v.CandidateResponse,
		&v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("schedule request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find schedule request", err)
	}
	return &v, nil
}

func (r *ScheduleReadStore) attachDetails(ctx context.Context, v *queries.ScheduleRequestView) error {
	const iq = `SELECT interviewer_id FROM schedule_request_interviewers
	    WHERE schedule_request_id = $1 ORDER BY interviewer_id`

	rows, err := r.db.Query(ctx, iq, v.ID)
	if err != nil {
		return infra.WrapRepoErr("failed to find request interviewers", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return infra.WrapRepoErr("failed to scan interviewer id", err)
		}
		v.InterviewerIDs = append(v.InterviewerIDs, id)
	}
	if err := rows.Err(); err != nil {
		return infra.WrapRepoErr("failed to read request interviewers", err)
	}

	const oq = `SELECT id, scheduled_at, status FROM schedule_options
	    WHERE schedule_request_id = $1 ORDER BY scheduled_at`

	orows, err := r.db.Query(ctx, oq, v.ID)
	if err != nil {
		return infra.WrapRepoErr("failed to find schedule options", err)
	}
	defer orows.Close()

	for orows.Next() {
		var o queries.ScheduleOptionView
		if err := orows.Scan(&o.ID, &o.ScheduledAt, &o.Status); err != nil {
			return infra.WrapRepoErr("failed to scan schedule option", err)
		}
		v.Options = append(v.Options, o)
	}
	if err := orows.Err(); err != nil {
		return infra.WrapRepoErr("failed to read schedule options", err)
	}

	return nil
}
