package readstore

import (
	"context"
	"time"

	"hireflow/internal/domain/schedule"
	"hireflow/internal/infra"
	"hireflow/internal/infra/db"
	"hireflow/internal/pkg/pgconv"
	"hireflow/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// CommandReads serves the write side. It runs against whatever DBTX it is
// bound to, so the same code reads through an open transaction or the pool.
type CommandReads struct {
	db db.DBTX
}

func NewCommandReads(dbtx db.DBTX) *CommandReads {
	return &CommandReads{db: dbtx}
}

func (r *CommandReads) CandidateByID(ctx context.Context, id uuid.UUID) (*shared.CandidateSnapshot, error) {
	const q = `SELECT id, name, email, stage_id FROM candidates WHERE id = $1`

	var snap shared.CandidateSnapshot
	var stageID pgtype.UUID
	err := r.db.QueryRow(ctx, q, id).Scan(&snap.ID, &snap.Name, &snap.Email, &stageID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("candidate not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find candidate", err)
	}
	snap.StageID = pgconv.UUIDPtrFromPgtype(stageID)

	return &snap, nil
}

func (r *CommandReads) StageByID(ctx context.Context, id uuid.UUID) (*shared.StageSnapshot, error) {
	const q = `SELECT id, process_id, name, sort_order FROM stages WHERE id = $1`

	var snap shared.StageSnapshot
	err := r.db.QueryRow(ctx, q, id).Scan(&snap.ID, &snap.ProcessID, &snap.Name, &snap.SortOrder)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("stage not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find stage", err)
	}

	return &snap, nil
}

func (r *CommandReads) JobByID(ctx context.Context, id uuid.UUID) (*shared.JobSnapshot, error) {
	const q = `SELECT id, title, status FROM jobs WHERE id = $1`

	var snap shared.JobSnapshot
	err := r.db.QueryRow(ctx, q, id).Scan(&snap.ID, &snap.Title, &snap.Status)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("job not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find job", err)
	}

	return &snap, nil
}

func (r *CommandReads) JDRequestByID(ctx context.Context, id uuid.UUID) (*shared.JDRequestSnapshot, error) {
	const q = `SELECT id, status FROM jd_requests WHERE id = $1`

	var snap shared.JDRequestSnapshot
	err := r.db.QueryRow(ctx, q, id).Scan(&snap.ID, &snap.Status)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("jd request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find jd request", err)
	}

	return &snap, nil
}

func (r *CommandReads) OfferByID(ctx context.Context, id uuid.UUID) (*shared.OfferSnapshot, error) {
	const q = `SELECT id, candidate_id, job_id, content, status FROM offers WHERE id = $1`

	var snap shared.OfferSnapshot
	err := r.db.QueryRow(ctx, q, id).Scan(&snap.ID, &snap.CandidateID, &snap.JobID, &snap.Content, &snap.Status)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("offer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find offer", err)
	}

	return &snap, nil
}

func (r *CommandReads) UserByEmail(ctx context.Context, email string) (*shared.UserSnapshot, error) {
	const q = `SELECT id, email, name, password_hash, role FROM users WHERE email = $1`

	var snap shared.UserSnapshot
	err := r.db.QueryRow(ctx, q, email).Scan(&snap.ID, &snap.Email, &snap.Name, &snap.PasswordHash, &snap.Role)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user", err)
	}

	return &snap, nil
}

func (r *CommandReads) UserByID(ctx context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	const q = `SELECT id, email, name, password_hash, role FROM users WHERE id = $1`

	var snap shared.UserSnapshot
	err := r.db.QueryRow(ctx, q, id).Scan(&snap.ID, &snap.Email, &snap.Name, &snap.PasswordHash, &snap.Role)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user", err)
	}

	return &snap, nil
}

func (r *CommandReads) ScheduleRequestByID(ctx context.Context, id uuid.UUID) (*shared.ScheduleRequestSnapshot, error) {
	const q = `SELECT id, candidate_id, stage_id, window_start, window_end, duration_minutes, status, candidate_response, created_by
	    FROM schedule_requests WHERE id = $1`

	var snap shared.ScheduleRequestSnapshot
	err := r.db.QueryRow(ctx, q, id).Scan(
		&snap.ID, &snap.CandidateID, &snap.StageID,
		&snap.WindowStart, &snap.WindowEnd, &snap.DurationMinutes,
		&snap.Status, &snap.CandidateResponse, &snap.CreatedBy)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("schedule request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find schedule request", err)
	}

	ids, err := r.interviewerIDs(ctx, id)
	if err != nil {
		return nil, err
	}
	snap.InterviewerIDs = ids

	return &snap, nil
}

func (r *CommandReads) interviewerIDs(ctx context.Context, requestID uuid.UUID) ([]uuid.UUID, error) {
	const q = `SELECT interviewer_id FROM schedule_request_interviewers
	    WHERE schedule_request_id = $1 ORDER BY interviewer_id`

	rows, err := r.db.Query(ctx, q, requestID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find request interviewers", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, infra.WrapRepoErr("failed to scan interviewer id", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read request interviewers", err)
	}

	return ids, nil
}

func (r *CommandReads) ScheduleOptionByID(ctx context.Context, id uuid.UUID) (*shared.ScheduleOptionSnapshot, error) {
	const q = `SELECT id, schedule_request_id, scheduled_at, status FROM schedule_options WHERE id = $1`

	var snap shared.ScheduleOptionSnapshot
	err := r.db.QueryRow(ctx, q, id).Scan(&snap.ID, &snap.RequestID, &snap.ScheduledAt, &snap.Status)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("schedule option not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find schedule option", err)
	}

	return &snap, nil
}

func (r *CommandReads) BookedIntervals(ctx context.Context, interviewerIDs []uuid.UUID, window schedule.Window) ([]schedule.Interval, error) {
	if len(interviewerIDs) == 0 {
		return nil, nil
	}

	// Rejected options do not count as booked. Expired requests keep their
	// rejected options, so a superseded slot frees up immediately.
	const q = `SELECT DISTINCT o.scheduled_at, sr.duration_minutes
	    FROM schedule_options o
	    JOIN schedule_requests sr ON sr.id = o.schedule_request_id
	    JOIN schedule_request_interviewers ri ON ri.schedule_request_id = sr.id
	    WHERE ri.interviewer_id = ANY($1)
	      AND o.status IN ('offered', 'confirmed')
	      AND o.scheduled_at < $3
	      AND o.scheduled_at + make_interval(mins => sr.duration_minutes) > $2
	    ORDER BY o.scheduled_at`

	rows, err := r.db.Query(ctx, q, interviewerIDs, window.Start(), window.End())
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find booked intervals", err)
	}
	defer rows.Close()

	var intervals []schedule.Interval
	for rows.Next() {
		var start time.Time
		var minutes int
		if err := rows.Scan(&start, &minutes); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booked interval", err)
		}
		intervals = append(intervals, schedule.Interval{
			Start: start,
			End:   start.Add(time.Duration(minutes) * time.Minute),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booked intervals", err)
	}

	return intervals, nil
}
