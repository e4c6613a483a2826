package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Schema is applied idempotently at startup. The unique partial index on
// schedule_requests backs the one-pending-request-per-candidate invariant at
// the storage layer; application code still expires the older request
// explicitly so the supersession is visible in the row history.
const schema = `
CREATE TABLE IF NOT EXISTS users (
    id            UUID PRIMARY KEY,
    email         TEXT NOT NULL UNIQUE,
    name          TEXT NOT NULL,
    password_hash TEXT NOT NULL,
    role          TEXT NOT NULL,
    created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
    last_login_at TIMESTAMPTZ
);

CREATE TABLE IF NOT EXISTS processes (
    id         UUID PRIMARY KEY,
    name       TEXT NOT NULL,
    created_by UUID NOT NULL REFERENCES users(id),
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS stages (
    id         UUID PRIMARY KEY,
    process_id UUID NOT NULL REFERENCES processes(id) ON DELETE CASCADE,
    name       TEXT NOT NULL,
    sort_order INT  NOT NULL
);

CREATE TABLE IF NOT EXISTS candidates (
    id         UUID PRIMARY KEY,
    name       TEXT NOT NULL,
    email      TEXT NOT NULL,
    phone      TEXT,
    stage_id   UUID REFERENCES stages(id),
    created_by UUID NOT NULL REFERENCES users(id),
    created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS jobs (
    id          UUID PRIMARY KEY,
    title       TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    status      TEXT NOT NULL,
    created_by  UUID NOT NULL REFERENCES users(id),
    created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS jd_requests (
    id           UUID PRIMARY KEY,
    position     TEXT NOT NULL,
    requirement  TEXT NOT NULL DEFAULT '',
    status       TEXT NOT NULL,
    requested_by UUID NOT NULL REFERENCES users(id),
    created_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS offers (
    id           UUID PRIMARY KEY,
    candidate_id UUID NOT NULL REFERENCES candidates(id),
    job_id       UUID NOT NULL REFERENCES jobs(id),
    content      TEXT NOT NULL DEFAULT '',
    status       TEXT NOT NULL,
    created_by   UUID NOT NULL REFERENCES users(id),
    created_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS schedule_requests (
    id                 UUID PRIMARY KEY,
    candidate_id       UUID NOT NULL REFERENCES candidates(id),
    stage_id           UUID NOT NULL REFERENCES stages(id),
    window_start       TIMESTAMPTZ NOT NULL,
    window_end         TIMESTAMPTZ NOT NULL,
    duration_minutes   INT  NOT NULL,
    status             TEXT NOT NULL,
    candidate_response TEXT NOT NULL,
    created_by         UUID NOT NULL REFERENCES users(id),
    created_at         TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at         TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE UNIQUE INDEX IF NOT EXISTS schedule_requests_one_pending
    ON schedule_requests (candidate_id)
    WHERE status = 'pending' AND candidate_response = 'pending';

CREATE TABLE IF NOT EXISTS schedule_request_interviewers (
    schedule_request_id UUID NOT NULL REFERENCES schedule_requests(id) ON DELETE CASCADE,
    interviewer_id      UUID NOT NULL REFERENCES users(id),
    PRIMARY KEY (schedule_request_id, interviewer_id)
);

CREATE TABLE IF NOT EXISTS schedule_options (
    id                  UUID PRIMARY KEY,
    schedule_request_id UUID NOT NULL REFERENCES schedule_requests(id) ON DELETE CASCADE,
    scheduled_at        TIMESTAMPTZ NOT NULL,
    status              TEXT NOT NULL,
    created_at          TIMESTAMPTZ NOT NULL DEFAULT now(),
    UNIQUE (schedule_request_id, scheduled_at)
);

CREATE INDEX IF NOT EXISTS schedule_options_active
    ON schedule_options (scheduled_at)
    WHERE status IN ('offered', 'confirmed');

CREATE TABLE IF NOT EXISTS timeline_events (
    id           UUID PRIMARY KEY,
    candidate_id UUID NOT NULL REFERENCES candidates(id),
    type         TEXT NOT NULL,
    content      TEXT NOT NULL DEFAULT '',
    created_by   UUID NOT NULL REFERENCES users(id),
    created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS timeline_events_candidate
    ON timeline_events (candidate_id, created_at DESC);
`

func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}
