package shared

import (
	"context"

	"hireflow/internal/domain/candidate"
	"hireflow/internal/domain/job"
	"hireflow/internal/domain/offer"
	"hireflow/internal/domain/pipeline"
	"hireflow/internal/domain/schedule"
	"hireflow/internal/domain/timeline"
	"hireflow/internal/domain/user"
	"hireflow/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Schedules() ScheduleRepository
	Candidates() CandidateRepository
	Jobs() JobRepository
	Pipelines() PipelineRepository
	Offers() OfferRepository
	Timeline() TimelineRepository
	Users() UserRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	CandidateByID(ctx context.Context, id uuid.UUID) (*CandidateSnapshot, error)
	StageByID(ctx context.Context, id uuid.UUID) (*StageSnapshot, error)
	JobByID(ctx context.Context, id uuid.UUID) (*JobSnapshot, error)
	JDRequestByID(ctx context.Context, id uuid.UUID) (*JDRequestSnapshot, error)
	OfferByID(ctx context.Context, id uuid.UUID) (*OfferSnapshot, error)
	UserByEmail(ctx context.Context, email string) (*UserSnapshot, error)
	UserByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
	ScheduleRequestByID(ctx context.Context, id uuid.UUID) (*ScheduleRequestSnapshot, error)
	ScheduleOptionByID(ctx context.Context, id uuid.UUID) (*ScheduleOptionSnapshot, error)
	// BookedIntervals returns the [scheduledAt, scheduledAt+duration) spans of
	// every offered or confirmed option whose request shares an interviewer
	// with the given set and overlaps the window. Rejected options are never
	// included, so they can never block (or be re-resolved as) availability.
	BookedIntervals(ctx context.Context, interviewerIDs []uuid.UUID, window schedule.Window) ([]schedule.Interval, error)
}

type ScheduleRepository interface {
	CreateRequest(ctx context.Context, dbtx db.DBTX, req *schedule.Request) error
	// ExpirePendingByCandidate supersedes any still-pending request for the
	// candidate; returns the number of requests expired.
	ExpirePendingByCandidate(ctx context.Context, dbtx db.DBTX, candidateID uuid.UUID) (int64, error)
	InsertOptions(ctx context.Context, dbtx db.DBTX, options []*schedule.Option) error
	// ConfirmRequest is the compare-and-swap guarding the confirmation race:
	// zero affected rows means the request was not in pending/pending state.
	ConfirmRequest(ctx context.Context, dbtx db.DBTX, requestID uuid.UUID) (int64, error)
	CancelRequest(ctx context.Context, dbtx db.DBTX, requestID uuid.UUID) (int64, error)
	ConfirmOption(ctx context.Context, dbtx db.DBTX, requestID, optionID uuid.UUID) (int64, error)
	// RejectOptions flips every still-offered option of the request to
	// rejected, except the one given (nil rejects all).
	RejectOptions(ctx context.Context, dbtx db.DBTX, requestID uuid.UUID, except *uuid.UUID) error
}

type CandidateRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, c *candidate.Candidate) error
	UpdateStage(ctx context.Context, dbtx db.DBTX, candidateID, stageID uuid.UUID) error
	Delete(ctx context.Context, dbtx db.DBTX, candidateID uuid.UUID) error
}

type JobRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, j *job.Job) error
	UpdateStatus(ctx context.Context, dbtx db.DBTX, jobID uuid.UUID, status job.Status) error
	CreateJDRequest(ctx context.Context, dbtx db.DBTX, r *job.JDRequest) error
	UpdateJDRequestStatus(ctx context.Context, dbtx db.DBTX, id uuid.UUID, status job.JDRequestStatus) error
}

type PipelineRepository interface {
	CreateProcess(ctx context.Context, dbtx db.DBTX, p *pipeline.Process) error
}

type OfferRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, o *offer.Offer) error
	UpdateStatus(ctx context.Context, dbtx db.DBTX, offerID uuid.UUID, status offer.Status) error
}

type TimelineRepository interface {
	Append(ctx context.Context, dbtx db.DBTX, ev *timeline.Event) error
}

type UserRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, u *user.User) error
	UpdateLastLogin(ctx context.Context, dbtx db.DBTX, userID uuid.UUID) error
}
