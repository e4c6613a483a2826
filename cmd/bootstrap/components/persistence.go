package components

import (
	"hireflow/internal/infra/db"
	"hireflow/internal/infra/readstore"
	"hireflow/internal/infra/uow"
	"hireflow/internal/usecase/queries"
	"hireflow/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
		// Command-side lookups outside a transaction (auth middleware, dev
		// bypass resolution).
		fx.Annotate(
			readstore.NewCommandReads,
			fx.As(new(shared.CommandReads)),
		),
		fx.Annotate(
			readstore.NewScheduleReadStore,
			fx.As(new(queries.ScheduleViewRepo)),
		),
		fx.Annotate(
			readstore.NewCandidateReadStore,
			fx.As(new(queries.CandidateViewRepo)),
		),
		fx.Annotate(
			readstore.NewJobReadStore,
			fx.As(new(queries.JobViewRepo)),
		),
		fx.Annotate(
			readstore.NewPipelineReadStore,
			fx.As(new(queries.PipelineViewRepo)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.TeamViewRepo)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
