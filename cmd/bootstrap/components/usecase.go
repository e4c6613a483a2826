package components

import (
	"hireflow/internal/domain/schedule"
	"hireflow/internal/infra/calendar"
	"hireflow/internal/pkg/clock"
	"hireflow/internal/pkg/config"
	"hireflow/internal/pkg/jwt"
	"hireflow/internal/usecase"
	"hireflow/internal/usecase/commands"
	"hireflow/internal/usecase/queries"
	"hireflow/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		NewScheduleCommands,
		commands.NewCandidateCommands,
		commands.NewJobCommands,
		commands.NewPipelineCommands,
		commands.NewOfferCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewScheduleQueries,
		queries.NewCandidateQueries,
		queries.NewJobQueries,
		queries.NewPipelineQueries,
		queries.NewTeamQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
		usecase.NewScheduleLinkValidator,
	),
)

func NewScheduleCommands(
	uow shared.UnitOfWork,
	cal calendar.Gateway,
	resolver *schedule.Resolver,
	jwtService *jwt.Service,
	cfg config.Config,
	clk clock.Clock,
) commands.ScheduleCommands {
	return commands.NewScheduleCommands(uow, cal, resolver, jwtService, cfg.Scheduling.MaxOptions, clk)
}
