package components

import (
	"hireflow/internal/handler"
	"hireflow/internal/handler/api"
	"hireflow/internal/handler/middleware"
	"hireflow/internal/pkg/config"
	"hireflow/internal/usecase"
	"hireflow/internal/usecase/shared"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewCandidateHandler,
		api.NewScheduleHandler,
		api.NewPublicScheduleHandler,
		api.NewJobHandler,
		api.NewPipelineHandler,
		api.NewOfferHandler,
		api.NewTeamHandler,
		NewAuthMiddleware,
		middleware.NewScheduleLinkMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator, cfg config.Config, reads shared.CommandReads) *middleware.AuthMiddleware {
	return middleware.NewAuthMiddleware(tokenValidator, cfg.Auth, reads)
}
