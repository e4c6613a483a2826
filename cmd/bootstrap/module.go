package bootstrap

import (
	"hireflow/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	CalendarModule,
	SchedulingModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
