package bootstrap

import (
	"time"

	"hireflow/internal/domain/schedule"
	"hireflow/internal/pkg/config"

	"go.uber.org/fx"
)

var SchedulingModule = fx.Module("scheduling",
	fx.Provide(
		NewResolver,
	),
)

func NewResolver(cfg config.Config) (*schedule.Resolver, error) {
	loc, err := time.LoadLocation(cfg.Scheduling.TimeZone)
	if err != nil {
		return nil, err
	}

	return schedule.NewResolver(schedule.BusinessHours{
		StartHour: cfg.Scheduling.DayStartHour,
		EndHour:   cfg.Scheduling.DayEndHour,
		Location:  loc,
	}), nil
}
