package bootstrap

import (
	"context"
	"log/slog"

	"hireflow/internal/infra/calendar"
	"hireflow/internal/pkg/config"

	"go.uber.org/fx"
)

var CalendarModule = fx.Module("calendar",
	fx.Provide(
		NewCalendarGateway,
	),
)

// NewCalendarGateway picks the gateway by configuration. Without a calendar
// token only already-offered options constrain slot resolution. A configured
// gateway is wrapped so calendar outages degrade to "fully busy" instead of
// failing schedule creation.
func NewCalendarGateway(cfg config.Config, logger *slog.Logger) (calendar.Gateway, error) {
	if cfg.Calendar.Token == "" {
		return calendar.NewNoop(), nil
	}

	gc, err := calendar.NewGoogleCalendar(context.Background(), cfg.Calendar)
	if err != nil {
		return nil, err
	}
	return calendar.NewFailSafe(gc, logger), nil
}
