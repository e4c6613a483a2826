package bootstrap

import (
	"time"

	"hireflow/internal/pkg/config"
	"hireflow/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config) *jwt.Service {
	sessionDuration, err := time.ParseDuration(cfg.JWT.SessionDuration)
	if err != nil {
		panic("invalid JWT_SESSION_DURATION: " + err.Error())
	}

	publicLinkDuration, err := time.ParseDuration(cfg.JWT.PublicLinkDuration)
	if err != nil {
		panic("invalid JWT_PUBLIC_LINK_DURATION: " + err.Error())
	}

	return jwt.NewService(cfg.JWT.Secret, sessionDuration, publicLinkDuration)
}
