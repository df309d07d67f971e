package bootstrap

import (
	"clinic-agenda/internal/pkg/config"
	"clinic-agenda/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

func NewJWTService(cfg config.Config) *jwt.Service {
	return jwt.NewService(cfg.Jobs.OperatorSecret, cfg.Jobs.OperatorTokenTTL)
}
