package bootstrap

import (
	"time"

	"salon-reservas/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		NewBusinessLocation,
	),
)

// NewBusinessLocation resolves the venue's timezone once so every
// component that reasons about "today" shares it.
func NewBusinessLocation(cfg config.Config) (*time.Location, error) {
	return time.LoadLocation(cfg.Business.TimeZone)
}
