package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"salon-reservas/internal/jobs"
	"salon-reservas/internal/pkg/config"
	"salon-reservas/internal/scheduler"

	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Provide(
		jobs.NewRunner,
		NewScheduler,
	),
	fx.Invoke(startScheduler),
)

func NewScheduler(cfg config.Config, runner *jobs.Runner, location *time.Location, logger *slog.Logger) *scheduler.Scheduler {
	return scheduler.New(cfg.Scheduler, runner, location, logger)
}

func startScheduler(lc fx.Lifecycle, cfg config.Config, s *scheduler.Scheduler) {
	if !cfg.Scheduler.Enabled {
		return
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			s.Start()
			return nil
		},
		OnStop: func(_ context.Context) error {
			s.Stop()
			return nil
		},
	})
}
