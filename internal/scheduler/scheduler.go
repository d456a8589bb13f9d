package scheduler

import (
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"salon-reservas/internal/jobs"
	"salon-reservas/internal/pkg/config"
)

// Scheduler runs the periodic business alerts on cron expressions
// taken from configuration.
type Scheduler struct {
	cron   *cron.Cron
	runner *jobs.Runner
	logger *slog.Logger
}

func New(cfg config.SchedulerConfig, runner *jobs.Runner, location *time.Location, logger *slog.Logger) *Scheduler {
	c := cron.New(cron.WithLocation(location))

	s := &Scheduler{
		cron:   c,
		runner: runner,
		logger: logger,
	}
	s.registerJobs(cfg)
	return s
}

func (s *Scheduler) registerJobs(cfg config.SchedulerConfig) {
	if _, err := s.cron.AddFunc(cfg.PendingDigest, s.runner.PendingDigest); err != nil {
		s.logger.Error("failed to register pending digest job", "error", err.Error())
	}
	if _, err := s.cron.AddFunc(cfg.UpcomingReminder, s.runner.UpcomingReminder); err != nil {
		s.logger.Error("failed to register upcoming reminder job", "error", err.Error())
	}
	s.logger.Info("cron jobs registered")
}

func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info("cron scheduler started")
}

func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("cron scheduler stopped")
}
