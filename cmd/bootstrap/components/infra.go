package components

import (
	"salon-reservas/internal/infra/cache"
	"salon-reservas/internal/infra/mail"
	"salon-reservas/internal/infra/push"
	"salon-reservas/internal/infra/report"
	"salon-reservas/internal/jobs"
	"salon-reservas/internal/usecase/commands"
	"salon-reservas/internal/usecase/queries"

	"go.uber.org/fx"
)

var InfraModule = fx.Module("infra",
	fx.Provide(
		fx.Annotate(
			cache.NewCache,
			fx.As(new(queries.CalendarCache)),
			fx.As(new(commands.CalendarInvalidator)),
		),
		fx.Annotate(
			cache.NewLocker,
			fx.As(new(commands.DayLocker)),
		),
		fx.Annotate(
			cache.NewResetTokenStore,
			fx.As(new(commands.ResetTokenStore)),
		),
		cache.NewRateLimiter,
		fx.Annotate(
			mail.NewSendGridMailer,
			fx.As(new(commands.ResetMailer)),
			fx.As(new(commands.ConfirmationMailer)),
		),
		fx.Annotate(
			push.NewPushoverNotifier,
			fx.As(new(jobs.Notifier)),
		),
		report.NewPDFRenderer,
		fx.Annotate(
			report.NewPDFRenderer,
			fx.As(new(commands.ContractRenderer)),
		),
	),
)
