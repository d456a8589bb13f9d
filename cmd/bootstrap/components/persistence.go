package components

import (
	"salon-reservas/internal/infra/readstore"
	"salon-reservas/internal/infra/repository"
	"salon-reservas/internal/jobs"
	"salon-reservas/internal/usecase/commands"
	"salon-reservas/internal/usecase/queries"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	readstoreModule,
	repositoryModule,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		fx.Annotate(
			readstore.NewDayReadStore,
			fx.As(new(queries.DayReadStore)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
			fx.As(new(jobs.ReservationFinder)),
		),
		fx.Annotate(
			readstore.NewExpenseReadStore,
			fx.As(new(queries.ExpenseReadStore)),
		),
		fx.Annotate(
			readstore.NewAnalyticsReadStore,
			fx.As(new(queries.AnalyticsReadStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(commands.UserRepository)),
		),
		fx.Annotate(
			repository.NewDayRepository,
			fx.As(new(commands.DayRepository)),
		),
		fx.Annotate(
			repository.NewReservationRepository,
			fx.As(new(commands.ReservationRepository)),
		),
		fx.Annotate(
			repository.NewPaymentRepository,
			fx.As(new(commands.PaymentRepository)),
		),
		fx.Annotate(
			repository.NewExpenseRepository,
			fx.As(new(commands.ExpenseRepository)),
		),
	),
)
