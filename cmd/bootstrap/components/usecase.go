package components

import (
	"log/slog"

	"salon-reservas/internal/pkg/clock"
	"salon-reservas/internal/pkg/config"
	"salon-reservas/internal/pkg/jwt"
	"salon-reservas/internal/usecase"
	"salon-reservas/internal/usecase/commands"
	"salon-reservas/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		NewAuthCommands,
		commands.NewUserCommands,
		commands.NewDayCommands,
		commands.NewReservationCommands,
		commands.NewPaymentCommands,
		commands.NewExpenseCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewDayQueries,
		queries.NewReservationQueries,
		queries.NewExpenseQueries,
		queries.NewAnalyticsQueries,
		queries.NewChatQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewAuthCommands(
	userRepo commands.UserRepository,
	readStore queries.UserReadStore,
	jwtService *jwt.Service,
	resetTokens commands.ResetTokenStore,
	mailer commands.ResetMailer,
	cfg config.Config,
	logger *slog.Logger,
) commands.AuthCommands {
	return commands.NewAuthCommands(userRepo, readStore, jwtService, resetTokens, mailer, cfg.Business.FrontendBaseURL, logger)
}
