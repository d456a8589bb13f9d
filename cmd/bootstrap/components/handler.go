package components

import (
	"salon-reservas/internal/handler"
	"salon-reservas/internal/handler/api"
	"salon-reservas/internal/handler/middleware"
	"salon-reservas/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewUserHandler,
		api.NewDayHandler,
		api.NewReservationHandler,
		api.NewPaymentHandler,
		NewPaymentInfoHandler,
		api.NewExpenseHandler,
		api.NewAnalyticsHandler,
		api.NewChatHandler,
		NewHandlers,
		middleware.NewAuthMiddleware,
		middleware.NewRateLimitMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

func NewPaymentInfoHandler(cfg config.Config) *api.PaymentInfoHandler {
	return api.NewPaymentInfoHandler(cfg.Business)
}

func NewHandlers(
	auth *api.AuthHandler,
	user *api.UserHandler,
	day *api.DayHandler,
	reservation *api.ReservationHandler,
	payment *api.PaymentHandler,
	paymentInfo *api.PaymentInfoHandler,
	expense *api.ExpenseHandler,
	analytics *api.AnalyticsHandler,
	chat *api.ChatHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:        auth,
		User:        user,
		Day:         day,
		Reservation: reservation,
		Payment:     payment,
		PaymentInfo: paymentInfo,
		Expense:     expense,
		Analytics:   analytics,
		Chat:        chat,
	}
}
