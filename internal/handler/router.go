package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"salon-reservas/internal/handler/api"
	"salon-reservas/internal/handler/middleware"
	"salon-reservas/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth        *api.AuthHandler
	User        *api.UserHandler
	Day         *api.DayHandler
	Reservation *api.ReservationHandler
	Payment     *api.PaymentHandler
	PaymentInfo *api.PaymentInfoHandler
	Expense     *api.ExpenseHandler
	Analytics   *api.AnalyticsHandler
	Chat        *api.ChatHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMw *middleware.AuthMiddleware, rateMw *middleware.RateLimitMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, authMw, rateMw)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMw *middleware.AuthMiddleware, rateMw *middleware.RateLimitMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api/v1")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login, Mw: []gin.HandlerFunc{rateMw.Limit(20, time.Minute)}},
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register, Mw: []gin.HandlerFunc{rateMw.Limit(20, time.Minute)}},
				{Method: http.MethodPost, Path: "/forgot-password", Handler: h.Auth.ForgotPassword, Mw: []gin.HandlerFunc{rateMw.Limit(5, time.Minute)}},
				{Method: http.MethodPost, Path: "/reset-password", Handler: h.Auth.ResetPassword, Mw: []gin.HandlerFunc{rateMw.Limit(5, time.Minute)}},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMw.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		// Public endpoints for the landing page.
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/calendario", Handler: h.Day.GetCalendar, Mw: []gin.HandlerFunc{rateMw.Limit(50, time.Minute)}},
			{Method: http.MethodGet, Path: "/pagos/info", Handler: h.PaymentInfo.GetPaymentInfo},
			{Method: http.MethodPost, Path: "/chatbot/query", Handler: h.Chat.Query, Mw: []gin.HandlerFunc{rateMw.Limit(30, time.Minute)}},
		})

		days := apiGroup.Group("/fechas")
		days.Use(authMw.RequireAuth(), authMw.RequireAdmin())
		{
			addRoutes(days, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Day.ListDays},
				{Method: http.MethodPost, Path: "", Handler: h.Day.CreateDay},
				{Method: http.MethodPut, Path: "/precios", Handler: h.Day.BulkSetPrices},
				{Method: http.MethodGet, Path: "/dia/:dia", Handler: h.Day.GetOrCreateByDate},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Day.UpdateDay},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Day.DeleteDay},
			})
		}

		reservations := apiGroup.Group("/reservas")
		reservations.Use(authMw.RequireAuth())
		{
			addRoutes(reservations, []route{
				{Method: http.MethodPost, Path: "/solicitar", Handler: h.Reservation.RequestReservation, Mw: []gin.HandlerFunc{rateMw.Limit(10, time.Minute)}},
				{Method: http.MethodGet, Path: "/mis-reservas", Handler: h.Reservation.MyReservations},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Reservation.GetReservation},
			})

			adminOnly := reservations.Group("")
			adminOnly.Use(authMw.RequireAdmin())
			addRoutes(adminOnly, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Reservation.ListActive},
				{Method: http.MethodPost, Path: "", Handler: h.Reservation.AdminCreateReservation},
				{Method: http.MethodGet, Path: "/archivadas", Handler: h.Reservation.ListArchived},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Reservation.UpdateReservation},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Reservation.ArchiveReservation},
				{Method: http.MethodPost, Path: "/:id/pagos", Handler: h.Payment.AddPayment},
				{Method: http.MethodDelete, Path: "/:id/pagos/:pago_id", Handler: h.Payment.DeletePayment},
			})
		}

		expenses := apiGroup.Group("/gastos")
		expenses.Use(authMw.RequireAuth(), authMw.RequireAdmin())
		{
			addRoutes(expenses, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Expense.ListExpenses},
				{Method: http.MethodPost, Path: "", Handler: h.Expense.CreateExpense},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Expense.DeleteExpense},
			})
		}

		analytics := apiGroup.Group("/analytics")
		analytics.Use(authMw.RequireAuth(), authMw.RequireAdmin())
		{
			addRoutes(analytics, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Analytics.GetSummary},
				{Method: http.MethodGet, Path: "/reporte-pdf", Handler: h.Analytics.GetMonthlyReportPDF},
			})
		}

		users := apiGroup.Group("/usuarios")
		users.Use(authMw.RequireAuth(), authMw.RequireAdmin())
		{
			addRoutes(users, []route{
				{Method: http.MethodGet, Path: "", Handler: h.User.ListUsers},
				{Method: http.MethodGet, Path: "/:id", Handler: h.User.GetUser},
				{Method: http.MethodPut, Path: "/:id", Handler: h.User.UpdateUser},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.User.DeleteUser},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
