//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"salon-reservas/internal/handler/api"
	"salon-reservas/internal/pkg/clock"
	"salon-reservas/internal/usecase/queries"
	"salon-reservas/tests/common/httptest"
	commandsmock "salon-reservas/tests/mock/commands"
	queriesmock "salon-reservas/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type DayHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockDayCommands
	mockQueries  *queriesmock.MockDayQueries
	handler      *api.DayHandler
}

func (s *DayHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockDayCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockDayQueries(s.mockCtrl)

	loc, err := time.LoadLocation("America/Argentina/Buenos_Aires")
	s.Require().NoError(err)
	mockClock := clock.NewMockClock(time.Date(2025, 3, 15, 15, 0, 0, 0, time.UTC))
	s.handler = api.NewDayHandler(s.mockCommands, s.mockQueries, mockClock, loc)

	s.router.GET("/calendario", s.handler.GetCalendar)
}

func (s *DayHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestDayHandlerSuite(t *testing.T) {
	suite.Run(t, new(DayHandlerTestSuite))
}

func (s *DayHandlerTestSuite) TestGetCalendar() {
	view := &queries.CalendarView{Mes: 4, Anio: 2025, MesMin: "2025-03", MesMax: "2025-09"}

	s.Run("success: passes the requested month through", func() {
		s.mockQueries.EXPECT().GetCalendar(gomock.Any(), 4, 2025).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/calendario?mes=4&anio=2025", nil, "")

		var response queries.CalendarView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(4, response.Mes)
		s.Equal("2025-09", response.MesMax)
	})

	s.Run("success: defaults to the current month in the venue's zone", func() {
		current := &queries.CalendarView{Mes: 3, Anio: 2025}
		s.mockQueries.EXPECT().GetCalendar(gomock.Any(), 3, 2025).Return(current, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/calendario", nil, "")

		var response queries.CalendarView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(3, response.Mes)
	})

	s.Run("error: 400 on a non-numeric month", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/calendario?mes=abril", nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Mes inválido")
	})

	s.Run("error: 400 on a month outside the navigation window", func() {
		s.mockQueries.EXPECT().GetCalendar(gomock.Any(), 12, 2026).
			Return(nil, queries.ErrInvalidMonth).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/calendario?mes=12&anio=2026", nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "fuera del rango permitido")
	})
}
