//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"salon-reservas/internal/pkg/clock"
	"salon-reservas/internal/usecase/queries"
	queriesmock "salon-reservas/tests/mock/queries"
)

type AnalyticsQueriesTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockReadStore *queriesmock.MockAnalyticsReadStore
	clock         *clock.MockClock
	queries       queries.AnalyticsQueries
}

func (s *AnalyticsQueriesTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockReadStore = queriesmock.NewMockAnalyticsReadStore(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC))
	s.queries = queries.NewAnalyticsQueries(s.mockReadStore, s.clock)
}

func (s *AnalyticsQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAnalyticsQueriesSuite(t *testing.T) {
	suite.Run(t, new(AnalyticsQueriesTestSuite))
}

func (s *AnalyticsQueriesTestSuite) expectYearSeries(year int, income map[string]float64, reservations map[string]int) {
	s.mockReadStore.EXPECT().MonthlyIncomeForYear(gomock.Any(), year).Return(income, nil).Times(1)
	s.mockReadStore.EXPECT().ConfirmedReservationsForYear(gomock.Any(), year).Return(reservations, nil).Times(1)
}

func (s *AnalyticsQueriesTestSuite) TestGetSummary() {
	s.Run("computes net profit and growth trend against the previous month", func() {
		s.mockReadStore.EXPECT().SumPaymentsForMonth(gomock.Any(), 2025, time.May).Return(300000.0, nil).Times(1)
		s.mockReadStore.EXPECT().SumExpensesForMonth(gomock.Any(), 2025, time.May).Return(80000.0, nil).Times(1)
		s.mockReadStore.EXPECT().SumPaymentsForMonth(gomock.Any(), 2025, time.April).Return(200000.0, nil).Times(1)
		s.mockReadStore.EXPECT().OutstandingConfirmedBalance(gomock.Any()).Return(125000.0, nil).Times(1)
		s.expectYearSeries(2025,
			map[string]float64{"2025-04": 200000, "2025-05": 300000},
			map[string]int{"2025-05": 4},
		)

		view, err := s.queries.GetSummary(context.Background(), 2025, time.May)

		s.Require().NoError(err)
		s.Equal(300000.0, view.IngresosMesSeleccionado)
		s.Equal(80000.0, view.GastosMesSeleccionado)
		s.Equal(220000.0, view.BeneficioNetoMes)
		s.Equal(4, view.ReservasMesSeleccionado)
		s.Equal(50.0, view.TendenciaIngresosPorcentaje)
		s.Equal(125000.0, view.DineroPorLiquidar)
	})

	s.Run("trend rounds to two decimals", func() {
		s.mockReadStore.EXPECT().SumPaymentsForMonth(gomock.Any(), 2025, time.May).Return(100000.0, nil).Times(1)
		s.mockReadStore.EXPECT().SumExpensesForMonth(gomock.Any(), 2025, time.May).Return(0.0, nil).Times(1)
		s.mockReadStore.EXPECT().SumPaymentsForMonth(gomock.Any(), 2025, time.April).Return(30000.0, nil).Times(1)
		s.mockReadStore.EXPECT().OutstandingConfirmedBalance(gomock.Any()).Return(0.0, nil).Times(1)
		s.expectYearSeries(2025, nil, nil)

		view, err := s.queries.GetSummary(context.Background(), 2025, time.May)

		s.Require().NoError(err)
		// (100000-30000)/30000*100 = 233.333...
		s.Equal(233.33, view.TendenciaIngresosPorcentaje)
	})

	s.Run("first month with income after a silent one counts as full growth", func() {
		s.mockReadStore.EXPECT().SumPaymentsForMonth(gomock.Any(), 2025, time.May).Return(150000.0, nil).Times(1)
		s.mockReadStore.EXPECT().SumExpensesForMonth(gomock.Any(), 2025, time.May).Return(0.0, nil).Times(1)
		s.mockReadStore.EXPECT().SumPaymentsForMonth(gomock.Any(), 2025, time.April).Return(0.0, nil).Times(1)
		s.mockReadStore.EXPECT().OutstandingConfirmedBalance(gomock.Any()).Return(0.0, nil).Times(1)
		s.expectYearSeries(2025, map[string]float64{"2025-05": 150000}, nil)

		view, err := s.queries.GetSummary(context.Background(), 2025, time.May)

		s.Require().NoError(err)
		s.Equal(100.0, view.TendenciaIngresosPorcentaje)
	})

	s.Run("two silent months in a row report a flat trend", func() {
		s.mockReadStore.EXPECT().SumPaymentsForMonth(gomock.Any(), 2025, time.May).Return(0.0, nil).Times(1)
		s.mockReadStore.EXPECT().SumExpensesForMonth(gomock.Any(), 2025, time.May).Return(12000.0, nil).Times(1)
		s.mockReadStore.EXPECT().SumPaymentsForMonth(gomock.Any(), 2025, time.April).Return(0.0, nil).Times(1)
		s.mockReadStore.EXPECT().OutstandingConfirmedBalance(gomock.Any()).Return(0.0, nil).Times(1)
		s.expectYearSeries(2025, nil, nil)

		view, err := s.queries.GetSummary(context.Background(), 2025, time.May)

		s.Require().NoError(err)
		s.Equal(0.0, view.TendenciaIngresosPorcentaje)
		s.Equal(-12000.0, view.BeneficioNetoMes)
	})

	s.Run("january looks back into the previous year", func() {
		s.mockReadStore.EXPECT().SumPaymentsForMonth(gomock.Any(), 2025, time.January).Return(50000.0, nil).Times(1)
		s.mockReadStore.EXPECT().SumExpensesForMonth(gomock.Any(), 2025, time.January).Return(0.0, nil).Times(1)
		s.mockReadStore.EXPECT().SumPaymentsForMonth(gomock.Any(), 2024, time.December).Return(100000.0, nil).Times(1)
		s.mockReadStore.EXPECT().OutstandingConfirmedBalance(gomock.Any()).Return(0.0, nil).Times(1)
		s.expectYearSeries(2025, nil, nil)

		view, err := s.queries.GetSummary(context.Background(), 2025, time.January)

		s.Require().NoError(err)
		s.Equal(-50.0, view.TendenciaIngresosPorcentaje)
	})

	s.Run("series covers all twelve months even without movements", func() {
		s.mockReadStore.EXPECT().SumPaymentsForMonth(gomock.Any(), 2025, time.May).Return(0.0, nil).Times(1)
		s.mockReadStore.EXPECT().SumExpensesForMonth(gomock.Any(), 2025, time.May).Return(0.0, nil).Times(1)
		s.mockReadStore.EXPECT().SumPaymentsForMonth(gomock.Any(), 2025, time.April).Return(0.0, nil).Times(1)
		s.mockReadStore.EXPECT().OutstandingConfirmedBalance(gomock.Any()).Return(0.0, nil).Times(1)
		s.expectYearSeries(2025, map[string]float64{"2025-02": 90000}, map[string]int{"2025-02": 2})

		view, err := s.queries.GetSummary(context.Background(), 2025, time.May)

		s.Require().NoError(err)
		s.Len(view.IngresosPorMes, 12)
		s.Equal(90000.0, view.IngresosPorMes["2025-02"].Ingresos)
		s.Equal(2, view.IngresosPorMes["2025-02"].Reservas)
		s.Equal(0.0, view.IngresosPorMes["2025-11"].Ingresos)
		s.Equal(0, view.IngresosPorMes["2025-11"].Reservas)
	})
}

func (s *AnalyticsQueriesTestSuite) TestGetMonthlyReport() {
	payments := []queries.PaymentView{
		{ID: uuid.New(), ReservaID: uuid.New(), Monto: 120000, FechaPago: time.Date(2025, 5, 3, 0, 0, 0, 0, time.UTC)},
		{ID: uuid.New(), ReservaID: uuid.New(), Monto: 80000, FechaPago: time.Date(2025, 5, 17, 0, 0, 0, 0, time.UTC)},
	}
	expenses := []queries.ExpenseView{
		{ID: uuid.New(), Descripcion: "Luz", Monto: 45000, Categoria: "Servicios", Fecha: time.Date(2025, 5, 8, 0, 0, 0, 0, time.UTC)},
	}

	s.mockReadStore.EXPECT().FindPaymentsForMonth(gomock.Any(), 2025, time.May).Return(payments, nil).Times(1)
	s.mockReadStore.EXPECT().FindExpensesForMonth(gomock.Any(), 2025, time.May).Return(expenses, nil).Times(1)

	report, err := s.queries.GetMonthlyReport(context.Background(), 2025, time.May)

	s.Require().NoError(err)
	s.Equal(200000.0, report.TotalIncome)
	s.Equal(45000.0, report.TotalSpent)
	s.Equal(155000.0, report.NetProfit)
	s.Equal(s.clock.Now(), report.GeneratedAt)
	s.Len(report.Payments, 2)
	s.Len(report.Expenses, 1)
}
