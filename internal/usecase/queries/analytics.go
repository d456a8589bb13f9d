package queries

import (
	"context"
	"fmt"
	"math"
	"time"

	"salon-reservas/internal/pkg/clock"
)

type AnalyticsQueries interface {
	GetSummary(ctx context.Context, year int, month time.Month) (*AnalyticsView, error)
	GetMonthlyReport(ctx context.Context, year int, month time.Month) (*MonthlyReport, error)
}

type AnalyticsReadStore interface {
	SumPaymentsForMonth(ctx context.Context, year int, month time.Month) (float64, error)
	SumExpensesForMonth(ctx context.Context, year int, month time.Month) (float64, error)
	OutstandingConfirmedBalance(ctx context.Context) (float64, error)
	MonthlyIncomeForYear(ctx context.Context, year int) (map[string]float64, error)
	ConfirmedReservationsForYear(ctx context.Context, year int) (map[string]int, error)
	FindPaymentsForMonth(ctx context.Context, year int, month time.Month) ([]PaymentView, error)
	FindExpensesForMonth(ctx context.Context, year int, month time.Month) ([]ExpenseView, error)
}

// MonthlyReport is the dataset behind the downloadable accounting PDF.
type MonthlyReport struct {
	Year        int
	Month       time.Month
	GeneratedAt time.Time
	TotalIncome float64
	TotalSpent  float64
	NetProfit   float64
	Payments    []PaymentView
	Expenses    []ExpenseView
}

type analyticsQueriesImpl struct {
	readStore AnalyticsReadStore
	clock     clock.Clock
}

func NewAnalyticsQueries(readStore AnalyticsReadStore, clk clock.Clock) AnalyticsQueries {
	return &analyticsQueriesImpl{readStore: readStore, clock: clk}
}

func (q *analyticsQueriesImpl) GetSummary(ctx context.Context, year int, month time.Month) (*AnalyticsView, error) {
	income, err := q.readStore.SumPaymentsForMonth(ctx, year, month)
	if err != nil {
		return nil, err
	}

	spent, err := q.readStore.SumExpensesForMonth(ctx, year, month)
	if err != nil {
		return nil, err
	}

	prev := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, -1, 0)
	prevIncome, err := q.readStore.SumPaymentsForMonth(ctx, prev.Year(), prev.Month())
	if err != nil {
		return nil, err
	}

	outstanding, err := q.readStore.OutstandingConfirmedBalance(ctx)
	if err != nil {
		return nil, err
	}

	incomeByMonth, err := q.readStore.MonthlyIncomeForYear(ctx, year)
	if err != nil {
		return nil, err
	}
	reservationsByMonth, err := q.readStore.ConfirmedReservationsForYear(ctx, year)
	if err != nil {
		return nil, err
	}

	// Every month of the year appears in the series, even empty ones.
	series := make(map[string]MonthStatView, 12)
	for m := 1; m <= 12; m++ {
		key := fmt.Sprintf("%04d-%02d", year, m)
		series[key] = MonthStatView{
			Ingresos: incomeByMonth[key],
			Reservas: reservationsByMonth[key],
		}
	}

	// A month following a silent one counts as full growth.
	trend := 0.0
	switch {
	case prevIncome > 0:
		trend = (income - prevIncome) / prevIncome * 100
	case income > 0:
		trend = 100
	}

	selectedKey := fmt.Sprintf("%04d-%02d", year, int(month))
	return &AnalyticsView{
		IngresosMesSeleccionado:     income,
		GastosMesSeleccionado:       spent,
		BeneficioNetoMes:            income - spent,
		ReservasMesSeleccionado:     series[selectedKey].Reservas,
		TendenciaIngresosPorcentaje: math.Round(trend*100) / 100,
		DineroPorLiquidar:           outstanding,
		IngresosPorMes:              series,
	}, nil
}

func (q *analyticsQueriesImpl) GetMonthlyReport(ctx context.Context, year int, month time.Month) (*MonthlyReport, error) {
	payments, err := q.readStore.FindPaymentsForMonth(ctx, year, month)
	if err != nil {
		return nil, err
	}
	expenses, err := q.readStore.FindExpensesForMonth(ctx, year, month)
	if err != nil {
		return nil, err
	}

	var income, spent float64
	for _, p := range payments {
		income += p.Monto
	}
	for _, e := range expenses {
		spent += e.Monto
	}

	return &MonthlyReport{
		Year:        year,
		Month:       month,
		GeneratedAt: q.clock.Now(),
		TotalIncome: income,
		TotalSpent:  spent,
		NetProfit:   income - spent,
		Payments:    payments,
		Expenses:    expenses,
	}, nil
}
