package readstore

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"salon-reservas/internal/infra"
	"salon-reservas/internal/usecase/queries"
)

type AnalyticsReadStore struct {
	db       *pgxpool.Pool
	expenses *ExpenseReadStore
}

func NewAnalyticsReadStore(db *pgxpool.Pool) *AnalyticsReadStore {
	return &AnalyticsReadStore{db: db, expenses: NewExpenseReadStore(db)}
}

func monthBounds(year int, month time.Month) (time.Time, time.Time) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return from, from.AddDate(0, 1, 0)
}

func (r *AnalyticsReadStore) SumPaymentsForMonth(ctx context.Context, year int, month time.Month) (float64, error) {
	from, to := monthBounds(year, month)
	var total float64
	err := r.db.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM payments WHERE paid_at >= $1 AND paid_at < $2`,
		from, to,
	).Scan(&total)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to sum payments", err)
	}
	return total, nil
}

func (r *AnalyticsReadStore) SumExpensesForMonth(ctx context.Context, year int, month time.Month) (float64, error) {
	from, to := monthBounds(year, month)
	var total float64
	err := r.db.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM expenses WHERE expense_date >= $1 AND expense_date < $2`,
		from, to,
	).Scan(&total)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to sum expenses", err)
	}
	return total, nil
}

// OutstandingConfirmedBalance is the money still owed on confirmed
// reservations: rental value minus everything already paid.
func (r *AnalyticsReadStore) OutstandingConfirmedBalance(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.QueryRow(ctx,
		`SELECT COALESCE(SUM(r.rental_value - COALESCE(p.paid, 0)), 0)
		 FROM reservations r
		 LEFT JOIN (
		     SELECT reservation_id, SUM(amount) AS paid
		     FROM payments GROUP BY reservation_id
		 ) p ON p.reservation_id = r.id
		 WHERE r.status = 'confirmada'`,
	).Scan(&total)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to compute outstanding balance", err)
	}
	return total, nil
}

func (r *AnalyticsReadStore) MonthlyIncomeForYear(ctx context.Context, year int) (map[string]float64, error) {
	rows, err := r.db.Query(ctx,
		`SELECT to_char(paid_at, 'YYYY-MM') AS month, SUM(amount)
		 FROM payments
		 WHERE EXTRACT(YEAR FROM paid_at) = $1
		 GROUP BY month ORDER BY month`,
		year,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to aggregate monthly income", err)
	}
	defer rows.Close()

	out := make(map[string]float64)
	for rows.Next() {
		var month string
		var total float64
		if err := rows.Scan(&month, &total); err != nil {
			return nil, infra.WrapRepoErr("failed to scan income row", err)
		}
		out[month] = total
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate income rows", err)
	}
	return out, nil
}

func (r *AnalyticsReadStore) ConfirmedReservationsForYear(ctx context.Context, year int) (map[string]int, error) {
	rows, err := r.db.Query(ctx,
		`SELECT to_char(d.day, 'YYYY-MM') AS month, COUNT(r.id)
		 FROM reservations r
		 JOIN days d ON d.id = r.day_id
		 WHERE r.status = 'confirmada' AND EXTRACT(YEAR FROM d.day) = $1
		 GROUP BY month`,
		year,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to aggregate confirmed reservations", err)
	}
	defer rows.Close()

	out := make(map[string]int)
	for rows.Next() {
		var month string
		var count int
		if err := rows.Scan(&month, &count); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation count row", err)
		}
		out[month] = count
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservation count rows", err)
	}
	return out, nil
}

func (r *AnalyticsReadStore) FindPaymentsForMonth(ctx context.Context, year int, month time.Month) ([]queries.PaymentView, error) {
	from, to := monthBounds(year, month)
	rows, err := r.db.Query(ctx,
		`SELECT id, reservation_id, amount, paid_at
		 FROM payments WHERE paid_at >= $1 AND paid_at < $2 ORDER BY paid_at`,
		from, to,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list payments for report", err)
	}
	defer rows.Close()

	views := make([]queries.PaymentView, 0)
	for rows.Next() {
		var v queries.PaymentView
		if err := rows.Scan(&v.ID, &v.ReservaID, &v.Monto, &v.FechaPago); err != nil {
			return nil, infra.WrapRepoErr("failed to scan payment row", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate payment rows", err)
	}
	return views, nil
}

func (r *AnalyticsReadStore) FindExpensesForMonth(ctx context.Context, year int, month time.Month) ([]queries.ExpenseView, error) {
	return r.expenses.FindByMonth(ctx, year, month)
}
