package readstore

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"salon-reservas/internal/infra"
	"salon-reservas/internal/usecase/queries"
)

type ExpenseReadStore struct {
	db *pgxpool.Pool
}

func NewExpenseReadStore(db *pgxpool.Pool) *ExpenseReadStore {
	return &ExpenseReadStore{db: db}
}

func (r *ExpenseReadStore) FindByMonth(ctx context.Context, year int, month time.Month) ([]queries.ExpenseView, error) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	rows, err := r.db.Query(ctx,
		`SELECT id, description, amount, category, expense_date
		 FROM expenses WHERE expense_date >= $1 AND expense_date < $2
		 ORDER BY expense_date`,
		from, to,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list expenses", err)
	}
	defer rows.Close()

	views := make([]queries.ExpenseView, 0)
	for rows.Next() {
		var v queries.ExpenseView
		if err := rows.Scan(&v.ID, &v.Descripcion, &v.Monto, &v.Categoria, &v.Fecha); err != nil {
			return nil, infra.WrapRepoErr("failed to scan expense row", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate expense rows", err)
	}
	return views, nil
}
