package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"salon-reservas/internal/domain/ledger"
	"salon-reservas/internal/infra"
	"salon-reservas/internal/pkg/pgconv"
)

type ExpenseRepository struct {
	db *pgxpool.Pool
}

func NewExpenseRepository(db *pgxpool.Pool) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

func (r *ExpenseRepository) Create(ctx context.Context, e *ledger.Expense) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO expenses (id, description, amount, category, expense_date, created_at)
		 VALUES ($1, $2, $3, $4, $5, now())`,
		e.ID(), e.Description(), e.Amount(), e.Category().String(), pgconv.DateToPgtype(e.Date()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create expense", err)
	}
	return nil
}

func (r *ExpenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete expense", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("expense not found", nil, infra.KindNotFound)
	}
	return nil
}
