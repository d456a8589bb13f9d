package queries

import (
	"context"
	"time"
)

type ExpenseQueries interface {
	ListByMonth(ctx context.Context, year int, month time.Month) ([]ExpenseView, error)
}

type ExpenseReadStore interface {
	FindByMonth(ctx context.Context, year int, month time.Month) ([]ExpenseView, error)
}

type expenseQueriesImpl struct {
	readStore ExpenseReadStore
}

func NewExpenseQueries(readStore ExpenseReadStore) ExpenseQueries {
	return &expenseQueriesImpl{readStore: readStore}
}

func (q *expenseQueriesImpl) ListByMonth(ctx context.Context, year int, month time.Month) ([]ExpenseView, error) {
	return q.readStore.FindByMonth(ctx, year, month)
}
