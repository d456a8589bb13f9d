package commands

import (
	"context"
	"time"

	"github.com/google/uuid"

	"salon-reservas/internal/domain/ledger"
	reqdto "salon-reservas/internal/handler/dto/request"
	"salon-reservas/internal/infra"
	"salon-reservas/internal/pkg/errs"
	"salon-reservas/internal/usecase/queries"
)

var ErrExpenseNotFound = errs.New("expense not found")

type ExpenseRepository interface {
	Create(ctx context.Context, e *ledger.Expense) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ExpenseCommands interface {
	CreateExpense(ctx context.Context, req reqdto.CreateExpenseRequest) (*queries.ExpenseView, error)
	DeleteExpense(ctx context.Context, id uuid.UUID) error
}

type expenseCommandsImpl struct {
	expenseRepo ExpenseRepository
}

func NewExpenseCommands(expenseRepo ExpenseRepository) ExpenseCommands {
	return &expenseCommandsImpl{expenseRepo: expenseRepo}
}

func (c *expenseCommandsImpl) CreateExpense(ctx context.Context, req reqdto.CreateExpenseRequest) (*queries.ExpenseView, error) {
	date, err := time.Parse("2006-01-02", req.Fecha)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidDate)
	}

	category, err := ledger.NewCategory(req.Categoria)
	if err != nil {
		return nil, err
	}

	expense, err := ledger.NewExpense(req.Descripcion, req.Monto, category, date)
	if err != nil {
		return nil, err
	}

	if err := c.expenseRepo.Create(ctx, expense); err != nil {
		return nil, err
	}

	return &queries.ExpenseView{
		ID:          expense.ID(),
		Descripcion: expense.Description(),
		Monto:       expense.Amount(),
		Categoria:   expense.Category().String(),
		Fecha:       expense.Date(),
	}, nil
}

func (c *expenseCommandsImpl) DeleteExpense(ctx context.Context, id uuid.UUID) error {
	if err := c.expenseRepo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrExpenseNotFound
		}
		return err
	}
	return nil
}
