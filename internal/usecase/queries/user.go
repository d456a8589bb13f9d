package queries

import (
	"context"

	"github.com/google/uuid"

	"salon-reservas/internal/infra"
	"salon-reservas/internal/pkg/errs"
)

var ErrUserNotFound = errs.New("user not found")

type UserQueries interface {
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*UserView, error)
	GetUser(ctx context.Context, id uuid.UUID) (*UserView, error)
	ListUsers(ctx context.Context) ([]UserView, error)
}

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*UserView, error)
	FindByEmail(ctx context.Context, email string) (*UserView, string, error)
	FindAll(ctx context.Context) ([]UserView, error)
}

type userQueriesImpl struct {
	readStore UserReadStore
}

func NewUserQueries(readStore UserReadStore) UserQueries {
	return &userQueriesImpl{readStore: readStore}
}

func (q *userQueriesImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*UserView, error) {
	return q.GetUser(ctx, userID)
}

func (q *userQueriesImpl) GetUser(ctx context.Context, id uuid.UUID) (*UserView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *userQueriesImpl) ListUsers(ctx context.Context) ([]UserView, error) {
	return q.readStore.FindAll(ctx)
}
