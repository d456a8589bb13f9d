package queries

import (
	"context"

	"github.com/google/uuid"

	"salon-reservas/internal/infra"
	"salon-reservas/internal/pkg/errs"
)

var (
	ErrReservationNotFound = errs.New("reservation not found")
	ErrReservationAccess   = errs.New("reservation access denied")
)

type ReservationQueries interface {
	GetReservation(ctx context.Context, id, requesterID uuid.UUID, isAdmin bool) (*ReservationView, error)
	ListActive(ctx context.Context) ([]ReservationView, error)
	ListArchived(ctx context.Context) ([]ReservationView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]ReservationView, error)
}

type ReservationReadStore interface {
	FindViewByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	FindActiveViews(ctx context.Context) ([]ReservationView, error)
	FindArchivedViews(ctx context.Context) ([]ReservationView, error)
	FindViewsByUser(ctx context.Context, userID uuid.UUID) ([]ReservationView, error)
}

type reservationQueriesImpl struct {
	readStore ReservationReadStore
}

func NewReservationQueries(readStore ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{readStore: readStore}
}

func (q *reservationQueriesImpl) GetReservation(ctx context.Context, id, requesterID uuid.UUID, isAdmin bool) (*ReservationView, error) {
	view, err := q.readStore.FindViewByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	if !isAdmin && view.UsuarioID != requesterID {
		return nil, ErrReservationAccess
	}
	return view, nil
}

func (q *reservationQueriesImpl) ListActive(ctx context.Context) ([]ReservationView, error) {
	return q.readStore.FindActiveViews(ctx)
}

func (q *reservationQueriesImpl) ListArchived(ctx context.Context) ([]ReservationView, error) {
	return q.readStore.FindArchivedViews(ctx)
}

func (q *reservationQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]ReservationView, error) {
	return q.readStore.FindViewsByUser(ctx, userID)
}
