package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"salon-reservas/internal/domain/booking"
	"salon-reservas/internal/infra"
	"salon-reservas/internal/pkg/pgconv"
)

type PaymentRepository struct {
	db *pgxpool.Pool
}

func NewPaymentRepository(db *pgxpool.Pool) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) Create(ctx context.Context, p booking.Payment) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO payments (id, reservation_id, amount, paid_at) VALUES ($1, $2, $3, $4)`,
		p.ID(), p.ReservationID(), p.Amount(), p.PaidAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create payment", err, classify(err))
	}
	return nil
}

func (r *PaymentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM payments WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete payment", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("payment not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *PaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (booking.Payment, error) {
	var (
		payID, resID uuid.UUID
		amount       float64
		paidAt       time.Time
	)
	err := r.db.QueryRow(ctx,
		`SELECT id, reservation_id, amount, paid_at FROM payments WHERE id = $1`, id,
	).Scan(&payID, &resID, &amount, &paidAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return booking.Payment{}, infra.WrapRepoErr("payment not found", err, infra.KindNotFound)
		}
		return booking.Payment{}, infra.WrapRepoErr("failed to find payment", err)
	}
	return booking.ReconstructPayment(payID, resID, amount, paidAt), nil
}
