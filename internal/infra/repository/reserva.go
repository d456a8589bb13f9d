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

type ReservationRepository struct {
	db *pgxpool.Pool
}

func NewReservationRepository(db *pgxpool.Pool) *ReservationRepository {
	return &ReservationRepository{db: db}
}

func (r *ReservationRepository) Create(ctx context.Context, res *booking.Reservation) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO reservations
		 (id, user_id, day_id, rental_value, status, receipt_url, accepted_at, acceptance_ip, contract_version, expires_at, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, now(), now())`,
		res.ID(), res.UserID(), res.DayID(), res.RentalValue(), res.Status().String(),
		res.ReceiptURL(), res.AcceptedAt(), res.AcceptanceIP(), res.ContractVersion(), res.ExpiresAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create reservation", err, classify(err))
	}
	return nil
}

func (r *ReservationRepository) Update(ctx context.Context, res *booking.Reservation) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE reservations
		 SET rental_value = $2, status = $3, expires_at = $4, updated_at = now()
		 WHERE id = $1`,
		res.ID(), res.RentalValue(), res.Status().String(), res.ExpiresAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ReservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Reservation, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, user_id, day_id, rental_value, status, receipt_url, accepted_at,
		        acceptance_ip, contract_version, expires_at, created_at, updated_at
		 FROM reservations WHERE id = $1`,
		id,
	)

	var (
		resID, userID, dayID uuid.UUID
		rentalValue          float64
		status               string
		receiptURL           *string
		acceptedAt           time.Time
		acceptanceIP         string
		contractVersion      string
		expiresAt            *time.Time
		createdAt, updatedAt time.Time
	)
	err := row.Scan(
		&resID, &userID, &dayID, &rentalValue, &status, &receiptURL, &acceptedAt,
		&acceptanceIP, &contractVersion, &expiresAt, &createdAt, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation", err)
	}

	return booking.ReconstructReservation(
		resID, userID, dayID, rentalValue, booking.Status(status),
		receiptURL, acceptedAt, acceptanceIP, contractVersion,
		expiresAt, createdAt, updatedAt,
	), nil
}

func (r *ReservationRepository) FindPayments(ctx context.Context, reservationID uuid.UUID) ([]booking.Payment, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, reservation_id, amount, paid_at FROM payments WHERE reservation_id = $1 ORDER BY paid_at`,
		reservationID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list payments", err)
	}
	defer rows.Close()

	payments := make([]booking.Payment, 0)
	for rows.Next() {
		var (
			id, resID uuid.UUID
			amount    float64
			paidAt    time.Time
		)
		if err := rows.Scan(&id, &resID, &amount, &paidAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan payment row", err)
		}
		payments = append(payments, booking.ReconstructPayment(id, resID, amount, paidAt))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate payment rows", err)
	}
	return payments, nil
}
