package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"salon-reservas/internal/domain/schedule"
	"salon-reservas/internal/infra"
	"salon-reservas/internal/pkg/pgconv"
)

type DayRepository struct {
	db *pgxpool.Pool
}

func NewDayRepository(db *pgxpool.Pool) *DayRepository {
	return &DayRepository{db: db}
}

func (r *DayRepository) Create(ctx context.Context, d *schedule.Day) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO days (id, day, status, estimated_price, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, now(), now())`,
		d.ID(), pgconv.DateToPgtype(d.Date()), d.Status().String(), d.EstimatedPrice(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create day", err, classify(err))
	}
	return nil
}

func (r *DayRepository) Update(ctx context.Context, d *schedule.Day) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE days SET status = $2, estimated_price = $3, updated_at = now() WHERE id = $1`,
		d.ID(), d.Status().String(), d.EstimatedPrice(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update day", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("day not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *DayRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM days WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete day", err, classify(err))
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("day not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *DayRepository) FindByID(ctx context.Context, id uuid.UUID) (*schedule.Day, error) {
	return r.findOne(ctx, `SELECT id, day, status, estimated_price, created_at, updated_at FROM days WHERE id = $1`, id)
}

func (r *DayRepository) FindByDate(ctx context.Context, date time.Time) (*schedule.Day, error) {
	return r.findOne(ctx,
		`SELECT id, day, status, estimated_price, created_at, updated_at FROM days WHERE day = $1`,
		pgconv.DateToPgtype(date),
	)
}

// UpdatePriceForDates is the bulk tariff update: only rows that already
// exist change, and the caller learns how many did.
func (r *DayRepository) UpdatePriceForDates(ctx context.Context, dates []time.Time, price float64) (int, error) {
	if len(dates) == 0 {
		return 0, nil
	}

	normalized := make([]time.Time, 0, len(dates))
	for _, d := range dates {
		normalized = append(normalized, schedule.Normalize(d))
	}

	tag, err := r.db.Exec(ctx,
		`UPDATE days SET estimated_price = $1, updated_at = now() WHERE day = ANY($2)`,
		price, normalized,
	)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to bulk update prices", err)
	}
	return int(tag.RowsAffected()), nil
}

func (r *DayRepository) findOne(ctx context.Context, query string, arg any) (*schedule.Day, error) {
	var (
		id        uuid.UUID
		date      time.Time
		status    string
		price     *float64
		createdAt time.Time
		updatedAt time.Time
	)
	err := r.db.QueryRow(ctx, query, arg).Scan(&id, &date, &status, &price, &createdAt, &updatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("day not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find day", err)
	}
	return schedule.ReconstructDay(id, date, schedule.DayStatus(status), price, createdAt, updatedAt), nil
}
