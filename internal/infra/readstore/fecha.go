package readstore

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"salon-reservas/internal/domain/schedule"
	"salon-reservas/internal/infra"
	"salon-reservas/internal/pkg/pgconv"
)

type DayReadStore struct {
	db *pgxpool.Pool
}

func NewDayReadStore(db *pgxpool.Pool) *DayReadStore {
	return &DayReadStore{db: db}
}

const dayColumns = `id, day, status, estimated_price, created_at, updated_at`

func (r *DayReadStore) FindByID(ctx context.Context, id uuid.UUID) (*schedule.Day, error) {
	row := r.db.QueryRow(ctx, `SELECT `+dayColumns+` FROM days WHERE id = $1`, id)
	day, err := scanDay(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("day not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find day by id", err)
	}
	return day, nil
}

func (r *DayReadStore) FindByDate(ctx context.Context, date time.Time) (*schedule.Day, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+dayColumns+` FROM days WHERE day = $1`,
		pgconv.DateToPgtype(date),
	)
	day, err := scanDay(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("day not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find day by date", err)
	}
	return day, nil
}

func (r *DayReadStore) FindByMonth(ctx context.Context, year int, month time.Month) ([]*schedule.Day, error) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	rows, err := r.db.Query(ctx,
		`SELECT `+dayColumns+` FROM days WHERE day >= $1 AND day < $2 ORDER BY day`,
		pgconv.DateToPgtype(from), pgconv.DateToPgtype(to),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list days for month", err)
	}
	defer rows.Close()

	return collectDays(rows)
}

func (r *DayReadStore) FindAll(ctx context.Context) ([]*schedule.Day, error) {
	rows, err := r.db.Query(ctx, `SELECT `+dayColumns+` FROM days ORDER BY day`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list days", err)
	}
	defer rows.Close()

	return collectDays(rows)
}

func collectDays(rows pgx.Rows) ([]*schedule.Day, error) {
	days := make([]*schedule.Day, 0)
	for rows.Next() {
		day, err := scanDay(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan day row", err)
		}
		days = append(days, day)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate day rows", err)
	}
	return days, nil
}

func scanDay(row pgx.Row) (*schedule.Day, error) {
	var (
		id        uuid.UUID
		date      time.Time
		status    string
		price     *float64
		createdAt time.Time
		updatedAt time.Time
	)
	if err := row.Scan(&id, &date, &status, &price, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	return schedule.ReconstructDay(id, date, schedule.DayStatus(status), price, createdAt, updatedAt), nil
}
