package readstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"salon-reservas/internal/infra"
	"salon-reservas/internal/pkg/pgconv"
	"salon-reservas/internal/usecase/queries"
)

type UserReadStore struct {
	db *pgxpool.Pool
}

func NewUserReadStore(db *pgxpool.Pool) *UserReadStore {
	return &UserReadStore{db: db}
}

const userViewColumns = `id, first_name, last_name, dni, email, phone, role, created_at`

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+userViewColumns+` FROM users WHERE id = $1`,
		id,
	)

	view, err := scanUserView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by id", err)
	}
	return view, nil
}

func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.UserView, string, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+userViewColumns+`, password_hash FROM users WHERE email = $1`,
		email,
	)

	var view queries.UserView
	var hash string
	err := row.Scan(
		&view.ID, &view.Nombre, &view.Apellido, &view.DNI,
		&view.Email, &view.Telefono, &view.Rol, &view.CreatedAt,
		&hash,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}
	return &view, hash, nil
}

func (r *UserReadStore) FindAll(ctx context.Context) ([]queries.UserView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+userViewColumns+` FROM users ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list users", err)
	}
	defer rows.Close()

	views := make([]queries.UserView, 0)
	for rows.Next() {
		view, err := scanUserView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan user row", err)
		}
		views = append(views, *view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate user rows", err)
	}
	return views, nil
}

func scanUserView(row pgx.Row) (*queries.UserView, error) {
	var view queries.UserView
	err := row.Scan(
		&view.ID, &view.Nombre, &view.Apellido, &view.DNI,
		&view.Email, &view.Telefono, &view.Rol, &view.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &view, nil
}
