package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"salon-reservas/internal/domain/user"
	"salon-reservas/internal/infra"
	"salon-reservas/internal/pkg/pgconv"
)

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO users (id, first_name, last_name, dni, email, phone, password_hash, role, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now(), now())`,
		u.ID(), u.FirstName(), u.LastName(), u.DNI().Value(), u.Email().Value(),
		u.Phone(), u.PasswordHash(), u.Role().String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create user", err, classify(err))
	}
	return nil
}

func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE users SET first_name = $2, last_name = $3, phone = $4, role = $5, updated_at = now()
		 WHERE id = $1`,
		u.ID(), u.FirstName(), u.LastName(), u.Phone(), u.Role().String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update user", err, classify(err))
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *UserRepository) UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE users SET password_hash = $2, updated_at = now() WHERE id = $1`,
		id, hash,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update password", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete user", err, classify(err))
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, first_name, last_name, dni, email, phone, password_hash, role, created_at, updated_at
		 FROM users WHERE id = $1`,
		id,
	)

	var (
		userID               uuid.UUID
		firstName, lastName  string
		dniRaw, emailRaw     string
		phone, passwordHash  string
		roleRaw              string
		createdAt, updatedAt time.Time
	)
	err := row.Scan(&userID, &firstName, &lastName, &dniRaw, &emailRaw, &phone, &passwordHash, &roleRaw, &createdAt, &updatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user", err)
	}

	dni, err := user.NewDNI(dniRaw)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt dni on user row", err)
	}
	email, err := user.NewEmail(emailRaw)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt email on user row", err)
	}
	role, err := user.NewRole(roleRaw)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt role on user row", err)
	}

	return user.ReconstructUser(userID, firstName, lastName, dni, email, phone, passwordHash, role, createdAt, updatedAt), nil
}
