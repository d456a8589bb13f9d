package commands

import (
	"context"

	"github.com/google/uuid"

	"salon-reservas/internal/domain/user"
	reqdto "salon-reservas/internal/handler/dto/request"
	"salon-reservas/internal/infra"
	"salon-reservas/internal/pkg/errs"
	"salon-reservas/internal/usecase/queries"
)

var ErrUserHasReservations = errs.New("user still has reservations")

type UserCommands interface {
	UpdateUser(ctx context.Context, id uuid.UUID, req reqdto.UpdateUserRequest) (*queries.UserView, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
}

type userCommandsImpl struct {
	userRepo  UserRepository
	readStore queries.UserReadStore
}

func NewUserCommands(userRepo UserRepository, readStore queries.UserReadStore) UserCommands {
	return &userCommandsImpl{userRepo: userRepo, readStore: readStore}
}

func (c *userCommandsImpl) UpdateUser(ctx context.Context, id uuid.UUID, req reqdto.UpdateUserRequest) (*queries.UserView, error) {
	u, err := c.userRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, queries.ErrUserNotFound
		}
		return nil, err
	}

	firstName := u.FirstName()
	if req.Nombre != nil {
		firstName = *req.Nombre
	}
	lastName := u.LastName()
	if req.Apellido != nil {
		lastName = *req.Apellido
	}
	phone := u.Phone()
	if req.Telefono != nil {
		phone = *req.Telefono
	}
	role := u.Role()
	if req.Rol != nil {
		role, err = user.NewRole(*req.Rol)
		if err != nil {
			return nil, err
		}
	}

	updated := user.ReconstructUser(
		u.ID(), firstName, lastName, u.DNI(), u.Email(), phone,
		u.PasswordHash(), role, u.CreatedAt(), u.UpdatedAt(),
	)

	if err := c.userRepo.Update(ctx, updated); err != nil {
		return nil, err
	}

	return c.readStore.FindByID(ctx, id)
}

func (c *userCommandsImpl) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if err := c.userRepo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return queries.ErrUserNotFound
		}
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return ErrUserHasReservations
		}
		return err
	}
	return nil
}
