package commands

import (
	"context"
	"crypto/subtle"

	"github.com/google/uuid"

	"salon-reservas/internal/domain/booking"
	reqdto "salon-reservas/internal/handler/dto/request"
	"salon-reservas/internal/infra"
	"salon-reservas/internal/pkg/clock"
	"salon-reservas/internal/pkg/config"
	"salon-reservas/internal/pkg/errs"
	"salon-reservas/internal/usecase/queries"
)

var (
	ErrPaymentNotFound     = errs.New("payment not found")
	ErrMasterPasswordWrong = errs.New("master password mismatch")
	ErrPaymentOnArchived   = errs.New("cannot register payments on an archived reservation")
)

type PaymentRepository interface {
	Create(ctx context.Context, p booking.Payment) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (booking.Payment, error)
}

type PaymentCommands interface {
	AddPayment(ctx context.Context, reservationID uuid.UUID, req reqdto.CreatePaymentRequest) (*queries.ReservationView, error)
	DeletePayment(ctx context.Context, reservationID, paymentID uuid.UUID, masterPassword string) (*queries.ReservationView, error)
}

type paymentCommandsImpl struct {
	paymentRepo     PaymentRepository
	reservationRepo ReservationRepository
	readStore       queries.ReservationReadStore
	cache           CalendarInvalidator
	clock           clock.Clock
	masterPassword  string
}

func NewPaymentCommands(
	paymentRepo PaymentRepository,
	reservationRepo ReservationRepository,
	readStore queries.ReservationReadStore,
	cache CalendarInvalidator,
	clk clock.Clock,
	cfg config.Config,
) PaymentCommands {
	return &paymentCommandsImpl{
		paymentRepo:     paymentRepo,
		reservationRepo: reservationRepo,
		readStore:       readStore,
		cache:           cache,
		clock:           clk,
		masterPassword:  cfg.Business.MasterPassword,
	}
}

func (c *paymentCommandsImpl) AddPayment(
	ctx context.Context,
	reservationID uuid.UUID,
	req reqdto.CreatePaymentRequest,
) (*queries.ReservationView, error) {
	reservation, err := c.reservationRepo.FindByID(ctx, reservationID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	if reservation.Status() == booking.StatusArchived {
		return nil, ErrPaymentOnArchived
	}

	payments, err := c.reservationRepo.FindPayments(ctx, reservationID)
	if err != nil {
		return nil, err
	}

	if err := reservation.ValidatePayment(req.Monto, payments); err != nil {
		return nil, err
	}

	payment, err := booking.NewPayment(reservationID, req.Monto, c.clock.Now())
	if err != nil {
		return nil, err
	}
	if err := c.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}

	return c.readStore.FindViewByID(ctx, reservationID)
}

// DeletePayment corrects a mistyped amount. It is destructive for the
// ledger, so it demands the master password on every call.
func (c *paymentCommandsImpl) DeletePayment(
	ctx context.Context,
	reservationID, paymentID uuid.UUID,
	masterPassword string,
) (*queries.ReservationView, error) {
	if subtle.ConstantTimeCompare([]byte(masterPassword), []byte(c.masterPassword)) != 1 {
		return nil, ErrMasterPasswordWrong
	}

	payment, err := c.paymentRepo.FindByID(ctx, paymentID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	if payment.ReservationID() != reservationID {
		return nil, ErrPaymentNotFound
	}

	if err := c.paymentRepo.Delete(ctx, paymentID); err != nil {
		return nil, err
	}

	return c.readStore.FindViewByID(ctx, reservationID)
}
