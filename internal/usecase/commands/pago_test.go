//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"salon-reservas/internal/domain/booking"
	reqdto "salon-reservas/internal/handler/dto/request"
	"salon-reservas/internal/infra"
	"salon-reservas/internal/pkg/clock"
	"salon-reservas/internal/pkg/config"
	"salon-reservas/internal/usecase/commands"
	"salon-reservas/internal/usecase/queries"
	commandsmock "salon-reservas/tests/mock/commands"
	queriesmock "salon-reservas/tests/mock/queries"
)

type PaymentCommandsTestSuite struct {
	suite.Suite
	mockCtrl            *gomock.Controller
	mockPaymentRepo     *commandsmock.MockPaymentRepository
	mockReservationRepo *commandsmock.MockReservationRepository
	mockReadStore       *queriesmock.MockReservationReadStore
	mockCache           *commandsmock.MockCalendarInvalidator
	clock               *clock.MockClock
	commands            commands.PaymentCommands
}

func (s *PaymentCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockPaymentRepo = commandsmock.NewMockPaymentRepository(s.mockCtrl)
	s.mockReservationRepo = commandsmock.NewMockReservationRepository(s.mockCtrl)
	s.mockReadStore = queriesmock.NewMockReservationReadStore(s.mockCtrl)
	s.mockCache = commandsmock.NewMockCalendarInvalidator(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Date(2025, 5, 10, 12, 0, 0, 0, time.UTC))

	s.commands = commands.NewPaymentCommands(
		s.mockPaymentRepo,
		s.mockReservationRepo,
		s.mockReadStore,
		s.mockCache,
		s.clock,
		config.NewTestConfig(),
	)
}

func (s *PaymentCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPaymentCommandsSuite(t *testing.T) {
	suite.Run(t, new(PaymentCommandsTestSuite))
}

func (s *PaymentCommandsTestSuite) reservation(status booking.Status, rentalValue float64) *booking.Reservation {
	receipt := "https://storage.example.com/comprobantes/abc.jpg"
	now := s.clock.Now()
	return booking.ReconstructReservation(
		uuid.New(), uuid.New(), uuid.New(),
		rentalValue, status, &receipt,
		now.AddDate(0, 0, -7), "203.0.113.9", "1.0",
		nil, now.AddDate(0, 0, -7), now.AddDate(0, 0, -7),
	)
}

func (s *PaymentCommandsTestSuite) payment(reservationID uuid.UUID, amount float64) booking.Payment {
	return booking.ReconstructPayment(uuid.New(), reservationID, amount, s.clock.Now().AddDate(0, 0, -1))
}

func (s *PaymentCommandsTestSuite) TestAddPayment() {
	s.Run("success: registers the payment and returns the refreshed view", func() {
		reservation := s.reservation(booking.StatusConfirmed, 100000)
		existing := []booking.Payment{s.payment(reservation.ID(), 30000)}
		view := &queries.ReservationView{ID: reservation.ID(), SaldoRestante: 20000}

		s.mockReservationRepo.EXPECT().FindByID(gomock.Any(), reservation.ID()).Return(reservation, nil).Times(1)
		s.mockReservationRepo.EXPECT().FindPayments(gomock.Any(), reservation.ID()).Return(existing, nil).Times(1)
		s.mockPaymentRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p booking.Payment) error {
				s.Equal(reservation.ID(), p.ReservationID())
				s.Equal(50000.0, p.Amount())
				s.Equal(s.clock.Now(), p.PaidAt())
				return nil
			}).Times(1)
		s.mockReadStore.EXPECT().FindViewByID(gomock.Any(), reservation.ID()).Return(view, nil).Times(1)

		got, err := s.commands.AddPayment(context.Background(), reservation.ID(), reqdto.CreatePaymentRequest{Monto: 50000})

		s.Require().NoError(err)
		s.Equal(view, got)
	})

	s.Run("error: unknown reservation", func() {
		id := uuid.New()
		s.mockReservationRepo.EXPECT().FindByID(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)).Times(1)

		got, err := s.commands.AddPayment(context.Background(), id, reqdto.CreatePaymentRequest{Monto: 1000})

		s.Require().ErrorIs(err, commands.ErrReservationNotFound)
		s.Nil(got)
	})

	s.Run("error: archived reservations reject payments before touching the ledger", func() {
		reservation := s.reservation(booking.StatusArchived, 100000)
		s.mockReservationRepo.EXPECT().FindByID(gomock.Any(), reservation.ID()).Return(reservation, nil).Times(1)

		got, err := s.commands.AddPayment(context.Background(), reservation.ID(), reqdto.CreatePaymentRequest{Monto: 1000})

		s.Require().ErrorIs(err, commands.ErrPaymentOnArchived)
		s.Nil(got)
	})

	s.Run("error: amount above the remaining balance", func() {
		reservation := s.reservation(booking.StatusConfirmed, 100000)
		existing := []booking.Payment{s.payment(reservation.ID(), 70000)}

		s.mockReservationRepo.EXPECT().FindByID(gomock.Any(), reservation.ID()).Return(reservation, nil).Times(1)
		s.mockReservationRepo.EXPECT().FindPayments(gomock.Any(), reservation.ID()).Return(existing, nil).Times(1)

		got, err := s.commands.AddPayment(context.Background(), reservation.ID(), reqdto.CreatePaymentRequest{Monto: 30000.01})

		s.Require().ErrorIs(err, booking.ErrAmountExceedsBalance)
		s.Nil(got)
	})

	s.Run("error: non-positive amount", func() {
		reservation := s.reservation(booking.StatusPending, 100000)

		s.mockReservationRepo.EXPECT().FindByID(gomock.Any(), reservation.ID()).Return(reservation, nil).Times(1)
		s.mockReservationRepo.EXPECT().FindPayments(gomock.Any(), reservation.ID()).Return(nil, nil).Times(1)

		got, err := s.commands.AddPayment(context.Background(), reservation.ID(), reqdto.CreatePaymentRequest{Monto: 0})

		s.Require().ErrorIs(err, booking.ErrNonPositiveAmount)
		s.Nil(got)
	})
}

func (s *PaymentCommandsTestSuite) TestDeletePayment() {
	const masterPassword = "test-master"

	s.Run("success: deletes with the right master password", func() {
		reservationID := uuid.New()
		payment := s.payment(reservationID, 25000)
		view := &queries.ReservationView{ID: reservationID, SaldoRestante: 100000}

		s.mockPaymentRepo.EXPECT().FindByID(gomock.Any(), payment.ID()).Return(payment, nil).Times(1)
		s.mockPaymentRepo.EXPECT().Delete(gomock.Any(), payment.ID()).Return(nil).Times(1)
		s.mockReadStore.EXPECT().FindViewByID(gomock.Any(), reservationID).Return(view, nil).Times(1)

		got, err := s.commands.DeletePayment(context.Background(), reservationID, payment.ID(), masterPassword)

		s.Require().NoError(err)
		s.Equal(view, got)
	})

	s.Run("error: wrong master password never reaches storage", func() {
		got, err := s.commands.DeletePayment(context.Background(), uuid.New(), uuid.New(), "not-the-password")

		s.Require().ErrorIs(err, commands.ErrMasterPasswordWrong)
		s.Nil(got)
	})

	s.Run("error: empty master password is rejected", func() {
		got, err := s.commands.DeletePayment(context.Background(), uuid.New(), uuid.New(), "")

		s.Require().ErrorIs(err, commands.ErrMasterPasswordWrong)
		s.Nil(got)
	})

	s.Run("error: unknown payment", func() {
		paymentID := uuid.New()
		s.mockPaymentRepo.EXPECT().FindByID(gomock.Any(), paymentID).
			Return(booking.Payment{}, infra.WrapRepoErr("payment not found", nil, infra.KindNotFound)).Times(1)

		got, err := s.commands.DeletePayment(context.Background(), uuid.New(), paymentID, masterPassword)

		s.Require().ErrorIs(err, commands.ErrPaymentNotFound)
		s.Nil(got)
	})

	s.Run("error: payment belonging to another reservation reads as not found", func() {
		payment := s.payment(uuid.New(), 25000)

		s.mockPaymentRepo.EXPECT().FindByID(gomock.Any(), payment.ID()).Return(payment, nil).Times(1)

		got, err := s.commands.DeletePayment(context.Background(), uuid.New(), payment.ID(), masterPassword)

		s.Require().ErrorIs(err, commands.ErrPaymentNotFound)
		s.Nil(got)
	})
}
