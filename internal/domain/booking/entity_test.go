//go:build unit

package booking_test

import (
	"testing"
	"time"

	"salon-reservas/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func acceptance() booking.Acceptance {
	return booking.Acceptance{
		Accepted:   true,
		IP:         "203.0.113.7",
		ReceiptURL: "https://storage.example.com/comprobantes/abc.jpg",
		AcceptedAt: time.Date(2025, time.March, 10, 14, 30, 0, 0, time.UTC),
	}
}

func TestNewReservation(t *testing.T) {
	userID := uuid.New()
	dayID := uuid.New()

	t.Run("basic success case", func(t *testing.T) {
		r, err := booking.NewReservation(userID, dayID, 180000, acceptance(), "1.0")
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, r.ID())
		assert.Equal(t, booking.StatusPending, r.Status())
		assert.Equal(t, 180000.0, r.RentalValue())
		require.NotNil(t, r.ReceiptURL())
		assert.Equal(t, "https://storage.example.com/comprobantes/abc.jpg", *r.ReceiptURL())
		assert.Equal(t, "203.0.113.7", r.AcceptanceIP())
		assert.Equal(t, "1.0", r.ContractVersion())
	})

	t.Run("contract not accepted", func(t *testing.T) {
		a := acceptance()
		a.Accepted = false
		_, err := booking.NewReservation(userID, dayID, 180000, a, "1.0")
		assert.ErrorIs(t, err, booking.ErrContractNotAccepted)
	})

	t.Run("blank receipt", func(t *testing.T) {
		a := acceptance()
		a.ReceiptURL = "   "
		_, err := booking.NewReservation(userID, dayID, 180000, a, "1.0")
		assert.ErrorIs(t, err, booking.ErrReceiptRequired)
	})

	t.Run("negative rental", func(t *testing.T) {
		_, err := booking.NewReservation(userID, dayID, -1, acceptance(), "1.0")
		assert.ErrorIs(t, err, booking.ErrNegativeRental)
	})
}

func TestNewAdminReservation(t *testing.T) {
	userID := uuid.New()
	dayID := uuid.New()
	now := time.Date(2025, time.March, 10, 10, 0, 0, 0, time.UTC)

	t.Run("receipt is optional", func(t *testing.T) {
		r, err := booking.NewAdminReservation(userID, dayID, 200000, nil, "198.51.100.1", now, "1.0")
		require.NoError(t, err)
		assert.Nil(t, r.ReceiptURL())
		assert.Equal(t, booking.StatusPending, r.Status())
	})

	t.Run("blank receipt collapses to nil", func(t *testing.T) {
		blank := "  "
		r, err := booking.NewAdminReservation(userID, dayID, 200000, &blank, "198.51.100.1", now, "1.0")
		require.NoError(t, err)
		assert.Nil(t, r.ReceiptURL())
	})
}

func TestOutstandingBalance(t *testing.T) {
	r, err := booking.NewReservation(uuid.New(), uuid.New(), 100000, acceptance(), "1.0")
	require.NoError(t, err)

	assert.Equal(t, 100000.0, r.OutstandingBalance(nil))

	p1, err := booking.NewPayment(r.ID(), 30000, time.Now())
	require.NoError(t, err)
	p2, err := booking.NewPayment(r.ID(), 50000, time.Now())
	require.NoError(t, err)

	assert.Equal(t, 20000.0, r.OutstandingBalance([]booking.Payment{p1, p2}))
}

func TestValidatePayment(t *testing.T) {
	r, err := booking.NewReservation(uuid.New(), uuid.New(), 100000, acceptance(), "1.0")
	require.NoError(t, err)

	paid, err := booking.NewPayment(r.ID(), 60000, time.Now())
	require.NoError(t, err)
	ledger := []booking.Payment{paid}

	cases := []struct {
		name   string
		amount float64
		errIs  error
	}{
		{name: "partial payment", amount: 10000},
		{name: "exact remaining balance", amount: 40000},
		{name: "zero amount", amount: 0, errIs: booking.ErrNonPositiveAmount},
		{name: "negative amount", amount: -5, errIs: booking.ErrNonPositiveAmount},
		{name: "over the balance", amount: 40000.01, errIs: booking.ErrAmountExceedsBalance},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := r.ValidatePayment(tc.amount, ledger)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			assert.NoError(t, err)
		})
	}

	t.Run("archived reservation rejects payments", func(t *testing.T) {
		require.NoError(t, r.Archive(0))
		assert.ErrorIs(t, r.ValidatePayment(1000, nil), booking.ErrArchived)
	})
}

func TestArchive(t *testing.T) {
	r, err := booking.NewReservation(uuid.New(), uuid.New(), 100000, acceptance(), "1.0")
	require.NoError(t, err)

	t.Run("refused while payments exist", func(t *testing.T) {
		err := r.Archive(2)
		assert.ErrorIs(t, err, booking.ErrHasPayments)
		assert.Equal(t, booking.StatusPending, r.Status())
	})

	t.Run("archives with an empty ledger", func(t *testing.T) {
		require.NoError(t, r.Archive(0))
		assert.Equal(t, booking.StatusArchived, r.Status())
	})
}

func TestNewPayment(t *testing.T) {
	_, err := booking.NewPayment(uuid.New(), 0, time.Now())
	assert.ErrorIs(t, err, booking.ErrNonPositiveAmount)

	p, err := booking.NewPayment(uuid.New(), 2500.50, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 2500.50, p.Amount())
	assert.NotEqual(t, uuid.Nil, p.ID())
}
