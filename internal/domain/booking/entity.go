package booking

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus        = errors.New("invalid reservation status")
	ErrContractNotAccepted  = errors.New("contract terms must be accepted")
	ErrReceiptRequired      = errors.New("payment receipt is required")
	ErrNegativeRental       = errors.New("rental value cannot be negative")
	ErrArchived             = errors.New("reservation is archived")
	ErrHasPayments          = errors.New("No se puede eliminar una reserva que tiene pagos registrados")
	ErrNonPositiveAmount    = errors.New("payment amount must be positive")
	ErrAmountExceedsBalance = errors.New("payment amount exceeds the remaining balance")
)

// Reservation ties a user to an event day. The outstanding balance is never
// stored: it is always derived from the rental value and the payment list,
// so no client-computed figure can drift from the ledger.
type Reservation struct {
	id              uuid.UUID
	userID          uuid.UUID
	dayID           uuid.UUID
	rentalValue     float64
	status          Status
	receiptURL      *string
	acceptedAt      time.Time
	acceptanceIP    string
	contractVersion string
	expiresAt       *time.Time
	createdAt       time.Time
	updatedAt       time.Time
}

// Acceptance carries the contract acceptance evidence recorded at request
// time: the checkbox state, the client address and the receipt reference.
type Acceptance struct {
	Accepted   bool
	IP         string
	ReceiptURL string
	AcceptedAt time.Time
}

func NewReservation(
	userID, dayID uuid.UUID,
	rentalValue float64,
	acceptance Acceptance,
	contractVersion string,
) (*Reservation, error) {
	if !acceptance.Accepted {
		return nil, ErrContractNotAccepted
	}
	receipt := strings.TrimSpace(acceptance.ReceiptURL)
	if receipt == "" {
		return nil, ErrReceiptRequired
	}
	if rentalValue < 0 {
		return nil, ErrNegativeRental
	}

	return &Reservation{
		id:              uuid.New(),
		userID:          userID,
		dayID:           dayID,
		rentalValue:     rentalValue,
		status:          StatusPending,
		receiptURL:      &receipt,
		acceptedAt:      acceptance.AcceptedAt,
		acceptanceIP:    acceptance.IP,
		contractVersion: contractVersion,
	}, nil
}

// NewAdminReservation registers a booking taken over the counter. The
// administrator vouches for the client, so the receipt is optional and
// the acceptance evidence records the admin's address.
func NewAdminReservation(
	userID, dayID uuid.UUID,
	rentalValue float64,
	receiptURL *string,
	acceptanceIP string,
	acceptedAt time.Time,
	contractVersion string,
) (*Reservation, error) {
	if rentalValue < 0 {
		return nil, ErrNegativeRental
	}
	if receiptURL != nil {
		trimmed := strings.TrimSpace(*receiptURL)
		if trimmed == "" {
			receiptURL = nil
		} else {
			receiptURL = &trimmed
		}
	}

	return &Reservation{
		id:              uuid.New(),
		userID:          userID,
		dayID:           dayID,
		rentalValue:     rentalValue,
		status:          StatusPending,
		receiptURL:      receiptURL,
		acceptedAt:      acceptedAt,
		acceptanceIP:    acceptanceIP,
		contractVersion: contractVersion,
	}, nil
}

func ReconstructReservation(
	id, userID, dayID uuid.UUID,
	rentalValue float64,
	status Status,
	receiptURL *string,
	acceptedAt time.Time,
	acceptanceIP, contractVersion string,
	expiresAt *time.Time,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:              id,
		userID:          userID,
		dayID:           dayID,
		rentalValue:     rentalValue,
		status:          status,
		receiptURL:      receiptURL,
		acceptedAt:      acceptedAt,
		acceptanceIP:    acceptanceIP,
		contractVersion: contractVersion,
		expiresAt:       expiresAt,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

func (r *Reservation) SetRentalValue(v float64) error {
	if v < 0 {
		return ErrNegativeRental
	}
	r.rentalValue = v
	return nil
}

func (r *Reservation) SetStatus(s Status) error {
	if !s.IsValid() {
		return ErrInvalidStatus
	}
	r.status = s
	return nil
}

func (r *Reservation) SetExpiresAt(t *time.Time) {
	r.expiresAt = t
}

// Archive soft-deletes the reservation. A reservation with recorded
// payments must keep its ledger visible and cannot be archived.
func (r *Reservation) Archive(paymentCount int) error {
	if paymentCount > 0 {
		return ErrHasPayments
	}
	r.status = StatusArchived
	return nil
}

// OutstandingBalance is the saldo restante: rental value minus everything
// already paid.
func (r *Reservation) OutstandingBalance(payments []Payment) float64 {
	paid := 0.0
	for _, p := range payments {
		paid += p.Amount()
	}
	return r.rentalValue - paid
}

// ValidatePayment enforces the ledger invariants at registration time:
// positive amount, never past the remaining balance, never on an archived
// reservation.
func (r *Reservation) ValidatePayment(amount float64, payments []Payment) error {
	if r.status == StatusArchived {
		return ErrArchived
	}
	if amount <= 0 {
		return ErrNonPositiveAmount
	}
	if amount > r.OutstandingBalance(payments) {
		return ErrAmountExceedsBalance
	}
	return nil
}

func (r *Reservation) ID() uuid.UUID           { return r.id }
func (r *Reservation) UserID() uuid.UUID       { return r.userID }
func (r *Reservation) DayID() uuid.UUID        { return r.dayID }
func (r *Reservation) RentalValue() float64    { return r.rentalValue }
func (r *Reservation) Status() Status          { return r.status }
func (r *Reservation) ReceiptURL() *string     { return r.receiptURL }
func (r *Reservation) AcceptedAt() time.Time   { return r.acceptedAt }
func (r *Reservation) AcceptanceIP() string    { return r.acceptanceIP }
func (r *Reservation) ContractVersion() string { return r.contractVersion }
func (r *Reservation) ExpiresAt() *time.Time   { return r.expiresAt }
func (r *Reservation) CreatedAt() time.Time    { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time    { return r.updatedAt }

// Payment is one entry of a reservation's ledger.
type Payment struct {
	id            uuid.UUID
	reservationID uuid.UUID
	amount        float64
	paidAt        time.Time
}

func NewPayment(reservationID uuid.UUID, amount float64, paidAt time.Time) (Payment, error) {
	if amount <= 0 {
		return Payment{}, ErrNonPositiveAmount
	}
	return Payment{
		id:            uuid.New(),
		reservationID: reservationID,
		amount:        amount,
		paidAt:        paidAt,
	}, nil
}

func ReconstructPayment(id, reservationID uuid.UUID, amount float64, paidAt time.Time) Payment {
	return Payment{id: id, reservationID: reservationID, amount: amount, paidAt: paidAt}
}

func (p Payment) ID() uuid.UUID            { return p.id }
func (p Payment) ReservationID() uuid.UUID { return p.reservationID }
func (p Payment) Amount() float64          { return p.amount }
func (p Payment) PaidAt() time.Time        { return p.paidAt }
