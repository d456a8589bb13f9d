package schedule

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus = errors.New("invalid day status")
	ErrNegativePrice = errors.New("estimated price cannot be negative")
	ErrDayNotFree    = errors.New("day is not available")
	ErrDayInPast     = errors.New("day is in the past")
)

// Day is one explicitly configured calendar date: its availability status
// and, optionally, the estimated rental price shown on the public calendar.
type Day struct {
	id             uuid.UUID
	date           time.Time // midnight UTC, date-only
	status         DayStatus
	estimatedPrice *float64
	createdAt      time.Time
	updatedAt      time.Time
}

func NewDay(date time.Time, status DayStatus, estimatedPrice *float64) (*Day, error) {
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	if estimatedPrice != nil && *estimatedPrice < 0 {
		return nil, ErrNegativePrice
	}

	return &Day{
		id:             uuid.New(),
		date:           Normalize(date),
		status:         status,
		estimatedPrice: estimatedPrice,
	}, nil
}

func ReconstructDay(
	id uuid.UUID,
	date time.Time,
	status DayStatus,
	estimatedPrice *float64,
	createdAt, updatedAt time.Time,
) *Day {
	return &Day{
		id:             id,
		date:           Normalize(date),
		status:         status,
		estimatedPrice: estimatedPrice,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

// Normalize truncates any instant to its date-only canonical form.
func Normalize(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func (d *Day) SetStatus(status DayStatus) error {
	if !status.IsValid() {
		return ErrInvalidStatus
	}
	d.status = status
	return nil
}

func (d *Day) SetEstimatedPrice(price *float64) error {
	if price != nil && *price < 0 {
		return ErrNegativePrice
	}
	d.estimatedPrice = price
	return nil
}

// Bookable reports whether a reservation request may target this day.
// today is the business-zone current date.
func (d *Day) Bookable(today time.Time) error {
	if d.date.Before(today) {
		return ErrDayInPast
	}
	if d.status != StatusAvailable {
		return ErrDayNotFree
	}
	return nil
}

func (d *Day) ID() uuid.UUID            { return d.id }
func (d *Day) Date() time.Time          { return d.date }
func (d *Day) ISODate() string          { return d.date.Format("2006-01-02") }
func (d *Day) Status() DayStatus        { return d.status }
func (d *Day) EstimatedPrice() *float64 { return d.estimatedPrice }
func (d *Day) CreatedAt() time.Time     { return d.createdAt }
func (d *Day) UpdatedAt() time.Time     { return d.updatedAt }
