package ledger

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyDescription  = errors.New("description cannot be empty")
	ErrInvalidCategory   = errors.New("invalid expense category")
	ErrNonPositiveAmount = errors.New("expense amount must be positive")
)

type Category string

const (
	CategoryServices Category = "Servicios"
	CategorySupplies Category = "Insumos"
	CategoryOther    Category = "Otros"
)

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	switch c {
	case CategoryServices, CategorySupplies, CategoryOther:
		return true
	default:
		return false
	}
}

func NewCategory(s string) (Category, error) {
	c := Category(s)
	if !c.IsValid() {
		return "", ErrInvalidCategory
	}
	return c, nil
}

// Expense is one dated outgoing: venue services, supplies or everything else.
type Expense struct {
	id          uuid.UUID
	description string
	amount      float64
	category    Category
	date        time.Time
	createdAt   time.Time
}

func NewExpense(description string, amount float64, category Category, date time.Time) (*Expense, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, ErrEmptyDescription
	}
	if amount <= 0 {
		return nil, ErrNonPositiveAmount
	}
	if !category.IsValid() {
		return nil, ErrInvalidCategory
	}

	return &Expense{
		id:          uuid.New(),
		description: description,
		amount:      amount,
		category:    category,
		date:        time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC),
	}, nil
}

func ReconstructExpense(id uuid.UUID, description string, amount float64, category Category, date, createdAt time.Time) *Expense {
	return &Expense{
		id:          id,
		description: description,
		amount:      amount,
		category:    category,
		date:        date,
		createdAt:   createdAt,
	}
}

func (e *Expense) ID() uuid.UUID       { return e.id }
func (e *Expense) Description() string { return e.description }
func (e *Expense) Amount() float64     { return e.amount }
func (e *Expense) Category() Category  { return e.category }
func (e *Expense) Date() time.Time     { return e.date }
func (e *Expense) CreatedAt() time.Time { return e.createdAt }
