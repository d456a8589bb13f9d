package schedule

// DayStatus is the configured availability state of a calendar day.
// Absence of a Day record means StatusAvailable with no price.
type DayStatus string

const (
	StatusAvailable DayStatus = "disponible"
	StatusPending   DayStatus = "pendiente"
	StatusReserved  DayStatus = "reservada"
)

func (s DayStatus) String() string {
	return string(s)
}

func (s DayStatus) IsValid() bool {
	switch s {
	case StatusAvailable, StatusPending, StatusReserved:
		return true
	default:
		return false
	}
}

func NewDayStatus(s string) (DayStatus, error) {
	status := DayStatus(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// CellState is what the calendar reports per rendered day. It extends
// DayStatus with the computed past marker, which always wins.
type CellState string

const (
	CellPast      CellState = "pasada"
	CellAvailable CellState = "disponible"
	CellPending   CellState = "pendiente"
	CellReserved  CellState = "reservada"
)
