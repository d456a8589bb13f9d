package booking

type Status string

const (
	StatusPending   Status = "pendiente"
	StatusConfirmed Status = "confirmada"
	StatusCanceled  Status = "cancelada"
	StatusArchived  Status = "archivada"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCanceled, StatusArchived:
		return true
	default:
		return false
	}
}

// IsActive reports whether the reservation shows up in the main admin list.
// Archived ones live behind a separate listing.
func (s Status) IsActive() bool {
	return s != StatusArchived
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}
