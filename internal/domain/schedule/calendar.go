package schedule

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrMonthBeforeCurrent = errors.New("month is before the current month")
	ErrMonthBeyondHorizon = errors.New("month is beyond the booking horizon")
	ErrInvalidMonth       = errors.New("invalid month")
)

// Cell is one day of the rendered month grid. Days strictly before today
// are CellPast no matter what status is configured; unconfigured future
// days default to available with no price.
type Cell struct {
	Date           time.Time
	State          CellState
	EstimatedPrice *float64
}

// Month identifies a calendar month for navigation clamping.
type Month struct {
	Year  int
	Month time.Month
}

func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

func (m Month) AddMonths(n int) Month {
	t := time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, n, 0)
	return Month{Year: t.Year(), Month: t.Month()}
}

func (m Month) index() int {
	return m.Year*12 + int(m.Month) - 1
}

func (m Month) Before(other Month) bool {
	return m.index() < other.index()
}

func (m Month) After(other Month) bool {
	return m.index() > other.index()
}

// String renders the month as "YYYY-MM", the key format used on the
// wire and in cache keys.
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// ValidateNavigation clamps calendar navigation: never behind the month
// containing today, never more than horizonMonths ahead of it.
func ValidateNavigation(m Month, today time.Time, horizonMonths int) error {
	if m.Month < time.January || m.Month > time.December {
		return ErrInvalidMonth
	}
	current := MonthOf(today)
	if m.Before(current) {
		return ErrMonthBeforeCurrent
	}
	if m.After(current.AddMonths(horizonMonths)) {
		return ErrMonthBeyondHorizon
	}
	return nil
}

// BuildMonthGrid renders the configured days of a month into calendar cells.
// days may contain entries for other months; they are ignored.
func BuildMonthGrid(m Month, today time.Time, days []*Day) []Cell {
	byDate := make(map[string]*Day, len(days))
	for _, d := range days {
		byDate[d.ISODate()] = d
	}

	today = Normalize(today)
	first := time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	cells := make([]Cell, 0, daysInMonth)
	for i := 0; i < daysInMonth; i++ {
		date := first.AddDate(0, 0, i)
		cells = append(cells, buildCell(date, today, byDate[date.Format("2006-01-02")]))
	}
	return cells
}

func buildCell(date, today time.Time, day *Day) Cell {
	if date.Before(today) {
		// Past always wins; the configured status is irrelevant.
		return Cell{Date: date, State: CellPast}
	}
	if day == nil {
		return Cell{Date: date, State: CellAvailable}
	}

	cell := Cell{Date: date, EstimatedPrice: day.EstimatedPrice()}
	switch day.Status() {
	case StatusPending:
		cell.State = CellPending
	case StatusReserved:
		cell.State = CellReserved
	default:
		cell.State = CellAvailable
	}
	return cell
}

// WeekdaysInRange lists every date with the given weekday from `from`
// (inclusive) through `months` calendar months ahead. Bulk pricing walks
// this list and touches only dates that already have a configured record.
func WeekdaysInRange(from time.Time, weekday time.Weekday, months int) []time.Time {
	from = Normalize(from)
	end := from.AddDate(0, months, 0)

	// Advance to the first matching weekday.
	offset := (int(weekday) - int(from.Weekday()) + 7) % 7
	cursor := from.AddDate(0, 0, offset)

	var dates []time.Time
	for !cursor.After(end) {
		dates = append(dates, cursor)
		cursor = cursor.AddDate(0, 0, 7)
	}
	return dates
}
