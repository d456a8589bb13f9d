//go:build unit

package schedule_test

import (
	"errors"
	"testing"
	"time"

	"salon-reservas/internal/domain/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func price(v float64) *float64 { return &v }

func TestValidateNavigation(t *testing.T) {
	today := date(2025, time.March, 15)
	horizon := 6

	cases := []struct {
		name  string
		month schedule.Month
		errIs error
	}{
		{name: "current month", month: schedule.Month{Year: 2025, Month: time.March}},
		{name: "last month within horizon", month: schedule.Month{Year: 2025, Month: time.September}},
		{name: "previous month", month: schedule.Month{Year: 2025, Month: time.February}, errIs: schedule.ErrMonthBeforeCurrent},
		{name: "previous year same month", month: schedule.Month{Year: 2024, Month: time.March}, errIs: schedule.ErrMonthBeforeCurrent},
		{name: "one past the horizon", month: schedule.Month{Year: 2025, Month: time.October}, errIs: schedule.ErrMonthBeyondHorizon},
		{name: "month zero", month: schedule.Month{Year: 2025, Month: 0}, errIs: schedule.ErrInvalidMonth},
		{name: "month thirteen", month: schedule.Month{Year: 2025, Month: 13}, errIs: schedule.ErrInvalidMonth},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := schedule.ValidateNavigation(tc.month, today, horizon)
			if tc.errIs != nil {
				assert.True(t, errors.Is(err, tc.errIs))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestMonthString(t *testing.T) {
	m := schedule.Month{Year: 2025, Month: time.March}
	assert.Equal(t, "2025-03", m.String())
	assert.Equal(t, "2025-12", m.AddMonths(9).String())
	assert.Equal(t, "2026-01", m.AddMonths(10).String())
}

func TestBuildMonthGrid(t *testing.T) {
	today := date(2025, time.March, 15)
	month := schedule.Month{Year: 2025, Month: time.March}

	reserved, err := schedule.NewDay(date(2025, time.March, 20), schedule.StatusReserved, price(150000))
	require.NoError(t, err)
	pending, err := schedule.NewDay(date(2025, time.March, 22), schedule.StatusPending, nil)
	require.NoError(t, err)
	// Configured but in the past: the grid must show it as past anyway.
	stale, err := schedule.NewDay(date(2025, time.March, 10), schedule.StatusReserved, price(90000))
	require.NoError(t, err)
	// Wrong month, must be ignored.
	other, err := schedule.NewDay(date(2025, time.April, 2), schedule.StatusReserved, nil)
	require.NoError(t, err)

	cells := schedule.BuildMonthGrid(month, today, []*schedule.Day{reserved, pending, stale, other})
	require.Len(t, cells, 31)

	byDay := make(map[int]schedule.Cell, len(cells))
	for _, c := range cells {
		byDay[c.Date.Day()] = c
	}

	assert.Equal(t, schedule.CellPast, byDay[1].State)
	assert.Equal(t, schedule.CellPast, byDay[14].State)
	assert.Equal(t, schedule.CellPast, byDay[10].State, "configured status loses to the past rule")
	assert.Nil(t, byDay[10].EstimatedPrice)

	assert.Equal(t, schedule.CellAvailable, byDay[15].State, "today itself is bookable")
	assert.Equal(t, schedule.CellAvailable, byDay[16].State, "unconfigured future day defaults to available")
	assert.Nil(t, byDay[16].EstimatedPrice)

	assert.Equal(t, schedule.CellReserved, byDay[20].State)
	require.NotNil(t, byDay[20].EstimatedPrice)
	assert.Equal(t, 150000.0, *byDay[20].EstimatedPrice)

	assert.Equal(t, schedule.CellPending, byDay[22].State)
	assert.Nil(t, byDay[22].EstimatedPrice)
}

func TestWeekdaysInRange(t *testing.T) {
	// 2025-03-15 is a Saturday.
	from := date(2025, time.March, 15)

	t.Run("weekday equals start day", func(t *testing.T) {
		dates := schedule.WeekdaysInRange(from, time.Saturday, 1)
		require.NotEmpty(t, dates)
		assert.Equal(t, from, dates[0])
		for _, d := range dates {
			assert.Equal(t, time.Saturday, d.Weekday())
		}
		// 15, 22, 29 March and 5, 12 April.
		assert.Len(t, dates, 5)
	})

	t.Run("weekday before start wraps forward", func(t *testing.T) {
		dates := schedule.WeekdaysInRange(from, time.Friday, 1)
		require.NotEmpty(t, dates)
		assert.Equal(t, date(2025, time.March, 21), dates[0])
		for _, d := range dates {
			assert.Equal(t, time.Friday, d.Weekday())
			assert.False(t, d.Before(from))
		}
	})
}

func TestDayBookable(t *testing.T) {
	today := date(2025, time.March, 15)

	free, err := schedule.NewDay(date(2025, time.March, 20), schedule.StatusAvailable, nil)
	require.NoError(t, err)
	assert.NoError(t, free.Bookable(today))

	taken, err := schedule.NewDay(date(2025, time.March, 21), schedule.StatusReserved, nil)
	require.NoError(t, err)
	assert.ErrorIs(t, taken.Bookable(today), schedule.ErrDayNotFree)

	past, err := schedule.NewDay(date(2025, time.March, 1), schedule.StatusAvailable, nil)
	require.NoError(t, err)
	assert.ErrorIs(t, past.Bookable(today), schedule.ErrDayInPast)
}

func TestNewDayValidation(t *testing.T) {
	_, err := schedule.NewDay(date(2025, time.March, 20), schedule.DayStatus("ocupada"), nil)
	assert.ErrorIs(t, err, schedule.ErrInvalidStatus)

	negative := -1.0
	_, err = schedule.NewDay(date(2025, time.March, 20), schedule.StatusAvailable, &negative)
	assert.ErrorIs(t, err, schedule.ErrNegativePrice)

	d, err := schedule.NewDay(time.Date(2025, time.March, 20, 18, 30, 0, 0, time.UTC), schedule.StatusAvailable, nil)
	require.NoError(t, err)
	assert.Equal(t, "2025-03-20", d.ISODate(), "dates are normalized to date-only form")
}
