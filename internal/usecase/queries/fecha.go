package queries

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"salon-reservas/internal/domain/schedule"
	"salon-reservas/internal/infra"
	"salon-reservas/internal/pkg/clock"
	"salon-reservas/internal/pkg/config"
	"salon-reservas/internal/pkg/errs"
)

var (
	ErrDayNotFound  = errs.New("day not found")
	ErrInvalidMonth = errs.New("invalid calendar month")
)

type DayQueries interface {
	GetDay(ctx context.Context, id uuid.UUID) (*DayView, error)
	ListDays(ctx context.Context) ([]DayView, error)
	GetCalendar(ctx context.Context, month, year int) (*CalendarView, error)
}

type DayReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*schedule.Day, error)
	FindByDate(ctx context.Context, date time.Time) (*schedule.Day, error)
	FindByMonth(ctx context.Context, year int, month time.Month) ([]*schedule.Day, error)
	FindAll(ctx context.Context) ([]*schedule.Day, error)
}

// CalendarCache is the read-through cache for rendered month grids.
type CalendarCache interface {
	GetJSON(ctx context.Context, key string, dest any) (bool, error)
	SetJSON(ctx context.Context, key string, value any) error
}

type dayQueriesImpl struct {
	readStore DayReadStore
	cache     CalendarCache
	clock     clock.Clock
	business  config.BusinessConfig
	loc       *time.Location
}

func NewDayQueries(readStore DayReadStore, cache CalendarCache, clk clock.Clock, cfg config.Config) (DayQueries, error) {
	loc, err := time.LoadLocation(cfg.Business.TimeZone)
	if err != nil {
		return nil, errs.Wrap(err, "invalid business time zone")
	}
	return &dayQueriesImpl{
		readStore: readStore,
		cache:     cache,
		clock:     clk,
		business:  cfg.Business,
		loc:       loc,
	}, nil
}

func (q *dayQueriesImpl) GetDay(ctx context.Context, id uuid.UUID) (*DayView, error) {
	day, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrDayNotFound
		}
		return nil, err
	}
	view := NewDayView(day)
	return &view, nil
}

func (q *dayQueriesImpl) ListDays(ctx context.Context) ([]DayView, error) {
	days, err := q.readStore.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]DayView, 0, len(days))
	for _, d := range days {
		views = append(views, NewDayView(d))
	}
	return views, nil
}

// GetCalendar renders the month grid the booking page shows. Months
// outside the current-to-horizon window are rejected before any
// storage work happens.
func (q *dayQueriesImpl) GetCalendar(ctx context.Context, month, year int) (*CalendarView, error) {
	today := clock.Today(q.clock, q.loc)
	m := schedule.Month{Year: year, Month: time.Month(month)}

	if err := schedule.ValidateNavigation(m, today, q.business.CalendarHorizonMonths); err != nil {
		return nil, errs.Mark(err, ErrInvalidMonth)
	}

	key := calendarCacheKey(year, month)
	var cached CalendarView
	if found, err := q.cache.GetJSON(ctx, key, &cached); err == nil && found {
		return &cached, nil
	}

	days, err := q.readStore.FindByMonth(ctx, year, time.Month(month))
	if err != nil {
		return nil, err
	}

	cells := schedule.BuildMonthGrid(m, today, days)
	view := &CalendarView{
		Mes:    month,
		Anio:   year,
		Dias:   make([]CalendarCellView, 0, len(cells)),
		MesMin: schedule.MonthOf(today).String(),
		MesMax: schedule.MonthOf(today).AddMonths(q.business.CalendarHorizonMonths).String(),
	}
	for _, cell := range cells {
		view.Dias = append(view.Dias, CalendarCellView{
			Dia:           cell.Date.Format("2006-01-02"),
			Estado:        string(cell.State),
			ValorEstimado: cell.EstimatedPrice,
		})
	}

	// A stale entry only survives until the next write invalidates it.
	_ = q.cache.SetJSON(ctx, key, view)

	return view, nil
}

func calendarCacheKey(year, month int) string {
	return fmt.Sprintf("calendario:%04d-%02d", year, month)
}

func NewDayView(d *schedule.Day) DayView {
	return DayView{
		ID:            d.ID(),
		Dia:           d.ISODate(),
		Estado:        d.Status().String(),
		ValorEstimado: d.EstimatedPrice(),
		CreatedAt:     d.CreatedAt(),
		UpdatedAt:     d.UpdatedAt(),
	}
}
