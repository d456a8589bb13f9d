package commands

import (
	"context"
	"time"

	"github.com/google/uuid"

	"salon-reservas/internal/domain/schedule"
	reqdto "salon-reservas/internal/handler/dto/request"
	"salon-reservas/internal/infra"
	"salon-reservas/internal/pkg/clock"
	"salon-reservas/internal/pkg/config"
	"salon-reservas/internal/pkg/errs"
)

var (
	ErrDayNotFound   = errs.New("day not found")
	ErrDuplicateDay  = errs.New("day already exists")
	ErrInvalidDate   = errs.New("invalid date format")
	ErrInvalidStatus = errs.New("invalid day status")
)

type DayRepository interface {
	Create(ctx context.Context, d *schedule.Day) error
	Update(ctx context.Context, d *schedule.Day) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*schedule.Day, error)
	FindByDate(ctx context.Context, date time.Time) (*schedule.Day, error)
	UpdatePriceForDates(ctx context.Context, dates []time.Time, price float64) (int, error)
}

// CalendarInvalidator drops cached month grids after a write.
type CalendarInvalidator interface {
	DeletePattern(ctx context.Context, pattern string) error
}

type BulkPriceResult struct {
	Updated int `json:"fechas_actualizadas"`
}

type DayCommands interface {
	CreateDay(ctx context.Context, req reqdto.CreateDayRequest) (*schedule.Day, error)
	UpdateDay(ctx context.Context, id uuid.UUID, req reqdto.UpdateDayRequest) (*schedule.Day, error)
	DeleteDay(ctx context.Context, id uuid.UUID) error
	GetOrCreateByDate(ctx context.Context, date time.Time) (*schedule.Day, error)
	BulkSetPrices(ctx context.Context, req reqdto.BulkPriceRequest) (*BulkPriceResult, error)
}

type dayCommandsImpl struct {
	dayRepo  DayRepository
	cache    CalendarInvalidator
	clock    clock.Clock
	business config.BusinessConfig
	loc      *time.Location
}

func NewDayCommands(dayRepo DayRepository, cache CalendarInvalidator, clk clock.Clock, cfg config.Config) (DayCommands, error) {
	loc, err := time.LoadLocation(cfg.Business.TimeZone)
	if err != nil {
		return nil, errs.Wrap(err, "invalid business time zone")
	}
	return &dayCommandsImpl{
		dayRepo:  dayRepo,
		cache:    cache,
		clock:    clk,
		business: cfg.Business,
		loc:      loc,
	}, nil
}

func (c *dayCommandsImpl) CreateDay(ctx context.Context, req reqdto.CreateDayRequest) (*schedule.Day, error) {
	date, err := time.Parse("2006-01-02", req.Dia)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidDate)
	}

	status := schedule.StatusAvailable
	if req.Estado != "" {
		status, err = schedule.NewDayStatus(req.Estado)
		if err != nil {
			return nil, errs.Mark(err, ErrInvalidStatus)
		}
	}

	day, err := schedule.NewDay(date, status, req.ValorEstimado)
	if err != nil {
		return nil, err
	}

	if err := c.dayRepo.Create(ctx, day); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrDuplicateDay
		}
		return nil, err
	}

	c.invalidateCalendar(ctx)
	return day, nil
}

func (c *dayCommandsImpl) UpdateDay(ctx context.Context, id uuid.UUID, req reqdto.UpdateDayRequest) (*schedule.Day, error) {
	day, err := c.dayRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrDayNotFound
		}
		return nil, err
	}

	if req.Estado != nil {
		status, err := schedule.NewDayStatus(*req.Estado)
		if err != nil {
			return nil, errs.Mark(err, ErrInvalidStatus)
		}
		if err := day.SetStatus(status); err != nil {
			return nil, err
		}
	}
	if req.ValorEstimado != nil {
		if err := day.SetEstimatedPrice(req.ValorEstimado); err != nil {
			return nil, err
		}
	}

	if err := c.dayRepo.Update(ctx, day); err != nil {
		return nil, err
	}

	c.invalidateCalendar(ctx)
	return day, nil
}

func (c *dayCommandsImpl) DeleteDay(ctx context.Context, id uuid.UUID) error {
	if err := c.dayRepo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrDayNotFound
		}
		return err
	}
	c.invalidateCalendar(ctx)
	return nil
}

// GetOrCreateByDate backs the by-date lookup: a date nobody configured
// yet comes back as a fresh available day.
func (c *dayCommandsImpl) GetOrCreateByDate(ctx context.Context, date time.Time) (*schedule.Day, error) {
	day, err := c.dayRepo.FindByDate(ctx, date)
	if err == nil {
		return day, nil
	}
	if !infra.IsKind(err, infra.KindNotFound) {
		return nil, err
	}

	day, err = schedule.NewDay(date, schedule.StatusAvailable, nil)
	if err != nil {
		return nil, err
	}
	if err := c.dayRepo.Create(ctx, day); err != nil {
		// Lost the race against a concurrent get-or-create.
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return c.dayRepo.FindByDate(ctx, date)
		}
		return nil, err
	}

	c.invalidateCalendar(ctx)
	return day, nil
}

// BulkSetPrices applies one price to every existing day matching the
// weekday over the coming months. Dates without a row are skipped and
// the caller learns how many rows actually changed.
func (c *dayCommandsImpl) BulkSetPrices(ctx context.Context, req reqdto.BulkPriceRequest) (*BulkPriceResult, error) {
	today := clock.Today(c.clock, c.loc)
	dates := schedule.WeekdaysInRange(today, time.Weekday(req.DiaSemana), req.Meses)

	updated, err := c.dayRepo.UpdatePriceForDates(ctx, dates, req.ValorEstimado)
	if err != nil {
		return nil, err
	}

	c.invalidateCalendar(ctx)
	return &BulkPriceResult{Updated: updated}, nil
}

func (c *dayCommandsImpl) invalidateCalendar(ctx context.Context) {
	_ = c.cache.DeletePattern(ctx, "calendario:*")
}
