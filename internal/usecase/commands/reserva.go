package commands

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"salon-reservas/internal/domain/booking"
	"salon-reservas/internal/domain/schedule"
	reqdto "salon-reservas/internal/handler/dto/request"
	"salon-reservas/internal/infra"
	"salon-reservas/internal/pkg/clock"
	"salon-reservas/internal/pkg/config"
	"salon-reservas/internal/pkg/errs"
	"salon-reservas/internal/usecase/queries"
)

var (
	ErrReservationNotFound = errs.New("reservation not found")
	ErrDayUnavailable      = errs.New("day is not available for booking")
	ErrDayLocked           = errs.New("day is being booked by another request")
	ErrMissingDay          = errs.New("either fecha_id or fecha_dia is required")
)

type ReservationRepository interface {
	Create(ctx context.Context, r *booking.Reservation) error
	Update(ctx context.Context, r *booking.Reservation) error
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Reservation, error)
	FindPayments(ctx context.Context, reservationID uuid.UUID) ([]booking.Payment, error)
}

type DayLocker interface {
	Acquire(ctx context.Context, key string) (bool, error)
	Release(ctx context.Context, key string) error
}

// ContractRenderer produces the rental contract PDF attached to the
// confirmation email.
type ContractRenderer interface {
	RenderContract(data ContractData) ([]byte, error)
}

type ContractData struct {
	ClientName      string
	ClientDNI       string
	EventDate       string
	AcceptedAt      string
	AcceptanceIP    string
	ContractVersion string
}

type ConfirmationMailer interface {
	SendReservationConfirmed(ctx context.Context, toEmail, name, eventDate string, contractPDF []byte) error
}

type ReservationCommands interface {
	RequestReservation(ctx context.Context, req reqdto.RequestReservationRequest, userID uuid.UUID, clientIP string) (*queries.ReservationView, error)
	AdminCreateReservation(ctx context.Context, req reqdto.AdminCreateReservationRequest, adminIP string) (*queries.ReservationView, error)
	UpdateReservation(ctx context.Context, id uuid.UUID, req reqdto.UpdateReservationRequest) (*queries.ReservationView, error)
	ArchiveReservation(ctx context.Context, id uuid.UUID) error
}

type reservationCommandsImpl struct {
	reservationRepo ReservationRepository
	dayRepo         DayRepository
	readStore       queries.ReservationReadStore
	locker          DayLocker
	cache           CalendarInvalidator
	contracts       ContractRenderer
	mailer          ConfirmationMailer
	clock           clock.Clock
	business        config.BusinessConfig
	loc             *time.Location
	logger          *slog.Logger
}

func NewReservationCommands(
	reservationRepo ReservationRepository,
	dayRepo DayRepository,
	readStore queries.ReservationReadStore,
	locker DayLocker,
	cache CalendarInvalidator,
	contracts ContractRenderer,
	mailer ConfirmationMailer,
	clk clock.Clock,
	cfg config.Config,
	logger *slog.Logger,
) (ReservationCommands, error) {
	loc, err := time.LoadLocation(cfg.Business.TimeZone)
	if err != nil {
		return nil, errs.Wrap(err, "invalid business time zone")
	}
	return &reservationCommandsImpl{
		reservationRepo: reservationRepo,
		dayRepo:         dayRepo,
		readStore:       readStore,
		locker:          locker,
		cache:           cache,
		contracts:       contracts,
		mailer:          mailer,
		clock:           clk,
		business:        cfg.Business,
		loc:             loc,
		logger:          logger,
	}, nil
}

// RequestReservation is the visitor booking path. The day lock keeps
// two simultaneous requests on the same date from both succeeding.
func (c *reservationCommandsImpl) RequestReservation(
	ctx context.Context,
	req reqdto.RequestReservationRequest,
	userID uuid.UUID,
	clientIP string,
) (*queries.ReservationView, error) {
	lockKey := dayLockKey(req.FechaID)
	acquired, err := c.locker.Acquire(ctx, lockKey)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, ErrDayLocked
	}
	defer func() {
		if err := c.locker.Release(ctx, lockKey); err != nil {
			c.logger.Warn("failed to release day lock", "key", lockKey, "error", err.Error())
		}
	}()

	day, err := c.dayRepo.FindByID(ctx, req.FechaID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrDayNotFound
		}
		return nil, err
	}

	today := clock.Today(c.clock, c.loc)
	if err := day.Bookable(today); err != nil {
		return nil, errs.Mark(err, ErrDayUnavailable)
	}

	rentalValue := 0.0
	if day.EstimatedPrice() != nil {
		rentalValue = *day.EstimatedPrice()
	}

	reservation, err := booking.NewReservation(userID, day.ID(), rentalValue, booking.Acceptance{
		Accepted:   req.AceptaContrato,
		IP:         clientIP,
		ReceiptURL: req.ComprobanteURL,
		AcceptedAt: c.clock.Now(),
	}, c.business.ContractVersion)
	if err != nil {
		return nil, err
	}

	if err := c.reservationRepo.Create(ctx, reservation); err != nil {
		return nil, err
	}

	if err := day.SetStatus(schedule.StatusPending); err != nil {
		return nil, err
	}
	if err := c.dayRepo.Update(ctx, day); err != nil {
		return nil, err
	}

	c.invalidate(ctx)
	return c.readStore.FindViewByID(ctx, reservation.ID())
}

func (c *reservationCommandsImpl) AdminCreateReservation(
	ctx context.Context,
	req reqdto.AdminCreateReservationRequest,
	adminIP string,
) (*queries.ReservationView, error) {
	day, err := c.resolveDay(ctx, req)
	if err != nil {
		return nil, err
	}

	today := clock.Today(c.clock, c.loc)
	if err := day.Bookable(today); err != nil {
		return nil, errs.Mark(err, ErrDayUnavailable)
	}

	rentalValue := req.ValorAlquiler
	if rentalValue == 0 && day.EstimatedPrice() != nil {
		rentalValue = *day.EstimatedPrice()
	}

	reservation, err := booking.NewAdminReservation(
		req.UsuarioID,
		day.ID(),
		rentalValue,
		req.ComprobanteURL,
		adminIP,
		c.clock.Now(),
		c.business.ContractVersion,
	)
	if err != nil {
		return nil, err
	}

	if err := c.reservationRepo.Create(ctx, reservation); err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return nil, queries.ErrUserNotFound
		}
		return nil, err
	}

	if err := day.SetStatus(schedule.StatusPending); err != nil {
		return nil, err
	}
	if err := c.dayRepo.Update(ctx, day); err != nil {
		return nil, err
	}

	c.invalidate(ctx)
	return c.readStore.FindViewByID(ctx, reservation.ID())
}

// UpdateReservation applies admin edits. Confirming moves the day to
// reservada and sends the confirmation email with the signed contract;
// cancelling releases the day back to disponible.
func (c *reservationCommandsImpl) UpdateReservation(
	ctx context.Context,
	id uuid.UUID,
	req reqdto.UpdateReservationRequest,
) (*queries.ReservationView, error) {
	reservation, err := c.reservationRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}

	previousStatus := reservation.Status()

	if req.ValorAlquiler != nil {
		if err := reservation.SetRentalValue(*req.ValorAlquiler); err != nil {
			return nil, err
		}
	}
	if req.FechaVencimiento != nil {
		reservation.SetExpiresAt(req.FechaVencimiento)
	}
	if req.Estado != nil {
		status, err := booking.NewStatus(*req.Estado)
		if err != nil {
			return nil, err
		}
		if err := reservation.SetStatus(status); err != nil {
			return nil, err
		}
	}

	if err := c.reservationRepo.Update(ctx, reservation); err != nil {
		return nil, err
	}

	if err := c.syncDayStatus(ctx, reservation, previousStatus); err != nil {
		return nil, err
	}

	if reservation.Status() == booking.StatusConfirmed && previousStatus != booking.StatusConfirmed {
		c.sendConfirmation(ctx, reservation)
	}

	c.invalidate(ctx)
	return c.readStore.FindViewByID(ctx, reservation.ID())
}

// ArchiveReservation soft-deletes: the row survives for accounting but
// leaves every listing. Reservations with recorded payments refuse to
// be archived.
func (c *reservationCommandsImpl) ArchiveReservation(ctx context.Context, id uuid.UUID) error {
	reservation, err := c.reservationRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrReservationNotFound
		}
		return err
	}

	payments, err := c.reservationRepo.FindPayments(ctx, id)
	if err != nil {
		return err
	}

	previousStatus := reservation.Status()
	if err := reservation.Archive(len(payments)); err != nil {
		return err
	}

	if err := c.reservationRepo.Update(ctx, reservation); err != nil {
		return err
	}

	if err := c.syncDayStatus(ctx, reservation, previousStatus); err != nil {
		return err
	}

	c.invalidate(ctx)
	return nil
}

func (c *reservationCommandsImpl) resolveDay(ctx context.Context, req reqdto.AdminCreateReservationRequest) (*schedule.Day, error) {
	if req.FechaID != nil {
		day, err := c.dayRepo.FindByID(ctx, *req.FechaID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, ErrDayNotFound
			}
			return nil, err
		}
		return day, nil
	}

	if req.FechaDia != nil {
		date, err := time.Parse("2006-01-02", *req.FechaDia)
		if err != nil {
			return nil, errs.Mark(err, ErrInvalidDate)
		}
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
			return nil, err
		}
		return day, nil
	}

	return nil, ErrMissingDay
}

// syncDayStatus mirrors the reservation state onto the calendar day.
func (c *reservationCommandsImpl) syncDayStatus(ctx context.Context, r *booking.Reservation, previous booking.Status) error {
	if r.Status() == previous {
		return nil
	}

	day, err := c.dayRepo.FindByID(ctx, r.DayID())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil
		}
		return err
	}

	var target schedule.DayStatus
	switch r.Status() {
	case booking.StatusConfirmed:
		target = schedule.StatusReserved
	case booking.StatusPending:
		target = schedule.StatusPending
	case booking.StatusCanceled, booking.StatusArchived:
		target = schedule.StatusAvailable
	default:
		return nil
	}

	if day.Status() == target {
		return nil
	}
	if err := day.SetStatus(target); err != nil {
		return err
	}
	return c.dayRepo.Update(ctx, day)
}

func (c *reservationCommandsImpl) sendConfirmation(ctx context.Context, r *booking.Reservation) {
	view, err := c.readStore.FindViewByID(ctx, r.ID())
	if err != nil {
		c.logger.Error("failed to load reservation for confirmation email", "reservation_id", r.ID(), "error", err.Error())
		return
	}

	eventDate, err := time.Parse("2006-01-02", view.Dia)
	if err != nil {
		c.logger.Error("corrupt event date on reservation view", "reservation_id", r.ID(), "dia", view.Dia)
		return
	}

	data := ContractData{
		ClientName:      view.Cliente,
		ClientDNI:       view.ClienteDNI,
		EventDate:       eventDate.Format("02/01/2006"),
		AcceptedAt:      r.AcceptedAt().UTC().Format("02/01/2006 a las 15:04:05 UTC"),
		AcceptanceIP:    r.AcceptanceIP(),
		ContractVersion: r.ContractVersion(),
	}

	pdf, err := c.contracts.RenderContract(data)
	if err != nil {
		c.logger.Error("failed to render contract", "reservation_id", r.ID(), "error", err.Error())
		return
	}

	if err := c.mailer.SendReservationConfirmed(ctx, view.ClienteEmail, view.Cliente, data.EventDate, pdf); err != nil {
		c.logger.Error("failed to send confirmation email", "reservation_id", r.ID(), "error", err.Error())
	}
}

func (c *reservationCommandsImpl) invalidate(ctx context.Context) {
	_ = c.cache.DeletePattern(ctx, "calendario:*")
}

func dayLockKey(dayID uuid.UUID) string {
	return "reserva_lock:" + dayID.String()
}
