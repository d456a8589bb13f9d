package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"salon-reservas/internal/pkg/clock"
	"salon-reservas/internal/usecase/queries"
)

// ReservationFinder is the slice of the reservation read model the
// scheduled jobs need.
type ReservationFinder interface {
	FindPendingViews(ctx context.Context) ([]queries.ReservationView, error)
	FindConfirmedByDay(ctx context.Context, date time.Time) ([]queries.ReservationView, error)
}

type Notifier interface {
	Send(ctx context.Context, title, message string) error
}

// Runner holds the periodic business alerts: a morning digest of
// reservations waiting for review and an evening reminder of events
// happening the next day.
type Runner struct {
	reservations ReservationFinder
	notifier     Notifier
	clock        clock.Clock
	location     *time.Location
	logger       *slog.Logger
}

func NewRunner(reservations ReservationFinder, notifier Notifier, clk clock.Clock, location *time.Location, logger *slog.Logger) *Runner {
	return &Runner{
		reservations: reservations,
		notifier:     notifier,
		clock:        clk,
		location:     location,
		logger:       logger,
	}
}

// PendingDigest notifies the admin about reservations still waiting
// for confirmation. Silent when there is nothing pending.
func (r *Runner) PendingDigest() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	views, err := r.reservations.FindPendingViews(ctx)
	if err != nil {
		r.logger.Error("pending digest query failed", "error", err.Error())
		return
	}
	if len(views) == 0 {
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Tenés %d reserva(s) pendiente(s) de revisión:\n", len(views))
	for _, v := range views {
		fmt.Fprintf(&b, "- %s (%s)\n", v.Cliente, v.Dia)
	}

	if err := r.notifier.Send(ctx, "Reservas pendientes", b.String()); err != nil {
		r.logger.Error("pending digest notification failed", "error", err.Error())
		return
	}
	r.logger.Info("pending digest sent", "count", len(views))
}

// UpcomingReminder notifies the admin about confirmed events taking
// place tomorrow.
func (r *Runner) UpcomingReminder() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	tomorrow := clock.Today(r.clock, r.location).AddDate(0, 0, 1)
	views, err := r.reservations.FindConfirmedByDay(ctx, tomorrow)
	if err != nil {
		r.logger.Error("upcoming reminder query failed", "error", err.Error())
		return
	}
	if len(views) == 0 {
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Mañana (%s) hay %d evento(s) confirmado(s):\n", tomorrow.Format("2006-01-02"), len(views))
	for _, v := range views {
		fmt.Fprintf(&b, "- %s, saldo restante $%.2f\n", v.Cliente, v.SaldoRestante)
	}

	if err := r.notifier.Send(ctx, "Eventos de mañana", b.String()); err != nil {
		r.logger.Error("upcoming reminder notification failed", "error", err.Error())
		return
	}
	r.logger.Info("upcoming reminder sent", "count", len(views))
}
