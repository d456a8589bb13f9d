package readstore

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"salon-reservas/internal/infra"
	"salon-reservas/internal/pkg/pgconv"
	"salon-reservas/internal/usecase/queries"
)

type ReservationReadStore struct {
	db *pgxpool.Pool
}

func NewReservationReadStore(db *pgxpool.Pool) *ReservationReadStore {
	return &ReservationReadStore{db: db}
}

const reservationViewQuery = `
SELECT r.id, r.user_id, r.day_id, d.day, r.status, r.rental_value,
       u.first_name || ' ' || u.last_name AS client,
       u.dni, u.email, u.phone,
       r.receipt_url, r.accepted_at, r.acceptance_ip, r.contract_version,
       r.expires_at, r.created_at
FROM reservations r
JOIN users u ON u.id = r.user_id
JOIN days d ON d.id = r.day_id
`

func (r *ReservationReadStore) FindViewByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	row := r.db.QueryRow(ctx, reservationViewQuery+` WHERE r.id = $1`, id)

	view, err := scanReservationView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by id", err)
	}

	if err := r.attachPayments(ctx, []*queries.ReservationView{view}); err != nil {
		return nil, err
	}
	return view, nil
}

func (r *ReservationReadStore) FindActiveViews(ctx context.Context) ([]queries.ReservationView, error) {
	return r.findViews(ctx, reservationViewQuery+` WHERE r.status <> 'archivada' ORDER BY d.day`)
}

func (r *ReservationReadStore) FindArchivedViews(ctx context.Context) ([]queries.ReservationView, error) {
	return r.findViews(ctx, reservationViewQuery+` WHERE r.status = 'archivada' ORDER BY r.created_at DESC`)
}

func (r *ReservationReadStore) FindViewsByUser(ctx context.Context, userID uuid.UUID) ([]queries.ReservationView, error) {
	return r.findViews(ctx, reservationViewQuery+` WHERE r.user_id = $1 AND r.status <> 'archivada' ORDER BY d.day`, userID)
}

func (r *ReservationReadStore) FindPendingViews(ctx context.Context) ([]queries.ReservationView, error) {
	return r.findViews(ctx, reservationViewQuery+` WHERE r.status = 'pendiente' ORDER BY r.created_at`)
}

func (r *ReservationReadStore) FindConfirmedByDay(ctx context.Context, date time.Time) ([]queries.ReservationView, error) {
	return r.findViews(ctx, reservationViewQuery+` WHERE r.status = 'confirmada' AND d.day = $1 ORDER BY r.created_at`,
		pgconv.DateToPgtype(date))
}

func (r *ReservationReadStore) findViews(ctx context.Context, query string, args ...any) ([]queries.ReservationView, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	defer rows.Close()

	views := make([]*queries.ReservationView, 0)
	for rows.Next() {
		view, err := scanReservationView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservation rows", err)
	}

	if err := r.attachPayments(ctx, views); err != nil {
		return nil, err
	}

	out := make([]queries.ReservationView, 0, len(views))
	for _, v := range views {
		out = append(out, *v)
	}
	return out, nil
}

// attachPayments loads the payments of every listed reservation in one
// query and recomputes the outstanding balance from them.
func (r *ReservationReadStore) attachPayments(ctx context.Context, views []*queries.ReservationView) error {
	if len(views) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(views))
	byID := make(map[uuid.UUID]*queries.ReservationView, len(views))
	for _, v := range views {
		ids = append(ids, v.ID)
		byID[v.ID] = v
		v.Pagos = make([]queries.PaymentView, 0)
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, reservation_id, amount, paid_at
		 FROM payments WHERE reservation_id = ANY($1) ORDER BY paid_at`,
		ids,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to list payments", err)
	}
	defer rows.Close()

	for rows.Next() {
		var p queries.PaymentView
		if err := rows.Scan(&p.ID, &p.ReservaID, &p.Monto, &p.FechaPago); err != nil {
			return infra.WrapRepoErr("failed to scan payment row", err)
		}
		if v, ok := byID[p.ReservaID]; ok {
			v.Pagos = append(v.Pagos, p)
		}
	}
	if err := rows.Err(); err != nil {
		return infra.WrapRepoErr("failed to iterate payment rows", err)
	}

	for _, v := range views {
		paid := 0.0
		for _, p := range v.Pagos {
			paid += p.Monto
		}
		v.SaldoRestante = v.ValorAlquiler - paid
	}
	return nil
}

func scanReservationView(row pgx.Row) (*queries.ReservationView, error) {
	var view queries.ReservationView
	var day time.Time
	err := row.Scan(
		&view.ID, &view.UsuarioID, &view.FechaID, &day, &view.Estado, &view.ValorAlquiler,
		&view.Cliente, &view.ClienteDNI, &view.ClienteEmail, &view.ClienteTelefono,
		&view.ComprobanteURL, &view.FechaAceptacion, &view.IPAceptacion, &view.VersionContrato,
		&view.FechaVencimiento, &view.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	view.Dia = day.Format("2006-01-02")
	return &view, nil
}
