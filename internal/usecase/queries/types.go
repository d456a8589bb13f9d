package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side). JSON tags match the wire contract
// the frontend consumes, so field names stay in Spanish.

type AuthorizedUserView struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"correo"`
	Role  string    `json:"rol"`
}

type UserView struct {
	ID        uuid.UUID `json:"id"`
	Nombre    string    `json:"nombre"`
	Apellido  string    `json:"apellido"`
	DNI       string    `json:"dni"`
	Email     string    `json:"correo"`
	Telefono  string    `json:"telefono"`
	Rol       string    `json:"rol"`
	CreatedAt time.Time `json:"fecha_registro"`
}

type DayView struct {
	ID            uuid.UUID `json:"id"`
	Dia           string    `json:"dia"`
	Estado        string    `json:"estado"`
	ValorEstimado *float64  `json:"valor_estimado"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type CalendarCellView struct {
	Dia           string   `json:"dia"`
	Estado        string   `json:"estado"`
	ValorEstimado *float64 `json:"valor_estimado,omitempty"`
}

type CalendarView struct {
	Mes    int                `json:"mes"`
	Anio   int                `json:"anio"`
	Dias   []CalendarCellView `json:"dias"`
	MesMin string             `json:"mes_min"`
	MesMax string             `json:"mes_max"`
}

type PaymentView struct {
	ID        uuid.UUID `json:"id"`
	ReservaID uuid.UUID `json:"reserva_id"`
	Monto     float64   `json:"monto"`
	FechaPago time.Time `json:"fecha_pago"`
}

type ReservationView struct {
	ID               uuid.UUID     `json:"id"`
	UsuarioID        uuid.UUID     `json:"usuario_id"`
	FechaID          uuid.UUID     `json:"fecha_id"`
	Dia              string        `json:"dia"`
	Estado           string        `json:"estado"`
	ValorAlquiler    float64       `json:"valor_alquiler"`
	SaldoRestante    float64       `json:"saldo_restante"`
	Cliente          string        `json:"cliente"`
	ClienteDNI       string        `json:"cliente_dni"`
	ClienteEmail     string        `json:"cliente_correo"`
	ClienteTelefono  string        `json:"cliente_telefono"`
	ComprobanteURL   *string       `json:"comprobante_url,omitempty"`
	FechaAceptacion  *time.Time    `json:"fecha_aceptacion,omitempty"`
	IPAceptacion     *string       `json:"ip_aceptacion,omitempty"`
	VersionContrato  string        `json:"version_contrato"`
	FechaVencimiento *time.Time    `json:"fecha_vencimiento,omitempty"`
	Pagos            []PaymentView `json:"pagos"`
	CreatedAt        time.Time     `json:"fecha_creacion"`
}

type ExpenseView struct {
	ID          uuid.UUID `json:"id"`
	Descripcion string    `json:"descripcion"`
	Monto       float64   `json:"monto"`
	Categoria   string    `json:"categoria"`
	Fecha       time.Time `json:"fecha"`
}

type MonthStatView struct {
	Ingresos float64 `json:"ingresos"`
	Reservas int     `json:"reservas"`
}

type AnalyticsView struct {
	IngresosMesSeleccionado     float64                  `json:"ingresos_mes_seleccionado"`
	GastosMesSeleccionado       float64                  `json:"gastos_mes_seleccionado"`
	BeneficioNetoMes            float64                  `json:"beneficio_neto_mes"`
	ReservasMesSeleccionado     int                      `json:"reservas_mes_seleccionado"`
	TendenciaIngresosPorcentaje float64                  `json:"tendencia_ingresos_porcentaje"`
	DineroPorLiquidar           float64                  `json:"dinero_por_liquidar"`
	IngresosPorMes              map[string]MonthStatView `json:"ingresos_por_mes"`
}

type PaymentInfoView struct {
	Alias string `json:"alias"`
}
