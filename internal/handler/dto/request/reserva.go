package request

import (
	"time"

	"github.com/google/uuid"
)

// RequestReservationRequest is the client-side booking request: the
// visitor picks a day, accepts the contract and uploads the deposit
// receipt before anything is persisted.
type RequestReservationRequest struct {
	FechaID        uuid.UUID `json:"fecha_id" binding:"required"`
	ComprobanteURL string    `json:"comprobante_url" binding:"required"`
	AceptaContrato bool      `json:"acepta_contrato" binding:"required"`
}

// AdminCreateReservationRequest lets an administrator register a
// reservation directly, by day id or by plain date. A missing day row
// is created on the fly.
type AdminCreateReservationRequest struct {
	FechaID        *uuid.UUID `json:"fecha_id"`
	FechaDia       *string    `json:"fecha_dia"`
	UsuarioID      uuid.UUID  `json:"usuario_id" binding:"required"`
	ValorAlquiler  float64    `json:"valor_alquiler"`
	ComprobanteURL *string    `json:"comprobante_url"`
}

type UpdateReservationRequest struct {
	Estado           *string    `json:"estado"`
	ValorAlquiler    *float64   `json:"valor_alquiler"`
	FechaVencimiento *time.Time `json:"fecha_vencimiento"`
}
