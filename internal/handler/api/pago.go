package api

import (
	"errors"
	"net/http"

	"salon-reservas/internal/domain/booking"
	reqdto "salon-reservas/internal/handler/dto/request"
	"salon-reservas/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PaymentHandler struct {
	paymentCommands commands.PaymentCommands
}

func NewPaymentHandler(paymentCommands commands.PaymentCommands) *PaymentHandler {
	return &PaymentHandler{paymentCommands: paymentCommands}
}

// @Summary Add payment
// @Description Register a partial or full payment on a reservation
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.CreatePaymentRequest true "Payment amount"
// @Success 201 {object} queries.ReservationView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /reservas/{id}/pagos [post]
func (h *PaymentHandler) AddPayment(c *gin.Context) {
	reservationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID de reserva inválido"})
		return
	}

	var req reqdto.CreatePaymentRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Formato de solicitud inválido",
		})
		return
	}

	view, err := h.paymentCommands.AddPayment(c.Request.Context(), reservationID, req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrReservationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Reserva no encontrada",
			})
		case errors.Is(err, commands.ErrPaymentOnArchived):
			c.JSON(http.StatusConflict, gin.H{
				"error": "No se pueden registrar pagos en una reserva archivada",
			})
		case errors.Is(err, booking.ErrNonPositiveAmount):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "El monto del pago debe ser mayor a cero",
			})
		case errors.Is(err, booking.ErrAmountExceedsBalance):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "El monto supera el saldo restante de la reserva",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, view)
}

// @Summary Delete payment
// @Description Remove a payment, guarded by the master password
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param pago_id path string true "Payment ID"
// @Param request body reqdto.DeletePaymentRequest true "Master password"
// @Success 200 {object} queries.ReservationView
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reservas/{id}/pagos/{pago_id} [delete]
func (h *PaymentHandler) DeletePayment(c *gin.Context) {
	reservationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID de reserva inválido"})
		return
	}

	paymentID, err := uuid.Parse(c.Param("pago_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID de pago inválido"})
		return
	}

	var req reqdto.DeletePaymentRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Formato de solicitud inválido",
		})
		return
	}

	view, err := h.paymentCommands.DeletePayment(c.Request.Context(), reservationID, paymentID, req.PasswordMaestra)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrMasterPasswordWrong):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Contraseña maestra incorrecta",
			})
		case errors.Is(err, commands.ErrPaymentNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Pago no encontrado",
			})
		case errors.Is(err, commands.ErrReservationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Reserva no encontrada",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, view)
}
