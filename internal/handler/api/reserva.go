package api

import (
	"errors"
	"net/http"

	"salon-reservas/internal/domain/booking"
	"salon-reservas/internal/domain/schedule"
	reqdto "salon-reservas/internal/handler/dto/request"
	"salon-reservas/internal/handler/middleware"
	"salon-reservas/internal/usecase/commands"
	"salon-reservas/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationHandler struct {
	reservationCommands commands.ReservationCommands
	reservationQueries  queries.ReservationQueries
}

func NewReservationHandler(reservationCommands commands.ReservationCommands, reservationQueries queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{
		reservationCommands: reservationCommands,
		reservationQueries:  reservationQueries,
	}
}

// @Summary Request reservation
// @Description Client requests a day, accepting the rental contract
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RequestReservationRequest true "Day, receipt and contract acceptance"
// @Success 201 {object} queries.ReservationView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /reservas/solicitar [post]
func (h *ReservationHandler) RequestReservation(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.RequestReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Formato de solicitud inválido",
		})
		return
	}

	view, err := h.reservationCommands.RequestReservation(c.Request.Context(), req, userID, c.ClientIP())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDayNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Fecha no encontrada",
			})
		case errors.Is(err, commands.ErrDayLocked):
			c.JSON(http.StatusConflict, gin.H{
				"error": "La fecha está siendo reservada por otra persona, intenta de nuevo",
			})
		case errors.Is(err, commands.ErrDayUnavailable),
			errors.Is(err, schedule.ErrDayNotFree),
			errors.Is(err, schedule.ErrDayInPast):
			c.JSON(http.StatusConflict, gin.H{
				"error": "La fecha ya no está disponible",
			})
		case errors.Is(err, booking.ErrContractNotAccepted),
			errors.Is(err, booking.ErrReceiptRequired):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": err.Error(),
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

// @Summary Create reservation (admin)
// @Description Admin books a day for an existing client
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.AdminCreateReservationRequest true "Reservation data"
// @Success 201 {object} queries.ReservationView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reservas [post]
func (h *ReservationHandler) AdminCreateReservation(c *gin.Context) {
	var req reqdto.AdminCreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Formato de solicitud inválido",
		})
		return
	}

	view, err := h.reservationCommands.AdminCreateReservation(c.Request.Context(), req, c.ClientIP())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrMissingDay):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Se requiere fecha_id o fecha_dia",
			})
		case errors.Is(err, commands.ErrDayNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Fecha no encontrada",
			})
		case errors.Is(err, queries.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Usuario no encontrado",
			})
		case errors.Is(err, commands.ErrDayUnavailable), errors.Is(err, schedule.ErrDayNotFree):
			c.JSON(http.StatusConflict, gin.H{
				"error": "La fecha ya no está disponible",
			})
		case errors.Is(err, booking.ErrNegativeRental):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": err.Error(),
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

// @Summary List active reservations
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.ReservationView
// @Router /reservas [get]
func (h *ReservationHandler) ListActive(c *gin.Context) {
	views, err := h.reservationQueries.ListActive(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, views)
}

// @Summary List archived reservations
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.ReservationView
// @Router /reservas/archivadas [get]
func (h *ReservationHandler) ListArchived(c *gin.Context) {
	views, err := h.reservationQueries.ListArchived(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, views)
}

// @Summary My reservations
// @Description Reservations belonging to the authenticated client
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.ReservationView
// @Router /reservas/mis-reservas [get]
func (h *ReservationHandler) MyReservations(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	views, err := h.reservationQueries.ListByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, views)
}

// @Summary Get reservation
// @Description Owner or admin fetches a reservation with its payments
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} queries.ReservationView
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reservas/{id} [get]
func (h *ReservationHandler) GetReservation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID de reserva inválido"})
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	view, err := h.reservationQueries.GetReservation(c.Request.Context(), id, userID, middleware.IsAdmin(c))
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrReservationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Reserva no encontrada",
			})
		case errors.Is(err, queries.ErrReservationAccess):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "No tienes acceso a esta reserva",
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

// @Summary Update reservation
// @Description Admin changes status, rental value or expiry
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.UpdateReservationRequest true "Fields to update"
// @Success 200 {object} queries.ReservationView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reservas/{id} [put]
func (h *ReservationHandler) UpdateReservation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID de reserva inválido"})
		return
	}

	var req reqdto.UpdateReservationRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Formato de solicitud inválido",
		})
		return
	}

	view, err := h.reservationCommands.UpdateReservation(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrReservationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Reserva no encontrada",
			})
		case errors.Is(err, booking.ErrInvalidStatus), errors.Is(err, booking.ErrNegativeRental):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": err.Error(),
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

// @Summary Archive reservation
// @Description Soft delete; refused while payments exist
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reservas/{id} [delete]
func (h *ReservationHandler) ArchiveReservation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID de reserva inválido"})
		return
	}

	if err := h.reservationCommands.ArchiveReservation(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, commands.ErrReservationNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Reserva no encontrada",
			})
		case errors.Is(err, booking.ErrHasPayments):
			c.JSON(http.StatusConflict, gin.H{
				"error": "No se puede eliminar una reserva que tiene pagos registrados",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
