package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"salon-reservas/internal/domain/schedule"
	reqdto "salon-reservas/internal/handler/dto/request"
	"salon-reservas/internal/pkg/clock"
	"salon-reservas/internal/usecase/commands"
	"salon-reservas/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type DayHandler struct {
	dayCommands commands.DayCommands
	dayQueries  queries.DayQueries
	clock       clock.Clock
	location    *time.Location
}

func NewDayHandler(dayCommands commands.DayCommands, dayQueries queries.DayQueries, clk clock.Clock, location *time.Location) *DayHandler {
	return &DayHandler{
		dayCommands: dayCommands,
		dayQueries:  dayQueries,
		clock:       clk,
		location:    location,
	}
}

// @Summary Get calendar
// @Description Month grid with availability per day
// @Tags calendar
// @Produce json
// @Param mes query int false "Month (1-12), defaults to current"
// @Param anio query int false "Year, defaults to current"
// @Success 200 {object} queries.CalendarView
// @Failure 400 {object} map[string]string
// @Router /calendario [get]
func (h *DayHandler) GetCalendar(c *gin.Context) {
	today := clock.Today(h.clock, h.location)

	month := int(today.Month())
	year := today.Year()
	if raw := c.Query("mes"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Mes inválido"})
			return
		}
		month = v
	}
	if raw := c.Query("anio"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Año inválido"})
			return
		}
		year = v
	}

	view, err := h.dayQueries.GetCalendar(c.Request.Context(), month, year)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrInvalidMonth),
			errors.Is(err, schedule.ErrMonthBeforeCurrent),
			errors.Is(err, schedule.ErrMonthBeyondHorizon):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "El mes solicitado está fuera del rango permitido",
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

// @Summary List days
// @Description All days with an explicit availability row
// @Tags days
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.DayView
// @Router /fechas [get]
func (h *DayHandler) ListDays(c *gin.Context) {
	views, err := h.dayQueries.ListDays(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, views)
}

// @Summary Create day
// @Description Create an availability row for a date
// @Tags days
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateDayRequest true "Day data"
// @Success 201 {object} queries.DayView
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /fechas [post]
func (h *DayHandler) CreateDay(c *gin.Context) {
	var req reqdto.CreateDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Formato de solicitud inválido",
		})
		return
	}

	day, err := h.dayCommands.CreateDay(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDuplicateDay):
			c.JSON(http.StatusConflict, gin.H{
				"error": "La fecha ya existe en el calendario",
			})
		case errors.Is(err, commands.ErrInvalidDate):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Formato de fecha inválido, se espera YYYY-MM-DD",
			})
		case errors.Is(err, commands.ErrInvalidStatus), errors.Is(err, schedule.ErrNegativePrice):
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

	c.JSON(http.StatusCreated, queries.NewDayView(day))
}

// @Summary Update day
// @Description Change status or estimated price of a day
// @Tags days
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Day ID"
// @Param request body reqdto.UpdateDayRequest true "Fields to update"
// @Success 200 {object} queries.DayView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /fechas/{id} [put]
func (h *DayHandler) UpdateDay(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID de fecha inválido"})
		return
	}

	var req reqdto.UpdateDayRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Formato de solicitud inválido",
		})
		return
	}

	day, err := h.dayCommands.UpdateDay(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDayNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Fecha no encontrada",
			})
		case errors.Is(err, commands.ErrInvalidStatus), errors.Is(err, schedule.ErrNegativePrice):
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

	c.JSON(http.StatusOK, queries.NewDayView(day))
}

// @Summary Delete day
// @Tags days
// @Produce json
// @Security BearerAuth
// @Param id path string true "Day ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /fechas/{id} [delete]
func (h *DayHandler) DeleteDay(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID de fecha inválido"})
		return
	}

	if err := h.dayCommands.DeleteDay(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, commands.ErrDayNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Fecha no encontrada",
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

// @Summary Get or create day by date
// @Description Resolve a calendar date to its availability row, creating one if absent
// @Tags days
// @Produce json
// @Security BearerAuth
// @Param dia path string true "Date YYYY-MM-DD"
// @Success 200 {object} queries.DayView
// @Failure 400 {object} map[string]string
// @Router /fechas/dia/{dia} [get]
func (h *DayHandler) GetOrCreateByDate(c *gin.Context) {
	date, err := time.Parse("2006-01-02", c.Param("dia"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Formato de fecha inválido, se espera YYYY-MM-DD",
		})
		return
	}

	day, err := h.dayCommands.GetOrCreateByDate(c.Request.Context(), date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, queries.NewDayView(day))
}

// @Summary Bulk price update
// @Description Set the estimated price for every occurrence of a weekday over the coming months
// @Tags days
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.BulkPriceRequest true "Weekday, month span and price"
// @Success 200 {object} commands.BulkPriceResult
// @Failure 400 {object} map[string]string
// @Router /fechas/precios [put]
func (h *DayHandler) BulkSetPrices(c *gin.Context) {
	var req reqdto.BulkPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Formato de solicitud inválido",
		})
		return
	}

	result, err := h.dayCommands.BulkSetPrices(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, result)
}
