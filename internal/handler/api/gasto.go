package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"salon-reservas/internal/domain/ledger"
	reqdto "salon-reservas/internal/handler/dto/request"
	"salon-reservas/internal/pkg/clock"
	"salon-reservas/internal/usecase/commands"
	"salon-reservas/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ExpenseHandler struct {
	expenseCommands commands.ExpenseCommands
	expenseQueries  queries.ExpenseQueries
	clock           clock.Clock
	location        *time.Location
}

func NewExpenseHandler(expenseCommands commands.ExpenseCommands, expenseQueries queries.ExpenseQueries, clk clock.Clock, location *time.Location) *ExpenseHandler {
	return &ExpenseHandler{
		expenseCommands: expenseCommands,
		expenseQueries:  expenseQueries,
		clock:           clk,
		location:        location,
	}
}

// @Summary List expenses
// @Description Expenses for a month, defaulting to the current one
// @Tags expenses
// @Produce json
// @Security BearerAuth
// @Param mes query int false "Month (1-12)"
// @Param anio query int false "Year"
// @Success 200 {array} queries.ExpenseView
// @Failure 400 {object} map[string]string
// @Router /gastos [get]
func (h *ExpenseHandler) ListExpenses(c *gin.Context) {
	year, month, ok := monthParams(c, h.clock, h.location)
	if !ok {
		return
	}

	views, err := h.expenseQueries.ListByMonth(c.Request.Context(), year, month)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, views)
}

// @Summary Create expense
// @Tags expenses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateExpenseRequest true "Expense data"
// @Success 201 {object} queries.ExpenseView
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /gastos [post]
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	var req reqdto.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Formato de solicitud inválido",
		})
		return
	}

	view, err := h.expenseCommands.CreateExpense(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidDate):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Formato de fecha inválido, se espera YYYY-MM-DD",
			})
		case errors.Is(err, ledger.ErrEmptyDescription),
			errors.Is(err, ledger.ErrInvalidCategory),
			errors.Is(err, ledger.ErrNonPositiveAmount):
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

// @Summary Delete expense
// @Tags expenses
// @Produce json
// @Security BearerAuth
// @Param id path string true "Expense ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /gastos/{id} [delete]
func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID de gasto inválido"})
		return
	}

	if err := h.expenseCommands.DeleteExpense(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, commands.ErrExpenseNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Gasto no encontrado",
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

// monthParams reads the optional mes/anio query pair, falling back to
// today in the business timezone. A false return means a 400 was written.
func monthParams(c *gin.Context, clk clock.Clock, loc *time.Location) (int, time.Month, bool) {
	today := clock.Today(clk, loc)
	year := today.Year()
	month := int(today.Month())

	if raw := c.Query("mes"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 || v > 12 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Mes inválido"})
			return 0, 0, false
		}
		month = v
	}
	if raw := c.Query("anio"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Año inválido"})
			return 0, 0, false
		}
		year = v
	}

	return year, time.Month(month), true
}
