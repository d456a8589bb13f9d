package api

import (
	"fmt"
	"net/http"
	"time"

	"salon-reservas/internal/infra/report"
	"salon-reservas/internal/pkg/clock"
	"salon-reservas/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	analyticsQueries queries.AnalyticsQueries
	pdf              *report.PDFRenderer
	clock            clock.Clock
	location         *time.Location
}

func NewAnalyticsHandler(analyticsQueries queries.AnalyticsQueries, pdf *report.PDFRenderer, clk clock.Clock, location *time.Location) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsQueries: analyticsQueries,
		pdf:              pdf,
		clock:            clk,
		location:         location,
	}
}

// @Summary Business summary
// @Description Income, spend, trend and outstanding balance for a month
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Param mes query int false "Month (1-12)"
// @Param anio query int false "Year"
// @Success 200 {object} queries.AnalyticsView
// @Failure 400 {object} map[string]string
// @Router /analytics [get]
func (h *AnalyticsHandler) GetSummary(c *gin.Context) {
	year, month, ok := monthParams(c, h.clock, h.location)
	if !ok {
		return
	}

	view, err := h.analyticsQueries.GetSummary(c.Request.Context(), year, month)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary Monthly PDF report
// @Description Download the month's payments and expenses as PDF
// @Tags analytics
// @Produce application/pdf
// @Security BearerAuth
// @Param mes query int false "Month (1-12)"
// @Param anio query int false "Year"
// @Success 200 {file} binary
// @Failure 400 {object} map[string]string
// @Router /analytics/reporte-pdf [get]
func (h *AnalyticsHandler) GetMonthlyReportPDF(c *gin.Context) {
	year, month, ok := monthParams(c, h.clock, h.location)
	if !ok {
		return
	}

	monthlyReport, err := h.analyticsQueries.GetMonthlyReport(c.Request.Context(), year, month)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	pdfBytes, err := h.pdf.RenderMonthlyReport(monthlyReport)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "No se pudo generar el reporte",
		})
		return
	}

	filename := fmt.Sprintf("reporte_%d_%d.pdf", int(month), year)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
