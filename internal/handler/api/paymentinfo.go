package api

import (
	"net/http"

	"salon-reservas/internal/pkg/config"
	"salon-reservas/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PaymentInfoHandler struct {
	alias string
}

func NewPaymentInfoHandler(business config.BusinessConfig) *PaymentInfoHandler {
	return &PaymentInfoHandler{alias: business.PaymentAlias}
}

// @Summary Transfer details
// @Description Bank alias clients transfer the deposit to
// @Tags payments
// @Produce json
// @Success 200 {object} queries.PaymentInfoView
// @Router /pagos/info [get]
func (h *PaymentInfoHandler) GetPaymentInfo(c *gin.Context) {
	c.JSON(http.StatusOK, queries.PaymentInfoView{Alias: h.alias})
}
