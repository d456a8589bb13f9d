package api

import (
	"errors"
	"net/http"

	reqdto "salon-reservas/internal/handler/dto/request"
	"salon-reservas/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ChatHandler struct {
	chatQueries queries.ChatQueries
}

func NewChatHandler(chatQueries queries.ChatQueries) *ChatHandler {
	return &ChatHandler{chatQueries: chatQueries}
}

// @Summary Chatbot query
// @Description Answer a frequently asked question about the venue
// @Tags chatbot
// @Accept json
// @Produce json
// @Param request body reqdto.ChatQueryRequest true "Visitor message"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /chatbot/query [post]
func (h *ChatHandler) Query(c *gin.Context) {
	var req reqdto.ChatQueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Formato de solicitud inválido",
		})
		return
	}

	reply, err := h.chatQueries.Reply(c.Request.Context(), req.Message)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrEmptyMessage):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "El mensaje no puede estar vacío",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"respuesta": reply})
}
