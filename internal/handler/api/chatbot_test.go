//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"salon-reservas/internal/handler/api"
	"salon-reservas/internal/usecase/queries"
	"salon-reservas/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

// The chatbot has no storage behind it, so the handler is exercised
// against the real keyword matcher.
type ChatHandlerTestSuite struct {
	suite.Suite
	router *gin.Engine
}

func (s *ChatHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	handler := api.NewChatHandler(queries.NewChatQueries())
	s.router.POST("/chatbot/query", handler.Query)
}

func TestChatHandlerSuite(t *testing.T) {
	suite.Run(t, new(ChatHandlerTestSuite))
}

func (s *ChatHandlerTestSuite) TestQuery() {
	s.Run("success: answers a known topic", func() {
		body := map[string]any{"message": "¿Cuál es el precio del salón?"}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/chatbot/query", body, "")

		var response struct {
			Respuesta string `json:"respuesta"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.NotEmpty(response.Respuesta)
	})

	s.Run("success: falls back on an unknown topic", func() {
		body := map[string]any{"message": "xyzzy plugh"}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/chatbot/query", body, "")

		var response struct {
			Respuesta string `json:"respuesta"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.NotEmpty(response.Respuesta)
	})

	s.Run("error: 400 when the message field is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/chatbot/query", map[string]any{}, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Formato de solicitud inválido")
	})
}
