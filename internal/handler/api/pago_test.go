//go:build unit

package api_test

import (
	"fmt"
	"net/http"
	"testing"

	"salon-reservas/internal/domain/booking"
	"salon-reservas/internal/handler/api"
	reqdto "salon-reservas/internal/handler/dto/request"
	"salon-reservas/internal/usecase/commands"
	"salon-reservas/internal/usecase/queries"
	"salon-reservas/tests/common/httptest"
	commandsmock "salon-reservas/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PaymentHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockPaymentCommands
	handler      *api.PaymentHandler
}

func (s *PaymentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockPaymentCommands(s.mockCtrl)
	s.handler = api.NewPaymentHandler(s.mockCommands)

	s.router.POST("/reservas/:id/pagos", s.handler.AddPayment)
	s.router.DELETE("/reservas/:id/pagos/:pago_id", s.handler.DeletePayment)
}

func (s *PaymentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPaymentHandlerSuite(t *testing.T) {
	suite.Run(t, new(PaymentHandlerTestSuite))
}

func (s *PaymentHandlerTestSuite) TestAddPayment() {
	reservationID := uuid.New()
	url := fmt.Sprintf("/reservas/%s/pagos", reservationID)
	reqBody := reqdto.CreatePaymentRequest{Monto: 50000}

	s.Run("success: returns 201 with the refreshed reservation", func() {
		view := &queries.ReservationView{ID: reservationID, SaldoRestante: 20000}
		s.mockCommands.EXPECT().AddPayment(gomock.Any(), reservationID, reqBody).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response queries.ReservationView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(reservationID, response.ID)
		s.Equal(20000.0, response.SaldoRestante)
	})

	s.Run("error: 400 on a malformed reservation id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservas/not-a-uuid/pagos", reqBody, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "ID de reserva inválido")
	})

	s.Run("error: 400 on a non-positive bound amount", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqdto.CreatePaymentRequest{Monto: 0}, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Formato de solicitud inválido")
	})

	s.Run("error: 404 when the reservation does not exist", func() {
		s.mockCommands.EXPECT().AddPayment(gomock.Any(), reservationID, reqBody).
			Return(nil, commands.ErrReservationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reserva no encontrada")
	})

	s.Run("error: 409 on an archived reservation", func() {
		s.mockCommands.EXPECT().AddPayment(gomock.Any(), reservationID, reqBody).
			Return(nil, commands.ErrPaymentOnArchived).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "reserva archivada")
	})

	s.Run("error: 422 when the amount exceeds the balance", func() {
		s.mockCommands.EXPECT().AddPayment(gomock.Any(), reservationID, reqBody).
			Return(nil, booking.ErrAmountExceedsBalance).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "supera el saldo restante")
	})
}

func (s *PaymentHandlerTestSuite) TestDeletePayment() {
	reservationID := uuid.New()
	paymentID := uuid.New()
	url := fmt.Sprintf("/reservas/%s/pagos/%s", reservationID, paymentID)
	reqBody := reqdto.DeletePaymentRequest{PasswordMaestra: "secreto"}

	s.Run("success: returns 200 with the refreshed reservation", func() {
		view := &queries.ReservationView{ID: reservationID, SaldoRestante: 70000}
		s.mockCommands.EXPECT().DeletePayment(gomock.Any(), reservationID, paymentID, "secreto").
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, reqBody, "")

		var response queries.ReservationView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(70000.0, response.SaldoRestante)
	})

	s.Run("error: 400 when the master password is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, map[string]any{}, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Formato de solicitud inválido")
	})

	s.Run("error: 403 on a wrong master password", func() {
		s.mockCommands.EXPECT().DeletePayment(gomock.Any(), reservationID, paymentID, "secreto").
			Return(nil, commands.ErrMasterPasswordWrong).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, reqBody, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Contraseña maestra incorrecta")
	})

	s.Run("error: 404 on an unknown payment", func() {
		s.mockCommands.EXPECT().DeletePayment(gomock.Any(), reservationID, paymentID, "secreto").
			Return(nil, commands.ErrPaymentNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, reqBody, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Pago no encontrado")
	})
}
