//go:build unit

package api_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"clinic-agenda/internal/handler/api"
	"clinic-agenda/internal/usecase/commands"
	commandsmock "clinic-agenda/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type WebhookHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockGateway *commandsmock.MockPaymentGateway
	mockConfirm *commandsmock.MockConfirmationCommands
	handler     *api.WebhookHandler
}

func (s *WebhookHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockGateway = commandsmock.NewMockPaymentGateway(s.mockCtrl)
	s.mockConfirm = commandsmock.NewMockConfirmationCommands(s.mockCtrl)
	s.handler = api.NewWebhookHandler(s.mockGateway, s.mockConfirm)

	s.router.POST("/api/webhooks/gateway", s.handler.HandleGatewayEvent)
}

func (s *WebhookHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestWebhookHandlerSuite(t *testing.T) {
	suite.Run(t, new(WebhookHandlerTestSuite))
}

func (s *WebhookHandlerTestSuite) post(body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/webhooks/gateway", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *WebhookHandlerTestSuite) TestPaymentEventIsRefetchedAndApplied() {
	gp := &commands.GatewayPayment{
		ProviderRef: "mp-123",
		Status:      commands.GatewayStatusApproved,
		AmountCents: 15000,
		Currency:    "BRL",
	}
	s.mockGateway.EXPECT().FetchPayment(gomock.Any(), "mp-123").Return(gp, nil)
	s.mockConfirm.EXPECT().ApplyGatewayStatus(gomock.Any(), gp).Return(nil)

	w := s.post(`{"type":"payment","data":{"id":"mp-123"}}`)

	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), `"status":"ok"`)
}

func (s *WebhookHandlerTestSuite) TestNonPaymentEventIsAcknowledged() {
	w := s.post(`{"type":"plan","data":{"id":"mp-123"}}`)

	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), `"status":"ignored"`)
}

func (s *WebhookHandlerTestSuite) TestEmptyPaymentIDIsAcknowledged() {
	w := s.post(`{"type":"payment","data":{"id":""}}`)

	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), `"status":"ignored"`)
}

func (s *WebhookHandlerTestSuite) TestMalformedPayload() {
	w := s.post(`{"type":`)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *WebhookHandlerTestSuite) TestFetchFailureAsksForRedelivery() {
	s.mockGateway.EXPECT().FetchPayment(gomock.Any(), "mp-123").
		Return(nil, commands.ErrUpstreamGateway)

	w := s.post(`{"type":"payment","data":{"id":"mp-123"}}`)
	s.Equal(http.StatusBadGateway, w.Code)
}

func (s *WebhookHandlerTestSuite) TestUnknownPaymentReturns404() {
	gp := &commands.GatewayPayment{ProviderRef: "mp-999", Status: commands.GatewayStatusApproved}
	s.mockGateway.EXPECT().FetchPayment(gomock.Any(), "mp-999").Return(gp, nil)
	s.mockConfirm.EXPECT().ApplyGatewayStatus(gomock.Any(), gp).Return(commands.ErrPaymentNotFound)

	w := s.post(`{"type":"payment","data":{"id":"mp-999"}}`)

	s.Equal(http.StatusNotFound, w.Code)
	s.Contains(w.Body.String(), "Unknown payment reference")
}

func (s *WebhookHandlerTestSuite) TestAmountMismatchReturns409() {
	gp := &commands.GatewayPayment{ProviderRef: "mp-123", Status: commands.GatewayStatusApproved}
	s.mockGateway.EXPECT().FetchPayment(gomock.Any(), "mp-123").Return(gp, nil)
	s.mockConfirm.EXPECT().ApplyGatewayStatus(gomock.Any(), gp).Return(commands.ErrAmountMismatch)

	w := s.post(`{"type":"payment","data":{"id":"mp-123"}}`)

	s.Equal(http.StatusConflict, w.Code)
	s.Contains(w.Body.String(), "amount does not match")
}

func (s *WebhookHandlerTestSuite) TestUnexpectedFailureReturns500() {
	gp := &commands.GatewayPayment{ProviderRef: "mp-123", Status: commands.GatewayStatusApproved}
	s.mockGateway.EXPECT().FetchPayment(gomock.Any(), "mp-123").Return(gp, nil)
	s.mockConfirm.EXPECT().ApplyGatewayStatus(gomock.Any(), gp).Return(commands.ErrDatabaseOperationFailed)

	w := s.post(`{"type":"payment","data":{"id":"mp-123"}}`)
	s.Equal(http.StatusInternalServerError, w.Code)
}
