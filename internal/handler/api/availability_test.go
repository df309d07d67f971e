//go:build unit

package api_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"clinic-agenda/internal/handler/api"
	"clinic-agenda/internal/usecase/queries"
	queriesmock "clinic-agenda/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AvailabilityHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockCtrl         *gomock.Controller
	mockAvailability *queriesmock.MockAvailabilityQueries
	handler          *api.AvailabilityHandler
}

func (s *AvailabilityHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockAvailability = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)
	s.handler = api.NewAvailabilityHandler(s.mockAvailability)

	s.router.GET("/api/public/:token/slots", s.handler.ListSlots)
}

func (s *AvailabilityHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAvailabilityHandlerSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityHandlerTestSuite))
}

func (s *AvailabilityHandlerTestSuite) get(query string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/public/limpeza/slots"+query, nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *AvailabilityHandlerTestSuite) TestListSlots() {
	views := []queries.SlotView{
		{
			StartAt: time.Date(2026, time.March, 9, 12, 0, 0, 0, time.UTC),
			EndAt:   time.Date(2026, time.March, 9, 13, 0, 0, 0, time.UTC),
		},
		{
			StartAt: time.Date(2026, time.March, 9, 13, 0, 0, 0, time.UTC),
			EndAt:   time.Date(2026, time.March, 9, 14, 0, 0, 0, time.UTC),
		},
	}
	s.mockAvailability.EXPECT().
		ListSlots(gomock.Any(), "limpeza", "2026-03-09", "2026-03-15").
		Return(views, nil)

	w := s.get("?start_date=2026-03-09&end_date=2026-03-15")

	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), "2026-03-09T12:00:00Z")
	s.Contains(w.Body.String(), "2026-03-09T14:00:00Z")
}

func (s *AvailabilityHandlerTestSuite) TestListSlotsEmpty() {
	s.mockAvailability.EXPECT().
		ListSlots(gomock.Any(), "limpeza", "2026-03-09", "2026-03-09").
		Return([]queries.SlotView{}, nil)

	w := s.get("?start_date=2026-03-09&end_date=2026-03-09")

	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), `"slots":[]`)
}

func (s *AvailabilityHandlerTestSuite) TestMissingQueryParameters() {
	s.Equal(http.StatusBadRequest, s.get("").Code)
	s.Equal(http.StatusBadRequest, s.get("?start_date=2026-03-09").Code)
	s.Equal(http.StatusBadRequest, s.get("?end_date=2026-03-09").Code)
}

func (s *AvailabilityHandlerTestSuite) TestUnknownLink() {
	s.mockAvailability.EXPECT().
		ListSlots(gomock.Any(), "limpeza", "2026-03-09", "2026-03-15").
		Return(nil, queries.ErrLinkNotFound)

	w := s.get("?start_date=2026-03-09&end_date=2026-03-15")
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *AvailabilityHandlerTestSuite) TestInvalidRange() {
	s.mockAvailability.EXPECT().
		ListSlots(gomock.Any(), "limpeza", "2026-03-15", "2026-03-09").
		Return(nil, queries.ErrInvalidRange)

	w := s.get("?start_date=2026-03-15&end_date=2026-03-09")

	s.Equal(http.StatusBadRequest, w.Code)
	s.Contains(w.Body.String(), "Invalid date range")
}

func (s *AvailabilityHandlerTestSuite) TestRangeTooLarge() {
	s.mockAvailability.EXPECT().
		ListSlots(gomock.Any(), "limpeza", "2026-01-01", "2026-06-01").
		Return(nil, queries.ErrRangeTooLarge)

	w := s.get("?start_date=2026-01-01&end_date=2026-06-01")

	s.Equal(http.StatusBadRequest, w.Code)
	s.Contains(w.Body.String(), "31 days")
}
