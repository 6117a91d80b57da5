//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"seating-service/internal/domain/user"
	"seating-service/internal/handler/api"
	resdto "seating-service/internal/handler/dto/response"
	"seating-service/internal/usecase/queries"
	"seating-service/tests/common/builder"
	"seating-service/tests/common/httptest"
	queriesmock "seating-service/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SalesHandlerTestSuite struct {
	suite.Suite
	router    *gin.Engine
	mockCtrl  *gomock.Controller
	mockSales *queriesmock.MockSalesQueries
	actor     uuid.UUID
}

func (s *SalesHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockSales = queriesmock.NewMockSalesQueries(s.mockCtrl)
	h := api.NewSalesHandler(s.mockSales)

	s.actor = uuid.New()
	auth := fakeAuth(s.actor, user.RoleOperator)
	s.router.GET("/sales/:id", auth, h.Receipt)
	s.router.GET("/me/tickets", auth, h.MyTickets)
}

func (s *SalesHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSalesHandlerSuite(t *testing.T) {
	suite.Run(t, new(SalesHandlerTestSuite))
}

func (s *SalesHandlerTestSuite) TestReceipt() {
	receipt := builder.NewSaleBuilder().BuildReceipt()
	url := "/sales/" + receipt.SaleID.String()

	s.Run("success: passes actor and role through", func() {
		s.mockSales.EXPECT().Receipt(gomock.Any(), receipt.SaleID, s.actor, user.RoleOperator).
			Return(receipt, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body resdto.ReceiptResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(receipt.BuyerID, body.BuyerID)
		s.Equal("Autumn Gala", body.EventName)
		s.Equal(215.0, body.Total)
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/sales/not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid sale ID format")
	})

	s.Run("error: 404 when hidden or unknown", func() {
		s.mockSales.EXPECT().Receipt(gomock.Any(), receipt.SaleID, s.actor, user.RoleOperator).
			Return(nil, queries.ErrSaleNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "sale not found")
	})
}

func (s *SalesHandlerTestSuite) TestMyTickets() {
	views := builder.NewSaleBuilder().With(func(b *builder.SaleBuilder) { b.BuyerID = s.actor }).BuildTicketViews()

	s.Run("success: first page with a cursor", func() {
		next := &queries.Cursor{After: queries.EncodeAfterCursor(views[1].PurchasedAt, views[1].LineID)}
		s.mockSales.EXPECT().Tickets(gomock.Any(), s.actor, (*queries.Cursor)(nil), 2).
			Return(views, next, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/me/tickets?limit=2", nil, "bearer-token")

		var body resdto.TicketListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Tickets, 2)
		s.Equal(views[0].TicketCode, body.Tickets[0].TicketCode)
		s.Equal(107.5, body.Tickets[0].Price)
		s.Equal(next.After, body.NextCursor)
	})

	s.Run("success: cursor is forwarded", func() {
		s.mockSales.EXPECT().Tickets(gomock.Any(), s.actor, &queries.Cursor{After: "abc"}, 0).
			Return([]*queries.TicketView{}, nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/me/tickets?after=abc", nil, "bearer-token")

		var body resdto.TicketListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Empty(body.Tickets)
		s.Empty(body.NextCursor)
	})

	s.Run("error: 400 on non-numeric limit", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/me/tickets?limit=ten", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid limit")
	})

	s.Run("error: 400 on malformed cursor", func() {
		s.mockSales.EXPECT().Tickets(gomock.Any(), s.actor, gomock.Any(), 0).
			Return(nil, nil, queries.ErrInvalidCursor).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/me/tickets?after=%25%25", nil, "bearer-token")
		httptest.AssertErrorKind(s.T(), rec, http.StatusBadRequest, "validation")
	})

	s.Run("error: 401 when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/me/tickets", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}
