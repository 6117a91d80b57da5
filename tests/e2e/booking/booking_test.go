//go:build e2e

package booking_test

import (
	"fmt"
	"net/http"
	"sync"
	"testing"

	"seating-service/internal/domain/user"
	"seating-service/internal/handler/dto/request"
	"seating-service/internal/handler/dto/response"
	"seating-service/internal/usecase/commands"
	"seating-service/tests/common/builder"
	"seating-service/tests/common/dbtest"
	"seating-service/tests/common/httptest"
	"seating-service/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	eventsURL   = "/api/events"
	sectionsURL = "/api/events/%s/sections"
	quotesURL   = "/api/events/%s/quotes"
	bookingsURL = "/api/events/%s/bookings"
	saleURL     = "/api/sales/%s"
	ticketsURL  = "/api/me/tickets"
)

type BookingSuite struct {
	e2e.SharedSuite
}

func (s *BookingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

// createEvent creates the default 20-seat event and returns its seat map.
func (s *BookingSuite) createEvent(t *testing.T) []response.SectionResponse {
	t.Helper()

	operator := s.JWT.GenerateToken(t, uuid.New(), user.RoleOperator)
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, eventsURL, builder.NewEventBuilder().BuildCreateRequestDTO(), operator)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(sectionsURL, "EVT-1001"), nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var sections []response.SectionResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &sections))
	return sections
}

func seatIDs(seats ...response.SeatResponse) []string {
	ids := make([]string, len(seats))
	for i, s := range seats {
		ids[i] = s.SeatID.String()
	}
	return ids
}

// =============================================================================
// TestSeatMap
// =============================================================================

func (s *BookingSuite) TestSeatMap() {
	s.Run("Normal case: rows are priced by distance from the stage", func() {
		t := s.T()
		sections := s.createEvent(t)

		require.Len(t, sections, 1)
		require.Len(t, sections[0].Rows, 2)
		require.Len(t, sections[0].Rows[0].Seats, 10)
		require.Equal(t, 107.5, sections[0].Rows[0].Seats[0].Price)
		require.Equal(t, 100.0, sections[0].Rows[1].Seats[0].Price)
		require.True(t, sections[0].Rows[1].Seats[9].Available)
	})

	s.Run("Error case: unknown event", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(sectionsURL, "EVT-404"), nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "event not found")
	})
}

// =============================================================================
// TestQuoteAndBook - quote, book against the quote, replay
// =============================================================================

func (s *BookingSuite) TestQuoteAndBook() {
	s.Run("Normal case: booking with a quote sells the seats at the quoted total", func() {
		t := s.T()
		sections := s.createEvent(t)
		front, back := sections[0].Rows[0].Seats[0], sections[0].Rows[1].Seats[0]

		buyer := uuid.New()
		token := s.JWT.GenerateToken(t, buyer, user.RoleViewer)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(quotesURL, "EVT-1001"),
			request.QuoteRequest{SeatIDs: seatIDs(front, back)}, token)
		var quote response.QuoteResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &quote)
		require.Equal(t, 207.5, quote.Total)
		require.NotEmpty(t, quote.Token)

		key := uuid.NewString()
		body := request.CreateBookingRequest{SeatIDs: seatIDs(front, back), PaymentMethod: "card", QuoteToken: quote.Token}
		w = httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, fmt.Sprintf(bookingsURL, "EVT-1001"),
			body, token, map[string]string{"Idempotency-Key": key})
		var receipt response.ReceiptResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &receipt)

		expected := &response.ReceiptResponse{
			EventID:       "EVT-1001",
			EventName:     "Autumn Gala",
			BuyerID:       buyer,
			PaymentMethod: "card",
			Total:         207.5,
			Lines: []response.ReceiptLineResponse{
				{SeatID: front.SeatID, SeatNumber: 1, SeatLabel: "Seat 1", SectionID: "MAIN", SectionName: "Main Floor", RowName: "Row 1", UnitPrice: 107.5},
				{SeatID: back.SeatID, SeatNumber: 11, SeatLabel: "Seat 11", SectionID: "MAIN", SectionName: "Main Floor", RowName: "Row 2", UnitPrice: 100},
			},
		}
		opts := []cmp.Option{
			cmpopts.IgnoreFields(response.ReceiptResponse{}, "SaleID", "CreatedAt"),
			cmpopts.IgnoreFields(response.ReceiptLineResponse{}, "TicketCode"),
			cmpopts.SortSlices(func(a, b response.ReceiptLineResponse) bool { return a.SeatNumber < b.SeatNumber }),
		}
		if diff := cmp.Diff(expected, &receipt, opts...); diff != "" {
			t.Errorf("Receipt mismatch (-want +got):\n%s", diff)
		}

		// the quote is spent; the same key replays the stored receipt
		w = httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, fmt.Sprintf(bookingsURL, "EVT-1001"),
			body, token, map[string]string{"Idempotency-Key": key})
		var replayed response.ReceiptResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &replayed)
		require.Equal(t, receipt.SaleID, replayed.SaleID)

		require.Equal(t, 1, dbtest.CountSales(t, s.DB, "EVT-1001"))
		require.Equal(t, 2, dbtest.CountSeats(t, s.DB, "EVT-1001", "occupied"))
		require.Equal(t, 1, dbtest.CountNotificationJobs(t, s.DB, commands.NotificationKindBooking))
	})

	s.Run("Error case: seats already sold", func() {
		t := s.T()
		sections := s.createEvent(t)
		seat := sections[0].Rows[0].Seats[3]

		first := s.JWT.GenerateToken(t, uuid.New(), user.RoleViewer)
		second := s.JWT.GenerateToken(t, uuid.New(), user.RoleViewer)
		body := request.CreateBookingRequest{SeatIDs: seatIDs(seat), PaymentMethod: "card"}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(bookingsURL, "EVT-1001"), body, first)
		require.Equal(t, http.StatusCreated, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(bookingsURL, "EVT-1001"), body, second)
		httptest.AssertErrorKind(t, w, http.StatusConflict, "conflict")

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(quotesURL, "EVT-1001"),
			request.QuoteRequest{SeatIDs: seatIDs(seat)}, second)
		httptest.AssertErrorKind(t, w, http.StatusConflict, "conflict")
	})

	s.Run("Error case: unknown quote token asks for a new quote", func() {
		t := s.T()
		sections := s.createEvent(t)
		token := s.JWT.GenerateToken(t, uuid.New(), user.RoleViewer)

		body := request.CreateBookingRequest{
			SeatIDs:       seatIDs(sections[0].Rows[0].Seats[0]),
			PaymentMethod: "card",
			QuoteToken:    uuid.NewString(),
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(bookingsURL, "EVT-1001"), body, token)
		httptest.AssertErrorKind(t, w, http.StatusConflict, "consistency")
		require.Zero(t, dbtest.CountSales(t, s.DB, "EVT-1001"))
	})

	s.Run("Error case: price change after quoting", func() {
		t := s.T()
		sections := s.createEvent(t)
		seat := sections[0].Rows[0].Seats[0]
		token := s.JWT.GenerateToken(t, uuid.New(), user.RoleViewer)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(quotesURL, "EVT-1001"),
			request.QuoteRequest{SeatIDs: seatIDs(seat)}, token)
		var quote response.QuoteResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &quote)

		operator := s.JWT.GenerateToken(t, uuid.New(), user.RoleOperator)
		layout := request.UpdateLayoutRequest{Sections: []request.SectionRequest{
			{Code: "MAIN", DisplayName: "Main Floor", BasePrice: 150, SeatCount: 20, SeatsPerRow: 10},
		}}
		w = httptest.PerformRequest(t, s.Router, http.MethodPut, "/api/events/EVT-1001/layout", layout, operator)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		body := request.CreateBookingRequest{SeatIDs: seatIDs(seat), PaymentMethod: "card", QuoteToken: quote.Token}
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(bookingsURL, "EVT-1001"), body, token)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "prices changed")
	})

	s.Run("Auth test - Unauthorized without a token", func() {
		t := s.T()
		body := request.QuoteRequest{SeatIDs: []string{uuid.NewString()}}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(quotesURL, "EVT-1001"), body, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Access token required")

		expired := s.JWT.CreateExpiredToken(t, uuid.New(), user.RoleViewer)
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(quotesURL, "EVT-1001"), body, expired)
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Invalid or expired token")
	})
}

// =============================================================================
// TestConcurrentBooking - one seat, many buyers
// =============================================================================

func (s *BookingSuite) TestConcurrentBooking() {
	s.Run("Normal case: exactly one buyer wins a contested seat", func() {
		t := s.T()
		sections := s.createEvent(t)
		body := request.CreateBookingRequest{SeatIDs: seatIDs(sections[0].Rows[0].Seats[5]), PaymentMethod: "card"}

		const buyers = 6
		codes := make([]int, buyers)
		var wg sync.WaitGroup
		for i := range buyers {
			token := s.JWT.GenerateToken(t, uuid.New(), user.RoleViewer)
			wg.Add(1)
			go func() {
				defer wg.Done()
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(bookingsURL, "EVT-1001"), body, token)
				codes[i] = w.Code
			}()
		}
		wg.Wait()

		won, lost := 0, 0
		for _, c := range codes {
			switch c {
			case http.StatusCreated:
				won++
			case http.StatusConflict:
				lost++
			}
		}
		require.Equal(t, 1, won)
		require.Equal(t, buyers-1, lost)
		require.Equal(t, 1, dbtest.CountSales(t, s.DB, "EVT-1001"))
	})
}

// =============================================================================
// TestReceiptsAndTickets
// =============================================================================

func (s *BookingSuite) TestReceiptsAndTickets() {
	s.Run("Normal case: receipt visibility and ticket pagination", func() {
		t := s.T()
		sections := s.createEvent(t)
		buyer := uuid.New()
		token := s.JWT.GenerateToken(t, buyer, user.RoleViewer)

		var saleID uuid.UUID
		for _, seat := range sections[0].Rows[1].Seats[:3] {
			body := request.CreateBookingRequest{SeatIDs: seatIDs(seat), PaymentMethod: "card"}
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(bookingsURL, "EVT-1001"), body, token)
			var receipt response.ReceiptResponse
			httptest.AssertSuccessResponse(t, w, http.StatusCreated, &receipt)
			saleID = receipt.SaleID
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(saleURL, saleID), nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		operator := s.JWT.GenerateToken(t, uuid.New(), user.RoleOperator)
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(saleURL, saleID), nil, operator)
		require.Equal(t, http.StatusOK, w.Code)

		stranger := s.JWT.GenerateToken(t, uuid.New(), user.RoleViewer)
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(saleURL, saleID), nil, stranger)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "sale not found")

		seen := map[string]bool{}
		next := ""
		for page := 0; page < 3; page++ {
			url := ticketsURL + "?limit=2"
			if next != "" {
				url += "&after=" + next
			}
			w = httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, token)
			var list response.TicketListResponse
			httptest.AssertSuccessResponse(t, w, http.StatusOK, &list)
			for _, tk := range list.Tickets {
				require.False(t, seen[tk.TicketCode], "ticket listed twice")
				seen[tk.TicketCode] = true
			}
			next = list.NextCursor
			if next == "" {
				break
			}
		}
		require.Len(t, seen, 3)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, ticketsURL+"?after=bogus", nil, token)
		httptest.AssertErrorKind(t, w, http.StatusBadRequest, "validation")
	})
}
