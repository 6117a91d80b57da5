package api

import (
	"net/http"

	reqdto "seating-service/internal/handler/dto/request"
	resdto "seating-service/internal/handler/dto/response"
	"seating-service/internal/handler/httperr"
	"seating-service/internal/handler/middleware"
	"seating-service/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const idempotencyKeyHeader = "Idempotency-Key"

type BookingHandler struct {
	quotes   commands.QuoteCommands
	bookings commands.BookingCommands
}

func NewBookingHandler(quotes commands.QuoteCommands, bookings commands.BookingCommands) *BookingHandler {
	return &BookingHandler{
		quotes:   quotes,
		bookings: bookings,
	}
}

// @Summary Quote seats
// @Description Price a seat selection and hold the quote for a limited time. Seats are not reserved.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Param request body reqdto.QuoteRequest true "Seat selection"
// @Success 201 {object} resdto.QuoteResponse
// @Failure 400 {object} map[string]any
// @Failure 404 {object} map[string]any
// @Failure 409 {object} map[string]any
// @Router /events/{id}/quotes [post]
func (h *BookingHandler) CreateQuote(c *gin.Context) {
	buyerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}

	var req reqdto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	quote, err := h.quotes.CreateQuote(c.Request.Context(), commands.QuoteRequest{
		EventID: c.Param("id"),
		SeatIDs: req.SeatIDs,
		BuyerID: buyerID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	res, err := resdto.FromQuote(quote)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// @Summary Book seats
// @Description Sell every selected seat or none. A quote token pins the quoted total; an Idempotency-Key makes retries safe.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Param Idempotency-Key header string false "Idempotency key (UUID)"
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.ReceiptResponse
// @Success 200 {object} resdto.ReceiptResponse "replayed"
// @Failure 400 {object} map[string]any
// @Failure 404 {object} map[string]any
// @Failure 409 {object} map[string]any
// @Router /events/{id}/bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	buyerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}

	idempotencyKey, err := getIdempotencyKey(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid idempotency key format", nil)
		return
	}

	var req reqdto.CreateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		respondBindError(c, bindErr)
		return
	}

	result, err := h.bookings.CreateBooking(c.Request.Context(), commands.BookingRequest{
		EventID:        c.Param("id"),
		SeatIDs:        req.SeatIDs,
		BuyerID:        buyerID,
		PaymentMethod:  req.PaymentMethod,
		QuoteToken:     req.QuoteToken,
		IdempotencyKey: idempotencyKey,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	res, err := resdto.FromReceipt(result.Receipt)
	if err != nil {
		respondError(c, err)
		return
	}

	status := http.StatusCreated
	if result.IsReplayed {
		status = http.StatusOK
	}
	c.JSON(status, res)
}

// getIdempotencyKey returns nil when the header is absent.
func getIdempotencyKey(c *gin.Context) (*uuid.UUID, error) {
	keyStr := c.GetHeader(idempotencyKeyHeader)
	if keyStr == "" {
		return nil, nil
	}

	key, err := uuid.Parse(keyStr)
	if err != nil {
		return nil, err
	}
	return &key, nil
}
