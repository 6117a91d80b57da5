package api

import (
	"net/http"
	"strconv"

	resdto "seating-service/internal/handler/dto/response"
	"seating-service/internal/handler/httperr"
	"seating-service/internal/handler/middleware"
	"seating-service/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SalesHandler struct {
	q queries.SalesQueries
}

func NewSalesHandler(q queries.SalesQueries) *SalesHandler {
	return &SalesHandler{q: q}
}

// @Summary Get receipt
// @Description Receipt of a sale. Visible to its buyer and to operators.
// @Tags sales
// @Produce json
// @Security BearerAuth
// @Param id path string true "Sale ID"
// @Success 200 {object} resdto.ReceiptResponse
// @Failure 400 {object} map[string]any
// @Failure 404 {object} map[string]any
// @Router /sales/{id} [get]
func (h *SalesHandler) Receipt(c *gin.Context) {
	saleID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid sale ID format", nil)
		return
	}
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}
	role, _ := middleware.GetUserRole(c)

	receipt, err := h.q.Receipt(c.Request.Context(), saleID, actorID, role)
	if err != nil {
		respondError(c, err)
		return
	}

	res, err := resdto.FromReceipt(receipt)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary My tickets
// @Description Tickets of the current buyer, newest sale first
// @Tags sales
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size (default 20, max 200)"
// @Param after query string false "Cursor from a previous page"
// @Success 200 {object} resdto.TicketListResponse
// @Failure 400 {object} map[string]any
// @Router /me/tickets [get]
func (h *SalesHandler) MyTickets(c *gin.Context) {
	buyerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid limit", nil)
			return
		}
		limit = n
	}

	var cursor *queries.Cursor
	if after := c.Query("after"); after != "" {
		cursor = &queries.Cursor{After: after}
	}

	tickets, next, err := h.q.Tickets(c.Request.Context(), buyerID, cursor, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	res, err := resdto.FromTicketViews(tickets, next)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
