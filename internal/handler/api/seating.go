package api

import (
	"net/http"

	resdto "seating-service/internal/handler/dto/response"
	"seating-service/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SeatingHandler struct {
	q queries.SeatingQueries
}

func NewSeatingHandler(q queries.SeatingQueries) *SeatingHandler {
	return &SeatingHandler{q: q}
}

// @Summary Seat map
// @Description Sections of an event with rows, seats, prices and availability
// @Tags seating
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {array} resdto.SectionResponse
// @Failure 404 {object} map[string]any
// @Router /events/{id}/sections [get]
func (h *SeatingHandler) Sections(c *gin.Context) {
	views, err := h.q.Sections(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	res, err := resdto.FromSectionViews(views)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
