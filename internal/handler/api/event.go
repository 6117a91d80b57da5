package api

import (
	"net/http"

	reqdto "seating-service/internal/handler/dto/request"
	resdto "seating-service/internal/handler/dto/response"
	"seating-service/internal/usecase/commands"
	"seating-service/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type EventHandler struct {
	events    commands.EventCommands
	inventory commands.InventoryCommands
	q         queries.EventQueries
}

func NewEventHandler(events commands.EventCommands, inventory commands.InventoryCommands, q queries.EventQueries) *EventHandler {
	return &EventHandler{
		events:    events,
		inventory: inventory,
		q:         q,
	}
}

// @Summary Create event
// @Description Create an event with its venue and build the seat inventory
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateEventRequest true "Event"
// @Success 201 {object} resdto.ReconcileResponse
// @Failure 400 {object} map[string]any
// @Failure 403 {object} map[string]any
// @Failure 409 {object} map[string]any
// @Router /events [post]
func (h *EventHandler) Create(c *gin.Context) {
	var req reqdto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	result, err := h.events.CreateEvent(c.Request.Context(), commands.CreateEventRequest{
		ID:       req.ID,
		Name:     req.Name,
		StartsAt: req.StartsAt,
		Venue:    req.VenueConfig(),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromReconcileResult(result))
}

// @Summary Replace layout
// @Description Replace the venue sections of an event and reconcile its seats. Sold seats are kept.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Param request body reqdto.UpdateLayoutRequest true "Layout"
// @Success 200 {object} resdto.ReconcileResponse
// @Failure 400 {object} map[string]any
// @Failure 404 {object} map[string]any
// @Failure 409 {object} map[string]any
// @Router /events/{id}/layout [put]
func (h *EventHandler) UpdateLayout(c *gin.Context) {
	var req reqdto.UpdateLayoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	result, err := h.events.UpdateLayout(c.Request.Context(), commands.UpdateLayoutRequest{
		EventID:   c.Param("id"),
		VenueName: req.VenueName,
		Sections:  req.Records(),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReconcileResult(result))
}

// @Summary Cancel event
// @Tags events
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 204
// @Failure 404 {object} map[string]any
// @Failure 409 {object} map[string]any
// @Router /events/{id}/cancel [post]
func (h *EventHandler) Cancel(c *gin.Context) {
	if err := h.events.CancelEvent(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Reconcile inventory
// @Description Align stored seats with the resolved layout
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200 {object} resdto.ReconcileResponse
// @Failure 404 {object} map[string]any
// @Router /events/{id}/reconcile [post]
func (h *EventHandler) Reconcile(c *gin.Context) {
	result, err := h.inventory.ReconcileEvent(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReconcileResult(result))
}

// @Summary Inventory summary
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200 {object} resdto.InventoryResponse
// @Failure 404 {object} map[string]any
// @Router /events/{id}/inventory [get]
func (h *EventHandler) Inventory(c *gin.Context) {
	summary, err := h.q.Inventory(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	res, err := resdto.FromInventorySummary(summary)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
