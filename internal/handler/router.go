package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"seating-service/internal/domain/user"
	"seating-service/internal/handler/api"
	"seating-service/internal/handler/middleware"
	"seating-service/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers groups the HTTP handlers the router mounts.
type Handlers struct {
	Seating  *api.SeatingHandler
	Bookings *api.BookingHandler
	Sales    *api.SalesHandler
	Events   *api.EventHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.NewLogger(cfg.Log).LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireOperator := []gin.HandlerFunc{authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(user.RoleOperator)}

	apiGroup := engine.Group("/api")
	{
		events := apiGroup.Group("/events")
		{
			addRoutes(events, []route{
				{Method: http.MethodGet, Path: "/:id/sections", Handler: h.Seating.Sections},
			})

			buyer := events.Group("")
			buyer.Use(authMiddleware.RequireAuth())
			addRoutes(buyer, []route{
				{Method: http.MethodPost, Path: "/:id/quotes", Handler: h.Bookings.CreateQuote},
				{Method: http.MethodPost, Path: "/:id/bookings", Handler: h.Bookings.CreateBooking},
			})

			addRoutes(events, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Events.Create, Mw: requireOperator},
				{Method: http.MethodPut, Path: "/:id/layout", Handler: h.Events.UpdateLayout, Mw: requireOperator},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Events.Cancel, Mw: requireOperator},
				{Method: http.MethodPost, Path: "/:id/reconcile", Handler: h.Events.Reconcile, Mw: requireOperator},
				{Method: http.MethodGet, Path: "/:id/inventory", Handler: h.Events.Inventory, Mw: requireOperator},
			})
		}

		sales := apiGroup.Group("/sales")
		sales.Use(authMiddleware.RequireAuth())
		{
			addRoutes(sales, []route{
				{Method: http.MethodGet, Path: "/:id", Handler: h.Sales.Receipt},
			})
		}

		me := apiGroup.Group("/me")
		me.Use(authMiddleware.RequireAuth())
		{
			addRoutes(me, []route{
				{Method: http.MethodGet, Path: "/tickets", Handler: h.Sales.MyTickets},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
