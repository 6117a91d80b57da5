package components

import (
	"seating-service/internal/handler"
	"seating-service/internal/handler/api"
	"seating-service/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewSeatingHandler,
		api.NewBookingHandler,
		api.NewSalesHandler,
		api.NewEventHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func newHandlers(
	seating *api.SeatingHandler,
	bookings *api.BookingHandler,
	sales *api.SalesHandler,
	events *api.EventHandler,
) handler.Handlers {
	return handler.Handlers{
		Seating:  seating,
		Bookings: bookings,
		Sales:    sales,
		Events:   events,
	}
}
