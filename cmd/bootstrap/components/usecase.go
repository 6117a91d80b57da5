package components

import (
	"seating-service/internal/domain/booking"
	"seating-service/internal/domain/layout"
	"seating-service/internal/domain/pricing"
	"seating-service/internal/pkg/clock"
	"seating-service/internal/pkg/config"
	"seating-service/internal/usecase"
	"seating-service/internal/usecase/commands"
	"seating-service/internal/usecase/queries"
	"seating-service/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		NewQuoteCommands,
		NewBookingCommands,
		commands.NewInventoryUseCase,
		commands.NewEventUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewSeatingQueries,
		queries.NewEventQueries,
		queries.NewSalesQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewQuoteCommands(
	uow shared.UnitOfWork,
	resolver *layout.Resolver,
	calc *pricing.Calculator,
	intents commands.IntentStore,
	clk clock.Clock,
	cfg config.Config,
) commands.QuoteCommands {
	return commands.NewQuoteUseCase(uow, resolver, calc, intents, clk, cfg.Intent.TTL)
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	resolver *layout.Resolver,
	calc *pricing.Calculator,
	factory *booking.Factory,
	intents commands.IntentStore,
	clk clock.Clock,
) commands.BookingCommands {
	return commands.NewBookingUseCase(uow, resolver, calc, factory, intents, clk)
}
