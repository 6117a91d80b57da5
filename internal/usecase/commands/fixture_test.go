//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"seating-service/internal/domain/booking"
	"seating-service/internal/domain/layout"
	"seating-service/internal/domain/pricing"
	"seating-service/internal/domain/seat"
	"seating-service/internal/pkg/clock"
	"seating-service/internal/usecase/commands"
	"seating-service/tests/common/builder"
	"seating-service/tests/common/memstore"

	"github.com/stretchr/testify/require"
)

const quoteTTL = 15 * time.Minute

type fixture struct {
	clock     *clock.Fake
	store     *memstore.Store
	intents   *memstore.IntentStore
	resolver  *layout.Resolver
	calc      *pricing.Calculator
	events    commands.EventCommands
	inventory commands.InventoryCommands
	quotes    commands.QuoteCommands
	bookings  commands.BookingCommands
}

func newFixture() *fixture {
	clk := clock.NewFake(time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC))
	store := memstore.New(clk)
	intents := memstore.NewIntentStore(clk)
	resolver := layout.NewDefaultResolver(layout.Settings{
		DefaultBasePrice:       pricing.FromDecimal(85),
		DefaultSeatsPerRow:     10,
		DefaultSectionCapacity: 60,
		FallbackCapacity:       240,
		FallbackSeatsPerRow:    12,
	})
	calc := pricing.NewCalculator(pricing.Defaults{
		BasePrice:     pricing.FromDecimal(85),
		SeatsPerRow:   10,
		RowAdjustment: pricing.FromDecimal(7.5),
		Floor:         pricing.FromDecimal(25),
	})

	return &fixture{
		clock:     clk,
		store:     store,
		intents:   intents,
		resolver:  resolver,
		calc:      calc,
		events:    commands.NewEventUseCase(store, resolver),
		inventory: commands.NewInventoryUseCase(store, resolver),
		quotes:    commands.NewQuoteUseCase(store, resolver, calc, intents, clk, quoteTTL),
		bookings:  commands.NewBookingUseCase(store, resolver, calc, booking.NewFactory(clk), intents, clk),
	}
}

// createEvent stores the event through the use case and returns its seats
// ordered by number. With the default builder, seats 1-10 form the front row
// at 107.50 and seats 11-20 the back row at 100.00.
func (f *fixture) createEvent(t *testing.T, b *builder.EventBuilder) []seat.Seat {
	t.Helper()
	_, err := f.events.CreateEvent(context.Background(), commands.CreateEventRequest{
		ID:       b.ID,
		Name:     b.Name,
		StartsAt: b.StartsAt,
		Venue:    b.Venue(),
	})
	require.NoError(t, err)
	return f.store.Seats(b.ID)
}

func ids(seats ...seat.Seat) []string {
	return builder.SeatIDStrings(seats)
}
