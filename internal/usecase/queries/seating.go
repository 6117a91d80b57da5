package queries

import (
	"context"

	"seating-service/internal/domain/event"
	"seating-service/internal/domain/layout"
	"seating-service/internal/domain/pricing"
	"seating-service/internal/domain/seat"
	"seating-service/internal/domain/seatmap"
	"seating-service/internal/infra"
	"seating-service/internal/pkg/errs"
)

var ErrEventNotFound = errs.Markf(errs.ErrNotFound, "event not found")

type EventReadStore interface {
	FindByID(ctx context.Context, id string) (*event.Event, error)
	SeatsByEvent(ctx context.Context, eventID string) ([]seat.Seat, error)
	SeatCounts(ctx context.Context, eventID string) (*SeatCounts, error)
}

type SeatingQueries interface {
	// Sections returns the priced seat map of an event in resolver order.
	Sections(ctx context.Context, eventID string) ([]seatmap.SectionView, error)
}

type seatingQueriesImpl struct {
	events   EventReadStore
	resolver *layout.Resolver
	calc     *pricing.Calculator
}

func NewSeatingQueries(events EventReadStore, resolver *layout.Resolver, calc *pricing.Calculator) SeatingQueries {
	return &seatingQueriesImpl{
		events:   events,
		resolver: resolver,
		calc:     calc,
	}
}

func (q *seatingQueriesImpl) Sections(ctx context.Context, eventID string) ([]seatmap.SectionView, error) {
	ev, err := q.events.FindByID(ctx, eventID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}

	seats, err := q.events.SeatsByEvent(ctx, ev.ID)
	if err != nil {
		return nil, err
	}

	defs := q.resolver.Resolve(ev.LayoutInput(seats))
	views, _ := seatmap.Assemble(defs, seats, q.calc)
	return views, nil
}
