package queries

import (
	"context"

	"seating-service/internal/domain/layout"
	"seating-service/internal/infra"
)

type EventQueries interface {
	Inventory(ctx context.Context, eventID string) (*InventorySummary, error)
}

type eventQueriesImpl struct {
	events   EventReadStore
	resolver *layout.Resolver
}

func NewEventQueries(events EventReadStore, resolver *layout.Resolver) EventQueries {
	return &eventQueriesImpl{events: events, resolver: resolver}
}

func (q *eventQueriesImpl) Inventory(ctx context.Context, eventID string) (*InventorySummary, error) {
	ev, err := q.events.FindByID(ctx, eventID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}

	counts, err := q.events.SeatCounts(ctx, ev.ID)
	if err != nil {
		return nil, err
	}

	seats, err := q.events.SeatsByEvent(ctx, ev.ID)
	if err != nil {
		return nil, err
	}

	defs, source := q.resolver.ResolveWith(ev.LayoutInput(seats))
	nominal := 0
	for _, d := range defs {
		nominal += d.SeatCount
	}

	return &InventorySummary{
		EventID:        ev.ID,
		EventName:      ev.Name,
		Cancelled:      ev.Cancelled,
		LayoutSource:   source,
		SectionCount:   len(defs),
		NominalSeats:   nominal,
		SeatCount:      counts.Total,
		AvailableSeats: counts.Available,
		OccupiedSeats:  counts.Occupied,
	}, nil
}
