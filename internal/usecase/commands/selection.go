package commands

import (
	"context"
	"strings"

	"seating-service/internal/domain/event"
	"seating-service/internal/domain/layout"
	"seating-service/internal/domain/pricing"
	"seating-service/internal/domain/seatmap"
	"seating-service/internal/infra"
	"seating-service/internal/pkg/errs"
	"seating-service/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrEventNotFound   = errs.Markf(errs.ErrNotFound, "event not found")
	ErrEventCancelled  = errs.Markf(errs.ErrConflict, "event is cancelled")
	ErrNoSeatsSelected = errs.Markf(errs.ErrValidation, "at least one seat must be selected")
	ErrSeatUnavailable = errs.Markf(errs.ErrConflict, "one or more seats are no longer available")
)

// selection is a validated, priced set of seats of one event.
type selection struct {
	event *event.Event
	seats []seatmap.PricedSeat
	ids   []uuid.UUID
	total pricing.Money
}

// ParseSeatIDs parses and de-duplicates seat ids, keeping first-seen order.
func ParseSeatIDs(raw []string) ([]uuid.UUID, error) {
	if len(raw) == 0 {
		return nil, ErrNoSeatsSelected
	}
	seen := make(map[uuid.UUID]struct{}, len(raw))
	ids := make([]uuid.UUID, 0, len(raw))
	for _, r := range raw {
		id, err := uuid.Parse(strings.TrimSpace(r))
		if err != nil {
			return nil, errs.Markf(errs.ErrValidation, "invalid seat id %q", r)
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids, nil
}

// priceSelection prices the requested seats against the layout resolved from
// current storage. Client-supplied prices never enter here.
func priceSelection(
	ctx context.Context,
	reads shared.CommandReads,
	resolver *layout.Resolver,
	calc *pricing.Calculator,
	eventID string,
	rawSeatIDs []string,
) (*selection, error) {
	ev, err := loadOpenEvent(ctx, reads, eventID)
	if err != nil {
		return nil, err
	}

	ids, err := ParseSeatIDs(rawSeatIDs)
	if err != nil {
		return nil, err
	}

	seats, err := reads.SeatsByEvent(ctx, ev.ID)
	if err != nil {
		return nil, err
	}

	defs := resolver.Resolve(ev.LayoutInput(seats))
	_, index := seatmap.Assemble(defs, seats, calc)

	sel := &selection{
		event: ev,
		seats: make([]seatmap.PricedSeat, 0, len(ids)),
		ids:   ids,
	}
	prices := make([]pricing.Money, 0, len(ids))
	for _, id := range ids {
		ps, ok := index[id]
		if !ok {
			return nil, errs.Markf(errs.ErrValidation, "seat %s does not belong to event %s", id, ev.ID)
		}
		if !ps.Available {
			return nil, ErrSeatUnavailable
		}
		sel.seats = append(sel.seats, ps)
		prices = append(prices, ps.Price)
	}
	sel.total = pricing.Sum(prices...)

	return sel, nil
}

func loadOpenEvent(ctx context.Context, reads shared.CommandReads, eventID string) (*event.Event, error) {
	ev, err := reads.EventByID(ctx, strings.TrimSpace(eventID))
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	if ev.Cancelled {
		return nil, ErrEventCancelled
	}
	return ev, nil
}
