package converter

import (
	"seating-service/internal/domain/event"
	"seating-service/internal/domain/layout"
	"seating-service/internal/domain/pricing"
	sqlc "seating-service/internal/infra/sqlc/generated"
	"seating-service/internal/pkg/pgconv"
)

func EventToCreateParams(ev *event.Event) sqlc.CreateEventParams {
	return sqlc.CreateEventParams{
		ID:         ev.ID,
		Name:       ev.Name,
		StartsAt:   pgconv.TimeOrNull(ev.StartsAt),
		VenueName:  ev.Venue.Name,
		VenueCity:  ev.Venue.City,
		VenueState: ev.Venue.State,
	}
}

func SectionToInsertParams(eventID string, position int, r layout.SectionRecord) sqlc.InsertVenueSectionParams {
	return sqlc.InsertVenueSectionParams{
		EventID:            eventID,
		Position:           pgconv.IntToInt32(position),
		SectionCode:        r.Code,
		DisplayName:        r.DisplayName,
		BasePriceCents:     r.BasePrice.Cents(),
		SeatCount:          pgconv.IntToInt32(r.SeatCount),
		SeatsPerRow:        pgconv.IntToInt32(r.SeatsPerRow),
		RowAdjustmentCents: pgconv.Int64PtrToPgtype(centsOf(r.RowAdjustment)),
		PriceFloorCents:    pgconv.Int64PtrToPgtype(centsOf(r.PriceFloor)),
	}
}

// EventFromRows rebuilds the aggregate; sections must be ordered by position.
func EventFromRows(row sqlc.Events, sections []sqlc.VenueSections) *event.Event {
	records := make([]layout.SectionRecord, 0, len(sections))
	for _, s := range sections {
		records = append(records, layout.SectionRecord{
			Code:          s.SectionCode,
			DisplayName:   s.DisplayName,
			BasePrice:     pricing.FromCents(s.BasePriceCents),
			SeatCount:     int(s.SeatCount),
			SeatsPerRow:   int(s.SeatsPerRow),
			RowAdjustment: moneyOf(pgconv.Int64PtrFromPgtype(s.RowAdjustmentCents)),
			PriceFloor:    moneyOf(pgconv.Int64PtrFromPgtype(s.PriceFloorCents)),
		})
	}

	ev := &event.Event{
		ID:        row.ID,
		Name:      row.Name,
		Cancelled: row.IsCancelled,
		Venue: layout.VenueConfig{
			Name:     row.VenueName,
			City:     row.VenueCity,
			State:    row.VenueState,
			Sections: records,
		},
	}
	if row.StartsAt.Valid {
		ev.StartsAt = row.StartsAt.Time
	}
	return ev
}

func centsOf(m *pricing.Money) *int64 {
	if m == nil {
		return nil
	}
	c := m.Cents()
	return &c
}

func moneyOf(c *int64) *pricing.Money {
	if c == nil {
		return nil
	}
	return pricing.FromCents(*c).Ptr()
}
