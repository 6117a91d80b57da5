//go:build unit || e2e

package builder

import (
	"time"

	"seating-service/internal/domain/event"
	"seating-service/internal/domain/layout"
	"seating-service/internal/domain/pricing"
	reqdto "seating-service/internal/handler/dto/request"
	sqlc "seating-service/internal/infra/sqlc/generated"

	"github.com/jackc/pgx/v5/pgtype"
)

type EventBuilder struct {
	ID        string
	Name      string
	StartsAt  time.Time
	Cancelled bool
	VenueName string
	City      string
	State     string
	Sections  []layout.SectionRecord
}

// NewEventBuilder starts from one 20-seat section of two rows.
func NewEventBuilder() *EventBuilder {
	return &EventBuilder{
		ID:        "EVT-1001",
		Name:      "Autumn Gala",
		StartsAt:  time.Date(2026, 11, 21, 19, 30, 0, 0, time.UTC),
		VenueName: "Riverside Hall",
		City:      "Portland",
		State:     "OR",
		Sections: []layout.SectionRecord{
			{
				Code:        "MAIN",
				DisplayName: "Main Floor",
				BasePrice:   pricing.FromDecimal(100),
				SeatCount:   20,
				SeatsPerRow: 10,
			},
		},
	}
}

func (b *EventBuilder) With(mutate func(*EventBuilder)) *EventBuilder {
	mutate(b)
	return b
}

func (b *EventBuilder) Venue() layout.VenueConfig {
	return layout.VenueConfig{
		Name:     b.VenueName,
		City:     b.City,
		State:    b.State,
		Sections: b.Sections,
	}
}

func (b *EventBuilder) BuildDomain() *event.Event {
	return &event.Event{
		ID:        b.ID,
		Name:      b.Name,
		StartsAt:  b.StartsAt,
		Cancelled: b.Cancelled,
		Venue:     b.Venue(),
	}
}

func (b *EventBuilder) BuildInfra() sqlc.Events {
	return sqlc.Events{
		ID:          b.ID,
		Name:        b.Name,
		StartsAt:    pgtype.Timestamptz{Time: b.StartsAt, Valid: true},
		IsCancelled: b.Cancelled,
		VenueName:   b.VenueName,
		VenueCity:   b.City,
		VenueState:  b.State,
		CreatedAt:   pgtype.Timestamptz{Time: b.StartsAt.Add(-30 * 24 * time.Hour), Valid: true},
		UpdatedAt:   pgtype.Timestamptz{Time: b.StartsAt.Add(-30 * 24 * time.Hour), Valid: true},
	}
}

func (b *EventBuilder) BuildSectionRows() []sqlc.VenueSections {
	rows := make([]sqlc.VenueSections, len(b.Sections))
	for i, s := range b.Sections {
		rows[i] = sqlc.VenueSections{
			EventID:        b.ID,
			Position:       int32(i + 1),
			SectionCode:    s.Code,
			DisplayName:    s.DisplayName,
			BasePriceCents: s.BasePrice.Cents(),
			SeatCount:      int32(s.SeatCount),
			SeatsPerRow:    int32(s.SeatsPerRow),
		}
		if s.RowAdjustment != nil {
			rows[i].RowAdjustmentCents = pgtype.Int8{Int64: s.RowAdjustment.Cents(), Valid: true}
		}
		if s.PriceFloor != nil {
			rows[i].PriceFloorCents = pgtype.Int8{Int64: s.PriceFloor.Cents(), Valid: true}
		}
	}
	return rows
}

func (b *EventBuilder) BuildCreateRequestDTO() reqdto.CreateEventRequest {
	sections := make([]reqdto.SectionRequest, len(b.Sections))
	for i, s := range b.Sections {
		sections[i] = reqdto.SectionRequest{
			Code:          s.Code,
			DisplayName:   s.DisplayName,
			BasePrice:     s.BasePrice.Decimal(),
			SeatCount:     s.SeatCount,
			SeatsPerRow:   s.SeatsPerRow,
			RowAdjustment: decimalOf(s.RowAdjustment),
			PriceFloor:    decimalOf(s.PriceFloor),
		}
	}
	return reqdto.CreateEventRequest{
		ID:       b.ID,
		Name:     b.Name,
		StartsAt: b.StartsAt,
		Venue: reqdto.VenueRequest{
			Name:     b.VenueName,
			City:     b.City,
			State:    b.State,
			Sections: sections,
		},
	}
}

func decimalOf(m *pricing.Money) *float64 {
	if m == nil {
		return nil
	}
	v := m.Decimal()
	return &v
}
