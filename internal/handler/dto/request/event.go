package request

import (
	"time"

	"seating-service/internal/domain/layout"
	"seating-service/internal/domain/pricing"
)

// SectionRequest carries prices in currency units. A zero size or base price
// means "use the default"; an omitted rowAdjustment or priceFloor does too,
// while an explicit 0 is kept.
type SectionRequest struct {
	Code          string   `json:"code" binding:"max=50"`
	DisplayName   string   `json:"displayName" binding:"max=100"`
	BasePrice     float64  `json:"basePrice" binding:"gte=0"`
	SeatCount     int      `json:"seatCount" binding:"gte=0,lte=5000"`
	SeatsPerRow   int      `json:"seatsPerRow" binding:"gte=0"`
	RowAdjustment *float64 `json:"rowAdjustment,omitempty" binding:"omitempty,gte=0"`
	PriceFloor    *float64 `json:"priceFloor,omitempty" binding:"omitempty,gte=0"`
}

func (r SectionRequest) ToRecord() layout.SectionRecord {
	return layout.SectionRecord{
		Code:          r.Code,
		DisplayName:   r.DisplayName,
		BasePrice:     pricing.FromDecimal(r.BasePrice),
		SeatCount:     r.SeatCount,
		SeatsPerRow:   r.SeatsPerRow,
		RowAdjustment: optionalMoney(r.RowAdjustment),
		PriceFloor:    optionalMoney(r.PriceFloor),
	}
}

func optionalMoney(v *float64) *pricing.Money {
	if v == nil {
		return nil
	}
	return pricing.FromDecimal(*v).Ptr()
}

func toRecords(sections []SectionRequest) []layout.SectionRecord {
	if len(sections) == 0 {
		return nil
	}
	records := make([]layout.SectionRecord, len(sections))
	for i, s := range sections {
		records[i] = s.ToRecord()
	}
	return records
}

type VenueRequest struct {
	Name     string           `json:"name" binding:"max=200"`
	City     string           `json:"city" binding:"max=100"`
	State    string           `json:"state" binding:"max=50"`
	Sections []SectionRequest `json:"sections" binding:"dive"`
}

type CreateEventRequest struct {
	ID       string       `json:"id" binding:"required,max=50"`
	Name     string       `json:"name" binding:"required,max=200"`
	StartsAt time.Time    `json:"startsAt" binding:"required"`
	Venue    VenueRequest `json:"venue"`
}

func (r CreateEventRequest) VenueConfig() layout.VenueConfig {
	return layout.VenueConfig{
		Name:     r.Venue.Name,
		City:     r.Venue.City,
		State:    r.Venue.State,
		Sections: toRecords(r.Venue.Sections),
	}
}

type UpdateLayoutRequest struct {
	VenueName string           `json:"venueName" binding:"max=200"`
	Sections  []SectionRequest `json:"sections" binding:"dive"`
}

func (r UpdateLayoutRequest) Records() []layout.SectionRecord {
	return toRecords(r.Sections)
}
