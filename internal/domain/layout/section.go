package layout

import (
	"seating-service/internal/domain/pricing"
)

// SectionDefinition is the resolved, normalized description of one section.
// It is derived on every resolution and never persisted.
type SectionDefinition struct {
	SectionID   string
	DisplayName string
	BasePrice   pricing.Money
	SeatCount   int
	SeatsPerRow int
	Pricing     pricing.Rules
}

// TotalRows is ceil(SeatCount / SeatsPerRow).
func (d SectionDefinition) TotalRows() int {
	if d.SeatsPerRow <= 0 {
		return 0
	}
	return (d.SeatCount + d.SeatsPerRow - 1) / d.SeatsPerRow
}

// SectionRecord is an explicit section as stored for an event's venue.
// Zero sizes and base price mean "not configured" and are normalized on
// resolution. The pricing overrides are nil when not configured, so an
// explicit zero row adjustment gives a flat-priced section.
type SectionRecord struct {
	Code          string
	DisplayName   string
	BasePrice     pricing.Money
	SeatCount     int
	SeatsPerRow   int
	RowAdjustment *pricing.Money
	PriceFloor    *pricing.Money
}

type VenueConfig struct {
	Name     string
	City     string
	State    string
	Sections []SectionRecord
}

type Input struct {
	EventID   string
	EventName string
	Venue     *VenueConfig
	// SeatCountHint sizes the fallback section: the number of stored seats that
	// already belong to it. Zero means the configured fallback capacity.
	SeatCountHint int
}

// Settings carries the configured defaults used during normalization.
type Settings struct {
	DefaultBasePrice       pricing.Money
	DefaultSeatsPerRow     int
	DefaultSectionCapacity int
	FallbackCapacity       int
	FallbackSeatsPerRow    int
}

func (s Settings) normalize(d SectionDefinition) SectionDefinition {
	if d.SeatCount <= 0 {
		d.SeatCount = s.DefaultSectionCapacity
	}
	if d.SeatCount <= 0 {
		d.SeatCount = 1
	}
	if d.SeatsPerRow <= 0 {
		d.SeatsPerRow = s.DefaultSeatsPerRow
	}
	if d.SeatsPerRow <= 0 {
		d.SeatsPerRow = 1
	}
	if d.SeatsPerRow > d.SeatCount {
		d.SeatsPerRow = d.SeatCount
	}
	if !d.BasePrice.IsPositive() {
		d.BasePrice = s.DefaultBasePrice
	}
	return d
}
