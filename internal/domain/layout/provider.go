package layout

import (
	"fmt"
	"strings"

	"seating-service/internal/domain/pricing"
)

// Provider is one layout strategy. It returns ok=false when it does not apply
// to the input, letting the next provider try.
type Provider interface {
	Name() string
	Sections(in Input) ([]SectionDefinition, bool)
}

// ExplicitSectionsProvider applies when the venue carries its own section records.
type ExplicitSectionsProvider struct {
	settings Settings
}

func NewExplicitSectionsProvider(s Settings) *ExplicitSectionsProvider {
	return &ExplicitSectionsProvider{settings: s}
}

func (p *ExplicitSectionsProvider) Name() string { return "explicit" }

func (p *ExplicitSectionsProvider) Sections(in Input) ([]SectionDefinition, bool) {
	if in.Venue == nil || len(in.Venue.Sections) == 0 {
		return nil, false
	}

	used := make(map[string]struct{}, len(in.Venue.Sections))
	defs := make([]SectionDefinition, 0, len(in.Venue.Sections))
	for i, rec := range in.Venue.Sections {
		id := strings.TrimSpace(rec.Code)
		if _, dup := used[id]; id == "" || dup {
			id = uniqueID(fmt.Sprintf("SEC-%d", i+1), used)
		}
		used[id] = struct{}{}

		name := strings.TrimSpace(rec.DisplayName)
		if name == "" {
			name = "Section " + id
		}

		def := p.settings.normalize(SectionDefinition{
			SectionID:   id,
			DisplayName: name,
			BasePrice:   rec.BasePrice,
			SeatCount:   rec.SeatCount,
			SeatsPerRow: rec.SeatsPerRow,
		})
		def.Pricing = pricing.Rules{RowAdjustment: copyMoney(rec.RowAdjustment), Floor: copyMoney(rec.PriceFloor)}
		defs = append(defs, def)
	}
	return defs, true
}

func copyMoney(m *pricing.Money) *pricing.Money {
	if m == nil {
		return nil
	}
	return m.Ptr()
}

func uniqueID(candidate string, used map[string]struct{}) string {
	id := candidate
	for n := 2; ; n++ {
		if _, taken := used[id]; !taken {
			return id
		}
		id = fmt.Sprintf("%s-%d", candidate, n)
	}
}

func FallbackSectionID(eventID string) string {
	return "SEC-" + eventID
}

// FallbackProvider always applies: one general-admission section named after the event.
type FallbackProvider struct {
	settings Settings
}

func NewFallbackProvider(s Settings) *FallbackProvider {
	return &FallbackProvider{settings: s}
}

func (p *FallbackProvider) Name() string { return "fallback" }

func (p *FallbackProvider) Sections(in Input) ([]SectionDefinition, bool) {
	capacity := in.SeatCountHint
	if capacity <= 0 {
		capacity = p.settings.FallbackCapacity
	}
	name := strings.TrimSpace(in.EventName + " General")

	def := p.settings.normalize(SectionDefinition{
		SectionID:   FallbackSectionID(in.EventID),
		DisplayName: name,
		BasePrice:   p.settings.DefaultBasePrice,
		SeatCount:   capacity,
		SeatsPerRow: p.settings.FallbackSeatsPerRow,
	})
	return []SectionDefinition{def}, true
}
