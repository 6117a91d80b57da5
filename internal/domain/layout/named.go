package layout

import (
	"fmt"
	"strings"

	"seating-service/internal/domain/pricing"
)

// TableSection is one row of a built-in layout table.
type TableSection struct {
	Code      string
	Name      string
	BasePrice pricing.Money
}

// NamedLayout is a built-in table selected by a venue-name substring.
type NamedLayout struct {
	Match    string
	Sections []TableSection
}

// NamedLayoutProvider matches the venue name case-insensitively against its
// registry. The first matching layout wins.
type NamedLayoutProvider struct {
	settings Settings
	layouts  []NamedLayout
}

func NewNamedLayoutProvider(s Settings, layouts ...NamedLayout) *NamedLayoutProvider {
	return &NamedLayoutProvider{settings: s, layouts: layouts}
}

func (p *NamedLayoutProvider) Name() string { return "named" }

func (p *NamedLayoutProvider) Register(l NamedLayout) {
	p.layouts = append(p.layouts, l)
}

func (p *NamedLayoutProvider) Sections(in Input) ([]SectionDefinition, bool) {
	if in.Venue == nil {
		return nil, false
	}
	venue := strings.ToLower(in.Venue.Name)
	if strings.TrimSpace(venue) == "" {
		return nil, false
	}

	for _, l := range p.layouts {
		if l.Match == "" || !strings.Contains(venue, strings.ToLower(l.Match)) {
			continue
		}
		defs := make([]SectionDefinition, 0, len(l.Sections))
		for _, ts := range l.Sections {
			defs = append(defs, p.settings.normalize(SectionDefinition{
				SectionID:   ts.Code,
				DisplayName: ts.Name,
				BasePrice:   ts.BasePrice,
			}))
		}
		return defs, true
	}
	return nil, false
}

// MortgageMatchupCenter: six floor sections, 24 lower-bowl and 32 upper-bowl sections.
func MortgageMatchupCenter() NamedLayout {
	sections := make([]TableSection, 0, 62)
	for _, letter := range []string{"A", "B", "C", "D", "E", "F"} {
		sections = append(sections, TableSection{
			Code:      "SEC-" + letter,
			Name:      "Section " + letter,
			BasePrice: pricing.FromDecimal(160),
		})
	}
	for n := 101; n <= 124; n++ {
		sections = append(sections, TableSection{
			Code:      fmt.Sprintf("SEC-%d", n),
			Name:      fmt.Sprintf("Section %d", n),
			BasePrice: pricing.FromDecimal(120),
		})
	}
	for n := 201; n <= 232; n++ {
		sections = append(sections, TableSection{
			Code:      fmt.Sprintf("SEC-%d", n),
			Name:      fmt.Sprintf("Section %d", n),
			BasePrice: pricing.FromDecimal(95),
		})
	}
	return NamedLayout{Match: "Mortgage Matchup Center", Sections: sections}
}
