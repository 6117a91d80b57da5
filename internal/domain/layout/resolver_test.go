//go:build unit

package layout_test

import (
	"testing"

	"seating-service/internal/domain/layout"
	"seating-service/internal/domain/pricing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func settings() layout.Settings {
	return layout.Settings{
		DefaultBasePrice:       pricing.FromDecimal(85),
		DefaultSeatsPerRow:     10,
		DefaultSectionCapacity: 60,
		FallbackCapacity:       240,
		FallbackSeatsPerRow:    12,
	}
}

func TestResolver_Explicit(t *testing.T) {
	r := layout.NewDefaultResolver(settings())

	t.Run("records are normalized in order", func(t *testing.T) {
		in := layout.Input{
			EventID:   "E1",
			EventName: "Spring Gala",
			Venue: &layout.VenueConfig{
				// explicit records win over the named table for this venue
				Name: "Mortgage Matchup Center",
				Sections: []layout.SectionRecord{
					{Code: "FLOOR", DisplayName: "Floor", BasePrice: pricing.FromDecimal(200), SeatCount: 40, SeatsPerRow: 8},
					{Code: " BAL ", SeatCount: 0, SeatsPerRow: 0, BasePrice: 0},
					{Code: "", DisplayName: "Box", SeatCount: 4, SeatsPerRow: 10, BasePrice: pricing.FromDecimal(300)},
					{Code: "FLOOR", DisplayName: "Floor again", SeatCount: 5, SeatsPerRow: 5, BasePrice: pricing.FromDecimal(50),
						RowAdjustment: pricing.FromDecimal(2).Ptr(), PriceFloor: pricing.FromDecimal(40).Ptr()},
				},
			},
		}

		defs, provider := r.ResolveWith(in)
		require.Equal(t, "explicit", provider)

		want := []layout.SectionDefinition{
			{SectionID: "FLOOR", DisplayName: "Floor", BasePrice: pricing.FromDecimal(200), SeatCount: 40, SeatsPerRow: 8},
			{SectionID: "BAL", DisplayName: "Section BAL", BasePrice: pricing.FromDecimal(85), SeatCount: 60, SeatsPerRow: 10},
			{SectionID: "SEC-3", DisplayName: "Box", BasePrice: pricing.FromDecimal(300), SeatCount: 4, SeatsPerRow: 4},
			{SectionID: "SEC-4", DisplayName: "Floor again", BasePrice: pricing.FromDecimal(50), SeatCount: 5, SeatsPerRow: 5,
				Pricing: pricing.Rules{RowAdjustment: pricing.FromDecimal(2).Ptr(), Floor: pricing.FromDecimal(40).Ptr()}},
		}
		if diff := cmp.Diff(want, defs); diff != "" {
			t.Errorf("definitions mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("identical input resolves identically", func(t *testing.T) {
		in := layout.Input{EventID: "E1", Venue: &layout.VenueConfig{Sections: []layout.SectionRecord{{Code: "A"}, {Code: "B"}}}}
		assert.Equal(t, r.Resolve(in), r.Resolve(in))
	})
}

func TestResolver_NamedLayout(t *testing.T) {
	r := layout.NewDefaultResolver(settings())

	defs, provider := r.ResolveWith(layout.Input{
		EventID:   "E2",
		EventName: "Finals",
		Venue:     &layout.VenueConfig{Name: "the mortgage MATCHUP center (north)"},
	})
	require.Equal(t, "named", provider)
	require.Len(t, defs, 62)

	assert.Equal(t, "SEC-A", defs[0].SectionID)
	assert.Equal(t, "Section A", defs[0].DisplayName)
	assert.Equal(t, "160.00", defs[0].BasePrice.String())
	assert.Equal(t, "SEC-101", defs[6].SectionID)
	assert.Equal(t, "120.00", defs[6].BasePrice.String())
	assert.Equal(t, "SEC-232", defs[61].SectionID)
	assert.Equal(t, "95.00", defs[61].BasePrice.String())
	for _, d := range defs {
		assert.Equal(t, 60, d.SeatCount)
		assert.Equal(t, 10, d.SeatsPerRow)
	}
}

func TestResolver_Fallback(t *testing.T) {
	r := layout.NewDefaultResolver(settings())

	t.Run("no venue uses default capacity", func(t *testing.T) {
		defs, provider := r.ResolveWith(layout.Input{EventID: "E3", EventName: "Jazz Night"})
		require.Equal(t, "fallback", provider)
		require.Len(t, defs, 1)
		assert.Equal(t, layout.SectionDefinition{
			SectionID:   "SEC-E3",
			DisplayName: "Jazz Night General",
			BasePrice:   pricing.FromDecimal(85),
			SeatCount:   240,
			SeatsPerRow: 12,
		}, defs[0])
		assert.Equal(t, 20, defs[0].TotalRows())
	})

	t.Run("unknown venue sized by hint", func(t *testing.T) {
		defs := r.Resolve(layout.Input{
			EventID:       "E4",
			EventName:     "Comedy",
			Venue:         &layout.VenueConfig{Name: "Small Club"},
			SeatCountHint: 7,
		})
		require.Len(t, defs, 1)
		assert.Equal(t, 7, defs[0].SeatCount)
		assert.Equal(t, 7, defs[0].SeatsPerRow)
	})
}

func TestResolver_CustomProviderOrder(t *testing.T) {
	named := layout.NewNamedLayoutProvider(settings())
	named.Register(layout.NamedLayout{
		Match: "arena",
		Sections: []layout.TableSection{
			{Code: "PIT", Name: "Pit", BasePrice: pricing.FromDecimal(99)},
		},
	})
	r := layout.NewResolver(named, layout.NewFallbackProvider(settings()))

	defs := r.Resolve(layout.Input{EventID: "E5", Venue: &layout.VenueConfig{Name: "Big Arena"}})
	require.Len(t, defs, 1)
	assert.Equal(t, "PIT", defs[0].SectionID)

	empty := layout.NewResolver()
	assert.Nil(t, empty.Resolve(layout.Input{EventID: "E6"}))
}

func TestSectionDefinition_TotalRows(t *testing.T) {
	assert.Equal(t, 6, layout.SectionDefinition{SeatCount: 60, SeatsPerRow: 10}.TotalRows())
	assert.Equal(t, 7, layout.SectionDefinition{SeatCount: 61, SeatsPerRow: 10}.TotalRows())
	assert.Equal(t, 1, layout.SectionDefinition{SeatCount: 3, SeatsPerRow: 3}.TotalRows())
	assert.Equal(t, 0, layout.SectionDefinition{SeatCount: 3}.TotalRows())
}
