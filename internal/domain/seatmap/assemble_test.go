//go:build unit

package seatmap_test

import (
	"testing"

	"seating-service/internal/domain/layout"
	"seating-service/internal/domain/pricing"
	"seating-service/internal/domain/seat"
	"seating-service/internal/domain/seatmap"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func calculator() *pricing.Calculator {
	return pricing.NewCalculator(pricing.Defaults{
		BasePrice:     pricing.FromDecimal(85),
		SeatsPerRow:   10,
		RowAdjustment: pricing.FromDecimal(7.5),
		Floor:         pricing.FromDecimal(25),
	})
}

func seatsFor(sectionID string, from, to int) []seat.Seat {
	var out []seat.Seat
	for n := from; n <= to; n++ {
		out = append(out, seat.Seat{ID: uuid.New(), EventID: "E1", SectionID: sectionID, Number: n, State: seat.StateAvailable})
	}
	return out
}

func TestAssemble_RowsAndPrices(t *testing.T) {
	defs := []layout.SectionDefinition{{
		SectionID: "A", DisplayName: "Section A", BasePrice: pricing.FromDecimal(85), SeatCount: 100, SeatsPerRow: 10,
	}}
	seats := seatsFor("A", 1, 100)
	// shuffle storage order; rows must follow seat numbers
	seats[0], seats[99] = seats[99], seats[0]
	seats[42].State = seat.StateOccupied

	views, index := seatmap.Assemble(defs, seats, calculator())
	require.Len(t, views, 1)
	v := views[0]
	assert.Equal(t, 10, v.TotalRows)
	require.Len(t, v.Rows, 10)

	assert.Equal(t, "A-ROW-01", v.Rows[0].RowID)
	assert.Equal(t, "Row 1", v.Rows[0].Name)
	assert.Equal(t, "152.50", v.Rows[0].Seats[0].Price.String())
	assert.Equal(t, 1, v.Rows[0].Seats[0].SeatNumber)
	assert.Equal(t, "Seat 1", v.Rows[0].Seats[0].Label)
	assert.Equal(t, "A-ROW-10", v.Rows[9].RowID)
	assert.Equal(t, "85.00", v.Rows[9].Seats[9].Price.String())
	assert.Equal(t, 100, v.Rows[9].Seats[9].SeatNumber)

	occupied := seats[42]
	priced, ok := index[occupied.ID]
	require.True(t, ok)
	assert.False(t, priced.Available)
	assert.Equal(t, "A-ROW-05", priced.RowID)
	assert.Equal(t, "122.50", priced.Price.String())
	assert.Len(t, index, 100)
}

func TestAssemble_PartialLastRowAndEmptySection(t *testing.T) {
	defs := []layout.SectionDefinition{
		{SectionID: "A", DisplayName: "A", BasePrice: pricing.FromDecimal(40), SeatCount: 5, SeatsPerRow: 2},
		{SectionID: "B", DisplayName: "B", BasePrice: pricing.FromDecimal(40), SeatCount: 5, SeatsPerRow: 2},
	}
	seats := seatsFor("A", 1, 5)

	views, _ := seatmap.Assemble(defs, seats, calculator())
	require.Len(t, views, 2)

	want := seatmap.SectionView{
		SectionID: "A", Name: "A", BasePrice: pricing.FromDecimal(40), SeatsPerRow: 2, TotalRows: 3,
		Rows: []seatmap.RowView{
			{RowID: "A-ROW-01", Name: "Row 1", Number: 1, Seats: []seatmap.SeatView{
				{SeatNumber: 1, Label: "Seat 1", Price: pricing.FromDecimal(55), Available: true},
				{SeatNumber: 2, Label: "Seat 2", Price: pricing.FromDecimal(55), Available: true},
			}},
			{RowID: "A-ROW-02", Name: "Row 2", Number: 2, Seats: []seatmap.SeatView{
				{SeatNumber: 3, Label: "Seat 3", Price: pricing.FromDecimal(47.5), Available: true},
				{SeatNumber: 4, Label: "Seat 4", Price: pricing.FromDecimal(47.5), Available: true},
			}},
			{RowID: "A-ROW-03", Name: "Row 3", Number: 3, Seats: []seatmap.SeatView{
				{SeatNumber: 5, Label: "Seat 5", Price: pricing.FromDecimal(40), Available: true},
			}},
		},
	}
	if diff := cmp.Diff(want, views[0], cmpopts.IgnoreFields(seatmap.SeatView{}, "SeatID")); diff != "" {
		t.Errorf("section view mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, "B", views[1].SectionID)
	assert.Empty(t, views[1].Rows)
	assert.NotNil(t, views[1].Rows)
}

func TestAssemble_OccupiedOverflowStaysAboveFloor(t *testing.T) {
	defs := []layout.SectionDefinition{{SectionID: "A", DisplayName: "A", BasePrice: pricing.FromDecimal(30), SeatCount: 2, SeatsPerRow: 2}}
	seats := seatsFor("A", 1, 6)
	for i := range seats {
		seats[i].State = seat.StateOccupied
	}

	views, _ := seatmap.Assemble(defs, seats, calculator())
	require.Len(t, views[0].Rows, 3)
	assert.Equal(t, 1, views[0].TotalRows)
	assert.Equal(t, "30.00", views[0].Rows[0].Seats[0].Price.String())
	assert.Equal(t, "25.00", views[0].Rows[1].Seats[0].Price.String())
	assert.Equal(t, "25.00", views[0].Rows[2].Seats[0].Price.String())
}

func TestAssemble_OverflowKeepsNominalRowPrices(t *testing.T) {
	defs := []layout.SectionDefinition{{SectionID: "MAIN", DisplayName: "Main", BasePrice: pricing.FromDecimal(100), SeatCount: 10, SeatsPerRow: 10}}
	seats := seatsFor("MAIN", 1, 20)
	for i := range seats[:19] {
		seats[i].State = seat.StateOccupied
	}

	views, index := seatmap.Assemble(defs, seats, calculator())
	require.Len(t, views[0].Rows, 2)
	assert.Equal(t, 1, views[0].TotalRows)
	assert.Equal(t, "100.00", views[0].Rows[0].Seats[0].Price.String())
	assert.Equal(t, "92.50", views[0].Rows[1].Seats[9].Price.String())
	assert.Equal(t, "92.50", index[seats[19].ID].Price.String())
}

func TestAssemble_FlatSection(t *testing.T) {
	flat := pricing.Rules{RowAdjustment: pricing.FromCents(0).Ptr()}
	defs := []layout.SectionDefinition{{SectionID: "GA", DisplayName: "General", BasePrice: pricing.FromDecimal(45), SeatCount: 6, SeatsPerRow: 2, Pricing: flat}}

	views, _ := seatmap.Assemble(defs, seatsFor("GA", 1, 6), calculator())
	require.Len(t, views[0].Rows, 3)
	for _, row := range views[0].Rows {
		for _, s := range row.Seats {
			assert.Equal(t, "45.00", s.Price.String(), "row %d", row.Number)
		}
	}
}

func TestAssemble_OrphansAreNotIndexed(t *testing.T) {
	defs := []layout.SectionDefinition{{SectionID: "A", DisplayName: "A", BasePrice: pricing.FromDecimal(30), SeatCount: 1, SeatsPerRow: 1}}
	orphan := seat.Seat{ID: uuid.New(), SectionID: "GONE", Number: 7, State: seat.StateAvailable}

	_, index := seatmap.Assemble(defs, append(seatsFor("A", 1, 1), orphan), calculator())
	_, ok := index[orphan.ID]
	assert.False(t, ok)
	assert.Len(t, index, 1)
}
