package seatmap

import (
	"fmt"

	"seating-service/internal/domain/layout"
	"seating-service/internal/domain/pricing"
	"seating-service/internal/domain/seat"

	"github.com/google/uuid"
)

type SeatView struct {
	SeatID     uuid.UUID
	SeatNumber int
	Label      string
	Price      pricing.Money
	Available  bool
}

type RowView struct {
	RowID  string
	Name   string
	Number int
	Seats  []SeatView
}

type SectionView struct {
	SectionID   string
	Name        string
	BasePrice   pricing.Money
	SeatsPerRow int
	TotalRows   int
	Rows        []RowView
}

// PricedSeat is a seat located in its section and row, with the price the
// calculator assigns to that row.
type PricedSeat struct {
	SeatID      uuid.UUID
	SectionID   string
	SectionName string
	RowID       string
	RowName     string
	Row         int
	Number      int
	Label       string
	Price       pricing.Money
	Available   bool
}

// Index maps seat id to its priced position. Orphaned seats are absent.
type Index map[uuid.UUID]PricedSeat

func RowID(sectionID string, row int) string {
	return fmt.Sprintf("%s-ROW-%02d", sectionID, row)
}

// Assemble groups each section's seats into rows of SeatsPerRow in seat-number
// order and prices every row. Display and checkout both price through here.
func Assemble(defs []layout.SectionDefinition, seats []seat.Seat, calc *pricing.Calculator) ([]SectionView, Index) {
	groups, _ := seat.GroupBySection(defs, seats)

	views := make([]SectionView, 0, len(defs))
	index := make(Index, len(seats))
	seen := make(map[string]struct{}, len(defs))

	for _, def := range defs {
		if _, dup := seen[def.SectionID]; dup {
			continue
		}
		seen[def.SectionID] = struct{}{}

		members := groups[def.SectionID]
		perRow := max(def.SeatsPerRow, 1)
		// rows past the nominal capacity price below the base, never below the floor
		totalRows := def.TotalRows()

		view := SectionView{
			SectionID:   def.SectionID,
			Name:        def.DisplayName,
			BasePrice:   def.BasePrice,
			SeatsPerRow: def.SeatsPerRow,
			TotalRows:   totalRows,
			Rows:        []RowView{},
		}

		for start := 0; start < len(members); start += perRow {
			rowNumber := start/perRow + 1
			price := calc.Price(rowNumber, totalRows, def.BasePrice, def.Pricing)
			row := RowView{
				RowID:  RowID(def.SectionID, rowNumber),
				Name:   fmt.Sprintf("Row %d", rowNumber),
				Number: rowNumber,
			}

			for _, s := range members[start:min(start+perRow, len(members))] {
				row.Seats = append(row.Seats, SeatView{
					SeatID:     s.ID,
					SeatNumber: s.Number,
					Label:      s.Label(),
					Price:      price,
					Available:  s.IsAvailable(),
				})
				index[s.ID] = PricedSeat{
					SeatID:      s.ID,
					SectionID:   def.SectionID,
					SectionName: def.DisplayName,
					RowID:       row.RowID,
					RowName:     row.Name,
					Row:         rowNumber,
					Number:      s.Number,
					Label:       s.Label(),
					Price:       price,
					Available:   s.IsAvailable(),
				}
			}
			view.Rows = append(view.Rows, row)
		}

		views = append(views, view)
	}

	return views, index
}
