package response

import (
	"seating-service/internal/domain/seatmap"

	"github.com/google/uuid"
)

type SeatResponse struct {
	SeatID     uuid.UUID `json:"seatId"`
	SeatNumber int       `json:"seatNumber"`
	Label      string    `json:"label"`
	Price      float64   `json:"price"`
	Available  bool      `json:"available"`
}

type RowResponse struct {
	RowID  string         `json:"rowId"`
	Name   string         `json:"name"`
	Number int            `json:"number"`
	Seats  []SeatResponse `json:"seats"`
}

type SectionResponse struct {
	SectionID   string        `json:"sectionId"`
	Name        string        `json:"name"`
	BasePrice   float64       `json:"basePrice"`
	SeatsPerRow int           `json:"seatsPerRow"`
	TotalRows   int           `json:"totalRows"`
	Rows        []RowResponse `json:"rows"`
}

func FromSectionViews(views []seatmap.SectionView) ([]SectionResponse, error) {
	res := make([]SectionResponse, 0, len(views))
	if err := copyInto(&res, views); err != nil {
		return nil, err
	}
	for i := range res {
		if res[i].Rows == nil {
			res[i].Rows = []RowResponse{}
		}
	}
	return res, nil
}

type QuoteLineResponse struct {
	SeatID      uuid.UUID `json:"seatId"`
	SectionID   string    `json:"sectionId"`
	SectionName string    `json:"sectionName"`
	RowName     string    `json:"rowName"`
	Label       string    `json:"label"`
	Price       float64   `json:"price"`
}
