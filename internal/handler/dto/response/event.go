package response

import (
	"seating-service/internal/usecase/commands"
	"seating-service/internal/usecase/queries"
)

type ReconcileResponse struct {
	EventID   string `json:"eventId"`
	Added     int    `json:"added"`
	Removed   int    `json:"removed"`
	Rekeyed   int    `json:"rekeyed"`
	SeatCount int    `json:"seatCount"`
}

func FromReconcileResult(r *commands.ReconcileResult) *ReconcileResponse {
	return &ReconcileResponse{
		EventID:   r.EventID,
		Added:     r.Added,
		Removed:   r.Removed,
		Rekeyed:   r.Rekeyed,
		SeatCount: r.SeatCount,
	}
}

type InventoryResponse struct {
	EventID        string `json:"eventId"`
	EventName      string `json:"eventName"`
	Cancelled      bool   `json:"cancelled"`
	LayoutSource   string `json:"layoutSource"`
	SectionCount   int    `json:"sectionCount"`
	NominalSeats   int    `json:"nominalSeats"`
	SeatCount      int    `json:"seatCount"`
	AvailableSeats int    `json:"availableSeats"`
	OccupiedSeats  int    `json:"occupiedSeats"`
}

func FromInventorySummary(s *queries.InventorySummary) (*InventoryResponse, error) {
	res := &InventoryResponse{}
	if err := copyInto(res, s); err != nil {
		return nil, err
	}
	return res, nil
}
