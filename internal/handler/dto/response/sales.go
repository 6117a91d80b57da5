package response

import (
	"time"

	"seating-service/internal/usecase/queries"

	"github.com/google/uuid"
)

type TicketResponse struct {
	SaleID      uuid.UUID `json:"saleId"`
	EventID     string    `json:"eventId"`
	EventName   string    `json:"eventName"`
	PurchasedAt time.Time `json:"purchasedAt"`
	TicketCode  string    `json:"ticketCode"`
	SeatID      uuid.UUID `json:"seatId"`
	SeatLabel   string    `json:"seatLabel"`
	SectionName string    `json:"sectionName"`
	RowName     string    `json:"rowName"`
	Price       float64   `json:"price"`
}

type TicketListResponse struct {
	Tickets    []TicketResponse `json:"tickets"`
	NextCursor string           `json:"nextCursor,omitempty"`
}

func FromTicketViews(views []*queries.TicketView, next *queries.Cursor) (*TicketListResponse, error) {
	res := &TicketListResponse{Tickets: make([]TicketResponse, 0, len(views))}
	if err := copyInto(&res.Tickets, views); err != nil {
		return nil, err
	}
	if next != nil {
		res.NextCursor = next.After
	}
	return res, nil
}
