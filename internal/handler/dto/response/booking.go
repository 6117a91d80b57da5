package response

import (
	"time"

	"seating-service/internal/domain/booking"
	"seating-service/internal/usecase/commands"

	"github.com/google/uuid"
)

type QuoteResponse struct {
	Token     string              `json:"token"`
	EventID   string              `json:"eventId"`
	Lines     []QuoteLineResponse `json:"lines"`
	Total     float64             `json:"total"`
	ExpiresAt time.Time           `json:"expiresAt"`
}

func FromQuote(q *commands.Quote) (*QuoteResponse, error) {
	res := &QuoteResponse{
		Token:     q.Token,
		EventID:   q.EventID,
		Total:     q.Total.Decimal(),
		ExpiresAt: q.ExpiresAt,
		Lines:     make([]QuoteLineResponse, 0, len(q.Seats)),
	}
	if err := copyInto(&res.Lines, q.Seats); err != nil {
		return nil, err
	}
	return res, nil
}

type ReceiptLineResponse struct {
	SeatID      uuid.UUID `json:"seatId"`
	SeatNumber  int       `json:"seatNumber"`
	SeatLabel   string    `json:"seatLabel"`
	SectionID   string    `json:"sectionId"`
	SectionName string    `json:"sectionName"`
	RowName     string    `json:"rowName"`
	UnitPrice   float64   `json:"unitPrice"`
	TicketCode  string    `json:"ticketCode"`
}

type ReceiptResponse struct {
	SaleID        uuid.UUID             `json:"saleId"`
	EventID       string                `json:"eventId"`
	EventName     string                `json:"eventName"`
	BuyerID       uuid.UUID             `json:"buyerId"`
	PaymentMethod string                `json:"paymentMethod"`
	CreatedAt     time.Time             `json:"createdAt"`
	Total         float64               `json:"total"`
	Lines         []ReceiptLineResponse `json:"lines"`
}

func FromReceipt(r *booking.Receipt) (*ReceiptResponse, error) {
	res := &ReceiptResponse{}
	if err := copyInto(res, r); err != nil {
		return nil, err
	}
	if res.Lines == nil {
		res.Lines = []ReceiptLineResponse{}
	}
	return res, nil
}
