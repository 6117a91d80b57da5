package booking

import (
	"time"

	"seating-service/internal/domain/pricing"

	"github.com/google/uuid"
)

type ReceiptLine struct {
	SeatID      uuid.UUID
	SeatNumber  int
	SeatLabel   string
	SectionID   string
	SectionName string
	RowName     string
	UnitPrice   pricing.Money
	TicketCode  string
}

type Receipt struct {
	SaleID        uuid.UUID
	EventID       string
	EventName     string
	BuyerID       uuid.UUID
	PaymentMethod string
	CreatedAt     time.Time
	Total         pricing.Money
	Lines         []ReceiptLine
}

// NewReceipt renders a committed sale.
func NewReceipt(s *Sale, eventName string) *Receipt {
	r := &Receipt{
		SaleID:        s.ID,
		EventID:       s.EventID,
		EventName:     eventName,
		BuyerID:       s.BuyerID,
		PaymentMethod: s.PaymentMethod,
		CreatedAt:     s.CreatedAt,
		Total:         s.Total,
		Lines:         make([]ReceiptLine, 0, len(s.Lines)),
	}
	for _, l := range s.Lines {
		ticket, _ := s.ticketByID(l.TicketID)
		r.Lines = append(r.Lines, ReceiptLine{
			SeatID:      l.SeatID,
			SeatNumber:  l.SeatNumber,
			SeatLabel:   l.SeatLabel,
			SectionID:   l.SectionID,
			SectionName: l.SectionName,
			RowName:     l.RowName,
			UnitPrice:   l.UnitPrice,
			TicketCode:  ticket.UniqueCode,
		})
	}
	return r
}
