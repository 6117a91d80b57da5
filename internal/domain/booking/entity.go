package booking

import (
	"time"

	"seating-service/internal/domain/pricing"

	"github.com/google/uuid"
)

type Ticket struct {
	ID         uuid.UUID
	UniqueCode string
	Notify     bool
}

// LineItem ties exactly one seat to one ticket. Seat, section and row names
// are snapshots taken at commit, like the unit price.
type LineItem struct {
	ID          uuid.UUID
	SeatID      uuid.UUID
	TicketID    uuid.UUID
	Quantity    int
	UnitPrice   pricing.Money
	SeatNumber  int
	SeatLabel   string
	SectionID   string
	SectionName string
	RowName     string
}

type Sale struct {
	ID            uuid.UUID
	EventID       string
	BuyerID       uuid.UUID
	CreatedAt     time.Time
	PaymentMethod string
	Total         pricing.Money
	Lines         []LineItem
	Tickets       []Ticket
}

func (s *Sale) SeatIDs() []uuid.UUID {
	ids := make([]uuid.UUID, len(s.Lines))
	for i, l := range s.Lines {
		ids[i] = l.SeatID
	}
	return ids
}

func (s *Sale) ticketByID(id uuid.UUID) (Ticket, bool) {
	for _, t := range s.Tickets {
		if t.ID == id {
			return t, true
		}
	}
	return Ticket{}, false
}
