package booking

import (
	"errors"
	"strings"
	"unicode/utf8"

	"seating-service/internal/domain/pricing"
	"seating-service/internal/domain/seatmap"
	"seating-service/internal/pkg/clock"

	"github.com/google/uuid"
)

var (
	ErrNoSeats              = errors.New("at least one seat is required")
	ErrDuplicateSeat        = errors.New("seat listed twice")
	ErrSeatUnavailable      = errors.New("seat is not available")
	ErrInvalidPaymentMethod = errors.New("payment method must be 1-50 characters")
	ErrMissingBuyer         = errors.New("buyer is required")
)

const maxPaymentMethodLength = 50

// NewTicketCode returns 32 lowercase hex characters from a random UUID.
func NewTicketCode() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

type Factory struct {
	Clock   clock.Clock
	NewID   func() uuid.UUID
	NewCode func() string
}

func NewFactory(c clock.Clock) *Factory {
	return &Factory{
		Clock:   c,
		NewID:   uuid.New,
		NewCode: NewTicketCode,
	}
}

// NewSale builds a sale with one ticket and one line item per priced seat.
// Prices come from the seat map; nothing the client sent is trusted here.
func (f *Factory) NewSale(eventID string, buyerID uuid.UUID, paymentMethod string, seats []seatmap.PricedSeat) (*Sale, error) {
	if buyerID == uuid.Nil {
		return nil, ErrMissingBuyer
	}
	paymentMethod = strings.TrimSpace(paymentMethod)
	if paymentMethod == "" || utf8.RuneCountInString(paymentMethod) > maxPaymentMethodLength {
		return nil, ErrInvalidPaymentMethod
	}
	if len(seats) == 0 {
		return nil, ErrNoSeats
	}

	sale := &Sale{
		ID:            f.NewID(),
		EventID:       eventID,
		BuyerID:       buyerID,
		CreatedAt:     f.Clock.Now(),
		PaymentMethod: paymentMethod,
		Lines:         make([]LineItem, 0, len(seats)),
		Tickets:       make([]Ticket, 0, len(seats)),
	}

	seen := make(map[uuid.UUID]struct{}, len(seats))
	prices := make([]pricing.Money, 0, len(seats))
	for _, s := range seats {
		if _, dup := seen[s.SeatID]; dup {
			return nil, ErrDuplicateSeat
		}
		seen[s.SeatID] = struct{}{}
		if !s.Available {
			return nil, ErrSeatUnavailable
		}

		ticket := Ticket{ID: f.NewID(), UniqueCode: f.NewCode(), Notify: true}
		sale.Tickets = append(sale.Tickets, ticket)
		sale.Lines = append(sale.Lines, LineItem{
			ID:          f.NewID(),
			SeatID:      s.SeatID,
			TicketID:    ticket.ID,
			Quantity:    1,
			UnitPrice:   s.Price,
			SeatNumber:  s.Number,
			SeatLabel:   s.Label,
			SectionID:   s.SectionID,
			SectionName: s.SectionName,
			RowName:     s.RowName,
		})
		prices = append(prices, s.Price)
	}
	sale.Total = pricing.Sum(prices...)

	return sale, nil
}
