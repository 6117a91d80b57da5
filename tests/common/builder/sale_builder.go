//go:build unit || e2e

package builder

import (
	"fmt"
	"time"

	"seating-service/internal/domain/booking"
	"seating-service/internal/domain/pricing"
	"seating-service/internal/domain/seatmap"
	reqdto "seating-service/internal/handler/dto/request"
	"seating-service/internal/usecase/commands"
	"seating-service/internal/usecase/queries"

	"github.com/google/uuid"
)

type SaleBuilder struct {
	SaleID        uuid.UUID
	EventID       string
	EventName     string
	BuyerID       uuid.UUID
	PaymentMethod string
	CreatedAt     time.Time
	Seats         []seatmap.PricedSeat
}

// NewSaleBuilder starts from two front-row seats at 107.50 each.
func NewSaleBuilder() *SaleBuilder {
	b := &SaleBuilder{
		SaleID:        uuid.New(),
		EventID:       "EVT-1001",
		EventName:     "Autumn Gala",
		BuyerID:       uuid.New(),
		PaymentMethod: "card",
		CreatedAt:     time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC),
	}
	for n := 1; n <= 2; n++ {
		b.Seats = append(b.Seats, seatmap.PricedSeat{
			SeatID:      uuid.New(),
			SectionID:   "MAIN",
			SectionName: "Main Floor",
			RowID:       seatmap.RowID("MAIN", 1),
			RowName:     "Row 1",
			Row:         1,
			Number:      n,
			Label:       fmt.Sprintf("Seat %d", n),
			Price:       pricing.FromDecimal(107.5),
			Available:   true,
		})
	}
	return b
}

func (b *SaleBuilder) With(mutate func(*SaleBuilder)) *SaleBuilder {
	mutate(b)
	return b
}

func (b *SaleBuilder) SeatIDStrings() []string {
	ids := make([]string, len(b.Seats))
	for i, s := range b.Seats {
		ids[i] = s.SeatID.String()
	}
	return ids
}

func (b *SaleBuilder) total() pricing.Money {
	prices := make([]pricing.Money, len(b.Seats))
	for i, s := range b.Seats {
		prices[i] = s.Price
	}
	return pricing.Sum(prices...)
}

func (b *SaleBuilder) BuildReceipt() *booking.Receipt {
	r := &booking.Receipt{
		SaleID:        b.SaleID,
		EventID:       b.EventID,
		EventName:     b.EventName,
		BuyerID:       b.BuyerID,
		PaymentMethod: b.PaymentMethod,
		CreatedAt:     b.CreatedAt,
		Total:         b.total(),
	}
	for _, s := range b.Seats {
		r.Lines = append(r.Lines, booking.ReceiptLine{
			SeatID:      s.SeatID,
			SeatNumber:  s.Number,
			SeatLabel:   s.Label,
			SectionID:   s.SectionID,
			SectionName: s.SectionName,
			RowName:     s.RowName,
			UnitPrice:   s.Price,
			TicketCode:  booking.NewTicketCode(),
		})
	}
	return r
}

func (b *SaleBuilder) BuildQuote() *commands.Quote {
	return &commands.Quote{
		Token:     uuid.NewString(),
		EventID:   b.EventID,
		Seats:     b.Seats,
		Total:     b.total(),
		ExpiresAt: b.CreatedAt.Add(15 * time.Minute),
	}
}

func (b *SaleBuilder) BuildTicketViews() []*queries.TicketView {
	views := make([]*queries.TicketView, len(b.Seats))
	for i, s := range b.Seats {
		views[i] = &queries.TicketView{
			LineID:      uuid.New(),
			SaleID:      b.SaleID,
			EventID:     b.EventID,
			EventName:   b.EventName,
			PurchasedAt: b.CreatedAt,
			TicketCode:  booking.NewTicketCode(),
			SeatID:      s.SeatID,
			SeatLabel:   s.Label,
			SectionName: s.SectionName,
			RowName:     s.RowName,
			Price:       s.Price,
		}
	}
	return views
}

func (b *SaleBuilder) BuildQuoteRequestDTO() reqdto.QuoteRequest {
	return reqdto.QuoteRequest{SeatIDs: b.SeatIDStrings()}
}

func (b *SaleBuilder) BuildBookingRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		SeatIDs:       b.SeatIDStrings(),
		PaymentMethod: b.PaymentMethod,
	}
}
