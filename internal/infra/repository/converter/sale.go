package converter

import (
	"seating-service/internal/domain/booking"
	"seating-service/internal/domain/pricing"
	sqlc "seating-service/internal/infra/sqlc/generated"
	"seating-service/internal/pkg/pgconv"

	"github.com/google/uuid"
)

func SaleToCreateParams(s *booking.Sale) sqlc.CreateSaleParams {
	return sqlc.CreateSaleParams{
		ID:            s.ID,
		EventID:       s.EventID,
		BuyerID:       s.BuyerID,
		PaymentMethod: s.PaymentMethod,
		TotalCents:    s.Total.Cents(),
		CreatedAt:     pgconv.TimeToPgtype(s.CreatedAt),
	}
}

func TicketToCreateParams(t booking.Ticket) sqlc.CreateTicketParams {
	return sqlc.CreateTicketParams{
		ID:         t.ID,
		UniqueCode: t.UniqueCode,
		Notify:     t.Notify,
	}
}

func LineItemToCreateParams(saleID uuid.UUID, l booking.LineItem) sqlc.CreateSaleLineItemParams {
	return sqlc.CreateSaleLineItemParams{
		ID:             l.ID,
		SaleID:         saleID,
		TicketID:       l.TicketID,
		SeatID:         l.SeatID,
		Quantity:       pgconv.IntToInt32(l.Quantity),
		UnitPriceCents: l.UnitPrice.Cents(),
		SeatNumber:     pgconv.IntToInt32(l.SeatNumber),
		SeatLabel:      l.SeatLabel,
		SectionID:      l.SectionID,
		SectionName:    l.SectionName,
		RowName:        l.RowName,
	}
}

func ReceiptFromRows(head sqlc.GetSaleWithEventRow, lines []sqlc.ListSaleLinesRow) *booking.Receipt {
	r := &booking.Receipt{
		SaleID:        head.ID,
		EventID:       head.EventID,
		EventName:     head.EventName,
		BuyerID:       head.BuyerID,
		PaymentMethod: head.PaymentMethod,
		CreatedAt:     pgconv.TimeFromPgtype(head.CreatedAt),
		Total:         pricing.FromCents(head.TotalCents),
		Lines:         make([]booking.ReceiptLine, 0, len(lines)),
	}
	for _, l := range lines {
		r.Lines = append(r.Lines, booking.ReceiptLine{
			SeatID:      l.SeatID,
			SeatNumber:  int(l.SeatNumber),
			SeatLabel:   l.SeatLabel,
			SectionID:   l.SectionID,
			SectionName: l.SectionName,
			RowName:     l.RowName,
			UnitPrice:   pricing.FromCents(l.UnitPriceCents),
			TicketCode:  l.UniqueCode,
		})
	}
	return r
}
