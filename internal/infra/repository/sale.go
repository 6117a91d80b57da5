package repository

import (
	"context"

	"seating-service/internal/domain/booking"
	"seating-service/internal/infra"
	"seating-service/internal/infra/repository/converter"
	sqlc "seating-service/internal/infra/sqlc/generated"
	"seating-service/internal/pkg/pgconv"
)

const lineItemSeatConstraint = "sale_line_items_seat_id_key"

type SaleWriteQueries interface {
	CreateSale(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateSaleParams) error
	CreateTicket(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateTicketParams) error
	CreateSaleLineItem(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateSaleLineItemParams) error
}

type SaleRepository struct {
	queries SaleWriteQueries
	db      sqlc.DBTX
}

func NewSaleRepository(queries SaleWriteQueries, db sqlc.DBTX) *SaleRepository {
	return &SaleRepository{
		queries: queries,
		db:      db,
	}
}

// Create inserts the sale, its tickets and line items. A seat that already
// has a line item yields a CONFLICT error.
func (r *SaleRepository) Create(ctx context.Context, sale *booking.Sale) error {
	if err := r.queries.CreateSale(ctx, r.db, converter.SaleToCreateParams(sale)); err != nil {
		return infra.WrapRepoErr("failed to create sale", err)
	}

	for _, t := range sale.Tickets {
		if err := r.queries.CreateTicket(ctx, r.db, converter.TicketToCreateParams(t)); err != nil {
			return infra.WrapRepoErr("failed to create ticket", err)
		}
	}

	for _, l := range sale.Lines {
		err := r.queries.CreateSaleLineItem(ctx, r.db, converter.LineItemToCreateParams(sale.ID, l))
		if err != nil {
			if pgconv.PgErrorCode(err) == pgconv.PgErrUniqueViolation && pgconv.ConstraintName(err) == lineItemSeatConstraint {
				return infra.WrapRepoErr("seat already sold", err, infra.KindConflict)
			}
			return infra.WrapRepoErr("failed to create sale line item", err)
		}
	}

	return nil
}
