package queries

import (
	"context"
	"time"

	"seating-service/internal/domain/booking"
	"seating-service/internal/domain/user"
	"seating-service/internal/infra"
	"seating-service/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrSaleNotFound  = errs.Markf(errs.ErrNotFound, "sale not found")
	ErrInvalidCursor = errs.Markf(errs.ErrValidation, "invalid cursor")
)

type SaleReadStore interface {
	Receipt(ctx context.Context, saleID uuid.UUID) (*booking.Receipt, error)
	TicketsByBuyerFirstPage(ctx context.Context, buyerID uuid.UUID, limit int32) ([]*TicketView, error)
	TicketsByBuyerKeyset(ctx context.Context, buyerID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*TicketView, error)
}

type SalesQueries interface {
	// Receipt is visible to the buyer and to operators. Anyone else gets not-found.
	Receipt(ctx context.Context, saleID, actorID uuid.UUID, actorRole user.Role) (*booking.Receipt, error)
	// Tickets lists the buyer's tickets, newest sale first.
	Tickets(ctx context.Context, buyerID uuid.UUID, cursor *Cursor, limit int) ([]*TicketView, *Cursor, error)
}

type salesQueriesImpl struct {
	store SaleReadStore
}

func NewSalesQueries(store SaleReadStore) SalesQueries {
	return &salesQueriesImpl{store: store}
}

func (q *salesQueriesImpl) Receipt(ctx context.Context, saleID, actorID uuid.UUID, actorRole user.Role) (*booking.Receipt, error) {
	r, err := q.store.Receipt(ctx, saleID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSaleNotFound
		}
		return nil, err
	}
	if r.BuyerID != actorID && !actorRole.AtLeast(user.RoleOperator) {
		return nil, ErrSaleNotFound
	}
	return r, nil
}

func (q *salesQueriesImpl) Tickets(ctx context.Context, buyerID uuid.UUID, cursor *Cursor, limit int) ([]*TicketView, *Cursor, error) {
	limit = ValidateLimit(limit)

	var rows []*TicketView
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.store.TicketsByBuyerFirstPage(ctx, buyerID, int32(limit+1))
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.store.TicketsByBuyerKeyset(ctx, buyerID, lastCreatedAt, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.PurchasedAt, last.LineID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}
