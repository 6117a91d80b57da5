package readstore

import (
	"context"
	"time"

	"seating-service/internal/domain/booking"
	"seating-service/internal/domain/pricing"
	"seating-service/internal/infra"
	"seating-service/internal/infra/repository/converter"
	sqlc "seating-service/internal/infra/sqlc/generated"
	"seating-service/internal/pkg/pgconv"
	"seating-service/internal/usecase/queries"

	"github.com/google/uuid"
)

type SaleReadQueries interface {
	GetSaleWithEvent(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetSaleWithEventRow, error)
	ListSaleLines(ctx context.Context, db sqlc.DBTX, saleID uuid.UUID) ([]sqlc.ListSaleLinesRow, error)
	ListTicketsByBuyerFirstPage(ctx context.Context, db sqlc.DBTX, arg sqlc.ListTicketsByBuyerFirstPageParams) ([]sqlc.ListTicketsByBuyerFirstPageRow, error)
	ListTicketsByBuyerKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListTicketsByBuyerKeysetParams) ([]sqlc.ListTicketsByBuyerKeysetRow, error)
}

type SaleReadStore struct {
	queries SaleReadQueries
	db      sqlc.DBTX
}

func NewSaleReadStore(queries SaleReadQueries, db sqlc.DBTX) *SaleReadStore {
	return &SaleReadStore{
		queries: queries,
		db:      db,
	}
}

func (s *SaleReadStore) Receipt(ctx context.Context, saleID uuid.UUID) (*booking.Receipt, error) {
	head, err := s.queries.GetSaleWithEvent(ctx, s.db, saleID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("sale not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get sale", err)
	}

	lines, err := s.queries.ListSaleLines(ctx, s.db, saleID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list sale lines", err)
	}

	return converter.ReceiptFromRows(head, lines), nil
}

func (s *SaleReadStore) TicketsByBuyerFirstPage(ctx context.Context, buyerID uuid.UUID, limit int32) ([]*queries.TicketView, error) {
	rows, err := s.queries.ListTicketsByBuyerFirstPage(ctx, s.db, sqlc.ListTicketsByBuyerFirstPageParams{
		BuyerID:  buyerID,
		RowLimit: limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list buyer tickets", err)
	}

	result := make([]*queries.TicketView, len(rows))
	for i, row := range rows {
		result[i] = toTicketView(sqlc.ListTicketsByBuyerKeysetRow(row))
	}
	return result, nil
}

func (s *SaleReadStore) TicketsByBuyerKeyset(ctx context.Context, buyerID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.TicketView, error) {
	rows, err := s.queries.ListTicketsByBuyerKeyset(ctx, s.db, sqlc.ListTicketsByBuyerKeysetParams{
		BuyerID:       buyerID,
		LastCreatedAt: pgconv.TimeToPgtype(lastCreatedAt),
		LastID:        lastID,
		RowLimit:      limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list buyer tickets", err)
	}

	result := make([]*queries.TicketView, len(rows))
	for i, row := range rows {
		result[i] = toTicketView(row)
	}
	return result, nil
}

func toTicketView(row sqlc.ListTicketsByBuyerKeysetRow) *queries.TicketView {
	return &queries.TicketView{
		LineID:      row.LineID,
		SaleID:      row.SaleID,
		EventID:     row.EventID,
		EventName:   row.EventName,
		PurchasedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		TicketCode:  row.UniqueCode,
		SeatID:      row.SeatID,
		SeatLabel:   row.SeatLabel,
		SectionName: row.SectionName,
		RowName:     row.RowName,
		Price:       pricing.FromCents(row.UnitPriceCents),
	}
}
