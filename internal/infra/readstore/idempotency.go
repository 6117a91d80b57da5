package readstore

import (
	"context"
	"time"

	"seating-service/internal/infra"
	sqlc "seating-service/internal/infra/sqlc/generated"
	"seating-service/internal/pkg/pgconv"
	"seating-service/internal/usecase/shared"

	"github.com/google/uuid"
)

type IdempotencyReadQueries interface {
	GetIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.GetIdempotencyKeyParams) (sqlc.IdempotencyKeys, error)
}

type IdempotencyReadStore struct {
	queries IdempotencyReadQueries
	db      sqlc.DBTX
	now     func() time.Time
}

func NewIdempotencyReadStore(queries IdempotencyReadQueries, db sqlc.DBTX) *IdempotencyReadStore {
	return &IdempotencyReadStore{
		queries: queries,
		db:      db,
		now:     time.Now,
	}
}

func (r *IdempotencyReadStore) Get(ctx context.Context, key uuid.UUID, buyerID uuid.UUID) (*shared.IdempotencyRecord, error) {
	params := sqlc.GetIdempotencyKeyParams{
		Key:     key,
		BuyerID: buyerID,
	}

	row, err := r.queries.GetIdempotencyKey(ctx, r.db, params)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("idempotency key not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get idempotency key", err)
	}

	record := &shared.IdempotencyRecord{
		Key:          row.Key,
		BuyerID:      row.BuyerID,
		Status:       row.Status,
		RequestHash:  row.RequestHash,
		ResultSaleID: pgconv.UUIDPtrFromPgtype(row.ResultSaleID),
		ExpiresAt:    pgconv.TimeFromPgtype(row.ExpiresAt),
	}

	if r.now().After(record.ExpiresAt) {
		return nil, infra.WrapRepoErr("idempotency key expired", nil, infra.KindNotFound)
	}

	return record, nil
}
