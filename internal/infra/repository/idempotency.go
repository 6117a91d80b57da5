package repository

import (
	"context"
	"time"

	"seating-service/internal/infra"
	sqlc "seating-service/internal/infra/sqlc/generated"
	"seating-service/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type IdempotencyWriteQueries interface {
	ClaimIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.ClaimIdempotencyKeyParams) error
	UpdateIdempotencyKeyCompleted(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateIdempotencyKeyCompletedParams) error
}

// IdempotencyRepository records Idempotency-Key usage for bookings. Keys are
// scoped per buyer.
type IdempotencyRepository struct {
	queries IdempotencyWriteQueries
	db      sqlc.DBTX
}

func NewIdempotencyRepository(queries IdempotencyWriteQueries, db sqlc.DBTX) *IdempotencyRepository {
	return &IdempotencyRepository{queries: queries, db: db}
}

// Claim registers the key as processing. A live key is left as it is; an
// expired one is reset and handed to this request.
func (r *IdempotencyRepository) Claim(ctx context.Context, key, buyerID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) error {
	err := r.queries.ClaimIdempotencyKey(ctx, r.db, sqlc.ClaimIdempotencyKeyParams{
		Key:         key,
		BuyerID:     buyerID,
		Endpoint:    endpoint,
		RequestHash: requestHash,
		ExpiresAt:   pgconv.TimeToPgtype(expiresAt),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to claim idempotency key", err)
	}
	return nil
}

func (r *IdempotencyRepository) Complete(ctx context.Context, key, buyerID, saleID uuid.UUID) error {
	err := r.queries.UpdateIdempotencyKeyCompleted(ctx, r.db, sqlc.UpdateIdempotencyKeyCompletedParams{
		Key:          key,
		BuyerID:      buyerID,
		ResultSaleID: pgconv.UUIDToPgtype(saleID),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to complete idempotency key", err)
	}
	return nil
}
