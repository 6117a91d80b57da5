//go:build unit

package readstore

import (
	"context"
	"testing"
	"time"

	"seating-service/internal/infra"
	sqlc "seating-service/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockIdempotencyReadQueries struct {
	mock.Mock
}

func (m *MockIdempotencyReadQueries) GetIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.GetIdempotencyKeyParams) (sqlc.IdempotencyKeys, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.IdempotencyKeys), args.Error(1)
}

func TestIdempotencyReadStore_Get(t *testing.T) {
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	key, buyer, saleID := uuid.New(), uuid.New(), uuid.New()
	params := sqlc.GetIdempotencyKeyParams{Key: key, BuyerID: buyer}

	row := func(expiresAt time.Time) sqlc.IdempotencyKeys {
		return sqlc.IdempotencyKeys{
			Key:          key,
			BuyerID:      buyer,
			Endpoint:     "create_booking",
			RequestHash:  "abc",
			Status:       "completed",
			ResultSaleID: pgtype.UUID{Bytes: saleID, Valid: true},
			ExpiresAt:    pgtype.Timestamptz{Time: expiresAt, Valid: true},
		}
	}

	tests := []struct {
		name      string
		row       sqlc.IdempotencyKeys
		mockError error
		wantKind  infra.RepositoryErrorKind
	}{
		{name: "live record", row: row(now.Add(time.Hour))},
		{name: "expired record", row: row(now.Add(-time.Second)), wantKind: infra.KindNotFound},
		{name: "unknown key", mockError: pgx.ErrNoRows, wantKind: infra.KindNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockIdempotencyReadQueries)
			mockQueries.On("GetIdempotencyKey", mock.Anything, mock.Anything, params).Return(tt.row, tt.mockError)

			store := NewIdempotencyReadStore(mockQueries, nil)
			store.now = func() time.Time { return now }

			rec, err := store.Get(context.Background(), key, buyer)
			if tt.wantKind != "" {
				assert.True(t, infra.IsKind(err, tt.wantKind))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "completed", rec.Status)
			require.NotNil(t, rec.ResultSaleID)
			assert.Equal(t, saleID, *rec.ResultSaleID)
		})
	}
}
