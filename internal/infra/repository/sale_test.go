//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"seating-service/internal/domain/booking"
	"seating-service/internal/domain/seatmap"
	"seating-service/internal/infra"
	sqlc "seating-service/internal/infra/sqlc/generated"
	"seating-service/internal/pkg/clock"
	"seating-service/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSaleWriteQueries struct {
	mock.Mock
}

func (m *MockSaleWriteQueries) CreateSale(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateSaleParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

func (m *MockSaleWriteQueries) CreateTicket(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateTicketParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

func (m *MockSaleWriteQueries) CreateSaleLineItem(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateSaleLineItemParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

func newTestSale(t *testing.T) *booking.Sale {
	t.Helper()
	b := builder.NewSaleBuilder()
	f := booking.NewFactory(clock.NewFake(time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)))
	sale, err := f.NewSale(b.EventID, b.BuyerID, b.PaymentMethod, append([]seatmap.PricedSeat(nil), b.Seats...))
	require.NoError(t, err)
	return sale
}

func TestSaleRepository_Create(t *testing.T) {
	tests := []struct {
		name     string
		lineErr  error
		wantKind infra.RepositoryErrorKind
	}{
		{name: "success"},
		{name: "seat already sold", lineErr: uniqueViolation(lineItemSeatConstraint), wantKind: infra.KindConflict},
		{name: "ticket reused", lineErr: uniqueViolation("sale_line_items_ticket_id_key"), wantKind: infra.KindDuplicateKey},
		{name: "database error", lineErr: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sale := newTestSale(t)

			mockQueries := new(MockSaleWriteQueries)
			mockQueries.On("CreateSale", mock.Anything, mock.Anything, mock.MatchedBy(func(p sqlc.CreateSaleParams) bool {
				return p.ID == sale.ID && p.TotalCents == 21500
			})).Return(nil)
			mockQueries.On("CreateTicket", mock.Anything, mock.Anything, mock.Anything).Return(nil).Times(2)
			if tt.lineErr != nil {
				mockQueries.On("CreateSaleLineItem", mock.Anything, mock.Anything, mock.Anything).Return(tt.lineErr).Once()
			} else {
				mockQueries.On("CreateSaleLineItem", mock.Anything, mock.Anything, mock.MatchedBy(func(p sqlc.CreateSaleLineItemParams) bool {
					return p.SaleID == sale.ID && p.UnitPriceCents == 10750 && p.RowName == "Row 1"
				})).Return(nil).Times(2)
			}

			err := NewSaleRepository(mockQueries, nil).Create(context.Background(), sale)
			if tt.wantKind != "" {
				assert.True(t, infra.IsKind(err, tt.wantKind), "unexpected error: %v", err)
			} else {
				assert.NoError(t, err)
			}
			mockQueries.AssertExpectations(t)
		})
	}
}
