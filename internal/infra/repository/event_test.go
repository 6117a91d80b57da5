//go:build unit

package repository

import (
	"context"
	"testing"

	"seating-service/internal/domain/pricing"
	"seating-service/internal/infra"
	sqlc "seating-service/internal/infra/sqlc/generated"
	"seating-service/tests/common/builder"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockEventWriteQueries struct {
	mock.Mock
}

func (m *MockEventWriteQueries) CreateEvent(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateEventParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

func (m *MockEventWriteQueries) LockEvent(ctx context.Context, db sqlc.DBTX, id string) (sqlc.Events, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Events), args.Error(1)
}

func (m *MockEventWriteQueries) ListVenueSections(ctx context.Context, db sqlc.DBTX, eventID string) ([]sqlc.VenueSections, error) {
	args := m.Called(ctx, db, eventID)
	return args.Get(0).([]sqlc.VenueSections), args.Error(1)
}

func (m *MockEventWriteQueries) UpdateEventVenue(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateEventVenueParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEventWriteQueries) DeleteVenueSections(ctx context.Context, db sqlc.DBTX, eventID string) error {
	args := m.Called(ctx, db, eventID)
	return args.Error(0)
}

func (m *MockEventWriteQueries) InsertVenueSection(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertVenueSectionParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

func (m *MockEventWriteQueries) CancelEvent(ctx context.Context, db sqlc.DBTX, id string) (int64, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(int64), args.Error(1)
}

func uniqueViolation(constraint string) error {
	return &pgconn.PgError{Code: "23505", ConstraintName: constraint}
}

func TestEventRepository_Create(t *testing.T) {
	ev := builder.NewEventBuilder().BuildDomain()

	tests := []struct {
		name      string
		createErr error
		wantKind  infra.RepositoryErrorKind
		sections  int
	}{
		{name: "success", sections: 1},
		{name: "duplicate id", createErr: uniqueViolation("events_pkey"), wantKind: infra.KindConflict},
		{name: "database error", createErr: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockEventWriteQueries)
			mockQueries.On("CreateEvent", mock.Anything, mock.Anything, mock.MatchedBy(func(p sqlc.CreateEventParams) bool {
				return p.ID == "EVT-1001" && p.VenueName == "Riverside Hall"
			})).Return(tt.createErr)
			if tt.sections > 0 {
				mockQueries.On("InsertVenueSection", mock.Anything, mock.Anything, mock.MatchedBy(func(p sqlc.InsertVenueSectionParams) bool {
					return p.EventID == "EVT-1001" && p.Position == 1 && p.BasePriceCents == 10000
				})).Return(nil).Times(tt.sections)
			}

			err := NewEventRepository(mockQueries, nil).Create(context.Background(), ev)

			if tt.wantKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				assert.NoError(t, err)
			}
			mockQueries.AssertExpectations(t)
		})
	}
}

func TestEventRepository_Lock(t *testing.T) {
	b := builder.NewEventBuilder()

	t.Run("loads the row with its sections", func(t *testing.T) {
		mockQueries := new(MockEventWriteQueries)
		mockQueries.On("LockEvent", mock.Anything, mock.Anything, "EVT-1001").Return(b.BuildInfra(), nil)
		mockQueries.On("ListVenueSections", mock.Anything, mock.Anything, "EVT-1001").Return(b.BuildSectionRows(), nil)

		ev, err := NewEventRepository(mockQueries, nil).Lock(context.Background(), "EVT-1001")
		require.NoError(t, err)
		assert.Equal(t, "Autumn Gala", ev.Name)
		require.Len(t, ev.Venue.Sections, 1)
		assert.Equal(t, "MAIN", ev.Venue.Sections[0].Code)
		assert.Equal(t, 20, ev.Venue.Sections[0].SeatCount)
		assert.Nil(t, ev.Venue.Sections[0].RowAdjustment)
		assert.Nil(t, ev.Venue.Sections[0].PriceFloor)
	})

	t.Run("reads a zero row adjustment back as set", func(t *testing.T) {
		rows := b.BuildSectionRows()
		rows[0].RowAdjustmentCents = pgtype.Int8{Int64: 0, Valid: true}

		mockQueries := new(MockEventWriteQueries)
		mockQueries.On("LockEvent", mock.Anything, mock.Anything, "EVT-1001").Return(b.BuildInfra(), nil)
		mockQueries.On("ListVenueSections", mock.Anything, mock.Anything, "EVT-1001").Return(rows, nil)

		ev, err := NewEventRepository(mockQueries, nil).Lock(context.Background(), "EVT-1001")
		require.NoError(t, err)
		require.NotNil(t, ev.Venue.Sections[0].RowAdjustment)
		assert.Equal(t, pricing.FromCents(0), *ev.Venue.Sections[0].RowAdjustment)
	})

	t.Run("missing row", func(t *testing.T) {
		mockQueries := new(MockEventWriteQueries)
		mockQueries.On("LockEvent", mock.Anything, mock.Anything, "EVT-404").Return(sqlc.Events{}, pgx.ErrNoRows)

		_, err := NewEventRepository(mockQueries, nil).Lock(context.Background(), "EVT-404")
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestEventRepository_SaveVenue(t *testing.T) {
	ev := builder.NewEventBuilder().BuildDomain()

	t.Run("replaces the sections", func(t *testing.T) {
		mockQueries := new(MockEventWriteQueries)
		mockQueries.On("UpdateEventVenue", mock.Anything, mock.Anything, mock.Anything).Return(int64(1), nil)
		mockQueries.On("DeleteVenueSections", mock.Anything, mock.Anything, "EVT-1001").Return(nil)
		mockQueries.On("InsertVenueSection", mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()

		require.NoError(t, NewEventRepository(mockQueries, nil).SaveVenue(context.Background(), ev))
		mockQueries.AssertExpectations(t)
	})

	t.Run("stores an explicit zero row adjustment and leaves the floor null", func(t *testing.T) {
		flat := builder.NewEventBuilder().BuildDomain()
		flat.Venue.Sections[0].RowAdjustment = pricing.FromCents(0).Ptr()

		mockQueries := new(MockEventWriteQueries)
		mockQueries.On("UpdateEventVenue", mock.Anything, mock.Anything, mock.Anything).Return(int64(1), nil)
		mockQueries.On("DeleteVenueSections", mock.Anything, mock.Anything, "EVT-1001").Return(nil)
		mockQueries.On("InsertVenueSection", mock.Anything, mock.Anything, mock.MatchedBy(func(p sqlc.InsertVenueSectionParams) bool {
			return p.RowAdjustmentCents == pgtype.Int8{Int64: 0, Valid: true} && !p.PriceFloorCents.Valid
		})).Return(nil).Once()

		require.NoError(t, NewEventRepository(mockQueries, nil).SaveVenue(context.Background(), flat))
		mockQueries.AssertExpectations(t)
	})

	t.Run("missing row", func(t *testing.T) {
		mockQueries := new(MockEventWriteQueries)
		mockQueries.On("UpdateEventVenue", mock.Anything, mock.Anything, mock.Anything).Return(int64(0), nil)

		err := NewEventRepository(mockQueries, nil).SaveVenue(context.Background(), ev)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		mockQueries.AssertNotCalled(t, "DeleteVenueSections", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestEventRepository_MarkCancelled(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		err      error
		wantKind infra.RepositoryErrorKind
	}{
		{name: "success", affected: 1},
		{name: "already cancelled", affected: 0, wantKind: infra.KindConflict},
		{name: "database error", err: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockEventWriteQueries)
			mockQueries.On("CancelEvent", mock.Anything, mock.Anything, "EVT-1001").Return(tt.affected, tt.err)

			err := NewEventRepository(mockQueries, nil).MarkCancelled(context.Background(), "EVT-1001")
			if tt.wantKind != "" {
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
