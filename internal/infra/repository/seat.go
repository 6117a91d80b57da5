package repository

import (
	"context"

	"seating-service/internal/domain/seat"
	"seating-service/internal/infra"
	"seating-service/internal/infra/repository/converter"
	sqlc "seating-service/internal/infra/sqlc/generated"
	"seating-service/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type SeatWriteQueries interface {
	InsertSeat(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertSeatParams) error
	DeleteAvailableSeat(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	RekeyAvailableSeat(ctx context.Context, db sqlc.DBTX, arg sqlc.RekeyAvailableSeatParams) (int64, error)
	OccupySeats(ctx context.Context, db sqlc.DBTX, arg sqlc.OccupySeatsParams) (int64, error)
}

type SeatRepository struct {
	queries SeatWriteQueries
	db      sqlc.DBTX
}

func NewSeatRepository(queries SeatWriteQueries, db sqlc.DBTX) *SeatRepository {
	return &SeatRepository{
		queries: queries,
		db:      db,
	}
}

func (r *SeatRepository) Insert(ctx context.Context, seats []seat.Seat) error {
	for _, s := range seats {
		if err := r.queries.InsertSeat(ctx, r.db, converter.SeatToInsertParams(s)); err != nil {
			if pgconv.PgErrorCode(err) == pgconv.PgErrUniqueViolation {
				return infra.WrapRepoErr("seat number already taken", err, infra.KindConflict)
			}
			return infra.WrapRepoErr("failed to insert seat", err)
		}
	}
	return nil
}

func (r *SeatRepository) DeleteAvailable(ctx context.Context, ids []uuid.UUID) (int64, error) {
	var total int64
	for _, id := range ids {
		n, err := r.queries.DeleteAvailableSeat(ctx, r.db, id)
		if err != nil {
			return total, infra.WrapRepoErr("failed to delete seat", err)
		}
		total += n
	}
	return total, nil
}

func (r *SeatRepository) RekeyAvailable(ctx context.Context, rekeys []seat.Rekey) (int64, error) {
	var total int64
	for _, rk := range rekeys {
		n, err := r.queries.RekeyAvailableSeat(ctx, r.db, sqlc.RekeyAvailableSeatParams{
			ID:        rk.SeatID,
			SectionID: pgconv.NullableString(rk.SectionID),
		})
		if err != nil {
			return total, infra.WrapRepoErr("failed to re-key seat", err)
		}
		total += n
	}
	return total, nil
}

func (r *SeatRepository) Occupy(ctx context.Context, eventID string, ids []uuid.UUID) (int64, error) {
	n, err := r.queries.OccupySeats(ctx, r.db, sqlc.OccupySeatsParams{
		EventID: eventID,
		Ids:     ids,
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to occupy seats", err)
	}
	return n, nil
}
