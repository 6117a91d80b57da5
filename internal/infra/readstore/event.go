package readstore

import (
	"context"

	"seating-service/internal/domain/event"
	"seating-service/internal/domain/seat"
	"seating-service/internal/infra"
	"seating-service/internal/infra/repository/converter"
	sqlc "seating-service/internal/infra/sqlc/generated"
	"seating-service/internal/pkg/pgconv"
	"seating-service/internal/usecase/queries"
)

type EventReadQueries interface {
	GetEvent(ctx context.Context, db sqlc.DBTX, id string) (sqlc.Events, error)
	ListVenueSections(ctx context.Context, db sqlc.DBTX, eventID string) ([]sqlc.VenueSections, error)
	ListSeatsByEvent(ctx context.Context, db sqlc.DBTX, eventID string) ([]sqlc.Seats, error)
	CountSeatsByEvent(ctx context.Context, db sqlc.DBTX, eventID string) (sqlc.CountSeatsByEventRow, error)
	ListEventIDsWithoutSeats(ctx context.Context, db sqlc.DBTX) ([]string, error)
}

type EventReadStore struct {
	queries EventReadQueries
	db      sqlc.DBTX
}

func NewEventReadStore(queries EventReadQueries, db sqlc.DBTX) *EventReadStore {
	return &EventReadStore{
		queries: queries,
		db:      db,
	}
}

func (s *EventReadStore) FindByID(ctx context.Context, id string) (*event.Event, error) {
	row, err := s.queries.GetEvent(ctx, s.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("event not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get event", err)
	}

	sections, err := s.queries.ListVenueSections(ctx, s.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list venue sections", err)
	}

	return converter.EventFromRows(row, sections), nil
}

func (s *EventReadStore) SeatsByEvent(ctx context.Context, eventID string) ([]seat.Seat, error) {
	rows, err := s.queries.ListSeatsByEvent(ctx, s.db, eventID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list seats", err)
	}
	return converter.SeatsFromRows(rows), nil
}

func (s *EventReadStore) SeatCounts(ctx context.Context, eventID string) (*queries.SeatCounts, error) {
	row, err := s.queries.CountSeatsByEvent(ctx, s.db, eventID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count seats", err)
	}
	return &queries.SeatCounts{
		Total:     int(row.Total),
		Available: int(row.Available),
		Occupied:  int(row.Occupied),
	}, nil
}

func (s *EventReadStore) EventIDsWithoutSeats(ctx context.Context) ([]string, error) {
	ids, err := s.queries.ListEventIDsWithoutSeats(ctx, s.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list events without seats", err)
	}
	return ids, nil
}
