package repository

import (
	"context"

	"seating-service/internal/domain/event"
	"seating-service/internal/infra"
	"seating-service/internal/infra/repository/converter"
	sqlc "seating-service/internal/infra/sqlc/generated"
	"seating-service/internal/pkg/pgconv"
)

type EventWriteQueries interface {
	CreateEvent(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateEventParams) error
	LockEvent(ctx context.Context, db sqlc.DBTX, id string) (sqlc.Events, error)
	ListVenueSections(ctx context.Context, db sqlc.DBTX, eventID string) ([]sqlc.VenueSections, error)
	UpdateEventVenue(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateEventVenueParams) (int64, error)
	DeleteVenueSections(ctx context.Context, db sqlc.DBTX, eventID string) error
	InsertVenueSection(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertVenueSectionParams) error
	CancelEvent(ctx context.Context, db sqlc.DBTX, id string) (int64, error)
}

type EventRepository struct {
	queries EventWriteQueries
	db      sqlc.DBTX
}

func NewEventRepository(queries EventWriteQueries, db sqlc.DBTX) *EventRepository {
	return &EventRepository{
		queries: queries,
		db:      db,
	}
}

func (r *EventRepository) Create(ctx context.Context, ev *event.Event) error {
	if err := r.queries.CreateEvent(ctx, r.db, converter.EventToCreateParams(ev)); err != nil {
		if pgconv.PgErrorCode(err) == pgconv.PgErrUniqueViolation {
			return infra.WrapRepoErr("event already exists", err, infra.KindConflict)
		}
		return infra.WrapRepoErr("failed to create event", err)
	}
	return r.insertSections(ctx, ev)
}

func (r *EventRepository) Lock(ctx context.Context, id string) (*event.Event, error) {
	row, err := r.queries.LockEvent(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("event not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock event", err)
	}

	sections, err := r.queries.ListVenueSections(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list venue sections", err)
	}

	return converter.EventFromRows(row, sections), nil
}

// SaveVenue rewrites the venue columns and replaces every section record.
func (r *EventRepository) SaveVenue(ctx context.Context, ev *event.Event) error {
	affected, err := r.queries.UpdateEventVenue(ctx, r.db, sqlc.UpdateEventVenueParams{
		ID:         ev.ID,
		VenueName:  ev.Venue.Name,
		VenueCity:  ev.Venue.City,
		VenueState: ev.Venue.State,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update event venue", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("event not found", nil, infra.KindNotFound)
	}

	if err := r.queries.DeleteVenueSections(ctx, r.db, ev.ID); err != nil {
		return infra.WrapRepoErr("failed to delete venue sections", err)
	}
	return r.insertSections(ctx, ev)
}

func (r *EventRepository) MarkCancelled(ctx context.Context, id string) error {
	affected, err := r.queries.CancelEvent(ctx, r.db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to cancel event", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("event not found or already cancelled", nil, infra.KindConflict)
	}
	return nil
}

func (r *EventRepository) insertSections(ctx context.Context, ev *event.Event) error {
	for i, rec := range ev.Venue.Sections {
		params := converter.SectionToInsertParams(ev.ID, i+1, rec)
		if err := r.queries.InsertVenueSection(ctx, r.db, params); err != nil {
			return infra.WrapRepoErr("failed to insert venue section", err)
		}
	}
	return nil
}
