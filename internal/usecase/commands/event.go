package commands

import (
	"context"
	"errors"
	"strings"
	"time"

	"seating-service/internal/domain/event"
	"seating-service/internal/domain/layout"
	"seating-service/internal/infra"
	"seating-service/internal/pkg/errs"
	"seating-service/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrEventExists = errs.Markf(errs.ErrConflict, "event already exists")

type CreateEventRequest struct {
	ID       string
	Name     string
	StartsAt time.Time
	Venue    layout.VenueConfig
}

type UpdateLayoutRequest struct {
	EventID   string
	VenueName string
	Sections  []layout.SectionRecord
}

type EventCommands interface {
	CreateEvent(ctx context.Context, req CreateEventRequest) (*ReconcileResult, error)
	UpdateLayout(ctx context.Context, req UpdateLayoutRequest) (*ReconcileResult, error)
	CancelEvent(ctx context.Context, eventID string) error
}

type eventUseCaseImpl struct {
	uow      shared.UnitOfWork
	resolver *layout.Resolver
	newID    func() uuid.UUID
}

func NewEventUseCase(uow shared.UnitOfWork, resolver *layout.Resolver) EventCommands {
	return &eventUseCaseImpl{
		uow:      uow,
		resolver: resolver,
		newID:    uuid.New,
	}
}

// CreateEvent stores the event and its venue and builds the initial seat
// inventory in the same transaction.
func (uc *eventUseCaseImpl) CreateEvent(ctx context.Context, req CreateEventRequest) (*ReconcileResult, error) {
	ev, err := event.NewEvent(req.ID, req.Name, req.StartsAt, req.Venue)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	var result *ReconcileResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Events().Create(ctx, ev); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return ErrEventExists
			}
			return err
		}
		locked, err := tx.Events().Lock(ctx, ev.ID)
		if err != nil {
			return err
		}
		result, err = reconcileInTx(ctx, tx, uc.resolver, locked, uc.newID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// UpdateLayout replaces the venue sections and reconciles. Occupied seats
// survive a shrinking layout.
func (uc *eventUseCaseImpl) UpdateLayout(ctx context.Context, req UpdateLayoutRequest) (*ReconcileResult, error) {
	var result *ReconcileResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ev, err := tx.Events().Lock(ctx, strings.TrimSpace(req.EventID))
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrEventNotFound
			}
			return err
		}
		if ev.Cancelled {
			return ErrEventCancelled
		}

		if err := ev.ReplaceSections(req.VenueName, req.Sections); err != nil {
			return errs.Mark(err, errs.ErrValidation)
		}
		if err := tx.Events().SaveVenue(ctx, ev); err != nil {
			return err
		}

		result, err = reconcileInTx(ctx, tx, uc.resolver, ev, uc.newID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (uc *eventUseCaseImpl) CancelEvent(ctx context.Context, eventID string) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ev, err := tx.Events().Lock(ctx, strings.TrimSpace(eventID))
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrEventNotFound
			}
			return err
		}
		if err := ev.Cancel(); err != nil {
			if errors.Is(err, event.ErrAlreadyCancelled) {
				return ErrEventCancelled
			}
			return err
		}
		if err := tx.Events().MarkCancelled(ctx, ev.ID); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return ErrEventCancelled
			}
			return err
		}
		return nil
	})
}
