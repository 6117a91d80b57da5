package commands

import (
	"context"
	"log/slog"
	"strings"

	"seating-service/internal/domain/event"
	"seating-service/internal/domain/layout"
	"seating-service/internal/domain/seat"
	"seating-service/internal/infra"
	"seating-service/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReconcileResult struct {
	EventID   string
	Added     int
	Removed   int
	Rekeyed   int
	SeatCount int
}

type InventoryCommands interface {
	// ReconcileEvent aligns the stored seats of one event with its resolved layout.
	ReconcileEvent(ctx context.Context, eventID string) (*ReconcileResult, error)
	// SweepMissingInventory reconciles every open event that has no seats yet.
	SweepMissingInventory(ctx context.Context) ([]ReconcileResult, error)
}

type inventoryUseCaseImpl struct {
	uow      shared.UnitOfWork
	resolver *layout.Resolver
	newID    func() uuid.UUID
}

func NewInventoryUseCase(uow shared.UnitOfWork, resolver *layout.Resolver) InventoryCommands {
	return &inventoryUseCaseImpl{
		uow:      uow,
		resolver: resolver,
		newID:    uuid.New,
	}
}

func (uc *inventoryUseCaseImpl) ReconcileEvent(ctx context.Context, eventID string) (*ReconcileResult, error) {
	var result *ReconcileResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ev, err := tx.Events().Lock(ctx, strings.TrimSpace(eventID))
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrEventNotFound
			}
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

func (uc *inventoryUseCaseImpl) SweepMissingInventory(ctx context.Context) ([]ReconcileResult, error) {
	ids, err := uc.uow.CommandReads().EventIDsWithoutSeats(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]ReconcileResult, 0, len(ids))
	for _, id := range ids {
		res, err := uc.ReconcileEvent(ctx, id)
		if err != nil {
			// one broken event must not block the rest of the sweep
			slog.Error("inventory sweep failed for event", "event_id", id, "error", err.Error())
			continue
		}
		results = append(results, *res)
	}
	return results, nil
}

// reconcileInTx expects the event row to be locked by the caller.
func reconcileInTx(
	ctx context.Context,
	tx shared.Tx,
	resolver *layout.Resolver,
	ev *event.Event,
	newID func() uuid.UUID,
) (*ReconcileResult, error) {
	existing, err := tx.Reads().SeatsByEvent(ctx, ev.ID)
	if err != nil {
		return nil, err
	}

	defs := resolver.Resolve(ev.LayoutInput(existing))
	m := seat.Reconcile(defs, existing)

	result := &ReconcileResult{EventID: ev.ID, SeatCount: len(existing)}
	if m.IsEmpty() {
		return result, nil
	}

	if len(m.Remove) > 0 {
		n, err := tx.Seats().DeleteAvailable(ctx, m.Remove)
		if err != nil {
			return nil, err
		}
		result.Removed = int(n)
	}

	if len(m.Rekey) > 0 {
		n, err := tx.Seats().RekeyAvailable(ctx, m.Rekey)
		if err != nil {
			return nil, err
		}
		result.Rekeyed = int(n)
	}

	if len(m.Add) > 0 {
		added := make([]seat.Seat, len(m.Add))
		for i, a := range m.Add {
			added[i] = seat.Seat{
				ID:        newID(),
				EventID:   ev.ID,
				SectionID: a.SectionID,
				Number:    a.Number,
				State:     seat.StateAvailable,
			}
		}
		if err := tx.Seats().Insert(ctx, added); err != nil {
			return nil, err
		}
		result.Added = len(added)
	}

	result.SeatCount = len(existing) + result.Added - result.Removed

	slog.Info("seat inventory reconciled",
		"event_id", ev.ID,
		"added", result.Added,
		"removed", result.Removed,
		"rekeyed", result.Rekeyed,
	)
	return result, nil
}
