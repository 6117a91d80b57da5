//go:build unit || e2e

package memstore

import (
	"context"
	"slices"
	"time"

	"seating-service/internal/domain/booking"
	"seating-service/internal/domain/event"
	"seating-service/internal/domain/seat"
	"seating-service/internal/infra"
	"seating-service/internal/pkg/clock"
	"seating-service/internal/usecase/shared"

	"github.com/google/uuid"
)

type memTx struct {
	st    *state
	clock clock.Clock
}

func (t *memTx) Events() shared.EventRepository               { return &eventRepo{st: t.st} }
func (t *memTx) Seats() shared.SeatRepository                 { return &seatRepo{st: t.st} }
func (t *memTx) Sales() shared.SaleRepository                 { return &saleRepo{st: t.st} }
func (t *memTx) Idempotency() shared.IdempotencyRepository    { return &idemRepo{st: t.st} }
func (t *memTx) Notifications() shared.NotificationRepository { return &jobRepo{st: t.st} }
func (t *memTx) Reads() shared.CommandReads                   { return &stateReads{st: t.st, clock: t.clock} }

type eventRepo struct{ st *state }

func (r *eventRepo) Create(_ context.Context, ev *event.Event) error {
	if _, ok := r.st.events[ev.ID]; ok {
		return infra.WrapRepoErr("event already exists", nil, infra.KindConflict)
	}
	stored := *ev
	stored.Venue.Sections = slices.Clone(ev.Venue.Sections)
	r.st.events[ev.ID] = stored
	return nil
}

func (r *eventRepo) Lock(_ context.Context, id string) (*event.Event, error) {
	ev, ok := r.st.events[id]
	if !ok {
		return nil, infra.WrapRepoErr("event not found", nil, infra.KindNotFound)
	}
	ev.Venue.Sections = slices.Clone(ev.Venue.Sections)
	return &ev, nil
}

func (r *eventRepo) SaveVenue(_ context.Context, ev *event.Event) error {
	stored, ok := r.st.events[ev.ID]
	if !ok {
		return infra.WrapRepoErr("event not found", nil, infra.KindNotFound)
	}
	stored.Venue = ev.Venue
	stored.Venue.Sections = slices.Clone(ev.Venue.Sections)
	r.st.events[ev.ID] = stored
	return nil
}

func (r *eventRepo) MarkCancelled(_ context.Context, id string) error {
	stored, ok := r.st.events[id]
	if !ok || stored.Cancelled {
		return infra.WrapRepoErr("event not found or already cancelled", nil, infra.KindConflict)
	}
	stored.Cancelled = true
	r.st.events[id] = stored
	return nil
}

type seatRepo struct{ st *state }

func (r *seatRepo) Insert(_ context.Context, seats []seat.Seat) error {
	for _, s := range seats {
		for _, existing := range r.st.seats {
			if existing.EventID == s.EventID && existing.Number == s.Number {
				return infra.WrapRepoErr("seat number already taken", nil, infra.KindConflict)
			}
		}
		r.st.seats[s.ID] = s
	}
	return nil
}

func (r *seatRepo) DeleteAvailable(_ context.Context, ids []uuid.UUID) (int64, error) {
	var n int64
	for _, id := range ids {
		if s, ok := r.st.seats[id]; ok && s.IsAvailable() {
			delete(r.st.seats, id)
			n++
		}
	}
	return n, nil
}

func (r *seatRepo) RekeyAvailable(_ context.Context, rekeys []seat.Rekey) (int64, error) {
	var n int64
	for _, rk := range rekeys {
		if s, ok := r.st.seats[rk.SeatID]; ok && s.IsAvailable() {
			s.SectionID = rk.SectionID
			r.st.seats[rk.SeatID] = s
			n++
		}
	}
	return n, nil
}

func (r *seatRepo) Occupy(_ context.Context, eventID string, ids []uuid.UUID) (int64, error) {
	var n int64
	for _, id := range ids {
		if s, ok := r.st.seats[id]; ok && s.EventID == eventID && s.IsAvailable() {
			s.State = seat.StateOccupied
			r.st.seats[id] = s
			n++
		}
	}
	return n, nil
}

type saleRepo struct{ st *state }

func (r *saleRepo) Create(_ context.Context, sale *booking.Sale) error {
	for _, existing := range r.st.sales {
		for _, held := range existing.SeatIDs() {
			if slices.Contains(sale.SeatIDs(), held) {
				return infra.WrapRepoErr("seat already sold", nil, infra.KindConflict)
			}
		}
	}
	r.st.sales[sale.ID] = *sale
	return nil
}

type idemRepo struct{ st *state }

func (r *idemRepo) Claim(_ context.Context, key, buyerID uuid.UUID, _ string, requestHash string, expiresAt time.Time) error {
	k := idemKey{key, buyerID}
	if _, ok := r.st.idem[k]; ok {
		return nil
	}
	r.st.idem[k] = shared.IdempotencyRecord{
		Key:         key,
		BuyerID:     buyerID,
		Status:      shared.IdempotencyProcessing,
		RequestHash: requestHash,
		ExpiresAt:   expiresAt,
	}
	return nil
}

func (r *idemRepo) Complete(_ context.Context, key, buyerID, saleID uuid.UUID) error {
	k := idemKey{key, buyerID}
	rec, ok := r.st.idem[k]
	if !ok {
		return infra.WrapRepoErr("idempotency key not found", nil, infra.KindNotFound)
	}
	rec.Status = shared.IdempotencyCompleted
	rec.ResultSaleID = &saleID
	r.st.idem[k] = rec
	return nil
}

type jobRepo struct{ st *state }

func (r *jobRepo) CreateJob(_ context.Context, kind, topic string, payload []byte, runAt time.Time) error {
	r.st.jobs = append(r.st.jobs, Job{Kind: kind, Topic: topic, Payload: slices.Clone(payload), RunAt: runAt})
	return nil
}
