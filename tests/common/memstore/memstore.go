//go:build unit || e2e

// Package memstore is an in-memory shared.UnitOfWork for use case tests.
// Transactions are serialized and run against a copy of the state that is
// swapped in only when the callback succeeds.
package memstore

import (
	"context"
	"slices"
	"sort"
	"sync"
	"time"

	"seating-service/internal/domain/booking"
	"seating-service/internal/domain/event"
	"seating-service/internal/domain/seat"
	"seating-service/internal/infra"
	"seating-service/internal/pkg/clock"
	"seating-service/internal/usecase/shared"

	"github.com/google/uuid"
)

type Job struct {
	Kind    string
	Topic   string
	Payload []byte
	RunAt   time.Time
}

type idemKey struct {
	key   uuid.UUID
	buyer uuid.UUID
}

type state struct {
	events map[string]event.Event
	seats  map[uuid.UUID]seat.Seat
	sales  map[uuid.UUID]booking.Sale
	idem   map[idemKey]shared.IdempotencyRecord
	jobs   []Job
}

func newState() *state {
	return &state{
		events: map[string]event.Event{},
		seats:  map[uuid.UUID]seat.Seat{},
		sales:  map[uuid.UUID]booking.Sale{},
		idem:   map[idemKey]shared.IdempotencyRecord{},
	}
}

func (s *state) clone() *state {
	c := newState()
	for k, v := range s.events {
		v.Venue.Sections = slices.Clone(v.Venue.Sections)
		c.events[k] = v
	}
	for k, v := range s.seats {
		c.seats[k] = v
	}
	for k, v := range s.sales {
		c.sales[k] = v
	}
	for k, v := range s.idem {
		c.idem[k] = v
	}
	c.jobs = slices.Clone(s.jobs)
	return c
}

type Store struct {
	mu    sync.Mutex
	st    *state
	clock clock.Clock

	// FailCommit, when set, is returned after the callback succeeds and the
	// transaction is rolled back.
	FailCommit error
}

var _ shared.UnitOfWork = (*Store)(nil)

func New(c clock.Clock) *Store {
	return &Store{st: newState(), clock: c}
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	work := s.st.clone()
	if err := fn(ctx, &memTx{st: work, clock: s.clock}); err != nil {
		return err
	}
	if s.FailCommit != nil {
		return s.FailCommit
	}
	s.st = work
	return nil
}

func (s *Store) CommandReads() shared.CommandReads {
	return &lockedReads{s: s}
}

// Seed helpers write straight into the committed state.

func (s *Store) PutEvent(ev *event.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st.events[ev.ID] = *ev
}

func (s *Store) PutSeats(seats ...seat.Seat) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, st := range seats {
		s.st.seats[st.ID] = st
	}
}

func (s *Store) Event(id string) (event.Event, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ev, ok := s.st.events[id]
	return ev, ok
}

func (s *Store) Seats(eventID string) []seat.Seat {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.seatsByEvent(eventID)
}

func (s *Store) Sales() []booking.Sale {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]booking.Sale, 0, len(s.st.sales))
	for _, sale := range s.st.sales {
		out = append(out, sale)
	}
	return out
}

func (s *Store) Jobs() []Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.st.jobs)
}

func (s *Store) Idempotency(key, buyerID uuid.UUID) (shared.IdempotencyRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.st.idem[idemKey{key, buyerID}]
	return rec, ok
}

type lockedReads struct {
	s *Store
}

func (r *lockedReads) reads() *stateReads {
	return &stateReads{st: r.s.st, clock: r.s.clock}
}

func (r *lockedReads) EventByID(ctx context.Context, id string) (*event.Event, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.reads().EventByID(ctx, id)
}

func (r *lockedReads) SeatsByEvent(ctx context.Context, eventID string) ([]seat.Seat, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.reads().SeatsByEvent(ctx, eventID)
}

func (r *lockedReads) IdempotencyByKey(ctx context.Context, key, buyerID uuid.UUID) (*shared.IdempotencyRecord, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.reads().IdempotencyByKey(ctx, key, buyerID)
}

func (r *lockedReads) ReceiptBySale(ctx context.Context, saleID uuid.UUID) (*booking.Receipt, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.reads().ReceiptBySale(ctx, saleID)
}

func (r *lockedReads) EventIDsWithoutSeats(ctx context.Context) ([]string, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.reads().EventIDsWithoutSeats(ctx)
}

func (s *state) seatsByEvent(eventID string) []seat.Seat {
	var out []seat.Seat
	for _, st := range s.seats {
		if st.EventID == eventID {
			out = append(out, st)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Number != out[j].Number {
			return out[i].Number < out[j].Number
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out
}

type stateReads struct {
	st    *state
	clock clock.Clock
}

func (r *stateReads) EventByID(_ context.Context, id string) (*event.Event, error) {
	ev, ok := r.st.events[id]
	if !ok {
		return nil, infra.WrapRepoErr("event not found", nil, infra.KindNotFound)
	}
	ev.Venue.Sections = slices.Clone(ev.Venue.Sections)
	return &ev, nil
}

func (r *stateReads) SeatsByEvent(_ context.Context, eventID string) ([]seat.Seat, error) {
	return r.st.seatsByEvent(eventID), nil
}

func (r *stateReads) IdempotencyByKey(_ context.Context, key, buyerID uuid.UUID) (*shared.IdempotencyRecord, error) {
	rec, ok := r.st.idem[idemKey{key, buyerID}]
	if !ok || r.clock.Now().After(rec.ExpiresAt) {
		return nil, infra.WrapRepoErr("idempotency key not found", nil, infra.KindNotFound)
	}
	return &rec, nil
}

func (r *stateReads) ReceiptBySale(_ context.Context, saleID uuid.UUID) (*booking.Receipt, error) {
	sale, ok := r.st.sales[saleID]
	if !ok {
		return nil, infra.WrapRepoErr("sale not found", nil, infra.KindNotFound)
	}
	return booking.NewReceipt(&sale, r.st.events[sale.EventID].Name), nil
}

func (r *stateReads) EventIDsWithoutSeats(_ context.Context) ([]string, error) {
	withSeats := map[string]bool{}
	for _, st := range r.st.seats {
		withSeats[st.EventID] = true
	}
	var ids []string
	for id, ev := range r.st.events {
		if !ev.Cancelled && !withSeats[id] {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids, nil
}
