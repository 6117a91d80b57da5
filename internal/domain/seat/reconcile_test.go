//go:build unit

package seat_test

import (
	"math/rand"
	"testing"

	"seating-service/internal/domain/layout"
	"seating-service/internal/domain/pricing"
	"seating-service/internal/domain/seat"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func section(id string, count, perRow int) layout.SectionDefinition {
	return layout.SectionDefinition{
		SectionID:   id,
		DisplayName: id,
		BasePrice:   pricing.FromDecimal(85),
		SeatCount:   count,
		SeatsPerRow: perRow,
	}
}

func stored(sectionID string, number int, state seat.State) seat.Seat {
	return seat.Seat{ID: uuid.New(), EventID: "E1", SectionID: sectionID, Number: number, State: state}
}

func reconcileAndApply(defs []layout.SectionDefinition, existing []seat.Seat) (seat.Mutations, []seat.Seat) {
	m := seat.Reconcile(defs, existing)
	return m, seat.Apply("E1", existing, m, uuid.New)
}

func TestReconcile_FreshFallbackSection(t *testing.T) {
	defs := []layout.SectionDefinition{section("SEC-E1", 240, 12)}

	m, after := reconcileAndApply(defs, nil)
	require.Len(t, m.Add, 240)
	assert.Empty(t, m.Remove)
	assert.Empty(t, m.Rekey)
	for i, a := range m.Add {
		assert.Equal(t, i+1, a.Number)
		assert.Equal(t, "SEC-E1", a.SectionID)
	}

	again := seat.Reconcile(defs, after)
	assert.True(t, again.IsEmpty(), "second run must be a no-op: %+v", again)
}

func TestReconcile_EmptySectionsUseLegacyBlocks(t *testing.T) {
	defs := []layout.SectionDefinition{section("A", 2, 2), section("B", 3, 3), section("C", 1, 1)}

	m := seat.Reconcile(defs, nil)
	assert.Equal(t, []seat.NewSeat{
		{SectionID: "A", Number: 1},
		{SectionID: "A", Number: 2},
		{SectionID: "B", Number: 1001},
		{SectionID: "B", Number: 1002},
		{SectionID: "B", Number: 1003},
		{SectionID: "C", Number: 2001},
	}, m.Add)
}

func TestReconcile_GrowContinuesNumbering(t *testing.T) {
	defs := []layout.SectionDefinition{section("A", 5, 5)}
	existing := []seat.Seat{
		stored("A", 1, seat.StateAvailable),
		stored("A", 2, seat.StateOccupied),
		stored("A", 3, seat.StateAvailable),
	}

	m := seat.Reconcile(defs, existing)
	assert.Equal(t, []seat.NewSeat{{SectionID: "A", Number: 4}, {SectionID: "A", Number: 5}}, m.Add)
	assert.Empty(t, m.Remove)
}

func TestReconcile_SkipsNumbersUsedElsewhere(t *testing.T) {
	defs := []layout.SectionDefinition{section("A", 2, 2), section("B", 1, 1)}
	existing := []seat.Seat{stored("B", 1, seat.StateAvailable)}

	m := seat.Reconcile(defs, existing)
	assert.Equal(t, []seat.NewSeat{{SectionID: "A", Number: 2}, {SectionID: "A", Number: 3}}, m.Add)
}

func TestReconcile_ShrinkRemovesHighestAvailable(t *testing.T) {
	defs := []layout.SectionDefinition{section("A", 2, 2)}
	s1 := stored("A", 1, seat.StateAvailable)
	s2 := stored("A", 2, seat.StateAvailable)
	s3 := stored("A", 3, seat.StateAvailable)
	s4 := stored("A", 4, seat.StateAvailable)
	s5 := stored("A", 5, seat.StateOccupied)

	m, after := reconcileAndApply(defs, []seat.Seat{s1, s2, s3, s4, s5})
	assert.Equal(t, []uuid.UUID{s4.ID, s3.ID, s2.ID}, m.Remove)
	assert.Empty(t, m.Add)
	assert.ElementsMatch(t, []int{1, 5}, numbers(after))

	assert.True(t, seat.Reconcile(defs, after).IsEmpty())
}

func TestReconcile_OccupiedOverflowIsKept(t *testing.T) {
	defs := []layout.SectionDefinition{section("A", 1, 1)}
	existing := []seat.Seat{
		stored("A", 1, seat.StateOccupied),
		stored("A", 2, seat.StateOccupied),
		stored("A", 3, seat.StateOccupied),
	}

	m := seat.Reconcile(defs, existing)
	assert.True(t, m.IsEmpty())
}

func TestReconcile_AdoptsAvailableOrphans(t *testing.T) {
	defs := []layout.SectionDefinition{section("A", 3, 3), section("B", 1, 1)}
	member := stored("A", 1, seat.StateAvailable)
	spare := stored("OLD", 50, seat.StateAvailable)
	soldOrphan := stored("OLD", 51, seat.StateOccupied)
	b := stored("B", 1001, seat.StateAvailable)

	m, after := reconcileAndApply(defs, []seat.Seat{member, spare, soldOrphan, b})
	assert.Equal(t, []seat.Rekey{{SeatID: spare.ID, SectionID: "A"}}, m.Rekey)
	assert.Equal(t, []seat.NewSeat{{SectionID: "A", Number: 2}}, m.Add)
	assert.Empty(t, m.Remove)

	for _, s := range after {
		if s.ID == soldOrphan.ID {
			assert.Equal(t, soldOrphan, s)
		}
	}
	assert.True(t, seat.Reconcile(defs, after).IsEmpty())
}

func TestReconcile_LegacySeatsGainSectionID(t *testing.T) {
	defs := []layout.SectionDefinition{section("A", 2, 2), section("B", 2, 2)}
	legacyFree := seat.Seat{ID: uuid.New(), EventID: "E1", Number: 1001, State: seat.StateAvailable}
	legacySold := seat.Seat{ID: uuid.New(), EventID: "E1", Number: 1002, State: seat.StateOccupied}

	m, after := reconcileAndApply(defs, []seat.Seat{legacyFree, legacySold})
	assert.Equal(t, []seat.Rekey{{SeatID: legacyFree.ID, SectionID: "B"}}, m.Rekey)
	assert.Equal(t, []seat.NewSeat{{SectionID: "A", Number: 1}, {SectionID: "A", Number: 2}}, m.Add)

	groups, orphans := seat.GroupBySection(defs, after)
	assert.Empty(t, orphans)
	assert.Len(t, groups["B"], 2)
	assert.True(t, seat.Reconcile(defs, after).IsEmpty())
}

func TestReconcile_NeverTouchesOccupiedSeats(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	sectionIDs := []string{"A", "B", "C", "OLD", ""}

	for round := 0; round < 200; round++ {
		var defs []layout.SectionDefinition
		for _, id := range []string{"A", "B", "C"}[:1+rng.Intn(3)] {
			defs = append(defs, section(id, rng.Intn(12), 1+rng.Intn(4)))
		}

		var existing []seat.Seat
		numbersUsed := map[int]bool{}
		for i := 0; i < rng.Intn(30); i++ {
			n := 1 + rng.Intn(3000)
			if numbersUsed[n] {
				continue
			}
			numbersUsed[n] = true
			state := seat.StateAvailable
			if rng.Intn(3) == 0 {
				state = seat.StateOccupied
			}
			existing = append(existing, stored(sectionIDs[rng.Intn(len(sectionIDs))], n, state))
		}

		occupied := map[uuid.UUID]seat.Seat{}
		for _, s := range existing {
			if !s.IsAvailable() {
				occupied[s.ID] = s
			}
		}

		m, after := reconcileAndApply(defs, existing)
		for _, id := range m.Remove {
			_, hit := occupied[id]
			require.False(t, hit, "round %d removed an occupied seat", round)
		}
		for _, r := range m.Rekey {
			_, hit := occupied[r.SeatID]
			require.False(t, hit, "round %d re-keyed an occupied seat", round)
		}

		seen := map[int]bool{}
		for _, s := range after {
			require.False(t, seen[s.Number], "round %d duplicated seat number %d", round, s.Number)
			seen[s.Number] = true
			if o, ok := occupied[s.ID]; ok {
				require.Equal(t, o, s)
			}
		}
		for id := range occupied {
			found := false
			for _, s := range after {
				if s.ID == id {
					found = true
					break
				}
			}
			require.True(t, found, "round %d lost an occupied seat", round)
		}

		require.True(t, seat.Reconcile(defs, after).IsEmpty(), "round %d is not idempotent", round)
	}
}
