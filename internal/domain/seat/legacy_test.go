//go:build unit

package seat_test

import (
	"testing"

	"seating-service/internal/domain/layout"
	"seating-service/internal/domain/seat"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func defs(ids ...string) []layout.SectionDefinition {
	out := make([]layout.SectionDefinition, len(ids))
	for i, id := range ids {
		out[i] = layout.SectionDefinition{SectionID: id, DisplayName: id, SeatCount: 3, SeatsPerRow: 3}
	}
	return out
}

func TestDecodeLegacyNumber(t *testing.T) {
	cases := []struct {
		number     int
		wantIndex  int
		wantWithin int
		wantOK     bool
	}{
		{number: 1, wantIndex: 0, wantWithin: 1, wantOK: true},
		{number: 999, wantIndex: 0, wantWithin: 999, wantOK: true},
		{number: 1001, wantIndex: 1, wantWithin: 1, wantOK: true},
		{number: 2042, wantIndex: 2, wantWithin: 42, wantOK: true},
		{number: 1000, wantOK: false},
		{number: 0, wantOK: false},
		{number: -5, wantOK: false},
	}
	for _, c := range cases {
		idx, within, ok := seat.DecodeLegacyNumber(c.number)
		assert.Equal(t, c.wantOK, ok, "number %d", c.number)
		if c.wantOK {
			assert.Equal(t, c.wantIndex, idx, "number %d", c.number)
			assert.Equal(t, c.wantWithin, within, "number %d", c.number)
			assert.Equal(t, c.number, seat.EncodeLegacyNumber(idx, within))
		}
	}
}

func TestResolveSectionOf(t *testing.T) {
	d := defs("A", "B")

	tests := []struct {
		name   string
		seat   seat.Seat
		wantID string
		wantOK bool
	}{
		{name: "explicit id", seat: seat.Seat{SectionID: "B", Number: 5}, wantID: "B", wantOK: true},
		{name: "explicit id wins over legacy number", seat: seat.Seat{SectionID: "A", Number: 1005}, wantID: "A", wantOK: true},
		{name: "unknown explicit id is orphaned", seat: seat.Seat{SectionID: "Z", Number: 5}},
		{name: "legacy first block", seat: seat.Seat{Number: 7}, wantID: "A", wantOK: true},
		{name: "legacy second block", seat: seat.Seat{Number: 1003}, wantID: "B", wantOK: true},
		{name: "legacy block past last section", seat: seat.Seat{Number: 2001}},
		{name: "undecodable legacy number", seat: seat.Seat{Number: 2000}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.seat.ID = uuid.New()
			id, ok := seat.ResolveSectionOf(tt.seat, d)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestGroupBySection(t *testing.T) {
	d := defs("A", "B")
	seats := []seat.Seat{
		{ID: uuid.New(), SectionID: "B", Number: 1002},
		{ID: uuid.New(), Number: 3},
		{ID: uuid.New(), SectionID: "A", Number: 1},
		{ID: uuid.New(), SectionID: "gone", Number: 9},
		{ID: uuid.New(), Number: 1001},
	}

	groups, orphans := seat.GroupBySection(d, seats)
	assert.Equal(t, []int{1, 3}, numbers(groups["A"]))
	assert.Equal(t, []int{1001, 1002}, numbers(groups["B"]))
	assert.Equal(t, []int{9}, numbers(orphans))
}

func numbers(seats []seat.Seat) []int {
	out := make([]int, len(seats))
	for i, s := range seats {
		out[i] = s.Number
	}
	return out
}

func TestFallbackMembers(t *testing.T) {
	seats := []seat.Seat{
		{ID: uuid.New(), SectionID: "SEC-E9", Number: 1},
		{ID: uuid.New(), SectionID: "SEC-E9", Number: 2, State: seat.StateOccupied},
		{ID: uuid.New(), Number: 3},
		{ID: uuid.New(), Number: 1004},
		// sold seats left behind by a removed section do not count
		{ID: uuid.New(), SectionID: "MAIN", Number: 5, State: seat.StateOccupied},
		{ID: uuid.New(), SectionID: "SEC-OTHER", Number: 6},
	}

	assert.Equal(t, 3, seat.FallbackMembers("E9", seats))
	assert.Zero(t, seat.FallbackMembers("E9", nil))
}
