package converter

import (
	"seating-service/internal/domain/seat"
	sqlc "seating-service/internal/infra/sqlc/generated"
	"seating-service/internal/pkg/pgconv"
)

func SeatToInsertParams(s seat.Seat) sqlc.InsertSeatParams {
	return sqlc.InsertSeatParams{
		ID:         s.ID,
		EventID:    s.EventID,
		SectionID:  pgconv.NullableString(s.SectionID),
		SeatNumber: pgconv.IntToInt32(s.Number),
		State:      s.State.String(),
	}
}

// SeatFromRow treats an unknown state as occupied so the seat is never sold
// or removed.
func SeatFromRow(row sqlc.Seats) seat.Seat {
	state, err := seat.ParseState(row.State)
	if err != nil {
		state = seat.StateOccupied
	}
	return seat.Seat{
		ID:        row.ID,
		EventID:   row.EventID,
		SectionID: pgconv.StringFromPgtype(row.SectionID),
		Number:    int(row.SeatNumber),
		State:     state,
	}
}

func SeatsFromRows(rows []sqlc.Seats) []seat.Seat {
	out := make([]seat.Seat, len(rows))
	for i, r := range rows {
		out[i] = SeatFromRow(r)
	}
	return out
}
