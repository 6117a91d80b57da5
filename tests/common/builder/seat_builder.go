//go:build unit || e2e

package builder

import (
	"time"

	"seating-service/internal/domain/seat"
	sqlc "seating-service/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type SeatBuilder struct {
	EventID   string
	SectionID string
	From      int
	Count     int
	State     seat.State
}

func NewSeatBuilder() *SeatBuilder {
	return &SeatBuilder{
		EventID:   "EVT-1001",
		SectionID: "MAIN",
		From:      1,
		Count:     20,
		State:     seat.StateAvailable,
	}
}

func (b *SeatBuilder) With(mutate func(*SeatBuilder)) *SeatBuilder {
	mutate(b)
	return b
}

// BuildDomain numbers the seats From..From+Count-1.
func (b *SeatBuilder) BuildDomain() []seat.Seat {
	seats := make([]seat.Seat, b.Count)
	for i := range seats {
		seats[i] = seat.Seat{
			ID:        uuid.New(),
			EventID:   b.EventID,
			SectionID: b.SectionID,
			Number:    b.From + i,
			State:     b.State,
		}
	}
	return seats
}

func (b *SeatBuilder) BuildInfra() []sqlc.Seats {
	seats := b.BuildDomain()
	rows := make([]sqlc.Seats, len(seats))
	for i, s := range seats {
		rows[i] = sqlc.Seats{
			ID:         s.ID,
			EventID:    s.EventID,
			SectionID:  pgtype.Text{String: s.SectionID, Valid: s.SectionID != ""},
			SeatNumber: int32(s.Number),
			State:      s.State.String(),
			UpdatedAt:  pgtype.Timestamptz{Time: time.Now(), Valid: true},
		}
	}
	return rows
}

func SeatIDStrings(seats []seat.Seat) []string {
	ids := make([]string, len(seats))
	for i, s := range seats {
		ids[i] = s.ID.String()
	}
	return ids
}
