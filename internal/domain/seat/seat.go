package seat

import (
	"errors"

	"github.com/google/uuid"
)

var ErrInvalidState = errors.New("invalid seat state")

type State string

const (
	StateAvailable State = "available"
	StateOccupied  State = "occupied"
)

func (s State) String() string {
	return string(s)
}

func ParseState(s string) (State, error) {
	switch State(s) {
	case StateAvailable, StateOccupied:
		return State(s), nil
	default:
		return "", ErrInvalidState
	}
}

// Seat is one sellable position. SectionID is empty for historical records
// that only carry the legacy number encoding.
type Seat struct {
	ID        uuid.UUID
	EventID   string
	SectionID string
	Number    int
	State     State
}

func (s Seat) IsAvailable() bool {
	return s.State == StateAvailable
}

// Label is the buyer-facing name of the seat.
func (s Seat) Label() string {
	return Label(s.Number)
}
