package event

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"seating-service/internal/domain/layout"
	"seating-service/internal/domain/pricing"
	"seating-service/internal/domain/seat"
)

var (
	ErrInvalidID        = errors.New("event id must be 1-50 characters without whitespace")
	ErrInvalidName      = errors.New("event name must be 1-200 characters")
	ErrAlreadyCancelled = errors.New("event already cancelled")
	ErrInvalidSection   = errors.New("invalid section record")
)

const (
	maxIDLength   = 50
	maxNameLength = 200
)

// Event is a scheduled happening whose venue layout drives the seat inventory.
type Event struct {
	ID        string
	Name      string
	StartsAt  time.Time
	Cancelled bool
	Venue     layout.VenueConfig
}

func NewEvent(id, name string, startsAt time.Time, venue layout.VenueConfig) (*Event, error) {
	e := &Event{
		ID:       strings.TrimSpace(id),
		Name:     strings.TrimSpace(name),
		StartsAt: startsAt,
		Venue:    venue,
	}
	if err := e.validate(); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *Event) validate() error {
	if e.ID == "" || utf8.RuneCountInString(e.ID) > maxIDLength || strings.ContainsAny(e.ID, " \t\r\n/") {
		return ErrInvalidID
	}
	if e.Name == "" || utf8.RuneCountInString(e.Name) > maxNameLength {
		return ErrInvalidName
	}
	return ValidateSections(e.Venue.Sections)
}

// ValidateSections rejects negative values. Zero values are left for the
// resolver to normalize.
func ValidateSections(records []layout.SectionRecord) error {
	for _, r := range records {
		if r.SeatCount < 0 || r.SeatsPerRow < 0 || r.BasePrice < 0 || negative(r.RowAdjustment) || negative(r.PriceFloor) {
			return ErrInvalidSection
		}
	}
	return nil
}

func negative(m *pricing.Money) bool {
	return m != nil && *m < 0
}

// ReplaceSections swaps the venue's explicit section records.
func (e *Event) ReplaceSections(venueName string, records []layout.SectionRecord) error {
	if err := ValidateSections(records); err != nil {
		return err
	}
	if name := strings.TrimSpace(venueName); name != "" {
		e.Venue.Name = name
	}
	e.Venue.Sections = records
	return nil
}

func (e *Event) Cancel() error {
	if e.Cancelled {
		return ErrAlreadyCancelled
	}
	e.Cancelled = true
	return nil
}

// LayoutInput feeds the resolver. stored is the event's current inventory;
// only its fallback-section members size the fallback layout.
func (e *Event) LayoutInput(stored []seat.Seat) layout.Input {
	venue := e.Venue
	return layout.Input{
		EventID:       e.ID,
		EventName:     e.Name,
		Venue:         &venue,
		SeatCountHint: seat.FallbackMembers(e.ID, stored),
	}
}
