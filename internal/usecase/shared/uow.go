package shared

import (
	"context"
	"time"

	"seating-service/internal/domain/booking"
	"seating-service/internal/domain/event"
	"seating-service/internal/domain/seat"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

// Repositories handed out by a Tx are bound to its transaction.
type Tx interface {
	Events() EventRepository
	Seats() SeatRepository
	Sales() SaleRepository
	Idempotency() IdempotencyRepository
	Notifications() NotificationRepository
	Reads() CommandReads
}

type CommandReads interface {
	EventByID(ctx context.Context, id string) (*event.Event, error)
	SeatsByEvent(ctx context.Context, eventID string) ([]seat.Seat, error)
	IdempotencyByKey(ctx context.Context, key, buyerID uuid.UUID) (*IdempotencyRecord, error)
	ReceiptBySale(ctx context.Context, saleID uuid.UUID) (*booking.Receipt, error)
	EventIDsWithoutSeats(ctx context.Context) ([]string, error)
}

type EventRepository interface {
	Create(ctx context.Context, ev *event.Event) error
	// Lock loads the event and holds its row until the transaction ends.
	Lock(ctx context.Context, id string) (*event.Event, error)
	SaveVenue(ctx context.Context, ev *event.Event) error
	MarkCancelled(ctx context.Context, id string) error
}

type SeatRepository interface {
	Insert(ctx context.Context, seats []seat.Seat) error
	// DeleteAvailable and RekeyAvailable skip seats that are no longer Available
	// and report how many rows they changed.
	DeleteAvailable(ctx context.Context, ids []uuid.UUID) (int64, error)
	RekeyAvailable(ctx context.Context, rekeys []seat.Rekey) (int64, error)
	// Occupy flips Available seats to Occupied and returns the affected count.
	Occupy(ctx context.Context, eventID string, ids []uuid.UUID) (int64, error)
}

type SaleRepository interface {
	Create(ctx context.Context, sale *booking.Sale) error
}

type IdempotencyRepository interface {
	Claim(ctx context.Context, key, buyerID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) error
	Complete(ctx context.Context, key, buyerID, saleID uuid.UUID) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error
}
