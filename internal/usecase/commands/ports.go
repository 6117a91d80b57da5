package commands

import (
	"context"
	"time"

	"seating-service/internal/domain/pricing"
	"seating-service/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrIntentNotFound = errs.New("booking intent not found")

// Intent is a server-held quote: the seats a buyer selected and the total
// the server priced for them.
type Intent struct {
	Token     string
	EventID   string
	BuyerID   uuid.UUID
	SeatIDs   []uuid.UUID
	Total     pricing.Money
	ExpiresAt time.Time
}

// IntentStore keeps quotes until they expire. Get returns ErrIntentNotFound
// for unknown or expired tokens.
type IntentStore interface {
	Save(ctx context.Context, intent *Intent, ttl time.Duration) error
	Get(ctx context.Context, token string) (*Intent, error)
	Delete(ctx context.Context, token string) error
}
