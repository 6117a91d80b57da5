package shared

import (
	"time"

	"github.com/google/uuid"
)

const (
	IdempotencyProcessing = "processing"
	IdempotencyCompleted  = "completed"
)

type IdempotencyRecord struct {
	Key          uuid.UUID
	BuyerID      uuid.UUID
	Status       string
	RequestHash  string
	ResultSaleID *uuid.UUID
	ExpiresAt    time.Time
}
