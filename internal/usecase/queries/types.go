package queries

import (
	"time"

	"seating-service/internal/domain/pricing"

	"github.com/google/uuid"
)

// TicketView is one purchased seat as listed for its buyer.
type TicketView struct {
	LineID      uuid.UUID
	SaleID      uuid.UUID
	EventID     string
	EventName   string
	PurchasedAt time.Time
	TicketCode  string
	SeatID      uuid.UUID
	SeatLabel   string
	SectionName string
	RowName     string
	Price       pricing.Money
}

type SeatCounts struct {
	Total     int
	Available int
	Occupied  int
}

// InventorySummary is the operator view of an event's stock.
type InventorySummary struct {
	EventID        string
	EventName      string
	Cancelled      bool
	LayoutSource   string
	SectionCount   int
	NominalSeats   int
	SeatCount      int
	AvailableSeats int
	OccupiedSeats  int
}

// NotificationJobView represents read-optimized notification job data
type NotificationJobView struct {
	ID        uuid.UUID `json:"id"`
	Kind      string    `json:"kind"`
	Topic     string    `json:"topic"`
	Payload   []byte    `json:"payload"`
	RunAt     time.Time `json:"run_at"`
	Attempts  int32     `json:"attempts"`
	Status    string    `json:"status"`
	LastError *string   `json:"last_error,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
