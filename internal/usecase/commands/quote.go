package commands

import (
	"context"
	"time"

	"seating-service/internal/domain/layout"
	"seating-service/internal/domain/pricing"
	"seating-service/internal/domain/seatmap"
	"seating-service/internal/pkg/clock"
	"seating-service/internal/usecase/shared"

	"github.com/google/uuid"
)

type QuoteRequest struct {
	EventID string
	SeatIDs []string
	BuyerID uuid.UUID
}

type Quote struct {
	Token     string
	EventID   string
	Seats     []seatmap.PricedSeat
	Total     pricing.Money
	ExpiresAt time.Time
}

type QuoteCommands interface {
	// CreateQuote prices a selection and stores it as a booking intent.
	// It reserves nothing.
	CreateQuote(ctx context.Context, req QuoteRequest) (*Quote, error)
}

type quoteUseCaseImpl struct {
	uow      shared.UnitOfWork
	resolver *layout.Resolver
	calc     *pricing.Calculator
	intents  IntentStore
	clock    clock.Clock
	ttl      time.Duration
}

func NewQuoteUseCase(
	uow shared.UnitOfWork,
	resolver *layout.Resolver,
	calc *pricing.Calculator,
	intents IntentStore,
	clk clock.Clock,
	ttl time.Duration,
) QuoteCommands {
	return &quoteUseCaseImpl{
		uow:      uow,
		resolver: resolver,
		calc:     calc,
		intents:  intents,
		clock:    clk,
		ttl:      ttl,
	}
}

func (uc *quoteUseCaseImpl) CreateQuote(ctx context.Context, req QuoteRequest) (*Quote, error) {
	sel, err := priceSelection(ctx, uc.uow.CommandReads(), uc.resolver, uc.calc, req.EventID, req.SeatIDs)
	if err != nil {
		return nil, err
	}

	intent := &Intent{
		Token:     uuid.NewString(),
		EventID:   sel.event.ID,
		BuyerID:   req.BuyerID,
		SeatIDs:   sel.ids,
		Total:     sel.total,
		ExpiresAt: uc.clock.Now().Add(uc.ttl),
	}
	if err := uc.intents.Save(ctx, intent, uc.ttl); err != nil {
		return nil, err
	}

	return &Quote{
		Token:     intent.Token,
		EventID:   intent.EventID,
		Seats:     sel.seats,
		Total:     intent.Total,
		ExpiresAt: intent.ExpiresAt,
	}, nil
}
