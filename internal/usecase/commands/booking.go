package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log/slog"
	"slices"
	"strings"
	"time"

	"seating-service/internal/domain/booking"
	"seating-service/internal/domain/layout"
	"seating-service/internal/domain/pricing"
	"seating-service/internal/infra"
	"seating-service/internal/pkg/clock"
	"seating-service/internal/pkg/errs"
	"seating-service/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	bookingEndpoint          = "POST /events/:id/bookings"
	idempotencyTTL           = 24 * time.Hour
	NotificationKindBooking  = "booking_confirmed"
	NotificationTopicBooking = "booking.confirmed"
)

var (
	ErrQuoteExpired        = errs.Markf(errs.ErrConsistency, "quote expired, request a new quote")
	ErrQuoteTotalChanged   = errs.Markf(errs.ErrConsistency, "prices changed since the quote, request a new quote")
	ErrQuoteMismatch       = errs.Markf(errs.ErrValidation, "selected seats do not match the quote")
	ErrIdempotencyMismatch = errs.Markf(errs.ErrConflict, "idempotency key reused with a different request")
)

type BookingRequest struct {
	EventID        string
	SeatIDs        []string
	BuyerID        uuid.UUID
	PaymentMethod  string
	QuoteToken     string
	IdempotencyKey *uuid.UUID
}

type BookingResult struct {
	Receipt    *booking.Receipt
	IsReplayed bool
}

type BookingCommands interface {
	// CreateBooking sells every requested seat or none of them.
	CreateBooking(ctx context.Context, req BookingRequest) (*BookingResult, error)
}

type bookingUseCaseImpl struct {
	uow      shared.UnitOfWork
	resolver *layout.Resolver
	calc     *pricing.Calculator
	factory  *booking.Factory
	intents  IntentStore
	clock    clock.Clock
}

func NewBookingUseCase(
	uow shared.UnitOfWork,
	resolver *layout.Resolver,
	calc *pricing.Calculator,
	factory *booking.Factory,
	intents IntentStore,
	clk clock.Clock,
) BookingCommands {
	return &bookingUseCaseImpl{
		uow:      uow,
		resolver: resolver,
		calc:     calc,
		factory:  factory,
		intents:  intents,
		clock:    clk,
	}
}

type bookingConfirmedPayload struct {
	SaleID      uuid.UUID `json:"sale_id"`
	EventID     string    `json:"event_id"`
	EventName   string    `json:"event_name"`
	BuyerID     uuid.UUID `json:"buyer_id"`
	Total       string    `json:"total"`
	TicketCodes []string  `json:"ticket_codes"`
	CreatedAt   time.Time `json:"created_at"`
}

func (uc *bookingUseCaseImpl) CreateBooking(ctx context.Context, req BookingRequest) (*BookingResult, error) {
	if req.BuyerID == uuid.Nil {
		return nil, errs.Markf(errs.ErrValidation, "buyer is required")
	}

	var intent *Intent
	if token := strings.TrimSpace(req.QuoteToken); token != "" {
		var err error
		intent, err = uc.intents.Get(ctx, token)
		if err != nil {
			if errors.Is(err, ErrIntentNotFound) {
				return nil, ErrQuoteExpired
			}
			return nil, err
		}
	}

	requestHash := calculateRequestHash(req)

	var result *BookingResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if req.IdempotencyKey != nil {
			replay, err := uc.checkIdempotency(ctx, tx, *req.IdempotencyKey, req.BuyerID, requestHash)
			if err != nil {
				return err
			}
			if replay != nil {
				result = &BookingResult{Receipt: replay, IsReplayed: true}
				return nil
			}
		}

		receipt, err := uc.commit(ctx, tx, req, intent)
		if err != nil {
			return err
		}
		result = &BookingResult{Receipt: receipt}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if intent != nil && !result.IsReplayed {
		if derr := uc.intents.Delete(ctx, intent.Token); derr != nil {
			slog.Warn("failed to discard booking intent", "token", intent.Token, "error", derr.Error())
		}
	}

	return result, nil
}

func (uc *bookingUseCaseImpl) commit(ctx context.Context, tx shared.Tx, req BookingRequest, intent *Intent) (*booking.Receipt, error) {
	sel, err := priceSelection(ctx, tx.Reads(), uc.resolver, uc.calc, req.EventID, req.SeatIDs)
	if err != nil {
		return nil, err
	}

	if intent != nil {
		if err := checkIntent(intent, sel, req.BuyerID); err != nil {
			return nil, err
		}
	}

	sale, err := uc.factory.NewSale(sel.event.ID, req.BuyerID, req.PaymentMethod, sel.seats)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	affected, err := tx.Seats().Occupy(ctx, sel.event.ID, sel.ids)
	if err != nil {
		return nil, err
	}
	if affected != int64(len(sel.ids)) {
		return nil, ErrSeatUnavailable
	}

	if err := tx.Sales().Create(ctx, sale); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return nil, ErrSeatUnavailable
		}
		return nil, err
	}

	if err := uc.enqueueConfirmation(ctx, tx, sale, sel.event.Name); err != nil {
		return nil, err
	}

	if req.IdempotencyKey != nil {
		if err := tx.Idempotency().Complete(ctx, *req.IdempotencyKey, req.BuyerID, sale.ID); err != nil {
			return nil, err
		}
	}

	return booking.NewReceipt(sale, sel.event.Name), nil
}

// checkIdempotency claims the key for this transaction. It returns the stored
// receipt when the key already completed.
func (uc *bookingUseCaseImpl) checkIdempotency(ctx context.Context, tx shared.Tx, key, buyerID uuid.UUID, requestHash string) (*booking.Receipt, error) {
	expiresAt := uc.clock.Now().Add(idempotencyTTL)
	if err := tx.Idempotency().Claim(ctx, key, buyerID, bookingEndpoint, requestHash, expiresAt); err != nil {
		return nil, err
	}

	rec, err := tx.Reads().IdempotencyByKey(ctx, key, buyerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if rec.RequestHash != requestHash {
		return nil, ErrIdempotencyMismatch
	}
	if rec.Status == shared.IdempotencyCompleted && rec.ResultSaleID != nil {
		return tx.Reads().ReceiptBySale(ctx, *rec.ResultSaleID)
	}
	return nil, nil
}

func checkIntent(intent *Intent, sel *selection, buyerID uuid.UUID) error {
	if intent.EventID != sel.event.ID || intent.BuyerID != buyerID {
		return ErrQuoteMismatch
	}
	if !sameSeatSet(intent.SeatIDs, sel.ids) {
		return ErrQuoteMismatch
	}
	if intent.Total != sel.total {
		return ErrQuoteTotalChanged
	}
	return nil
}

func sameSeatSet(a, b []uuid.UUID) bool {
	if len(a) != len(b) {
		return false
	}
	set := make(map[uuid.UUID]struct{}, len(a))
	for _, id := range a {
		set[id] = struct{}{}
	}
	for _, id := range b {
		if _, ok := set[id]; !ok {
			return false
		}
	}
	return true
}

func (uc *bookingUseCaseImpl) enqueueConfirmation(ctx context.Context, tx shared.Tx, sale *booking.Sale, eventName string) error {
	codes := make([]string, len(sale.Tickets))
	for i, t := range sale.Tickets {
		codes[i] = t.UniqueCode
	}

	payload, err := json.Marshal(bookingConfirmedPayload{
		SaleID:      sale.ID,
		EventID:     sale.EventID,
		EventName:   eventName,
		BuyerID:     sale.BuyerID,
		Total:       sale.Total.String(),
		TicketCodes: codes,
		CreatedAt:   sale.CreatedAt,
	})
	if err != nil {
		return errs.Wrap(err, "failed to encode notification payload")
	}

	return tx.Notifications().CreateJob(ctx, NotificationKindBooking, NotificationTopicBooking, payload, uc.clock.Now())
}

func calculateRequestHash(req BookingRequest) string {
	ids := make([]string, len(req.SeatIDs))
	for i, s := range req.SeatIDs {
		ids[i] = strings.ToLower(strings.TrimSpace(s))
	}
	slices.Sort(ids)
	ids = slices.Compact(ids)

	data, _ := json.Marshal(struct {
		EventID       string   `json:"event_id"`
		SeatIDs       []string `json:"seat_ids"`
		PaymentMethod string   `json:"payment_method"`
		QuoteToken    string   `json:"quote_token"`
	}{
		EventID:       strings.TrimSpace(req.EventID),
		SeatIDs:       ids,
		PaymentMethod: strings.TrimSpace(req.PaymentMethod),
		QuoteToken:    strings.TrimSpace(req.QuoteToken),
	})
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
