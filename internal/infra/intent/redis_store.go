package intent

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"seating-service/internal/domain/pricing"
	"seating-service/internal/pkg/errs"
	"seating-service/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "seating:intent:"

// record is the JSON shape stored in Redis. Money travels as cents.
type record struct {
	Token      string      `json:"token"`
	EventID    string      `json:"event_id"`
	BuyerID    uuid.UUID   `json:"buyer_id"`
	SeatIDs    []uuid.UUID `json:"seat_ids"`
	TotalCents int64       `json:"total_cents"`
	ExpiresAt  time.Time   `json:"expires_at"`
}

// RedisStore keeps booking intents under a per-token key with a TTL, so an
// expired quote simply disappears.
type RedisStore struct {
	client redis.UniversalClient
}

func NewRedisStore(client redis.UniversalClient) *RedisStore {
	return &RedisStore{client: client}
}

func key(token string) string {
	return keyPrefix + token
}

func (s *RedisStore) Save(ctx context.Context, in *commands.Intent, ttl time.Duration) error {
	data, err := encode(in)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, key(in.Token), data, ttl).Err(); err != nil {
		return errs.Wrap(err, "failed to store booking intent")
	}
	return nil
}

func (s *RedisStore) Get(ctx context.Context, token string) (*commands.Intent, error) {
	data, err := s.client.Get(ctx, key(token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, commands.ErrIntentNotFound
		}
		return nil, errs.Wrap(err, "failed to load booking intent")
	}
	return decode(data)
}

func (s *RedisStore) Delete(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, key(token)).Err(); err != nil {
		return errs.Wrap(err, "failed to delete booking intent")
	}
	return nil
}

func encode(in *commands.Intent) ([]byte, error) {
	data, err := json.Marshal(record{
		Token:      in.Token,
		EventID:    in.EventID,
		BuyerID:    in.BuyerID,
		SeatIDs:    in.SeatIDs,
		TotalCents: in.Total.Cents(),
		ExpiresAt:  in.ExpiresAt.UTC(),
	})
	if err != nil {
		return nil, errs.Wrap(err, "failed to encode booking intent")
	}
	return data, nil
}

func decode(data []byte) (*commands.Intent, error) {
	var r record
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, errs.Wrap(err, "failed to decode booking intent")
	}
	return &commands.Intent{
		Token:     r.Token,
		EventID:   r.EventID,
		BuyerID:   r.BuyerID,
		SeatIDs:   r.SeatIDs,
		Total:     pricing.FromCents(r.TotalCents),
		ExpiresAt: r.ExpiresAt,
	}, nil
}
