//go:build unit || e2e

package memstore

import (
	"context"
	"sync"
	"time"

	"seating-service/internal/pkg/clock"
	"seating-service/internal/usecase/commands"
)

// IntentStore keeps booking intents in a map and expires them against the
// injected clock.
type IntentStore struct {
	mu      sync.Mutex
	clock   clock.Clock
	intents map[string]storedIntent
}

type storedIntent struct {
	intent    commands.Intent
	expiresAt time.Time
}

var _ commands.IntentStore = (*IntentStore)(nil)

func NewIntentStore(c clock.Clock) *IntentStore {
	return &IntentStore{clock: c, intents: map[string]storedIntent{}}
}

func (s *IntentStore) Save(_ context.Context, intent *commands.Intent, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.intents[intent.Token] = storedIntent{intent: *intent, expiresAt: s.clock.Now().Add(ttl)}
	return nil
}

func (s *IntentStore) Get(_ context.Context, token string) (*commands.Intent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.intents[token]
	if !ok || s.clock.Now().After(stored.expiresAt) {
		return nil, commands.ErrIntentNotFound
	}
	intent := stored.intent
	return &intent, nil
}

func (s *IntentStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.intents, token)
	return nil
}

func (s *IntentStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.intents)
}
