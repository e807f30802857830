// pkg/mem/share_tokens.go
package mem

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// ShareTokenCache keeps share-token → trip-id lookups out of the hot
// join-by-token path. Tokens are immutable for the life of a trip, so
// entries only ever age out.
type ShareTokenCache interface {
	Set(token string, tripID uuid.UUID, ttl time.Duration)

	// Get returns the trip id for token if present and not expired.
	Get(token string) (uuid.UUID, bool)
}

type entry struct {
	tripID    uuid.UUID
	expiresAt time.Time
}

type ShareTokens struct {
	mu   sync.RWMutex
	data map[string]entry
}

func NewShareTokens() *ShareTokens {
	return &ShareTokens{
		data: make(map[string]entry),
	}
}

func (s *ShareTokens) Set(token string, tripID uuid.UUID, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[token] = entry{
		tripID:    tripID,
		expiresAt: time.Now().Add(ttl),
	}
}

func (s *ShareTokens) Get(token string) (uuid.UUID, bool) {
	s.mu.RLock()
	e, ok := s.data[token]
	s.mu.RUnlock()

	if !ok {
		return uuid.Nil, false
	}
	if time.Now().After(e.expiresAt) {
		s.mu.Lock()
		delete(s.data, token) // cleanup expired
		s.mu.Unlock()
		return uuid.Nil, false
	}
	return e.tripID, true
}
