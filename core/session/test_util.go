package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/studyline/studyline/core"
)

// InMemStore is a Store for tests and local development.
// It honours the injected clock so expiry can be simulated.
type InMemStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	clock   core.Clock
	entries map[string]inMemEntry
}

type inMemEntry struct {
	teacherID int64
	expiresAt time.Time
}

var _ Store = (*InMemStore)(nil)

func NewInMemStore(ttl time.Duration, clock core.Clock) *InMemStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if clock == nil {
		clock = core.SystemClock
	}
	return &InMemStore{
		ttl:     ttl,
		clock:   clock,
		entries: make(map[string]inMemEntry),
	}
}

func (s *InMemStore) Create(_ context.Context, teacherID int64) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	token := uuid.NewString()
	s.entries[token] = inMemEntry{teacherID: teacherID, expiresAt: s.clock().Add(s.ttl)}
	return token, nil
}

func (s *InMemStore) Resolve(_ context.Context, token string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.entries[token]
	if !ok {
		return 0, ErrNotFound
	}
	if !s.clock().Before(entry.expiresAt) {
		delete(s.entries, token)
		return 0, ErrNotFound
	}
	return entry.teacherID, nil
}

func (s *InMemStore) Revoke(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, token)
	return nil
}
