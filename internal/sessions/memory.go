package sessions

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore holds sessions in process memory. Sessions live until the
// process exits; there is no TTL.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]int64),
	}
}

func (s *MemoryStore) Begin(ctx context.Context, userID int64) (string, error) {
	token := uuid.NewString()

	s.mu.Lock()
	s.sessions[token] = userID
	s.mu.Unlock()

	return token, nil
}

func (s *MemoryStore) Get(ctx context.Context, token string) (int64, error) {
	s.mu.RLock()
	userID, ok := s.sessions[token]
	s.mu.RUnlock()

	if !ok {
		return 0, ErrSessionNotFound
	}
	return userID, nil
}

func (s *MemoryStore) End(ctx context.Context, token string) error {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
	return nil
}
