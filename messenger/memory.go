package messenger

import (
	"context"
	"sync"
)

// MemoryStore is a process-local Store.
type MemoryStore struct {
	mu   sync.Mutex
	msgs map[string][]Message
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{msgs: make(map[string][]Message)}
}

func (s *MemoryStore) Add(_ context.Context, sessionID string, msg Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.msgs[sessionID] = append(s.msgs[sessionID], msg)
	return nil
}

func (s *MemoryStore) Pop(_ context.Context, sessionID string) ([]Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.msgs[sessionID]
	delete(s.msgs, sessionID)
	return out, nil
}
